package sheets

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

const (
	contactsSheet = "Contacts"
	callLogsSheet = "CallLogs"
)

// A ordem das colunas precisa bater exatamente com a planilha.
var contactHeaders = []string{
	"id", "name", "contact_person", "phone", "city", "industry",
	"source", "deal_stage", "last_called", "next_follow_up", "call_count",
	"last_call_summary", "recording_link", "notes",
}

var callLogHeaders = []string{
	"id", "contact_id", "contact_name", "timestamp", "duration_seconds",
	"disposition", "summary", "recording_url", "deal_stage", "deal_stage_after",
}

// Client embrulha o service do Google Sheets com o ID da planilha e os
// sheetIds numéricos (necessários para deletar linha).
type Client struct {
	svc           *sheetsapi.Service
	spreadsheetID string
	sheetIDs      map[string]int64 // título da aba -> sheetId
}

func NewClient(ctx context.Context, credentialsJSON []byte, spreadsheetID string) (*Client, error) {
	svc, err := sheetsapi.NewService(ctx,
		option.WithCredentialsJSON(credentialsJSON),
		option.WithScopes(sheetsapi.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("falha ao criar client do Sheets: %w", err)
	}

	meta, err := svc.Spreadsheets.Get(spreadsheetID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("falha ao ler metadados da planilha: %w", err)
	}

	sheetIDs := make(map[string]int64)
	for _, sheet := range meta.Sheets {
		if sheet.Properties != nil {
			sheetIDs[sheet.Properties.Title] = sheet.Properties.SheetId
		}
	}

	return &Client{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		sheetIDs:      sheetIDs,
	}, nil
}

// rows devolve as linhas de dados da aba (sem o cabeçalho), cada uma
// normalizada para a largura pedida. Célula ausente vira string vazia.
func (c *Client) rows(ctx context.Context, sheet string, width int) ([][]string, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, sheet).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("falha ao ler aba %s: %w", sheet, err)
	}

	if len(resp.Values) <= 1 {
		return nil, nil
	}

	out := make([][]string, 0, len(resp.Values)-1)
	for _, raw := range resp.Values[1:] {
		row := make([]string, width)
		for i := 0; i < width && i < len(raw); i++ {
			row[i] = fmt.Sprint(raw[i])
		}
		out = append(out, row)
	}

	return out, nil
}

func (c *Client) appendRow(ctx context.Context, sheet string, row []interface{}) error {
	_, err := c.svc.Spreadsheets.Values.Append(c.spreadsheetID, sheet, &sheetsapi.ValueRange{
		Values: [][]interface{}{row},
	}).ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("falha ao appendar linha em %s: %w", sheet, err)
	}
	return nil
}

// updateRow reescreve a linha inteira (rowNum é 1-indexado contando o cabeçalho).
func (c *Client) updateRow(ctx context.Context, sheet string, rowNum int, row []interface{}) error {
	rangeStr := fmt.Sprintf("%s!A%d", sheet, rowNum)
	_, err := c.svc.Spreadsheets.Values.Update(c.spreadsheetID, rangeStr, &sheetsapi.ValueRange{
		Values: [][]interface{}{row},
	}).ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("falha ao atualizar linha %d de %s: %w", rowNum, sheet, err)
	}
	return nil
}

func (c *Client) deleteRow(ctx context.Context, sheet string, rowNum int) error {
	sheetID, ok := c.sheetIDs[sheet]
	if !ok {
		return fmt.Errorf("aba %s não existe na planilha", sheet)
	}

	_, err := c.svc.Spreadsheets.BatchUpdate(c.spreadsheetID, &sheetsapi.BatchUpdateSpreadsheetRequest{
		Requests: []*sheetsapi.Request{{
			DeleteDimension: &sheetsapi.DeleteDimensionRequest{
				Range: &sheetsapi.DimensionRange{
					SheetId:    sheetID,
					Dimension:  "ROWS",
					StartIndex: int64(rowNum - 1), // 0-indexado, fim exclusivo
					EndIndex:   int64(rowNum),
				},
			},
		}},
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("falha ao deletar linha %d de %s: %w", rowNum, sheet, err)
	}
	return nil
}
