package sheets

import (
	"context"
	"strconv"

	"github.com/xavierca1/coldcall-backend/internal/entity"
)

type ContactRepository struct {
	Client *Client
}

func NewContactRepository(client *Client) *ContactRepository {
	return &ContactRepository{Client: client}
}

func (r *ContactRepository) FindAll(ctx context.Context) ([]*entity.Contact, error) {
	rows, err := r.Client.rows(ctx, contactsSheet, len(contactHeaders))
	if err != nil {
		return nil, err
	}

	contacts := make([]*entity.Contact, 0, len(rows))
	for _, row := range rows {
		contacts = append(contacts, contactFromRow(row))
	}

	return contacts, nil
}

func (r *ContactRepository) FindByID(ctx context.Context, id string) (*entity.Contact, error) {
	_, contact, err := r.findRow(ctx, id)
	if err != nil {
		return nil, err
	}
	return contact, nil
}

func (r *ContactRepository) Create(ctx context.Context, c *entity.Contact) error {
	return r.Client.appendRow(ctx, contactsSheet, contactToRow(c))
}

// Update lê a linha atual, aplica os campos não-nil e reescreve a linha
// inteira. Read-modify-write sem lock: último escritor ganha (operador único).
func (r *ContactRepository) Update(ctx context.Context, id string, fields entity.ContactUpdate) (*entity.Contact, error) {
	rowNum, contact, err := r.findRow(ctx, id)
	if err != nil {
		return nil, err
	}

	applyUpdate(contact, fields)

	if err := r.Client.updateRow(ctx, contactsSheet, rowNum, contactToRow(contact)); err != nil {
		return nil, err
	}

	return contact, nil
}

func (r *ContactRepository) Delete(ctx context.Context, id string) error {
	rowNum, _, err := r.findRow(ctx, id)
	if err != nil {
		return err
	}
	return r.Client.deleteRow(ctx, contactsSheet, rowNum)
}

// findRow devolve o número da linha na planilha (1-indexado, contando o
// cabeçalho) e o contato parseado.
func (r *ContactRepository) findRow(ctx context.Context, id string) (int, *entity.Contact, error) {
	rows, err := r.Client.rows(ctx, contactsSheet, len(contactHeaders))
	if err != nil {
		return 0, nil, err
	}

	for i, row := range rows {
		if row[0] == id {
			return i + 2, contactFromRow(row), nil
		}
	}

	return 0, nil, entity.ErrContactNotFound
}

func applyUpdate(c *entity.Contact, fields entity.ContactUpdate) {
	if fields.Name != nil {
		c.Name = *fields.Name
	}
	if fields.Phone != nil {
		c.Phone = *fields.Phone
	}
	if fields.ContactPerson != nil {
		c.ContactPerson = *fields.ContactPerson
	}
	if fields.City != nil {
		c.City = *fields.City
	}
	if fields.Industry != nil {
		c.Industry = *fields.Industry
	}
	if fields.Source != nil {
		c.Source = *fields.Source
	}
	if fields.DealStage != nil {
		c.DealStage = *fields.DealStage
	}
	if fields.Notes != nil {
		c.Notes = *fields.Notes
	}
	if fields.LastCalled != nil {
		c.LastCalled = *fields.LastCalled
	}
	if fields.NextFollowUp != nil {
		c.NextFollowUp = *fields.NextFollowUp // "" limpa o follow-up
	}
	if fields.CallCount != nil {
		c.CallCount = *fields.CallCount
	}
	if fields.LastCallSummary != nil {
		c.LastCallSummary = *fields.LastCallSummary
	}
	if fields.RecordingLink != nil {
		c.RecordingLink = *fields.RecordingLink
	}
}

func contactFromRow(row []string) *entity.Contact {
	callCount, _ := strconv.Atoi(row[10]) // célula vazia ou lixo vira 0

	return &entity.Contact{
		ID:              row[0],
		Name:            row[1],
		ContactPerson:   row[2],
		Phone:           row[3],
		City:            row[4],
		Industry:        row[5],
		Source:          row[6],
		DealStage:       row[7],
		LastCalled:      row[8],
		NextFollowUp:    row[9],
		CallCount:       callCount,
		LastCallSummary: row[11],
		RecordingLink:   row[12],
		Notes:           row[13],
	}
}

func contactToRow(c *entity.Contact) []interface{} {
	return []interface{}{
		c.ID,
		c.Name,
		c.ContactPerson,
		c.Phone,
		c.City,
		c.Industry,
		c.Source,
		c.DealStage,
		c.LastCalled,
		c.NextFollowUp,
		strconv.Itoa(c.CallCount),
		c.LastCallSummary,
		c.RecordingLink,
		c.Notes,
	}
}
