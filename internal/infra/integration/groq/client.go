package groq

import (
	"bytes"
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/xavierca1/coldcall-backend/internal/entity"
)

// A API do Groq é compatível com a da OpenAI, então o client é o go-openai
// apontado para o endpoint deles.
const (
	defaultBaseURL = "https://api.groq.com/openai/v1"
	whisperModel   = "whisper-large-v3"
	llmModel       = "llama-3.3-70b-versatile"
)

const summarizeSystemPrompt = `You are a sales call analyst. Analyze this transcript and return JSON:
{"summary": "2-3 sentences", "recommended_deal_stage": "<enum>", "next_action": "<specific step>"}

Valid deal stages: New, Contacted, Qualified, Proposal, Negotiation, Won, Lost, NotInterested

Return ONLY valid JSON, no other text.`

type Client struct {
	api *openai.Client
}

func NewClient(apiKey string) *Client {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = defaultBaseURL

	return &Client{api: openai.NewClientWithConfig(cfg)}
}

// Transcribe manda o áudio para o whisper do Groq e devolve o texto cru.
func (c *Client) Transcribe(ctx context.Context, audio []byte, filename string) (string, error) {
	resp, err := c.api.CreateTranscription(ctx, openai.AudioRequest{
		Model:    whisperModel,
		FilePath: filename, // só para o multipart; o conteúdo vem do Reader
		Reader:   bytes.NewReader(audio),
	})
	if err != nil {
		return "", fmt.Errorf("groq transcription: %w", err)
	}

	return resp.Text, nil
}

type SummarizeInput struct {
	Transcript  string
	ContactName string
	Business    string
	Industry    string
	DealStage   string
}

// Summarize analisa a transcrição e devolve o resumo estruturado.
// Resposta fora do formato JSON nunca vira erro: cai no fallback (ParseSummary).
func (c *Client) Summarize(ctx context.Context, input SummarizeInput) (*entity.AISummary, error) {
	userPrompt := fmt.Sprintf(
		"Contact: %s at %s (%s), current stage: %s\nTranscript: %s",
		input.ContactName, orNA(input.Business), orNA(input.Industry),
		input.DealStage, input.Transcript,
	)

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       llmModel,
		Temperature: 0.3,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: summarizeSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("groq chat: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("groq chat: resposta vazia")
	}

	return ParseSummary(resp.Choices[0].Message.Content, input.DealStage), nil
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
