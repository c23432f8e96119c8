package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/xavierca1/coldcall-backend/internal/entity"
	"github.com/xavierca1/coldcall-backend/internal/infra/http/middleware"
	"github.com/xavierca1/coldcall-backend/internal/infra/integration/groq"
)

// AIClient define o contrato da integração de IA (Groq hoje).
type AIClient interface {
	Transcribe(ctx context.Context, audio []byte, filename string) (string, error)
	Summarize(ctx context.Context, input groq.SummarizeInput) (*entity.AISummary, error)
}

// ContactStore: o pedaço do repositório de contatos que o worker precisa.
type ContactStore interface {
	FindByID(ctx context.Context, id string) (*entity.Contact, error)
	Update(ctx context.Context, id string, fields entity.ContactUpdate) (*entity.Contact, error)
}

type Worker struct {
	Channel  *amqp.Channel
	AI       AIClient
	Contacts ContactStore
	HTTP     *http.Client
}

func NewWorker(ch *amqp.Channel, ai AIClient, contacts ContactStore) *Worker {
	return &Worker{
		Channel:  ch,
		AI:       ai,
		Contacts: contacts,
		HTTP:     &http.Client{Timeout: 60 * time.Second},
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName, // fila
		"",        // consumer
		false,     // auto-ack (manual é mais seguro)
		false,     // exclusive
		false,     // no-local
		false,     // no-wait
		nil,       // args
	)
	if err != nil {
		log.Fatalf("❌ Falha ao registrar consumidor RabbitMQ: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload RecordingPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("❌ [WORKER] JSON Inválido: %s", err)
				// Mensagem podre (malformada). Rejeita sem requeue para não travar a fila.
				d.Nack(false, false)
				continue
			}

			log.Printf("⚙️ [WORKER] Processando gravação da ligação %s (%s)", payload.CallID, payload.ContactName)

			if err := w.processMessage(context.Background(), payload); err != nil {
				log.Printf("❌ [WORKER] Erro ao processar gravação: %s", err)
				middleware.RecordTranscriptionJob("failure")
				// Sem retentativa automática: vai para a DLQ e alguém olha depois.
				d.Nack(false, false)
			} else {
				log.Printf("✅ [WORKER] Resumo gravado no contato %s", payload.ContactID)
				middleware.RecordTranscriptionJob("success")
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] Worker rodando e aguardando na fila '%s'", queueName)
	<-forever
}

// processMessage: baixa o áudio, transcreve, resume e grava o resumo no
// contato. Tudo best-effort: a ligação em si já está no log.
func (w *Worker) processMessage(ctx context.Context, payload RecordingPayload) error {
	audio, filename, err := w.download(ctx, payload.RecordingURL)
	if err != nil {
		return err
	}

	transcript, err := w.AI.Transcribe(ctx, audio, filename)
	if err != nil {
		return err
	}

	contact, err := w.Contacts.FindByID(ctx, payload.ContactID)
	if err != nil {
		return fmt.Errorf("contato da gravação sumiu: %w", err)
	}

	contactName := contact.ContactPerson
	if contactName == "" {
		contactName = contact.Name
	}

	summary, err := w.AI.Summarize(ctx, groq.SummarizeInput{
		Transcript:  transcript,
		ContactName: contactName,
		Business:    contact.Name,
		Industry:    contact.Industry,
		DealStage:   payload.DealStage,
	})
	if err != nil {
		return err
	}

	update := entity.ContactUpdate{
		LastCallSummary: &summary.Summary,
		RecordingLink:   &payload.RecordingURL,
	}
	if summary.NextAction != "" {
		notes := contact.Notes
		if notes != "" {
			notes += "\n"
		}
		notes += "Next action: " + summary.NextAction
		update.Notes = &notes
	}
	if _, err := w.Contacts.Update(ctx, payload.ContactID, update); err != nil {
		return fmt.Errorf("falha ao gravar resumo no contato: %w", err)
	}

	return nil
}

func (w *Worker) download(ctx context.Context, url string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", err
	}

	resp, err := w.HTTP.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("falha ao baixar gravação: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", fmt.Errorf("download da gravação retornou status %d", resp.StatusCode)
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}

	filename := "audio.mp3"
	if i := strings.LastIndex(url, "/"); i >= 0 && i < len(url)-1 {
		filename = url[i+1:]
	}

	return audio, filename, nil
}
