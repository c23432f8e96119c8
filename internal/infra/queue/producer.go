package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// RecordingPayload: job de transcrição de uma gravação de ligação.
// Carrega o contexto do contato para o worker montar o prompt sem
// precisar reler a planilha inteira.
type RecordingPayload struct {
	CallID       string `json:"call_id"`
	ContactID    string `json:"contact_id"`
	ContactName  string `json:"contact_name"`
	DealStage    string `json:"deal_stage"`
	RecordingURL string `json:"recording_url"`
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{
		Conn: conn,
		Ch:   ch,
	}
}

func (p *RabbitMQProducer) PublishRecording(ctx context.Context, payload RecordingPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("erro ao converter payload: %v", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName, // ex.calls
		RoutingKey,   // k.recording
		false,        // Mandatory
		false,        // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent, // Mensagem salva no disco
		},
	)

	if err != nil {
		return fmt.Errorf("falha ao publicar no RabbitMQ: %v", err)
	}

	return nil
}
