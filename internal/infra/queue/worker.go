package queue

import (
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"

	"github.com/paglink/checkout-api/internal/usecase"
)

// Worker consome os eventos de pedido e dispara o e-mail de confirmação.
// Ack manual: mensagem malformada ou falha de envio vai para a DLQ sem
// requeue, para não travar a fila com a mesma mensagem em loop.
type Worker struct {
	Channel *amqp.Channel
	Sender  usecase.ReceiptSender
	Logger  zerolog.Logger
}

func NewWorker(ch *amqp.Channel, sender usecase.ReceiptSender, logger zerolog.Logger) *Worker {
	return &Worker{
		Channel: ch,
		Sender:  sender,
		Logger:  logger,
	}
}

func (w *Worker) Start(queueName string) error {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		return err
	}

	w.Logger.Info().Str("queue", queueName).Msg("worker aguardando mensagens")

	for d := range msgs {
		var event usecase.OrderPlacedEvent
		if err := json.Unmarshal(d.Body, &event); err != nil {
			w.Logger.Error().Err(err).Msg("mensagem malformada, descartando para a DLQ")
			d.Nack(false, false)
			continue
		}

		w.Logger.Info().Str("order_id", event.OrderID).Msg("enviando confirmação do pedido")

		if err := w.Sender.SendReceipt(event); err != nil {
			w.Logger.Error().Err(err).Str("order_id", event.OrderID).Msg("falha ao enviar confirmação")
			d.Nack(false, false)
			continue
		}

		d.Ack(false)
	}

	return nil
}
