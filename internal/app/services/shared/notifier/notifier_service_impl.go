package notifier

import (
	"context"
	"esveikata-finder/internal/app/contracts"
	"esveikata-finder/internal/pkg/constvars"
	"esveikata-finder/internal/pkg/dto/requests"
	"esveikata-finder/internal/pkg/exceptions"
	"sync"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Publisher is the part of *amqp091.Channel the notifier uses.
type Publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

type rabbitNotifier struct {
	mu        sync.Mutex
	publisher Publisher
	queue     string
	log       *zap.Logger
}

// NewSlotNotifier declares the notification queue and returns a notifier
// publishing to it. A nil connection yields a notifier that only logs.
func NewSlotNotifier(conn *amqp091.Connection, queue string, logger *zap.Logger) (contracts.SlotNotifier, error) {
	if conn == nil {
		return &nopNotifier{log: logger}, nil
	}

	channel, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		channel.Close()
		return nil, err
	}

	return NewPublisherNotifier(channel, queue, logger), nil
}

func NewPublisherNotifier(publisher Publisher, queue string, logger *zap.Logger) contracts.SlotNotifier {
	return &rabbitNotifier{
		publisher: publisher,
		queue:     queue,
		log:       logger,
	}
}

func (n *rabbitNotifier) NotifySlotsAvailable(ctx context.Context, notification *requests.SlotsAvailableNotification) error {
	body, err := json.Marshal(notification)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Type:         notification.Type,
		Headers: amqp091.Table{
			"message_type":     "JSON",
			"requeue_strategy": "DROP",
		},
	}

	// amqp channels must not be used for concurrent publishes.
	n.mu.Lock()
	err = n.publisher.PublishWithContext(ctx, "", n.queue, false, false, message)
	n.mu.Unlock()
	if err != nil {
		return exceptions.ErrPublishMessage(err, n.queue)
	}

	n.log.Info("rabbitNotifier.NotifySlotsAvailable published",
		zap.String(constvars.LoggingQueueKey, n.queue),
		zap.String(constvars.LoggingSessionIDKey, notification.SessionID),
		zap.String(constvars.LoggingSpecialistIDKey, notification.SpecialistID),
		zap.Int(constvars.LoggingSlotCountKey, len(notification.Slots)),
	)
	return nil
}

type nopNotifier struct {
	log *zap.Logger
}

func (n *nopNotifier) NotifySlotsAvailable(ctx context.Context, notification *requests.SlotsAvailableNotification) error {
	n.log.Debug("nopNotifier.NotifySlotsAvailable skipped, messaging disabled",
		zap.String(constvars.LoggingSessionIDKey, notification.SessionID),
		zap.Int(constvars.LoggingSlotCountKey, len(notification.Slots)),
	)
	return nil
}
