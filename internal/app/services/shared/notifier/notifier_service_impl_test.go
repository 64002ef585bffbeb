package notifier

import (
	"context"
	"errors"
	"esveikata-finder/internal/pkg/constvars"
	"esveikata-finder/internal/pkg/dto/requests"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error {
	args := m.Called(ctx, exchange, key, mandatory, immediate, msg)
	return args.Error(0)
}

func testNotification() *requests.SlotsAvailableNotification {
	return &requests.SlotsAvailableNotification{
		Type:           constvars.NotificationTypeSlotsAvailable,
		SessionID:      "session-1",
		SpecialistID:   "101",
		SpecialistName: "Jonas Jonaitis",
		FoundAt:        time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		Slots: []requests.NotificationSlot{
			{ServiceName: "Konsultacija", OrganizationName: "Klinika", BookingURL: "https://example.test/book"},
		},
	}
}

func TestRabbitNotifier_Publishes(t *testing.T) {
	publisher := new(MockPublisher)
	publisher.On("PublishWithContext", mock.Anything, "", "slots", false, false, mock.MatchedBy(func(msg amqp091.Publishing) bool {
		var decoded requests.SlotsAvailableNotification
		if err := json.Unmarshal(msg.Body, &decoded); err != nil {
			return false
		}
		return msg.ContentType == constvars.MIMEApplicationJSON &&
			msg.DeliveryMode == amqp091.Persistent &&
			decoded.SpecialistID == "101" &&
			len(decoded.Slots) == 1
	})).Return(nil).Once()

	notifier := NewPublisherNotifier(publisher, "slots", zap.NewNop())
	require.NoError(t, notifier.NotifySlotsAvailable(context.Background(), testNotification()))
	publisher.AssertExpectations(t)
}

func TestRabbitNotifier_PublishError(t *testing.T) {
	publisher := new(MockPublisher)
	publisher.On("PublishWithContext", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("channel closed"))

	notifier := NewPublisherNotifier(publisher, "slots", zap.NewNop())
	err := notifier.NotifySlotsAvailable(context.Background(), testNotification())
	assert.ErrorContains(t, err, "channel closed")
}

func TestNewSlotNotifier_WithoutConnection(t *testing.T) {
	notifier, err := NewSlotNotifier(nil, "slots", zap.NewNop())
	require.NoError(t, err)
	assert.NoError(t, notifier.NotifySlotsAvailable(context.Background(), testNotification()))
}
