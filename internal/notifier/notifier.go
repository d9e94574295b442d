// Package notifier publishes user-facing notification events to Kafka.
// Delivery is best effort; a failed publish never rolls back the state
// change that produced it.
package notifier

//go:generate go run go.uber.org/mock/mockgen -source=./notifier.go -destination=./mocks/notifier_mock.go -package=mocks

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"voyago/infras/kafka"
	"voyago/infras/otel"
	"voyago/shared/clock"
	"voyago/shared/constant"
)

const (
	EventRoomAvailable = "room_available"
	EventQueueJoined   = "queue_joined"
	EventTripReminder  = "trip_reminder"
)

type Event struct {
	Type            string     `json:"type"`
	UserID          string     `json:"user_id"`
	TravelPackageID string     `json:"travel_package_id"`
	BookingID       string     `json:"booking_id,omitempty"`
	Position        int        `json:"position,omitempty"`
	ExpiresAt       *time.Time `json:"expires_at,omitempty"`
	StartDate       *time.Time `json:"start_date,omitempty"`
	OccurredAt      time.Time  `json:"occurred_at"`
}

type Notifier interface {
	RoomAvailable(ctx context.Context, userID, packageID string, expiresAt time.Time) error
	QueueJoined(ctx context.Context, userID, packageID string, position int) error
	TripReminder(ctx context.Context, userID, packageID, bookingID string, startDate time.Time) error
}

type notifierImpl struct {
	client kafka.Client
	clock  clock.Clock
	otel   otel.Otel
}

func New(client kafka.Client, clock clock.Clock, otel otel.Otel) Notifier {
	return &notifierImpl{
		client: client,
		clock:  clock,
		otel:   otel,
	}
}

func (n *notifierImpl) RoomAvailable(ctx context.Context, userID, packageID string, expiresAt time.Time) error {
	return n.publish(ctx, "RoomAvailable", Event{
		Type:            EventRoomAvailable,
		UserID:          userID,
		TravelPackageID: packageID,
		ExpiresAt:       &expiresAt,
	})
}

func (n *notifierImpl) QueueJoined(ctx context.Context, userID, packageID string, position int) error {
	return n.publish(ctx, "QueueJoined", Event{
		Type:            EventQueueJoined,
		UserID:          userID,
		TravelPackageID: packageID,
		Position:        position,
	})
}

func (n *notifierImpl) TripReminder(ctx context.Context, userID, packageID, bookingID string, startDate time.Time) error {
	return n.publish(ctx, "TripReminder", Event{
		Type:            EventTripReminder,
		UserID:          userID,
		TravelPackageID: packageID,
		BookingID:       bookingID,
		StartDate:       &startDate,
	})
}

func (n *notifierImpl) publish(ctx context.Context, operation string, event Event) (err error) {
	ctx, scope := n.otel.NewScope(ctx, constant.OtelNotifierScopeName, constant.OtelNotifierScopeName+"."+operation)
	defer scope.End()
	defer scope.TraceIfError(err)

	event.OccurredAt = n.clock.Now()

	err = n.client.SendMessages(ctx, constant.KafkaTopicNotifications, kafka.Message{
		Key:   event.UserID,
		Value: event,
	})
	if err != nil {
		log.Error().Err(err).Str("type", event.Type).Str("userID", event.UserID).Msg("failed to publish notification event")

		return err
	}

	return nil
}
