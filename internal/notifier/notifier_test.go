package notifier_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"voyago/infras/kafka"
	kafkaMocks "voyago/infras/kafka/mocks"
	"voyago/infras/otel/mocks"
	"voyago/internal/notifier"
	clockMocks "voyago/shared/clock/mocks"
	"voyago/shared/constant"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestNotifier_RoomAvailable(t *testing.T) {
	t.Run("publishes the offer event stamped with the injected time", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockClient := kafkaMocks.NewMockClient(ctrl)
		n := notifier.New(mockClient, clockMocks.NewFixed(testNow), mocks.NewOtel())

		expiresAt := testNow.Add(10 * time.Minute)

		mockClient.EXPECT().
			SendMessages(gomock.Any(), constant.KafkaTopicNotifications, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
				assert.Len(t, messages, 1)

				event, ok := messages[0].Value.(notifier.Event)
				assert.True(t, ok)
				assert.Equal(t, notifier.EventRoomAvailable, event.Type)
				assert.Equal(t, "user-1", messages[0].Key)
				assert.Equal(t, expiresAt, *event.ExpiresAt)
				assert.Equal(t, testNow, event.OccurredAt)

				return nil
			})

		err := n.RoomAvailable(context.Background(), "user-1", "package-1", expiresAt)

		assert.NoError(t, err)
	})

	t.Run("a failed publish surfaces the error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockClient := kafkaMocks.NewMockClient(ctrl)
		n := notifier.New(mockClient, clockMocks.NewFixed(testNow), mocks.NewOtel())

		mockClient.EXPECT().
			SendMessages(gomock.Any(), constant.KafkaTopicNotifications, gomock.Any()).
			Return(errors.New("broker unreachable"))

		err := n.QueueJoined(context.Background(), "user-1", "package-1", 3)

		assert.Error(t, err)
	})
}
