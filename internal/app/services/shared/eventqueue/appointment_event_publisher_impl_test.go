package eventqueue

import (
	"context"
	"errors"
	"telemed-service/internal/pkg/constvars"
	"telemed-service/internal/pkg/dto/requests"
	"telemed-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockChannel struct {
	mock.Mock
}

func (m *MockChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error {
	args := m.Called(ctx, exchange, key, mandatory, immediate, msg)
	return args.Error(0)
}

func TestPublishAppointmentEvent(t *testing.T) {
	event := &requests.AppointmentEvent{
		Type:          constvars.AppointmentEventMeeting,
		AppointmentID: "65f0c0ffee0000000000beef",
		PatientName:   "Asha",
		DoctorName:    "Dr. Rao",
		MeetingLink:   "https://meet.example/abc",
		OccurredAt:    time.Date(2025, 3, 1, 4, 30, 0, 0, time.UTC),
	}

	t.Run("publishes persistent json message to queue", func(t *testing.T) {
		channel := new(MockChannel)
		channel.On("PublishWithContext", mock.Anything, "", "appointment_events", false, false, mock.AnythingOfType("amqp091.Publishing")).
			Return(nil)

		publisher := NewAppointmentEventPublisherWithChannel(channel, zap.NewNop(), "appointment_events")
		err := publisher.PublishAppointmentEvent(context.Background(), event)
		require.NoError(t, err)

		message := channel.Calls[0].Arguments.Get(5).(amqp091.Publishing)
		assert.Equal(t, amqp091.Persistent, message.DeliveryMode)
		assert.Equal(t, constvars.MIMEApplicationJSON, message.ContentType)
		assert.Equal(t, constvars.AppointmentEventMeeting, message.Type)

		var decoded requests.AppointmentEvent
		require.NoError(t, json.Unmarshal(message.Body, &decoded))
		assert.Equal(t, event.AppointmentID, decoded.AppointmentID)
		assert.Equal(t, event.MeetingLink, decoded.MeetingLink)
		channel.AssertExpectations(t)
	})

	t.Run("wraps publish failure", func(t *testing.T) {
		channel := new(MockChannel)
		channel.On("PublishWithContext", mock.Anything, "", "appointment_events", false, false, mock.Anything).
			Return(errors.New("channel closed"))

		publisher := NewAppointmentEventPublisherWithChannel(channel, zap.NewNop(), "appointment_events")
		err := publisher.PublishAppointmentEvent(context.Background(), event)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusInternalServerError, customErr.StatusCode)
		assert.Contains(t, customErr.DevMessage, "appointment_events")
	})
}
