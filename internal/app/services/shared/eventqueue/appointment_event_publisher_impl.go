package eventqueue

import (
	"context"
	"telemed-service/internal/app/contracts"
	"telemed-service/internal/pkg/constvars"
	"telemed-service/internal/pkg/dto/requests"
	"telemed-service/internal/pkg/exceptions"
	"telemed-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// AMQPChannel is the subset of *amqp091.Channel the publisher needs.
type AMQPChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

type appointmentEventPublisher struct {
	Channel AMQPChannel
	Queue   string
	Log     *zap.Logger
}

// NewAppointmentEventPublisher opens a channel and declares a durable queue.
func NewAppointmentEventPublisher(rabbitMQConnection *amqp091.Connection, logger *zap.Logger, queue string) (contracts.AppointmentEventPublisher, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}
	_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		channel.Close()
		return nil, err
	}
	return NewAppointmentEventPublisherWithChannel(channel, logger, queue), nil
}

func NewAppointmentEventPublisherWithChannel(channel AMQPChannel, logger *zap.Logger, queue string) contracts.AppointmentEventPublisher {
	return &appointmentEventPublisher{
		Channel: channel,
		Queue:   queue,
		Log:     logger,
	}
}

func (s *appointmentEventPublisher) PublishAppointmentEvent(ctx context.Context, event *requests.AppointmentEvent) error {
	requestID := utils.RequestIDFromContext(ctx)

	s.Log.Info("appointmentEventPublisher.PublishAppointmentEvent called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventTypeKey, event.Type),
		zap.String(constvars.LoggingAppointmentIDKey, event.AppointmentID),
	)

	body, err := json.Marshal(event)
	if err != nil {
		s.Log.Error("appointmentEventPublisher.PublishAppointmentEvent error marshaling JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrCannotMarshalJSON(err)
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Type:         event.Type,
		MessageId:    utils.GenerateUUID(),
		Timestamp:    event.OccurredAt,
		Headers: amqp091.Table{
			"request_id": requestID,
		},
	}

	err = s.Channel.PublishWithContext(ctx, "", s.Queue, false, false, message)
	if err != nil {
		s.Log.Error("appointmentEventPublisher.PublishAppointmentEvent error publishing message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQueueNameKey, s.Queue),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublishMessage(err, s.Queue)
	}

	s.Log.Info("appointmentEventPublisher.PublishAppointmentEvent succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueNameKey, s.Queue),
	)
	return nil
}
