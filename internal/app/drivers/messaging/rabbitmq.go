package messaging

import (
	"fmt"
	"log"
	"telemed-service/internal/app/config"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

const rabbitMQHeartbeat = 10 * time.Second

// NewRabbitMQ returns nil when RabbitMQ is disabled; the appointment event
// publisher is then skipped.
func NewRabbitMQ(driverConfig *config.DriverConfig) *amqp091.Connection {
	if !driverConfig.RabbitMQ.Enabled {
		log.Println("RabbitMQ disabled, appointment events will not be published")
		return nil
	}

	connectionString := fmt.Sprintf(
		"amqp://%s:%s@%s:%s/",
		driverConfig.RabbitMQ.Username,
		driverConfig.RabbitMQ.Password,
		driverConfig.RabbitMQ.Host,
		driverConfig.RabbitMQ.Port,
	)
	properties := amqp091.NewConnectionProperties()
	properties.SetClientConnectionName("telemed-service")

	conn, err := amqp091.DialConfig(connectionString, amqp091.Config{
		Heartbeat:  rabbitMQHeartbeat,
		Properties: properties,
	})
	if err != nil {
		log.Fatalf("Failed to connect to rabbitMQ: %s", err.Error())
	}
	log.Println("Successfully connected to rabbitMQ")
	return conn
}
