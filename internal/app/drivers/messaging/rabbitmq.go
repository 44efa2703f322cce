package messaging

import (
	"fmt"
	"log"
	"simrs-service/internal/app/config"

	"github.com/rabbitmq/amqp091-go"
)

// NewRabbitMQ dials the broker used for stock reconciliation alerts. The
// connection is long-lived; channels are opened per publisher.
func NewRabbitMQ(driverConfig *config.DriverConfig) *amqp091.Connection {
	address := fmt.Sprintf(
		"amqp://%s:%s@%s:%s/",
		driverConfig.RabbitMQ.Username,
		driverConfig.RabbitMQ.Password,
		driverConfig.RabbitMQ.Host,
		driverConfig.RabbitMQ.Port,
	)
	conn, err := amqp091.Dial(address)
	if err != nil {
		log.Fatalf("Failed to connect to rabbitMQ: %s", err.Error())
	}
	log.Println("Successfully connected to rabbitMQ")
	return conn
}
