package alerts

import (
	"context"
	"simrs-service/internal/app/models"
	"simrs-service/internal/pkg/constvars"
	"simrs-service/internal/pkg/exceptions"
	"sync"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// StockAlertPublisher pushes reconciliation reports with failures onto an
// operational queue so the inventory team can correct stock by hand. Dispatch
// is best effort; a publish failure is returned to the caller to log, never to
// undo a dispensation.
type StockAlertPublisher interface {
	PublishReconciliationReport(ctx context.Context, report *models.ReconciliationReport) error
}

type rabbitMQPublisher struct {
	ch        *amqp.Channel
	log       *zap.Logger
	queueName string
	mu        sync.Mutex
}

func NewRabbitMQPublisher(conn *amqp.Connection, log *zap.Logger, queueName string) (StockAlertPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		queueName,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	)
	if err != nil {
		return nil, err
	}

	return &rabbitMQPublisher{
		ch:        ch,
		log:       log,
		queueName: queueName,
	}, nil
}

func (p *rabbitMQPublisher) PublishReconciliationReport(ctx context.Context, report *models.ReconciliationReport) error {
	body, err := json.Marshal(report)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.queueName)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.ch.PublishWithContext(ctx,
		"",          // exchange
		p.queueName, // routing key
		false,       // mandatory
		false,       // immediate
		amqp.Publishing{
			ContentType:  constvars.MIMEApplicationJSON,
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.queueName)
	}

	p.log.Info("stock reconciliation report published",
		zap.String("queue", p.queueName),
		zap.String("visit_id", report.VisitID),
		zap.Int("failed_items", report.FailureCount()),
	)
	return nil
}
