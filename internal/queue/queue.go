package queue

import (
	"fmt"
	"time"

	"github.com/OFFIS-RIT/npdirectory/backend/internal/util"
	"github.com/OFFIS-RIT/npdirectory/backend/pkg/logger"

	"github.com/rabbitmq/amqp091-go"
)

const (
	// ReportQueue carries report export jobs.
	ReportQueue = "report_queue"

	// MaxRetries is how often a failed message is retried before it is moved
	// to the dead letter queue.
	MaxRetries = 10

	retryDelay = 10 * time.Second
)

func RetryQueueName(queueName string) string {
	return queueName + "_retry"
}

func DeadLetterQueueName(queueName string) string {
	return queueName + "_dlq"
}

func Init() *amqp091.Connection {
	user := util.GetEnv("RABBITMQ_USER")
	pass := util.GetEnv("RABBITMQ_PASSWORD")
	host := util.GetEnv("RABBITMQ_HOST")
	port := util.GetEnvString("RABBITMQ_PORT", "5672")

	connURL := fmt.Sprintf(
		"amqp://%s:%s@%s:%s/",
		user,
		pass,
		host,
		port,
	)

	conn, err := amqp091.Dial(connURL)
	if err != nil {
		logger.Fatal("Failed to connect to RabbitMQ", "err", err)
	}

	return conn
}

// SetupQueues declares each queue together with its dead letter queue and a
// retry queue that hands messages back to the main queue after retryDelay.
func SetupQueues(ch *amqp091.Channel, queueNames []string) error {
	for _, name := range queueNames {
		_, err := ch.QueueDeclare(
			name,
			true,  // durable
			false, // autoDelete
			false, // exclusive
			false, // noWait
			nil,   // args
		)
		if err != nil {
			return fmt.Errorf("declare %s: %w", name, err)
		}

		dlqName := DeadLetterQueueName(name)
		_, err = ch.QueueDeclare(
			dlqName,
			true,
			false,
			false,
			false,
			nil,
		)
		if err != nil {
			return fmt.Errorf("declare %s: %w", dlqName, err)
		}

		retryName := RetryQueueName(name)
		_, err = ch.QueueDeclare(
			retryName,
			true,
			false,
			false,
			false,
			amqp091.Table{
				"x-message-ttl":             int32(retryDelay / time.Millisecond),
				"x-dead-letter-exchange":    "",
				"x-dead-letter-routing-key": name,
			},
		)
		if err != nil {
			return fmt.Errorf("declare %s: %w", retryName, err)
		}
	}

	return nil
}

func PublishFIFO(ch *amqp091.Channel, queueName string, data []byte) error {
	q, err := ch.QueueDeclare(
		queueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return err
	}

	publishing := amqp091.Publishing{
		ContentType:  "application/json",
		Body:         data,
		DeliveryMode: amqp091.Persistent,
		Timestamp:    time.Now(),
	}

	return ch.Publish(
		"",
		q.Name,
		false,
		false,
		publishing,
	)
}

// Retries reads the retry counter set by HandleProcessingError.
func Retries(headers amqp091.Table) int {
	switch v := headers["x-retries"].(type) {
	case int32:
		return int(v)
	case int64:
		return int(v)
	case int:
		return v
	}
	return 0
}

// HandleProcessingError sends a failed delivery to the retry queue, or to the
// dead letter queue once it has been retried MaxRetries times.
func HandleProcessingError(ch *amqp091.Channel, msg amqp091.Delivery, queueName string) {
	retries := Retries(msg.Headers)

	if retries >= MaxRetries {
		dlqName := DeadLetterQueueName(queueName)
		logger.Warn("Sending message to DLQ", "dlq", dlqName, "retries", retries)
		pubErr := ch.Publish(
			"",
			dlqName,
			false,
			false,
			amqp091.Publishing{
				ContentType:  msg.ContentType,
				Body:         msg.Body,
				Headers:      msg.Headers,
				DeliveryMode: amqp091.Persistent,
			},
		)
		if pubErr != nil {
			logger.Error("Failed to publish to DLQ", "dlq", dlqName, "err", pubErr)
			msg.Nack(false, true)
			return
		}
		msg.Ack(false)
		return
	}

	retryName := RetryQueueName(queueName)
	headers := amqp091.Table{}
	for k, v := range msg.Headers {
		headers[k] = v
	}
	headers["x-retries"] = int32(retries + 1)

	pubErr := ch.Publish(
		"",
		retryName,
		false,
		false,
		amqp091.Publishing{
			ContentType:  msg.ContentType,
			Body:         msg.Body,
			Headers:      headers,
			DeliveryMode: amqp091.Persistent,
		},
	)
	if pubErr != nil {
		logger.Error("Failed to publish to retry queue", "retry_queue", retryName, "err", pubErr)
		msg.Nack(false, true)
		return
	}
	msg.Ack(false)
}
