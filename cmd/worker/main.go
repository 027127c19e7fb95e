package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/OFFIS-RIT/npdirectory/backend/internal/queue"
	"github.com/OFFIS-RIT/npdirectory/backend/internal/storage"
	"github.com/OFFIS-RIT/npdirectory/backend/internal/util"
	"github.com/OFFIS-RIT/npdirectory/backend/pkg/logger"
	"github.com/OFFIS-RIT/npdirectory/backend/pkg/logger/console"

	"github.com/jackc/pgx/v5/pgxpool"
	amqp "github.com/rabbitmq/amqp091-go"
	"golang.org/x/sync/errgroup"
)

func main() {
	util.LoadEnv()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// logger
	debug := util.GetEnvBool("DEBUG", false)
	consoleLogger := console.NewConsoleLogger(console.ConsoleLoggerParams{
		Debug:  debug,
		JSON:   util.GetEnvString("LOG_FORMAT", "text") == "json",
		Prefix: "worker",
	})
	logger.Init(consoleLogger)

	// Init s3 client
	client, err := storage.NewS3Client(ctx)
	if err != nil {
		logger.Fatal("Could not create S3 client", "err", err)
	}
	upload := func(ctx context.Context, key string, data []byte) error {
		return storage.PutJSON(ctx, client, key, data)
	}

	// Init pgx client
	pgConn, err := pgxpool.New(ctx, util.GetEnv("DATABASE_URL"))
	if err != nil {
		logger.Fatal("Unable to connect to database", "err", err)
	}
	defer pgConn.Close()

	// Init rabbitmq
	conn := queue.Init()
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		logger.Fatal("Failed to open channel", "err", err)
	}
	defer ch.Close()

	queues := []string{queue.ReportQueue}
	if err := queue.SetupQueues(ch, queues); err != nil {
		logger.Fatal("Failed to setup queues", "err", err)
	}

	// One message at a time across all queues
	consumerCh, err := conn.Channel()
	if err != nil {
		logger.Fatal("Failed to open consumer channel", "err", err)
	}
	defer consumerCh.Close()

	if err := consumerCh.Qos(1, 0, true); err != nil {
		logger.Fatal("Failed to set QoS", "err", err)
	}

	type queuedMessage struct {
		msg       amqp.Delivery
		queueName string
	}

	messageChan := make(chan queuedMessage)
	g, gctx := errgroup.WithContext(ctx)

	for _, queueName := range queues {
		msgs, err := consumerCh.Consume(
			queueName,
			fmt.Sprintf("%s_consumer", queueName),
			false, // autoAck
			false, // exclusive
			false, // noLocal
			false, // noWait
			nil,   // args
		)
		if err != nil {
			logger.Fatal("Failed to start consuming", "queue", queueName, "err", err)
		}

		g.Go(func() error {
			for {
				select {
				case <-gctx.Done():
					logger.Info("Stopping consumer", "queue", queueName)
					return nil
				case msg, ok := <-msgs:
					if !ok {
						return fmt.Errorf("message channel closed for %s", queueName)
					}
					select {
					case messageChan <- queuedMessage{msg: msg, queueName: queueName}:
					case <-gctx.Done():
						msg.Nack(false, true)
						return nil
					}
				}
			}
		})
	}

	g.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				logger.Info("Stopping message processor")
				return nil
			case qm := <-messageChan:
				startTime := time.Now()
				logger.Info("Received message", "queue", qm.queueName)

				var processingErr error
				switch qm.queueName {
				case queue.ReportQueue:
					processingErr = queue.ProcessReportExport(gctx, pgConn, upload, qm.msg.Body)
				default:
					processingErr = fmt.Errorf("no handler for queue %s", qm.queueName)
				}

				// If there was an error send to retry or dead-letter, otherwise ack the message
				if processingErr != nil {
					logger.Error("Error processing message", "queue", qm.queueName, "err", processingErr)
					queue.HandleProcessingError(consumerCh, qm.msg, qm.queueName)
				} else {
					if err := qm.msg.Ack(false); err != nil {
						logger.Error("Failed to ack message", "err", err)
					}
					logger.Info("Message processed successfully", "queue", qm.queueName)
				}

				logger.Info("Processing time", "duration", time.Since(startTime).Round(time.Millisecond))
			}
		}
	})

	logger.Info("Listening for messages")

	if err := g.Wait(); err != nil {
		logger.Error("Worker stopped", "err", err)
		os.Exit(1)
	}
	logger.Info("Shutdown signal received, exiting...")
}
