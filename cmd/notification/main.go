package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/smukkama/crop-advisory/internal/app"
	"github.com/smukkama/crop-advisory/internal/notification"
	"github.com/smukkama/crop-advisory/internal/queue"
	"github.com/smukkama/crop-advisory/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := app.Logger(cfg, "alert-notification")
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("starting notification service")

	notifier := notification.NewEmailNotifier(&cfg.SMTP, logger)

	// Optional, skipped when SMTP is not configured
	if err := notifier.TestConnection(); err != nil {
		logger.Warn("SMTP unavailable, notifications will be logged only", zap.Error(err))
	}

	consumer := queue.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.TopicAlerts, cfg.Kafka.GroupID)
	defer consumer.Close()
	logger.Info("kafka consumer initialized",
		zap.String("topic", cfg.Kafka.TopicAlerts),
		zap.String("group_id", cfg.Kafka.GroupID),
	)

	var deadLetter notification.DeadLetter
	if cfg.Kafka.TopicDeadLetter != "" {
		producer := queue.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.TopicDeadLetter)
		defer producer.Close()
		deadLetter = producer
		logger.Info("dead letter producer initialized", zap.String("topic", cfg.Kafka.TopicDeadLetter))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	worker := notification.NewWorker(consumer, notifier, deadLetter, notification.EmailRetryPolicy, logger)
	runErr := worker.Run(ctx)

	stats := consumer.Stats()
	logger.Info("shutting down notification service",
		zap.Int64("messages", stats.Messages),
		zap.Int64("errors", stats.Errors),
	)

	if runErr != nil {
		// Exit without committing so the group redelivers the message
		logger.Error("notification worker stopped", zap.Error(runErr))
		consumer.Close()
		logger.Sync()
		os.Exit(1)
	}
}
