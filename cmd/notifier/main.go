// Notifier consumes ticket.purchased events and sends confirmation emails.
package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"

	"airline-ticketing/internal/email"
	"airline-ticketing/internal/kafka"
	"airline-ticketing/pkg/utils"

	kafkaGo "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

func main() {
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting notifier",
		zap.Strings("brokers", config.Kafka.Brokers),
		zap.String("topic", config.Kafka.TicketTopic),
		zap.String("group", config.Kafka.NotifierGroupID),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	consumer := kafka.NewConsumer(config.Kafka.Brokers, config.Kafka.NotifierGroupID, config.Kafka.TicketTopic)
	defer consumer.Close()

	sender := email.NewSender(config.Email, logger)

	go func() {
		err := consumer.Consume(ctx, func(ctx context.Context, msg kafkaGo.Message) error {
			var event kafka.TicketPurchasedEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				logger.Warn("Skipping malformed event", zap.Error(err))
				return nil
			}

			if err := sender.SendPurchaseConfirmation(ctx, event); err != nil {
				logger.Error("Failed to send confirmation",
					zap.Error(err),
					zap.String("ticket_id", event.TicketID),
				)
				// Keep consuming, the ticket itself is fine.
			}
			return nil
		})
		if err != nil && ctx.Err() == nil {
			logger.Error("Consumer stopped", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	s := <-sig
	logger.Info("Shutting down notifier", zap.String("signal", s.String()))
}
