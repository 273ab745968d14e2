package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/warehouse/internal/logger"
	"gitlab.ozon.dev/pupkingeorgij/warehouse/internal/server"
)

func main() {
	var (
		brokers  = flag.String("kafka-brokers", "localhost:9092", "comma-separated Kafka brokers")
		topic    = flag.String("audit-topic", "audit_logs", "Kafka topic with audit logs")
		groupID  = flag.String("group-id", "audit-log-consumer-group", "consumer group id")
		logLevel = flag.String("log-level", "info", "log level: debug, info, warn, error")
	)
	flag.Parse()

	log := logger.New(*logLevel)
	defer log.Sync()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log.Info("starting audit log consumer",
		zap.String("topic", *topic),
		zap.String("brokers", *brokers))

	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        strings.Split(*brokers, ","),
		GroupID:        *groupID,
		Topic:          *topic,
		MinBytes:       10e3,
		MaxBytes:       10e6,
		CommitInterval: time.Second,
		MaxWait:        3 * time.Second,
	})
	defer func() {
		if err := r.Close(); err != nil {
			log.Error("error closing kafka reader", zap.Error(err))
		}
	}()

	for {
		m, err := r.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("shutdown signal received, stopping consumer")
				return
			}
			log.Error("error reading message", zap.Error(err))
			time.Sleep(5 * time.Second)
			continue
		}

		printEntry(m)
	}
}

func printEntry(m kafka.Message) {
	var entry server.AuditLogEntry
	if err := json.Unmarshal(m.Value, &entry); err != nil {
		fmt.Printf("[%s] partition=%d offset=%d key=%s (undecodable): %s\n",
			m.Time.Format(time.RFC3339), m.Partition, m.Offset, string(m.Key), string(m.Value))
		return
	}

	fmt.Printf("[%s] %s %s -> %d | user=%s customer=%s invoice=%s id=%s\n",
		entry.Timestamp.Format(time.RFC3339),
		entry.Method,
		entry.Path,
		entry.StatusCode,
		entry.UserID,
		entry.CustomerName,
		entry.InvoiceNumber,
		entry.ID)
}
