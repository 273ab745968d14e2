package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/warehouse/handler"
	"gitlab.ozon.dev/pupkingeorgij/warehouse/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/warehouse/internal/kafka"
	"gitlab.ozon.dev/pupkingeorgij/warehouse/internal/logger"
	"gitlab.ozon.dev/pupkingeorgij/warehouse/internal/repository/postgresql"
	"gitlab.ozon.dev/pupkingeorgij/warehouse/internal/server"
	"gitlab.ozon.dev/pupkingeorgij/warehouse/internal/storage"
)

func main() {
	var (
		storageBackend = flag.String("storage", "file", "storage backend: file or postgres")
		filePath       = flag.String("file", "warehouse.json", "path to the ledger file (file backend)")
		port           = flag.String("port", "9000", "HTTP server port")
		logLevel       = flag.String("log-level", "info", "log level: debug, info, warn, error")
		interactive    = flag.Bool("interactive", false, "run the console handler instead of the HTTP server")
		auditBrokers   = flag.String("kafka-brokers", "localhost:9092", "comma-separated Kafka brokers for audit logs")
		auditTopic     = flag.String("audit-topic", "audit_logs", "Kafka topic for audit logs")
		auditConsole   = flag.Bool("audit-console", false, "print audit logs to stdout instead of Kafka")
	)
	flag.Parse()

	log := logger.New(*logLevel)
	defer log.Sync()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var (
		stg      storage.Storage
		database *db.Database
		err      error
	)
	switch *storageBackend {
	case "file":
		stg, err = storage.NewFileStorage(*filePath)
		if err != nil {
			log.Fatal("failed to open ledger file", zap.String("path", *filePath), zap.Error(err))
		}
	case "postgres":
		database, err = db.NewDb(ctx)
		if err != nil {
			log.Fatal("database init error", zap.Error(err))
		}
		defer database.GetPool().Close()

		stg = storage.NewPostgresStorage(
			database,
			postgresql.NewCustomerRepo(database),
			postgresql.NewOrderRepo(database),
			postgresql.NewLabelRepo(database),
		)
	default:
		log.Fatal("unknown storage backend", zap.String("backend", *storageBackend))
	}

	if *interactive {
		runConsole(ctx, stg)
		return
	}

	// HTTP mode authenticates against the users table even when the ledger
	// itself lives in a file.
	if database == nil {
		database, err = db.NewDb(ctx)
		if err != nil {
			log.Fatal("database init error", zap.Error(err))
		}
		defer database.GetPool().Close()
	}
	userRepo := postgresql.NewUserRepo(database)
	if username, password := os.Getenv("ADMIN_USERNAME"), os.Getenv("ADMIN_PASSWORD"); username != "" {
		if err := userRepo.CreateUser(ctx, username, password); err != nil {
			log.Fatal("failed to seed admin user", zap.Error(err))
		}
	}

	var producer kafka.Producer
	if *auditConsole {
		producer = kafka.NewConsoleProducer(log)
	} else {
		producer = kafka.NewWriterProducer(strings.Split(*auditBrokers, ","), log)
	}

	srv := server.New(stg, userRepo, producer, *auditTopic, log)

	go func() {
		if err := srv.Run(ctx, *port); err != nil {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	log.Info("server started", zap.String("port", *port))

	<-ctx.Done()
	log.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("server shutdown failed", zap.Error(err))
	}

	log.Info("server gracefully stopped")
}

func runConsole(ctx context.Context, stg storage.Storage) {
	h := handler.New(stg)
	h.HandleHelp()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		if ctx.Err() != nil {
			return
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		command, args := fields[0], fields[1:]

		switch command {
		case "help":
			h.HandleHelp()
		case "import":
			h.HandleImport(ctx, args)
		case "export":
			h.HandleExport(ctx, args)
		case "charge":
			h.HandleCharge(ctx, args)
		case "edit":
			h.HandleEdit(ctx, args)
		case "delete":
			h.HandleDelete(ctx, args)
		case "list-orders":
			h.HandleListOrders(ctx, args)
		case "customers":
			h.HandleCustomers(ctx)
		case "exit":
			return
		default:
			fmt.Println("Unknown command. Type 'help' for usage")
		}
	}
}
