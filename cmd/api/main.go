package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"porter-saathi/config"
	_ "porter-saathi/docs" // Swagger docs
	"porter-saathi/internal/assistant/usecase"
	"porter-saathi/internal/driver/repository"
	"porter-saathi/internal/driver/repository/memory"
	"porter-saathi/internal/driver/repository/postgre"
	"porter-saathi/internal/emergency"
	"porter-saathi/internal/httpserver"
	"porter-saathi/internal/knowledge"
	"porter-saathi/internal/middleware"
	"porter-saathi/internal/model"
	"porter-saathi/internal/realtime"
	"porter-saathi/internal/router"
	"porter-saathi/pkg/datemath"
	"porter-saathi/pkg/fcm"
	"porter-saathi/pkg/log"
	"porter-saathi/pkg/postgres"
	"porter-saathi/pkg/rabbitmq"
)

// @title       Porter Saathi API
// @description Voice-first assistant for delivery drivers: earnings, penalties, process guides and emergencies.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Porter Saathi...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Dates and knowledge
	dateMathParser, err := datemath.NewParser(cfg.Assistant.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Assistant.Timezone, err)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	kb := knowledge.Default()
	if cfg.Assistant.KnowledgeFile != "" {
		kb, err = knowledge.LoadFile(cfg.Assistant.KnowledgeFile)
		if err != nil {
			logger.Errorf(ctx, "Failed to load knowledge file %s: %v", cfg.Assistant.KnowledgeFile, err)
			return
		}
		logger.Infof(ctx, "Knowledge base loaded from %s", cfg.Assistant.KnowledgeFile)
	}

	// 4. Driver store
	var (
		driverRepo repository.Repository
		readiness  []httpserver.ReadinessCheck
		pool       *pgxpool.Pool
	)
	switch cfg.Store.Driver {
	case config.StorePostgres:
		pool, err = postgres.Connect(ctx, cfg.Store.Postgres.DSN)
		if err != nil {
			logger.Errorf(ctx, "Failed to connect to postgres: %v", err)
			return
		}
		defer pool.Close()

		if err := postgre.EnsureSchema(ctx, pool); err != nil {
			logger.Errorf(ctx, "Failed to prepare schema: %v", err)
			return
		}
		driverRepo = postgre.New(pool, logger)
		readiness = append(readiness, httpserver.ReadinessCheck{
			Name:  "postgres",
			Check: func(c *gin.Context) error { return pool.Ping(c.Request.Context()) },
		})
		logger.Info(ctx, "✅ Driver store: postgres")
	default:
		driverRepo = memory.New(logger)
		logger.Info(ctx, "✅ Driver store: memory")
	}

	if cfg.Assistant.SeedSampleData {
		today := model.DateOf(time.Now().In(dateMathParser.Location()))
		if err := repository.Seed(ctx, driverRepo, today); err != nil {
			logger.Errorf(ctx, "Failed to seed sample drivers: %v", err)
			return
		}
		logger.Info(ctx, "Sample drivers seeded")
	}

	// 5. Emergency sinks
	hub := realtime.NewHub(logger)
	defer hub.Close()

	dispatcher := emergency.NewDispatcher(logger).Add("log", emergency.NewLogNotifier(logger))

	if cfg.Emergency.RabbitMQ.URL != "" {
		conn, mqErr := rabbitmq.Connect(ctx, cfg.Emergency.RabbitMQ.URL)
		if mqErr != nil {
			logger.Warnf(ctx, "RabbitMQ not available (optional): %v", mqErr)
		} else {
			defer conn.Close()
			publisher := rabbitmq.NewPublisher(conn.Channel(), cfg.Emergency.RabbitMQ.Exchange)
			dispatcher.Add("rabbitmq", emergency.NewQueueNotifier(publisher))
			logger.Infof(ctx, "✅ Emergency alerts published to exchange %s", cfg.Emergency.RabbitMQ.Exchange)
		}
	}

	if cfg.Emergency.FCM.CredentialsPath != "" {
		pushClient, fcmErr := fcm.NewClientFromCredentialsFile(ctx, cfg.Emergency.FCM.CredentialsPath, cfg.Emergency.FCM.ProjectID)
		if fcmErr != nil {
			logger.Warnf(ctx, "FCM not available (optional): %v", fcmErr)
		} else {
			dispatcher.Add("fcm", emergency.NewPushNotifier(pushClient, cfg.Emergency.FCM.Topic))
			logger.Infof(ctx, "✅ Emergency push enabled on topic %s", cfg.Emergency.FCM.Topic)
		}
	}

	if cfg.Emergency.WebSocket.Broadcast {
		dispatcher.Add("websocket", hub)
	}
	logger.Infof(ctx, "Emergency sinks configured: %d", dispatcher.Len())

	// 6. Assistant
	keywordRouter := router.New(logger)
	assistantUC := usecase.New(logger, driverRepo, keywordRouter, kb, dispatcher, usecase.Options{
		Dates:            dateMathParser,
		EmergencyTimeout: cfg.Emergency.Timeout,
		DefaultLanguage:  cfg.Assistant.DefaultLanguage,
	})
	wsHandler := realtime.NewHandler(logger, hub, assistantUC)

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware: middleware.New(logger, middleware.Config{
			RateLimitPerMin: cfg.RateLimit.PerMin,
			AllowedOrigins:  cfg.HTTPServer.AllowedOrigins,
		}),
		AssistantUC:      assistantUC,
		Router:           keywordRouter,
		WebSocketHandler: wsHandler.Serve,
		Readiness:        readiness,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
