package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wms-platform/workforce-service/pkg/cloudevents"
	"github.com/wms-platform/workforce-service/pkg/kafka"
	"github.com/wms-platform/workforce-service/pkg/logging"
	"github.com/wms-platform/workforce-service/pkg/metrics"
	"github.com/wms-platform/workforce-service/pkg/middleware"
	"github.com/wms-platform/workforce-service/pkg/mongodb"
	"github.com/wms-platform/workforce-service/pkg/tracing"

	"github.com/wms-platform/workforce-service/internal/application"
	mongoRepo "github.com/wms-platform/workforce-service/internal/infrastructure/mongodb"
)

func main() {
	logConfig := logging.DefaultConfig(serviceName)
	logConfig.Level = logging.LogLevel(getEnv("LOG_LEVEL", "info"))
	logger := logging.New(logConfig)
	logger.SetDefault()

	logger.Info("Starting workforce-service API")

	config := loadConfig()
	ctx := context.Background()

	// Initialize OpenTelemetry tracing
	tracingConfig := tracing.DefaultConfig(serviceName)
	tracingConfig.OTLPEndpoint = getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317")
	tracingConfig.Environment = getEnv("ENVIRONMENT", "development")
	tracingConfig.Enabled = getEnv("TRACING_ENABLED", "true") == "true"

	tracerProvider, err := tracing.Initialize(ctx, tracingConfig)
	if err != nil {
		logger.WithError(err).Error("Failed to initialize tracing")
		// Continue without tracing - don't exit
	} else if tracerProvider != nil {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
				logger.WithError(err).Error("Failed to shutdown tracer")
			}
		}()
		logger.Info("Tracing initialized", "endpoint", tracingConfig.OTLPEndpoint)
	}

	// Initialize Prometheus metrics
	metricsConfig := metrics.DefaultConfig(serviceName)
	m := metrics.New(metricsConfig)
	logger.Info("Metrics initialized")

	// Initialize MongoDB with instrumentation and circuit breaker
	mongoClient, err := mongodb.NewProductionClient(ctx, config.MongoDB, m, logger)
	if err != nil {
		logger.WithError(err).Error("Failed to connect to MongoDB")
		os.Exit(1)
	}
	defer mongoClient.Close(ctx)
	logger.Info("Connected to MongoDB", "database", config.MongoDB.Database)

	// Initialize Kafka producer with instrumentation and circuit breaker
	producer := kafka.NewProductionProducer(config.Kafka, m, logger)
	defer producer.Close()
	logger.Info("Kafka producer initialized", "brokers", config.Kafka.Brokers)

	// Initialize CloudEvents factory
	eventFactory := cloudevents.NewEventFactory(cloudevents.SourceWorkforce)

	// Initialize repositories
	db := mongoClient.Database()
	customerRepo := mongoRepo.NewCustomerConfigRepository(db)
	forecastRepo := mongoRepo.NewForecastRepository(db)
	rosterRepo := mongoRepo.NewRosterRepository(db)
	planRepo := mongoRepo.NewPlanRepository(db)

	// Initialize application service
	workforceService := application.NewWorkforceApplicationService(
		customerRepo,
		forecastRepo,
		rosterRepo,
		planRepo,
		producer,
		eventFactory,
		m,
		logger,
	)

	// Consume forecast and roster events so calculations always run against
	// the latest upstream data
	consumer := kafka.NewProductionConsumer(config.Kafka, m, logger)
	consumer.Subscribe(kafka.Topics.ForecastEvents, cloudevents.ForecastGenerated, workforceService.HandleForecastEvent)
	consumer.Subscribe(kafka.Topics.ForecastEvents, cloudevents.ForecastUpdated, workforceService.HandleForecastEvent)
	consumer.Subscribe(kafka.Topics.WorkforceEvents, cloudevents.RosterUpdated, workforceService.HandleRosterEvent)
	defer consumer.Close()

	consumerCtx, cancelConsumer := context.WithCancel(ctx)
	defer cancelConsumer()
	go func() {
		if err := consumer.Start(consumerCtx); err != nil && err != context.Canceled {
			logger.WithError(err).Error("Kafka consumer stopped")
		}
	}()
	logger.Info("Kafka consumer started",
		"topics", []string{kafka.Topics.ForecastEvents, kafka.Topics.WorkforceEvents})

	// Setup Gin router with middleware
	router := gin.New()

	middlewareConfig := middleware.DefaultConfig(serviceName, logger.Logger)
	middleware.Setup(router, middlewareConfig)

	router.Use(middleware.MetricsMiddleware(m))
	router.Use(middleware.SimpleTracingMiddleware(serviceName))
	router.Use(middleware.CloudEvents())

	router.NoRoute(middleware.NoRoute())
	router.NoMethod(middleware.NoMethod())

	// Health check endpoints
	router.GET("/health", middleware.HealthCheck(serviceName))
	router.GET("/ready", middleware.ReadinessCheck(serviceName, func() error {
		return mongoClient.HealthCheck(ctx)
	}))

	// Metrics endpoint
	router.GET("/metrics", middleware.MetricsEndpoint(m))

	// API v1 routes
	apiV1 := router.Group("/api/v1")

	workforce := apiV1.Group("/workforce")
	{
		workforce.POST("/plans/calculate", calculatePlanHandler(workforceService, logger))
		workforce.POST("/plans/calculate/legacy", calculateLegacyPlanHandler(workforceService, logger))
		workforce.GET("/plans/:date", getPlanHandler(workforceService, logger))
		workforce.GET("/plans", listPlansHandler(workforceService, logger))
	}

	customers := apiV1.Group("/customers")
	{
		customers.GET("", listCustomersHandler(workforceService, logger))
		customers.GET("/:customerId", getCustomerHandler(workforceService, logger))
	}

	// Start server
	srv := &http.Server{
		Addr:         config.ServerAddr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	// Graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server error", "error", err)
		}
	}()
	logger.Info("Server started", "addr", config.ServerAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	logger.Info("Server stopped")
}
