package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/Gobusters/ectoenv"
	"github.com/Gobusters/ectoinject"
	"github.com/Gobusters/ectologger"
	"github.com/Gobusters/ectologger/zapadapter"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"

	"github.com/stellyes/catalog-csv-filtering/config"
	"github.com/stellyes/catalog-csv-filtering/pkg/events"
	"github.com/stellyes/catalog-csv-filtering/pkg/kafka"
	"github.com/stellyes/catalog-csv-filtering/pkg/middleware"
	"github.com/stellyes/catalog-csv-filtering/pkg/pipeline"
	"github.com/stellyes/catalog-csv-filtering/pkg/routes/feed"
	"github.com/stellyes/catalog-csv-filtering/pkg/routes/health"
	"github.com/stellyes/catalog-csv-filtering/pkg/tracing"
	"github.com/stellyes/catalog-csv-filtering/pkg/tracing/exporters"
)

const version = "1.0.0"

func main() {
	_ = godotenv.Load()

	cfg := &config.Config{}
	if err := ectoenv.BindEnv(cfg); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	zlog, err := buildZapLogger(cfg)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	logger := ectologger.NewEctoLogger(zapadapter.GetZapLogFunc(zlog, nil))

	// Tracing
	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(&exporters.ConsoleExporter{}))
	otel.SetTracerProvider(tp)
	tracing.SetTracer(tp.Tracer(cfg.AppName))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	// Kafka producer is optional; without it the pipeline emits no events
	var producer *kafka.Producer
	if cfg.KafkaEnabled {
		producer = kafka.NewProducer(kafka.ProducerConfig{
			Brokers:      cfg.KafkaBrokers,
			Topic:        cfg.KafkaOutputTopic,
			BatchSize:    cfg.KafkaBatchSize,
			BatchTimeout: time.Duration(cfg.KafkaBatchTimeout) * time.Millisecond,
			RequiredAcks: cfg.KafkaRequiredAcks,
			Compression:  cfg.KafkaCompression,
		}, logger)
		defer func() { _ = producer.Close() }()
	}

	pipe := pipeline.New(logger, events.NewEmitter(producer, logger))

	// Route handlers resolve from the default container via GetContext.
	container, err := ectoinject.NewDIDefaultContainer()
	if err != nil {
		log.Fatalf("failed to create DI container: %v", err)
	}
	if err := ectoinject.RegisterInstance[ectologger.Logger](container, logger); err != nil {
		log.Fatalf("failed to register logger: %v", err)
	}
	if err := ectoinject.RegisterInstance[*config.Config](container, cfg); err != nil {
		log.Fatalf("failed to register config: %v", err)
	}
	if err := ectoinject.RegisterInstance[*pipeline.Pipeline](container, pipe); err != nil {
		log.Fatalf("failed to register pipeline: %v", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.Error(logger)
	e.Use(otelecho.Middleware(cfg.AppName))
	e.Use(middleware.Logger(logger))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: cfg.AllowMethods,
	}))
	e.Use(echomiddleware.BodyLimit(strconv.FormatInt(cfg.MaxUploadBytes, 10)))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	checker := health.NewChecker(version)
	checker.RegisterRoutes(e)

	api := e.Group("/api/v1")
	feed.Register(api)

	srv := &http.Server{
		Addr:           fmt.Sprintf(":%d", cfg.Port),
		ReadTimeout:    time.Duration(cfg.HttpServerReadTimeoutSeconds) * time.Second,
		WriteTimeout:   time.Duration(cfg.HttpServerWriteTimeoutSeconds) * time.Second,
		IdleTimeout:    time.Duration(cfg.HttpServerIdleTimeoutSeconds) * time.Second,
		MaxHeaderBytes: cfg.MaxHeaderBytes,
	}

	go func() {
		checker.SetReady(true)
		logger.WithFields(map[string]any{"app": cfg.AppName, "port": cfg.Port}).Info("Starting server")
		if err := e.StartServer(srv); err != nil && err != http.ErrServerClosed {
			zlog.Fatal("server exited", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	checker.SetReady(false)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		zlog.Error("failed to shut down cleanly", zap.Error(err))
	}
}

func buildZapLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.PrettyLogs {
		return zap.NewDevelopment()
	}
	zcfg := zap.NewProductionConfig()
	if level, err := zap.ParseAtomicLevel(cfg.LogLevel); err == nil {
		zcfg.Level = level
	}
	return zcfg.Build()
}
