package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"
	"github.com/kelseyhightower/envconfig"

	"github.com/dashgrid/go-exporter/internal/compiler"
	"github.com/dashgrid/go-exporter/internal/exporter"
	"github.com/dashgrid/go-exporter/internal/exporter/mq"
	"github.com/dashgrid/go-exporter/internal/exporter/rest"
	"github.com/dashgrid/go-exporter/internal/filename"
	"github.com/dashgrid/go-exporter/internal/kafka"
	"github.com/dashgrid/go-exporter/internal/parser"
	"github.com/dashgrid/go-exporter/internal/qrcode"
	"github.com/dashgrid/go-exporter/internal/response"
)

type configuration struct {
	Port       int    `envconfig:"PORT" default:"8080"`
	CORSOrigin string `envconfig:"CORS_ORIGIN" default:"*"`

	MQEnabled bool   `envconfig:"MQ_ENABLED" default:"false"`
	MQHost    string `envconfig:"MQ_HOST" default:"localhost"`
	MQPort    int    `envconfig:"MQ_PORT" default:"9093"`

	CompileTopicRequest  string `envconfig:"COMPILE_TOPIC_REQUEST" default:"request"`
	CompileTopicResponse string `envconfig:"COMPILE_TOPIC_RESPONSE" default:"response"`
}

const (
	prefixCfg   = ""
	serviceName = "exporter"

	shutdownTimeout = 5 * time.Second
)

func main() {
	logger := log.NewJSONLogger(log.NewSyncWriter(os.Stdout))
	logger = log.WithPrefix(logger, "service", serviceName)
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)

	var cfg configuration
	if err := envconfig.Process(prefixCfg, &cfg); err != nil {
		level.Error(logger).Log("msg", "configuration", "err", err)
		os.Exit(1)
	}

	level.Info(logger).Log("msg", "initialization")

	parser, err := parser.New()
	if err != nil {
		level.Error(logger).Log("msg", "parser init", "err", err)
		os.Exit(1)
	}

	c := compiler.NewFacade(
		parser,
		qrcode.NewCreator(),
	)

	svc := exporter.NewService(
		filename.NewBuilder(uuid.New().String),
		c.Compile,
		logger,
	)

	handler := rest.NewHandler(
		svc,
		rest.NewCompileTransport(uuid.New().String),
		response.Build,
		cfg.CORSOrigin,
	)
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: handler,
	}
	go func() {
		level.Info(logger).Log("msg", "http listener turn on", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			level.Error(logger).Log("msg", "http listener", "err", err)
			os.Exit(1)
		}
	}()

	var mqKafka *kafka.MessageQueue
	if cfg.MQEnabled {
		address := fmt.Sprintf("%s:%d", cfg.MQHost, cfg.MQPort)
		if mqKafka, err = kafka.NewMessageQueue(
			[]string{address},
		); err != nil {
			level.Error(logger).Log("msg", "kafka init", "address", address, "err", err)
			os.Exit(1)
		}

		compileHandler := mq.NewCompileHandler(
			svc,
			mq.NewCompileTransport(
				response.Build,
			),
			mqKafka.NewPublish(cfg.CompileTopicResponse),
		)
		if err = mqKafka.Consume(cfg.CompileTopicRequest, compileHandler); err != nil {
			level.Error(logger).Log("msg", "kafka consume", "topic", cfg.CompileTopicRequest, "err", err)
			os.Exit(1)
		}

		level.Info(logger).Log("msg", "kafka listener turn on")
		mqKafka.ListenAndServe()
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGTERM, syscall.SIGINT)
	level.Info(logger).Log("msg", "received signal", "signal", <-sig)

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		level.Error(logger).Log("msg", "http listener shutdown", "err", err)
	}
	if mqKafka != nil {
		level.Info(logger).Log("msg", "kafka listener shutdown")
		mqKafka.Shutdown()
	}
	level.Info(logger).Log("msg", "stop service")
}
