package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	platformgrpc "github.com/louisbranch/netobs-statsgen/internal/platform/grpc"
	"github.com/louisbranch/netobs-statsgen/internal/platform/logging"
	"github.com/louisbranch/netobs-statsgen/internal/platform/timeouts"
	"github.com/louisbranch/netobs-statsgen/internal/services/statsgen/schema"
	"github.com/louisbranch/netobs-statsgen/internal/services/statsgen/storage/sqldb"
	amqptransport "github.com/louisbranch/netobs-statsgen/internal/services/statsgen/transport/amqp"
)

// RuntimeConfig controls statsgen startup, dependencies, and consumer behavior.
type RuntimeConfig struct {
	Port               int
	MetricsAddr        string
	DBDriver           string
	DBConnectionString string
	BrokerURL          string
	Queue              string
	Exchange           string
	Prefetch           int
	Concurrency        int
	DialTimeout        time.Duration
	LogLevel           string
	LogFormat          string
	LogOutput          io.Writer
}

const defaultStatsGenPort = 8095

// HealthService is the gRPC health service name reported by the runtime.
const HealthService = "statsgen.runtime"

func (cfg RuntimeConfig) normalized() RuntimeConfig {
	if cfg.Port <= 0 {
		cfg.Port = defaultStatsGenPort
	}
	cfg.DBDriver = strings.ToLower(strings.TrimSpace(cfg.DBDriver))
	if cfg.DBDriver == "" {
		cfg.DBDriver = sqldb.DriverSQLServer
	}
	cfg.MetricsAddr = strings.TrimSpace(cfg.MetricsAddr)
	if cfg.LogFormat == "" {
		cfg.LogFormat = string(logging.FormatJSON)
	}
	if cfg.LogOutput == nil {
		cfg.LogOutput = os.Stdout
	}
	return cfg
}

func (cfg RuntimeConfig) validate() error {
	if strings.TrimSpace(cfg.DBConnectionString) == "" {
		return errors.New("database connection string is required")
	}
	if strings.TrimSpace(cfg.BrokerURL) == "" {
		return errors.New("broker url is required")
	}
	if strings.TrimSpace(cfg.Queue) == "" {
		return errors.New("queue is required")
	}
	return nil
}

// Run opens the database, starts the health and metrics servers, and
// consumes EventMetaData messages until ctx is cancelled.
func Run(ctx context.Context, cfg RuntimeConfig) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg = cfg.normalized()
	if err := cfg.validate(); err != nil {
		return err
	}
	dialect, err := schema.DialectFor(cfg.DBDriver)
	if err != nil {
		return err
	}
	logger := logging.New(cfg.LogOutput, logging.Format(cfg.LogFormat), logging.ParseLevel(cfg.LogLevel))

	db, err := sqldb.Open(ctx, dialect.Name, cfg.DBConnectionString)
	if err != nil {
		return fmt.Errorf("open statsgen database: %w", err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			log.Printf("close statsgen database: %v", closeErr)
		}
	}()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics, err := NewMetrics(registry)
	if err != nil {
		return err
	}

	generator := NewGenerator(logger, db, schema.New(dialect, logger), WithMetrics(metrics))
	healthServer := platformgrpc.NewHealthServer(HealthService)
	consumer, err := amqptransport.NewConsumer(amqptransport.Config{
		URL:         cfg.BrokerURL,
		Queue:       cfg.Queue,
		Exchange:    cfg.Exchange,
		Prefetch:    cfg.Prefetch,
		Concurrency: cfg.Concurrency,
		DialTimeout: cfg.DialTimeout,
	}, generator, logger, amqptransport.WithReady(func() {
		healthServer.SetServing(true)
	}))
	if err != nil {
		return fmt.Errorf("create consumer: %w", err)
	}

	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Port))
	if err != nil {
		return fmt.Errorf("listen on statsgen port %d: %w", cfg.Port, err)
	}
	defer listener.Close()

	var metricsServer *http.Server
	if cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}))
		metricsServer = &http.Server{Addr: cfg.MetricsAddr, Handler: mux, ReadHeaderTimeout: timeouts.ReadHeader}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := healthServer.Serve(listener); err != nil {
			return fmt.Errorf("serve health: %w", err)
		}
		return nil
	})
	if metricsServer != nil {
		g.Go(func() error {
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("serve metrics: %w", err)
			}
			return nil
		})
	}
	g.Go(func() error {
		return consumer.Run(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		healthServer.Stop()
		if metricsServer != nil {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
			defer cancel()
			if err := metricsServer.Shutdown(shutdownCtx); err != nil {
				log.Printf("shutdown metrics server: %v", err)
			}
		}
		return nil
	})

	log.Printf("statsgen server listening at %v (dialect %s)", listener.Addr(), dialect.Name)
	return g.Wait()
}
