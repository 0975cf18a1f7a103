// Package statsgen parses stats generator command flags and launches its runtime.
package statsgen

import (
	"context"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	entrypoint "github.com/louisbranch/netobs-statsgen/internal/platform/cmd"
	platformgrpc "github.com/louisbranch/netobs-statsgen/internal/platform/grpc"
	"github.com/louisbranch/netobs-statsgen/internal/platform/timeouts"
	statsgenserver "github.com/louisbranch/netobs-statsgen/internal/services/statsgen/app"
	amqptransport "github.com/louisbranch/netobs-statsgen/internal/services/statsgen/transport/amqp"
)

// Config holds stats generator command configuration.
type Config struct {
	ConfigPath         string        `env:"NETOBS_STATSGEN_CONFIG" yaml:"-"`
	Port               int           `env:"NETOBS_STATSGEN_PORT" envDefault:"8095" yaml:"port"`
	MetricsAddr        string        `env:"NETOBS_STATSGEN_METRICS_ADDR" envDefault:":9108" yaml:"metricsAddr"`
	DBDriver           string        `env:"NETOBS_STATSGEN_DB_DRIVER" envDefault:"sqlserver" yaml:"dbDriver"`
	DBConnectionString string        `env:"DB_CONNECTION_STRING" yaml:"dbConnectionString"`
	Queue              string        `env:"EVENTDATA_PROCESS_QUEUE" yaml:"queue"`
	Exchange           string        `env:"NETOBS_STATSGEN_EXCHANGE" envDefault:"EFR.NetworkObservability.RabbitMQ:EventMetaDataMessage" yaml:"exchange"`
	RabbitHost         string        `env:"RABBITMQ_HOSTNAME" yaml:"rabbitmqHostname"`
	RabbitPort         int           `env:"RABBITMQ_PORT" envDefault:"5672" yaml:"rabbitmqPort"`
	RabbitUsername     string        `env:"RABBITMQ_USERNAME" yaml:"rabbitmqUsername"`
	RabbitPassword     string        `env:"RABBITMQ_PASSWORD" yaml:"rabbitmqPassword"`
	RabbitVHost        string        `env:"RABBITMQ_VHOST" envDefault:"/" yaml:"rabbitmqVhost"`
	Prefetch           int           `env:"NETOBS_STATSGEN_PREFETCH" envDefault:"1" yaml:"prefetch"`
	Concurrency        int           `env:"NETOBS_STATSGEN_CONCURRENCY" envDefault:"1" yaml:"concurrency"`
	DialTimeout        time.Duration `env:"NETOBS_STATSGEN_DIAL_TIMEOUT" envDefault:"30s" yaml:"dialTimeout"`
	LogLevel           string        `env:"NETOBS_STATSGEN_LOG_LEVEL" envDefault:"info" yaml:"logLevel"`
	LogFormat          string        `env:"NETOBS_STATSGEN_LOG_FORMAT" envDefault:"json" yaml:"logFormat"`
	HealthCheck        bool          `yaml:"-"`
}

// ParseConfig parses environment, an optional YAML file, and flags into a
// Config, in increasing precedence.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	if path := configFlag(args); path != "" {
		cfg.ConfigPath = path
	}
	if err := entrypoint.ParseConfigFile(&cfg, cfg.ConfigPath); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.ConfigPath, "config", cfg.ConfigPath, "Optional YAML configuration file")
	fs.IntVar(&cfg.Port, "port", cfg.Port, "The statsgen health gRPC server port")
	fs.StringVar(&cfg.MetricsAddr, "metrics-addr", cfg.MetricsAddr, "Prometheus metrics listen address (empty disables)")
	fs.StringVar(&cfg.DBDriver, "db-driver", cfg.DBDriver, "Database driver: sqlserver, postgres or sqlite")
	fs.StringVar(&cfg.DBConnectionString, "db-connection-string", cfg.DBConnectionString, "Database connection string")
	fs.StringVar(&cfg.Queue, "queue", cfg.Queue, "EventMetaData queue name")
	fs.StringVar(&cfg.Exchange, "exchange", cfg.Exchange, "Exchange bound to the queue (empty skips binding)")
	fs.StringVar(&cfg.RabbitHost, "rabbitmq-host", cfg.RabbitHost, "RabbitMQ host name")
	fs.IntVar(&cfg.RabbitPort, "rabbitmq-port", cfg.RabbitPort, "RabbitMQ port")
	fs.StringVar(&cfg.RabbitUsername, "rabbitmq-username", cfg.RabbitUsername, "RabbitMQ user name")
	fs.StringVar(&cfg.RabbitPassword, "rabbitmq-password", cfg.RabbitPassword, "RabbitMQ password")
	fs.StringVar(&cfg.RabbitVHost, "rabbitmq-vhost", cfg.RabbitVHost, "RabbitMQ virtual host")
	fs.IntVar(&cfg.Prefetch, "prefetch", cfg.Prefetch, "Unacked deliveries the broker may push")
	fs.IntVar(&cfg.Concurrency, "concurrency", cfg.Concurrency, "Concurrent message handlers")
	fs.DurationVar(&cfg.DialTimeout, "dial-timeout", cfg.DialTimeout, "Broker dial retry budget")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn or error")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format: json or text")
	fs.BoolVar(&cfg.HealthCheck, "healthcheck", false, "Probe a running instance's health server and exit")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// configFlag finds the -config value before the full flag set is parsed.
func configFlag(args []string) string {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return ""
		}
		name, value, hasValue := strings.Cut(strings.TrimLeft(arg, "-"), "=")
		if !strings.HasPrefix(arg, "-") || name != "config" {
			continue
		}
		if hasValue {
			return value
		}
		if i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

// BrokerURL assembles the RabbitMQ URL from the discrete settings.
func (cfg Config) BrokerURL() string {
	return amqptransport.URL(cfg.RabbitHost, cfg.RabbitPort, cfg.RabbitUsername, cfg.RabbitPassword, cfg.RabbitVHost)
}

// CheckHealth probes the health server of an instance running on cfg.Port.
func CheckHealth(ctx context.Context, cfg Config) error {
	addr := net.JoinHostPort("127.0.0.1", strconv.Itoa(cfg.Port))
	if err := platformgrpc.Probe(ctx, addr, statsgenserver.HealthService, timeouts.HealthProbe); err != nil {
		return fmt.Errorf("statsgen at %s is not serving: %w", addr, err)
	}
	return nil
}

// Run starts the stats generator runtime.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceStatsGen, func(ctx context.Context) error {
		return statsgenserver.Run(ctx, statsgenserver.RuntimeConfig{
			Port:               cfg.Port,
			MetricsAddr:        cfg.MetricsAddr,
			DBDriver:           cfg.DBDriver,
			DBConnectionString: cfg.DBConnectionString,
			BrokerURL:          cfg.BrokerURL(),
			Queue:              cfg.Queue,
			Exchange:           cfg.Exchange,
			Prefetch:           cfg.Prefetch,
			Concurrency:        cfg.Concurrency,
			DialTimeout:        cfg.DialTimeout,
			LogLevel:           cfg.LogLevel,
			LogFormat:          cfg.LogFormat,
		})
	})
}
