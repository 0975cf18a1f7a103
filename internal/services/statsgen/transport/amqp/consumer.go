package amqp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v5"
	amqp091 "github.com/rabbitmq/amqp091-go"
	"go.opentelemetry.io/otel"
	"golang.org/x/sync/errgroup"

	"github.com/louisbranch/netobs-statsgen/internal/services/statsgen/domain"
)

// ErrDeliveriesClosed reports that the broker closed the delivery channel
// while the consumer was still running.
var ErrDeliveriesClosed = errors.New("amqp delivery channel closed")

// Handler processes one decoded delivery. It owns every outcome; the
// consumer acks the delivery once Consume returns.
type Handler interface {
	Consume(ctx context.Context, cc *domain.ConsumeContext)
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ctx context.Context, cc *domain.ConsumeContext)

// Consume calls f.
func (f HandlerFunc) Consume(ctx context.Context, cc *domain.ConsumeContext) {
	f(ctx, cc)
}

// topology is the subset of *amqp091.Channel used to declare the queue.
type topology interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp091.Table) error
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp091.Table) (amqp091.Queue, error)
	QueueBind(name, key, exchange string, noWait bool, args amqp091.Table) error
	Qos(prefetchCount, prefetchSize int, global bool) error
}

var _ topology = (*amqp091.Channel)(nil)

// Consumer reads deliveries from one queue and dispatches them to a Handler.
type Consumer struct {
	cfg     Config
	handler Handler
	logger  *slog.Logger
	ready   func()
}

// ConsumerOption customizes a Consumer.
type ConsumerOption func(*Consumer)

// WithReady registers fn to run once deliveries start flowing.
func WithReady(fn func()) ConsumerOption {
	return func(c *Consumer) { c.ready = fn }
}

// NewConsumer creates a consumer. A nil logger discards output.
func NewConsumer(cfg Config, handler Handler, logger *slog.Logger, opts ...ConsumerOption) (*Consumer, error) {
	if handler == nil {
		return nil, errors.New("handler is required")
	}
	cfg = cfg.normalized()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	c := &Consumer{cfg: cfg, handler: handler, logger: logger}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c, nil
}

// Dial connects to the broker, retrying with exponential backoff until
// timeout elapses or ctx is cancelled.
func Dial(ctx context.Context, rawURL string, timeout time.Duration, logger *slog.Logger) (*amqp091.Connection, error) {
	if _, err := amqp091.ParseURI(rawURL); err != nil {
		return nil, fmt.Errorf("parse broker url: %w", err)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	conn, err := backoff.Retry(ctx, func() (*amqp091.Connection, error) {
		return amqp091.Dial(rawURL)
	},
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxElapsedTime(timeout),
		backoff.WithNotify(func(err error, next time.Duration) {
			logger.WarnContext(ctx, "broker dial failed, retrying", "error", err, "retry_in", next)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("dial broker: %w", err)
	}
	return conn, nil
}

// Run dials the broker, declares the queue and consumes until ctx is
// cancelled or the broker closes the channel.
func (c *Consumer) Run(ctx context.Context) error {
	conn, err := Dial(ctx, c.cfg.URL, c.cfg.DialTimeout, c.logger)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := conn.Close(); closeErr != nil && !errors.Is(closeErr, amqp091.ErrClosed) {
			c.logger.Warn("close broker connection", "error", closeErr)
		}
	}()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("open broker channel: %w", err)
	}
	defer func() {
		if closeErr := ch.Close(); closeErr != nil && !errors.Is(closeErr, amqp091.ErrClosed) {
			c.logger.Warn("close broker channel", "error", closeErr)
		}
	}()

	if err := c.declare(ch); err != nil {
		return err
	}
	deliveries, err := ch.ConsumeWithContext(ctx, c.cfg.Queue, c.cfg.ConsumerTag, false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume queue %s: %w", c.cfg.Queue, err)
	}
	c.logger.InfoContext(ctx, "consuming queue", "queue", c.cfg.Queue, "exchange", c.cfg.Exchange, "concurrency", c.cfg.Concurrency)
	return c.Serve(ctx, deliveries)
}

func (c *Consumer) declare(ch topology) error {
	if _, err := ch.QueueDeclare(c.cfg.Queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare queue %s: %w", c.cfg.Queue, err)
	}
	if c.cfg.Exchange != "" {
		if err := ch.ExchangeDeclare(c.cfg.Exchange, amqp091.ExchangeFanout, true, false, false, false, nil); err != nil {
			return fmt.Errorf("declare exchange %s: %w", c.cfg.Exchange, err)
		}
		if err := ch.QueueBind(c.cfg.Queue, "", c.cfg.Exchange, false, nil); err != nil {
			return fmt.Errorf("bind queue %s to %s: %w", c.cfg.Queue, c.cfg.Exchange, err)
		}
	}
	if err := ch.Qos(c.cfg.Prefetch, 0, false); err != nil {
		return fmt.Errorf("set prefetch: %w", err)
	}
	return nil
}

// Serve dispatches deliveries across Concurrency workers. It returns nil once
// ctx is cancelled and ErrDeliveriesClosed if the channel closes first.
func (c *Consumer) Serve(ctx context.Context, deliveries <-chan amqp091.Delivery) error {
	if c.ready != nil {
		c.ready()
	}
	g, gctx := errgroup.WithContext(ctx)
	for range c.cfg.Concurrency {
		g.Go(func() error {
			for {
				select {
				case <-gctx.Done():
					return nil
				case d, ok := <-deliveries:
					if !ok {
						if ctx.Err() != nil {
							return nil
						}
						return ErrDeliveriesClosed
					}
					c.handle(gctx, d)
				}
			}
		})
	}
	return g.Wait()
}

func (c *Consumer) handle(ctx context.Context, d amqp091.Delivery) {
	ctx = otel.GetTextMapPropagator().Extract(ctx, headerCarrier(d.Headers))
	cc, err := Decode(d)
	if err != nil {
		c.logger.WarnContext(ctx, "undecodable delivery", "delivery_tag", d.DeliveryTag, "error", err)
	}
	c.handler.Consume(ctx, cc)
	if err := d.Ack(false); err != nil {
		c.logger.ErrorContext(ctx, "ack delivery", "delivery_tag", d.DeliveryTag, "error", err)
	}
}

// headerCarrier exposes string AMQP headers to OpenTelemetry propagators.
type headerCarrier amqp091.Table

func (h headerCarrier) Get(key string) string {
	if v, ok := h[key].(string); ok {
		return v
	}
	return ""
}

func (h headerCarrier) Set(key, value string) {
	h[key] = value
}

func (h headerCarrier) Keys() []string {
	keys := make([]string, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	return keys
}
