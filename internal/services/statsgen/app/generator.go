// Package app hosts the stats generator consumer and its runtime.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/louisbranch/netobs-statsgen/internal/platform/errors"
	"github.com/louisbranch/netobs-statsgen/internal/services/statsgen/domain"
	"github.com/louisbranch/netobs-statsgen/internal/services/statsgen/schema"
	"github.com/louisbranch/netobs-statsgen/internal/services/statsgen/storage"
)

const tracerName = "github.com/louisbranch/netobs-statsgen/internal/services/statsgen/app"

// Log messages emitted for terminal outcomes.
const (
	msgReceived       = "EventMetaData message received"
	msgDone           = "Stats generation schema ensured"
	msgNullContext    = "The incoming message context is null"
	msgInvalidMessage = "The incoming message is invalid"
	msgConnection     = "Failed to open database connection"
	msgUnexpected     = "An unexpected failure occurred during stats generation"
)

// Generator consumes EventMetaData messages and ensures the reporting schema.
// Consume never returns an error: every outcome ends in a log record.
type Generator struct {
	logger      *slog.Logger
	connections storage.ConnectionFactory
	provisioner *schema.Provisioner
	metrics     *Metrics
	tracer      trace.Tracer
	newID       func() string
	clock       func() time.Time
}

// Option customizes a Generator.
type Option func(*Generator)

// WithMetrics records outcomes in m.
func WithMetrics(m *Metrics) Option {
	return func(g *Generator) { g.metrics = m }
}

// WithTracer overrides the global tracer.
func WithTracer(t trace.Tracer) Option {
	return func(g *Generator) { g.tracer = t }
}

// WithClock overrides time.Now.
func WithClock(clock func() time.Time) Option {
	return func(g *Generator) { g.clock = clock }
}

// WithIDGenerator overrides invocation id generation.
func WithIDGenerator(newID func() string) Option {
	return func(g *Generator) { g.newID = newID }
}

// NewGenerator creates a generator. A nil logger discards output.
func NewGenerator(logger *slog.Logger, connections storage.ConnectionFactory, provisioner *schema.Provisioner, opts ...Option) *Generator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	g := &Generator{
		logger:      logger,
		connections: connections,
		provisioner: provisioner,
		tracer:      otel.Tracer(tracerName),
		newID:       uuid.NewString,
		clock:       time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Consume handles one delivery: validate, connect, ensure PacketsView and
// ProtocolTypes, release the connection. Failures are logged and absorbed.
func (g *Generator) Consume(ctx context.Context, cc *domain.ConsumeContext) {
	if ctx == nil {
		ctx = context.Background()
	}
	start := g.clock()
	logger := g.logger.With("invocation_id", g.newID(), "message_id", cc.ID())

	ctx, span := g.tracer.Start(ctx, "statsgen.consume",
		trace.WithSpanKind(trace.SpanKindConsumer),
		trace.WithAttributes(attribute.String("messaging.message.id", cc.ID())),
	)
	defer span.End()

	report, err := g.run(ctx, logger, cc)
	outcome := g.report(ctx, logger, report, err)

	span.SetAttributes(attribute.String("statsgen.outcome", outcome))
	if err != nil {
		span.RecordError(err)
		// Rejected messages are the sender's fault; only failures to provision mark the span.
		if apperrors.CodeOf(err).IsValidation() {
			span.SetAttributes(attribute.Bool("statsgen.rejected", true))
		} else {
			span.SetStatus(otelcodes.Error, outcome)
		}
	}
	g.metrics.observe(outcome, g.clock().Sub(start), report)
}

func (g *Generator) run(ctx context.Context, logger *slog.Logger, cc *domain.ConsumeContext) (report schema.Report, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = apperrors.Wrap(apperrors.CodeUnexpected, "panic during stats generation", fmt.Errorf("%v", r))
		}
	}()

	msg, err := domain.Validate(cc)
	if err != nil {
		return report, err
	}
	logger.InfoContext(ctx, msgReceived, "message", msg)

	conn, err := g.connections.Connect(ctx)
	if err == nil && conn == nil {
		err = fmt.Errorf("connection factory returned no connection")
	}
	if err != nil {
		return report, apperrors.Wrap(apperrors.CodeConnection, "open database connection", err)
	}
	defer func() {
		if closeErr := conn.Close(); closeErr != nil {
			logger.WarnContext(ctx, "close database connection", "error", closeErr)
		}
	}()

	report, err = g.provisioner.WithLogger(logger).EnsureAll(ctx, conn)
	if err != nil {
		return report, apperrors.Wrap(apperrors.CodeUnexpected, "ensure reporting schema", err)
	}
	return report, nil
}

// report logs the terminal state and returns its outcome label.
func (g *Generator) report(ctx context.Context, logger *slog.Logger, report schema.Report, err error) string {
	if err == nil {
		logger.InfoContext(ctx, msgDone,
			"packets_view_created", report.PacketsViewCreated,
			"protocol_types_created", report.ProtocolTypesCreated,
		)
		return outcomeDone
	}

	code := apperrors.CodeOf(err)
	switch code {
	case apperrors.CodeNullContext:
		logger.ErrorContext(ctx, msgNullContext, "code", string(code), "error", err)
	case apperrors.CodeEmptyMessage:
		logger.ErrorContext(ctx, msgInvalidMessage, "code", string(code), "error", err)
	case apperrors.CodeMissingField:
		logger.ErrorContext(ctx, msgInvalidMessage, "code", string(code), "field", domain.MissingField(err), "error", err)
	case apperrors.CodeConnection:
		logger.ErrorContext(ctx, msgConnection, "code", string(code), "error", err)
	default:
		code = apperrors.CodeUnexpected
		logger.ErrorContext(ctx, msgUnexpected, "code", string(code), "error", err)
	}
	return code.Outcome()
}
