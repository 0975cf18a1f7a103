package schema

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/louisbranch/netobs-statsgen/internal/services/statsgen/storage"
)

// Report records which objects one EnsureAll call created.
type Report struct {
	PacketsViewCreated   bool
	ProtocolTypesCreated bool
}

// Provisioner creates missing schema objects behind an existence probe.
//
// Probe-then-create is not atomic: two provisioners racing against a cold
// database can both observe "absent", and the loser fails on the database's
// duplicate object error.
type Provisioner struct {
	dialect Dialect
	logger  *slog.Logger
}

// New returns a provisioner for dialect. A nil logger discards output.
func New(dialect Dialect, logger *slog.Logger) *Provisioner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Provisioner{dialect: dialect, logger: logger}
}

// WithLogger returns a copy that logs to logger.
func (p *Provisioner) WithLogger(logger *slog.Logger) *Provisioner {
	if logger == nil {
		return p
	}
	cp := *p
	cp.logger = logger
	return &cp
}

// Dialect returns the statement set in use.
func (p *Provisioner) Dialect() Dialect {
	return p.dialect
}

// EnsureAll provisions PacketsView, then ProtocolTypes. The objects are
// independent; the order is fixed so logs read the same on every run.
func (p *Provisioner) EnsureAll(ctx context.Context, conn storage.Conn) (Report, error) {
	var report Report
	created, err := p.EnsurePacketsView(ctx, conn)
	if err != nil {
		return report, err
	}
	report.PacketsViewCreated = created

	created, err = p.EnsureProtocolTypes(ctx, conn)
	if err != nil {
		return report, err
	}
	report.ProtocolTypesCreated = created
	return report, nil
}

// EnsurePacketsView creates the derived view and its two indexes when absent.
func (p *Provisioner) EnsurePacketsView(ctx context.Context, conn storage.Conn) (bool, error) {
	return p.Ensure(ctx, conn, p.dialect.PacketsView)
}

// EnsureProtocolTypes creates and seeds the protocol lookup table when absent.
func (p *Provisioner) EnsureProtocolTypes(ctx context.Context, conn storage.Conn) (bool, error) {
	return p.Ensure(ctx, conn, p.dialect.ProtocolTypes)
}

// Ensure probes for obj and runs its creation statements in one transaction
// when the probe reports it absent. It reports whether obj was created.
func (p *Provisioner) Ensure(ctx context.Context, conn storage.Conn, obj Object) (bool, error) {
	if conn == nil {
		return false, fmt.Errorf("ensure %s: connection is required", obj.Name)
	}
	exists, err := p.Exists(ctx, conn, obj)
	if err != nil {
		return false, err
	}
	if exists {
		p.logger.InfoContext(ctx, obj.Name+" already exists", "object", obj.Name, "kind", string(obj.Kind))
		return false, nil
	}

	if err := p.create(ctx, conn, obj); err != nil {
		return false, err
	}
	p.logger.InfoContext(ctx, obj.Created, "object", obj.Name, "kind", string(obj.Kind))
	return true, nil
}

// Exists runs the object's catalog probe.
func (p *Provisioner) Exists(ctx context.Context, conn storage.Conn, obj Object) (bool, error) {
	var found int
	if err := conn.QueryRowContext(ctx, obj.Probe).Scan(&found); err != nil {
		return false, fmt.Errorf("probe %s: %w", obj.Name, err)
	}
	return found == 1, nil
}

func (p *Provisioner) create(ctx context.Context, conn storage.Conn, obj Object) error {
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("create %s: begin: %w", obj.Name, err)
	}
	for i, stmt := range obj.Create {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("create %s: statement %d: %w", obj.Name, i+1, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("create %s: commit: %w", obj.Name, err)
	}
	return nil
}
