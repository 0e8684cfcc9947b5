package cli

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"guardgen/internal/analyze"
	"guardgen/internal/config"
	"guardgen/internal/diagnostic"
	"guardgen/internal/plan"
)

// ErrDiagnostics signals that resolution reported errors; they have
// already been logged individually.
var ErrDiagnostics = errors.New("resolution reported errors")

// buildPlan runs the shared front half of every command: load config,
// validate it, load packages, resolve the plan, and report diagnostics.
func buildPlan(path string) (*plan.Plan, *analyze.Loader, error) {
	cfg, err := config.LoadFile(path)
	if err != nil {
		return nil, nil, err
	}

	if err := config.Validate(cfg); err != nil {
		return nil, nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	logger.Debug("loading packages", zap.Strings("patterns", cfg.Packages))

	loader, err := analyze.Load(cfg.Packages...)
	if err != nil {
		return nil, nil, err
	}

	p := plan.Build(loader, cfg)
	reportDiagnostics(&p.Diags)

	if p.Diags.HasErrors() {
		return nil, nil, ErrDiagnostics
	}

	return p, loader, nil
}

func reportDiagnostics(diags *diagnostic.Diagnostics) {
	for _, d := range diags.All() {
		fields := []zap.Field{
			zap.String("code", d.Code),
			zap.String("entity", d.Entity),
		}
		if d.Member != "" {
			fields = append(fields, zap.String("member", d.Member))
		}

		switch d.Severity {
		case diagnostic.SeverityError:
			logger.Error(d.Message, fields...)
		case diagnostic.SeverityWarning:
			logger.Warn(d.Message, fields...)
		default:
			logger.Info(d.Message, fields...)
		}
	}
}
