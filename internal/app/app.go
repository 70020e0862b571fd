package app

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/app"
	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"

	"github.com/xenking/spendwise/internal/domain/budget"
	"github.com/xenking/spendwise/internal/domain/order"
	"github.com/xenking/spendwise/internal/ledger"
	"github.com/xenking/spendwise/internal/mail"
	"github.com/xenking/spendwise/internal/report"
)

// now is the clock used for budget periods.
var now = time.Now

// Run loads the ledger, prices its orders, checks its budgets and writes
// the report. It is the single wiring point for the application.
func Run(ctx context.Context, lg *zap.Logger, m *app.Telemetry, cfg *Config) error {
	lg.Info("Initializing", zap.String("input", cfg.Input), zap.Int("workers", cfg.Workers))
	ctx = zctx.Base(ctx, lg)

	ctx, span := m.TracerProvider().Tracer("spendwise").Start(ctx, "Run")
	defer span.End()

	policy, err := cfg.Pricing.Policy()
	if err != nil {
		return err
	}
	taxMode, err := order.ParseTaxMode(cfg.Pricing.TaxMode)
	if err != nil {
		return err
	}
	threshold, err := cfg.Alerts.threshold()
	if err != nil {
		return err
	}

	doc, err := ledger.Load(cfg.Input)
	if err != nil {
		return errors.Wrap(err, "load ledger")
	}
	l, err := ledger.Build(doc, ledger.BuildOptions{Policy: &policy, TaxMode: taxMode})
	if err != nil {
		return errors.Wrap(err, "build ledger")
	}
	lg.Info("Ledger loaded",
		zap.Int("orders", len(l.Orders)),
		zap.Int("budgets", len(l.Budgets)),
	)

	p, err := NewProcessor(ProcessorConfig{
		Manager:           order.NewManager(mail.NewLogSender(lg.Named("mail"))),
		Monitor:           budget.NewMonitor(threshold),
		Meter:             m.MeterProvider().Meter("spendwise"),
		Workers:           cfg.Workers,
		SendConfirmations: cfg.SendConfirmations,
		Now:               now,
	})
	if err != nil {
		return errors.Wrap(err, "create processor")
	}

	r, err := p.Process(ctx, l)
	if err != nil {
		return err
	}

	return writeReport(cfg.Output, r)
}

func writeReport(path string, r report.Report) (rerr error) {
	var w io.Writer = os.Stdout
	if path != "" && path != "-" {
		f, err := os.Create(path)
		if err != nil {
			return errors.Wrap(err, "create report")
		}
		defer func() {
			if err := f.Close(); err != nil && rerr == nil {
				rerr = errors.Wrap(err, "close report")
			}
		}()
		w = f
	}
	return report.Write(w, r)
}
