package app

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/xenking/spendwise/internal/domain/budget"
	"github.com/xenking/spendwise/internal/domain/order"
	"github.com/xenking/spendwise/internal/ledger"
	"github.com/xenking/spendwise/internal/report"
)

// Processor prices the orders of a ledger and checks its budgets.
type Processor struct {
	manager           *order.Manager
	monitor           *budget.Monitor
	workers           int
	sendConfirmations bool
	now               func() time.Time

	ordersPriced metric.Int64Counter
	orderTotal   metric.Float64Histogram
	alertsRaised metric.Int64Counter
}

// ProcessorConfig holds the Processor dependencies.
type ProcessorConfig struct {
	Manager           *order.Manager
	Monitor           *budget.Monitor
	Meter             metric.Meter
	Workers           int
	SendConfirmations bool
	// Now defaults to time.Now.
	Now func() time.Time
}

// NewProcessor creates a Processor and registers its instruments.
func NewProcessor(cfg ProcessorConfig) (*Processor, error) {
	p := &Processor{
		manager:           cfg.Manager,
		monitor:           cfg.Monitor,
		workers:           cfg.Workers,
		sendConfirmations: cfg.SendConfirmations,
		now:               cfg.Now,
	}
	if p.workers < 1 {
		p.workers = 1
	}
	if p.now == nil {
		p.now = time.Now
	}

	var err error
	if p.ordersPriced, err = cfg.Meter.Int64Counter("spendwise.orders.priced",
		metric.WithDescription("Orders priced"),
	); err != nil {
		return nil, errors.Wrap(err, "create orders counter")
	}
	if p.orderTotal, err = cfg.Meter.Float64Histogram("spendwise.order.total",
		metric.WithDescription("Order totals"),
		metric.WithUnit("{USD}"),
	); err != nil {
		return nil, errors.Wrap(err, "create order total histogram")
	}
	if p.alertsRaised, err = cfg.Meter.Int64Counter("spendwise.budget.alerts",
		metric.WithDescription("Budget alerts raised"),
	); err != nil {
		return nil, errors.Wrap(err, "create alerts counter")
	}
	return p, nil
}

// Process prices every order, sends confirmations if enabled and returns
// the report. Orders keep their ledger order in the report.
func (p *Processor) Process(ctx context.Context, l *ledger.Ledger) (report.Report, error) {
	lg := zctx.From(ctx)

	orders := make([]report.Order, len(l.Orders))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)
	for i, o := range l.Orders {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			orders[i] = report.NewOrder(o)
			total := orders[i].Breakdown.Total

			p.ordersPriced.Add(gctx, 1)
			p.orderTotal.Record(gctx, total.InexactFloat64())
			lg.Debug("Order priced",
				zap.String("order_id", o.ID),
				zap.String("customer", o.CustomerName),
				zap.Stringer("total", total),
			)

			if !p.sendConfirmations {
				return nil
			}
			if err := p.manager.SendConfirmation(gctx, o); err != nil {
				return err
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return report.Report{}, errors.Wrap(err, "price orders")
	}

	alerts := p.monitor.Check(p.now(), l.Budgets...)
	for _, a := range alerts {
		p.alertsRaised.Add(ctx, 1, metric.WithAttributes(attribute.String("status", a.Status.String())))
		lg.Info("Budget alert",
			zap.String("key", a.Key),
			zap.Stringer("status", a.Status),
			zap.String("message", a.Message),
		)
	}

	return report.Report{Orders: orders, Alerts: alerts}, nil
}
