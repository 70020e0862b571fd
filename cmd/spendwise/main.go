// Binary spendwise prices a ledger of orders and reports budget alerts.
package main

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/app"
	"go.uber.org/zap"

	spendwise "github.com/xenking/spendwise/internal/app"
)

const serviceName = "spendwise"

func run(ctx context.Context, lg *zap.Logger, t *app.Telemetry) error {
	cfg, err := spendwise.LoadConfig()
	if err != nil {
		return errors.Wrap(err, "config")
	}
	lg.Debug("Config loaded",
		zap.String("output", cfg.Output),
		zap.String("tax_mode", cfg.Pricing.TaxMode),
		zap.Bool("send_confirmations", cfg.SendConfirmations),
	)
	return spendwise.Run(ctx, lg, t, cfg)
}

func main() {
	app.Run(run, app.WithServiceName(serviceName))
}
