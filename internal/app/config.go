package app

import (
	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/xenking/spendwise/internal/domain/order"
)

// Config holds the complete application configuration, loadable from
// environment variables (SPENDWISE_ prefix), flags, or YAML config files.
type Config struct {
	Input             string `required:"true" usage:"Ledger file to process (.yaml or .yaml.gz)" flag:"input"`
	Output            string `default:"-" usage:"Report destination, - for stdout" flag:"output"`
	Workers           int    `default:"4" usage:"Orders priced concurrently"`
	SendConfirmations bool   `default:"true" usage:"Send order confirmation mail" flag:"send-confirmations"`
	Pricing           PricingConfig
	Alerts            AlertsConfig
}

// PricingConfig holds the order-level pricing rules. Amounts are decimal
// strings.
type PricingConfig struct {
	GiftCardDiscount string `default:"10" usage:"Flat discount for orders containing a gift card" flag:"gift-card-discount"`
	BulkThreshold    string `default:"100" usage:"Subtotal above which the bulk rate applies" flag:"bulk-threshold"`
	BulkRate         string `default:"0.9" usage:"Multiplier applied to bulk subtotals" flag:"bulk-rate"`
	TaxMode          string `default:"compat" usage:"Taxable item rule: compat or per_line" flag:"tax-mode"`
}

// AlertsConfig controls budget alerting.
type AlertsConfig struct {
	Threshold string `default:"0.85" usage:"Fraction of a budget limit that triggers a near-limit alert"`
}

// LoadConfig loads configuration from environment variables, flags and
// YAML config files, then validates it.
func LoadConfig() (*Config, error) {
	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		EnvPrefix: "SPENDWISE",
		Files:     []string{"spendwise.yaml", "/etc/spendwise/config.yaml"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
	})
	if err := loader.Load(); err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "validate config")
	}
	return &cfg, nil
}

// Validate checks that every derived setting parses.
func (c *Config) Validate() error {
	if c.Input == "" {
		return errors.New("input ledger is required: set SPENDWISE_INPUT or --input")
	}
	if c.Workers < 1 {
		return errors.Errorf("workers must be positive, got %d", c.Workers)
	}
	if _, err := c.Pricing.Policy(); err != nil {
		return err
	}
	if _, err := order.ParseTaxMode(c.Pricing.TaxMode); err != nil {
		return err
	}
	if _, err := c.Alerts.threshold(); err != nil {
		return err
	}
	return nil
}

// Policy parses the pricing rules.
func (p PricingConfig) Policy() (order.Policy, error) {
	var (
		policy order.Policy
		err    error
	)
	if policy.GiftCardDiscount, err = parseAmount("gift card discount", p.GiftCardDiscount); err != nil {
		return order.Policy{}, err
	}
	if policy.BulkThreshold, err = parseAmount("bulk threshold", p.BulkThreshold); err != nil {
		return order.Policy{}, err
	}
	if policy.BulkRate, err = parseAmount("bulk rate", p.BulkRate); err != nil {
		return order.Policy{}, err
	}
	if err := policy.Validate(); err != nil {
		return order.Policy{}, err
	}
	return policy, nil
}

func (a AlertsConfig) threshold() (decimal.Decimal, error) {
	return parseAmount("alert threshold", a.Threshold)
}

func parseAmount(name, s string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, errors.Wrapf(err, "parse %s %q", name, s)
	}
	return v, nil
}
