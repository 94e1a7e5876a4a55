// Package config loads and validates pricing scenarios.
//
// Scenarios live in a YAML or JSON file read through viper, so every field
// can also be overridden with OPTLATTICE_* environment variables. Validation
// happens here, before any number reaches the pricing engine: the engine's
// math performs no input checks of its own.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/contactkeval/option-lattice/internal/pricing"
)

// ErrInvalidParameters marks scenario rejection. Wrapped errors carry the
// offending field.
var ErrInvalidParameters = errors.New("invalid scenario parameters")

// Scenario holds the scalar inputs of a single valuation request. The same
// struct doubles as the REST request body, hence the json tags.
type Scenario struct {
	S0            float64 `mapstructure:"s0" json:"s0" validate:"gt=0"`
	Strike        float64 `mapstructure:"strike" json:"strike" validate:"gt=0"`
	MaturityYears float64 `mapstructure:"maturity_years" json:"maturity_years" validate:"gt=0"`
	Rate          float64 `mapstructure:"rate" json:"rate"`
	Sigma         float64 `mapstructure:"sigma" json:"sigma" validate:"gt=0"`
	Steps         int     `mapstructure:"steps" json:"steps" validate:"gte=1"`
	Kind          string  `mapstructure:"kind" json:"kind" validate:"oneof=call put"`
}

// Parameters converts the scenario into the pricing engine's value type.
// Only call this on a validated scenario.
func (s Scenario) Parameters() pricing.Parameters {
	kind := pricing.Call
	if strings.EqualFold(s.Kind, string(pricing.Put)) {
		kind = pricing.Put
	}
	return pricing.Parameters{
		S0:       s.S0,
		Strike:   s.Strike,
		Maturity: s.MaturityYears,
		Rate:     s.Rate,
		Sigma:    s.Sigma,
		Steps:    s.Steps,
		Kind:     kind,
	}
}

// Market optionally resolves the spot price and volatility from market data
// instead of the scenario scalars. When Ticker is set, the engine fetches
// daily closes from a data provider, uses the last close as S0 and the
// annualized log-return volatility of the lookback window as sigma.
type Market struct {
	Ticker       string `mapstructure:"ticker" json:"ticker,omitempty"`
	LookbackDays int    `mapstructure:"lookback_days" json:"lookback_days,omitempty"`
}

// Config is the full application configuration.
type Config struct {
	Scenario  Scenario `mapstructure:"scenario" json:"scenario"`
	Market    Market   `mapstructure:"market" json:"market"`
	ReportDir string   `mapstructure:"report_dir" json:"report_dir"`
	Verbosity int      `mapstructure:"verbosity" json:"verbosity"`
}

// Defaults mirror the classic put example: a one-year 40-strike put on an
// underlying at 36 with 6% rates and 20% vol, on a 10-step tree.
func setDefaults(v *viper.Viper) {
	v.SetDefault("scenario.s0", 36.0)
	v.SetDefault("scenario.strike", 40.0)
	v.SetDefault("scenario.maturity_years", 1.0)
	v.SetDefault("scenario.rate", 0.06)
	v.SetDefault("scenario.sigma", 0.2)
	v.SetDefault("scenario.steps", 10)
	v.SetDefault("scenario.kind", "put")
	v.SetDefault("market.lookback_days", 252)
	v.SetDefault("report_dir", "./out")
	v.SetDefault("verbosity", 1)
}

// Load reads the config file at path. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("OPTLATTICE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

var validate = validator.New()

// ValidateScenario rejects parameter combinations the pricing engine must
// never see: non-positive S0/K/T/sigma, fewer than one step, or an unknown
// option kind. Rates may be negative; the engine copes with that (though
// extreme values violate the no-arbitrage bound, which is a separate,
// non-fatal diagnostic).
func ValidateScenario(s Scenario) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		f := verrs[0]
		return fmt.Errorf("%w: field %s rejected by rule %q (value %v)",
			ErrInvalidParameters, f.Field(), f.Tag(), f.Value())
	}
	return fmt.Errorf("%w: %v", ErrInvalidParameters, err)
}
