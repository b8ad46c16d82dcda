package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Balance holds the pacing and economy tuning for a service day. All
// durations are seconds of simulated time.
type Balance struct {
	// Prep
	PrepBaseSeconds          float64 `yaml:"prep_base_seconds" json:"prep_base_seconds"`
	PrepPerComplexitySeconds float64 `yaml:"prep_per_complexity_seconds" json:"prep_per_complexity_seconds"`

	// Ticket rail
	ArrivalIntervalSeconds float64 `yaml:"arrival_interval_seconds" json:"arrival_interval_seconds"`
	PrintSeconds           float64 `yaml:"print_seconds" json:"print_seconds"`
	FallbackArrivalOffset  float64 `yaml:"fallback_arrival_offset" json:"fallback_arrival_offset"`

	// Payout tiers
	FastThresholdSeconds float64 `yaml:"fast_threshold_seconds" json:"fast_threshold_seconds"`
	FastReward           float64 `yaml:"fast_reward" json:"fast_reward"`
	OnTimeReward         float64 `yaml:"on_time_reward" json:"on_time_reward"`
	LateReward           float64 `yaml:"late_reward" json:"late_reward"`
	RebateFraction       float64 `yaml:"rebate_fraction" json:"rebate_fraction"`

	// Penalties
	GiveUpPenalty float64 `yaml:"give_up_penalty" json:"give_up_penalty"`

	// Star rating
	ComplexityStarLow  float64 `yaml:"complexity_star_low" json:"complexity_star_low"`
	ComplexityStarHigh float64 `yaml:"complexity_star_high" json:"complexity_star_high"`

	StartingMoney float64 `yaml:"starting_money" json:"starting_money"`
}

// Default returns the standard balance.
func Default() Balance {
	return Balance{
		PrepBaseSeconds:          15,
		PrepPerComplexitySeconds: 5,
		ArrivalIntervalSeconds:   10,
		PrintSeconds:             2.25,
		FallbackArrivalOffset:    5,
		FastThresholdSeconds:     20,
		FastReward:               15,
		OnTimeReward:             8,
		LateReward:               0,
		RebateFraction:           0.5,
		GiveUpPenalty:            20,
		ComplexityStarLow:        15,
		ComplexityStarHigh:       30,
		StartingMoney:            250,
	}
}

// Relaxed gives longer prep and slower arrivals for new players.
func Relaxed() Balance {
	cfg := Default()
	cfg.PrepBaseSeconds = 25
	cfg.ArrivalIntervalSeconds = 14
	cfg.GiveUpPenalty = 10
	cfg.StartingMoney = 400
	return cfg
}

// Rush tightens the rail for experienced players.
func Rush() Balance {
	cfg := Default()
	cfg.PrepBaseSeconds = 10
	cfg.PrepPerComplexitySeconds = 3
	cfg.ArrivalIntervalSeconds = 7
	cfg.FastReward = 20
	cfg.GiveUpPenalty = 30
	cfg.StartingMoney = 150
	return cfg
}

// Preset returns a named balance.
func Preset(name string) (Balance, bool) {
	switch name {
	case "", "default", "standard":
		return Default(), true
	case "relaxed", "casual":
		return Relaxed(), true
	case "rush", "hard":
		return Rush(), true
	default:
		return Balance{}, false
	}
}

func (b Balance) Validate() error {
	if b.PrepBaseSeconds < 0 || b.PrepPerComplexitySeconds < 0 {
		return fmt.Errorf("prep durations must not be negative")
	}
	if b.ArrivalIntervalSeconds <= 0 {
		return fmt.Errorf("arrival interval must be positive, got %v", b.ArrivalIntervalSeconds)
	}
	if b.PrintSeconds <= 0 {
		return fmt.Errorf("print duration must be positive, got %v", b.PrintSeconds)
	}
	if b.RebateFraction < 0 {
		return fmt.Errorf("rebate fraction must not be negative, got %v", b.RebateFraction)
	}
	if b.ComplexityStarHigh < b.ComplexityStarLow {
		return fmt.Errorf("complexity star thresholds out of order: %v > %v", b.ComplexityStarLow, b.ComplexityStarHigh)
	}
	return nil
}

// ParseBalanceYAML overlays data onto base; fields missing from data keep
// the base value.
func ParseBalanceYAML(base Balance, data []byte) (Balance, error) {
	out := base
	if len(bytes.TrimSpace(data)) == 0 {
		return out, nil
	}
	if err := yaml.Unmarshal(data, &out); err != nil {
		return Balance{}, fmt.Errorf("balance: decode: %w", err)
	}
	if err := out.Validate(); err != nil {
		return Balance{}, fmt.Errorf("balance: %w", err)
	}
	return out, nil
}

// LoadBalance reads a YAML override file. A missing file yields base.
func LoadBalance(path string, base Balance) (Balance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return base, nil
		}
		return Balance{}, fmt.Errorf("balance: read %s: %w", path, err)
	}
	return ParseBalanceYAML(base, data)
}
