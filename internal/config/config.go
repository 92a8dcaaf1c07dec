// Package config holds the mooncap watcher configuration: which pair to
// monitor, the market-cap target, and the polling/alarm settings.
package config

import (
	"strconv"
	"strings"
	"time"
)

// Defaults applied when a value is missing or fails to parse.
const (
	// DefaultChain is the chain identifier used when none is given.
	DefaultChain = "solana"
	// DefaultTargetMarketCap is the market-cap target in USD.
	DefaultTargetMarketCap = 100000.0
	// DefaultIntervalSeconds is the time between API checks.
	DefaultIntervalSeconds uint64 = 180
	// DefaultAlarmDurationSeconds is how long the alarm sounds once triggered.
	DefaultAlarmDurationSeconds uint64 = 300
)

// Config describes one monitoring session.
type Config struct {
	// PairAddress is the DEX pair or token contract address to monitor.
	// Empty means not configured yet; the watcher opens the config form.
	PairAddress string `mapstructure:"pair" yaml:"pair"`

	// Chain is the blockchain identifier (e.g. solana, ethereum, bsc).
	Chain string `mapstructure:"chain" yaml:"chain"`

	// TargetMarketCap is the market cap in USD that triggers the alarm.
	TargetMarketCap float64 `mapstructure:"target" yaml:"target"`

	// IntervalSeconds is the number of seconds between API checks.
	IntervalSeconds uint64 `mapstructure:"interval" yaml:"interval"`

	// AlarmFile is an optional path to an audio file played when the
	// target is hit. Empty falls back to the terminal bell.
	AlarmFile string `mapstructure:"alarm" yaml:"alarm,omitempty"`

	// AlarmDurationSeconds bounds how long the alarm sounds.
	AlarmDurationSeconds uint64 `mapstructure:"alarm_duration" yaml:"alarm_duration"`
}

// Default returns a Config with all defaults applied and no pair set.
func Default() *Config {
	return &Config{
		Chain:                DefaultChain,
		TargetMarketCap:      DefaultTargetMarketCap,
		IntervalSeconds:      DefaultIntervalSeconds,
		AlarmDurationSeconds: DefaultAlarmDurationSeconds,
	}
}

// Configured reports whether a pair address has been provided.
func (c *Config) Configured() bool {
	return strings.TrimSpace(c.PairAddress) != ""
}

// Interval returns the check interval as a duration.
func (c *Config) Interval() time.Duration {
	return time.Duration(c.IntervalSeconds) * time.Second
}

// AlarmDuration returns the alarm duration as a duration.
func (c *Config) AlarmDuration() time.Duration {
	return time.Duration(c.AlarmDurationSeconds) * time.Second
}

// NormalizeChain trims a chain identifier, falling back to the default
// when blank.
func NormalizeChain(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultChain
	}
	return s
}

// ParseTarget parses a target market cap entered as text. Unparsable or
// non-positive input falls back to the default rather than erroring.
func ParseTarget(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v <= 0 {
		return DefaultTargetMarketCap
	}
	return v
}

// ParseIntervalSeconds parses a check interval in seconds entered as text.
// Unparsable or zero input falls back to the default.
func ParseIntervalSeconds(s string) uint64 {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil || v == 0 {
		return DefaultIntervalSeconds
	}
	return v
}
