// Package config wraps a *viper.Viper with defaults for every VIG/
// segmentation tunable ("Config manages algorithm configuration using
// Viper"). It is the defaults/file/env-backed outer layer; the inner
// segment.Config stays a plain struct the algorithm itself takes.
package config

import (
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/gilchrisn/vig-segment/pkg/segment"
	"github.com/gilchrisn/vig-segment/pkg/vig"
)

// Config manages VIG/segmentation configuration using Viper.
type Config struct {
	v *viper.Viper
}

// New creates a new configuration with the builder and segmenter
// defaults.
func New() *Config {
	v := viper.New()

	// Builder parameters.
	v.SetDefault("builder.threshold", int(vig.Unbounded))
	v.SetDefault("builder.threads", runtime.NumCPU())
	v.SetDefault("builder.max_buffer", 1<<20)

	// Segmentation parameters.
	v.SetDefault("segment.normalize_distances", true)
	v.SetDefault("segment.norm_sample_edges", 1000)
	v.SetDefault("segment.size_exponent", 1.2)
	v.SetDefault("segment.use_modularity_guard", true)
	v.SetDefault("segment.gamma", 1.0)
	v.SetDefault("segment.anneal", true)
	v.SetDefault("segment.dq_tol0", 5e-4)
	v.SetDefault("segment.dq_vscale", 0.0)
	v.SetDefault("segment.ambiguous_policy", "gate_margin")
	v.SetDefault("segment.gate_margin_ratio", 0.05)
	v.SetDefault("segment.k", 1.0)

	// Logging.
	v.SetDefault("logging.level", "info")

	return &Config{v: v}
}

// LoadFromFile loads configuration overrides from file.
func (c *Config) LoadFromFile(path string) error {
	c.v.SetConfigFile(path)
	return c.v.ReadInConfig()
}

// Set allows dynamic configuration changes, e.g. from flags.
func (c *Config) Set(key string, value interface{}) { c.v.Set(key, value) }

func (c *Config) ClauseSizeThreshold() int { return c.v.GetInt("builder.threshold") }
func (c *Config) Threads() int             { return c.v.GetInt("builder.threads") }
func (c *Config) MaxBuffer() int64         { return c.v.GetInt64("builder.max_buffer") }
func (c *Config) K() float64               { return c.v.GetFloat64("segment.k") }

// Builder returns the VIG builder selection implied by the current
// configuration (always the optimized, multi-threaded builder — callers
// who want the naive reference aggregator construct vig.Builder
// directly rather than going through this config layer).
func (c *Config) Builder() vig.Builder {
	return vig.Builder{
		Kind: vig.BuilderOptimized,
		Optimized: vig.Optimized{
			Threads:   c.Threads(),
			MaxBuffer: c.MaxBuffer(),
		},
	}
}

// SegmentConfig builds a segment.Config from the current values.
func (c *Config) SegmentConfig() segment.Config {
	policy := segment.GateMargin
	switch c.v.GetString("segment.ambiguous_policy") {
	case "accept":
		policy = segment.Accept
	case "reject":
		policy = segment.Reject
	}

	return segment.Config{
		NormalizeDistances: c.v.GetBool("segment.normalize_distances"),
		NormSampleEdges:    c.v.GetInt("segment.norm_sample_edges"),
		SizeExponent:       c.v.GetFloat64("segment.size_exponent"),
		UseModularityGuard: c.v.GetBool("segment.use_modularity_guard"),
		Gamma:              c.v.GetFloat64("segment.gamma"),
		Anneal:             c.v.GetBool("segment.anneal"),
		DQTol0:             c.v.GetFloat64("segment.dq_tol0"),
		DQVScale:           c.v.GetFloat64("segment.dq_vscale"),
		AmbiguousPolicy:    policy,
		GateMarginRatio:    c.v.GetFloat64("segment.gate_margin_ratio"),
	}
}

// CreateLogger creates a zerolog logger based on config, matching
// Config.CreateLogger in the louvain/scar packages.
func (c *Config) CreateLogger() zerolog.Logger {
	level, err := zerolog.ParseLevel(c.v.GetString("logging.level"))
	if err != nil {
		level = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: "15:04:05",
	}).Level(level).With().Timestamp().Str("service", "vig-segment").Logger()
}
