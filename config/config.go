// Package config loads selection settings from YAML.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/viant/phylosel/engine"
	"github.com/viant/phylosel/internal/logging"
	"github.com/viant/phylosel/phylo"
	"github.com/viant/phylosel/selection"
	"github.com/viant/phylosel/treedist"
)

const (
	// DriverMemory keeps cached distances in a map.
	DriverMemory = "memory"
	// DriverSQLite keeps cached distances in a SQLite table.
	DriverSQLite = "sqlite"
)

var validate = validator.New()

// Config represents the settings of one selection run.
type Config struct {
	Distance  DistanceConfig  `yaml:"distance"`
	Selection SelectionConfig `yaml:"selection"`
	Log       LogConfig       `yaml:"log"`
}

// DistanceConfig selects the tree metric and where cached distances live.
type DistanceConfig struct {
	Metric      string      `yaml:"metric" validate:"required"`
	Store       StoreConfig `yaml:"store"`
	Parallelism int         `yaml:"parallelism" validate:"gte=0"`
}

// StoreConfig names the distance store driver and, for sqlite, its DSN.
type StoreConfig struct {
	Driver string `yaml:"driver" validate:"required,oneof=memory sqlite"`
	DSN    string `yaml:"dsn"`
}

// SelectionConfig selects the information criterion and its sample size.
type SelectionConfig struct {
	Criterion  string  `yaml:"criterion" validate:"required"`
	SampleSize float64 `yaml:"sampleSize" validate:"required,gt=0"`
}

// LogConfig sets the slog level.
type LogConfig struct {
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn warning error"`
}

// Default returns the default configuration. Selection.SampleSize depends on
// the alignment and has no default; it must be set before Validate passes.
func Default() *Config {
	return &Config{
		Distance: DistanceConfig{
			Metric: string(treedist.Euclidean),
			Store: StoreConfig{
				Driver: DriverMemory,
				DSN:    engine.MemoryDSN,
			},
		},
		Selection: SelectionConfig{
			Criterion: selection.BIC.Name(),
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads and validates the YAML configuration at path.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config: path required")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(b)
}

// Parse decodes YAML on top of Default and validates the result.
func Parse(data []byte) (*Config, error) {
	c := Default()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks field constraints and resolves the metric and criterion
// names.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := treedist.ParseKind(c.Distance.Metric); err != nil {
		return fmt.Errorf("config: distance.metric: %w", err)
	}
	if _, err := selection.CriterionByName(c.Selection.Criterion); err != nil {
		return fmt.Errorf("config: selection.criterion: %w", err)
	}
	return nil
}

// Logger returns a logger at the configured level writing to w.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	return logging.New(w, c.Log.Level)
}

// NewCache builds a distance cache over phylo trees with the configured
// metric and store. The returned close function releases the store and must
// be called once the run is over.
func (d DistanceConfig) NewCache(logger *slog.Logger, opts ...treedist.Option) (*treedist.Cache[*phylo.Tree], func() error, error) {
	kind, err := treedist.ParseKind(d.Metric)
	if err != nil {
		return nil, nil, err
	}
	opts = append([]treedist.Option{
		treedist.WithLogger(logger),
		treedist.WithParallelism(d.Parallelism),
	}, opts...)

	closer := func() error { return nil }
	switch d.Store.Driver {
	case "", DriverMemory:
	case DriverSQLite:
		db, err := engine.Open(d.Store.DSN)
		if err != nil {
			return nil, nil, fmt.Errorf("config: open %s: %w", d.Store.DSN, err)
		}
		store, err := treedist.NewSQLiteStore(db)
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		opts = append(opts, treedist.WithStore(store))
		closer = func() error {
			if err := store.Close(); err != nil {
				_ = db.Close()
				return err
			}
			return db.Close()
		}
	default:
		return nil, nil, fmt.Errorf("config: unsupported store driver %q", d.Store.Driver)
	}

	cache, err := phylo.NewCache(kind, opts...)
	if err != nil {
		_ = closer()
		return nil, nil, err
	}
	if logger != nil {
		logger.Debug("distance cache created", "metric", kind.String(), "store", d.Store.Driver)
	}
	return cache, closer, nil
}

// NewScore scores m with the configured criterion and sample size.
func (s SelectionConfig) NewScore(m selection.Model) (*selection.Score, error) {
	c, err := selection.CriterionByName(s.Criterion)
	if err != nil {
		return nil, err
	}
	return selection.NewScore(c, m, s.SampleSize)
}
