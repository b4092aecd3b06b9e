package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/MikeSquared-Agency/Ranker/internal/scoring"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Hermes  HermesConfig  `yaml:"hermes"`
	Scoring ScoringConfig `yaml:"scoring"`
	Venues  []VenueConfig `yaml:"venues"`
	Logging LoggingConfig `yaml:"logging"`
}

type ServerConfig struct {
	Port        int `yaml:"port"`
	MetricsPort int `yaml:"metrics_port"`
	RateLimit   int `yaml:"rate_limit_per_minute"`
}

type HermesConfig struct {
	URL string `yaml:"url"`
}

type ScoringConfig struct {
	Weights       ScoringWeights `yaml:"weights"`
	ParetoEnabled bool           `yaml:"pareto_enabled"`
	HistorySize   int            `yaml:"history_size"`
}

type ScoringWeights struct {
	Price      float64 `yaml:"harga"`
	Distance   float64 `yaml:"jarak"`
	Lighting   float64 `yaml:"pencahayaan"`
	Facilities float64 `yaml:"fasilitas"`
	Comfort    float64 `yaml:"kenyamanan"`
}

// WeightSet converts the configured weights for the scoring engine.
func (w ScoringWeights) WeightSet() scoring.WeightSet {
	return scoring.WeightSet{
		Price:      w.Price,
		Distance:   w.Distance,
		Lighting:   w.Lighting,
		Facilities: w.Facilities,
		Comfort:    w.Comfort,
	}
}

// VenueConfig names a venue offered as a blank alternative template.
type VenueConfig struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:        8700,
			MetricsPort: 8701,
			RateLimit:   120,
		},
		Scoring: ScoringConfig{
			Weights: ScoringWeights{
				Price:      0.30,
				Distance:   0.20,
				Lighting:   0.20,
				Facilities: 0.15,
				Comfort:    0.15,
			},
			ParetoEnabled: false,
			HistorySize:   50,
		},
		Venues: []VenueConfig{
			{ID: "A1", Name: "Dewisri"},
			{ID: "A2", Name: "Sipelem"},
			{ID: "A3", Name: "Rajawali"},
			{ID: "A4", Name: "JB"},
			{ID: "A5", Name: "GBN"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(cfg)

	if err := cfg.Scoring.Weights.WeightSet().Validate(); err != nil {
		return nil, fmt.Errorf("scoring weights: %w", err)
	}
	if cfg.Scoring.HistorySize <= 0 {
		return nil, fmt.Errorf("scoring history_size must be positive, got %d", cfg.Scoring.HistorySize)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("RANKER_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = n
		}
	}
	if v := os.Getenv("RANKER_METRICS_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.MetricsPort = n
		}
	}
	if v := os.Getenv("RANKER_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.RateLimit = n
		}
	}
	if v := os.Getenv("RANKER_HERMES_URL"); v != "" {
		cfg.Hermes.URL = v
	}
	if v := os.Getenv("RANKER_PARETO_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Scoring.ParetoEnabled = b
		}
	}
	if v := os.Getenv("RANKER_HISTORY_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Scoring.HistorySize = n
		}
	}
	if v := os.Getenv("RANKER_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("RANKER_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
}
