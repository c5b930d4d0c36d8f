package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/alexanderramin/gradeplan/internal/domain"
	"github.com/pelletier/go-toml/v2"
)

// Output formats accepted by the CLI.
const (
	FormatText = "text"
	FormatJSON = "json"
)

type Config struct {
	Engine   EngineConfig   `toml:"engine"`
	Defaults DefaultsConfig `toml:"defaults"`
	Output   OutputConfig   `toml:"output"`
	Logging  LoggingConfig  `toml:"logging"`
}

type EngineConfig struct {
	MaxPending int    `toml:"max_pending"`
	ZeroEffort string `toml:"zero_effort"` // "free-max" or "reject"
}

type DefaultsConfig struct {
	BudgetHours float64 `toml:"budget_hours"`
	Preset      string  `toml:"preset"`
}

type OutputConfig struct {
	Format string `toml:"format"` // "text" or "json"
}

type LoggingConfig struct {
	UseCases bool `toml:"use_cases"`
}

func DefaultConfig() Config {
	return Config{
		Engine: EngineConfig{
			MaxPending: 10000,
			ZeroEffort: string(domain.ZeroEffortFreeMax),
		},
		Defaults: DefaultsConfig{
			BudgetHours: 10,
			Preset:      "semester",
		},
		Output: OutputConfig{
			Format: FormatText,
		},
	}
}

func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".config", "gradeplan"), nil
}

// ConfigPath honours GRADEPLAN_CONFIG before the default location.
func ConfigPath() (string, error) {
	if v := os.Getenv("GRADEPLAN_CONFIG"); v != "" {
		return v, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the config file if present, then applies env overrides.
// A missing file is not an error.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if len(data) > 0 {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	applyEnvOverrides(&cfg)
	sanitize(&cfg)
	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("GRADEPLAN_MAX_PENDING"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Engine.MaxPending = n
		}
	}
	if v := os.Getenv("GRADEPLAN_ZERO_EFFORT"); v != "" {
		cfg.Engine.ZeroEffort = v
	}
	if v := os.Getenv("GRADEPLAN_BUDGET"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Defaults.BudgetHours = f
		}
	}
	if v := os.Getenv("GRADEPLAN_PRESET"); v != "" {
		cfg.Defaults.Preset = v
	}
	if v := os.Getenv("GRADEPLAN_FORMAT"); v != "" {
		cfg.Output.Format = v
	}
	if v := os.Getenv("GRADEPLAN_LOG_USE_CASES"); v != "" {
		cfg.Logging.UseCases, _ = strconv.ParseBool(v)
	}
}

// sanitize replaces out-of-domain values with defaults.
func sanitize(cfg *Config) {
	def := DefaultConfig()
	if cfg.Engine.MaxPending <= 0 {
		cfg.Engine.MaxPending = def.Engine.MaxPending
	}
	if !domain.ValidZeroEffortPolicies[cfg.Engine.ZeroEffort] {
		cfg.Engine.ZeroEffort = def.Engine.ZeroEffort
	}
	if cfg.Defaults.BudgetHours < 0 || cfg.Defaults.BudgetHours > domain.MaxWeeklyHours {
		cfg.Defaults.BudgetHours = def.Defaults.BudgetHours
	}
	if cfg.Output.Format != FormatText && cfg.Output.Format != FormatJSON {
		cfg.Output.Format = def.Output.Format
	}
}

// ZeroEffortPolicy returns the engine policy as a domain value.
func (c Config) ZeroEffortPolicy() domain.ZeroEffortPolicy {
	return domain.ZeroEffortPolicy(c.Engine.ZeroEffort)
}

// Save writes the config to path, creating parent directories.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	out, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, out, 0644)
}
