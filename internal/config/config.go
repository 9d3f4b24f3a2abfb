package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"fatcat/internal/pet"
)

type Config struct {
	Pet    PetConfig    `yaml:"pet"`
	Engine EngineConfig `yaml:"engine"`
	UI     UIConfig     `yaml:"ui"`
}

type PetConfig struct {
	Name      string `yaml:"name"`
	StatePath string `yaml:"state_path"`
}

type EngineConfig struct {
	TickInterval     time.Duration `yaml:"tick_interval"`
	MoveInterval     time.Duration `yaml:"move_interval"`
	SleepMetabolism  string        `yaml:"sleep_metabolism"` // "hold" or "metabolism"
	MetabolismFactor float64       `yaml:"metabolism_factor"`
	OfflineCatchUp   bool          `yaml:"offline_catch_up"`
	MaxCatchUp       time.Duration `yaml:"max_catch_up"`
}

type UIConfig struct {
	AlertInterval time.Duration `yaml:"alert_interval"`
	LogPath       string        `yaml:"log_path"`
}

// DefaultPath returns ~/.config/fatcat/config.yaml
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(home, ".config", "fatcat", "config.yaml")
}

// Load reads the config at path on top of the defaults. A missing file is
// not an error.
func Load(path string) (*Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		log.Printf("No config at %s, using defaults", path)
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	// Env vars override config file
	if env := os.Getenv("FATCAT_STATE_PATH"); env != "" {
		cfg.Pet.StatePath = env
	}
	if env := os.Getenv("FATCAT_PET_NAME"); env != "" {
		cfg.Pet.Name = env
	}
	if env := os.Getenv("FATCAT_SLEEP_METABOLISM"); env != "" {
		cfg.Engine.SleepMetabolism = env
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Pet: PetConfig{
			Name:      pet.DefaultPetName,
			StatePath: pet.DefaultStatePath(),
		},
		Engine: EngineConfig{
			TickInterval:     pet.TickInterval,
			MoveInterval:     time.Second,
			SleepMetabolism:  string(pet.MetabolismHold),
			MetabolismFactor: pet.DefaultTuning().SleepMetabolismFactor,
			OfflineCatchUp:   false,
			MaxCatchUp:       24 * time.Hour,
		},
		UI: UIConfig{
			AlertInterval: pet.StatusAlertInterval,
			LogPath:       filepath.Join(filepath.Dir(pet.DefaultStatePath()), "fatcat.log"),
		},
	}
}

func validate(cfg *Config) error {
	if cfg.Pet.StatePath == "" {
		return fmt.Errorf("pet.state_path must not be empty")
	}
	if cfg.Engine.TickInterval <= 0 {
		return fmt.Errorf("engine.tick_interval must be positive, got %s", cfg.Engine.TickInterval)
	}
	if cfg.Engine.MoveInterval <= 0 {
		return fmt.Errorf("engine.move_interval must be positive, got %s", cfg.Engine.MoveInterval)
	}
	switch pet.SleepMetabolism(cfg.Engine.SleepMetabolism) {
	case pet.MetabolismHold, pet.MetabolismSlow:
	default:
		return fmt.Errorf("engine.sleep_metabolism must be %q or %q, got %q",
			pet.MetabolismHold, pet.MetabolismSlow, cfg.Engine.SleepMetabolism)
	}
	if cfg.Engine.MetabolismFactor < 0 || cfg.Engine.MetabolismFactor > 1 {
		return fmt.Errorf("engine.metabolism_factor must be within [0,1], got %g", cfg.Engine.MetabolismFactor)
	}
	if cfg.Engine.MaxCatchUp < 0 {
		return fmt.Errorf("engine.max_catch_up must not be negative")
	}
	return nil
}

// Tuning returns the engine tuning selected by this config. Rates are scaled
// to the configured tick interval.
func (c *Config) Tuning() pet.Tuning {
	t := pet.DefaultTuning().ForTickInterval(c.Engine.TickInterval)
	t.SleepMetabolism = pet.SleepMetabolism(c.Engine.SleepMetabolism)
	t.SleepMetabolismFactor = c.Engine.MetabolismFactor
	return t
}

// Save writes the config as YAML, creating its directory if needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
