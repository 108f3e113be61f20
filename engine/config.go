package engine

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"satellites/game"
)

// Duration wraps time.Duration so YAML values like "250ms" parse.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("parsing duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) Std() time.Duration { return time.Duration(d) }

// AgentConfig configures one search agent. Either Episodes or Duration must
// be set; the other bounds are optional.
type AgentConfig struct {
	Goroutines int      `yaml:"goroutines"`
	Episodes   int      `yaml:"episodes"`
	Duration   Duration `yaml:"duration"`
	Cutoff     int      `yaml:"cutoff"`
}

type Config struct {
	MaxTurns          int           `yaml:"max_turns"`
	MaxMoveAmount     int           `yaml:"max_move_amount"`
	Seed              uint64        `yaml:"seed"`
	ShuffleSatellites bool          `yaml:"shuffle_satellites"`
	Games             int           `yaml:"games"`
	OutputDir         string        `yaml:"output_dir"`
	LogLevel          string        `yaml:"log_level"`
	Agents            []AgentConfig `yaml:"agents"`
}

func DefaultConfig() Config {
	agent := AgentConfig{Goroutines: 8, Episodes: 100, Cutoff: 50}
	return Config{
		MaxTurns:      game.DefaultMaxTurns,
		MaxMoveAmount: game.DefaultMaxMoveAmount,
		Seed:          1,
		Games:         1,
		OutputDir:     "results",
		LogLevel:      "info",
		Agents:        []AgentConfig{agent, agent},
	}
}

// LoadConfig reads a YAML config file on top of the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.MaxTurns <= 0 {
		return fmt.Errorf("max_turns must be positive, got %d", c.MaxTurns)
	}
	if c.MaxMoveAmount <= 0 {
		return fmt.Errorf("max_move_amount must be positive, got %d", c.MaxMoveAmount)
	}
	if c.Games <= 0 {
		return fmt.Errorf("games must be positive, got %d", c.Games)
	}
	if len(c.Agents) != 2 {
		return fmt.Errorf("need exactly 2 agents, got %d", len(c.Agents))
	}
	for i, a := range c.Agents {
		if a.Goroutines <= 0 {
			return fmt.Errorf("agent %d: goroutines must be positive", i)
		}
		if a.Episodes <= 0 && a.Duration <= 0 {
			return fmt.Errorf("agent %d: episodes or duration must be set", i)
		}
	}
	return nil
}
