package config

import (
	"fmt"
	"log/slog"

	"ctchen222/tictactoe-minimax/internal/game"
	"ctchen222/tictactoe-minimax/internal/validator"

	"github.com/ilyakaznacheev/cleanenv"
)

// Who opens the game.
const (
	FirstHuman    = "human"
	FirstComputer = "computer"
	FirstRandom   = "random"
)

type Config struct {
	LogLevel    string    `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"warn" validate:"oneof=debug info warn error"`
	HumanName   string    `yaml:"human-name" env:"TICTACTOE_HUMAN_NAME" env-default:"Player" validate:"required"`
	MachineName string    `yaml:"machine-name" env:"TICTACTOE_MACHINE_NAME" env-default:"Machine" validate:"required"`
	HumanMark   string    `yaml:"human-mark" env:"TICTACTOE_HUMAN_MARK" env-default:"X" validate:"required,mark"`
	First       string    `yaml:"first" env:"TICTACTOE_FIRST" env-default:"random" validate:"oneof=human computer random"`
	Seed        uint64    `yaml:"seed" env:"TICTACTOE_SEED" env-default:"0"`
	Telemetry   Telemetry `yaml:"telemetry"`
}

type Telemetry struct {
	Exporter    string `yaml:"exporter" env:"TICTACTOE_OTEL_EXPORTER" env-default:"none" validate:"oneof=none stdout otlp"`
	Endpoint    string `yaml:"endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT" env-default:"localhost:4317" validate:"required_if=Exporter otlp"`
	ServiceName string `yaml:"service-name" env:"OTEL_SERVICE_NAME" env-default:"tictactoe" validate:"required"`
}

// Load reads the YAML file at path, if any, then the environment, and
// validates the result.
func Load(path string) (*Config, error) {
	config := &Config{}

	var err error
	if path == "" {
		err = cleanenv.ReadEnv(config)
	} else {
		err = cleanenv.ReadConfig(path, config)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to load config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// MustLoad is Load that panics on error.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}
	return config
}

// Validate checks the config, including changes made after Load.
func (that *Config) Validate() error {
	if err := validator.GetValidator().Struct(that); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Level returns LogLevel as a slog level.
func (that *Config) Level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(that.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// Mark returns HumanMark as a player mark.
func (that *Config) Mark() game.PlayerMark {
	mark, err := game.ParseMark(that.HumanMark)
	if err != nil {
		return game.PlayerX
	}
	return mark
}
