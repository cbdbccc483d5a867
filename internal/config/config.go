package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

var (
	ErrUnknownLogLevel = errors.New("unknown log level")
	ErrInvalidLimits   = errors.New("dealer limit must be positive and below the bust limit")
	ErrInvalidMatch    = errors.New("match target and tie streak must be positive")
)

type Config struct {
	LogLevel   string    `yaml:"log-level" env:"LOG_LEVEL" env-default:"warn"`
	Difficulty string    `yaml:"difficulty" env:"DIFFICULTY" env-default:""`
	Redis      Redis     `yaml:"redis"`
	Match      Match     `yaml:"match"`
	TwentyOne  TwentyOne `yaml:"twenty-one"`
	Console    Console   `yaml:"console"`
}

// Redis - optional match store. Matches live in memory unless Enabled is set.
type Redis struct {
	Enabled bool          `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host    string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port    string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	TTL     time.Duration `yaml:"ttl" env:"REDIS_TTL" env-default:"1h"`
}

type Match struct {
	Target    int `yaml:"target" env:"MATCH_TARGET" env-default:"5"`
	TieStreak int `yaml:"tie-streak" env:"MATCH_TIE_STREAK" env-default:"3"`
}

type TwentyOne struct {
	BustLimit   int `yaml:"bust-limit" env:"TWENTY_ONE_BUST_LIMIT" env-default:"21"`
	DealerLimit int `yaml:"dealer-limit" env:"TWENTY_ONE_DEALER_LIMIT" env-default:"17"`
}

// Console - switches are negative because cleanenv treats false as unset.
type Console struct {
	NoColor bool   `yaml:"no-color" env:"CONSOLE_NO_COLOR" env-default:"false"`
	NoClear bool   `yaml:"no-clear" env:"CONSOLE_NO_CLEAR" env-default:"false"`
	Font    string `yaml:"font" env:"CONSOLE_FONT" env-default:"standard"`
}

// Load - reads an optional .env, then config.yml when it exists, otherwise the environment only.
func Load(path string) (*Config, error) {
	// a missing .env is not an error
	_ = godotenv.Load()

	config := &Config{}

	if _, err := os.Stat(path); err == nil {
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
	} else if err = cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("unable to read environment: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func (that *Config) Validate() error {
	if _, err := that.SlogLevel(); err != nil {
		return err
	}

	if that.TwentyOne.DealerLimit < 1 || that.TwentyOne.DealerLimit >= that.TwentyOne.BustLimit {
		return fmt.Errorf("%w: bust %d, dealer %d", ErrInvalidLimits, that.TwentyOne.BustLimit, that.TwentyOne.DealerLimit)
	}

	if that.Match.Target < 1 || that.Match.TieStreak < 1 {
		return ErrInvalidMatch
	}

	return nil
}

// SlogLevel - maps LogLevel to a slog level.
func (that *Config) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(that.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning", "":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: %q", ErrUnknownLogLevel, that.LogLevel)
	}
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
