package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultMovePause = 500 * time.Millisecond

// MovePause and Color carry no env-default: cleanenv would put the default back over a zero value read from the file.
type Config struct {
	LogLevel  string        `yaml:"log-level" env-default:"warn"`
	MovePause time.Duration `yaml:"move-pause"`
	Color     bool          `yaml:"color"`
}

func defaults() *Config {
	return &Config{
		MovePause: defaultMovePause,
		Color:     true,
	}
}

// Load reads the config file at path. A missing file leaves every field at its default.
func Load(path string) (*Config, error) {
	config := defaults()

	_, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to apply config defaults: %w", err)
		}

		return config, nil
	}

	if err = cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
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
