package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	UIWeb      = "web"
	UITerminal = "terminal"
)

var ErrUnknownUI = errors.New("unknown ui")

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFile  string `yaml:"log-file" env:"LOG_FILE"`
	UI       string `yaml:"ui" env:"UI" env-default:"web"`
	HTTP     HTTP   `yaml:"http" env-prefix:"HTTP_"`
}

type HTTP struct {
	Host            string        `yaml:"host" env:"HOST" env-default:"localhost"`
	Port            string        `yaml:"port" env:"PORT" env-default:"9090"`
	ReadTimeout     time.Duration `yaml:"read-timeout" env:"READ_TIMEOUT" env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write-timeout" env:"WRITE_TIMEOUT" env-default:"10s"`
	IdleTimeout     time.Duration `yaml:"idle-timeout" env:"IDLE_TIMEOUT" env-default:"30s"`
	ShutdownTimeout time.Duration `yaml:"shutdown-timeout" env:"SHUTDOWN_TIMEOUT" env-default:"5s"`
}

// Load - reads config.yml at path, or only the environment when the file is missing.
func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
	} else if err = cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
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
	switch that.UI {
	case UIWeb, UITerminal:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownUI, that.UI)
	}
}

func (that *HTTP) GetAddr() string {
	return net.JoinHostPort(that.Host, that.Port)
}
