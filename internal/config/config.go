package config

import (
	"strings"

	"github.com/kelseyhightower/envconfig"

	"formvalidator/internal/platform/logger"
)

const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
	EnvTest        = "test"
)

type BaseConfig struct {
	Environment string       `envconfig:"ENV" default:"development" validate:"oneof=development staging production test"`
	Logger      LoggerConfig `envconfig:"LOGGER"`
}

// LoggerConfig leaves level and format empty unless set, so the
// environment's defaults apply.
type LoggerConfig struct {
	Level  logger.Level  `envconfig:"LEVEL"`
	Format logger.Format `envconfig:"FORMAT"`
	Output string        `envconfig:"OUTPUT" default:""`
}

func LoadBase() (*BaseConfig, error) {
	var cfg BaseConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := check(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoggerConfig converts the environment settings into the logger's own
// configuration. Development logs are human readable unless a format is
// configured.
func (c *BaseConfig) LoggerConfig() logger.Config {
	format := c.Logger.Format
	if format == "" {
		format = logger.FormatJSON
		if c.IsDevelopment() {
			format = logger.FormatText
		}
	}

	return logger.Config{
		Environment: c.Environment,
		Level:       c.Logger.Level,
		Format:      format,
		Output:      c.Logger.Output,
	}
}

func (c *BaseConfig) normalize() {
	c.Environment = strings.ToLower(strings.TrimSpace(c.Environment))
}

func (c *BaseConfig) IsDevelopment() bool {
	return strings.EqualFold(c.Environment, EnvDevelopment)
}

func (c *BaseConfig) IsProduction() bool {
	return strings.EqualFold(c.Environment, EnvProduction)
}
