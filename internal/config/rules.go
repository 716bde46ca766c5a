package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"formvalidator/internal/core/domain/signup"
)

type RulesConfig struct {
	BaseConfig
	Signup SignupRulesConfig `envconfig:"SIGNUP"`
}

type SignupRulesConfig struct {
	AllowedDomain     string `envconfig:"ALLOWED_DOMAIN" default:"example.com"`
	// Bounded by the 72-byte bcrypt input limit.
	PasswordMinLength int    `envconfig:"PASSWORD_MIN_LENGTH" default:"6" validate:"max=72"`
	Parallelism       int    `envconfig:"PARALLELISM" default:"1"`
}

func (c *SignupRulesConfig) Policy() signup.Policy {
	return signup.Policy{
		AllowedDomain:     c.AllowedDomain,
		MinPasswordLength: c.PasswordMinLength,
	}
}

// LoadRules reads the signup rule parameters and rejects a policy the
// pipeline could not be built from.
func LoadRules() (*RulesConfig, error) {
	var cfg RulesConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Signup.Policy().Validate(); err != nil {
		return nil, fmt.Errorf("invalid signup rules: %w", err)
	}
	if cfg.Signup.Parallelism < 1 {
		cfg.Signup.Parallelism = 1
	}
	if err := check(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
