package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

var ErrUnknownStorageDriver = errors.New("unknown storage driver")

type StorageConfig struct {
	BaseConfig
	Driver string       `envconfig:"STORAGE_DRIVER" default:"memory"`
	Health HealthConfig `envconfig:"HEALTH"`
}

type HealthConfig struct {
	ReadinessTimeout time.Duration `envconfig:"READINESS_TIMEOUT" default:"5s"`
	UpstreamURL      string        `envconfig:"UPSTREAM_URL" default:"" validate:"omitempty,http_url"`
	UpstreamTimeout  time.Duration `envconfig:"UPSTREAM_TIMEOUT" default:"2s" validate:"gt=0"`
}

func (c *StorageConfig) UsesPostgres() bool {
	return c.Driver == StoragePostgres
}

func LoadStorage() (*StorageConfig, error) {
	var cfg StorageConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	switch cfg.Driver {
	case StorageMemory, StoragePostgres:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStorageDriver, cfg.Driver)
	}
	if err := check(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
