package config

import (
	"net"
	"strconv"

	"github.com/kelseyhightower/envconfig"
)

type HttpConfig struct {
	BaseConfig
	Server    HttpServerConfig `envconfig:"HTTP_SERVER"`
	RateLimit RateLimitConfig  `envconfig:"RATE_LIMIT"`
	CORS      CORSConfig       `envconfig:"CORS"`
}

type HttpServerConfig struct {
	Host            string `envconfig:"HOST" default:"0.0.0.0"`
	Port            int    `envconfig:"PORT" default:"8080" validate:"min=0,max=65535"`
	ReadTimeout     int    `envconfig:"READ_TIMEOUT" default:"30" validate:"min=1"`
	WriteTimeout    int    `envconfig:"WRITE_TIMEOUT" default:"30" validate:"min=1"`
	IdleTimeout     int    `envconfig:"IDLE_TIMEOUT" default:"120" validate:"min=1"`
	ShutdownTimeout int    `envconfig:"SHUTDOWN_TIMEOUT" default:"30" validate:"min=1"`
}

type RateLimitConfig struct {
	GlobalRequests int `envconfig:"GLOBAL_REQUESTS" default:"1000" validate:"min=1"`
	GlobalWindow   int `envconfig:"GLOBAL_WINDOW" default:"60" validate:"min=1"`
	RequestsPerIP  int `envconfig:"REQUESTS_PER_IP" default:"100" validate:"min=1"`
	WindowSeconds  int `envconfig:"WINDOW_SECONDS" default:"60" validate:"min=1"`
}

type CORSConfig struct {
	AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS" default:"*"`
	AllowedMethods   []string `envconfig:"ALLOWED_METHODS" default:"GET,POST,OPTIONS"`
	AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS" default:"Accept,Content-Type,X-Request-Id"`
	ExposedHeaders   []string `envconfig:"EXPOSED_HEADERS" default:"X-Request-Id"`
	AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS" default:"false"`
	MaxAge           int      `envconfig:"MAX_AGE" default:"86400" validate:"min=0"`
}

func (c *HttpServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

func LoadHttp() (*HttpConfig, error) {
	var cfg HttpConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := check(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
