package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// BROKER_ADDR points at a running broker, e.g. localhost:8080.
	// Scenarios are skipped when it is unset.
	BrokerAddr string `envconfig:"BROKER_ADDR"`
	JWTSecret  string `envconfig:"E2E_JWT_SECRET" default:"e2e-secret"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
