package config

import "os"

type Config struct {
	Addr string
}

// Load reads configuration from the environment, falling back to defaults.
func Load() (*Config, error) {
	addr := os.Getenv("ITEMSTORE_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	return &Config{Addr: addr}, nil
}
