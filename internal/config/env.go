package config

import (
	"os"

	"github.com/caarlos0/env/v11"
)

// FromEnv overlays environment variables onto base. DIFFICULTY swaps in a
// whole preset first, then per-field overrides apply on top.
func FromEnv(base Balance) (Balance, error) {
	cfg := base

	switch os.Getenv("DIFFICULTY") {
	case "normal":
		cfg = Default()
	case "casual":
		cfg = Casual()
	case "hard":
		cfg = Hard()
	}

	if err := env.Parse(&cfg); err != nil {
		return Balance{}, err
	}
	return cfg, nil
}
