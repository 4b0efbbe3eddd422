package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Version    string       `yaml:"version" json:"version"`
	Server     ServerConfig `yaml:"server" json:"server"`
	Difficulty string       `yaml:"difficulty" json:"difficulty"`
	Month      MonthConfig  `yaml:"month" json:"month"`
	SeededRNG  SeededRNG    `yaml:"seeded_rng" json:"seeded_rng"`
	Balance    Balance      `yaml:"balance" json:"balance"`
}

type ServerConfig struct {
	Addr string `yaml:"addr" json:"addr"`
}

// MonthConfig pins the simulated month. In the stock calendar day 1 is a
// Tuesday and every weekday follows from the day number alone.
type MonthConfig struct {
	Number       int `yaml:"number" json:"number"`
	StartWeekday int `yaml:"start_weekday" json:"start_weekday"`
}

type SeededRNG struct {
	Enabled bool  `yaml:"enabled" json:"enabled"`
	Seed    int64 `yaml:"seed" json:"seed"`
}

func (c *Config) ApplyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Month.Number == 0 {
		c.Month.Number = 4
	}
	preset := Default()
	switch c.Difficulty {
	case "casual":
		preset = Casual()
	case "hard":
		preset = Hard()
	}
	c.Balance.fillFrom(preset)
}

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var r Config
	if err := yaml.Unmarshal(b, &r); err != nil {
		return nil, err
	}
	r.ApplyDefaults()
	return &r, nil
}
