package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config drives the randsim demo: a loss-system cluster fed by Poisson
// arrivals, with service times drawn from a randkit catalog distribution.
type Config struct {
	Simulation struct {
		TimeSeconds float64 `yaml:"time_seconds"`
		StepSeconds float64 `yaml:"step_seconds"` // snapshot collection step
		Seed        uint32  `yaml:"seed"`         // 0 means clock-seeded
		Generator   string  `yaml:"generator"`    // minstd | mt19937 | pcg32
	} `yaml:"simulation"`

	Arrivals struct {
		RateRPS float64 `yaml:"rate_rps"` // Poisson lambda
	} `yaml:"arrivals"`

	Service struct {
		Dist   string    `yaml:"dist"` // catalog name, e.g. gamma, lognormal
		Params []float64 `yaml:"params"`
	} `yaml:"service"`

	Cluster struct {
		Servers  int `yaml:"servers"`
		Capacity int `yaml:"capacity"` // concurrent requests per server
	} `yaml:"cluster"`
}

func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("error when parsing config: %w", err)
	}

	FillDefaults(&cfg)
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("error when validating config: %w", err)
	}
	return &cfg, nil
}

// FillDefaults is exposed for configs constructed in code (tests, tools).
func FillDefaults(c *Config) {
	if c.Simulation.TimeSeconds == 0 {
		c.Simulation.TimeSeconds = 600
	}
	if c.Simulation.StepSeconds == 0 {
		c.Simulation.StepSeconds = 1
	}
	if c.Simulation.Generator == "" {
		c.Simulation.Generator = "mt19937"
	}
	if c.Arrivals.RateRPS == 0 {
		c.Arrivals.RateRPS = 50
	}
	if c.Service.Dist == "" {
		c.Service.Dist = "gamma"
		c.Service.Params = []float64{2, 4} // mean 0.5s service time
	}
	if c.Cluster.Servers == 0 {
		c.Cluster.Servers = 4
	}
	if c.Cluster.Capacity == 0 {
		c.Cluster.Capacity = 16
	}
}

func validate(c *Config) error {
	if c.Arrivals.RateRPS <= 0 {
		return fmt.Errorf("arrivals rate must be positive, got %v", c.Arrivals.RateRPS)
	}
	if c.Cluster.Servers <= 0 {
		return fmt.Errorf("cluster needs at least one server")
	}
	if c.Cluster.Capacity <= 0 {
		return fmt.Errorf("server capacity must be positive")
	}
	if len(c.Service.Params) == 0 {
		return fmt.Errorf("service distribution %q needs bound params", c.Service.Dist)
	}
	return nil
}
