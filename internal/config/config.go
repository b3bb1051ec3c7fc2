// Package config loads the site configuration from the environment and an
// optional YAML file that tunes the hero animation.
package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/Zachkp/portfolio/internal/hero"
	"github.com/Zachkp/portfolio/internal/pulse"
	"github.com/Zachkp/portfolio/internal/typing"
)

var ErrInvalid = errors.New("config: invalid configuration")

// Config is the site configuration.
type Config struct {
	Port          string `validate:"required,numeric"`
	Mode          string `validate:"omitempty,oneof=debug release test"`
	AdminUsername string `validate:"required"`
	AdminPassword string `validate:"required"`
	AdminToken    string `validate:"required,min=16"`
	// DefaultCredentials is set when the admin login fell back to the dev defaults.
	DefaultCredentials bool

	Hero Hero `yaml:"hero"`
}

// Hero tunes the landing animation. Durations accept Go duration strings ("80ms").
type Hero struct {
	Phrases          []string      `yaml:"phrases" validate:"required,min=1,dive,required"`
	TypingInterval   time.Duration `yaml:"typing_interval" validate:"gt=0"`
	DeletingInterval time.Duration `yaml:"deleting_interval" validate:"gt=0"`
	PauseDuration    time.Duration `yaml:"pause_duration" validate:"gt=0"`
	Layers           []int         `yaml:"layers" validate:"min=2,dive,min=1"`
	AmbientInterval  time.Duration `yaml:"ambient_interval" validate:"gte=300ms,lte=500ms"`
	MinAmbient       int           `yaml:"min_ambient" validate:"gte=0"`
	MaxAmbient       int           `yaml:"max_ambient" validate:"gtefield=MinAmbient"`
	Seed             uint64        `yaml:"seed"`
}

type file struct {
	Hero Hero `yaml:"hero"`
}

var validate = validator.New()

// DefaultHero mirrors hero.DefaultConfig.
func DefaultHero() Hero {
	d := hero.DefaultConfig()
	return Hero{
		Phrases:          d.Typing.Phrases,
		TypingInterval:   d.Typing.TypingInterval,
		DeletingInterval: d.Typing.DeletingInterval,
		PauseDuration:    d.Typing.PauseDuration,
		Layers:           d.Pulse.Layers,
		AmbientInterval:  d.Pulse.Interval,
		MinAmbient:       d.Pulse.MinAmbient,
		MaxAmbient:       d.Pulse.MaxAmbient,
	}
}

// Load reads the environment (PORT, GIN_MODE, ADMIN_USERNAME, ADMIN_PASSWORD,
// ADMIN_TOKEN, PORTFOLIO_CONFIG) and the YAML file PORTFOLIO_CONFIG points to.
func Load() (*Config, error) {
	return LoadFrom(os.Getenv)
}

// LoadFrom is Load with an injectable environment lookup.
func LoadFrom(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		Port:          strings.TrimSpace(getenv("PORT")),
		Mode:          getenv("GIN_MODE"),
		AdminUsername: getenv("ADMIN_USERNAME"),
		AdminPassword: getenv("ADMIN_PASSWORD"),
		AdminToken:    getenv("ADMIN_TOKEN"),
		Hero:          DefaultHero(),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	// Default credentials for development (set both variables in production)
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		cfg.DefaultCredentials = true
		if cfg.AdminUsername == "" {
			cfg.AdminUsername = "admin"
		}
		if cfg.AdminPassword == "" {
			cfg.AdminPassword = "admin123"
		}
	}
	if cfg.AdminToken == "" {
		token, err := GenerateToken()
		if err != nil {
			return nil, err
		}
		cfg.AdminToken = token
	}

	if path := getenv("PORTFOLIO_CONFIG"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	f := file{Hero: c.Hero}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("%w: parse %s: %v", ErrInvalid, path, err)
	}
	c.Hero = f.Hero
	return nil
}

// Validate checks every field.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// HeroConfig converts the hero settings for hero.NewSession.
func (c *Config) HeroConfig() hero.Config {
	return hero.Config{
		Typing: typing.Config{
			Phrases:          append([]string(nil), c.Hero.Phrases...),
			TypingInterval:   c.Hero.TypingInterval,
			DeletingInterval: c.Hero.DeletingInterval,
			PauseDuration:    c.Hero.PauseDuration,
		},
		Pulse: pulse.Config{
			Layers:     append([]int(nil), c.Hero.Layers...),
			Interval:   c.Hero.AmbientInterval,
			MinAmbient: c.Hero.MinAmbient,
			MaxAmbient: c.Hero.MaxAmbient,
			Seed:       c.Hero.Seed,
		},
	}
}

// GenerateToken returns 32 random bytes, hex encoded.
func GenerateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
