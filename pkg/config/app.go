package config

import (
	"errors"
	"time"

	"github.com/dmitrymomot/vetform/pkg/environment"
	"github.com/dmitrymomot/vetform/pkg/httpserver"
	"github.com/dmitrymomot/vetform/pkg/ratelimiter"
)

// App is the configuration of the vetform server and CLI.
type App struct {
	Env      string        `env:"VETFORM_ENV" envDefault:"development"`
	Lang     string        `env:"VETFORM_LANG" envDefault:"es"`
	Timezone string        `env:"VETFORM_TIMEZONE" envDefault:"Local"`
	AlertTTL time.Duration `env:"VETFORM_ALERT_TTL" envDefault:"5s"`
	LogLevel string        `env:"VETFORM_LOG_LEVEL"`

	HTTP      httpserver.Config
	RateLimit ratelimiter.Config
}

// Environment returns the parsed deployment environment.
func (a App) Environment() environment.Environment {
	return environment.Parse(a.Env)
}

// Location returns the clinic time zone used for appointment hours.
func (a App) Location() (*time.Location, error) {
	if a.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(a.Timezone)
	if err != nil {
		return nil, errors.Join(ErrInvalidTimezone, err)
	}
	return loc, nil
}
