package internal

import (
	"fmt"

	"github.com/Netflix/go-env"
)

type Config struct {
	LogLevel          string `env:"LOG_LEVEL,default=INFO"`
	DefaultTimezone   string `env:"DEFAULT_TIMEZONE"`
	LenientMonthNames bool   `env:"LENIENT_MONTH_NAMES,default=false"`
	Colours           bool   `env:"COLOURS,default=true"`
}

// LoadConfig reads the configuration from the process environment.
func LoadConfig() (Config, error) {
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	return config, nil
}
