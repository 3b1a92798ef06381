package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// E2E_TIMEZONE is the default zone handed to the service under test
	Timezone string `envconfig:"E2E_TIMEZONE" default:"Europe/Berlin"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
	// E2E_LENIENT_MONTH_NAMES runs the scenarios with the December fallback enabled
	LenientMonthNames bool `envconfig:"E2E_LENIENT_MONTH_NAMES" default:"false"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
