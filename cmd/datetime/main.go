package main

import (
	"datetime-lab/cli"
	"datetime-lab/infrastructure/clock"
	"datetime-lab/internal"
	"datetime-lab/services"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run wires configuration, logger and service, then executes one command.
func run(args []string) error {
	// A missing .env is fine, the process environment is used as is
	_ = godotenv.Load()
	config, err := internal.LoadConfig()
	if err != nil {
		return err
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	zones, err := clock.NewSystemZones(config.DefaultTimezone)
	if err != nil {
		return fmt.Errorf("default timezone: %w", err)
	}
	log.Debug("Default zone resolved", "zone", zones.Default().String())

	service := services.NewDateTimeService(log, clock.SystemClock{}, zones, config.LenientMonthNames)
	return cli.NewRunner(log, service, os.Stdout, config.Colours).Run(args)
}
