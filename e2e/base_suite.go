package e2e

import (
	"bytes"
	"datetime-lab/cli"
	"datetime-lab/infrastructure/clock"
	"datetime-lab/services"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"
)

type BaseCliSuite struct {
	suite.Suite
	Config Config
	Zone   *time.Location
	runner *cli.Runner
	out    *bytes.Buffer
}

// SetupSuite loads the environment configuration and wires the CLI against the real clock
func (s *BaseCliSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)

	zones, err := clock.NewSystemZones(s.Config.Timezone)
	s.Require().NoError(err)
	s.Zone = zones.Default()

	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	service := services.NewDateTimeService(log, clock.SystemClock{}, zones, s.Config.LenientMonthNames)
	s.out = &bytes.Buffer{}
	// results stay uncoloured so they can be compared
	s.runner = cli.NewRunner(log, service, s.out, false)
}

// Exec runs one CLI command under a header and returns its trimmed output
func (s *BaseCliSuite) Exec(name string, args ...string) (string, error) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)

	s.out.Reset()
	err := s.runner.Run(args)
	output := strings.TrimSpace(s.out.String())
	if err != nil {
		s.T().Logf("%s -> error: %v", strings.Join(args, " "), err)
	} else {
		s.T().Logf("%s -> %s", strings.Join(args, " "), output)
	}
	return output, err
}

// Today is the current date in the suite's zone
func (s *BaseCliSuite) Today() time.Time {
	return time.Now().In(s.Zone)
}
