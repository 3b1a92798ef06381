package cli

import (
	"datetime-lab/domain"
	"datetime-lab/errors"
	"datetime-lab/services"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/gookit/color"
	"github.com/samber/lo"
)

type command struct {
	usage   string
	minArgs int
	maxArgs int // -1 for unbounded
	run     func(args []string) (string, error)
}

// Runner dispatches one sub-command per DateTimeService operation and writes the result to out.
type Runner struct {
	log      *slog.Logger
	service  services.IDateTimeService
	out      io.Writer
	colours  bool
	commands map[string]command
}

func NewRunner(log *slog.Logger, service services.IDateTimeService, out io.Writer, colours bool) *Runner {
	r := &Runner{log: log, service: service, out: out, colours: colours}
	r.commands = map[string]command{
		"today":        {"[full|year|month|day]", 0, 1, r.today},
		"date":         {"YEAR MONTH DAY", 0, -1, r.date},
		"add-hours":    {"HH:MM[:SS] N", 2, 2, r.addTime(r.service.AddHours)},
		"add-minutes":  {"HH:MM[:SS] N", 2, 2, r.addTime(r.service.AddMinutes)},
		"add-seconds":  {"HH:MM[:SS] N", 2, 2, r.addTime(r.service.AddSeconds)},
		"add-weeks":    {"YYYY-MM-DD N", 2, 2, r.addWeeks},
		"compare":      {"YYYY-MM-DD", 1, 1, r.compare},
		"zone":         {"INSTANT ZONE", 2, 2, r.zone},
		"offset":       {"YYYY-MM-DDTHH:MM[:SS]", 1, 1, r.offset},
		"parse":        {"yyyyMMdd", 1, 1, r.parse},
		"parse-custom": {"\"d MMM yyyy\"", 1, -1, r.parseCustom},
		"format":       {"YYYY-MM-DDTHH:MM[:SS]", 1, 1, r.format},
		"demo":         {"", 0, 0, r.demo},
	}
	return r
}

// Run executes args[0] with the remaining arguments.
func (r *Runner) Run(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: missing command\n%s", errors.ErrInvalidArgument, r.Usage())
	}
	name, rest := args[0], args[1:]
	cmd, ok := r.commands[name]
	if !ok {
		return fmt.Errorf("%w: unknown command %q\n%s", errors.ErrInvalidArgument, name, r.Usage())
	}
	if len(rest) < cmd.minArgs || (cmd.maxArgs >= 0 && len(rest) > cmd.maxArgs) {
		return fmt.Errorf("%w: usage: %s %s", errors.ErrInvalidArgument, name, cmd.usage)
	}

	log := r.log.With("run_id", uuid.NewString(), "command", name)
	log.Debug("Running command", "args", rest)

	result, err := cmd.run(rest)
	if err != nil {
		log.Debug("Command failed", "error", err)
		return err
	}
	if name != "demo" {
		result = r.paint(color.FgGreen, result)
	}
	_, err = fmt.Fprintln(r.out, result)
	return err
}

// Usage lists the commands in alphabetical order.
func (r *Runner) Usage() string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	lines := lo.Map(names, func(name string, _ int) string {
		return strings.TrimSpace(name + " " + r.commands[name].usage)
	})
	return "commands:\n  " + strings.Join(lines, "\n  ")
}

func (r *Runner) paint(c color.Color, s string) string {
	if !r.colours {
		return s
	}
	return color.New(c).Render(s)
}

func (r *Runner) today(args []string) (string, error) {
	part := domain.FULL
	if len(args) == 1 {
		var err error
		if part, err = domain.ParseDatePart(args[0]); err != nil {
			return "", err
		}
	}
	return r.service.TodayDate(part)
}

func (r *Runner) date(args []string) (string, error) {
	components, err := parseInts(args)
	if err != nil {
		return "", err
	}
	d, err := r.service.GetDate(components)
	if err != nil {
		return "", err
	}
	return d.String(), nil
}

func (r *Runner) addTime(add func(domain.TimeOfDay, int) domain.TimeOfDay) func([]string) (string, error) {
	return func(args []string) (string, error) {
		tod, err := domain.ParseTimeOfDay(args[0])
		if err != nil {
			return "", err
		}
		n, err := parseInt(args[1])
		if err != nil {
			return "", err
		}
		return add(tod, n).String(), nil
	}
}

func (r *Runner) addWeeks(args []string) (string, error) {
	d, err := domain.ParseISODate(args[0])
	if err != nil {
		return "", err
	}
	weeks, err := parseInt(args[1])
	if err != nil {
		return "", err
	}
	shifted, err := r.service.AddWeeks(d, weeks)
	if err != nil {
		return "", err
	}
	return shifted.String(), nil
}

func (r *Runner) compare(args []string) (string, error) {
	d, err := domain.ParseISODate(args[0])
	if err != nil {
		return "", err
	}
	return r.service.BeforeOrAfter(d), nil
}

func (r *Runner) zone(args []string) (string, error) {
	dt, err := r.service.GetDateInSpecificTimeZone(args[0], args[1])
	if err != nil {
		return "", err
	}
	return dt.String(), nil
}

func (r *Runner) offset(args []string) (string, error) {
	dt, err := domain.ParseDateTime(args[0])
	if err != nil {
		return "", err
	}
	return r.service.OffsetDateTime(dt).String(), nil
}

func (r *Runner) parse(args []string) (string, error) {
	d, err := r.service.ParseDate(args[0])
	if err != nil {
		return "", err
	}
	return d.String(), nil
}

// parseCustom accepts the date either quoted or split over several arguments.
func (r *Runner) parseCustom(args []string) (string, error) {
	d, err := r.service.CustomParseDate(strings.Join(args, " "))
	if err != nil {
		return "", err
	}
	return d.String(), nil
}

func (r *Runner) format(args []string) (string, error) {
	dt, err := domain.ParseDateTime(args[0])
	if err != nil {
		return "", err
	}
	return r.service.FormatDate(dt), nil
}

func parseInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", errors.ErrInvalidArgument, s)
	}
	return n, nil
}

func parseInts(args []string) ([]int, error) {
	ints := make([]int, 0, len(args))
	for _, arg := range args {
		n, err := parseInt(arg)
		if err != nil {
			return nil, err
		}
		ints = append(ints, n)
	}
	return ints, nil
}
