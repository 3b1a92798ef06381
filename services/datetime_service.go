package services

import (
	"datetime-lab/contract"
	"datetime-lab/domain"
	"datetime-lab/errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

const (
	compactDateLength = 8
	// dd MonthFullName yyyy HH:mm
	displayLayout = "02 January 2006 15:04"
)

var validate = validator.New()

type IDateTimeService interface {
	TodayDate(part domain.DatePart) (string, error)
	GetDate(components []int) (domain.Date, error)
	AddHours(t domain.TimeOfDay, hours int) domain.TimeOfDay
	AddMinutes(t domain.TimeOfDay, minutes int) domain.TimeOfDay
	AddSeconds(t domain.TimeOfDay, seconds int) domain.TimeOfDay
	AddWeeks(d domain.Date, weeks int) (domain.Date, error)
	BeforeOrAfter(d domain.Date) string
	GetDateInSpecificTimeZone(instant string, zone string) (domain.DateTime, error)
	OffsetDateTime(dt domain.DateTime) domain.OffsetDateTime
	ParseDate(s string) (domain.Date, error)
	CustomParseDate(s string) (domain.Date, error)
	FormatDate(dt domain.DateTime) string
}

type DateTimeService struct {
	log               *slog.Logger
	clock             contract.Clock
	zones             contract.ZoneProvider
	lenientMonthNames bool
}

// NewDateTimeService wires the facade. With lenientMonthNames an unknown month abbreviation
// in CustomParseDate is read as December instead of failing.
func NewDateTimeService(log *slog.Logger, clock contract.Clock, zones contract.ZoneProvider, lenientMonthNames bool) *DateTimeService {
	return &DateTimeService{
		log:               log,
		clock:             clock,
		zones:             zones,
		lenientMonthNames: lenientMonthNames,
	}
}

func (s *DateTimeService) today() domain.Date {
	return domain.DateOf(s.clock.Now().In(s.zones.Default()))
}

// TodayDate reports today's date (FULL), year, upper-case month name or day of month.
func (s *DateTimeService) TodayDate(part domain.DatePart) (string, error) {
	today := s.today()
	switch part {
	case domain.FULL:
		return today.String(), nil
	case domain.YEAR:
		return strconv.Itoa(today.Year()), nil
	case domain.MONTH:
		return domain.UpperMonthName(today.Month()), nil
	case domain.DAY:
		return strconv.Itoa(today.Day()), nil
	default:
		s.log.Debug("Rejected date part", "operation", "TodayDate", "part", int(part))
		return "", fmt.Errorf("%w: unknown date part %s", errors.ErrInvalidArgument, part)
	}
}

// GetDate builds a Date from exactly [year, month, day].
func (s *DateTimeService) GetDate(components []int) (domain.Date, error) {
	if err := validate.Var(components, "required,len=3"); err != nil {
		s.log.Debug("Rejected date components", "operation", "GetDate", "components", components)
		return domain.Date{}, fmt.Errorf("%w: expected [year, month, day], got %v", errors.ErrInvalidArgument, components)
	}
	fields := domain.CalendarFields{Year: components[0], Month: components[1], Day: components[2]}
	if err := validate.Struct(fields); err != nil {
		s.log.Debug("Rejected date components", "operation", "GetDate", "components", components, "error", err)
		return domain.Date{}, fmt.Errorf("%w: %v", errors.ErrInvalidArgument, err)
	}
	return fields.Date()
}

func (s *DateTimeService) AddHours(t domain.TimeOfDay, hours int) domain.TimeOfDay {
	return t.Add(time.Duration(hours%24) * time.Hour)
}

func (s *DateTimeService) AddMinutes(t domain.TimeOfDay, minutes int) domain.TimeOfDay {
	return t.Add(time.Duration(minutes%(24*60)) * time.Minute)
}

func (s *DateTimeService) AddSeconds(t domain.TimeOfDay, seconds int) domain.TimeOfDay {
	return t.Add(time.Duration(seconds%(24*60*60)) * time.Second)
}

// AddWeeks shifts d by whole weeks; the result must stay within the supported years.
func (s *DateTimeService) AddWeeks(d domain.Date, weeks int) (domain.Date, error) {
	if weeks > math.MaxInt/7 || weeks < math.MinInt/7 {
		s.log.Debug("Rejected week count", "operation", "AddWeeks", "weeks", weeks)
		return domain.Date{}, fmt.Errorf("%w: %d weeks overflows a day count", errors.ErrInvalidArgument, weeks)
	}
	shifted, err := d.AddDays(7 * weeks)
	if err != nil {
		s.log.Debug("Rejected week count", "operation", "AddWeeks", "date", d.String(), "weeks", weeks)
		return domain.Date{}, err
	}
	return shifted, nil
}

// BeforeOrAfter positions d relative to today.
func (s *DateTimeService) BeforeOrAfter(d domain.Date) string {
	today := s.today()
	switch {
	case d.After(today):
		return fmt.Sprintf("%s is after %s", d, today)
	case d.Before(today):
		return fmt.Sprintf("%s is before %s", d, today)
	default:
		return fmt.Sprintf("%s is today", d)
	}
}

// GetDateInSpecificTimeZone converts an RFC 3339 instant into the wall-clock reading of zone.
func (s *DateTimeService) GetDateInSpecificTimeZone(instant string, zone string) (domain.DateTime, error) {
	t, err := time.Parse(time.RFC3339Nano, instant)
	if err != nil {
		s.log.Debug("Rejected instant", "operation", "GetDateInSpecificTimeZone", "instant", instant)
		return domain.DateTime{}, fmt.Errorf("%w: instant %q: %v", errors.ErrParse, instant, err)
	}
	loc, err := s.zones.Load(zone)
	if err != nil {
		s.log.Debug("Rejected zone", "operation", "GetDateInSpecificTimeZone", "zone", zone)
		return domain.DateTime{}, err
	}
	return domain.DateTimeOf(t.In(loc)), nil
}

// OffsetDateTime attaches the offset the default zone has at dt.
func (s *DateTimeService) OffsetDateTime(dt domain.DateTime) domain.OffsetDateTime {
	return domain.OffsetDateTimeOf(dt.In(s.zones.Default()))
}

// ParseDate reads yyyyMMdd by fixed-width slicing; anything after the month is the day.
func (s *DateTimeService) ParseDate(str string) (domain.Date, error) {
	if len(str) < compactDateLength {
		s.log.Debug("Rejected compact date", "operation", "ParseDate", "input", str)
		return domain.Date{}, fmt.Errorf("%w: %q is shorter than yyyyMMdd", errors.ErrParse, str)
	}
	year, errYear := strconv.Atoi(str[0:4])
	month, errMonth := strconv.Atoi(str[4:6])
	day, errDay := strconv.Atoi(str[6:])
	if errYear != nil || errMonth != nil || errDay != nil {
		s.log.Debug("Rejected compact date", "operation", "ParseDate", "input", str)
		return domain.Date{}, fmt.Errorf("%w: %q is not numeric yyyyMMdd", errors.ErrParse, str)
	}
	return s.parsedDate("ParseDate", str, year, month, day)
}

// CustomParseDate reads "d MMM yyyy", e.g. "1 Sep 2019". Tokens past the third are ignored.
func (s *DateTimeService) CustomParseDate(str string) (domain.Date, error) {
	tokens := strings.Split(str, " ")
	if len(tokens) < 3 {
		s.log.Debug("Rejected custom date", "operation", "CustomParseDate", "input", str)
		return domain.Date{}, fmt.Errorf("%w: %q is not d MMM yyyy", errors.ErrParse, str)
	}
	month := lo.IndexOf(domain.MonthAbbreviations, tokens[1]) + 1
	if month == 0 {
		if !s.lenientMonthNames {
			s.log.Debug("Rejected month abbreviation", "operation", "CustomParseDate", "month", tokens[1])
			return domain.Date{}, fmt.Errorf("%w: unknown month abbreviation %q", errors.ErrParse, tokens[1])
		}
		s.log.Debug("Unknown month abbreviation read as December", "operation", "CustomParseDate", "month", tokens[1])
		month = int(time.December)
	}
	day, errDay := strconv.Atoi(tokens[0])
	year, errYear := strconv.Atoi(tokens[2])
	if errDay != nil || errYear != nil {
		s.log.Debug("Rejected custom date", "operation", "CustomParseDate", "input", str)
		return domain.Date{}, fmt.Errorf("%w: %q has a non-numeric day or year", errors.ErrParse, str)
	}
	return s.parsedDate("CustomParseDate", str, year, month, day)
}

func (s *DateTimeService) parsedDate(operation, str string, year, month, day int) (domain.Date, error) {
	d, err := domain.NewDate(year, time.Month(month), day)
	if err != nil {
		s.log.Debug("Rejected parsed date", "operation", operation, "input", str, "error", err)
		return domain.Date{}, fmt.Errorf("%w: %q: %v", errors.ErrParse, str, err)
	}
	return d, nil
}

func (s *DateTimeService) FormatDate(dt domain.DateTime) string {
	return dt.Format(displayLayout)
}
