package domain

import (
	"datetime-lab/errors"
	"fmt"
	"strings"
	"time"
)

// DatePart selects which part of today's date is reported.
type DatePart int

const (
	FULL DatePart = iota
	YEAR
	MONTH
	DAY
)

var datePartNames = map[DatePart]string{
	FULL:  "FULL",
	YEAR:  "YEAR",
	MONTH: "MONTH",
	DAY:   "DAY",
}

func (p DatePart) String() string {
	if name, ok := datePartNames[p]; ok {
		return name
	}
	return fmt.Sprintf("DatePart(%d)", int(p))
}

func (p DatePart) IsValid() bool {
	_, ok := datePartNames[p]
	return ok
}

// ParseDatePart is case-insensitive.
func ParseDatePart(s string) (DatePart, error) {
	for part, name := range datePartNames {
		if strings.EqualFold(name, s) {
			return part, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown date part %q", errors.ErrInvalidArgument, s)
}

// MonthAbbreviations is the case-sensitive English lookup table used by "d MMM yyyy" parsing.
var MonthAbbreviations = []string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// UpperMonthName returns the upper-case English month name, e.g. SEPTEMBER.
func UpperMonthName(m time.Month) string {
	return strings.ToUpper(m.String())
}

// CalendarFields holds raw [year, month, day] input before it is turned into a Date.
type CalendarFields struct {
	Year  int `validate:"gte=0,lte=9999"`
	Month int `validate:"gte=1,lte=12"`
	Day   int `validate:"gte=1,lte=31"`
}

func (f CalendarFields) Date() (Date, error) {
	return NewDate(f.Year, time.Month(f.Month), f.Day)
}
