package domain

import (
	"datetime-lab/errors"
	"fmt"
	"time"
)

const (
	DateLayout = "2006-01-02"
	MinYear    = 0
	MaxYear    = 9999

	// no shift larger than this stays within MinYear..MaxYear
	maxShiftDays = (MaxYear - MinYear + 1) * 366
)

// Date is a calendar date without time or zone, stored as midnight UTC.
type Date struct {
	t time.Time
}

// NewDate builds a Date and rejects values time.Date would silently normalise (e.g. Feb 30).
func NewDate(year int, month time.Month, day int) (Date, error) {
	if year < MinYear || year > MaxYear {
		return Date{}, fmt.Errorf("%w: year %d out of range", errors.ErrInvalidArgument, year)
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return Date{}, fmt.Errorf("%w: %04d-%02d-%02d is not a calendar date", errors.ErrInvalidArgument, year, int(month), day)
	}
	return Date{t: t}, nil
}

// MustDate is NewDate for literals known to be valid.
func MustDate(year int, month time.Month, day int) Date {
	d, err := NewDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// DateOf returns the calendar date of t as seen in t's own location.
func DateOf(t time.Time) Date {
	return Date{t: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// ParseISODate parses YYYY-MM-DD.
func ParseISODate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q: %v", errors.ErrParse, s, err)
	}
	return DateOf(t), nil
}

func (d Date) Year() int         { return d.t.Year() }
func (d Date) Month() time.Month { return d.t.Month() }
func (d Date) Day() int          { return d.t.Day() }

// AddDays shifts the date by days and fails when the result leaves MinYear..MaxYear.
func (d Date) AddDays(days int) (Date, error) {
	if days > maxShiftDays || days < -maxShiftDays {
		return Date{}, fmt.Errorf("%w: shift of %d days out of range", errors.ErrInvalidArgument, days)
	}
	t := d.t.AddDate(0, 0, days)
	if t.Year() < MinYear || t.Year() > MaxYear {
		return Date{}, fmt.Errorf("%w: %s shifted by %d days leaves years %d-%d", errors.ErrInvalidArgument, d, days, MinYear, MaxYear)
	}
	return Date{t: t}, nil
}

func (d Date) Before(other Date) bool { return d.t.Before(other.t) }
func (d Date) After(other Date) bool  { return d.t.After(other.t) }
func (d Date) Equal(other Date) bool  { return d.t.Equal(other.t) }

// AtTime combines the date with a time of day into a naive DateTime.
func (d Date) AtTime(tod TimeOfDay) DateTime {
	return DateTime{Date: d, Time: tod}
}

func (d Date) String() string {
	return d.t.Format(DateLayout)
}
