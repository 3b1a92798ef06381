package domain

import (
	"datetime-lab/errors"
	"fmt"
	"strings"
	"time"
)

// overlapLookback reaches past any clock change to the offset in force before it.
const overlapLookback = 24 * time.Hour

// DateTime is a naive date and time of day, with no zone attached.
type DateTime struct {
	Date Date
	Time TimeOfDay
}

// DateTimeOf drops t's zone and keeps its wall-clock reading.
func DateTimeOf(t time.Time) DateTime {
	return DateTime{Date: DateOf(t), Time: TimeOfDayOf(t)}
}

// ParseDateTime accepts YYYY-MM-DDTHH:MM[:SS[.fraction]].
func ParseDateTime(s string) (DateTime, error) {
	datePart, timePart, found := strings.Cut(s, "T")
	if !found {
		return DateTime{}, fmt.Errorf("%w: %q is not YYYY-MM-DDTHH:MM[:SS]", errors.ErrParse, s)
	}
	d, err := ParseISODate(datePart)
	if err != nil {
		return DateTime{}, err
	}
	tod, err := ParseTimeOfDay(timePart)
	if err != nil {
		return DateTime{}, err
	}
	return d.AtTime(tod), nil
}

// In attaches loc to the wall-clock reading. A reading that falls in a DST gap is shifted
// forward by the length of the gap. A reading that occurs twice when clocks go back keeps
// the earlier offset.
func (dt DateTime) In(loc *time.Location) time.Time {
	t := time.Date(dt.Date.Year(), dt.Date.Month(), dt.Date.Day(),
		dt.Time.Hour(), dt.Time.Minute(), dt.Time.Second(), dt.Time.Nanosecond(), loc)
	_, offset := t.Zone()
	_, offsetBefore := t.Add(-overlapLookback).Zone()
	if offsetBefore <= offset {
		return t
	}
	earlier := t.Add(time.Duration(offset-offsetBefore) * time.Second)
	if _, o := earlier.Zone(); o == offsetBefore {
		return earlier
	}
	return t
}

// Format applies a Go layout to the wall-clock reading.
func (dt DateTime) Format(layout string) string {
	return dt.In(time.UTC).Format(layout)
}

func (dt DateTime) String() string {
	return dt.Date.String() + "T" + dt.Time.String()
}

// OffsetDateTime is a date and time paired with a fixed UTC offset.
type OffsetDateTime struct {
	Local         DateTime
	OffsetSeconds int
}

// OffsetDateTimeOf keeps t's wall-clock reading and the offset t's zone has at that instant.
func OffsetDateTimeOf(t time.Time) OffsetDateTime {
	_, offset := t.Zone()
	return OffsetDateTime{Local: DateTimeOf(t), OffsetSeconds: offset}
}

// Time returns the instant as a time.Time in a fixed zone.
func (o OffsetDateTime) Time() time.Time {
	return o.Local.In(time.FixedZone(FormatOffset(o.OffsetSeconds), o.OffsetSeconds))
}

func (o OffsetDateTime) String() string {
	return o.Local.String() + FormatOffset(o.OffsetSeconds)
}

// FormatOffset renders an offset as Z, ±HH:MM or ±HH:MM:SS.
func FormatOffset(seconds int) string {
	if seconds == 0 {
		return "Z"
	}
	sign := '+'
	if seconds < 0 {
		sign = '-'
		seconds = -seconds
	}
	h, m, s := seconds/3600, seconds%3600/60, seconds%60
	if s != 0 {
		return fmt.Sprintf("%c%02d:%02d:%02d", sign, h, m, s)
	}
	return fmt.Sprintf("%c%02d:%02d", sign, h, m)
}
