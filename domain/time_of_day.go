package domain

import (
	"datetime-lab/errors"
	"fmt"
	"strings"
	"time"
)

const Day = 24 * time.Hour

var timeOfDayLayouts = []string{"15:04:05.999999999", "15:04"}

// TimeOfDay is a wall-clock time without date or zone, kept as the offset from midnight.
// Invariant: 0 <= sinceMidnight < 24h.
type TimeOfDay struct {
	sinceMidnight time.Duration
}

func NewTimeOfDay(hour, minute, second, nanosecond int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 ||
		nanosecond < 0 || nanosecond >= int(time.Second) {
		return TimeOfDay{}, fmt.Errorf("%w: %02d:%02d:%02d.%09d is not a time of day",
			errors.ErrInvalidArgument, hour, minute, second, nanosecond)
	}
	return TimeOfDay{sinceMidnight: time.Duration(hour)*time.Hour +
		time.Duration(minute)*time.Minute +
		time.Duration(second)*time.Second +
		time.Duration(nanosecond)}, nil
}

// MustTimeOfDay is NewTimeOfDay for literals known to be valid.
func MustTimeOfDay(hour, minute, second, nanosecond int) TimeOfDay {
	tod, err := NewTimeOfDay(hour, minute, second, nanosecond)
	if err != nil {
		panic(err)
	}
	return tod
}

// TimeOfDayOf returns the wall-clock time of t in t's own location.
func TimeOfDayOf(t time.Time) TimeOfDay {
	return TimeOfDay{sinceMidnight: time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second +
		time.Duration(t.Nanosecond())}
}

// ParseTimeOfDay accepts HH:MM, HH:MM:SS and HH:MM:SS.fraction.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	for _, layout := range timeOfDayLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return TimeOfDayOf(t), nil
		}
	}
	return TimeOfDay{}, fmt.Errorf("%w: %q is not HH:MM[:SS]", errors.ErrParse, s)
}

func (t TimeOfDay) Hour() int       { return int(t.sinceMidnight / time.Hour) }
func (t TimeOfDay) Minute() int     { return int(t.sinceMidnight % time.Hour / time.Minute) }
func (t TimeOfDay) Second() int     { return int(t.sinceMidnight % time.Minute / time.Second) }
func (t TimeOfDay) Nanosecond() int { return int(t.sinceMidnight % time.Second) }

// Add moves the time by d, wrapping around midnight in either direction.
func (t TimeOfDay) Add(d time.Duration) TimeOfDay {
	shifted := (t.sinceMidnight + d%Day) % Day
	if shifted < 0 {
		shifted += Day
	}
	return TimeOfDay{sinceMidnight: shifted}
}

// String renders HH:MM, adding seconds and the fraction only when they are non-zero.
func (t TimeOfDay) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%02d:%02d", t.Hour(), t.Minute())
	if t.Second() == 0 && t.Nanosecond() == 0 {
		return b.String()
	}
	fmt.Fprintf(&b, ":%02d", t.Second())
	switch ns := t.Nanosecond(); {
	case ns == 0:
	case ns%int(time.Millisecond) == 0:
		fmt.Fprintf(&b, ".%03d", ns/int(time.Millisecond))
	case ns%int(time.Microsecond) == 0:
		fmt.Fprintf(&b, ".%06d", ns/int(time.Microsecond))
	default:
		fmt.Fprintf(&b, ".%09d", ns)
	}
	return b.String()
}
