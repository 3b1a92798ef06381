package clock

import (
	"datetime-lab/errors"
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"
)

// SystemClock reads the host clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// SystemZones resolves zones from the embedded IANA database. Default is the host zone
// unless an override was given.
type SystemZones struct {
	override *time.Location
}

// NewSystemZones returns a provider whose default zone is name, or the host zone when name is empty.
func NewSystemZones(name string) (*SystemZones, error) {
	z := &SystemZones{}
	if name == "" {
		return z, nil
	}
	loc, err := z.Load(name)
	if err != nil {
		return nil, err
	}
	z.override = loc
	return z, nil
}

func (z *SystemZones) Default() *time.Location {
	if z.override != nil {
		return z.override
	}
	return time.Local
}

// Load accepts IANA names ("Europe/Kyiv", "UTC"), fixed offsets ("Z", "+02:00", "-0530", "+3")
// and offsets after a UTC, GMT or UT prefix ("GMT+2", "UTC+02:00").
// "Local" and the empty string are rejected: they name the host, not a zone.
func (z *SystemZones) Load(name string) (*time.Location, error) {
	switch {
	case name == "" || name == "Local":
		return nil, fmt.Errorf("%w: %q", errors.ErrUnknownZone, name)
	case name == "Z" || name == "UT":
		return time.UTC, nil
	case isOffset(name):
		return fixedOffset(name, name)
	}
	if offset, ok := prefixedOffset(name); ok {
		return fixedOffset(name, offset)
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", errors.ErrUnknownZone, name, err)
	}
	return loc, nil
}

const maxOffset = 18 * 60 * 60

var (
	// UTC before UT so that "UTC+2" keeps its full prefix
	offsetPrefixes = []string{"UTC", "GMT", "UT"}
	offsetLayouts  = []string{"-07:00:00", "-070000", "-07:00", "-0700", "-07"}
)

func isOffset(s string) bool {
	return strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-")
}

func prefixedOffset(name string) (string, bool) {
	for _, prefix := range offsetPrefixes {
		if rest, ok := strings.CutPrefix(name, prefix); ok && isOffset(rest) {
			return rest, true
		}
	}
	return "", false
}

func fixedOffset(name, offset string) (*time.Location, error) {
	// single-digit hour, "+2"
	if len(offset) == 2 {
		offset = offset[:1] + "0" + offset[1:]
	}
	for _, layout := range offsetLayouts {
		if len(layout) != len(offset) {
			continue
		}
		t, err := time.Parse(layout, offset)
		if err != nil {
			continue
		}
		_, seconds := t.Zone()
		if seconds > maxOffset || seconds < -maxOffset {
			break
		}
		return time.FixedZone(name, seconds), nil
	}
	return nil, fmt.Errorf("%w: %q is not a valid offset", errors.ErrUnknownZone, name)
}
