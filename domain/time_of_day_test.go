package domain

import (
	"datetime-lab/errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewTimeOfDay_Bounds(t *testing.T) {
	req := require.New(t)

	_, err := NewTimeOfDay(23, 59, 59, 999999999)
	req.NoError(err)

	for _, bad := range [][4]int{{24, 0, 0, 0}, {-1, 0, 0, 0}, {0, 60, 0, 0}, {0, 0, 60, 0}, {0, 0, 0, int(time.Second)}} {
		_, err := NewTimeOfDay(bad[0], bad[1], bad[2], bad[3])
		req.ErrorIs(err, errors.ErrInvalidArgument, "%v", bad)
	}
}

func TestTimeOfDay_Add_WrapsAroundMidnight(t *testing.T) {
	req := require.New(t)
	tests := []struct {
		description string
		start       TimeOfDay
		delta       time.Duration
		expected    string
	}{
		{"Forward within the day", MustTimeOfDay(10, 0, 0, 0), 3 * time.Hour, "13:00"},
		{"Forward past midnight", MustTimeOfDay(22, 30, 0, 0), 2 * time.Hour, "00:30"},
		{"Backward past midnight", MustTimeOfDay(1, 0, 0, 0), -2 * time.Hour, "23:00"},
		{"Exactly one day", MustTimeOfDay(8, 15, 0, 0), Day, "08:15"},
		{"Several days backward", MustTimeOfDay(8, 15, 0, 0), -3*Day - time.Minute, "08:14"},
		{"Seconds", MustTimeOfDay(23, 59, 59, 0), time.Second, "00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			req.Equal(tt.expected, tt.start.Add(tt.delta).String())
		})
	}
}

func TestTimeOfDay_String(t *testing.T) {
	req := require.New(t)
	req.Equal("13:17", MustTimeOfDay(13, 17, 0, 0).String())
	req.Equal("13:17:05", MustTimeOfDay(13, 17, 5, 0).String())
	req.Equal("13:17:05.120", MustTimeOfDay(13, 17, 5, 120000000).String())
	req.Equal("13:17:05.000120", MustTimeOfDay(13, 17, 5, 120000).String())
	req.Equal("13:17:05.000000120", MustTimeOfDay(13, 17, 5, 120).String())
	req.Equal("00:00:00.500", MustTimeOfDay(0, 0, 0, 500000000).String())
}

func TestParseTimeOfDay(t *testing.T) {
	req := require.New(t)

	tod, err := ParseTimeOfDay("13:17")
	req.NoError(err)
	req.Equal(MustTimeOfDay(13, 17, 0, 0), tod)

	tod, err = ParseTimeOfDay("13:17:05.5")
	req.NoError(err)
	req.Equal(MustTimeOfDay(13, 17, 5, 500000000), tod)

	_, err = ParseTimeOfDay("25:00")
	req.ErrorIs(err, errors.ErrParse)

	_, err = ParseTimeOfDay("noon")
	req.ErrorIs(err, errors.ErrParse)
}
