package e2e

import (
	"datetime-lab/domain"
	"datetime-lab/errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/suite"
)

type testDateTimeSuite struct {
	BaseCliSuite
}

func TestDateTimeSuite(t *testing.T) {
	suite.Run(t, &testDateTimeSuite{})
}

func (s *testDateTimeSuite) TestTodayFlow() {
	var today string

	s.Run("Step 1: Today as a full date", func() {
		before := s.Today().Format(domain.DateLayout)
		out, err := s.Exec("Read today's date", "today")
		s.Require().NoError(err)
		after := s.Today().Format(domain.DateLayout)
		s.Require().Contains([]string{before, after}, out)
		today = out
	})

	s.Run("Step 2: Today's parts agree with the full date", func() {
		d, err := domain.ParseISODate(today)
		s.Require().NoError(err)

		year, err := s.Exec("Read the year", "today", "year")
		s.Require().NoError(err)
		s.Equal(strconv.Itoa(d.Year()), year)

		month, err := s.Exec("Read the month", "today", "month")
		s.Require().NoError(err)
		s.Equal(domain.UpperMonthName(d.Month()), month)
	})

	s.Run("Step 3: Comparing today with itself and its neighbours", func() {
		d, err := domain.ParseISODate(today)
		s.Require().NoError(err)

		out, err := s.Exec("Compare today", "compare", today)
		s.Require().NoError(err)
		s.Equal(today+" is today", out)

		nextWeek, err := s.Exec("Move one week ahead", "add-weeks", today, "1")
		s.Require().NoError(err)
		expected, err := d.AddDays(7)
		s.Require().NoError(err)
		s.Equal(expected.String(), nextWeek)

		out, err = s.Exec("Compare next week", "compare", nextWeek)
		s.Require().NoError(err)
		s.Equal(nextWeek+" is after "+today, out)
	})
}

func (s *testDateTimeSuite) TestParseAndFormatFlow() {
	s.Run("Step 1: Both parse formats yield the same date", func() {
		compact, err := s.Exec("Parse compact date", "parse", "20190906")
		s.Require().NoError(err)
		custom, err := s.Exec("Parse custom date", "parse-custom", "6 Sep 2019")
		s.Require().NoError(err)
		s.Equal("2019-09-06", compact)
		s.Equal(compact, custom)
	})

	s.Run("Step 2: Format the parsed date at 18:00", func() {
		out, err := s.Exec("Format date", "format", "2000-01-01T18:00")
		s.Require().NoError(err)
		s.Equal("01 January 2000 18:00", out)
	})

	s.Run("Step 3: Unknown month abbreviation", func() {
		out, err := s.Exec("Parse unknown month", "parse-custom", "6 Foo 2019")
		if s.Config.LenientMonthNames {
			s.Require().NoError(err)
			s.Equal("2019-12-06", out)
			return
		}
		s.Require().ErrorIs(err, errors.ErrParse)
	})
}

func (s *testDateTimeSuite) TestZoneFlow() {
	s.Run("Step 1: Instant converted to Tokyo", func() {
		out, err := s.Exec("Convert instant", "zone", "2019-09-06T10:15:30Z", "Asia/Tokyo")
		s.Require().NoError(err)
		s.Equal("2019-09-06T19:15:30", out)
	})

	s.Run("Step 2: Offset attached from the configured zone", func() {
		out, err := s.Exec("Attach offset", "offset", "2019-09-06T13:17")
		s.Require().NoError(err)
		dt, err := domain.ParseDateTime("2019-09-06T13:17")
		s.Require().NoError(err)
		s.Equal(domain.OffsetDateTimeOf(dt.In(s.Zone)).String(), out)
	})

	s.Run("Step 3: Unknown zone is reported", func() {
		_, err := s.Exec("Convert to unknown zone", "zone", "2019-09-06T10:15:30Z", "Nowhere/Land")
		s.Require().ErrorIs(err, errors.ErrUnknownZone)
	})
}

func (s *testDateTimeSuite) TestDateArity() {
	out, err := s.Exec("Valid components", "date", "2020", "2", "29")
	s.Require().NoError(err)
	s.Equal("2020-02-29", out)

	_, err = s.Exec("Four components", "date", "2020", "1", "1", "1")
	s.Require().ErrorIs(err, errors.ErrInvalidArgument)
}
