package cli

import (
	"bytes"
	"datetime-lab/domain"
	"fmt"
	"time"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

type demoCase struct {
	operation string
	input     string
	run       func() (string, error)
}

func (r *Runner) demoCases() []demoCase {
	sampleTime := domain.MustTimeOfDay(22, 45, 0, 0)
	sampleDate := domain.MustDate(2019, time.September, 6)
	sampleDateTime := sampleDate.AtTime(domain.MustTimeOfDay(13, 17, 0, 0))

	return []demoCase{
		{"TodayDate", "FULL", func() (string, error) { return r.service.TodayDate(domain.FULL) }},
		{"TodayDate", "MONTH", func() (string, error) { return r.service.TodayDate(domain.MONTH) }},
		{"GetDate", "[2020 2 29]", stringer(func() (fmt.Stringer, error) { return r.service.GetDate([]int{2020, 2, 29}) })},
		{"GetDate", "[2020 1 1 1]", stringer(func() (fmt.Stringer, error) { return r.service.GetDate([]int{2020, 1, 1, 1}) })},
		{"AddHours", "22:45 +3", ok(r.service.AddHours(sampleTime, 3))},
		{"AddMinutes", "22:45 -50", ok(r.service.AddMinutes(sampleTime, -50))},
		{"AddSeconds", "22:45 +4500", ok(r.service.AddSeconds(sampleTime, 4500))},
		{"AddWeeks", "2019-09-06 +2", stringer(func() (fmt.Stringer, error) { return r.service.AddWeeks(sampleDate, 2) })},
		{"AddWeeks", "9999-12-31 +1", stringer(func() (fmt.Stringer, error) {
			return r.service.AddWeeks(domain.MustDate(9999, time.December, 31), 1)
		})},
		{"BeforeOrAfter", sampleDate.String(), func() (string, error) { return r.service.BeforeOrAfter(sampleDate), nil }},
		{"GetDateInSpecificTimeZone", "2019-09-06T10:15:30Z Europe/Kyiv", stringer(func() (fmt.Stringer, error) {
			return r.service.GetDateInSpecificTimeZone("2019-09-06T10:15:30Z", "Europe/Kyiv")
		})},
		{"OffsetDateTime", sampleDateTime.String(), ok(r.service.OffsetDateTime(sampleDateTime))},
		{"ParseDate", "20190906", stringer(func() (fmt.Stringer, error) { return r.service.ParseDate("20190906") })},
		{"CustomParseDate", "6 Sep 2019", stringer(func() (fmt.Stringer, error) { return r.service.CustomParseDate("6 Sep 2019") })},
		{"CustomParseDate", "6 Foo 2019", stringer(func() (fmt.Stringer, error) { return r.service.CustomParseDate("6 Foo 2019") })},
		{"FormatDate", sampleDateTime.String(), func() (string, error) { return r.service.FormatDate(sampleDateTime), nil }},
	}
}

// demo runs every operation on sample inputs and renders one row per call.
func (r *Runner) demo(_ []string) (string, error) {
	rows := lo.Map(r.demoCases(), func(c demoCase, _ int) []string {
		result, err := c.run()
		if err != nil {
			return []string{c.operation, c.input, r.paint(color.FgRed, "error: "+err.Error())}
		}
		return []string{c.operation, c.input, result}
	})

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Operation", "Input", "Result"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	table.AppendBulk(rows)
	table.Render()
	return buf.String(), nil
}

func ok(v fmt.Stringer) func() (string, error) {
	return func() (string, error) { return v.String(), nil }
}

func stringer(f func() (fmt.Stringer, error)) func() (string, error) {
	return func() (string, error) {
		v, err := f()
		if err != nil {
			return "", err
		}
		return v.String(), nil
	}
}
