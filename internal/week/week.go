// Package week implements the ISO-8601 week arithmetic behind the
// weekly-business grid. Weeks start Monday, week 1 is the week containing the
// year's first Thursday, and everything is computed in UTC so the grid does
// not drift with the server's timezone. The calendar dashboard's Sun-Sat
// "this week" is a different convention and deliberately not handled here.
package week

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Info describes one week: its five business days and the strings the list
// and detail pages display.
type Info struct {
	ID        string
	Title     string
	DateRange string
	Start     time.Time
	End       time.Time
	Days      []Day
}

// Day is one business day, Monday (index 1) through Friday (index 5).
type Day struct {
	DayIndex    int
	Date        string
	DisplayDate string
}

// ID returns the ISO week identifier "YYYY-W##" for a date. The date is
// shifted to the Thursday of its week first, so days near a year boundary
// land in the year that owns their week.
func ID(t time.Time) string {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	d = d.AddDate(0, 0, 4-isoWeekday(d))
	yearStart := time.Date(d.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	weekNo := (int(d.Sub(yearStart).Hours()/24) + 7) / 7
	return fmt.Sprintf("%d-W%02d", d.Year(), weekNo)
}

// Parse splits a "YYYY-W##" identifier into year and week number.
func Parse(weekID string) (year, week int, err error) {
	parts := strings.SplitN(weekID, "-W", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid week id %q", weekID)
	}
	year, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid week id %q", weekID)
	}
	week, err = strconv.Atoi(parts[1])
	if err != nil || week < 1 || week > 53 {
		return 0, 0, fmt.Errorf("invalid week id %q", weekID)
	}
	return year, week, nil
}

// Monday returns the Monday of the identified week. Jan 4 always falls in
// ISO week 1, so week 1's Monday is derived from it and later weeks are
// whole-week offsets from there.
func Monday(weekID string) (time.Time, error) {
	year, wk, err := Parse(weekID)
	if err != nil {
		return time.Time{}, err
	}
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	week1Monday := jan4.AddDate(0, 0, 1-isoWeekday(jan4))
	return week1Monday.AddDate(0, 0, (wk-1)*7), nil
}

// For describes the week identified by weekID: Monday-Friday dates, a
// "(MM/DD - MM/DD)" range, and the "<year>年 <month>月, 第 <n> 週" title.
func For(weekID string) (Info, error) {
	start, err := Monday(weekID)
	if err != nil {
		return Info{}, err
	}
	end := start.AddDate(0, 0, 4)

	days := make([]Day, 5)
	for i := range days {
		d := start.AddDate(0, 0, i)
		days[i] = Day{
			DayIndex:    i + 1,
			Date:        d.Format("2006-01-02"),
			DisplayDate: d.Format("01/02"),
		}
	}

	weekOfMonth := (start.Day() + 6) / 7
	return Info{
		ID:        weekID,
		Title:     fmt.Sprintf("%d年 %d月, 第 %d 週", start.Year(), int(start.Month()), weekOfMonth),
		DateRange: fmt.Sprintf("(%s - %s)", start.Format("01/02"), end.Format("01/02")),
		Start:     start,
		End:       end,
		Days:      days,
	}, nil
}

// Adjacent returns the week id one step before (direction -1) or after
// (direction +1) the given week, rolling over year boundaries.
func Adjacent(weekID string, direction int) (string, error) {
	start, err := Monday(weekID)
	if err != nil {
		return "", err
	}
	return ID(start.AddDate(0, 0, 7*direction)), nil
}

// DayIndexOf returns the 1-5 business-day index of an ISO date within the
// week, or 0 when the date is malformed or falls on a weekend.
func DayIndexOf(date string) int {
	t, err := time.ParseInLocation("2006-01-02", date, time.UTC)
	if err != nil {
		return 0
	}
	wd := isoWeekday(t)
	if wd > 5 {
		return 0
	}
	return wd
}

// isoWeekday maps Go's Sunday=0 weekday to ISO Monday=1..Sunday=7.
func isoWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}
