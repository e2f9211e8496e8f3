// Package mjd converts between proleptic Gregorian calendar dates and
// Modified Julian Day numbers, the day count used by the leap second table.
package mjd

import (
	"time"

	"github.com/pkg/errors"
)

// UnixEpoch is the Modified Julian Day of 1970-01-01.
const UnixEpoch = 40587

// SecondsPerDay is the length of an ordinary day.
const SecondsPerDay = 86400

// layout is the only date format the table files and the CLI accept.
const layout = "2006-01-02"

// ErrBadDate is returned by Parse for anything that is not YYYY-MM-DD.
var ErrBadDate = errors.New("invalid date")

// FromDate returns the Modified Julian Day of the given date.
// Out of range months and days are normalized the way time.Date does.
func FromDate(year int, month time.Month, day int) int64 {
	return FromTime(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// FromTime returns the Modified Julian Day t falls on, in UTC.
func FromTime(t time.Time) int64 {
	y, m, d := t.UTC().Date()
	secs := time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix()
	return secs/SecondsPerDay + UnixEpoch
}

// ToDate returns the calendar date of a Modified Julian Day.
func ToDate(day int64) (year int, month time.Month, dom int) {
	return Midnight(day).Date()
}

// Midnight returns the start of the day as a UTC time.Time.
func Midnight(day int64) time.Time {
	return time.Unix((day-UnixEpoch)*SecondsPerDay, 0).UTC()
}

// Parse reads a YYYY-MM-DD date.
func Parse(s string) (int64, error) {
	t, err := time.Parse(layout, s)
	if err != nil {
		return 0, errors.Wrapf(ErrBadDate, "%q", s)
	}
	return FromTime(t), nil
}

// Format renders a day as YYYY-MM-DD.
func Format(day int64) string {
	return Midnight(day).Format(layout)
}
