package mjd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		date string
		want int64
	}{
		{"1858-11-16", -1},
		{"1858-11-17", 0},
		{"1858-11-18", 1},
		{"1958-01-01", 36204},
		{"1970-01-01", UnixEpoch},
		{"1972-06-30", 41498},
		{"1972-07-01", 41499},
		{"2008-12-31", 54831},
		{"2017-01-01", 57754},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			got, err := Parse(tt.date)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.date, Format(got))
		})
	}
}

func TestParseInvalid(t *testing.T) {
	for _, s := range []string{"", "1972-6-30", "1972-06-31", "30/06/1972", "1972-06-30T00:00:00"} {
		_, err := Parse(s)
		assert.ErrorIs(t, err, ErrBadDate, s)
	}
}

func TestFromDateRoundTrip(t *testing.T) {
	for day := int64(-1000); day < 100000; day += 37 {
		y, m, d := ToDate(day)
		require.Equal(t, day, FromDate(y, m, d))
	}
}

func TestFromTimeIgnoresTimeOfDay(t *testing.T) {
	late := time.Date(1972, time.June, 30, 23, 59, 59, 999999999, time.UTC)
	assert.Equal(t, int64(41498), FromTime(late))

	zoned := time.Date(1972, time.July, 1, 1, 0, 0, 0, time.FixedZone("CET", 3600))
	assert.Equal(t, int64(41499), FromTime(zoned))
}
