package tai64

import (
	"testing"
	"time"

	"github.com/karasz/glibtai"
	"github.com/karasz/gtleap/leapsec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromTimeUnixEpoch(t *testing.T) {
	epoch := time.Unix(0, 0).UTC()
	label, err := FromTime(leapsec.System(), epoch)
	require.NoError(t, err)
	assert.Equal(t, "@400000000000000A00000000", label.String())
	// before 1972 both agree on the fixed 10 second offset
	assert.Equal(t, glibtai.TAINfromTime(epoch), label)
}

func TestLabelToUTC(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"@40000000433225833b6e1a8c", "2005-09-22 03:30:43.9970715 +0000 UTC"},
		{"@40000000433225840c85ba04", "2005-09-22 03:30:44.2100905 +0000 UTC"},
		{"@40000000586846a300000000", "2016-12-31 23:59:59 +0000 UTC"},
		{"@40000000586846a41dcd6500", "2016-12-31 23:59:60.5 +0000 UTC"},
		{"@40000000586846a500000000", "2017-01-01 00:00:00 +0000 UTC"},
	}
	rules := leapsec.System()
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			label, err := glibtai.TAINfromString(tt.label)
			require.NoError(t, err)
			utc, err := rules.ConvertToUTC(ToInstant(label))
			require.NoError(t, err)
			assert.Equal(t, tt.want, utc.String())

			tai, err := rules.ConvertToTAI(utc)
			require.NoError(t, err)
			assert.Equal(t, label, FromInstant(tai))
		})
	}
}

func TestToInstantSec(t *testing.T) {
	label, err := glibtai.TAIfromString("@400000005A848EAD")
	require.NoError(t, err)
	utc, err := leapsec.System().ConvertToUTC(ToInstantSec(label))
	require.NoError(t, err)
	assert.Equal(t, "2018-02-14 19:31:20 +0000 UTC", utc.String())
}

func TestInstantRoundTrip(t *testing.T) {
	for _, tai := range []leapsec.TAIInstant{
		{Seconds: 0, Nano: 0},
		{Seconds: -1, Nano: 999999999},
		{Seconds: 1861920036, Nano: 500000000},
		{Seconds: -378691200, Nano: 1},
	} {
		assert.Equal(t, tai, ToInstant(FromInstant(tai)))
	}
}

func TestNow(t *testing.T) {
	before := time.Now()
	label, err := Now(leapsec.System())
	require.NoError(t, err)

	utc, err := leapsec.System().ConvertToUTC(ToInstant(label))
	require.NoError(t, err)
	got, ok := utc.Time()
	require.True(t, ok)
	assert.WithinDuration(t, before, got, time.Second)
}
