// Package tai64 maps TAI instants to and from the external TAI64 and
// TAI64N labels of libtai, using the glibtai types.
package tai64

import (
	"encoding/binary"
	"time"

	"github.com/karasz/glibtai"
	"github.com/karasz/gtleap/leapsec"
	"github.com/karasz/gtleap/mjd"
)

// Base is the label of 1970-01-01 00:00:00 TAI.
const Base = uint64(1) << 62

// unixEpochTAI is 1970-01-01 00:00:00 TAI in seconds since the TAI epoch.
const unixEpochTAI = (mjd.UnixEpoch - leapsec.EpochMJD) * mjd.SecondsPerDay

// FromInstant returns the TAI64N label of t.
func FromInstant(t leapsec.TAIInstant) glibtai.TAIN {
	buf := make([]byte, glibtai.TAINLength)
	binary.BigEndian.PutUint64(buf, Base+uint64(t.Seconds-unixEpochTAI))
	binary.BigEndian.PutUint32(buf[glibtai.TAILength:], uint32(t.Nano))
	return glibtai.TAINUnpack(buf)
}

// ToInstant returns the TAI instant a TAI64N label names. The nanosecond
// field is copied as is; a label with too many nanoseconds yields an
// instant that fails Validate.
func ToInstant(t glibtai.TAIN) leapsec.TAIInstant {
	buf := glibtai.TAINPack(t)
	return leapsec.TAIInstant{
		Seconds: labelSeconds(binary.BigEndian.Uint64(buf)),
		Nano:    int32(binary.BigEndian.Uint32(buf[glibtai.TAILength:])),
	}
}

// ToInstantSec returns the TAI instant a TAI64 label names.
func ToInstantSec(t glibtai.TAI) leapsec.TAIInstant {
	return leapsec.TAIInstant{Seconds: labelSeconds(binary.BigEndian.Uint64(glibtai.TAIPack(t)))}
}

func labelSeconds(x uint64) int64 {
	return int64(x-Base) + unixEpochTAI
}

// Now returns the TAI64N label of the current wall clock time, taking
// TAI-UTC from the rules.
func Now(rules *leapsec.Rules) (glibtai.TAIN, error) {
	return FromTime(rules, time.Now())
}

// FromTime returns the TAI64N label of t.
func FromTime(rules *leapsec.Rules, t time.Time) (glibtai.TAIN, error) {
	tai, err := rules.ConvertToTAI(leapsec.UTCFromTime(t))
	if err != nil {
		return glibtai.TAIN{}, err
	}
	return FromInstant(tai), nil
}
