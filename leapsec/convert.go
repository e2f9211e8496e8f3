package leapsec

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/karasz/gtleap/mjd"
	"github.com/pkg/errors"
)

// EpochMJD is the Modified Julian Day of the TAI epoch, 1958-01-01.
const EpochMJD = 36204

const (
	secondsPerDay  = mjd.SecondsPerDay
	nanosPerSecond = int64(time.Second)
	nanosPerDay    = secondsPerDay * nanosPerSecond
	// longest possible UTC day, with a double leap second
	maxDayNanos = (secondsPerDay + 2) * nanosPerSecond

	// day numbers whose start can be computed without overflow
	maxDays = math.MaxInt64/secondsPerDay - 2
	minMJD  = EpochMJD - maxDays
	maxMJD  = EpochMJD + maxDays
	// TAI seconds either way of the epoch that both conversions accept
	maxTAISeconds = (maxDays - 1) * secondsPerDay
)

// TAIInstant is a point on the TAI scale: seconds since the TAI epoch and
// a nanosecond within that second.
type TAIInstant struct {
	Seconds int64
	Nano    int32
}

// Validate checks that Nano is within a second.
func (t TAIInstant) Validate() error {
	if t.Nano < 0 || int64(t.Nano) >= nanosPerSecond {
		return errors.Wrapf(ErrInvalidArgument, "nano of second %d out of range", t.Nano)
	}
	return nil
}

// UTCInstant is a point on the UTC scale: a Modified Julian Day and the
// nanoseconds elapsed since it began. On a day ending in a leap second
// NanoOfDay may reach past 86400 seconds.
type UTCInstant struct {
	MJD       int64
	NanoOfDay int64
}

// UTCFromTime returns the UTC instant of t. time.Time has no leap seconds,
// so the result is never inside one.
func UTCFromTime(t time.Time) UTCInstant {
	day := mjd.FromTime(t)
	return UTCInstant{MJD: day, NanoOfDay: int64(t.Sub(mjd.Midnight(day)))}
}

// Validate checks that NanoOfDay fits in the longest possible day. Whether
// the day really is that long depends on the rules; see ConvertToTAI.
func (u UTCInstant) Validate() error {
	if u.NanoOfDay < 0 || u.NanoOfDay >= maxDayNanos {
		return errors.Wrapf(ErrInvalidArgument, "nano of day %d out of range", u.NanoOfDay)
	}
	return nil
}

// Time converts u to a time.Time. An instant inside a leap second cannot be
// represented and is reported as the last nanosecond of the day with ok
// set to false.
func (u UTCInstant) Time() (t time.Time, ok bool) {
	nod := u.NanoOfDay
	if nod >= nanosPerDay {
		nod, ok = nanosPerDay-1, false
	} else {
		ok = true
	}
	return mjd.Midnight(u.MJD).Add(time.Duration(nod)), ok
}

// String formats u like time.Time does, showing a leap second as :60.
func (u UTCInstant) String() string {
	sod := u.NanoOfDay / nanosPerSecond
	nano := u.NanoOfDay % nanosPerSecond
	h, m, s := sod/3600, sod/60%60, sod%60
	if sod >= secondsPerDay {
		h, m, s = 23, 59, 60+sod-secondsPerDay
	}
	frac := ""
	if nano != 0 {
		frac = strings.TrimRight(fmt.Sprintf(".%09d", nano), "0")
	}
	return fmt.Sprintf("%s %02d:%02d:%02d%s +0000 UTC", mjd.Format(u.MJD), h, m, s, frac)
}

// ConvertToTAI converts a UTC instant to TAI.
//
// NanoOfDay must fall within the day as the rules define it: a second past
// 86400 only exists on days ending in a leap second, and the last second
// of a day ending in a negative leap second does not exist at all
// (ErrInvalidCivilInstant). Instants too far from the epoch for TAI
// seconds to be counted in an int64 return ErrInvalidArgument.
func (r *Rules) ConvertToTAI(u UTCInstant) (TAIInstant, error) {
	if err := u.Validate(); err != nil {
		return TAIInstant{}, err
	}
	if u.MJD < minMJD || u.MJD > maxMJD {
		return TAIInstant{}, errors.Wrapf(ErrInvalidArgument, "day %d out of range", u.MJD)
	}
	d := r.ref.Load()
	sod := u.NanoOfDay / nanosPerSecond
	if sod >= d.length(u.MJD) {
		if sod < secondsPerDay {
			return TAIInstant{}, errors.Wrapf(ErrInvalidCivilInstant, "%v", u)
		}
		return TAIInstant{}, errors.Wrapf(ErrInvalidArgument, "no leap second at the end of day %d", u.MJD)
	}
	secs := d.start(u.MJD) + sod
	if secs < -maxTAISeconds || secs > maxTAISeconds {
		return TAIInstant{}, errors.Wrapf(ErrInvalidArgument, "%v out of range", u)
	}
	return TAIInstant{Seconds: secs, Nano: int32(u.NanoOfDay % nanosPerSecond)}, nil
}

// ConvertToUTC converts a TAI instant to UTC. During an inserted leap
// second the result has a NanoOfDay of 86400 seconds or more.
func (r *Rules) ConvertToUTC(t TAIInstant) (UTCInstant, error) {
	if err := t.Validate(); err != nil {
		return UTCInstant{}, err
	}
	if t.Seconds < -maxTAISeconds || t.Seconds > maxTAISeconds {
		return UTCInstant{}, errors.Wrapf(ErrInvalidArgument, "TAI seconds %d out of range", t.Seconds)
	}
	d := r.ref.Load()

	// near enough to be off by at most a day around a change day
	guess := EpochMJD + floorDiv(t.Seconds, secondsPerDay)
	day := EpochMJD + floorDiv(t.Seconds-int64(d.offset(guess)), secondsPerDay)
	sod := t.Seconds - d.start(day)
	for sod < 0 {
		day--
		sod = t.Seconds - d.start(day)
	}
	for sod >= d.length(day) {
		day++
		sod = t.Seconds - d.start(day)
	}
	return UTCInstant{MJD: day, NanoOfDay: sod*nanosPerSecond + int64(t.Nano)}, nil
}

// start returns the TAI second at which the UTC day begins.
func (d *data) start(day int64) int64 {
	return (day-EpochMJD)*secondsPerDay + int64(d.offset(day))
}

// length returns the number of SI seconds in the UTC day.
func (d *data) length(day int64) int64 {
	return secondsPerDay + int64(d.adjustment(day))
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
