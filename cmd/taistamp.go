package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/karasz/gtleap/leapsec"
	"github.com/karasz/gtleap/mjd"
	"github.com/karasz/gtleap/tai64"
	"github.com/pkg/errors"
)

var errBadTime = errors.New("time must look like YYYY-MM-DDThh:mm:ss[.fraction]")

// parseUTC reads YYYY-MM-DDThh:mm:ss[.fraction]. Unlike time.Parse it
// accepts 23:59:60 and 23:59:61; whether the day really has those seconds
// is left to the rules.
func parseUTC(s string) (leapsec.UTCInstant, error) {
	date, clock, ok := strings.Cut(s, "T")
	if !ok {
		return leapsec.UTCInstant{}, errors.Wrapf(errBadTime, "%q", s)
	}
	day, err := mjd.Parse(date)
	if err != nil {
		return leapsec.UTCInstant{}, err
	}

	clock, frac, hasFrac := strings.Cut(clock, ".")
	parts := strings.Split(clock, ":")
	if len(parts) != 3 {
		return leapsec.UTCInstant{}, errors.Wrapf(errBadTime, "%q", s)
	}
	var hms [3]int64
	for i, p := range parts {
		if len(p) != 2 {
			return leapsec.UTCInstant{}, errors.Wrapf(errBadTime, "%q", s)
		}
		n, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			return leapsec.UTCInstant{}, errors.Wrapf(errBadTime, "%q", s)
		}
		hms[i] = n
	}
	h, m, sec := hms[0], hms[1], hms[2]
	if h > 23 || m > 59 || sec > 61 || (sec > 59 && (h != 23 || m != 59)) {
		return leapsec.UTCInstant{}, errors.Wrapf(errBadTime, "%q out of range", s)
	}

	var nano int64
	if hasFrac {
		if frac == "" || len(frac) > 9 {
			return leapsec.UTCInstant{}, errors.Wrapf(errBadTime, "%q", s)
		}
		nano, err = strconv.ParseInt(frac+strings.Repeat("0", 9-len(frac)), 10, 64)
		if err != nil || nano < 0 {
			return leapsec.UTCInstant{}, errors.Wrapf(errBadTime, "%q", s)
		}
	}
	return leapsec.UTCInstant{
		MJD:       day,
		NanoOfDay: (h*3600+m*60+sec)*int64(time.Second) + nano,
	}, nil
}

func writeStamp(w io.Writer, rules *leapsec.Rules, utc leapsec.UTCInstant) error {
	tai, err := rules.ConvertToTAI(utc)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, tai64.FromInstant(tai))
	return err
}

// TAIStampRun prints the TAI64N label of a UTC time, or of now.
func TAIStampRun(args []string) int {
	var tf tableFlags
	fs := flag.NewFlagSet("taistamp", flag.ContinueOnError)
	tf.register(fs)
	if err := fs.Parse(args); err != nil {
		return 111
	}
	if fs.NArg() > 1 {
		log.Error("usage: taistamp [-f table] [YYYY-MM-DDThh:mm:ss[.fraction]]")
		return 111
	}

	rules, err := tf.rules()
	if err != nil {
		log.WithError(err).Error("cannot load leap second table")
		return 111
	}

	utc := leapsec.UTCFromTime(time.Now())
	if fs.NArg() == 1 {
		if utc, err = parseUTC(fs.Arg(0)); err != nil {
			log.WithError(err).Error("taistamp failed")
			return 111
		}
	}
	if err := writeStamp(os.Stdout, rules, utc); err != nil {
		log.WithError(err).Error("taistamp failed")
		return 111
	}
	return 0
}
