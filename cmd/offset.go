package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/karasz/gtleap/leapsec"
	"github.com/karasz/gtleap/mjd"
)

func writeOffset(w io.Writer, rules *leapsec.Rules, date string) error {
	day, err := mjd.Parse(date)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s MJD %d TAI-UTC %d adjustment %+d\n",
		mjd.Format(day), day, rules.TAIOffset(day), rules.LeapSecondAdjustment(day))
	return err
}

// OffsetRun prints TAI-UTC for a date and the leap second adjustment at
// the end of it.
func OffsetRun(args []string) int {
	var tf tableFlags
	fs := flag.NewFlagSet("offset", flag.ContinueOnError)
	tf.register(fs)
	if err := fs.Parse(args); err != nil {
		return 111
	}
	if fs.NArg() != 1 {
		log.Error("usage: offset [-f table] YYYY-MM-DD")
		return 111
	}

	rules, err := tf.rules()
	if err != nil {
		log.WithError(err).Error("cannot load leap second table")
		return 111
	}
	if err := writeOffset(os.Stdout, rules, fs.Arg(0)); err != nil {
		log.WithError(err).Error("offset failed")
		return 111
	}
	return 0
}
