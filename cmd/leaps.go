package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/karasz/gtleap/leapsec"
	"github.com/karasz/gtleap/mjd"
)

// writeLeaps lists the change days of the rules, one per line.
func writeLeaps(w io.Writer, rules *leapsec.Rules) error {
	for _, day := range rules.LeapSecondDates() {
		_, err := fmt.Fprintf(w, "%s %d %+d %d\n",
			mjd.Format(day), day, rules.LeapSecondAdjustment(day), rules.TAIOffset(day+1))
		if err != nil {
			return err
		}
	}
	return nil
}

// LeapsRun prints every leap second day: the date, its Modified Julian
// Day, the adjustment at its end and TAI-UTC from the next day on.
func LeapsRun(args []string) int {
	var tf tableFlags
	fs := flag.NewFlagSet("leaps", flag.ContinueOnError)
	tf.register(fs)
	if err := fs.Parse(args); err != nil {
		return 111
	}

	rules, err := tf.rules()
	if err != nil {
		log.WithError(err).Error("cannot load leap second table")
		return 111
	}
	if err := writeLeaps(os.Stdout, rules); err != nil {
		log.WithError(err).Error("leaps failed")
		return 111
	}
	return 0
}
