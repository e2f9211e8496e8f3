package cmd

import (
	"flag"
	"os"

	"github.com/karasz/gtleap/leapsec"
	"github.com/sirupsen/logrus"
)

// tableEnv names a leap second table file used when -f is not given.
const tableEnv = "GTLEAP_TABLE"

var log = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return l
}

// tableFlags are the options every applet shares.
type tableFlags struct {
	table   string
	verbose bool
}

func (tf *tableFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&tf.table, "f", os.Getenv(tableEnv), "leap second table file (default: bundled table)")
	fs.BoolVar(&tf.verbose, "v", false, "verbose logging")
}

// rules returns the rules selected by -f, or the system rules.
func (tf *tableFlags) rules() (*leapsec.Rules, error) {
	if tf.verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	if tf.table == "" {
		log.Debug("using bundled leap second table")
		return leapsec.System(), nil
	}
	log.WithField("file", tf.table).Debug("loading leap second table")
	r, err := leapsec.LoadFile(tf.table, tf.table)
	if err != nil {
		return nil, err
	}
	log.WithField("entries", len(r.LeapSecondDates())).Debug("leap second table loaded")
	return r, nil
}
