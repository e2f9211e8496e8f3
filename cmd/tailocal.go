package cmd

import (
	"bufio"
	"errors"
	"flag"
	"io"
	"os"
	"strings"

	"github.com/karasz/glibtai"
	"github.com/karasz/gtleap/leapsec"
	"github.com/karasz/gtleap/tai64"
)

const (
	tainLabelLength = 1 + 2*glibtai.TAINLength
	taiLabelLength  = 1 + 2*glibtai.TAILength
)

// labelInstant parses a TAI64N or TAI64 label of the given length.
func labelInstant(lbl string) (leapsec.TAIInstant, bool) {
	switch len(lbl) {
	case tainLabelLength:
		if tn, err := glibtai.TAINfromString(lbl); err == nil {
			return tai64.ToInstant(tn), true
		}
	case taiLabelLength:
		if t, err := glibtai.TAIfromString(lbl); err == nil {
			return tai64.ToInstantSec(t), true
		}
	}
	return leapsec.TAIInstant{}, false
}

// tryReplaceLabel replaces the label of the given length at atpos with its
// UTC rendering.
func tryReplaceLabel(rules *leapsec.Rules, working string, atpos int, length int) (string, bool) {
	if len(working) < atpos+length {
		return working, false
	}
	lbl := working[atpos : atpos+length]
	tai, ok := labelInstant(lbl)
	if !ok {
		return working, false
	}
	utc, err := rules.ConvertToUTC(tai)
	if err != nil {
		log.WithError(err).WithField("label", lbl).Debug("label not converted")
		return working, false
	}
	return working[:atpos] + utc.String() + working[atpos+length:], true
}

// processline converts the first label on the line, TAI64N first.
func processline(rules *leapsec.Rules, s string) string {
	atpos := strings.Index(s, "@")
	if atpos == -1 {
		return s
	}
	if result, ok := tryReplaceLabel(rules, s, atpos, tainLabelLength); ok {
		return result
	}
	if result, ok := tryReplaceLabel(rules, s, atpos, taiLabelLength); ok {
		return result
	}
	return s
}

// validateInputFile checks if the input file is suitable for processing.
func validateInputFile(file *os.File) error {
	info, err := file.Stat()
	if err != nil {
		return err
	}

	if info.Mode()&os.ModeNamedPipe == 0 {
		return errors.New("the command is intended to work with pipes.\nUsage: cat logfile | tailocal")
	}

	return nil
}

// processInputStream reads from in and writes converted lines to out.
func processInputStream(rules *leapsec.Rules, in *bufio.Reader, out *bufio.Writer) error {
	for {
		input, err := in.ReadString('\n')
		if input != "" {
			if _, werr := out.WriteString(processline(rules, input)); werr != nil {
				return werr
			}
			if werr := out.Flush(); werr != nil {
				return werr
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// TAILocalRun converts TAI64N and TAI64 labels read from standard input
// to UTC, showing leap seconds as :60.
func TAILocalRun(args []string) int {
	var tf tableFlags
	fs := flag.NewFlagSet("tailocal", flag.ContinueOnError)
	tf.register(fs)
	if err := fs.Parse(args); err != nil {
		return 111
	}
	if fs.NArg() > 0 && fs.Arg(0) != "-" {
		log.Error("we do not support calling filenames yet")
		return 111
	}

	rules, err := tf.rules()
	if err != nil {
		log.WithError(err).Error("cannot load leap second table")
		return 111
	}

	file := os.Stdin
	if err := validateInputFile(file); err != nil {
		log.Error(err)
		return 111
	}

	output := bufio.NewWriter(os.Stdout)
	if err := processInputStream(rules, bufio.NewReader(file), output); err != nil {
		log.WithError(err).Error("tailocal failed")
		_ = output.Flush()
		return 111
	}
	return 0
}
