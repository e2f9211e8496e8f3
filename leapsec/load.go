package leapsec

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/karasz/gtleap/mjd"
	"github.com/pkg/errors"
)

// Load reads a leap second table in the text format
//
//	# comment
//	1972-07-01 11
//
// where each line names the date from which a new TAI-UTC offset applies.
// Blank lines and lines starting with '#' are ignored. Lines may come in
// any order; a repeated date keeps the last offset.
func Load(name string, r io.Reader) (*Rules, error) {
	leaps := make(map[int64]int)
	sc := bufio.NewScanner(r)
	lineno := 0
	for sc.Scan() {
		lineno++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		day, offset, err := parseLine(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineno)
		}
		leaps[day] = offset
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading table: %w", ErrMalformedTable, err)
	}

	dates := make([]int64, 0, len(leaps))
	for day := range leaps {
		dates = append(dates, day)
	}
	slices.Sort(dates)

	d := &data{dates: make([]int64, len(dates)), offsets: make([]int, len(dates))}
	for i, day := range dates {
		// the offset applies from the start of day, so the leap second
		// sits at the end of the day before
		d.dates[i] = day - 1
		d.offsets[i] = leaps[day]
	}
	if err := d.validate(); err != nil {
		return nil, err
	}
	return newRules(name, d), nil
}

// LoadFile reads a leap second table from a file. See Load for the format.
func LoadFile(name, path string) (*Rules, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedTable, err)
	}
	defer func() { _ = f.Close() }()
	return Load(name, f)
}

func parseLine(line string) (int64, int, error) {
	fields := strings.Split(line, " ")
	if len(fields) != 2 {
		return 0, 0, errors.Wrapf(ErrMalformedTable, "invalid line format %q", line)
	}
	day, err := mjd.Parse(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", ErrMalformedTable, err)
	}
	offset, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, errors.Wrapf(ErrMalformedTable, "invalid offset %q", fields[1])
	}
	return day, offset, nil
}
