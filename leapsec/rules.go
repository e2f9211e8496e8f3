// Package leapsec keeps the table of leap seconds and converts instants
// between the TAI and UTC time scales.
//
// The table is an immutable snapshot behind an atomic pointer. Readers load
// the pointer once per call and never block; RegisterLeapSecond publishes a
// copy with one extra entry using a single compare-and-swap.
package leapsec

import (
	"fmt"
	"slices"
	"sync/atomic"

	"github.com/pkg/errors"
)

// BaseOffset is TAI-UTC, in seconds, for every day before the first
// change day in the table.
const BaseOffset = 10

// maxOffset bounds TAI-UTC in either direction, keeping a day's start
// within a day of midnight on the TAI scale.
const maxOffset = 3600

// data is one snapshot of the table. dates and offsets are aligned and
// never modified once the snapshot is published.
type data struct {
	// last day before each new offset takes effect, ascending
	dates []int64
	// TAI-UTC in force from the day after dates[i]
	offsets []int
}

// Rules answers leap second questions from one table.
// Rules is safe for concurrent use.
type Rules struct {
	name string
	ref  atomic.Pointer[data]
}

// New returns rules built from explicit change days and cumulative offsets.
// The slices are copied.
func New(name string, dates []int64, offsets []int) (*Rules, error) {
	if len(dates) != len(offsets) {
		return nil, errors.Wrapf(ErrMalformedTable, "%d dates but %d offsets", len(dates), len(offsets))
	}
	d := &data{dates: slices.Clone(dates), offsets: slices.Clone(offsets)}
	if err := d.validate(); err != nil {
		return nil, err
	}
	return newRules(name, d), nil
}

func newRules(name string, d *data) *Rules {
	r := &Rules{name: name}
	r.ref.Store(d)
	return r
}

func (d *data) validate() error {
	if len(d.dates) == 0 {
		return errors.Wrap(ErrMalformedTable, "no leap seconds")
	}
	for i, off := range d.offsets {
		if off < -maxOffset || off > maxOffset {
			return errors.Wrapf(ErrMalformedTable, "offset %d at day %d out of range", off, d.dates[i])
		}
	}
	for i := 1; i < len(d.dates); i++ {
		if d.dates[i] <= d.dates[i-1] {
			return errors.Wrapf(ErrMalformedTable, "day %d does not follow day %d", d.dates[i], d.dates[i-1])
		}
		if !validAdjustment(d.offsets[i] - d.offsets[i-1]) {
			return errors.Wrapf(ErrMalformedTable,
				"leap adjustment at day %d must be -1, 1 or 2, not %d", d.dates[i], d.offsets[i]-d.offsets[i-1])
		}
	}
	return nil
}

func validAdjustment(adj int) bool {
	return adj == -1 || adj == 1 || adj == 2
}

// Name returns the name the rules were created with.
func (r *Rules) Name() string {
	return r.name
}

func (r *Rules) String() string {
	return fmt.Sprintf("LeapSecondRules[%s]", r.name)
}

// LeapSecondAdjustment returns the seconds added (or removed, if negative)
// at the end of the given Modified Julian Day. Ordinary days return 0.
func (r *Rules) LeapSecondAdjustment(mjd int64) int {
	return r.ref.Load().adjustment(mjd)
}

// TAIOffset returns TAI-UTC in seconds during the given Modified Julian
// Day. On a change day the previous offset still applies: the new one
// starts once the day, leap second included, has ended.
func (r *Rules) TAIOffset(mjd int64) int {
	return r.ref.Load().offset(mjd)
}

// LeapSecondDates returns the change days in ascending order.
// The returned slice belongs to the caller.
func (r *Rules) LeapSecondDates() []int64 {
	return slices.Clone(r.ref.Load().dates)
}

func (d *data) adjustment(mjd int64) int {
	pos, found := slices.BinarySearch(d.dates, mjd)
	if !found || pos == 0 {
		return 0
	}
	return d.offsets[pos] - d.offsets[pos-1]
}

func (d *data) offset(mjd int64) int {
	// pos counts the change days strictly before mjd
	pos, _ := slices.BinarySearch(d.dates, mjd)
	if pos == 0 {
		return BaseOffset
	}
	return d.offsets[pos-1]
}

// RegisterLeapSecond adds a leap second at the end of the given Modified
// Julian Day. The change is visible to every caller as soon as it returns.
//
// mjd must be after the last known change day and adjustment must be -1,
// 1 or 2, otherwise ErrInvalidArgument is returned. If another
// registration wins the race the call fails with ErrConcurrentUpdate and
// the table is left as the winner made it.
func (r *Rules) RegisterLeapSecond(mjd int64, adjustment int) error {
	return r.register(r.ref.Load(), mjd, adjustment)
}

func (r *Rules) register(cur *data, mjd int64, adjustment int) error {
	last := len(cur.dates) - 1
	if mjd <= cur.dates[last] {
		return errors.Wrapf(ErrInvalidArgument,
			"day %d must be after the last configured leap second day %d", mjd, cur.dates[last])
	}
	if !validAdjustment(adjustment) {
		return errors.Wrapf(ErrInvalidArgument, "leap adjustment must be -1, 1 or 2, not %d", adjustment)
	}
	if off := cur.offsets[last] + adjustment; off < -maxOffset || off > maxOffset {
		return errors.Wrapf(ErrInvalidArgument, "offset %d out of range", off)
	}

	next := &data{
		dates:   append(slices.Clip(cur.dates), mjd),
		offsets: append(slices.Clip(cur.offsets), cur.offsets[last]+adjustment),
	}
	if !r.ref.CompareAndSwap(cur, next) {
		return errors.WithStack(ErrConcurrentUpdate)
	}
	return nil
}
