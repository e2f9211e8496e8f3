package leapsec

import "github.com/pkg/errors"

var (
	// ErrInvalidArgument reports a value outside the documented contract.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrConcurrentUpdate reports that another registration was committed
	// between reading the table and swapping in the new one. Callers may
	// re-read the table and try again.
	ErrConcurrentUpdate = errors.New("leap second rules were updated concurrently")

	// ErrMalformedTable reports a leap second table that cannot be used.
	ErrMalformedTable = errors.New("malformed leap second table")

	// ErrInvalidCivilInstant reports a UTC instant inside a second removed
	// by a negative leap second.
	ErrInvalidCivilInstant = errors.New("UTC instant falls inside a removed leap second")
)
