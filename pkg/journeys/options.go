package journeys

import (
	"time"
)

// Options narrows a journey search. All fields are optional; When and
// DepartureAfter are alternative ways of giving the reference instant and
// default to the call time when neither is set.
type Options struct {
	When           *time.Time
	DepartureAfter *time.Time

	// Maximum number of journeys returned, 0 = unlimited
	Results int

	// Maximum number of transfers, nil = unlimited. A journey with N legs
	// has N-1 transfers.
	Transfers *int

	// Search window in minutes forward from the reference instant,
	// nil = single civil day only
	Interval *int
}

func (o *Options) validate() (time.Time, error) {
	var reference time.Time
	switch {
	case o.When != nil:
		reference = *o.When
	case o.DepartureAfter != nil:
		reference = *o.DepartureAfter
	default:
		reference = time.Now()
	}

	if reference.IsZero() {
		return time.Time{}, InvalidArgumentError{Argument: "when", Reason: "must be a valid date"}
	}

	if o.Results < 0 {
		return time.Time{}, InvalidArgumentError{Argument: "results", Reason: "must be a positive integer"}
	}
	if o.Transfers != nil && *o.Transfers < 0 {
		return time.Time{}, InvalidArgumentError{Argument: "transfers", Reason: "must be a non-negative integer"}
	}
	if o.Interval != nil && *o.Interval < 0 {
		return time.Time{}, InvalidArgumentError{Argument: "interval", Reason: "must be a non-negative number of minutes"}
	}

	return reference, nil
}
