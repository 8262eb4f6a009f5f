package journeys

import "fmt"

// InvalidArgumentError is raised before any network activity when a caller
// passes a malformed station reference or reference date.
type InvalidArgumentError struct {
	Argument string
	Reason   string
}

func (e InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %s: %s", e.Argument, e.Reason)
}
