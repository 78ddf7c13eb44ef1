package deals

import (
	"fmt"
)

const (
	notFoundMarker = "N/A"
	errorMarker    = "ERROR"
)

type Outcome int

const (
	Resolved Outcome = iota
	NotFound
	AuthFailed
	TransportFailed
)

func (o Outcome) String() string {
	switch o {
	case Resolved:
		return "resolved"
	case NotFound:
		return "not found"
	case AuthFailed:
		return "auth failed"
	case TransportFailed:
		return "transport failed"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Resolution is the result of a location code lookup. Code is only set for Resolved.
type Resolution struct {
	Outcome Outcome
	Code    string
}

func Found(code string) Resolution {
	return Resolution{Outcome: Resolved, Code: code}
}

func Missing() Resolution {
	return Resolution{Outcome: NotFound}
}

func Unauthorised() Resolution {
	return Resolution{Outcome: AuthFailed}
}

func Unreachable() Resolution {
	return Resolution{Outcome: TransportFailed}
}

func (r Resolution) OK() bool {
	return r.Outcome == Resolved
}

// String returns the value stored in the sheet for the resolution: the location code,
// N/A for a lookup with no match or ERROR for a lookup that could not be completed.
func (r Resolution) String() string {
	switch r.Outcome {
	case Resolved:
		return r.Code

	case NotFound:
		return notFoundMarker

	default:
		return errorMarker
	}
}
