package deals

import (
	"strings"
)

const (
	FieldCity     = "city"
	FieldIATACode = "iataCode"
	FieldPrice    = "price"
)

// Placeholder code used in the sheet for rows that still need a lookup.
const Placeholder = "TESTING"

// Destination is a single row of the destinations sheet.
type Destination struct {
	ID       int    `json:"id"`
	City     string `json:"city"`
	IATACode string `json:"iataCode"`
	Price    string `json:"price,omitempty"`
}

// MissingCode returns true if the destination code has not been resolved yet, i.e. it is
// blank, the sheet placeholder or the ERROR marker left by a failed lookup. N/A is a
// definitive 'no match' and is not retried.
func (d Destination) MissingCode() bool {
	switch strings.ToUpper(strings.TrimSpace(d.IATACode)) {
	case "", Placeholder, errorMarker:
		return true

	default:
		return false
	}
}

// Resolved returns true if the destination has a usable location code.
func (d Destination) Resolved() bool {
	if d.MissingCode() {
		return false
	}

	return strings.TrimSpace(d.IATACode) != notFoundMarker
}
