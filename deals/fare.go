package deals

import (
	"strconv"
	"strings"
)

// FareQuote is the cheapest round trip found for a destination. A quote is either
// complete or has every field set to N/A - use Unavailable() rather than building a
// partial quote.
type FareQuote struct {
	Price       string
	Origin      string
	Destination string
	OutDate     string
	ReturnDate  string
}

func Unavailable() FareQuote {
	return FareQuote{
		Price:       notFoundMarker,
		Origin:      notFoundMarker,
		Destination: notFoundMarker,
		OutDate:     notFoundMarker,
		ReturnDate:  notFoundMarker,
	}
}

// NewFareQuote returns a complete quote, or Unavailable() if any of the fields is blank.
func NewFareQuote(price, origin, destination, out, back string) FareQuote {
	for _, v := range []string{price, origin, destination, out, back} {
		if strings.TrimSpace(v) == "" {
			return Unavailable()
		}
	}

	return FareQuote{
		Price:       strings.TrimSpace(price),
		Origin:      strings.TrimSpace(origin),
		Destination: strings.TrimSpace(destination),
		OutDate:     strings.TrimSpace(out),
		ReturnDate:  strings.TrimSpace(back),
	}
}

func (q FareQuote) Available() bool {
	return q != Unavailable()
}

// CheaperThan returns true if the quote is available and less than the price currently
// stored in the sheet. A blank or unparseable stored price is always beaten.
func (q FareQuote) CheaperThan(price string) bool {
	if !q.Available() {
		return false
	}

	p, err := strconv.ParseFloat(q.Price, 64)
	if err != nil {
		return false
	}

	current, err := strconv.ParseFloat(strings.TrimSpace(price), 64)
	if err != nil {
		return true
	}

	return p < current
}
