package reconcile

import (
	"context"
	"reflect"
	"testing"

	"github.com/twystd/flight-deals/amadeus"
	"github.com/twystd/flight-deals/deals"
)

type finder struct {
	fares map[string]deals.FareQuote
	calls []string
}

func (f *finder) FindCheapestFare(ctx context.Context, origin, destination string) (deals.FareQuote, error) {
	f.calls = append(f.calls, origin+"-"+destination)

	if q, ok := f.fares[destination]; ok {
		return q, nil
	}

	return deals.Unavailable(), amadeus.ErrNoOffers
}

func TestFindFares(t *testing.T) {
	s := store{
		rows: []deals.Destination{
			{ID: 1, City: "Paris", IATACode: "PAR", Price: "54"},
			{ID: 2, City: "Tokyo", IATACode: ""},
			{ID: 3, City: "Atlantis", IATACode: "N/A"},
			{ID: 4, City: "Sydney", IATACode: "SYD"},
		},
	}

	f := finder{
		fares: map[string]deals.FareQuote{
			"PAR": deals.NewFareQuote("49.99", "LHR", "CDG", "2026-10-25", "2026-11-01"),
		},
	}

	p := pacer{}
	reconciler := Reconciler{Store: &s, Pacer: &p}

	quotes, err := reconciler.FindFares(context.Background(), &f, "LON", false)
	if err != nil {
		t.Fatalf("Unexpected error (%v)", err)
	}

	if !reflect.DeepEqual(f.calls, []string{"LON-PAR", "LON-SYD"}) {
		t.Errorf("Incorrect searches %v", f.calls)
	}

	if len(quotes) != 2 || quotes[0].Fare.Price != "49.99" || quotes[1].Fare != deals.Unavailable() {
		t.Errorf("Incorrect quotes %+v", quotes)
	}

	if len(s.updates) != 0 {
		t.Errorf("Unexpected updates %v", s.updates)
	}

	if p.waits != 2 {
		t.Errorf("Expected 2 pauses, got %v", p.waits)
	}
}

func TestFindFaresWithUpdate(t *testing.T) {
	s := store{
		rows: []deals.Destination{
			{ID: 1, City: "Paris", IATACode: "PAR", Price: "54"},
			{ID: 2, City: "Berlin", IATACode: "BER", Price: "42"},
			{ID: 3, City: "Rome", IATACode: "ROM", Price: ""},
			{ID: 4, City: "Sydney", IATACode: "SYD", Price: "1200"},
		},
	}

	f := finder{
		fares: map[string]deals.FareQuote{
			"PAR": deals.NewFareQuote("49.99", "LHR", "CDG", "2026-10-25", "2026-11-01"),
			"BER": deals.NewFareQuote("65.00", "LHR", "BER", "2026-10-25", "2026-11-01"),
			"ROM": deals.NewFareQuote("88.10", "LGW", "FCO", "2026-10-25", "2026-11-01"),
		},
	}

	reconciler := Reconciler{Store: &s}

	if _, err := reconciler.FindFares(context.Background(), &f, "LON", true); err != nil {
		t.Fatalf("Unexpected error (%v)", err)
	}

	expected := []update{
		{1, "price", "49.99"},
		{3, "price", "88.10"},
	}

	if !reflect.DeepEqual(s.updates, expected) {
		t.Errorf("Incorrect updates\n   expected: %v\n   got:      %v", expected, s.updates)
	}
}
