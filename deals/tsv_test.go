package deals

import (
	"strings"
	"testing"
)

func TestMakeTSV(t *testing.T) {
	expected := "City\tIATA Code\tPrice\n" +
		"Paris\tPAR\t54\n" +
		"Tokyo\tN/A\t\n"

	var f strings.Builder
	destinations := []Destination{
		{ID: 2, City: "Paris", IATACode: "PAR", Price: "54"},
		{ID: 3, City: " Tokyo", IATACode: "N/A"},
	}

	if err := MakeTSV(&f, destinations); err != nil {
		t.Fatalf("Unexpected error returned from MakeTSV (%v)", err)
	}

	if f.String() != expected {
		t.Errorf("Incorrect TSV\n   expected: %s\n   got:      %s\n", expected, f.String())
	}
}

func TestMakeTSVSkipsRowsWithoutCity(t *testing.T) {
	expected := `City	IATA Code	Price
Paris	PAR	54
`

	var f strings.Builder
	destinations := []Destination{
		{ID: 2, City: "Paris", IATACode: "PAR", Price: "54"},
		{ID: 3, City: "  ", IATACode: "XXX"},
	}

	if err := MakeTSV(&f, destinations); err != nil {
		t.Fatalf("Unexpected error returned from MakeTSV (%v)", err)
	}

	if f.String() != expected {
		t.Errorf("Incorrect TSV\n   expected: %s\n   got:      %s\n", expected, f.String())
	}
}

func TestMakeTSVWithNoDestinations(t *testing.T) {
	expected := "City\tIATA Code\tPrice\n"

	var f strings.Builder
	if err := MakeTSV(&f, nil); err != nil {
		t.Fatalf("Unexpected error returned from MakeTSV (%v)", err)
	}

	if f.String() != expected {
		t.Errorf("Incorrect TSV\n   expected: %q\n   got:      %q\n", expected, f.String())
	}
}
