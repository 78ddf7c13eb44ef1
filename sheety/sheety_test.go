package sheety

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/twystd/flight-deals/deals"
)

func TestFetchAll(t *testing.T) {
	expected := []deals.Destination{
		{ID: 2, City: "Paris", IATACode: "PAR", Price: "54"},
		{ID: 3, City: "Tokyo", IATACode: "", Price: "485.5"},
		{ID: 4, City: "Sydney", IATACode: "TESTING", Price: ""},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, rq *http.Request) {
		if rq.Method != http.MethodGet || rq.URL.Path != "/flightDeals/prices" {
			t.Errorf("Unexpected request %v %v", rq.Method, rq.URL.Path)
		}

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"prices":[
		  {"city":"Paris","iataCode":"PAR","price":54,"id":2},
		  {"city":"Tokyo","iataCode":"","price":485.5,"id":3},
		  {"city":"Sydney","iataCode":"TESTING","price":null,"id":4}
		]}`)
	}))

	defer srv.Close()

	client := NewClient(context.Background(), Config{URL: srv.URL + "/flightDeals/prices"}, nil)

	destinations, err := client.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error (%v)", err)
	}

	if !reflect.DeepEqual(destinations, expected) {
		t.Errorf("Incorrect destinations\n   expected: %v\n   got:      %v", expected, destinations)
	}
}

func TestFetchAllWithMissingRows(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, rq *http.Request) {
		io.WriteString(w, `{}`)
	}))

	defer srv.Close()

	client := NewClient(context.Background(), Config{URL: srv.URL}, nil)

	destinations, err := client.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error (%v)", err)
	}

	if len(destinations) != 0 {
		t.Errorf("Expected no destinations, got %v", destinations)
	}
}

func TestFetchAllWithHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, rq *http.Request) {
		http.Error(w, "quota exceeded", http.StatusPaymentRequired)
	}))

	defer srv.Close()

	client := NewClient(context.Background(), Config{URL: srv.URL}, nil)

	_, err := client.FetchAll(context.Background())
	if err == nil {
		t.Fatalf("Expected error, got %v", err)
	}

	var terr *TransportError
	if !errors.As(err, &terr) {
		t.Fatalf("Expected TransportError, got %T (%v)", err, err)
	}

	if terr.Status != http.StatusPaymentRequired {
		t.Errorf("Incorrect status - expected:%v, got:%v", http.StatusPaymentRequired, terr.Status)
	}
}

func TestFetchAllWithBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, rq *http.Request) {
		if auth := rq.Header.Get("Authorization"); auth != "Bearer qwerty" {
			http.Error(w, "unauthorised", http.StatusUnauthorized)
			return
		}

		io.WriteString(w, `{"prices":[]}`)
	}))

	defer srv.Close()

	client := NewClient(context.Background(), Config{URL: srv.URL, Token: "qwerty"}, nil)

	if _, err := client.FetchAll(context.Background()); err != nil {
		t.Fatalf("Unexpected error (%v)", err)
	}
}

func TestUpdateField(t *testing.T) {
	expected := map[string]map[string]string{
		"price": {"iataCode": "PAR"},
	}

	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, rq *http.Request) {
		calls++

		if rq.Method != http.MethodPut || rq.URL.Path != "/prices/17" {
			t.Errorf("Unexpected request %v %v", rq.Method, rq.URL.Path)
		}

		var body map[string]map[string]string
		if err := json.NewDecoder(rq.Body).Decode(&body); err != nil {
			t.Errorf("Invalid request body (%v)", err)
		}

		if !reflect.DeepEqual(body, expected) {
			t.Errorf("Incorrect request body\n   expected: %v\n   got:      %v", expected, body)
		}

		io.WriteString(w, `{"price":{"iataCode":"PAR","id":17}}`)
	}))

	defer srv.Close()

	client := NewClient(context.Background(), Config{URL: srv.URL + "/prices/"}, nil)

	if err := client.UpdateField(context.Background(), 17, "iataCode", "PAR"); err != nil {
		t.Fatalf("Unexpected error (%v)", err)
	}

	if calls != 1 {
		t.Errorf("Expected 1 request, got %v", calls)
	}
}

func TestUpdateFieldWithHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, rq *http.Request) {
		http.Error(w, "row not found", http.StatusNotFound)
	}))

	defer srv.Close()

	client := NewClient(context.Background(), Config{URL: srv.URL}, nil)

	err := client.UpdateField(context.Background(), 99, "iataCode", "PAR")

	var terr *TransportError
	if !errors.As(err, &terr) {
		t.Fatalf("Expected TransportError, got %T (%v)", err, err)
	}

	if terr.Status != http.StatusNotFound || terr.Body != "row not found\n" {
		t.Errorf("Incorrect transport error %+v", terr)
	}
}
