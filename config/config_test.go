package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"FLIGHT_DEALS_STORE", "LOG_LEVEL", "UPDATE_DELAY", "SHEETY_URL", "SHEETY_TOKEN", "API_KEY", "API_SECRET", "AMADEUS_URL", "ORIGIN_CITY_IATA", "CURRENCY", "GOOGLE_SHEET_RANGE"} {
		t.Setenv(k, "")
	}

	c := Load()

	if c.Store != StoreSheety {
		t.Errorf("Incorrect store - expected:%v, got:%v", StoreSheety, c.Store)
	}

	if c.Delay != 1500*time.Millisecond {
		t.Errorf("Incorrect delay - expected:%v, got:%v", 1500*time.Millisecond, c.Delay)
	}

	if c.Amadeus.Origin != "LON" || c.Amadeus.Currency != "GBP" {
		t.Errorf("Incorrect search defaults - origin:%v, currency:%v", c.Amadeus.Origin, c.Amadeus.Currency)
	}

	if c.Amadeus.ClientID != "" || c.Amadeus.ClientSecret != "" {
		t.Errorf("Expected blank credentials, got %v/%v", c.Amadeus.ClientID, c.Amadeus.ClientSecret)
	}

	if c.Sheety.URL != "" {
		t.Errorf("Expected blank Sheety URL, got %v", c.Sheety.URL)
	}

	if c.Google.Range != "Prices!A1:C" {
		t.Errorf("Incorrect Google Sheets range - expected:%v, got:%v", "Prices!A1:C", c.Google.Range)
	}
}

func TestLoad(t *testing.T) {
	t.Setenv("FLIGHT_DEALS_STORE", "Google")
	t.Setenv("UPDATE_DELAY", "250ms")
	t.Setenv("API_KEY", "qwerty")
	t.Setenv("API_SECRET", "uiop")
	t.Setenv("ORIGIN_CITY_IATA", "jnb")
	t.Setenv("CURRENCY", "zar")
	t.Setenv("SHEETY_URL", "https://api.sheety.co/abc/flightDeals/prices")

	c := Load()

	if c.Store != StoreGoogle {
		t.Errorf("Incorrect store - expected:%v, got:%v", StoreGoogle, c.Store)
	}

	if c.Delay != 250*time.Millisecond {
		t.Errorf("Incorrect delay - expected:%v, got:%v", 250*time.Millisecond, c.Delay)
	}

	if c.Amadeus.ClientID != "qwerty" || c.Amadeus.ClientSecret != "uiop" {
		t.Errorf("Incorrect credentials %v/%v", c.Amadeus.ClientID, c.Amadeus.ClientSecret)
	}

	if c.Amadeus.Origin != "JNB" || c.Amadeus.Currency != "ZAR" {
		t.Errorf("Incorrect search settings - origin:%v, currency:%v", c.Amadeus.Origin, c.Amadeus.Currency)
	}

	if c.Sheety.URL != "https://api.sheety.co/abc/flightDeals/prices" {
		t.Errorf("Incorrect Sheety URL %v", c.Sheety.URL)
	}
}

func TestLoadWithInvalidDelay(t *testing.T) {
	for _, v := range []string{"1.5", "soon", "-1s"} {
		t.Setenv("UPDATE_DELAY", v)

		if c := Load(); c.Delay != 1500*time.Millisecond {
			t.Errorf("Incorrect delay for UPDATE_DELAY=%v - expected:%v, got:%v", v, 1500*time.Millisecond, c.Delay)
		}
	}
}
