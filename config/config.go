package config

import (
	"os"
	"strings"
	"time"
)

const (
	StoreSheety = "sheety"
	StoreGoogle = "google"
)

// Config is the runtime configuration, loaded once from the environment and passed by
// value to the clients.
type Config struct {
	Store    string
	LogLevel string
	Delay    time.Duration

	Sheety struct {
		URL   string
		Token string
	}

	Google struct {
		Credentials string
		Tokens      string
		URL         string
		Range       string
	}

	Amadeus struct {
		URL          string
		ClientID     string
		ClientSecret string
		Origin       string
		Currency     string
	}
}

func Load() Config {
	c := Config{
		Store:    strings.ToLower(getEnv("FLIGHT_DEALS_STORE", StoreSheety)),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Delay:    getEnvDuration("UPDATE_DELAY", 1500*time.Millisecond),
	}

	c.Sheety.URL = getEnv("SHEETY_URL", "")
	c.Sheety.Token = getEnv("SHEETY_TOKEN", "")

	c.Google.Credentials = getEnv("GOOGLE_CREDENTIALS", DEFAULT_CREDENTIALS)
	c.Google.Tokens = getEnv("GOOGLE_TOKENS", DEFAULT_TOKENS)
	c.Google.URL = getEnv("GOOGLE_SHEET_URL", "")
	c.Google.Range = getEnv("GOOGLE_SHEET_RANGE", "Prices!A1:C")

	c.Amadeus.URL = getEnv("AMADEUS_URL", "https://test.api.amadeus.com")
	c.Amadeus.ClientID = getEnv("API_KEY", "")
	c.Amadeus.ClientSecret = getEnv("API_SECRET", "")
	c.Amadeus.Origin = strings.ToUpper(getEnv("ORIGIN_CITY_IATA", "LON"))
	c.Amadeus.Currency = strings.ToUpper(getEnv("CURRENCY", "GBP"))

	return c
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}

	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}

	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		return def
	}

	return d
}
