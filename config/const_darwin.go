package config

const (
	_etc = "/usr/local/etc/com.github.twystd/flight-deals"
	_var = "/usr/local/var/com.github.twystd/flight-deals"

	DEFAULT_CREDENTIALS = _etc + "/.google/credentials.json"
	DEFAULT_TOKENS      = _var + "/.google"
)
