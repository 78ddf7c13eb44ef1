package config

const (
	_etc = "/usr/local/etc/flight-deals"
	_var = "/usr/local/var/flight-deals"

	DEFAULT_CREDENTIALS = _etc + "/.google/credentials.json"
	DEFAULT_TOKENS      = _var + "/.google"
)
