package config

const (
	_etc = `C:\ProgramData\flight-deals`
	_var = `C:\ProgramData\flight-deals\var`

	DEFAULT_CREDENTIALS = _etc + `\.google\credentials.json`
	DEFAULT_TOKENS      = _var + `\.google`
)
