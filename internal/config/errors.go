package config

import "errors"

var (
	ErrParsingEnvVariables = errors.New("error parsing environment variables")
	ErrReadingJSONFile     = errors.New("error reading json config file")
	ErrParsingJSONFile     = errors.New("error parsing json config file")
	ErrParsingDuration     = errors.New("error parsing duration value")

	ErrNoDatabaseDSN    = errors.New("database DSN is not set")
	ErrNoTokenSignKey   = errors.New("token sign key is not set")
	ErrNoServerAddress  = errors.New("server address is not set")
	ErrNoAdapterBaseURL = errors.New("adapter base URL is not set")
)
