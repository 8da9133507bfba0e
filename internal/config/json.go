package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Duration wraps time.Duration so JSON config files can spell timeouts
// as strings like "30s" or "1m".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %w", ErrParsingDuration, err)
	}

	switch v := raw.(type) {
	case float64:
		d.Duration = time.Duration(v)
	case string:
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrParsingDuration, err)
		}
		d.Duration = parsed
	default:
		return fmt.Errorf("%w: unsupported value %v", ErrParsingDuration, raw)
	}

	return nil
}

// structuredJSONConfig mirrors StructuredConfig with JSON-friendly field
// types. It exists so a config file can use duration strings.
type structuredJSONConfig struct {
	Auth struct {
		TokenSignKey string `json:"token_sign_key"`
		TokenIssuer  string `json:"token_issuer"`
	} `json:"auth"`
	Storage struct {
		DB struct {
			DSN string `json:"database_uri"`
		} `json:"db"`
	} `json:"storage"`
	Server struct {
		HTTPAddress    string   `json:"address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server"`
}

// parseJSON reads the JSON config file at path and converts it into a
// StructuredConfig suitable for merging.
func parseJSON(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingJSONFile, err)
	}

	jsonCfg := &structuredJSONConfig{}
	if err := json.Unmarshal(data, jsonCfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParsingJSONFile, err)
	}

	return &StructuredConfig{
		Auth: Auth{
			TokenSignKey: jsonCfg.Auth.TokenSignKey,
			TokenIssuer:  jsonCfg.Auth.TokenIssuer,
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: jsonCfg.Server.RequestTimeout.Duration,
		},
	}, nil
}
