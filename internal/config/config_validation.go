package config

import (
	"errors"
	"time"
)

const defaultRequestTimeout = 30 * time.Second

// validate checks required server fields and fills in safe defaults for
// the optional ones.
func (c *StructuredConfig) validate() error {
	var errs []error

	if c.Storage.DB.DSN == "" {
		errs = append(errs, ErrNoDatabaseDSN)
	}
	if c.Auth.TokenSignKey == "" {
		errs = append(errs, ErrNoTokenSignKey)
	}
	if c.Server.HTTPAddress == "" {
		errs = append(errs, ErrNoServerAddress)
	}
	if c.Server.RequestTimeout == 0 {
		c.Server.RequestTimeout = defaultRequestTimeout
	}

	return errors.Join(errs...)
}

func (c *ClientConfig) validate() error {
	if c.Adapter.BaseURL == "" {
		return ErrNoAdapterBaseURL
	}
	return nil
}
