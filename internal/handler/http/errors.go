package http

import "errors"

var (
	ErrEmptyAuthorizationHeader = errors.New("empty Authorization header")
)
