package adapter

import "errors"

var (
	ErrUnauthorized  = errors.New("client unauthorized")
	ErrVaultNotFound = errors.New("vault not found on server")
)
