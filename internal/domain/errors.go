package domain

import "errors"

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("resource not found")
	ErrWriteFailure    = errors.New("write failed")
	ErrDuplicateKey    = errors.New("duplicate key")
)
