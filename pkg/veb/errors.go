package veb

import "errors"

var (
	ErrInvalidWidth = errors.New("invalid width")
	ErrOutOfRange   = errors.New("key out of range")
)
