package ir

import "errors"

var (
	ErrKind      = errors.New("bad node kind")
	ErrMalformed = errors.New("malformed node")
)
