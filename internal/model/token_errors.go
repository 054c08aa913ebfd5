package model

import "errors"

// Typed token verification failures. Callers distinguish "retry login"
// from "retry refresh" by switching on these instead of message text.
var (
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenMalformed = errors.New("token malformed")
	ErrTokenSignature = errors.New("token signature mismatch")
)
