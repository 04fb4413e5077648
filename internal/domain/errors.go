package domain

import "errors"

var (
	ErrInvalidRelayURL   = errors.New("invalid relay url")
	ErrRelayUnreachable  = errors.New("relay unreachable")
	ErrRelayTimeout      = errors.New("relay timeout")
	ErrInconsistentState = errors.New("inconsistent statistics state")
)
