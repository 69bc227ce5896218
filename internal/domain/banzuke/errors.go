package banzuke

import "errors"

// Sentinel kinds for parsing errors. These allow errors.Is from callers.
var (
	ErrInvalidRank   = errors.New("invalid rank")
	ErrInvalidDay    = errors.New("invalid tournament day")
	ErrInvalidResult = errors.New("invalid bout result")
	ErrInvalidSide   = errors.New("invalid side")
)
