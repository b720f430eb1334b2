package errors

import "errors"

var (
	ErrValidation       = errors.New("invalid parameter")
	ErrProbeUnavailable = errors.New("IP probe unavailable")
	ErrProvider         = errors.New("DNS provider error")
	ErrBusy             = errors.New("task cycle already in progress")
	ErrNotFound         = errors.New("not found")
)
