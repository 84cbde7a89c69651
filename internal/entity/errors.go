package entity

import (
	"errors"
)

var (
	ErrValidation       = errors.New("validation failed")
	ErrSaveFailed       = errors.New("application not saved")
	ErrUnexpectedStatus = errors.New("unexpected status")
	ErrBadResponse      = errors.New("bad response")
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrUnknownField     = errors.New("unknown field")
)
