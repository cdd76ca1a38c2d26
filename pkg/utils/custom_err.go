package utils

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrLoginLocked        = errors.New("too many failed login attempts")
	ErrRecordNotFound     = errors.New("record not found")
	ErrDatabaseError      = errors.New("database error")
)
