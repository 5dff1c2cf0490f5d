package models

import "errors"

var (
	// ErrNotFound signals that the requested record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrForbidden signals that the record exists but belongs to someone else.
	ErrForbidden = errors.New("record belongs to another user")
)
