package db

import "errors"

var (
	// ErrNotFound is returned when a jurisdiction, rule or version is not in the store
	ErrNotFound = errors.New("not found")
)
