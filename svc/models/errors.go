package models

import "errors"

var (
	// ErrInvalidProbability is returned when a prior, conditional probability
	// or threshold falls outside the closed interval [0, 1]
	ErrInvalidProbability = errors.New("probability must be between 0 and 1")

	// ErrParentArityMismatch is returned when a conditional probability entry
	// is keyed by a state vector whose length does not match the node's
	// current parent count
	ErrParentArityMismatch = errors.New("state vector length does not match parent count")
)
