package services

import "errors"

// Validation errors: bad input, rejected before any write.
var (
	ErrNoLosers          = errors.New("loser list must not be empty")
	ErrWinnerAmongLosers = errors.New("winner cannot be listed as a loser")
	ErrDuplicateLoser    = errors.New("duplicate loser id")
	ErrDuplicateName     = errors.New("player name already exists")
	ErrInvalidKFactor    = errors.New("k-factor must be positive")
)

// Not-found errors: a referenced record does not exist. Kept distinct from
// validation errors so callers can tell bad input from a bad reference.
var (
	ErrPlayerNotFound = errors.New("player not found")
	ErrMatchNotFound  = errors.New("match not found")
)
