package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")

	ErrChallengeNotFound = errors.New("challenge doesn't exist")
	ErrEntryNotFound     = errors.New("challenge entry doesn't exist")
	ErrAlreadyJoined     = errors.New("user already joined this challenge")
	ErrAlreadyCompleted  = errors.New("challenge already completed")
	ErrChallengeOverlap  = errors.New("another active weekly challenge overlaps this period")
	ErrInvalidPeriod     = errors.New("challenge end date must be after start date")
	ErrUnknownActivity   = errors.New("unknown activity type")
	ErrUnknownChallenge  = errors.New("unknown challenge type")

	ErrValidation = errors.New("validation error")

	ErrCacheMiss = errors.New("cache miss")
)
