package service

import (
	"errors"

	"go-pos-backend/internal/repository"
	"go-pos-backend/pkg/logger"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrNotFound           = errors.New("no matching row")
	ErrDuplicateID        = errors.New("id already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidImage       = errors.New("unsupported image type")
	ErrUnavailable        = errors.New("storage temporarily unavailable")
	ErrStorage            = errors.New("storage failure")
)

// classify maps a store error onto the taxonomy. Anything unclassified is
// logged here with its driver text and reduced to ErrStorage so raw details
// never reach a response body.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case repository.IsNotFound(err):
		return ErrNotFound
	case repository.IsDuplicate(err):
		return ErrDuplicateID
	case repository.IsTimeout(err):
		logger.Logger.Warn().Err(err).Msg("store call timed out")
		return ErrUnavailable
	default:
		logger.Logger.Error().Err(err).Msg("store failure")
		return ErrStorage
	}
}
