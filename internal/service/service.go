// Package service holds the resource services. They own the business rules
// and turn repository outcomes into apperr failures.
package service

import (
	"errors"

	"taskboard/internal/apperr"
	"taskboard/internal/repository"
)

// notFound maps the repository "missing" sentinels to a NotFound failure with
// msg; every other error becomes Internal.
func notFound(err error, msg string) error {
	if errors.Is(err, repository.ErrNotFound) || errors.Is(err, repository.ErrParentNotFound) {
		return apperr.NotFound("%s", msg)
	}
	return apperr.Internal(err)
}
