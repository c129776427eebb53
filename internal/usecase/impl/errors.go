package impl

import (
	domainerrors "ecovis/internal/domain/errors"
	"ecovis/internal/domain/repository"

	"github.com/pkg/errors"
)

// translateStoreError maps repository sentinels to application errors.
// Anything unrecognised becomes a PersistenceError so no store detail reaches clients.
func translateStoreError(err error, action string) error {
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		return domainerrors.ErrUserNotFound.WrapMessage(action)
	case errors.Is(err, repository.ErrForumPostNotFound):
		return domainerrors.ErrPostNotFound.WrapMessage(action)
	case errors.Is(err, repository.ErrProductNotFound):
		return domainerrors.ErrProductNotFound.WrapMessage(action)
	case errors.Is(err, repository.ErrDuplicateUser):
		return domainerrors.ErrConflict.WithMessage("Username or email already registered").WrapMessage(action)
	default:
		return domainerrors.NewPersistenceError(err, action)
	}
}
