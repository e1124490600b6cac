package impl

import (
	domainerrors "taskmanager/internal/domain/errors"

	"github.com/pkg/errors"
)

// persistenceError keeps application errors raised by repositories and turns
// anything else into a DatabaseExecuteError.
func persistenceError(err error, details string) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}
