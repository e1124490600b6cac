// Package handler contains the echo handlers of the task manager API.
package handler

import (
	deliverycontext "taskmanager/internal/delivery/context"
	"taskmanager/internal/domain/entity"
	domainerrors "taskmanager/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// normalizer is implemented by requests that clean their fields before validation.
type normalizer interface {
	normalize()
}

// bindAndValidate decodes the request body into req, normalizes it and runs its validate tags.
// Both failures are reported as ErrValidationFailed.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("request body is not valid JSON for this endpoint")
	}

	if n, ok := req.(normalizer); ok {
		n.normalize()
	}

	if err := c.Validate(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}

// currentUser returns the user resolved by the auth middleware.
func currentUser(c echo.Context) (*entity.User, bool) {
	return deliverycontext.GetCurrentUser(c)
}
