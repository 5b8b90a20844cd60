package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"dinoledger/internal/auth"
	"dinoledger/internal/errors"
	"dinoledger/internal/model"
)

// Context keys set by the session middleware.
const (
	CurrentUserKey = "currentUser"
	ClaimsKey      = "sessionClaims"
)

// SessionCookieName is the cookie holding the session token.
const SessionCookieName = "session"

// CurrentUser returns the authenticated user, or nil.
func CurrentUser(c echo.Context) *model.PublicUser {
	user, _ := c.Get(CurrentUserKey).(*model.PublicUser)
	return user
}

func sessionClaims(c echo.Context) *auth.Claims {
	claims, _ := c.Get(ClaimsKey).(*auth.Claims)
	return claims
}

// requireUser guards handlers that the router mounted behind the session middleware.
func requireUser(c echo.Context) (*model.PublicUser, error) {
	user := CurrentUser(c)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: errors.ErrUnauthorized.Error(),
			Code:  "UNAUTHORIZED",
		})
	}
	return user, nil
}

// mapError converts a domain error into an echo HTTP error.
func mapError(err error) error {
	httpErr := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

func validationError(err error) error {
	return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
		Error: err.Error(),
		Code:  "VALIDATION_ERROR",
	})
}

func badRequest(message string) error {
	return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
		Error: message,
		Code:  "INVALID_REQUEST",
	})
}
