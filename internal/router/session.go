package router

import (
	"net/http"
	"net/url"
	"strings"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"dinoledger/internal/auth"
	"dinoledger/internal/errors"
	"dinoledger/internal/handler"
	"dinoledger/internal/service"
)

const tokenLookup = "cookie:" + handler.SessionCookieName + ",header:" + echo.HeaderAuthorization + ":Bearer "

// RequireSession returns the middleware chain for authenticated routes:
// token verification followed by user resolution.
func RequireSession(jwtService *auth.JWTService, authService service.AuthService) []echo.MiddlewareFunc {
	verify := echojwt.WithConfig(echojwt.Config{
		TokenLookup:    tokenLookup,
		ParseTokenFunc: parseSession(jwtService),
		ErrorHandler: func(c echo.Context, err error) error {
			return challenge(c)
		},
	})

	resolve := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := loadUser(c, authService); err != nil {
				if errors.MapErrorToHTTP(err).StatusCode == http.StatusUnauthorized {
					return challenge(c)
				}
				return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
					Error: "failed to load session",
					Code:  "SESSION_FAILED",
				})
			}
			return next(c)
		}
	}

	return []echo.MiddlewareFunc{verify, resolve}
}

// OptionalSession resolves the user when a valid session is present and
// otherwise lets the request through anonymously.
func OptionalSession(jwtService *auth.JWTService, authService service.AuthService) echo.MiddlewareFunc {
	verify := echojwt.WithConfig(echojwt.Config{
		TokenLookup:            tokenLookup,
		ParseTokenFunc:         parseSession(jwtService),
		ContinueOnIgnoredError: true,
		ErrorHandler: func(c echo.Context, err error) error {
			return nil
		},
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return verify(func(c echo.Context) error {
			if c.Get("user") != nil {
				_ = loadUser(c, authService)
			}
			return next(c)
		})
	}
}

// parseSession stores the verified *auth.Claims under the middleware's context key.
func parseSession(jwtService *auth.JWTService) func(echo.Context, string) (interface{}, error) {
	return func(c echo.Context, token string) (interface{}, error) {
		return jwtService.ValidateToken(token)
	}
}

func loadUser(c echo.Context, authService service.AuthService) error {
	claims, ok := c.Get("user").(*auth.Claims)
	if !ok {
		return errors.ErrUnauthorized
	}

	user, err := authService.Authenticate(c.Request().Context(), claims)
	if err != nil {
		return err
	}
	c.Set(handler.ClaimsKey, claims)
	c.Set(handler.CurrentUserKey, user)
	return nil
}

// challenge sends browsers to the login page with the original target kept
// in next; API callers get a plain 401.
func challenge(c echo.Context) error {
	req := c.Request()
	if req.Method == http.MethodGet && !strings.HasPrefix(req.URL.Path, "/api/") {
		return c.Redirect(http.StatusFound, "/login?next="+url.QueryEscape(req.URL.RequestURI()))
	}
	return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
		Error: errors.ErrUnauthorized.Error(),
		Code:  "UNAUTHORIZED",
	})
}
