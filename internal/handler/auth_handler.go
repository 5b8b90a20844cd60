package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"dinoledger/internal/model"
	"dinoledger/internal/service"
)

// SessionCookie controls how the session cookie is written.
type SessionCookie struct {
	TTL    time.Duration
	Secure bool
}

// AuthHandler handles registration, login and logout.
type AuthHandler struct {
	authService service.AuthService
	cookie      SessionCookie
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, cookie SessionCookie) *AuthHandler {
	return &AuthHandler{authService: authService, cookie: cookie}
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Username string `json:"username" form:"username" validate:"required,min=3,max=20"`
	Code     string `json:"code" form:"code" validate:"required,min=3,max=20"`
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Code     string `json:"code" form:"code" validate:"required"`
}

// AuthResponse represents a successful authentication.
type AuthResponse struct {
	Message  string           `json:"message"`
	User     model.PublicUser `json:"user"`
	Redirect string           `json:"redirect"`
}

// Index godoc
// @Summary Landing endpoint
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Success 302
// @Router / [get]
func (h *AuthHandler) Index(c echo.Context) error {
	if CurrentUser(c) != nil {
		return c.Redirect(http.StatusFound, "/dashboard")
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "please log in",
		"login":   "/login",
	})
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return validationError(err)
	}

	user, err := h.authService.Register(c.Request().Context(), req.Username, req.Code)
	if err != nil {
		return mapError(err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "account created, you can now log in",
		"user":    user.Public(),
	})
}

// LoginForm godoc
// @Summary Describe the login form
// @Tags auth
// @Produce json
// @Param next query string false "Path to return to after login"
// @Success 200 {object} map[string]string
// @Router /login [get]
func (h *AuthHandler) LoginForm(c echo.Context) error {
	body := map[string]string{
		"message": "post username and code to log in",
		"action":  "/login",
	}
	if next := c.QueryParam("next"); isLocalPath(next) {
		body["next"] = next
	}
	return c.JSON(http.StatusOK, body)
}

// Login godoc
// @Summary Log in with username and code
// @Description On success sets the session cookie. When next is a local path the response is a 303 redirect to it.
// @Tags auth
// @Accept json
// @Produce json
// @Param next query string false "Path to return to after login"
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} AuthResponse
// @Success 303
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return validationError(err)
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Username, req.Code)
	if err != nil {
		return mapError(err)
	}

	c.SetCookie(h.sessionCookie(token, int(h.cookie.TTL.Seconds())))

	next := c.QueryParam("next")
	if next == "" {
		next = c.FormValue("next")
	}
	if isLocalPath(next) {
		return c.Redirect(http.StatusSeeOther, next)
	}

	return c.JSON(http.StatusOK, AuthResponse{
		Message:  "logged in",
		User:     user.Public(),
		Redirect: "/dashboard",
	})
}

// Logout godoc
// @Summary Log out
// @Tags auth
// @Success 303
// @Failure 401 {object} errors.ErrorResponse
// @Router /logout [get]
func (h *AuthHandler) Logout(c echo.Context) error {
	if _, err := requireUser(c); err != nil {
		return err
	}
	if err := h.authService.Logout(c.Request().Context(), sessionClaims(c)); err != nil {
		return mapError(err)
	}

	c.SetCookie(h.sessionCookie("", -1))
	return c.Redirect(http.StatusSeeOther, "/")
}

func (h *AuthHandler) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// isLocalPath accepts only same-site absolute paths so next cannot bounce
// the browser to another host.
func isLocalPath(p string) bool {
	if !strings.HasPrefix(p, "/") {
		return false
	}
	// Browsers drop tabs and newlines, so "/\t/host" would become "//host".
	if strings.IndexFunc(p, func(r rune) bool { return r < 0x20 || r == 0x7f }) >= 0 {
		return false
	}
	return !strings.HasPrefix(p, "//") && !strings.HasPrefix(p, "/\\")
}
