package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"dinoledger/internal/auth"
	"dinoledger/internal/handler"
	"dinoledger/internal/service"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	jwtService *auth.JWTService,
	authService service.AuthService,
	authHandler *handler.AuthHandler,
	itemHandler *handler.ItemHandler,
	calculatorHandler *handler.CalculatorHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public routes
	e.GET("/", authHandler.Index, OptionalSession(jwtService, authService))
	e.POST("/register", authHandler.Register)
	e.GET("/login", authHandler.LoginForm)
	e.POST("/login", authHandler.Login)

	// Session routes. Middleware is attached per route; unmatched paths stay 404.
	session := RequireSession(jwtService, authService)

	e.GET("/logout", authHandler.Logout, session...)
	e.POST("/logout", authHandler.Logout, session...)

	e.GET("/dashboard", itemHandler.Dashboard, session...)
	e.POST("/items", itemHandler.CreateItem, session...)
	e.GET("/items/:id", itemHandler.GetItem, session...)
	e.PUT("/items/:id", itemHandler.UpdateItem, session...)
	e.DELETE("/items/:id", itemHandler.DeleteItem, session...)

	e.POST("/api/calculate_profit", calculatorHandler.CalculateProfit, session...)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
