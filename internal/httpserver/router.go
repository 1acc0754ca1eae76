package httpserver

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	loggingmw "github.com/autoshowroom/backend/internal/middleware/logging"
	"github.com/autoshowroom/backend/internal/validate"
)

type Deps struct {
	UserHandler    *UserHTTP
	CatalogHandler *CatalogHTTP
	ContactHandler *ContactHTTP

	Ready         func(ctx context.Context) error
	AllowedOrigin string
	Logger        *slog.Logger
}

func New(d *Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validate.New()
	e.HTTPErrorHandler = ErrorHandler

	logger := d.Logger
	if logger == nil {
		logger = slog.Default()
	}

	e.Pre(echomw.RemoveTrailingSlash())
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{d.AllowedOrigin},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	Register(e, d)
	return e
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error {
		if d.Ready != nil {
			if err := d.Ready(c.Request().Context()); err != nil {
				return echo.NewHTTPError(http.StatusServiceUnavailable, "store unavailable")
			}
		}
		return c.NoContent(http.StatusOK)
	})

	api := e.Group("/api")

	api.POST("/register", d.UserHandler.Register)
	api.POST("/login", d.UserHandler.Login)
	api.GET("/users", d.UserHandler.ListUsers)
	api.DELETE("/users/:id", d.UserHandler.DeleteUser)

	api.GET("/products", d.CatalogHandler.GetProducts)
	api.GET("/products/search", d.CatalogHandler.SearchProducts)
	api.GET("/products/:id", d.CatalogHandler.GetProduct)

	manage := api.Group("/manage_product")
	manage.POST("", d.CatalogHandler.CreateProduct)
	manage.PUT("/:id", d.CatalogHandler.UpdateProduct)
	manage.DELETE("/:id", d.CatalogHandler.DeleteProduct)

	api.POST("/contacts", d.ContactHandler.SubmitContact)
}
