package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"labadmin/internal/auth"
	"labadmin/internal/config"
	"labadmin/internal/handler"
	"labadmin/internal/logging"
)

// Handlers groups the HTTP handlers mounted by Register.
type Handlers struct {
	Auth       *handler.AuthHandler
	User       *handler.UserHandler
	Product    *handler.ProductHandler
	Laboratory *handler.LaboratoryHandler
	Page       *handler.PageHandler
}

// SessionLoader provides the middleware that puts the cookie session in the
// request context.
type SessionLoader interface {
	LoadSession() echo.MiddlewareFunc
}

type policy int

const (
	public policy = iota
	// session routes redirect to / when the request has no session user.
	session
)

type route struct {
	method  string
	path    string
	policy  policy
	handler echo.HandlerFunc
}

// routes is the access table of the application. POST and DELETE on
// /api/laboratorios are intentionally public.
func routes(h Handlers) []route {
	return []route{
		{http.MethodGet, "/", public, h.Page.Index},
		{http.MethodPost, "/login", public, h.Auth.Login},
		{http.MethodGet, "/logout", public, h.Auth.Logout},
		{http.MethodGet, "/api/usuario-logado", public, h.Auth.CurrentUser},

		{http.MethodGet, "/Relatorio", session, h.Page.Page("Relatorio")},
		{http.MethodGet, "/Usuarios", session, h.Page.Page("Usuarios")},
		{http.MethodGet, "/Produtos", session, h.Page.Page("Produtos")},
		{http.MethodGet, "/Laboratorio", session, h.Page.Page("Laboratorio")},

		{http.MethodGet, "/api/usuarios", session, h.User.ListUsers},
		{http.MethodPost, "/api/usuarios", session, h.User.CreateUser},
		{http.MethodDelete, "/api/usuarios/:email", session, h.User.DeleteUser},

		{http.MethodGet, "/api/produto", session, h.Product.ListProducts},
		{http.MethodPost, "/api/produto", session, h.Product.CreateProduct},
		{http.MethodDelete, "/api/produto/:id_produto", session, h.Product.DeleteProduct},

		{http.MethodGet, "/api/laboratorios", session, h.Laboratory.ListLaboratories},
		{http.MethodPost, "/api/laboratorios", public, h.Laboratory.CreateLaboratory},
		{http.MethodDelete, "/api/laboratorios/:id_laboratorio", public, h.Laboratory.DeleteLaboratory},
	}
}

// Register wires routes and middleware.
func Register(e *echo.Echo, cfg *config.Config, sessions SessionLoader, h Handlers, log logging.Logger) {
	e.Use(middleware.RequestID())
	e.Use(logging.RequestIDMiddleware)
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(sessions.LoadSession())

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = handler.HTTPErrorHandler(log)

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Files under the public directory are served as-is, pages included.
	e.Static("/", cfg.PublicDir)

	gate := auth.RequireSession("/")
	for _, r := range routes(h) {
		var mw []echo.MiddlewareFunc
		if r.policy == session {
			mw = append(mw, gate)
		}
		e.Add(r.method, r.path, r.handler, mw...)
	}
}
