package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"labadmin/internal/auth"
	apperrors "labadmin/internal/errors"
	"labadmin/internal/logging"
	"labadmin/internal/model"
	"labadmin/internal/service"
)

// Sessions starts and ends the cookie session of a request.
type Sessions interface {
	Start(c echo.Context, user model.SessionUser) error
	Destroy(c echo.Context) error
}

// AuthHandler handles login, logout and the current-user probe.
type AuthHandler struct {
	authService service.AuthService
	sessions    Sessions
	log         logging.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, sessions Sessions, log logging.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, sessions: sessions, log: log}
}

// LoginRequest represents a login form or JSON body.
type LoginRequest struct {
	Username Field `json:"nome_usuario" form:"nome_usuario" validate:"required"`
	Password Field `json:"senha" form:"senha" validate:"required"`
}

// Login godoc
// @Summary Login user
// @Description Starts a session and redirects to the report page.
// @Tags auth
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 302 "Redirect to /Relatorio"
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, msgLoginRequired)
	}

	user, err := h.authService.Login(c.Request().Context(), req.Username.String(), req.Password.String())
	if err != nil {
		return fail(c, h.log, "login", err, loginMessages)
	}

	if err := h.sessions.Start(c, *user); err != nil {
		h.log.Error(c.Request().Context(), "start session", "err", err)
		return echo.NewHTTPError(http.StatusInternalServerError, msgServerError)
	}

	h.log.Info(c.Request().Context(), "user logged in", "user", user.Name)
	return c.Redirect(http.StatusFound, "/Relatorio")
}

// CurrentUser godoc
// @Summary Current session user
// @Tags auth
// @Produce json
// @Success 200 {object} model.SessionUser
// @Failure 401 {object} errors.ErrorResponse
// @Router /api/usuario-logado [get]
func (h *AuthHandler) CurrentUser(c echo.Context) error {
	user, ok := auth.UserFromContext(c.Request().Context())
	if !ok {
		return fail(c, h.log, "current user", apperrors.ErrUnauthenticated, currentUserMessages)
	}
	return c.JSON(http.StatusOK, user)
}

// Logout godoc
// @Summary Logout user
// @Description Ends the session and redirects to the login page.
// @Tags auth
// @Produce json
// @Success 302 "Redirect to /"
// @Failure 500 {object} errors.ErrorResponse
// @Router /logout [get]
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.sessions.Destroy(c); err != nil {
		h.log.Error(c.Request().Context(), "destroy session", "err", err)
		return echo.NewHTTPError(http.StatusInternalServerError, msgLogoutFailed)
	}
	return c.Redirect(http.StatusFound, "/")
}
