package handler

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	apperrors "labadmin/internal/errors"
	"labadmin/internal/logging"
	"labadmin/internal/service"
)

// UserHandler bundles HTTP handlers.
type UserHandler struct {
	svc service.UserService
	log logging.Logger
}

// NewUserHandler creates a handler layer.
func NewUserHandler(svc service.UserService, log logging.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: log}
}

// CreateUserRequest is the body of POST /api/usuarios.
type CreateUserRequest struct {
	Username Field `json:"nome_usuario" form:"nome_usuario" validate:"required"`
	Email    Field `json:"email" form:"email" validate:"required"`
	Password Field `json:"senha" form:"senha" validate:"required"`
}

// ListUsers godoc
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} model.User
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/usuarios [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.svc.ListUsers(c.Request().Context())
	if err != nil {
		return fail(c, h.log, "list users", err, crudMessages)
	}
	return c.JSON(http.StatusOK, users)
}

// CreateUser godoc
// @Summary Create user
// @Tags users
// @Accept json
// @Produce json
// @Param user body CreateUserRequest true "User payload"
// @Success 201 {object} errors.MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/usuarios [post]
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req CreateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, msgAllFieldsMissing)
	}

	if err := h.svc.CreateUser(c.Request().Context(), req.Username.String(), req.Email.String(), req.Password.String()); err != nil {
		return fail(c, h.log, "create user", err, crudMessages)
	}
	return c.JSON(http.StatusCreated, apperrors.MessageResponse{Message: msgUserCreated})
}

// DeleteUser godoc
// @Summary Delete user by email
// @Description Succeeds even when no user has the email.
// @Tags users
// @Produce json
// @Param email path string true "User email"
// @Success 200 {object} errors.MessageResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/usuarios/{email} [delete]
func (h *UserHandler) DeleteUser(c echo.Context) error {
	// Echo matches on RawPath when the request has one and leaves the
	// parameter escaped; otherwise it is already decoded.
	email := c.Param("email")
	if c.Request().URL.RawPath != "" {
		if unescaped, err := url.PathUnescape(email); err == nil {
			email = unescaped
		}
	}

	if err := h.svc.DeleteUser(c.Request().Context(), email); err != nil {
		return fail(c, h.log, "delete user", err, crudMessages)
	}
	return c.JSON(http.StatusOK, apperrors.MessageResponse{Message: msgUserDeleted})
}
