package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "labadmin/internal/errors"
	"labadmin/internal/logging"
	"labadmin/internal/service"
)

// LaboratoryHandler handles laboratory endpoints.
type LaboratoryHandler struct {
	svc service.LaboratoryService
	log logging.Logger
}

// NewLaboratoryHandler creates a new laboratory handler.
func NewLaboratoryHandler(svc service.LaboratoryService, log logging.Logger) *LaboratoryHandler {
	return &LaboratoryHandler{svc: svc, log: log}
}

// CreateLaboratoryRequest is the body of POST /api/laboratorios.
type CreateLaboratoryRequest struct {
	Name             Field `json:"nome_laboratorio" form:"nome_laboratorio" validate:"required"`
	ResponsibleEmail Field `json:"usuario_email" form:"usuario_email" validate:"required"`
}

// LaboratoryCreatedResponse carries the generated laboratory ID.
type LaboratoryCreatedResponse struct {
	Message string `json:"message"`
	ID      uint64 `json:"id_laboratorio"`
}

var laboratoryMessages = apperrors.Messages{
	Validation: msgLaboratoryRequired,
	Internal:   msgServerError,
}

// ListLaboratories godoc
// @Summary List laboratories with their responsible user
// @Description responsavel and email are null when no user has the laboratory's email.
// @Tags laboratories
// @Produce json
// @Success 200 {array} model.LaboratoryListing
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/laboratorios [get]
func (h *LaboratoryHandler) ListLaboratories(c echo.Context) error {
	labs, err := h.svc.ListLaboratories(c.Request().Context())
	if err != nil {
		return fail(c, h.log, "list laboratories", err, laboratoryMessages)
	}
	return c.JSON(http.StatusOK, labs)
}

// CreateLaboratory godoc
// @Summary Create laboratory
// @Tags laboratories
// @Accept json
// @Produce json
// @Param laboratory body CreateLaboratoryRequest true "Laboratory payload"
// @Success 201 {object} LaboratoryCreatedResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/laboratorios [post]
func (h *LaboratoryHandler) CreateLaboratory(c echo.Context) error {
	var req CreateLaboratoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, msgLaboratoryRequired)
	}

	id, err := h.svc.CreateLaboratory(c.Request().Context(), req.Name.String(), req.ResponsibleEmail.String())
	if err != nil {
		h.log.Error(c.Request().Context(), "create laboratory", "err", err)
		return echo.NewHTTPError(http.StatusInternalServerError, msgLaboratoryCreateFailed)
	}
	return c.JSON(http.StatusCreated, LaboratoryCreatedResponse{Message: msgLaboratoryCreated, ID: id})
}

// DeleteLaboratory godoc
// @Summary Delete laboratory
// @Description Succeeds even when no laboratory has the ID.
// @Tags laboratories
// @Produce json
// @Param id_laboratorio path int true "Laboratory ID"
// @Success 200 {object} errors.MessageResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/laboratorios/{id_laboratorio} [delete]
func (h *LaboratoryHandler) DeleteLaboratory(c echo.Context) error {
	raw := c.Param("id_laboratorio")
	h.log.Debug(c.Request().Context(), "delete laboratory", "id", raw)

	// A non-numeric ID matches no row; the delete trivially succeeds.
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return c.JSON(http.StatusOK, apperrors.MessageResponse{Message: msgLaboratoryDeleted})
	}

	if err := h.svc.DeleteLaboratory(c.Request().Context(), id); err != nil {
		h.log.Error(c.Request().Context(), "delete laboratory", "err", err)
		return echo.NewHTTPError(http.StatusInternalServerError, msgLaboratoryDeleteFailed)
	}
	return c.JSON(http.StatusOK, apperrors.MessageResponse{Message: msgLaboratoryDeleted})
}
