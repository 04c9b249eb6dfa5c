package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "labadmin/internal/errors"
	"labadmin/internal/logging"
	"labadmin/internal/model"
	"labadmin/internal/service"
)

// ProductHandler handles product endpoints.
type ProductHandler struct {
	svc service.ProductService
	log logging.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(svc service.ProductService, log logging.Logger) *ProductHandler {
	return &ProductHandler{svc: svc, log: log}
}

// CreateProductRequest is the body of POST /api/produto.
type CreateProductRequest struct {
	Name        Field `json:"nome_produto" form:"nome_produto" validate:"required"`
	Unit        Field `json:"unidade_produto" form:"unidade_produto" validate:"required"`
	Description Field `json:"descricao_produto" form:"descricao_produto" validate:"required"`
	TaxCode     Field `json:"NCM" form:"NCM" validate:"required"`
}

// ProductCreatedResponse carries the generated product ID.
type ProductCreatedResponse struct {
	Message string `json:"message"`
	ID      uint64 `json:"id_produto"`
}

// ListProducts godoc
// @Summary List products
// @Tags products
// @Produce json
// @Success 200 {array} model.Product
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/produto [get]
func (h *ProductHandler) ListProducts(c echo.Context) error {
	products, err := h.svc.ListProducts(c.Request().Context())
	if err != nil {
		return fail(c, h.log, "list products", err, crudMessages)
	}
	return c.JSON(http.StatusOK, products)
}

// CreateProduct godoc
// @Summary Create product
// @Tags products
// @Accept json
// @Produce json
// @Param product body CreateProductRequest true "Product payload"
// @Success 201 {object} ProductCreatedResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/produto [post]
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req CreateProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, msgAllFieldsMissing)
	}

	id, err := h.svc.CreateProduct(c.Request().Context(), &model.Product{
		Name:        req.Name.String(),
		Unit:        req.Unit.String(),
		Description: req.Description.String(),
		TaxCode:     req.TaxCode.String(),
	})
	if err != nil {
		return fail(c, h.log, "create product", err, crudMessages)
	}
	return c.JSON(http.StatusCreated, ProductCreatedResponse{Message: msgProductCreated, ID: id})
}

// DeleteProduct godoc
// @Summary Delete product
// @Tags products
// @Produce json
// @Param id_produto path int true "Product ID"
// @Success 200 {object} errors.MessageResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/produto/{id_produto} [delete]
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	// An ID that cannot name a row is reported like a missing row.
	id, err := strconv.ParseUint(c.Param("id_produto"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, msgProductNotFound)
	}

	if err := h.svc.DeleteProduct(c.Request().Context(), id); err != nil {
		return fail(c, h.log, "delete product", err, crudMessages)
	}
	return c.JSON(http.StatusOK, apperrors.MessageResponse{Message: msgProductDeleted})
}
