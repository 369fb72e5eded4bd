package handler

import (
	"net/http"
	"strconv"

	"bazaar/internal/delivery/http/response"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler serves the public, unauthenticated catalog views.
type CatalogHandler struct {
	uc usecase.CatalogUsecase
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// ListShops returns every known shop.
func (h *CatalogHandler) ListShops(c echo.Context) error {
	shops, err := h.uc.ListShops(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toShopViews(shops), "")
}

// ListCategories returns every known category.
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.uc.ListCategories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCategoryViews(categories), "")
}

// ListProducts returns listings of accepting shops, optionally narrowed by
// the shop and product query parameters.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	shopID, err := parseOptionalID(c.QueryParam("shop"))
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", "The shop parameter must be a positive integer")
	}

	productID, err := parseOptionalID(c.QueryParam("product"))
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", "The product parameter must be a positive integer")
	}

	products, err := h.uc.ListProducts(c.Request().Context(), usecase.ListProductsInput{
		ShopID:    shopID,
		ProductID: productID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "")
}

// parseOptionalID parses a numeric query parameter, treating absence as zero.
func parseOptionalID(raw string) (uint, error) {
	if raw == "" {
		return 0, nil
	}

	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, errors.WithStack(err)
	}

	return uint(id), nil
}
