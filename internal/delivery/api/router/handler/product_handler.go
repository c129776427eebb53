package handler

import (
	"net/http"

	"ecovis/internal/delivery/api/response"
	"ecovis/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	Paginator *Paginator
}

// ProductHandler serves the marketplace catalog.
type ProductHandler struct {
	productUC usecase.ProductUsecase
	paginator *Paginator
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
		paginator: params.Paginator,
	}
}

// ListProducts handles GET /api/marketplace/products?limit&offset.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	products, err := h.productUC.ListProducts(c.Request().Context(), h.paginator.Page(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products)
}

// GetProduct handles GET /api/marketplace/products/:id.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	productID, err := pathID(c, "id", "product")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.productUC.GetProduct(c.Request().Context(), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}
