package handler

import (
	"net/http"

	"ecovis/internal/delivery/api/response"
	"ecovis/internal/usecase"

	"github.com/labstack/echo/v4"
)

// EmissionsHandler serves emissions calculations.
type EmissionsHandler struct {
	emissionsUC usecase.EmissionsUsecase
}

// NewEmissionsHandler is the constructor for EmissionsHandler
func NewEmissionsHandler(emissionsUC usecase.EmissionsUsecase) *EmissionsHandler {
	return &EmissionsHandler{emissionsUC: emissionsUC}
}

// CreateCalculation handles POST /api/emissions-calculations.
func (h *EmissionsHandler) CreateCalculation(c echo.Context) error {
	var input usecase.CreateEmissionsCalculationInput
	if err := bindAndValidate(c, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	record, err := h.emissionsUC.CreateCalculation(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, record)
}

// Calculate handles POST /api/emissions/calculate.
// It answers 201 when the estimate was stored for a user and 200 otherwise.
func (h *EmissionsHandler) Calculate(c echo.Context) error {
	var input usecase.CalculateEmissionsInput
	if err := bindAndValidate(c, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.emissionsUC.Calculate(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	status := http.StatusOK
	if output.Record != nil {
		status = http.StatusCreated
	}

	return response.Success(c, status, output)
}

// ListByUser handles GET /api/users/:id/emissions-calculations.
func (h *EmissionsHandler) ListByUser(c echo.Context) error {
	userID, err := pathID(c, "id", "user")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	records, err := h.emissionsUC.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, records)
}
