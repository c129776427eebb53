package handler

import (
	"net/http"

	"ecovis/internal/delivery/api/response"
	"ecovis/internal/usecase"

	"github.com/labstack/echo/v4"
)

// WasteHandler serves waste recognition records.
type WasteHandler struct {
	wasteUC usecase.WasteUsecase
}

// NewWasteHandler is the constructor for WasteHandler
func NewWasteHandler(wasteUC usecase.WasteUsecase) *WasteHandler {
	return &WasteHandler{wasteUC: wasteUC}
}

// CreateRecognition handles POST /api/waste-recognition.
func (h *WasteHandler) CreateRecognition(c echo.Context) error {
	var input usecase.CreateWasteRecognitionInput
	if err := bindAndValidate(c, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	record, err := h.wasteUC.CreateRecognition(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, record)
}

// Analyze handles POST /api/waste-recognition/analyze.
// It answers 201 when the result was stored for a user and 200 otherwise.
func (h *WasteHandler) Analyze(c echo.Context) error {
	var input usecase.AnalyzeWasteInput
	if err := bindAndValidate(c, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.wasteUC.Analyze(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	status := http.StatusOK
	if output.Record != nil {
		status = http.StatusCreated
	}

	return response.Success(c, status, output)
}

// ListByUser handles GET /api/users/:id/waste-recognitions.
func (h *WasteHandler) ListByUser(c echo.Context) error {
	userID, err := pathID(c, "id", "user")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	records, err := h.wasteUC.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, records)
}
