package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/serviteca-pro/internal/application/dto"
	"github.com/tu-usuario/serviteca-pro/internal/application/inventory"
	"github.com/tu-usuario/serviteca-pro/internal/domain"
)

// InventoryHandler maneja las peticiones HTTP de ajustes y consultas de stock.
type InventoryHandler struct {
	uc *inventory.InventoryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.InventoryUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// Adjust godoc
// @Summary      Ajustar inventario de una llanta
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdjustInventoryRequest  true  "tire_id, delta, threshold (obligatorio al crear)"
// @Success      200   {object}  dto.InventoryRecordResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/adjustments [post]
func (h *InventoryHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	record, err := h.uc.Adjust(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrTireNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "llanta no encontrada"})
		}
		if errors.Is(err, domain.ErrInvalidAdjustment) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ADJUSTMENT", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(record)
}

// Query godoc
// @Summary      Consultar inventario
// @Tags         inventory
// @Produce      json
// @Success      200  {array}  dto.InventoryRow
// @Router       /api/inventory [get]
func (h *InventoryHandler) Query(c *fiber.Ctx) error {
	rows, err := h.uc.QueryAll(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(rows)
}

// LowStock godoc
// @Summary      Reporte de bajo stock
// @Description  Filas cuya cantidad está en o por debajo del umbral mínimo.
// @Tags         inventory
// @Produce      json
// @Success      200  {array}  dto.InventoryRow
// @Router       /api/inventory/low-stock [get]
func (h *InventoryHandler) LowStock(c *fiber.Ctx) error {
	rows, err := h.uc.LowStockReport(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(rows)
}
