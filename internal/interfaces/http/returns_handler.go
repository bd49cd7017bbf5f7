package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/serviteca-pro/internal/application/dto"
	"github.com/tu-usuario/serviteca-pro/internal/application/returns"
	"github.com/tu-usuario/serviteca-pro/internal/domain"
)

// ReturnsHandler maneja las peticiones HTTP de devoluciones.
type ReturnsHandler struct {
	uc *returns.ReturnsUseCase
}

// NewReturnsHandler construye el handler.
func NewReturnsHandler(uc *returns.ReturnsUseCase) *ReturnsHandler {
	return &ReturnsHandler{uc: uc}
}

// RecordReturn godoc
// @Summary      Registrar devolución contra una venta
// @Tags         returns
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordReturnRequest  true  "sale_id, items, reason"
// @Success      201   {object}  dto.ReturnResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/returns [post]
func (h *ReturnsHandler) RecordReturn(c *fiber.Ctx) error {
	var in dto.RecordReturnRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if len(in.Items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "la devolución no tiene ítems"})
	}
	ret, err := h.uc.RecordReturn(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrSaleNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venta no encontrada"})
		}
		if errors.Is(err, domain.ErrInvalidReturn) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_RETURN", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrTireNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "llanta no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(ret)
}

// ListReturns godoc
// @Summary      Listar devoluciones
// @Tags         returns
// @Produce      json
// @Success      200  {array}  dto.ReturnResponse
// @Router       /api/returns [get]
func (h *ReturnsHandler) ListReturns(c *fiber.Ctx) error {
	list, err := h.uc.ListReturns(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}
