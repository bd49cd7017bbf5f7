package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/serviteca-pro/internal/application/catalog"
	"github.com/tu-usuario/serviteca-pro/internal/application/dto"
	"github.com/tu-usuario/serviteca-pro/internal/domain"
)

// CatalogHandler maneja las peticiones HTTP de llantas, clientes, asesores y
// precios.
type CatalogHandler struct {
	uc *catalog.CatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *catalog.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// RegisterTire godoc
// @Summary      Registrar llanta
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterTireRequest  true  "sku, brand, model, size, price"
// @Success      201   {object}  dto.TireResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/tires [post]
func (h *CatalogHandler) RegisterTire(c *fiber.Ctx) error {
	var in dto.RegisterTireRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.SKU == "" || in.Brand == "" || in.Model == "" || in.Size == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "sku, brand, model y size son obligatorios"})
	}
	tire, err := h.uc.RegisterTire(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidAmount) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_AMOUNT", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(tire)
}

// RegisterCustomer godoc
// @Summary      Registrar cliente
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterCustomerRequest  true  "name, document, phone?, email?"
// @Success      201   {object}  dto.CustomerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/customers [post]
func (h *CatalogHandler) RegisterCustomer(c *fiber.Ctx) error {
	var in dto.RegisterCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" || in.Document == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name y document son obligatorios"})
	}
	customer, err := h.uc.RegisterCustomer(c.Context(), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(customer)
}

// RegisterAdvisor godoc
// @Summary      Registrar asesor
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterAdvisorRequest  true  "name, document, email?"
// @Success      201   {object}  dto.AdvisorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/advisors [post]
func (h *CatalogHandler) RegisterAdvisor(c *fiber.Ctx) error {
	var in dto.RegisterAdvisorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" || in.Document == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name y document son obligatorios"})
	}
	advisor, err := h.uc.RegisterAdvisor(c.Context(), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(advisor)
}

// UpdatePrice godoc
// @Summary      Actualizar precio de una llanta
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        id    path  int                     true  "ID de la llanta"
// @Param        body  body  dto.UpdatePriceRequest  true  "price"
// @Success      200   {object}  dto.TireResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/tires/{id}/price [post]
func (h *CatalogHandler) UpdatePrice(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	var in dto.UpdatePriceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	tire, err := h.uc.UpdatePrice(c.Context(), int64(id), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidAmount) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_AMOUNT", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrTireNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "llanta no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(tire)
}

// PriceHistory godoc
// @Summary      Historial de precios de una llanta
// @Tags         catalog
// @Produce      json
// @Param        id  path  int  true  "ID de la llanta"
// @Success      200  {array}   dto.PriceChangeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tires/{id}/price-history [get]
func (h *CatalogHandler) PriceHistory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	history, err := h.uc.PriceHistory(c.Context(), int64(id))
	if err != nil {
		if errors.Is(err, domain.ErrTireNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "llanta no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(history)
}
