package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidAmount     = errors.New("monto inválido")
	ErrTireNotFound      = errors.New("llanta no encontrada")
	ErrCustomerNotFound  = errors.New("cliente no encontrado")
	ErrAdvisorNotFound   = errors.New("asesor no encontrado")
	ErrSaleNotFound      = errors.New("venta no encontrada")
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidAdjustment = errors.New("ajuste de inventario inválido")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrInvalidReturn     = errors.New("devolución inválida")
)

// InsufficientStockError indica qué llanta bloqueó una venta y con qué cantidades.
// errors.Is(err, ErrInsufficientStock) retorna true.
type InsufficientStockError struct {
	TireID    int64
	Requested int64
	Available int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente: llanta %d, solicitado %d, disponible %d",
		e.TireID, e.Requested, e.Available)
}

func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}

// InvalidReturnError indica por qué se rechazó una devolución. Si la cantidad
// excede lo vendido, Sold lleva el total vendido de esa llanta en la venta.
// errors.Is(err, ErrInvalidReturn) retorna true.
type InvalidReturnError struct {
	TireID    int64
	Requested int64
	Sold      int64
	Reason    string
}

func (e *InvalidReturnError) Error() string {
	if e.Reason != "" {
		return "devolución inválida: " + e.Reason
	}
	return fmt.Sprintf("devolución inválida: llanta %d, solicitado %d, vendido %d",
		e.TireID, e.Requested, e.Sold)
}

func (e *InvalidReturnError) Is(target error) bool {
	return target == ErrInvalidReturn
}
