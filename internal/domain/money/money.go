package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/serviteca-pro/internal/domain"
)

// Servicio de dominio para montos canónicos: todo valor monetario del sistema
// pasa por aquí antes de almacenarse u operarse.

// Normalize redondea un monto a exactamente 2 decimales, mitad hacia arriba
// (half away from zero) sobre la representación decimal. Idempotente:
// Normalize(Normalize(x)) == Normalize(x).
func Normalize(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Parse convierte una representación textual (entera, decimal) en un monto
// canónico. Se parsea como decimal, nunca como float binario, para evitar
// artefactos de redondeo. Retorna domain.ErrInvalidAmount si no es numérico.
func Parse(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", domain.ErrInvalidAmount, s)
	}
	return Normalize(d), nil
}
