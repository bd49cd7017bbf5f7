package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/serviteca-pro/internal/domain"
	"github.com/tu-usuario/serviteca-pro/internal/domain/money"
)

func TestParse_RedondeoMitadHaciaArriba(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"19.999", "20.00"},
		{"130.123", "130.12"},
		{"120", "120.00"},
		{"0.005", "0.01"},
		{"-2.005", "-2.01"}, // mitad se aleja de cero también en negativos
		{"240.00", "240.00"},
	}
	for _, tc := range cases {
		got, err := money.Parse(tc.in)
		require.NoError(t, err, "Parse(%q) no debe fallar", tc.in)
		assert.Equal(t, tc.want, got.StringFixed(2), "Parse(%q)", tc.in)
	}
}

func TestParse_EntradaNoNumerica(t *testing.T) {
	_, err := money.Parse("doce mil")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestNormalize_Idempotente(t *testing.T) {
	d := decimal.RequireFromString("19.999")
	once := money.Normalize(d)
	twice := money.Normalize(once)
	assert.True(t, once.Equal(twice), "Normalize(Normalize(x)) debe ser igual a Normalize(x)")
}

func TestNormalize_SobreRepresentacionDecimal(t *testing.T) {
	// 2.675 en float binario es 2.67499...; parseado como decimal debe
	// redondear a 2.68, no a 2.67.
	got, err := money.Parse("2.675")
	require.NoError(t, err)
	assert.Equal(t, "2.68", got.StringFixed(2))
}
