package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/serviteca-pro/internal/domain"
	"github.com/tu-usuario/serviteca-pro/internal/domain/entity"
)

func newTireCollection() *Collection[*entity.Tire] {
	return NewCollection(func(t *entity.Tire, id int64) *entity.Tire {
		t.ID = id
		return t
	})
}

func TestCollection_IDsSecuencialesDesdeUno(t *testing.T) {
	col := newTireCollection()

	a := col.Add(&entity.Tire{SKU: "A"})
	b := col.Add(&entity.Tire{SKU: "B"})
	c := col.Add(&entity.Tire{SKU: "C"})

	assert.Equal(t, int64(1), a.ID)
	assert.Equal(t, int64(2), b.ID)
	assert.Equal(t, int64(3), c.ID)
}

func TestCollection_ListConservaOrdenDeInsercion(t *testing.T) {
	col := newTireCollection()
	for _, sku := range []string{"Z", "M", "A"} {
		col.Add(&entity.Tire{SKU: sku})
	}

	list := col.List()
	require.Len(t, list, 3)
	assert.Equal(t, "Z", list[0].SKU)
	assert.Equal(t, "M", list[1].SKU)
	assert.Equal(t, "A", list[2].SKU)
}

func TestCollection_GetInexistente(t *testing.T) {
	col := newTireCollection()
	_, ok := col.Get(99)
	assert.False(t, ok)
}

func TestCollection_ReplaceInexistenteFalla(t *testing.T) {
	col := newTireCollection()
	err := col.Replace(1, &entity.Tire{SKU: "X"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCollection_ReplaceSobrescribe(t *testing.T) {
	col := newTireCollection()
	tire := col.Add(&entity.Tire{SKU: "X"})

	tire.SKU = "X-2"
	require.NoError(t, col.Replace(tire.ID, tire))

	got, ok := col.Get(tire.ID)
	require.True(t, ok)
	assert.Equal(t, "X-2", got.SKU)
}

func TestInventoryRepository_ClavePorLlanta(t *testing.T) {
	repo := NewInventoryRepository()

	repo.Upsert(&entity.Inventory{TireID: 7, Quantity: 10, Threshold: 2})
	repo.Upsert(&entity.Inventory{TireID: 3, Quantity: 5, Threshold: 1})
	// Upsert sobre la misma llanta no duplica la fila
	repo.Upsert(&entity.Inventory{TireID: 7, Quantity: 8, Threshold: 2})

	list := repo.List()
	require.Len(t, list, 2)
	assert.Equal(t, int64(7), list[0].TireID, "el orden de primer ingreso se conserva")
	assert.Equal(t, int64(8), list[0].Quantity)
	assert.Equal(t, int64(3), list[1].TireID)

	inv, ok := repo.Get(7)
	require.True(t, ok)
	assert.Equal(t, int64(8), inv.Quantity)
}
