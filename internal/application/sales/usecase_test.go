package sales_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/serviteca-pro/internal/application/catalog"
	"github.com/tu-usuario/serviteca-pro/internal/application/dto"
	"github.com/tu-usuario/serviteca-pro/internal/application/inventory"
	"github.com/tu-usuario/serviteca-pro/internal/application/sales"
	"github.com/tu-usuario/serviteca-pro/internal/domain"
	"github.com/tu-usuario/serviteca-pro/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixture: dos llantas con stock (ll1: 120.00 x15, ll2: 19.999 -> 20.00 x5),
// un cliente y un asesor, el mismo escenario base del panel de la serviteca.
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	salesUC     *sales.SalesUseCase
	inventoryUC *inventory.InventoryUseCase
	catalogUC   *catalog.CatalogUseCase

	ll1      *dto.TireResponse
	ll2      *dto.TireResponse
	customer *dto.CustomerResponse
	advisor  *dto.AdvisorResponse
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	tires := memory.NewTireRepository()
	customers := memory.NewCustomerRepository()
	advisors := memory.NewAdvisorRepository()
	stock := memory.NewInventoryRepository()
	saleRepo := memory.NewSaleRepository()
	txRunner := memory.NewTxRunner()

	f := &fixture{
		salesUC:     sales.NewSalesUseCase(txRunner, tires, customers, advisors, stock, saleRepo),
		inventoryUC: inventory.NewInventoryUseCase(txRunner, tires, stock),
		catalogUC:   catalog.NewCatalogUseCase(txRunner, tires, customers, advisors),
	}

	var err error
	f.ll1, err = f.catalogUC.RegisterTire(ctx, dto.RegisterTireRequest{
		SKU: "L-205-55R16", Brand: "X", Model: "Sport", Size: "205/55 R16",
		Price: "120",
	})
	require.NoError(t, err)
	f.adjust(t, f.ll1.ID, 15, 5)

	f.ll2, err = f.catalogUC.RegisterTire(ctx, dto.RegisterTireRequest{
		SKU: "L-195-65R15", Brand: "Y", Model: "City", Size: "195/65 R15",
		Price: "19.999", // -> 20.00
	})
	require.NoError(t, err)
	f.adjust(t, f.ll2.ID, 5, 1)

	f.customer, err = f.catalogUC.RegisterCustomer(ctx, dto.RegisterCustomerRequest{Name: "María López", Document: "12345678"})
	require.NoError(t, err)
	f.advisor, err = f.catalogUC.RegisterAdvisor(ctx, dto.RegisterAdvisorRequest{Name: "Carlos Pérez", Document: "87654321"})
	require.NoError(t, err)

	return f
}

func (f *fixture) adjust(t *testing.T, tireID, delta, thr int64) {
	t.Helper()
	_, err := f.inventoryUC.Adjust(context.Background(), dto.AdjustInventoryRequest{
		TireID: tireID, Delta: delta, Threshold: &thr,
	})
	require.NoError(t, err)
}

func (f *fixture) quantity(t *testing.T, tireID int64) int64 {
	t.Helper()
	rows, err := f.inventoryUC.QueryAll(context.Background())
	require.NoError(t, err)
	for _, row := range rows {
		if row.TireID == tireID {
			return row.Quantity
		}
	}
	t.Fatalf("llanta %d sin registro de inventario", tireID)
	return 0
}

func TestRecordSale_UnItem(t *testing.T) {
	f := newFixture(t)

	sale, err := f.salesUC.RecordSale(context.Background(), dto.RecordSaleRequest{
		CustomerID: f.customer.ID,
		AdvisorID:  f.advisor.ID,
		Items:      []dto.SaleItemRequest{{TireID: f.ll1.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	assert.Equal(t, "240.00", sale.Total.StringFixed(2), "2 x 120.00")
	assert.Equal(t, int64(13), f.quantity(t, f.ll1.ID), "el stock baja exactamente en 2")
	require.Len(t, sale.Lines, 1)
	assert.Equal(t, "120.00", sale.Lines[0].UnitPrice.StringFixed(2))
	assert.Equal(t, "240.00", sale.Lines[0].Subtotal.StringFixed(2))
	assert.NotEmpty(t, sale.Reference)
}

func TestRecordSale_MultiplesItems(t *testing.T) {
	f := newFixture(t)

	sale, err := f.salesUC.RecordSale(context.Background(), dto.RecordSaleRequest{
		CustomerID: f.customer.ID,
		AdvisorID:  f.advisor.ID,
		Items: []dto.SaleItemRequest{
			{TireID: f.ll1.ID, Quantity: 2},
			{TireID: f.ll2.ID, Quantity: 3},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "300.00", sale.Total.StringFixed(2), "2x120 + 3x20")
	assert.Equal(t, int64(13), f.quantity(t, f.ll1.ID))
	assert.Equal(t, int64(2), f.quantity(t, f.ll2.ID), "cada llanta descuenta su propia cantidad")
}

func TestRecordSale_SinStockNoAlteraNada(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.salesUC.RecordSale(ctx, dto.RecordSaleRequest{
		CustomerID: f.customer.ID,
		AdvisorID:  f.advisor.ID,
		Items: []dto.SaleItemRequest{
			{TireID: f.ll1.ID, Quantity: 2},   // esta línea sí tiene stock
			{TireID: f.ll2.ID, Quantity: 999}, // esta no: falla toda la venta
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, f.ll2.ID, stockErr.TireID)
	assert.Equal(t, int64(999), stockErr.Requested)
	assert.Equal(t, int64(5), stockErr.Available)

	// Atomicidad: ningún inventario cambió y no hay venta registrada
	assert.Equal(t, int64(15), f.quantity(t, f.ll1.ID))
	assert.Equal(t, int64(5), f.quantity(t, f.ll2.ID))
	list, err := f.salesUC.ListSales(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestRecordSale_LlantaSinInventario(t *testing.T) {
	f := newFixture(t)

	ll3, err := f.catalogUC.RegisterTire(context.Background(), dto.RegisterTireRequest{
		SKU: "SIN-STOCK", Brand: "Z", Model: "Eco", Size: "185/65 R14",
		Price: "80",
	})
	require.NoError(t, err)

	_, err = f.salesUC.RecordSale(context.Background(), dto.RecordSaleRequest{
		CustomerID: f.customer.ID,
		AdvisorID:  f.advisor.ID,
		Items:      []dto.SaleItemRequest{{TireID: ll3.ID, Quantity: 1}},
	})
	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, int64(0), stockErr.Available, "sin registro de inventario cuenta como disponible 0")
}

func TestRecordSale_StockJusto(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// dejar ll2 con exactamente 2 unidades
	delta := int64(-3)
	_, err := f.inventoryUC.Adjust(ctx, dto.AdjustInventoryRequest{TireID: f.ll2.ID, Delta: delta})
	require.NoError(t, err)

	sale, err := f.salesUC.RecordSale(ctx, dto.RecordSaleRequest{
		CustomerID: f.customer.ID,
		AdvisorID:  f.advisor.ID,
		Items:      []dto.SaleItemRequest{{TireID: f.ll2.ID, Quantity: 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, "40.00", sale.Total.StringFixed(2))
	assert.Equal(t, int64(0), f.quantity(t, f.ll2.ID), "vender el stock exacto deja 0, nunca negativo")
}

func TestRecordSale_LineasRepetidasDeLaMismaLlanta(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// ll2 tiene 5 unidades: 3+3 en líneas separadas excede el disponible y
	// debe fallar la venta completa, nunca dejar el stock negativo.
	_, err := f.salesUC.RecordSale(ctx, dto.RecordSaleRequest{
		CustomerID: f.customer.ID,
		AdvisorID:  f.advisor.ID,
		Items: []dto.SaleItemRequest{
			{TireID: f.ll2.ID, Quantity: 3},
			{TireID: f.ll2.ID, Quantity: 3},
		},
	})
	require.Error(t, err)
	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, f.ll2.ID, stockErr.TireID)
	assert.Equal(t, int64(6), stockErr.Requested, "el pedido se acumula por llanta")
	assert.Equal(t, int64(5), stockErr.Available)
	assert.Equal(t, int64(5), f.quantity(t, f.ll2.ID), "el fallo no toca inventario")

	// 3+2 agota exactamente el stock y sí procede, con una línea por entrada.
	sale, err := f.salesUC.RecordSale(ctx, dto.RecordSaleRequest{
		CustomerID: f.customer.ID,
		AdvisorID:  f.advisor.ID,
		Items: []dto.SaleItemRequest{
			{TireID: f.ll2.ID, Quantity: 3},
			{TireID: f.ll2.ID, Quantity: 2},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "100.00", sale.Total.StringFixed(2), "5 x 20.00")
	require.Len(t, sale.Lines, 2)
	assert.Equal(t, int64(0), f.quantity(t, f.ll2.ID), "agotar el stock exacto deja 0")
}

func TestRecordSale_ClienteOAsesorInexistente(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	items := []dto.SaleItemRequest{{TireID: f.ll1.ID, Quantity: 1}}

	_, err := f.salesUC.RecordSale(ctx, dto.RecordSaleRequest{CustomerID: 999, AdvisorID: f.advisor.ID, Items: items})
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)

	_, err = f.salesUC.RecordSale(ctx, dto.RecordSaleRequest{CustomerID: f.customer.ID, AdvisorID: 999, Items: items})
	assert.ErrorIs(t, err, domain.ErrAdvisorNotFound)

	assert.Equal(t, int64(15), f.quantity(t, f.ll1.ID), "los fallos de referencia no tocan inventario")
}

func TestRecordSale_PrecioCapturadoEsInmutable(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	sale, err := f.salesUC.RecordSale(ctx, dto.RecordSaleRequest{
		CustomerID: f.customer.ID,
		AdvisorID:  f.advisor.ID,
		Items:      []dto.SaleItemRequest{{TireID: f.ll1.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	_, err = f.catalogUC.UpdatePrice(ctx, f.ll1.ID, dto.UpdatePriceRequest{Price: "150"})
	require.NoError(t, err)

	list, err := f.salesUC.ListSales(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, sale.ID, list[0].ID)
	assert.Equal(t, "120.00", list[0].Lines[0].UnitPrice.StringFixed(2),
		"el precio unitario queda capturado al momento de la venta")
	assert.Equal(t, "120.00", list[0].Total.StringFixed(2))
}

func TestListSales_OrdenDeRegistro(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := f.salesUC.RecordSale(ctx, dto.RecordSaleRequest{
			CustomerID: f.customer.ID,
			AdvisorID:  f.advisor.ID,
			Items:      []dto.SaleItemRequest{{TireID: f.ll1.ID, Quantity: 1}},
		})
		require.NoError(t, err)
	}

	list, err := f.salesUC.ListSales(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, int64(1), list[0].ID)
	assert.Equal(t, int64(2), list[1].ID)
	assert.Equal(t, int64(3), list[2].ID)
}
