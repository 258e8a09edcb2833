package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgalvez/almacen-api/internal/application/dto"
	"github.com/lgalvez/almacen-api/internal/application/usecase"
	"github.com/lgalvez/almacen-api/internal/domain"
	"github.com/lgalvez/almacen-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type testApp struct {
	store      *memStore
	units      *usecase.UnitOfMeasureUseCase
	primaries  *usecase.PrimaryWarehouseUseCase
	secondarys *usecase.SecondaryWarehouseUseCase
	products   *usecase.ProductUseCase
	stock      *usecase.StockUseCase
}

func newTestApp() *testApp {
	s := newMemStore()
	return &testApp{
		store:      s,
		units:      usecase.NewUnitOfMeasureUseCase(unitRepo{s}),
		primaries:  usecase.NewPrimaryWarehouseUseCase(primaryRepo{s}),
		secondarys: usecase.NewSecondaryWarehouseUseCase(secondaryRepo{s}),
		products:   usecase.NewProductUseCase(productRepo{s}),
		stock:      usecase.NewStockUseCase(stockRepo{s}),
	}
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func requireValidation(t *testing.T, err error, field string) *domain.ValidationError {
	t.Helper()
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	ve, ok := domain.AsValidation(err)
	require.True(t, ok, "se esperaba ValidationError, llegó %v", err)
	if field != "" {
		assert.Equal(t, field, ve.Field)
	}
	return ve
}

func kilo() dto.CreateUnitOfMeasureRequest {
	return dto.CreateUnitOfMeasureRequest{Name: "Kilogramo", Symbol: "kg", Category: entity.UnitCategoryWeight}
}

// ──────────────────────────────────────────────────────────────────────────────
// Unidades de medida
// ──────────────────────────────────────────────────────────────────────────────

func TestUnitOfMeasure_CreateAplicaDefaults(t *testing.T) {
	app := newTestApp()
	in := kilo()
	in.Name = "  Kilogramo "
	in.Description = strPtr("   ")

	got, err := app.units.Create(context.Background(), in)
	require.NoError(t, err)

	assert.NoError(t, uuid.Validate(got.ID))
	assert.Equal(t, "Kilogramo", got.Name, "el nombre se guarda recortado")
	assert.Nil(t, got.Description, "descripción en blanco se guarda como null")
	assert.True(t, got.ConversionFactor.Equal(decimal.NewFromInt(1)))
	assert.Equal(t, entity.UnitStatusActive, got.Status)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestUnitOfMeasure_NombreYSimboloUnicos(t *testing.T) {
	app := newTestApp()
	ctx := context.Background()
	_, err := app.units.Create(ctx, kilo())
	require.NoError(t, err)

	dupName := kilo()
	dupName.Symbol = "kgr"
	_, err = app.units.Create(ctx, dupName)
	requireValidation(t, err, "nombre")
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	dupSymbol := kilo()
	dupSymbol.Name = "Kilo"
	_, err = app.units.Create(ctx, dupSymbol)
	requireValidation(t, err, "simbolo")
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestUnitOfMeasure_Validaciones(t *testing.T) {
	app := newTestApp()
	ctx := context.Background()

	bad := kilo()
	bad.Category = "temperatura"
	_, err := app.units.Create(ctx, bad)
	requireValidation(t, err, "tipo")

	bad = kilo()
	bad.Name = "K"
	_, err = app.units.Create(ctx, bad)
	requireValidation(t, err, "nombre")

	bad = kilo()
	tiny := decimal.RequireFromString("0.00001")
	bad.ConversionFactor = &tiny
	_, err = app.units.Create(ctx, bad)
	requireValidation(t, err, "factor_conversion")

	assert.Empty(t, app.store.units, "nada se guarda si la validación falla")
}

func TestUnitOfMeasure_UpdateReemplazaCompleto(t *testing.T) {
	app := newTestApp()
	ctx := context.Background()
	in := kilo()
	in.Description = strPtr("peso en kilos")
	in.Status = entity.UnitStatusInactive
	created, err := app.units.Create(ctx, in)
	require.NoError(t, err)

	upd, err := app.units.Update(ctx, created.ID, dto.UpdateUnitOfMeasureRequest{
		Name: "Kilogramo", Symbol: "KG", Category: entity.UnitCategoryWeight,
	})
	require.NoError(t, err)
	assert.Equal(t, "KG", upd.Symbol)
	assert.Nil(t, upd.Description, "opcional omitido pasa a null")
	assert.Equal(t, entity.UnitStatusActive, upd.Status, "estado omitido vuelve al valor por defecto")
	assert.Equal(t, created.CreatedAt, upd.CreatedAt)
}

func TestUnitOfMeasure_NoEncontrado(t *testing.T) {
	app := newTestApp()
	ctx := context.Background()

	_, err := app.units.GetByID(ctx, "no-es-uuid")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = app.units.GetByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = app.units.Update(ctx, uuid.NewString(), kilo())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Borrar dos veces: la segunda vez el recurso ya no existe.
func TestUnitOfMeasure_SegundoDeleteEsNotFound(t *testing.T) {
	app := newTestApp()
	ctx := context.Background()
	u, err := app.units.Create(ctx, kilo())
	require.NoError(t, err)

	require.NoError(t, app.units.Delete(ctx, u.ID))
	assert.ErrorIs(t, app.units.Delete(ctx, u.ID), domain.ErrNotFound)
}

func TestUnitOfMeasure_DeleteDejaProductosSinMedida(t *testing.T) {
	app := newTestApp()
	ctx := context.Background()
	u, err := app.units.Create(ctx, kilo())
	require.NoError(t, err)
	p, err := app.products.Create(ctx, dto.CreateProductRequest{Code: "ARZ-1", Name: "Arroz", UnitOfMeasureID: &u.ID})
	require.NoError(t, err)
	got, err := app.products.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Unit)

	require.NoError(t, app.units.Delete(ctx, u.ID))

	got, err = app.products.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, got.UnitOfMeasureID)
	assert.Nil(t, got.Unit)
}

// total_pages = ceil(N/P) y concatenar las páginas reproduce el listado completo.
func TestUnitOfMeasure_LeyDePaginacion(t *testing.T) {
	app := newTestApp()
	ctx := context.Background()
	const n = 23
	for i := n; i >= 1; i-- {
		_, err := app.units.Create(ctx, dto.CreateUnitOfMeasureRequest{
			Name:     fmt.Sprintf("Unidad %02d", i),
			Symbol:   fmt.Sprintf("u%02d", i),
			Category: entity.UnitCategoryCount,
		})
		require.NoError(t, err)
	}

	full, err := app.units.List(ctx, dto.UnitOfMeasureListQuery{PageRequest: dto.PageRequest{PageSize: dto.MaxPageSize}})
	require.NoError(t, err)
	require.Len(t, full.Items, n)

	var names []string
	for page := 1; ; page++ {
		res, err := app.units.List(ctx, dto.UnitOfMeasureListQuery{PageRequest: dto.PageRequest{Page: page, PageSize: 5}})
		require.NoError(t, err)
		assert.Equal(t, n, res.Total)
		assert.Equal(t, 5, res.TotalPages)
		if len(res.Items) == 0 {
			break
		}
		for _, it := range res.Items {
			names = append(names, it.Name)
		}
	}
	want := make([]string, 0, n)
	for _, it := range full.Items {
		want = append(want, it.Name)
	}
	assert.Equal(t, want, names)
	assert.Equal(t, "Unidad 01", names[0], "orden por nombre ascendente")
}

func TestUnitOfMeasure_PaginacionPorDefectoYTope(t *testing.T) {
	app := newTestApp()
	res, err := app.units.List(context.Background(), dto.UnitOfMeasureListQuery{PageRequest: dto.PageRequest{PageSize: 500}})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Page)
	assert.Equal(t, dto.MaxPageSize, res.PageSize)
	assert.Equal(t, 0, res.TotalPages)
	assert.NotNil(t, res.Items)
}

func TestUnitOfMeasure_ListByCategory(t *testing.T) {
	app := newTestApp()
	ctx := context.Background()
	_, err := app.units.Create(ctx, kilo())
	require.NoError(t, err)
	_, err = app.units.Create(ctx, dto.CreateUnitOfMeasureRequest{Name: "Litro", Symbol: "l", Category: entity.UnitCategoryVolume})
	require.NoError(t, err)

	res, err := app.units.ListByCategory(ctx, entity.UnitCategoryVolume, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "Litro", res.Items[0].Name)
}

// ──────────────────────────────────────────────────────────────────────────────
// Almacenes
// ──────────────────────────────────────────────────────────────────────────────

func TestPrimaryWarehouse_CapacidadDisponiblePorDefecto(t *testing.T) {
	app := newTestApp()
	ctx := context.Background()

	w, err := app.primaries.Create(ctx, dto.CreatePrimaryWarehouseRequest{WarehouseFields: dto.WarehouseFields{
		Name: "Central", TotalCapacity: intPtr(500),
	}})
	require.NoError(t, err)
	require.NotNil(t, w.AvailableCapacity)
	assert.Equal(t, 500, *w.AvailableCapacity)
	assert.Equal(t, entity.WarehouseStatusActive, w.Status)

	w, err = app.primaries.Create(ctx, dto.CreatePrimaryWarehouseRequest{WarehouseFields: dto.WarehouseFields{
		Name: "Norte", TotalCapacity: intPtr(500), AvailableCapacity: intPtr(0),
	}})
	require.NoError(t, err)
	assert.Equal(t, 500, *w.AvailableCapacity, "cero también toma la capacidad total")

	w, err = app.primaries.Create(ctx, dto.CreatePrimaryWarehouseRequest{WarehouseFields: dto.WarehouseFields{
		Name: "Sur", TotalCapacity: intPtr(500), AvailableCapacity: intPtr(120),
	}})
	require.NoError(t, err)
	assert.Equal(t, 120, *w.AvailableCapacity)
}

func TestPrimaryWarehouse_Validaciones(t *testing.T) {
	app := newTestApp()
	ctx := context.Background()

	_, err := app.primaries.Create(ctx, dto.CreatePrimaryWarehouseRequest{WarehouseFields: dto.WarehouseFields{
		Name: "Central", Email: strPtr("no-es-email"),
	}})
	requireValidation(t, err, "email")

	_, err = app.primaries.Create(ctx, dto.CreatePrimaryWarehouseRequest{WarehouseFields: dto.WarehouseFields{
		Name: "Central", Phone: strPtr("123"),
	}})
	requireValidation(t, err, "telefono")

	_, err = app.primaries.Create(ctx, dto.CreatePrimaryWarehouseRequest{WarehouseFields: dto.WarehouseFields{
		Name: "Central", Status: "cerrado",
	}})
	requireValidation(t, err, "estado")
}

func TestPrimaryWarehouse_ListActive(t *testing.T) {
	app := newTestApp()
	ctx := context.Background()
	for _, st := range []string{entity.WarehouseStatusActive, entity.WarehouseStatusMaintenance, entity.WarehouseStatusActive} {
		_, err := app.primaries.Create(ctx, dto.CreatePrimaryWarehouseRequest{WarehouseFields: dto.WarehouseFields{
			Name: "Almacén " + st + uuid.NewString()[:4], Status: st,
		}})
		require.NoError(t, err)
	}
	res, err := app.primaries.ListActive(ctx, dto.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Total)
}

// Un secundario con principal inexistente se rechaza como entrada inválida.
func TestSecondaryWarehouse_PrincipalInexistente(t *testing.T) {
	app := newTestApp()
	_, err := app.secondarys.Create(context.Background(), dto.CreateSecondaryWarehouseRequest{
		WarehouseFields:    dto.WarehouseFields{Name: "Bodega 1"},
		PrimaryWarehouseID: strPtr(uuid.NewString()),
	})
	requireValidation(t, err, "almacen_principal_id")
	assert.Empty(t, app.store.secondaries)
}

func TestSecondaryWarehouse_HuerfanoYCambioDePrincipal(t *testing.T) {
	app := newTestApp()
	ctx := context.Background()
	p1, err := app.primaries.Create(ctx, dto.CreatePrimaryWarehouseRequest{WarehouseFields: dto.WarehouseFields{Name: "Central"}})
	require.NoError(t, err)
	p2, err := app.primaries.Create(ctx, dto.CreatePrimaryWarehouseRequest{WarehouseFields: dto.WarehouseFields{Name: "Norte"}})
	require.NoError(t, err)

	orphan, err := app.secondarys.Create(ctx, dto.CreateSecondaryWarehouseRequest{WarehouseFields: dto.WarehouseFields{Name: "Suelta"}})
	require.NoError(t, err)
	assert.Nil(t, orphan.PrimaryWarehouseID)

	s, err := app.secondarys.Create(ctx, dto.CreateSecondaryWarehouseRequest{
		WarehouseFields:    dto.WarehouseFields{Name: "Bodega 1"},
		PrimaryWarehouseID: &p1.ID,
	})
	require.NoError(t, err)

	got, err := app.secondarys.GetByID(ctx, s.ID)
	require.NoError(t, err)
	require.NotNil(t, got.PrimaryWarehouse)
	assert.Equal(t, "Central", got.PrimaryWarehouse.Name)

	upd, err := app.secondarys.Update(ctx, s.ID, dto.UpdateSecondaryWarehouseRequest{
		WarehouseFields:    dto.WarehouseFields{Name: "Bodega 1"},
		PrimaryWarehouseID: &p2.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, p2.ID, *upd.PrimaryWarehouseID)

	byParent, err := app.secondarys.ListByParent(ctx, p2.ID, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, byParent.Items, 1)
	assert.Equal(t, s.ID, byParent.Items[0].ID)

	_, err = app.secondarys.List(ctx, dto.SecondaryWarehouseListQuery{PrimaryWarehouseID: "xyz"})
	requireValidation(t, err, "almacen_principal_id")
}

// Borrar el principal deja a sus secundarios sin padre.
func TestPrimaryWarehouse_DeleteDejaHuerfanos(t *testing.T) {
	app := newTestApp()
	ctx := context.Background()
	p, err := app.primaries.Create(ctx, dto.CreatePrimaryWarehouseRequest{WarehouseFields: dto.WarehouseFields{Name: "Central"}})
	require.NoError(t, err)
	s, err := app.secondarys.Create(ctx, dto.CreateSecondaryWarehouseRequest{
		WarehouseFields:    dto.WarehouseFields{Name: "Bodega 1"},
		PrimaryWarehouseID: &p.ID,
	})
	require.NoError(t, err)

	require.NoError(t, app.primaries.Delete(ctx, p.ID))

	got, err := app.secondarys.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Nil(t, got.PrimaryWarehouseID)
	assert.Nil(t, got.PrimaryWarehouse)
	assert.ErrorIs(t, app.primaries.Delete(ctx, p.ID), domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

func TestProduct_CreateDefaultsYMedida(t *testing.T) {
	app := newTestApp()
	ctx := context.Background()
	u, err := app.units.Create(ctx, kilo())
	require.NoError(t, err)
	price := decimal.RequireFromString("2500.50")

	p, err := app.products.Create(ctx, dto.CreateProductRequest{
		Code: "ARZ-1", Name: "Arroz blanco", UnitPrice: &price, UnitOfMeasureID: &u.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultStockMin, p.StockMin)
	assert.Equal(t, entity.DefaultStockMax, p.StockMax)
	assert.Equal(t, entity.ProductStatusActive, p.Status)

	got, err := app.products.GetByCode(ctx, " ARZ-1 ")
	require.NoError(t, err)
	require.NotNil(t, got.Unit)
	assert.Equal(t, "kg", got.Unit.Symbol)
	assert.True(t, got.UnitPrice.Equal(price))
}

func TestProduct_CodigoDuplicado(t *testing.T) {
	app := newTestApp()
	ctx := context.Background()
	_, err := app.products.Create(ctx, dto.CreateProductRequest{Code: "ARZ-1", Name: "Arroz"})
	require.NoError(t, err)
	other, err := app.products.Create(ctx, dto.CreateProductRequest{Code: "FRJ-1", Name: "Fríjol"})
	require.NoError(t, err)

	_, err = app.products.Create(ctx, dto.CreateProductRequest{Code: "ARZ-1", Name: "Otro arroz"})
	requireValidation(t, err, "codigo")
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = app.products.Update(ctx, other.ID, dto.UpdateProductRequest{Code: "ARZ-1", Name: "Fríjol"})
	requireValidation(t, err, "codigo")

	upd, err := app.products.Update(ctx, other.ID, dto.UpdateProductRequest{Code: "FRJ-2", Name: "Fríjol"})
	require.NoError(t, err, "el código puede cambiar a uno libre")
	assert.Equal(t, "FRJ-2", upd.Code)

	_, err = app.products.Update(ctx, other.ID, dto.UpdateProductRequest{Code: "FRJ-2", Name: "Fríjol rojo"})
	assert.NoError(t, err, "conservar el propio código no es duplicado")
}

func TestProduct_Validaciones(t *testing.T) {
	app := newTestApp()
	ctx := context.Background()

	neg := decimal.NewFromInt(-1)
	_, err := app.products.Create(ctx, dto.CreateProductRequest{Code: "X-1", Name: "Algo", UnitPrice: &neg})
	requireValidation(t, err, "precio_unitario")

	_, err = app.products.Create(ctx, dto.CreateProductRequest{Code: "X-1", Name: "Algo", StockMin: intPtr(-1)})
	requireValidation(t, err, "stock_minimo")

	_, err = app.products.Create(ctx, dto.CreateProductRequest{Code: "X-1", Name: "Algo", UnitOfMeasureID: strPtr(uuid.NewString())})
	requireValidation(t, err, "medida_id")

	_, err = app.products.Create(ctx, dto.CreateProductRequest{Name: "Algo"})
	requireValidation(t, err, "codigo")
}

func TestProduct_ListActiveYCategoria(t *testing.T) {
	app := newTestApp()
	ctx := context.Background()
	for i, st := range []string{entity.ProductStatusActive, entity.ProductStatusDiscontinued, entity.ProductStatusActive} {
		_, err := app.products.Create(ctx, dto.CreateProductRequest{
			Code: fmt.Sprintf("P-%d", i), Name: fmt.Sprintf("Producto %d", i), Category: strPtr("granos"), Status: st,
		})
		require.NoError(t, err)
	}
	active, err := app.products.ListActive(ctx, dto.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, 2, active.Total)

	byCat, err := app.products.ListByCategory(ctx, "granos", dto.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, 3, byCat.Total)

	search, err := app.products.List(ctx, dto.ProductListQuery{Search: "p-1"})
	require.NoError(t, err)
	assert.Equal(t, 1, search.Total)
}

// ──────────────────────────────────────────────────────────────────────────────
// Rangos de columnas numéricas
// ──────────────────────────────────────────────────────────────────────────────

func TestUnitOfMeasure_FactorFueraDeRangoOConDecimalesDeMas(t *testing.T) {
	app := newTestApp()
	ctx := context.Background()

	cases := []struct {
		name   string
		factor string
	}{
		{"parte entera de más", "100000000"},
		{"más de cuatro decimales", "0.00015"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := kilo()
			f := decimal.RequireFromString(tc.factor)
			in.ConversionFactor = &f
			_, err := app.units.Create(ctx, in)
			requireValidation(t, err, "factor_conversion")
		})
	}
	assert.Empty(t, app.store.units)

	// Caso límite: el mayor valor que cabe en NUMERIC(12,4)
	in := kilo()
	top := decimal.RequireFromString("99999999.9999")
	in.ConversionFactor = &top
	u, err := app.units.Create(ctx, in)
	require.NoError(t, err)
	assert.True(t, u.ConversionFactor.Equal(top))
}

func TestProduct_PrecioYStockFueraDeRango(t *testing.T) {
	app := newTestApp()
	ctx := context.Background()

	for _, raw := range []string{"10000000000", "1.005"} {
		price := decimal.RequireFromString(raw)
		_, err := app.products.Create(ctx, dto.CreateProductRequest{Code: "X-1", Name: "Algo", UnitPrice: &price})
		requireValidation(t, err, "precio_unitario")
	}

	_, err := app.products.Create(ctx, dto.CreateProductRequest{Code: "X-1", Name: "Algo", StockMax: intPtr(3_000_000_000)})
	requireValidation(t, err, "stock_maximo")
	assert.Empty(t, app.store.products)

	// Caso límite: parte entera máxima con dos decimales
	price := decimal.RequireFromString("9999999999.50")
	p, err := app.products.Create(ctx, dto.CreateProductRequest{Code: "X-1", Name: "Algo", UnitPrice: &price})
	require.NoError(t, err)
	assert.True(t, p.UnitPrice.Equal(price))
}

func TestPrimaryWarehouse_CapacidadFueraDeRango(t *testing.T) {
	app := newTestApp()
	_, err := app.primaries.Create(context.Background(), dto.CreatePrimaryWarehouseRequest{WarehouseFields: dto.WarehouseFields{
		Name: "Central", TotalCapacity: intPtr(3_000_000_000),
	}})
	requireValidation(t, err, "capacidad_total")
}

// ──────────────────────────────────────────────────────────────────────────────
// Respuestas de escritura de productos
// ──────────────────────────────────────────────────────────────────────────────

func TestProduct_UpdateInexistenteEsNotFoundAntesQueDuplicado(t *testing.T) {
	app := newTestApp()
	ctx := context.Background()
	_, err := app.products.Create(ctx, dto.CreateProductRequest{Code: "ARZ-1", Name: "Arroz"})
	require.NoError(t, err)

	_, err = app.products.Update(ctx, uuid.NewString(), dto.UpdateProductRequest{Code: "ARZ-1", Name: "Arroz"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NotErrorIs(t, err, domain.ErrDuplicate)
}

func TestProduct_CreateYUpdateDevuelvenLaMedida(t *testing.T) {
	app := newTestApp()
	ctx := context.Background()
	u, err := app.units.Create(ctx, kilo())
	require.NoError(t, err)

	created, err := app.products.Create(ctx, dto.CreateProductRequest{Code: "ARZ-1", Name: "Arroz", UnitOfMeasureID: &u.ID})
	require.NoError(t, err)
	got, err := app.products.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, created.Unit)
	assert.Equal(t, got.Unit, created.Unit, "POST y GET devuelven la misma medida")

	updated, err := app.products.Update(ctx, created.ID, dto.UpdateProductRequest{Code: "ARZ-1", Name: "Arroz blanco", UnitOfMeasureID: &u.ID})
	require.NoError(t, err)
	require.NotNil(t, updated.Unit)
	assert.Equal(t, "kg", updated.Unit.Symbol)

	plain, err := app.products.Update(ctx, created.ID, dto.UpdateProductRequest{Code: "ARZ-1", Name: "Arroz blanco"})
	require.NoError(t, err)
	assert.Nil(t, plain.Unit, "sin medida_id no hay resumen")
}
