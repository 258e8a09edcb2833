package inventory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgalvez/almacen-api/internal/application/dto"
	"github.com/lgalvez/almacen-api/internal/application/inventory"
	"github.com/lgalvez/almacen-api/internal/domain"
	"github.com/lgalvez/almacen-api/internal/domain/entity"
	"github.com/lgalvez/almacen-api/internal/domain/repository"
)

// candidateRepo devuelve candidatos fijos; sólo se usa ListLowStockCandidates.
type candidateRepo struct {
	repository.StockRepository
	views   []*entity.StockView
	err     error
	lastArg repository.LowStockFilter
}

func (r *candidateRepo) ListLowStockCandidates(_ context.Context, f repository.LowStockFilter) ([]*entity.StockView, error) {
	r.lastArg = f
	return r.views, r.err
}

type recordingReport struct {
	items []*entity.StockView
}

func (g *recordingReport) GenerateLowStockPDF(_ context.Context, items []*entity.StockView, _ time.Time) ([]byte, error) {
	g.items = items
	return []byte("%PDF-1.4"), nil
}

func strPtr(s string) *string { return &s }

func view(id string, available, min int, primary, secondary *entity.WarehouseSummary) *entity.StockView {
	v := &entity.StockView{
		Stock: entity.Stock{ID: id, AvailableQuantity: available, CreatedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		Product: entity.ProductSummary{
			ID: "prod-1", Code: "P1", Name: "Producto 1", StockMin: min, Status: entity.ProductStatusActive,
		},
		PrimaryWarehouse:   primary,
		SecondaryWarehouse: secondary,
	}
	if primary != nil {
		v.PrimaryWarehouseID = strPtr(primary.ID)
	}
	if secondary != nil {
		v.SecondaryWarehouseID = strPtr(secondary.ID)
	}
	return v
}

// Escenario: producto P1 con mínimo 10, A = 5 en un principal y B = 20 en un secundario.
// Sólo A aparece, con déficit 5; las ubicaciones no se suman.
func TestLowStock_EvaluaCadaUbicacionPorSeparado(t *testing.T) {
	w1 := &entity.WarehouseSummary{ID: uuid.NewString(), Name: "Central"}
	w2 := &entity.WarehouseSummary{ID: uuid.NewString(), Name: "Bodega 1"}
	repo := &candidateRepo{views: []*entity.StockView{
		view("b", 20, 10, nil, w2),
		view("a", 5, 10, w1, nil),
	}}
	uc := inventory.NewLowStockUseCase(repo, nil)

	res, err := uc.List(context.Background(), dto.LowStockQuery{})
	require.NoError(t, err)
	require.Equal(t, 1, res.Total)
	item := res.Items[0]
	assert.Equal(t, "a", item.ID)
	assert.Equal(t, 5, item.Deficit)
	require.NotNil(t, item.Product)
	assert.Equal(t, "P1", item.Product.Code)
	require.NotNil(t, item.PrimaryWarehouse)
	assert.Equal(t, "Central", item.PrimaryWarehouse.Name)
}

func TestLowStock_SinResultadosDevuelveListaVacia(t *testing.T) {
	uc := inventory.NewLowStockUseCase(&candidateRepo{}, nil)
	res, err := uc.List(context.Background(), dto.LowStockQuery{})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Total)
	assert.NotNil(t, res.Items)
}

func TestLowStock_FiltrosDeAlmacen(t *testing.T) {
	repo := &candidateRepo{}
	uc := inventory.NewLowStockUseCase(repo, nil)
	ctx := context.Background()
	id := uuid.NewString()

	_, err := uc.List(ctx, dto.LowStockQuery{PrimaryWarehouseID: id})
	require.NoError(t, err)
	assert.Equal(t, id, repo.lastArg.PrimaryWarehouseID)

	_, err = uc.List(ctx, dto.LowStockQuery{SecondaryWarehouseID: "abc"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.List(ctx, dto.LowStockQuery{PrimaryWarehouseID: id, SecondaryWarehouseID: id})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLowStock_PropagaErrorDelRepositorio(t *testing.T) {
	boom := errors.New("conexión perdida")
	uc := inventory.NewLowStockUseCase(&candidateRepo{err: boom}, nil)
	_, err := uc.List(context.Background(), dto.LowStockQuery{})
	assert.ErrorIs(t, err, boom)
}

func TestLowStock_ReportPDF(t *testing.T) {
	w1 := &entity.WarehouseSummary{ID: uuid.NewString(), Name: "Central"}
	repo := &candidateRepo{views: []*entity.StockView{
		view("x", 50, 10, w1, nil),
		view("y", 2, 10, w1, nil),
	}}
	report := &recordingReport{}
	uc := inventory.NewLowStockUseCase(repo, report)

	pdf, err := uc.ReportPDF(context.Background(), dto.LowStockQuery{})
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	require.Len(t, report.items, 1, "el reporte recibe sólo el stock bajo")
	assert.Equal(t, "y", report.items[0].ID)

	_, err = inventory.NewLowStockUseCase(repo, nil).ReportPDF(context.Background(), dto.LowStockQuery{})
	assert.ErrorIs(t, err, inventory.ErrReportUnavailable)
}
