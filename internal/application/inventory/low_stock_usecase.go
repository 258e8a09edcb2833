package inventory

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/lgalvez/almacen-api/internal/application/dto"
	"github.com/lgalvez/almacen-api/internal/application/usecase"
	"github.com/lgalvez/almacen-api/internal/domain"
	"github.com/lgalvez/almacen-api/internal/domain/entity"
	rules "github.com/lgalvez/almacen-api/internal/domain/inventory"
	"github.com/lgalvez/almacen-api/internal/domain/repository"
)

// ErrReportUnavailable el servidor se levantó sin generador de reportes.
var ErrReportUnavailable = errors.New("generador de reportes no configurado")

// LowStockUseCase detecta registros de stock por debajo del mínimo de su producto.
// Es de sólo lectura: cada ubicación se evalúa por separado, nunca se suman cantidades.
type LowStockUseCase struct {
	stockRepo repository.StockRepository
	report    LowStockReportGenerator
	now       func() time.Time
}

// NewLowStockUseCase construye el caso de uso. report puede ser nil si no se exponen PDFs.
func NewLowStockUseCase(stockRepo repository.StockRepository, report LowStockReportGenerator) *LowStockUseCase {
	return &LowStockUseCase{stockRepo: stockRepo, report: report, now: time.Now}
}

// List devuelve el stock bajo ordenado por cantidad disponible ascendente, con el déficit
// de cada registro. Los filtros de almacén son opcionales.
func (uc *LowStockUseCase) List(ctx context.Context, q dto.LowStockQuery) (*dto.LowStockResponse, error) {
	items, err := uc.find(ctx, q)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LowStockItemResponse, 0, len(items))
	for _, v := range items {
		out = append(out, dto.LowStockItemResponse{
			StockResponse: *usecase.NewStockResponse(v),
			Deficit:       rules.Deficit(v.AvailableQuantity, v.Product.StockMin),
		})
	}
	return &dto.LowStockResponse{Total: len(out), Items: out}, nil
}

// ReportPDF genera el reporte de stock bajo en PDF con los mismos filtros que List.
func (uc *LowStockUseCase) ReportPDF(ctx context.Context, q dto.LowStockQuery) ([]byte, error) {
	if uc.report == nil {
		return nil, ErrReportUnavailable
	}
	items, err := uc.find(ctx, q)
	if err != nil {
		return nil, err
	}
	return uc.report.GenerateLowStockPDF(ctx, items, uc.now())
}

func (uc *LowStockUseCase) find(ctx context.Context, q dto.LowStockQuery) ([]*entity.StockView, error) {
	if q.PrimaryWarehouseID != "" && q.SecondaryWarehouseID != "" {
		return nil, domain.NewValidationError("almacen", "filtre por almacén principal o secundario, no ambos")
	}
	for _, f := range []struct{ field, id string }{
		{"almacen_principal_id", q.PrimaryWarehouseID},
		{"almacen_secundario_id", q.SecondaryWarehouseID},
	} {
		if f.id != "" && uuid.Validate(f.id) != nil {
			return nil, domain.NewValidationError(f.field, "debe ser un identificador válido")
		}
	}
	candidates, err := uc.stockRepo.ListLowStockCandidates(ctx, repository.LowStockFilter{
		PrimaryWarehouseID:   q.PrimaryWarehouseID,
		SecondaryWarehouseID: q.SecondaryWarehouseID,
	})
	if err != nil {
		return nil, err
	}
	return rules.FilterLowStock(candidates), nil
}
