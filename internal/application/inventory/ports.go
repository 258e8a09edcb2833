package inventory

import (
	"context"
	"time"

	"github.com/lgalvez/almacen-api/internal/domain/entity"
)

// LowStockReportGenerator renderiza el reporte de stock bajo. Implementado en infrastructure/pdf.
type LowStockReportGenerator interface {
	GenerateLowStockPDF(ctx context.Context, items []*entity.StockView, generatedAt time.Time) ([]byte, error)
}
