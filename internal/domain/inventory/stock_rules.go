package inventory

import (
	"sort"

	"github.com/lgalvez/almacen-api/internal/domain"
	"github.com/lgalvez/almacen-api/internal/domain/entity"
)

// MsgExclusiveWarehouse mensaje de la regla de almacén único del stock.
const MsgExclusiveWarehouse = "el stock debe estar en un almacén principal O secundario, no en ambos ni en ninguno"

// ValidateWarehouseRef comprueba que el stock apunta a exactamente un almacén.
// Se aplica sobre la misma entidad que se inserta; la tabla repite la regla con un CHECK.
func ValidateWarehouseRef(s *entity.Stock) error {
	hasPrimary := s.PrimaryWarehouseID != nil && *s.PrimaryWarehouseID != ""
	hasSecondary := s.SecondaryWarehouseID != nil && *s.SecondaryWarehouseID != ""
	if hasPrimary == hasSecondary {
		return domain.NewValidationError("almacen", MsgExclusiveWarehouse)
	}
	return nil
}

// IsLowStock indica si un registro está en stock bajo: producto activo con mínimo
// configurado y cantidad disponible menor o igual a ese mínimo. Cada ubicación se
// evalúa por separado contra el umbral global del producto.
func IsLowStock(available int, p entity.ProductSummary) bool {
	if p.Status != entity.ProductStatusActive || p.StockMin <= 0 {
		return false
	}
	return available <= p.StockMin
}

// Deficit unidades que faltan para llegar al mínimo del producto (0 si no falta nada).
func Deficit(available, stockMin int) int {
	if d := stockMin - available; d > 0 {
		return d
	}
	return 0
}

// FilterLowStock devuelve los registros en stock bajo ordenados por cantidad disponible
// ascendente (empates: el más antiguo primero, luego por id).
func FilterLowStock(views []*entity.StockView) []*entity.StockView {
	out := make([]*entity.StockView, 0, len(views))
	for _, v := range views {
		if IsLowStock(v.AvailableQuantity, v.Product) {
			out = append(out, v)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.AvailableQuantity != b.AvailableQuantity {
			return a.AvailableQuantity < b.AvailableQuantity
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})
	return out
}
