package entity

import "time"

// Estados de un registro de stock. Las transiciones las decide quien llama.
const (
	StockStatusAvailable = "disponible"
	StockStatusReserved  = "reservado"
	StockStatusDepleted  = "agotado"
	StockStatusExpired   = "vencido"
)

// Stock cantidad de un producto en exactamente un almacén (principal O secundario).
type Stock struct {
	ID                   string
	ProductID            string
	PrimaryWarehouseID   *string
	SecondaryWarehouseID *string
	AvailableQuantity    int
	ReservedQuantity     int
	Location             *string
	ExpiryDate           *time.Time // sólo fecha
	Lot                  *string
	Status               string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// StockView registro de stock con el producto y el almacén resueltos.
type StockView struct {
	Stock
	Product            ProductSummary
	PrimaryWarehouse   *WarehouseSummary
	SecondaryWarehouse *WarehouseSummary
}

// WarehouseName nombre del almacén que contiene el registro.
func (v *StockView) WarehouseName() string {
	switch {
	case v.PrimaryWarehouse != nil:
		return v.PrimaryWarehouse.Name
	case v.SecondaryWarehouse != nil:
		return v.SecondaryWarehouse.Name
	default:
		return ""
	}
}
