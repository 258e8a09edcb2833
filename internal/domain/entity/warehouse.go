package entity

import "time"

// Estados de un almacén (principal o secundario).
const (
	WarehouseStatusActive      = "activo"
	WarehouseStatusInactive    = "inactivo"
	WarehouseStatusMaintenance = "mantenimiento"
)

// WarehouseInfo datos descriptivos comunes a almacenes principales y secundarios.
type WarehouseInfo struct {
	Name              string
	Address           *string
	Phone             *string
	Email             *string
	Responsible       *string
	TotalCapacity     *int
	AvailableCapacity *int
	Status            string
}

// ApplyCapacityDefault usa la capacidad total como disponible cuando no se indicó
// (o se indicó 0) al crear el almacén.
func (w *WarehouseInfo) ApplyCapacityDefault() {
	if w.AvailableCapacity == nil || *w.AvailableCapacity == 0 {
		if w.TotalCapacity != nil {
			total := *w.TotalCapacity
			w.AvailableCapacity = &total
		}
	}
}

// PrimaryWarehouse almacén principal; puede tener almacenes secundarios y stock.
type PrimaryWarehouse struct {
	ID string
	WarehouseInfo
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SecondaryWarehouse almacén secundario. PrimaryWarehouseID es opcional: un secundario
// puede existir sin principal.
type SecondaryWarehouse struct {
	ID string
	WarehouseInfo
	PrimaryWarehouseID *string
	CreatedAt          time.Time
	UpdatedAt          time.Time

	// Parent se llena sólo en lecturas con join.
	Parent *WarehouseSummary
}

// WarehouseSummary vista reducida de un almacén para joins.
type WarehouseSummary struct {
	ID      string
	Name    string
	Address *string
	Status  string
}
