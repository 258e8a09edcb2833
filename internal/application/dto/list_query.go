package dto

// UnitOfMeasureListQuery filtros de listado de unidades de medida.
type UnitOfMeasureListQuery struct {
	Search   string
	Category string
	Status   string
	PageRequest
}

// PrimaryWarehouseListQuery filtros de listado de almacenes principales.
type PrimaryWarehouseListQuery struct {
	Search string
	Status string
	PageRequest
}

// SecondaryWarehouseListQuery filtros de listado de almacenes secundarios.
type SecondaryWarehouseListQuery struct {
	Search             string
	Status             string
	PrimaryWarehouseID string
	PageRequest
}

// ProductListQuery filtros de listado de productos.
type ProductListQuery struct {
	Search   string
	Category string
	Status   string
	PageRequest
}

// StockListQuery filtros de listado de stock.
type StockListQuery struct {
	Search               string
	Status               string
	ProductID            string
	PrimaryWarehouseID   string
	SecondaryWarehouseID string
	PageRequest
}

// LowStockQuery acota el reporte de stock bajo a un almacén (opcional).
type LowStockQuery struct {
	PrimaryWarehouseID   string
	SecondaryWarehouseID string
}
