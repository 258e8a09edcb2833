package repository

// Page ventana de resultados (LIMIT/OFFSET). Limit <= 0 significa sin límite.
type Page struct {
	Limit  int
	Offset int
}

// UnitFilter filtros del listado de unidades de medida.
type UnitFilter struct {
	Search   string // nombre, símbolo, descripción
	Category string
	Status   string
	Page
}

// PrimaryWarehouseFilter filtros del listado de almacenes principales.
type PrimaryWarehouseFilter struct {
	Search string // nombre, dirección, responsable
	Status string
	Page
}

// SecondaryWarehouseFilter filtros del listado de almacenes secundarios.
type SecondaryWarehouseFilter struct {
	Search             string // nombre, dirección, responsable
	Status             string
	PrimaryWarehouseID string
	Page
}

// ProductFilter filtros del listado de productos.
type ProductFilter struct {
	Search   string // código, nombre, descripción, marca
	Category string
	Status   string
	Page
}

// StockFilter filtros del listado de stock.
type StockFilter struct {
	Search               string // ubicación, lote
	Status               string
	ProductID            string
	PrimaryWarehouseID   string
	SecondaryWarehouseID string
	Page
}

// LowStockFilter acota la búsqueda de stock bajo a un almacén (opcional).
type LowStockFilter struct {
	PrimaryWarehouseID   string
	SecondaryWarehouseID string
}
