package dto

import "time"

// CreateStockRequest entrada para crear un registro de stock. Debe indicarse
// exactamente uno de almacen_principal_id / almacen_secundario_id.
type CreateStockRequest struct {
	ProductID            string  `json:"producto_id" validate:"required,uuid"`
	PrimaryWarehouseID   *string `json:"almacen_principal_id" validate:"omitempty,uuid"`
	SecondaryWarehouseID *string `json:"almacen_secundario_id" validate:"omitempty,uuid"`
	AvailableQuantity    *int    `json:"cantidad_disponible" validate:"omitempty,min=0,max=2147483647"`
	ReservedQuantity     *int    `json:"cantidad_reservada" validate:"omitempty,min=0,max=2147483647"`
	Location             *string `json:"ubicacion" validate:"omitempty,max=100"`
	ExpiryDate           *Date   `json:"fecha_vencimiento"`
	Lot                  *string `json:"lote" validate:"omitempty,max=50"`
}

// UpdateStockRequest reemplaza cantidades, ubicación, vencimiento, lote y estado.
// Producto y almacén no se pueden cambiar: se elimina y se crea otro registro.
type UpdateStockRequest struct {
	AvailableQuantity *int    `json:"cantidad_disponible" validate:"omitempty,min=0,max=2147483647"`
	ReservedQuantity  *int    `json:"cantidad_reservada" validate:"omitempty,min=0,max=2147483647"`
	Location          *string `json:"ubicacion" validate:"omitempty,max=100"`
	ExpiryDate        *Date   `json:"fecha_vencimiento"`
	Lot               *string `json:"lote" validate:"omitempty,max=50"`
	Status            string  `json:"estado" validate:"omitempty,oneof=disponible reservado agotado vencido"`
}

// StockResponse salida de un registro de stock. Los resúmenes de producto y almacén
// sólo vienen en lecturas (no en create/update).
type StockResponse struct {
	ID                   string                    `json:"id"`
	ProductID            string                    `json:"producto_id"`
	PrimaryWarehouseID   *string                   `json:"almacen_principal_id"`
	SecondaryWarehouseID *string                   `json:"almacen_secundario_id"`
	AvailableQuantity    int                       `json:"cantidad_disponible"`
	ReservedQuantity     int                       `json:"cantidad_reservada"`
	Location             *string                   `json:"ubicacion"`
	ExpiryDate           *Date                     `json:"fecha_vencimiento"`
	Lot                  *string                   `json:"lote"`
	Status               string                    `json:"estado"`
	Product              *ProductSummaryResponse   `json:"producto,omitempty"`
	PrimaryWarehouse     *WarehouseSummaryResponse `json:"almacen_principal,omitempty"`
	SecondaryWarehouse   *WarehouseSummaryResponse `json:"almacen_secundario,omitempty"`
	CreatedAt            time.Time                 `json:"created_at"`
	UpdatedAt            time.Time                 `json:"updated_at"`
}

// StockListResponse lista paginada de stock.
type StockListResponse struct {
	Items []StockResponse `json:"items"`
	PageResponse
}

// LowStockItemResponse registro en stock bajo con las unidades que faltan para el mínimo.
type LowStockItemResponse struct {
	StockResponse
	Deficit int `json:"deficit"`
}

// LowStockResponse listado de stock bajo (ordenado por cantidad disponible ascendente).
type LowStockResponse struct {
	Total int                    `json:"total"`
	Items []LowStockItemResponse `json:"items"`
}
