package dto

import "time"

// WarehouseFields campos comunes de alta/modificación de almacenes.
type WarehouseFields struct {
	Name              string  `json:"nombre" validate:"required,min=2,max=100"`
	Address           *string `json:"direccion" validate:"omitempty,max=200"`
	Phone             *string `json:"telefono" validate:"omitempty,min=7,max=20"`
	Email             *string `json:"email" validate:"omitempty,email,max=100"`
	Responsible       *string `json:"responsable" validate:"omitempty,max=100"`
	TotalCapacity     *int    `json:"capacidad_total" validate:"omitempty,min=0,max=2147483647"`
	AvailableCapacity *int    `json:"capacidad_disponible" validate:"omitempty,min=0,max=2147483647"`
	Status            string  `json:"estado" validate:"omitempty,oneof=activo inactivo mantenimiento"`
}

// CreatePrimaryWarehouseRequest entrada para crear un almacén principal.
type CreatePrimaryWarehouseRequest struct {
	WarehouseFields
}

// UpdatePrimaryWarehouseRequest reemplaza el almacén principal completo.
type UpdatePrimaryWarehouseRequest = CreatePrimaryWarehouseRequest

// CreateSecondaryWarehouseRequest entrada para crear un almacén secundario.
// almacen_principal_id es opcional.
type CreateSecondaryWarehouseRequest struct {
	WarehouseFields
	PrimaryWarehouseID *string `json:"almacen_principal_id" validate:"omitempty,uuid"`
}

// UpdateSecondaryWarehouseRequest reemplaza el almacén secundario completo (incluye el principal).
type UpdateSecondaryWarehouseRequest = CreateSecondaryWarehouseRequest

// WarehouseResponse campos comunes de salida.
type WarehouseResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"nombre"`
	Address           *string   `json:"direccion"`
	Phone             *string   `json:"telefono"`
	Email             *string   `json:"email"`
	Responsible       *string   `json:"responsable"`
	TotalCapacity     *int      `json:"capacidad_total"`
	AvailableCapacity *int      `json:"capacidad_disponible"`
	Status            string    `json:"estado"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// PrimaryWarehouseListResponse lista paginada de almacenes principales.
type PrimaryWarehouseListResponse struct {
	Items []WarehouseResponse `json:"items"`
	PageResponse
}

// SecondaryWarehouseResponse salida de un almacén secundario con su principal resuelto.
type SecondaryWarehouseResponse struct {
	WarehouseResponse
	PrimaryWarehouseID *string                   `json:"almacen_principal_id"`
	PrimaryWarehouse   *WarehouseSummaryResponse `json:"almacen_principal,omitempty"`
}

// SecondaryWarehouseListResponse lista paginada de almacenes secundarios.
type SecondaryWarehouseListResponse struct {
	Items []SecondaryWarehouseResponse `json:"items"`
	PageResponse
}

// WarehouseSummaryResponse resumen de almacén embebido en otras respuestas.
type WarehouseSummaryResponse struct {
	ID      string  `json:"id"`
	Name    string  `json:"nombre"`
	Address *string `json:"direccion,omitempty"`
	Status  string  `json:"estado,omitempty"`
}
