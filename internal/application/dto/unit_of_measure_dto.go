package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateUnitOfMeasureRequest entrada para crear una unidad de medida.
type CreateUnitOfMeasureRequest struct {
	Name             string           `json:"nombre" validate:"required,min=2,max=50"`
	Symbol           string           `json:"simbolo" validate:"required,min=1,max=10"`
	Description      *string          `json:"descripcion"`
	Category         string           `json:"tipo" validate:"required,oneof=peso volumen longitud unidad"`
	ConversionFactor *decimal.Decimal `json:"factor_conversion"`
	Status           string           `json:"estado" validate:"omitempty,oneof=activo inactivo"`
}

// UpdateUnitOfMeasureRequest reemplaza la unidad completa: los campos omitidos
// vuelven a su valor por defecto (o a null si son opcionales).
type UpdateUnitOfMeasureRequest = CreateUnitOfMeasureRequest

// UnitOfMeasureResponse salida de una unidad de medida.
type UnitOfMeasureResponse struct {
	ID               string          `json:"id"`
	Name             string          `json:"nombre"`
	Symbol           string          `json:"simbolo"`
	Description      *string         `json:"descripcion"`
	Category         string          `json:"tipo"`
	ConversionFactor decimal.Decimal `json:"factor_conversion"`
	Status           string          `json:"estado"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// UnitOfMeasureListResponse lista paginada de unidades de medida.
type UnitOfMeasureListResponse struct {
	Items []UnitOfMeasureResponse `json:"items"`
	PageResponse
}

// UnitSummaryResponse resumen de la unidad embebido en productos.
type UnitSummaryResponse struct {
	ID     string `json:"id"`
	Name   string `json:"nombre"`
	Symbol string `json:"simbolo"`
}
