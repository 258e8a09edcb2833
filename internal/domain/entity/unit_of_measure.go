package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de unidad de medida.
const (
	UnitCategoryWeight = "peso"
	UnitCategoryVolume = "volumen"
	UnitCategoryLength = "longitud"
	UnitCategoryCount  = "unidad"
)

// Estados de una unidad de medida.
const (
	UnitStatusActive   = "activo"
	UnitStatusInactive = "inactivo"
)

// UnitOfMeasure representa una unidad de medida (kg, litro, unidad...) con su factor de conversión.
type UnitOfMeasure struct {
	ID               string
	Name             string // único
	Symbol           string // único
	Description      *string
	Category         string
	ConversionFactor decimal.Decimal // > 0, por defecto 1
	Status           string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// UnitSummary vista reducida de la unidad para joins (producto → medida).
type UnitSummary struct {
	ID     string
	Name   string
	Symbol string
}
