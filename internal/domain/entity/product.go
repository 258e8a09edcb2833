package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un producto.
const (
	ProductStatusActive       = "activo"
	ProductStatusInactive     = "inactivo"
	ProductStatusDiscontinued = "descontinuado"
)

// Umbrales por defecto de stock de un producto.
const (
	DefaultStockMin = 0
	DefaultStockMax = 1000
)

// Product representa un producto almacenable. StockMin/StockMax son los umbrales
// usados por la detección de stock bajo.
type Product struct {
	ID              string
	Code            string // único
	Name            string
	Description     *string
	Category        *string
	Brand           *string
	UnitPrice       *decimal.Decimal
	UnitOfMeasureID *string
	StockMin        int
	StockMax        int
	Status          string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Unit se llena sólo en lecturas con join a medidas.
	Unit *UnitSummary
}

// ProductSummary vista reducida del producto para joins desde stock.
type ProductSummary struct {
	ID       string
	Code     string
	Name     string
	Category *string
	Brand    *string
	StockMin int
	Status   string
}
