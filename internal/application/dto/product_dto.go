package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Code            string           `json:"codigo" validate:"required,min=2,max=50"`
	Name            string           `json:"nombre" validate:"required,min=2,max=150"`
	Description     *string          `json:"descripcion"`
	Category        *string          `json:"categoria" validate:"omitempty,max=100"`
	Brand           *string          `json:"marca" validate:"omitempty,max=100"`
	UnitPrice       *decimal.Decimal `json:"precio_unitario"`
	UnitOfMeasureID *string          `json:"medida_id" validate:"omitempty,uuid"`
	StockMin        *int             `json:"stock_minimo" validate:"omitempty,min=0,max=2147483647"`
	StockMax        *int             `json:"stock_maximo" validate:"omitempty,min=0,max=2147483647"`
	Status          string           `json:"estado" validate:"omitempty,oneof=activo inactivo descontinuado"`
}

// UpdateProductRequest reemplaza el producto completo (el código puede cambiar, sigue siendo único).
type UpdateProductRequest = CreateProductRequest

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID              string               `json:"id"`
	Code            string               `json:"codigo"`
	Name            string               `json:"nombre"`
	Description     *string              `json:"descripcion"`
	Category        *string              `json:"categoria"`
	Brand           *string              `json:"marca"`
	UnitPrice       *decimal.Decimal     `json:"precio_unitario"`
	UnitOfMeasureID *string              `json:"medida_id"`
	Unit            *UnitSummaryResponse `json:"medida,omitempty"`
	StockMin        int                  `json:"stock_minimo"`
	StockMax        int                  `json:"stock_maximo"`
	Status          string               `json:"estado"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	PageResponse
}

// ProductSummaryResponse resumen del producto embebido en stock.
type ProductSummaryResponse struct {
	ID       string  `json:"id"`
	Code     string  `json:"codigo"`
	Name     string  `json:"nombre"`
	Category *string `json:"categoria"`
	Brand    *string `json:"marca"`
	StockMin int     `json:"stock_minimo"`
	Status   string  `json:"estado"`
}
