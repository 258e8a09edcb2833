package repository

import (
	"context"

	"github.com/lgalvez/almacen-api/internal/domain/entity"
)

// StockRepository define el puerto para los registros de stock.
// Create debe rechazar, en la misma sentencia que inserta, un stock sin almacén o con dos.
// Update no modifica producto ni almacenes: los devuelve (junto a CreatedAt) en la entidad.
type StockRepository interface {
	Create(ctx context.Context, stock *entity.Stock) error
	GetByID(ctx context.Context, id string) (*entity.StockView, error)
	List(ctx context.Context, f StockFilter) ([]*entity.StockView, int, error)
	Update(ctx context.Context, stock *entity.Stock) error
	Delete(ctx context.Context, id string) error
	// ListLowStockCandidates devuelve el stock de productos activos con stock mínimo > 0
	// (puede descartar ya los registros por encima del mínimo).
	ListLowStockCandidates(ctx context.Context, f LowStockFilter) ([]*entity.StockView, error)
}
