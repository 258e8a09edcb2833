package repository

import (
	"context"

	"github.com/lgalvez/almacen-api/internal/domain/entity"
)

// PrimaryWarehouseRepository define el puerto de persistencia para almacenes principales (DIP).
type PrimaryWarehouseRepository interface {
	Create(ctx context.Context, w *entity.PrimaryWarehouse) error
	GetByID(ctx context.Context, id string) (*entity.PrimaryWarehouse, error)
	List(ctx context.Context, f PrimaryWarehouseFilter) ([]*entity.PrimaryWarehouse, int, error)
	Update(ctx context.Context, w *entity.PrimaryWarehouse) error
	Delete(ctx context.Context, id string) error
}

// SecondaryWarehouseRepository define el puerto de persistencia para almacenes secundarios.
// GetByID, List y Update resuelven el principal (Parent) cuando existe.
type SecondaryWarehouseRepository interface {
	Create(ctx context.Context, w *entity.SecondaryWarehouse) error
	GetByID(ctx context.Context, id string) (*entity.SecondaryWarehouse, error)
	List(ctx context.Context, f SecondaryWarehouseFilter) ([]*entity.SecondaryWarehouse, int, error)
	Update(ctx context.Context, w *entity.SecondaryWarehouse) error
	Delete(ctx context.Context, id string) error
}
