package repository

import (
	"context"

	"github.com/lgalvez/almacen-api/internal/domain/entity"
)

// UnitOfMeasureRepository define el puerto de persistencia para unidades de medida (DIP).
// GetByID devuelve (nil, nil) si no existe; Update y Delete devuelven domain.ErrNotFound.
// Update completa CreatedAt en la entidad recibida.
type UnitOfMeasureRepository interface {
	Create(ctx context.Context, unit *entity.UnitOfMeasure) error
	GetByID(ctx context.Context, id string) (*entity.UnitOfMeasure, error)
	List(ctx context.Context, f UnitFilter) ([]*entity.UnitOfMeasure, int, error)
	Update(ctx context.Context, unit *entity.UnitOfMeasure) error
	Delete(ctx context.Context, id string) error
}
