package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/lgalvez/almacen-api/internal/domain"
	"github.com/lgalvez/almacen-api/internal/domain/entity"
	"github.com/lgalvez/almacen-api/internal/domain/repository"
)

var _ repository.UnitOfMeasureRepository = (*UnitOfMeasureRepo)(nil)

const unitColumns = `id, nombre, simbolo, descripcion, tipo, factor_conversion, estado, created_at, updated_at`

// UnitOfMeasureRepo implementación del puerto UnitOfMeasureRepository sobre PostgreSQL.
type UnitOfMeasureRepo struct {
	q Querier
}

// NewUnitOfMeasureRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUnitOfMeasureRepository(q Querier) *UnitOfMeasureRepo {
	return &UnitOfMeasureRepo{q: q}
}

func scanUnit(row pgx.Row) (*entity.UnitOfMeasure, error) {
	var u entity.UnitOfMeasure
	err := row.Scan(&u.ID, &u.Name, &u.Symbol, &u.Description, &u.Category, &u.ConversionFactor,
		&u.Status, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create persiste una nueva unidad.
func (r *UnitOfMeasureRepo) Create(ctx context.Context, u *entity.UnitOfMeasure) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO medidas (`+unitColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		u.ID, u.Name, u.Symbol, u.Description, u.Category, u.ConversionFactor, u.Status, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		return translateWriteError(err, "insert medida")
	}
	return nil
}

// GetByID obtiene una unidad por ID; (nil, nil) si no existe.
func (r *UnitOfMeasureRepo) GetByID(ctx context.Context, id string) (*entity.UnitOfMeasure, error) {
	u, err := scanUnit(r.q.QueryRow(ctx, `SELECT `+unitColumns+` FROM medidas WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, translateReadError(err, "get medida")
	}
	return u, nil
}

// List lista unidades ordenadas por nombre.
func (r *UnitOfMeasureRepo) List(ctx context.Context, f repository.UnitFilter) ([]*entity.UnitOfMeasure, int, error) {
	var b filterBuilder
	b.search(f.Search, "nombre", "simbolo", "descripcion")
	if f.Category != "" {
		b.add("tipo = $%d", f.Category)
	}
	if f.Status != "" {
		b.add("estado = $%d", f.Status)
	}

	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM medidas`+b.where(), b.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count medidas: %w", err)
	}

	limit, args := b.page(f.Limit, f.Offset)
	rows, err := r.q.Query(ctx, `SELECT `+unitColumns+` FROM medidas`+b.where()+` ORDER BY nombre ASC, id ASC`+limit, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list medidas: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.UnitOfMeasure, 0)
	for rows.Next() {
		u, err := scanUnit(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan medida: %w", err)
		}
		list = append(list, u)
	}
	return list, total, rows.Err()
}

// Update reemplaza la unidad y completa CreatedAt desde la fila.
func (r *UnitOfMeasureRepo) Update(ctx context.Context, u *entity.UnitOfMeasure) error {
	err := r.q.QueryRow(ctx, `
		UPDATE medidas
		SET nombre = $2, simbolo = $3, descripcion = $4, tipo = $5, factor_conversion = $6, estado = $7, updated_at = $8
		WHERE id = $1
		RETURNING created_at`,
		u.ID, u.Name, u.Symbol, u.Description, u.Category, u.ConversionFactor, u.Status, u.UpdatedAt,
	).Scan(&u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return translateWriteError(err, "update medida")
	}
	return nil
}

// Delete elimina la unidad; los productos que la usan quedan con medida_id NULL.
func (r *UnitOfMeasureRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM medidas WHERE id = $1`, id)
	if err != nil {
		return translateDeleteError(err, "delete medida", "la unidad de medida está en uso")
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
