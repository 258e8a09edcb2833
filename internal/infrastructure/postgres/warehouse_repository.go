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

var (
	_ repository.PrimaryWarehouseRepository   = (*PrimaryWarehouseRepo)(nil)
	_ repository.SecondaryWarehouseRepository = (*SecondaryWarehouseRepo)(nil)
)

const warehouseColumns = `id, nombre, direccion, telefono, email, responsable, capacidad_total, capacidad_disponible, estado, created_at, updated_at`

const msgWarehouseInUse = "el almacén tiene registros de stock; elimínelos primero"

func warehouseInfoDest(w *entity.WarehouseInfo) []any {
	return []any{&w.Name, &w.Address, &w.Phone, &w.Email, &w.Responsible, &w.TotalCapacity, &w.AvailableCapacity, &w.Status}
}

func warehouseInfoArgs(w *entity.WarehouseInfo) []any {
	return []any{w.Name, w.Address, w.Phone, w.Email, w.Responsible, w.TotalCapacity, w.AvailableCapacity, w.Status}
}

// ── Almacén principal ────────────────────────────────────────────────────────

// PrimaryWarehouseRepo adaptador PostgreSQL de almacenes_principal.
type PrimaryWarehouseRepo struct {
	q Querier
}

// NewPrimaryWarehouseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPrimaryWarehouseRepository(q Querier) *PrimaryWarehouseRepo {
	return &PrimaryWarehouseRepo{q: q}
}

func scanPrimary(row pgx.Row) (*entity.PrimaryWarehouse, error) {
	var w entity.PrimaryWarehouse
	dest := append([]any{&w.ID}, warehouseInfoDest(&w.WarehouseInfo)...)
	dest = append(dest, &w.CreatedAt, &w.UpdatedAt)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return &w, nil
}

// Create persiste un almacén principal.
func (r *PrimaryWarehouseRepo) Create(ctx context.Context, w *entity.PrimaryWarehouse) error {
	args := append([]any{w.ID}, warehouseInfoArgs(&w.WarehouseInfo)...)
	args = append(args, w.CreatedAt, w.UpdatedAt)
	_, err := r.q.Exec(ctx, `
		INSERT INTO almacenes_principal (`+warehouseColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`, args...)
	if err != nil {
		return translateWriteError(err, "insert almacen principal")
	}
	return nil
}

// GetByID obtiene un almacén principal; (nil, nil) si no existe.
func (r *PrimaryWarehouseRepo) GetByID(ctx context.Context, id string) (*entity.PrimaryWarehouse, error) {
	w, err := scanPrimary(r.q.QueryRow(ctx, `SELECT `+warehouseColumns+` FROM almacenes_principal WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, translateReadError(err, "get almacen principal")
	}
	return w, nil
}

// List lista almacenes principales ordenados por nombre.
func (r *PrimaryWarehouseRepo) List(ctx context.Context, f repository.PrimaryWarehouseFilter) ([]*entity.PrimaryWarehouse, int, error) {
	var b filterBuilder
	b.search(f.Search, "nombre", "direccion", "responsable")
	if f.Status != "" {
		b.add("estado = $%d", f.Status)
	}

	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM almacenes_principal`+b.where(), b.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count almacenes principal: %w", err)
	}

	limit, args := b.page(f.Limit, f.Offset)
	rows, err := r.q.Query(ctx,
		`SELECT `+warehouseColumns+` FROM almacenes_principal`+b.where()+` ORDER BY nombre ASC, id ASC`+limit, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list almacenes principal: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.PrimaryWarehouse, 0)
	for rows.Next() {
		w, err := scanPrimary(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan almacen principal: %w", err)
		}
		list = append(list, w)
	}
	return list, total, rows.Err()
}

// Update reemplaza el almacén y completa CreatedAt.
func (r *PrimaryWarehouseRepo) Update(ctx context.Context, w *entity.PrimaryWarehouse) error {
	args := append([]any{w.ID}, warehouseInfoArgs(&w.WarehouseInfo)...)
	args = append(args, w.UpdatedAt)
	err := r.q.QueryRow(ctx, `
		UPDATE almacenes_principal
		SET nombre = $2, direccion = $3, telefono = $4, email = $5, responsable = $6,
		    capacidad_total = $7, capacidad_disponible = $8, estado = $9, updated_at = $10
		WHERE id = $1
		RETURNING created_at`, args...).Scan(&w.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return translateWriteError(err, "update almacen principal")
	}
	return nil
}

// Delete elimina el almacén. Sus secundarios quedan huérfanos (ON DELETE SET NULL).
func (r *PrimaryWarehouseRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM almacenes_principal WHERE id = $1`, id)
	if err != nil {
		return translateDeleteError(err, "delete almacen principal", msgWarehouseInUse)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ── Almacén secundario ───────────────────────────────────────────────────────

// SecondaryWarehouseRepo adaptador PostgreSQL de almacenes_secundario.
type SecondaryWarehouseRepo struct {
	q Querier
}

// NewSecondaryWarehouseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSecondaryWarehouseRepository(q Querier) *SecondaryWarehouseRepo {
	return &SecondaryWarehouseRepo{q: q}
}

const secondarySelect = `
	SELECT s.id, s.nombre, s.direccion, s.telefono, s.email, s.responsable, s.capacidad_total,
	       s.capacidad_disponible, s.estado, s.created_at, s.updated_at, s.almacen_principal_id,
	       p.id, p.nombre, p.direccion, p.estado
	FROM almacenes_secundario s
	LEFT JOIN almacenes_principal p ON p.id = s.almacen_principal_id`

// nullableSummary destino de escaneo para un LEFT JOIN opcional.
type nullableSummary struct {
	id, name, address, status *string
}

func (n *nullableSummary) dest() []any {
	return []any{&n.id, &n.name, &n.address, &n.status}
}

func (n *nullableSummary) summary() *entity.WarehouseSummary {
	if n.id == nil {
		return nil
	}
	s := &entity.WarehouseSummary{ID: *n.id, Address: n.address}
	if n.name != nil {
		s.Name = *n.name
	}
	if n.status != nil {
		s.Status = *n.status
	}
	return s
}

func scanSecondary(row pgx.Row) (*entity.SecondaryWarehouse, error) {
	var w entity.SecondaryWarehouse
	var parent nullableSummary
	dest := append([]any{&w.ID}, warehouseInfoDest(&w.WarehouseInfo)...)
	dest = append(dest, &w.CreatedAt, &w.UpdatedAt, &w.PrimaryWarehouseID)
	dest = append(dest, parent.dest()...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	w.Parent = parent.summary()
	return &w, nil
}

// Create persiste un almacén secundario. Un principal inexistente lo rechaza la FK.
func (r *SecondaryWarehouseRepo) Create(ctx context.Context, w *entity.SecondaryWarehouse) error {
	args := append([]any{w.ID}, warehouseInfoArgs(&w.WarehouseInfo)...)
	args = append(args, w.CreatedAt, w.UpdatedAt, w.PrimaryWarehouseID)
	_, err := r.q.Exec(ctx, `
		INSERT INTO almacenes_secundario (`+warehouseColumns+`, almacen_principal_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`, args...)
	if err != nil {
		return translateWriteError(err, "insert almacen secundario")
	}
	return nil
}

// GetByID obtiene un almacén secundario con su principal; (nil, nil) si no existe.
func (r *SecondaryWarehouseRepo) GetByID(ctx context.Context, id string) (*entity.SecondaryWarehouse, error) {
	w, err := scanSecondary(r.q.QueryRow(ctx, secondarySelect+` WHERE s.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, translateReadError(err, "get almacen secundario")
	}
	return w, nil
}

// List lista almacenes secundarios ordenados por nombre.
func (r *SecondaryWarehouseRepo) List(ctx context.Context, f repository.SecondaryWarehouseFilter) ([]*entity.SecondaryWarehouse, int, error) {
	var b filterBuilder
	b.search(f.Search, "s.nombre", "s.direccion", "s.responsable")
	if f.Status != "" {
		b.add("s.estado = $%d", f.Status)
	}
	if f.PrimaryWarehouseID != "" {
		b.add("s.almacen_principal_id = $%d", f.PrimaryWarehouseID)
	}

	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM almacenes_secundario s`+b.where(), b.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count almacenes secundario: %w", err)
	}

	limit, args := b.page(f.Limit, f.Offset)
	rows, err := r.q.Query(ctx, secondarySelect+b.where()+` ORDER BY s.nombre ASC, s.id ASC`+limit, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list almacenes secundario: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.SecondaryWarehouse, 0)
	for rows.Next() {
		w, err := scanSecondary(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan almacen secundario: %w", err)
		}
		list = append(list, w)
	}
	return list, total, rows.Err()
}

// Update reemplaza el almacén (incluido el principal) y completa CreatedAt y Parent.
func (r *SecondaryWarehouseRepo) Update(ctx context.Context, w *entity.SecondaryWarehouse) error {
	args := append([]any{w.ID}, warehouseInfoArgs(&w.WarehouseInfo)...)
	args = append(args, w.UpdatedAt, w.PrimaryWarehouseID)
	var parent nullableSummary
	dest := append([]any{&w.CreatedAt}, parent.dest()...)
	err := r.q.QueryRow(ctx, `
		WITH upd AS (
			UPDATE almacenes_secundario
			SET nombre = $2, direccion = $3, telefono = $4, email = $5, responsable = $6,
			    capacidad_total = $7, capacidad_disponible = $8, estado = $9, updated_at = $10,
			    almacen_principal_id = $11
			WHERE id = $1
			RETURNING created_at, almacen_principal_id
		)
		SELECT upd.created_at, p.id, p.nombre, p.direccion, p.estado
		FROM upd LEFT JOIN almacenes_principal p ON p.id = upd.almacen_principal_id`, args...).Scan(dest...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return translateWriteError(err, "update almacen secundario")
	}
	w.Parent = parent.summary()
	return nil
}

// Delete elimina el almacén secundario (rechazado si aún tiene stock).
func (r *SecondaryWarehouseRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM almacenes_secundario WHERE id = $1`, id)
	if err != nil {
		return translateDeleteError(err, "delete almacen secundario", msgWarehouseInUse)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
