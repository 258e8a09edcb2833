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

var _ repository.StockRepository = (*StockRepo)(nil)

const stockSelect = `
	SELECT s.id, s.producto_id, s.almacen_principal_id, s.almacen_secundario_id, s.cantidad_disponible,
	       s.cantidad_reservada, s.ubicacion, s.fecha_vencimiento, s.lote, s.estado, s.created_at, s.updated_at,
	       p.id, p.codigo, p.nombre, p.categoria, p.marca, p.stock_minimo, p.estado,
	       ap.id, ap.nombre, ap.direccion, ap.estado,
	       sec.id, sec.nombre, sec.direccion, sec.estado
	FROM stock s
	JOIN productos p ON p.id = s.producto_id
	LEFT JOIN almacenes_principal ap ON ap.id = s.almacen_principal_id
	LEFT JOIN almacenes_secundario sec ON sec.id = s.almacen_secundario_id`

// StockRepo adaptador PostgreSQL del libro de stock.
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

func scanStockView(row pgx.Row) (*entity.StockView, error) {
	var v entity.StockView
	var primary, secondary nullableSummary
	dest := []any{
		&v.ID, &v.ProductID, &v.PrimaryWarehouseID, &v.SecondaryWarehouseID, &v.AvailableQuantity,
		&v.ReservedQuantity, &v.Location, &v.ExpiryDate, &v.Lot, &v.Status, &v.CreatedAt, &v.UpdatedAt,
		&v.Product.ID, &v.Product.Code, &v.Product.Name, &v.Product.Category, &v.Product.Brand,
		&v.Product.StockMin, &v.Product.Status,
	}
	dest = append(dest, primary.dest()...)
	dest = append(dest, secondary.dest()...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	v.PrimaryWarehouse = primary.summary()
	v.SecondaryWarehouse = secondary.summary()
	return &v, nil
}

func collectStockViews(rows pgx.Rows) ([]*entity.StockView, error) {
	defer rows.Close()
	list := make([]*entity.StockView, 0)
	for rows.Next() {
		v, err := scanStockView(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}

// Create inserta el registro. El CHECK ck_stock_almacen_unico se evalúa en esta misma
// sentencia, así que no hay ventana entre validar y guardar.
func (r *StockRepo) Create(ctx context.Context, s *entity.Stock) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO stock (id, producto_id, almacen_principal_id, almacen_secundario_id, cantidad_disponible,
		                   cantidad_reservada, ubicacion, fecha_vencimiento, lote, estado, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		s.ID, s.ProductID, s.PrimaryWarehouseID, s.SecondaryWarehouseID, s.AvailableQuantity,
		s.ReservedQuantity, s.Location, s.ExpiryDate, s.Lot, s.Status, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return translateWriteError(err, "insert stock")
	}
	return nil
}

// GetByID obtiene un registro con producto y almacén; (nil, nil) si no existe.
func (r *StockRepo) GetByID(ctx context.Context, id string) (*entity.StockView, error) {
	v, err := scanStockView(r.q.QueryRow(ctx, stockSelect+` WHERE s.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, translateReadError(err, "get stock")
	}
	return v, nil
}

// List lista stock del más reciente al más antiguo.
func (r *StockRepo) List(ctx context.Context, f repository.StockFilter) ([]*entity.StockView, int, error) {
	var b filterBuilder
	b.search(f.Search, "s.ubicacion", "s.lote")
	if f.Status != "" {
		b.add("s.estado = $%d", f.Status)
	}
	if f.ProductID != "" {
		b.add("s.producto_id = $%d", f.ProductID)
	}
	if f.PrimaryWarehouseID != "" {
		b.add("s.almacen_principal_id = $%d", f.PrimaryWarehouseID)
	}
	if f.SecondaryWarehouseID != "" {
		b.add("s.almacen_secundario_id = $%d", f.SecondaryWarehouseID)
	}

	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM stock s`+b.where(), b.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count stock: %w", err)
	}

	limit, args := b.page(f.Limit, f.Offset)
	rows, err := r.q.Query(ctx, stockSelect+b.where()+` ORDER BY s.created_at DESC, s.id ASC`+limit, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list stock: %w", err)
	}
	list, err := collectStockViews(rows)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// Update reemplaza cantidades, ubicación, vencimiento, lote y estado. Devuelve en la
// entidad el producto, los almacenes y CreatedAt de la fila.
func (r *StockRepo) Update(ctx context.Context, s *entity.Stock) error {
	err := r.q.QueryRow(ctx, `
		UPDATE stock
		SET cantidad_disponible = $2, cantidad_reservada = $3, ubicacion = $4, fecha_vencimiento = $5,
		    lote = $6, estado = $7, updated_at = $8
		WHERE id = $1
		RETURNING producto_id, almacen_principal_id, almacen_secundario_id, created_at`,
		s.ID, s.AvailableQuantity, s.ReservedQuantity, s.Location, s.ExpiryDate, s.Lot, s.Status, s.UpdatedAt,
	).Scan(&s.ProductID, &s.PrimaryWarehouseID, &s.SecondaryWarehouseID, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return translateWriteError(err, "update stock")
	}
	return nil
}

// Delete elimina el registro.
func (r *StockRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM stock WHERE id = $1`, id)
	if err != nil {
		return translateDeleteError(err, "delete stock", "el registro de stock está en uso")
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListLowStockCandidates stock de productos activos con mínimo configurado que ya está en
// o por debajo de ese mínimo. El orden final lo decide quien llama.
func (r *StockRepo) ListLowStockCandidates(ctx context.Context, f repository.LowStockFilter) ([]*entity.StockView, error) {
	var b filterBuilder
	b.add("p.estado = $%d", entity.ProductStatusActive)
	b.conds = append(b.conds, "p.stock_minimo > 0", "s.cantidad_disponible <= p.stock_minimo")
	if f.PrimaryWarehouseID != "" {
		b.add("s.almacen_principal_id = $%d", f.PrimaryWarehouseID)
	}
	if f.SecondaryWarehouseID != "" {
		b.add("s.almacen_secundario_id = $%d", f.SecondaryWarehouseID)
	}
	rows, err := r.q.Query(ctx, stockSelect+b.where()+` ORDER BY s.cantidad_disponible ASC, s.created_at ASC, s.id ASC`, b.args...)
	if err != nil {
		return nil, fmt.Errorf("list stock bajo: %w", err)
	}
	return collectStockViews(rows)
}
