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

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productSelect = `
	SELECT p.id, p.codigo, p.nombre, p.descripcion, p.categoria, p.marca, p.precio_unitario,
	       p.medida_id, p.stock_minimo, p.stock_maximo, p.estado, p.created_at, p.updated_at,
	       m.id, m.nombre, m.simbolo
	FROM productos p
	LEFT JOIN medidas m ON m.id = p.medida_id`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var unitID, unitName, unitSymbol *string
	err := row.Scan(&p.ID, &p.Code, &p.Name, &p.Description, &p.Category, &p.Brand, &p.UnitPrice,
		&p.UnitOfMeasureID, &p.StockMin, &p.StockMax, &p.Status, &p.CreatedAt, &p.UpdatedAt,
		&unitID, &unitName, &unitSymbol)
	if err != nil {
		return nil, err
	}
	if unitID != nil {
		p.Unit = &entity.UnitSummary{ID: *unitID}
		if unitName != nil {
			p.Unit.Name = *unitName
		}
		if unitSymbol != nil {
			p.Unit.Symbol = *unitSymbol
		}
	}
	return &p, nil
}

// Create persiste un nuevo producto. Código repetido o medida inexistente → ValidationError.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO productos (id, codigo, nombre, descripcion, categoria, marca, precio_unitario, medida_id,
		                       stock_minimo, stock_maximo, estado, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		p.ID, p.Code, p.Name, p.Description, p.Category, p.Brand, p.UnitPrice, p.UnitOfMeasureID,
		p.StockMin, p.StockMax, p.Status, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return translateWriteError(err, "insert producto")
	}
	return nil
}

// GetByID obtiene un producto con su unidad de medida; (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, productSelect+` WHERE p.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, translateReadError(err, "get producto")
	}
	return p, nil
}

// GetByCode obtiene un producto por su código; (nil, nil) si no existe.
func (r *ProductRepo) GetByCode(ctx context.Context, code string) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, productSelect+` WHERE p.codigo = $1`, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto by codigo: %w", err)
	}
	return p, nil
}

// List lista productos ordenados por nombre.
func (r *ProductRepo) List(ctx context.Context, f repository.ProductFilter) ([]*entity.Product, int, error) {
	var b filterBuilder
	b.search(f.Search, "p.codigo", "p.nombre", "p.descripcion", "p.marca")
	if f.Category != "" {
		b.add("p.categoria = $%d", f.Category)
	}
	if f.Status != "" {
		b.add("p.estado = $%d", f.Status)
	}

	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM productos p`+b.where(), b.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count productos: %w", err)
	}

	limit, args := b.page(f.Limit, f.Offset)
	rows, err := r.q.Query(ctx, productSelect+b.where()+` ORDER BY p.nombre ASC, p.id ASC`+limit, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, p)
	}
	return list, total, rows.Err()
}

// Update reemplaza el producto (el código puede cambiar) y completa CreatedAt y Unit.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	var unitID, unitName, unitSymbol *string
	err := r.q.QueryRow(ctx, `
		WITH upd AS (
			UPDATE productos
			SET codigo = $2, nombre = $3, descripcion = $4, categoria = $5, marca = $6, precio_unitario = $7,
			    medida_id = $8, stock_minimo = $9, stock_maximo = $10, estado = $11, updated_at = $12
			WHERE id = $1
			RETURNING created_at, medida_id
		)
		SELECT upd.created_at, m.id, m.nombre, m.simbolo
		FROM upd LEFT JOIN medidas m ON m.id = upd.medida_id`,
		p.ID, p.Code, p.Name, p.Description, p.Category, p.Brand, p.UnitPrice,
		p.UnitOfMeasureID, p.StockMin, p.StockMax, p.Status, p.UpdatedAt,
	).Scan(&p.CreatedAt, &unitID, &unitName, &unitSymbol)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return translateWriteError(err, "update producto")
	}
	p.Unit = nil
	if unitID != nil && unitName != nil && unitSymbol != nil {
		p.Unit = &entity.UnitSummary{ID: *unitID, Name: *unitName, Symbol: *unitSymbol}
	}
	return nil
}

// Delete elimina un producto. Con stock registrado la FK lo impide.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM productos WHERE id = $1`, id)
	if err != nil {
		return translateDeleteError(err, "delete producto", "el producto tiene registros de stock; elimínelos primero")
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
