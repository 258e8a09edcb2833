package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lgalvez/almacen-api/internal/application/dto"
	"github.com/lgalvez/almacen-api/internal/domain"
	"github.com/lgalvez/almacen-api/internal/domain/entity"
	"github.com/lgalvez/almacen-api/internal/domain/repository"
)

// MsgDuplicateProductCode mensaje para código de producto repetido.
const MsgDuplicateProductCode = "ya existe un producto con este código"

// ProductUseCase casos de uso CRUD para productos.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un nuevo producto. El código es único; la medida, si se indica, debe existir.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	product, err := buildProduct(in)
	if err != nil {
		return nil, err
	}
	if err := uc.ensureCodeFree(ctx, product.Code, ""); err != nil {
		return nil, err
	}
	now := time.Now()
	product.ID = uuid.New().String()
	product.CreatedAt = now
	product.UpdatedAt = now
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return uc.withUnit(ctx, product)
}

// GetByID obtiene un producto por ID con su unidad de medida.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// GetByCode obtiene un producto por su código.
func (uc *ProductUseCase) GetByCode(ctx context.Context, code string) (*dto.ProductResponse, error) {
	code = dto.CleanString(code)
	if code == "" {
		return nil, domain.ErrNotFound
	}
	product, err := uc.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// List lista productos (búsqueda por código, nombre, descripción o marca).
func (uc *ProductUseCase) List(ctx context.Context, q dto.ProductListQuery) (*dto.ProductListResponse, error) {
	q.Normalize()
	list, total, err := uc.repo.List(ctx, repository.ProductFilter{
		Search:   dto.CleanString(q.Search),
		Category: dto.CleanString(q.Category),
		Status:   q.Status,
		Page:     toPage(q.PageRequest),
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, PageResponse: dto.NewPageResponse(q.PageRequest, total)}, nil
}

// ListByCategory lista los productos de una categoría.
func (uc *ProductUseCase) ListByCategory(ctx context.Context, category string, page dto.PageRequest) (*dto.ProductListResponse, error) {
	return uc.List(ctx, dto.ProductListQuery{Category: category, PageRequest: page})
}

// ListActive lista los productos activos.
func (uc *ProductUseCase) ListActive(ctx context.Context, page dto.PageRequest) (*dto.ProductListResponse, error) {
	return uc.List(ctx, dto.ProductListQuery{Status: entity.ProductStatusActive, PageRequest: page})
}

// Update reemplaza el producto completo. El código puede cambiar mientras siga siendo único.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	product, err := buildProduct(in)
	if err != nil {
		return nil, err
	}
	current, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.ensureCodeFree(ctx, product.Code, id); err != nil {
		return nil, err
	}
	product.ID = id
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return uc.withUnit(ctx, product)
}

// Delete elimina un producto (rechazado por la base si tiene stock registrado).
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	if err := checkID(id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

// withUnit completa la respuesta de una escritura con el resumen de la medida,
// igual que la devuelve GetByID.
func (uc *ProductUseCase) withUnit(ctx context.Context, product *entity.Product) (*dto.ProductResponse, error) {
	if product.UnitOfMeasureID != nil && product.Unit == nil {
		saved, err := uc.repo.GetByID(ctx, product.ID)
		if err != nil {
			return nil, err
		}
		if saved != nil {
			return toProductResponse(saved), nil
		}
	}
	return toProductResponse(product), nil
}

// ensureCodeFree da un mensaje claro antes de insertar; el índice único cubre la carrera.
func (uc *ProductUseCase) ensureCodeFree(ctx context.Context, code, selfID string) error {
	existing, err := uc.repo.GetByCode(ctx, code)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != selfID {
		return domain.NewDuplicateError("codigo", MsgDuplicateProductCode)
	}
	return nil
}

func buildProduct(in dto.CreateProductRequest) (*entity.Product, error) {
	in.Code = dto.CleanString(in.Code)
	in.Name = dto.CleanString(in.Name)
	in.Description = dto.CleanOptional(in.Description)
	in.Category = dto.CleanOptional(in.Category)
	in.Brand = dto.CleanOptional(in.Brand)
	in.UnitOfMeasureID = dto.CleanOptional(in.UnitOfMeasureID)
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if in.UnitPrice != nil {
		if in.UnitPrice.IsNegative() {
			return nil, domain.NewValidationError("precio_unitario", "debe ser mayor o igual a 0")
		}
		if err := dto.CheckDecimal("precio_unitario", *in.UnitPrice, dto.PricePrecision, dto.PriceScale); err != nil {
			return nil, err
		}
	}
	return &entity.Product{
		Code:            in.Code,
		Name:            in.Name,
		Description:     in.Description,
		Category:        in.Category,
		Brand:           in.Brand,
		UnitPrice:       in.UnitPrice,
		UnitOfMeasureID: in.UnitOfMeasureID,
		StockMin:        intOr(in.StockMin, entity.DefaultStockMin),
		StockMax:        intOr(in.StockMax, entity.DefaultStockMax),
		Status:          stringOr(in.Status, entity.ProductStatusActive),
	}, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	out := &dto.ProductResponse{
		ID:              p.ID,
		Code:            p.Code,
		Name:            p.Name,
		Description:     p.Description,
		Category:        p.Category,
		Brand:           p.Brand,
		UnitPrice:       p.UnitPrice,
		UnitOfMeasureID: p.UnitOfMeasureID,
		StockMin:        p.StockMin,
		StockMax:        p.StockMax,
		Status:          p.Status,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
	if p.Unit != nil {
		out.Unit = &dto.UnitSummaryResponse{ID: p.Unit.ID, Name: p.Unit.Name, Symbol: p.Unit.Symbol}
	}
	return out
}

func toProductSummaryResponse(p entity.ProductSummary) *dto.ProductSummaryResponse {
	return &dto.ProductSummaryResponse{
		ID:       p.ID,
		Code:     p.Code,
		Name:     p.Name,
		Category: p.Category,
		Brand:    p.Brand,
		StockMin: p.StockMin,
		Status:   p.Status,
	}
}
