package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lgalvez/almacen-api/internal/application/dto"
	"github.com/lgalvez/almacen-api/internal/domain"
	"github.com/lgalvez/almacen-api/internal/domain/entity"
	"github.com/lgalvez/almacen-api/internal/domain/inventory"
	"github.com/lgalvez/almacen-api/internal/domain/repository"
)

// StockUseCase casos de uso del libro de stock.
type StockUseCase struct {
	repo repository.StockRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(repo repository.StockRepository) *StockUseCase {
	return &StockUseCase{repo: repo}
}

// Create registra stock de un producto en un único almacén. Producto y almacén
// inexistentes los rechaza la base como ValidationError.
func (uc *StockUseCase) Create(ctx context.Context, in dto.CreateStockRequest) (*dto.StockResponse, error) {
	in.ProductID = dto.CleanString(in.ProductID)
	in.PrimaryWarehouseID = dto.CleanOptional(in.PrimaryWarehouseID)
	in.SecondaryWarehouseID = dto.CleanOptional(in.SecondaryWarehouseID)
	in.Location = dto.CleanOptional(in.Location)
	in.Lot = dto.CleanOptional(in.Lot)
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	now := time.Now()
	s := &entity.Stock{
		ID:                   uuid.New().String(),
		ProductID:            in.ProductID,
		PrimaryWarehouseID:   in.PrimaryWarehouseID,
		SecondaryWarehouseID: in.SecondaryWarehouseID,
		AvailableQuantity:    intOr(in.AvailableQuantity, 0),
		ReservedQuantity:     intOr(in.ReservedQuantity, 0),
		Location:             in.Location,
		ExpiryDate:           in.ExpiryDate.TimePtr(),
		Lot:                  in.Lot,
		Status:               entity.StockStatusAvailable,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if err := inventory.ValidateWarehouseRef(s); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	return toStockResponse(s), nil
}

// GetByID obtiene un registro de stock con producto y almacén.
func (uc *StockUseCase) GetByID(ctx context.Context, id string) (*dto.StockResponse, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	v, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.ErrNotFound
	}
	return NewStockResponse(v), nil
}

// List lista stock, más reciente primero. Busca en ubicación y lote.
func (uc *StockUseCase) List(ctx context.Context, q dto.StockListQuery) (*dto.StockListResponse, error) {
	if err := checkFilterID("producto_id", q.ProductID); err != nil {
		return nil, err
	}
	if err := checkFilterID("almacen_principal_id", q.PrimaryWarehouseID); err != nil {
		return nil, err
	}
	if err := checkFilterID("almacen_secundario_id", q.SecondaryWarehouseID); err != nil {
		return nil, err
	}
	q.Normalize()
	list, total, err := uc.repo.List(ctx, repository.StockFilter{
		Search:               dto.CleanString(q.Search),
		Status:               q.Status,
		ProductID:            q.ProductID,
		PrimaryWarehouseID:   q.PrimaryWarehouseID,
		SecondaryWarehouseID: q.SecondaryWarehouseID,
		Page:                 toPage(q.PageRequest),
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockResponse, 0, len(list))
	for _, v := range list {
		items = append(items, *NewStockResponse(v))
	}
	return &dto.StockListResponse{Items: items, PageResponse: dto.NewPageResponse(q.PageRequest, total)}, nil
}

// ListByProduct stock de un producto en todos los almacenes.
func (uc *StockUseCase) ListByProduct(ctx context.Context, productID string, page dto.PageRequest) (*dto.StockListResponse, error) {
	return uc.List(ctx, dto.StockListQuery{ProductID: productID, PageRequest: page})
}

// ListByPrimaryWarehouse stock guardado directamente en un almacén principal.
func (uc *StockUseCase) ListByPrimaryWarehouse(ctx context.Context, warehouseID string, page dto.PageRequest) (*dto.StockListResponse, error) {
	return uc.List(ctx, dto.StockListQuery{PrimaryWarehouseID: warehouseID, PageRequest: page})
}

// ListBySecondaryWarehouse stock de un almacén secundario.
func (uc *StockUseCase) ListBySecondaryWarehouse(ctx context.Context, warehouseID string, page dto.PageRequest) (*dto.StockListResponse, error) {
	return uc.List(ctx, dto.StockListQuery{SecondaryWarehouseID: warehouseID, PageRequest: page})
}

// Update reemplaza cantidades, ubicación, vencimiento, lote y estado. Lo omitido
// vuelve a su valor por defecto; producto y almacén no cambian.
func (uc *StockUseCase) Update(ctx context.Context, id string, in dto.UpdateStockRequest) (*dto.StockResponse, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	in.Location = dto.CleanOptional(in.Location)
	in.Lot = dto.CleanOptional(in.Lot)
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	s := &entity.Stock{
		ID:                id,
		AvailableQuantity: intOr(in.AvailableQuantity, 0),
		ReservedQuantity:  intOr(in.ReservedQuantity, 0),
		Location:          in.Location,
		ExpiryDate:        in.ExpiryDate.TimePtr(),
		Lot:               in.Lot,
		Status:            stringOr(in.Status, entity.StockStatusAvailable),
		UpdatedAt:         time.Now(),
	}
	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, err
	}
	return toStockResponse(s), nil
}

// Delete elimina el registro sin mirar la cantidad reservada.
func (uc *StockUseCase) Delete(ctx context.Context, id string) error {
	if err := checkID(id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func toStockResponse(s *entity.Stock) *dto.StockResponse {
	return &dto.StockResponse{
		ID:                   s.ID,
		ProductID:            s.ProductID,
		PrimaryWarehouseID:   s.PrimaryWarehouseID,
		SecondaryWarehouseID: s.SecondaryWarehouseID,
		AvailableQuantity:    s.AvailableQuantity,
		ReservedQuantity:     s.ReservedQuantity,
		Location:             s.Location,
		ExpiryDate:           dto.DatePtr(s.ExpiryDate),
		Lot:                  s.Lot,
		Status:               s.Status,
		CreatedAt:            s.CreatedAt,
		UpdatedAt:            s.UpdatedAt,
	}
}

// NewStockResponse arma la respuesta de un registro leído con sus resúmenes.
func NewStockResponse(v *entity.StockView) *dto.StockResponse {
	if v == nil {
		return nil
	}
	out := toStockResponse(&v.Stock)
	out.Product = toProductSummaryResponse(v.Product)
	out.PrimaryWarehouse = toWarehouseSummaryResponse(v.PrimaryWarehouse)
	out.SecondaryWarehouse = toWarehouseSummaryResponse(v.SecondaryWarehouse)
	return out
}
