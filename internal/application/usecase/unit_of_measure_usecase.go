package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lgalvez/almacen-api/internal/application/dto"
	"github.com/lgalvez/almacen-api/internal/domain"
	"github.com/lgalvez/almacen-api/internal/domain/entity"
	"github.com/lgalvez/almacen-api/internal/domain/repository"
)

var minConversionFactor = decimal.RequireFromString("0.0001")

// UnitOfMeasureUseCase casos de uso CRUD para unidades de medida.
type UnitOfMeasureUseCase struct {
	repo repository.UnitOfMeasureRepository
}

// NewUnitOfMeasureUseCase construye el caso de uso.
func NewUnitOfMeasureUseCase(repo repository.UnitOfMeasureRepository) *UnitOfMeasureUseCase {
	return &UnitOfMeasureUseCase{repo: repo}
}

// Create crea una unidad de medida. Nombre y símbolo únicos (los garantiza la base).
func (uc *UnitOfMeasureUseCase) Create(ctx context.Context, in dto.CreateUnitOfMeasureRequest) (*dto.UnitOfMeasureResponse, error) {
	unit, err := buildUnit(in)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	unit.ID = uuid.New().String()
	unit.CreatedAt = now
	unit.UpdatedAt = now
	if err := uc.repo.Create(ctx, unit); err != nil {
		return nil, err
	}
	return toUnitResponse(unit), nil
}

// GetByID obtiene una unidad por ID.
func (uc *UnitOfMeasureUseCase) GetByID(ctx context.Context, id string) (*dto.UnitOfMeasureResponse, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	unit, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, domain.ErrNotFound
	}
	return toUnitResponse(unit), nil
}

// List lista unidades con búsqueda por nombre/símbolo/descripción y filtros por tipo y estado.
func (uc *UnitOfMeasureUseCase) List(ctx context.Context, q dto.UnitOfMeasureListQuery) (*dto.UnitOfMeasureListResponse, error) {
	q.Normalize()
	list, total, err := uc.repo.List(ctx, repository.UnitFilter{
		Search:   dto.CleanString(q.Search),
		Category: q.Category,
		Status:   q.Status,
		Page:     toPage(q.PageRequest),
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.UnitOfMeasureResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toUnitResponse(u))
	}
	return &dto.UnitOfMeasureListResponse{Items: items, PageResponse: dto.NewPageResponse(q.PageRequest, total)}, nil
}

// ListByCategory lista las unidades de un tipo (peso, volumen, longitud, unidad).
func (uc *UnitOfMeasureUseCase) ListByCategory(ctx context.Context, category string, page dto.PageRequest) (*dto.UnitOfMeasureListResponse, error) {
	return uc.List(ctx, dto.UnitOfMeasureListQuery{Category: category, PageRequest: page})
}

// Update reemplaza la unidad completa.
func (uc *UnitOfMeasureUseCase) Update(ctx context.Context, id string, in dto.UpdateUnitOfMeasureRequest) (*dto.UnitOfMeasureResponse, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	unit, err := buildUnit(in)
	if err != nil {
		return nil, err
	}
	unit.ID = id
	unit.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, unit); err != nil {
		return nil, err
	}
	return toUnitResponse(unit), nil
}

// Delete elimina una unidad. Los productos que la referencian quedan sin medida.
func (uc *UnitOfMeasureUseCase) Delete(ctx context.Context, id string) error {
	if err := checkID(id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func buildUnit(in dto.CreateUnitOfMeasureRequest) (*entity.UnitOfMeasure, error) {
	in.Name = dto.CleanString(in.Name)
	in.Symbol = dto.CleanString(in.Symbol)
	in.Description = dto.CleanOptional(in.Description)
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	factor := decimal.NewFromInt(1)
	if in.ConversionFactor != nil {
		if in.ConversionFactor.LessThan(minConversionFactor) {
			return nil, domain.NewValidationError("factor_conversion", "debe ser mayor o igual a %s", minConversionFactor.String())
		}
		if err := dto.CheckDecimal("factor_conversion", *in.ConversionFactor, dto.FactorPrecision, dto.FactorScale); err != nil {
			return nil, err
		}
		factor = *in.ConversionFactor
	}
	return &entity.UnitOfMeasure{
		Name:             in.Name,
		Symbol:           in.Symbol,
		Description:      in.Description,
		Category:         in.Category,
		ConversionFactor: factor,
		Status:           stringOr(in.Status, entity.UnitStatusActive),
	}, nil
}

func toUnitResponse(u *entity.UnitOfMeasure) *dto.UnitOfMeasureResponse {
	if u == nil {
		return nil
	}
	return &dto.UnitOfMeasureResponse{
		ID:               u.ID,
		Name:             u.Name,
		Symbol:           u.Symbol,
		Description:      u.Description,
		Category:         u.Category,
		ConversionFactor: u.ConversionFactor,
		Status:           u.Status,
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.UpdatedAt,
	}
}
