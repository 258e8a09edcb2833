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

// PrimaryWarehouseUseCase casos de uso CRUD para almacenes principales.
type PrimaryWarehouseUseCase struct {
	repo repository.PrimaryWarehouseRepository
}

// NewPrimaryWarehouseUseCase construye el caso de uso.
func NewPrimaryWarehouseUseCase(repo repository.PrimaryWarehouseRepository) *PrimaryWarehouseUseCase {
	return &PrimaryWarehouseUseCase{repo: repo}
}

// Create crea un almacén principal. Sin capacidad disponible se usa la total.
func (uc *PrimaryWarehouseUseCase) Create(ctx context.Context, in dto.CreatePrimaryWarehouseRequest) (*dto.WarehouseResponse, error) {
	info, err := buildWarehouseInfo(in.WarehouseFields)
	if err != nil {
		return nil, err
	}
	info.ApplyCapacityDefault()
	now := time.Now()
	w := &entity.PrimaryWarehouse{
		ID:            uuid.New().String(),
		WarehouseInfo: info,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, w); err != nil {
		return nil, err
	}
	return toWarehouseResponse(w.ID, &w.WarehouseInfo, w.CreatedAt, w.UpdatedAt), nil
}

// GetByID obtiene un almacén principal por ID.
func (uc *PrimaryWarehouseUseCase) GetByID(ctx context.Context, id string) (*dto.WarehouseResponse, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	w, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, domain.ErrNotFound
	}
	return toWarehouseResponse(w.ID, &w.WarehouseInfo, w.CreatedAt, w.UpdatedAt), nil
}

// List lista almacenes principales (búsqueda por nombre, dirección o responsable).
func (uc *PrimaryWarehouseUseCase) List(ctx context.Context, q dto.PrimaryWarehouseListQuery) (*dto.PrimaryWarehouseListResponse, error) {
	q.Normalize()
	list, total, err := uc.repo.List(ctx, repository.PrimaryWarehouseFilter{
		Search: dto.CleanString(q.Search),
		Status: q.Status,
		Page:   toPage(q.PageRequest),
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.WarehouseResponse, 0, len(list))
	for _, w := range list {
		items = append(items, *toWarehouseResponse(w.ID, &w.WarehouseInfo, w.CreatedAt, w.UpdatedAt))
	}
	return &dto.PrimaryWarehouseListResponse{Items: items, PageResponse: dto.NewPageResponse(q.PageRequest, total)}, nil
}

// ListActive lista los almacenes principales en estado activo.
func (uc *PrimaryWarehouseUseCase) ListActive(ctx context.Context, page dto.PageRequest) (*dto.PrimaryWarehouseListResponse, error) {
	return uc.List(ctx, dto.PrimaryWarehouseListQuery{Status: entity.WarehouseStatusActive, PageRequest: page})
}

// Update reemplaza el almacén principal completo.
func (uc *PrimaryWarehouseUseCase) Update(ctx context.Context, id string, in dto.UpdatePrimaryWarehouseRequest) (*dto.WarehouseResponse, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	info, err := buildWarehouseInfo(in.WarehouseFields)
	if err != nil {
		return nil, err
	}
	w := &entity.PrimaryWarehouse{ID: id, WarehouseInfo: info, UpdatedAt: time.Now()}
	if err := uc.repo.Update(ctx, w); err != nil {
		return nil, err
	}
	return toWarehouseResponse(w.ID, &w.WarehouseInfo, w.CreatedAt, w.UpdatedAt), nil
}

// Delete elimina un almacén principal. Sus secundarios quedan huérfanos; si aún tiene
// stock la base rechaza el borrado.
func (uc *PrimaryWarehouseUseCase) Delete(ctx context.Context, id string) error {
	if err := checkID(id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

// SecondaryWarehouseUseCase casos de uso CRUD para almacenes secundarios.
type SecondaryWarehouseUseCase struct {
	repo repository.SecondaryWarehouseRepository
}

// NewSecondaryWarehouseUseCase construye el caso de uso.
func NewSecondaryWarehouseUseCase(repo repository.SecondaryWarehouseRepository) *SecondaryWarehouseUseCase {
	return &SecondaryWarehouseUseCase{repo: repo}
}

// Create crea un almacén secundario; el principal es opcional pero, si se indica, debe existir.
func (uc *SecondaryWarehouseUseCase) Create(ctx context.Context, in dto.CreateSecondaryWarehouseRequest) (*dto.SecondaryWarehouseResponse, error) {
	w, err := buildSecondary(in)
	if err != nil {
		return nil, err
	}
	w.ApplyCapacityDefault()
	now := time.Now()
	w.ID = uuid.New().String()
	w.CreatedAt = now
	w.UpdatedAt = now
	if err := uc.repo.Create(ctx, w); err != nil {
		return nil, err
	}
	return toSecondaryResponse(w), nil
}

// GetByID obtiene un almacén secundario con su principal.
func (uc *SecondaryWarehouseUseCase) GetByID(ctx context.Context, id string) (*dto.SecondaryWarehouseResponse, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	w, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, domain.ErrNotFound
	}
	return toSecondaryResponse(w), nil
}

// List lista almacenes secundarios con filtros de estado y almacén principal.
func (uc *SecondaryWarehouseUseCase) List(ctx context.Context, q dto.SecondaryWarehouseListQuery) (*dto.SecondaryWarehouseListResponse, error) {
	if err := checkFilterID("almacen_principal_id", q.PrimaryWarehouseID); err != nil {
		return nil, err
	}
	q.Normalize()
	list, total, err := uc.repo.List(ctx, repository.SecondaryWarehouseFilter{
		Search:             dto.CleanString(q.Search),
		Status:             q.Status,
		PrimaryWarehouseID: q.PrimaryWarehouseID,
		Page:               toPage(q.PageRequest),
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.SecondaryWarehouseResponse, 0, len(list))
	for _, w := range list {
		items = append(items, *toSecondaryResponse(w))
	}
	return &dto.SecondaryWarehouseListResponse{Items: items, PageResponse: dto.NewPageResponse(q.PageRequest, total)}, nil
}

// ListByParent lista los secundarios de un almacén principal.
func (uc *SecondaryWarehouseUseCase) ListByParent(ctx context.Context, primaryID string, page dto.PageRequest) (*dto.SecondaryWarehouseListResponse, error) {
	return uc.List(ctx, dto.SecondaryWarehouseListQuery{PrimaryWarehouseID: primaryID, PageRequest: page})
}

// ListActive lista los almacenes secundarios en estado activo.
func (uc *SecondaryWarehouseUseCase) ListActive(ctx context.Context, page dto.PageRequest) (*dto.SecondaryWarehouseListResponse, error) {
	return uc.List(ctx, dto.SecondaryWarehouseListQuery{Status: entity.WarehouseStatusActive, PageRequest: page})
}

// Update reemplaza el almacén secundario completo, incluido su principal.
func (uc *SecondaryWarehouseUseCase) Update(ctx context.Context, id string, in dto.UpdateSecondaryWarehouseRequest) (*dto.SecondaryWarehouseResponse, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	w, err := buildSecondary(in)
	if err != nil {
		return nil, err
	}
	w.ID = id
	w.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, w); err != nil {
		return nil, err
	}
	return toSecondaryResponse(w), nil
}

// Delete elimina un almacén secundario (rechazado por la base si aún tiene stock).
func (uc *SecondaryWarehouseUseCase) Delete(ctx context.Context, id string) error {
	if err := checkID(id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func buildWarehouseInfo(in dto.WarehouseFields) (entity.WarehouseInfo, error) {
	in.Name = dto.CleanString(in.Name)
	in.Address = dto.CleanOptional(in.Address)
	in.Phone = dto.CleanOptional(in.Phone)
	in.Email = dto.CleanOptional(in.Email)
	in.Responsible = dto.CleanOptional(in.Responsible)
	if err := dto.Validate(in); err != nil {
		return entity.WarehouseInfo{}, err
	}
	return entity.WarehouseInfo{
		Name:              in.Name,
		Address:           in.Address,
		Phone:             in.Phone,
		Email:             in.Email,
		Responsible:       in.Responsible,
		TotalCapacity:     in.TotalCapacity,
		AvailableCapacity: in.AvailableCapacity,
		Status:            stringOr(in.Status, entity.WarehouseStatusActive),
	}, nil
}

func buildSecondary(in dto.CreateSecondaryWarehouseRequest) (*entity.SecondaryWarehouse, error) {
	info, err := buildWarehouseInfo(in.WarehouseFields)
	if err != nil {
		return nil, err
	}
	parent := dto.CleanOptional(in.PrimaryWarehouseID)
	if parent != nil {
		if err := checkFilterID("almacen_principal_id", *parent); err != nil {
			return nil, err
		}
	}
	return &entity.SecondaryWarehouse{WarehouseInfo: info, PrimaryWarehouseID: parent}, nil
}

func toWarehouseResponse(id string, w *entity.WarehouseInfo, createdAt, updatedAt time.Time) *dto.WarehouseResponse {
	return &dto.WarehouseResponse{
		ID:                id,
		Name:              w.Name,
		Address:           w.Address,
		Phone:             w.Phone,
		Email:             w.Email,
		Responsible:       w.Responsible,
		TotalCapacity:     w.TotalCapacity,
		AvailableCapacity: w.AvailableCapacity,
		Status:            w.Status,
		CreatedAt:         createdAt,
		UpdatedAt:         updatedAt,
	}
}

func toSecondaryResponse(w *entity.SecondaryWarehouse) *dto.SecondaryWarehouseResponse {
	if w == nil {
		return nil
	}
	return &dto.SecondaryWarehouseResponse{
		WarehouseResponse:  *toWarehouseResponse(w.ID, &w.WarehouseInfo, w.CreatedAt, w.UpdatedAt),
		PrimaryWarehouseID: w.PrimaryWarehouseID,
		PrimaryWarehouse:   toWarehouseSummaryResponse(w.Parent),
	}
}

func toWarehouseSummaryResponse(s *entity.WarehouseSummary) *dto.WarehouseSummaryResponse {
	if s == nil {
		return nil
	}
	return &dto.WarehouseSummaryResponse{ID: s.ID, Name: s.Name, Address: s.Address, Status: s.Status}
}
