package usecase_test

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/lgalvez/almacen-api/internal/domain"
	"github.com/lgalvez/almacen-api/internal/domain/entity"
	"github.com/lgalvez/almacen-api/internal/domain/inventory"
	"github.com/lgalvez/almacen-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// memStore: base en memoria que reproduce las restricciones de PostgreSQL
// (índices únicos, CHECK de almacén único, claves foráneas y sus ON DELETE).
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	mu          sync.Mutex
	units       map[string]entity.UnitOfMeasure
	primaries   map[string]entity.PrimaryWarehouse
	secondaries map[string]entity.SecondaryWarehouse
	products    map[string]entity.Product
	stock       map[string]entity.Stock
}

func newMemStore() *memStore {
	return &memStore{
		units:       map[string]entity.UnitOfMeasure{},
		primaries:   map[string]entity.PrimaryWarehouse{},
		secondaries: map[string]entity.SecondaryWarehouse{},
		products:    map[string]entity.Product{},
		stock:       map[string]entity.Stock{},
	}
}

func paginate[T any](items []T, p repository.Page) []T {
	if p.Offset >= len(items) {
		return []T{}
	}
	end := len(items)
	if p.Limit > 0 && p.Offset+p.Limit < end {
		end = p.Offset + p.Limit
	}
	return items[p.Offset:end]
}

func containsFold(s *string, q string) bool {
	return s != nil && strings.Contains(strings.ToLower(*s), strings.ToLower(q))
}

func ptrEq(p *string, v string) bool { return p != nil && *p == v }

var errRestrict = domain.NewValidationError("", "el registro tiene stock asociado")

// ── Unidades de medida ───────────────────────────────────────────────────────

type unitRepo struct{ s *memStore }

var _ repository.UnitOfMeasureRepository = unitRepo{}

func (r unitRepo) checkUnique(u *entity.UnitOfMeasure) error {
	for _, o := range r.s.units {
		if o.ID == u.ID {
			continue
		}
		if o.Name == u.Name {
			return domain.NewDuplicateError("nombre", "ya existe una unidad con este nombre")
		}
		if o.Symbol == u.Symbol {
			return domain.NewDuplicateError("simbolo", "ya existe una unidad con este símbolo")
		}
	}
	return nil
}

func (r unitRepo) Create(_ context.Context, u *entity.UnitOfMeasure) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.checkUnique(u); err != nil {
		return err
	}
	r.s.units[u.ID] = *u
	return nil
}

func (r unitRepo) GetByID(_ context.Context, id string) (*entity.UnitOfMeasure, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.units[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r unitRepo) List(_ context.Context, f repository.UnitFilter) ([]*entity.UnitOfMeasure, int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.UnitOfMeasure
	for _, u := range r.s.units {
		if f.Category != "" && u.Category != f.Category || f.Status != "" && u.Status != f.Status {
			continue
		}
		if f.Search != "" && !containsFold(&u.Name, f.Search) && !containsFold(&u.Symbol, f.Search) && !containsFold(u.Description, f.Search) {
			continue
		}
		u := u
		out = append(out, &u)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return paginate(out, f.Page), len(out), nil
}

func (r unitRepo) Update(_ context.Context, u *entity.UnitOfMeasure) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	old, ok := r.s.units[u.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if err := r.checkUnique(u); err != nil {
		return err
	}
	u.CreatedAt = old.CreatedAt
	r.s.units[u.ID] = *u
	return nil
}

func (r unitRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.units[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.units, id)
	for pid, p := range r.s.products {
		if ptrEq(p.UnitOfMeasureID, id) {
			p.UnitOfMeasureID = nil
			r.s.products[pid] = p
		}
	}
	return nil
}

// ── Almacenes ────────────────────────────────────────────────────────────────

type primaryRepo struct{ s *memStore }

var _ repository.PrimaryWarehouseRepository = primaryRepo{}

func (r primaryRepo) Create(_ context.Context, w *entity.PrimaryWarehouse) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.primaries[w.ID] = *w
	return nil
}

func (r primaryRepo) GetByID(_ context.Context, id string) (*entity.PrimaryWarehouse, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	w, ok := r.s.primaries[id]
	if !ok {
		return nil, nil
	}
	return &w, nil
}

func (r primaryRepo) List(_ context.Context, f repository.PrimaryWarehouseFilter) ([]*entity.PrimaryWarehouse, int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.PrimaryWarehouse
	for _, w := range r.s.primaries {
		if f.Status != "" && w.Status != f.Status {
			continue
		}
		if f.Search != "" && !containsFold(&w.Name, f.Search) && !containsFold(w.Address, f.Search) && !containsFold(w.Responsible, f.Search) {
			continue
		}
		w := w
		out = append(out, &w)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return paginate(out, f.Page), len(out), nil
}

func (r primaryRepo) Update(_ context.Context, w *entity.PrimaryWarehouse) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	old, ok := r.s.primaries[w.ID]
	if !ok {
		return domain.ErrNotFound
	}
	w.CreatedAt = old.CreatedAt
	r.s.primaries[w.ID] = *w
	return nil
}

func (r primaryRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.primaries[id]; !ok {
		return domain.ErrNotFound
	}
	for _, st := range r.s.stock {
		if ptrEq(st.PrimaryWarehouseID, id) {
			return errRestrict
		}
	}
	delete(r.s.primaries, id)
	for sid, w := range r.s.secondaries {
		if ptrEq(w.PrimaryWarehouseID, id) {
			w.PrimaryWarehouseID = nil
			r.s.secondaries[sid] = w
		}
	}
	return nil
}

type secondaryRepo struct{ s *memStore }

var _ repository.SecondaryWarehouseRepository = secondaryRepo{}

func (r secondaryRepo) checkParent(w *entity.SecondaryWarehouse) error {
	if w.PrimaryWarehouseID == nil {
		return nil
	}
	if _, ok := r.s.primaries[*w.PrimaryWarehouseID]; !ok {
		return domain.NewValidationError("almacen_principal_id", "el almacén principal no existe")
	}
	return nil
}

func (r secondaryRepo) withParent(w entity.SecondaryWarehouse) *entity.SecondaryWarehouse {
	if w.PrimaryWarehouseID != nil {
		if p, ok := r.s.primaries[*w.PrimaryWarehouseID]; ok {
			w.Parent = &entity.WarehouseSummary{ID: p.ID, Name: p.Name, Address: p.Address, Status: p.Status}
		}
	}
	return &w
}

func (r secondaryRepo) Create(_ context.Context, w *entity.SecondaryWarehouse) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.checkParent(w); err != nil {
		return err
	}
	r.s.secondaries[w.ID] = *w
	return nil
}

func (r secondaryRepo) GetByID(_ context.Context, id string) (*entity.SecondaryWarehouse, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	w, ok := r.s.secondaries[id]
	if !ok {
		return nil, nil
	}
	return r.withParent(w), nil
}

func (r secondaryRepo) List(_ context.Context, f repository.SecondaryWarehouseFilter) ([]*entity.SecondaryWarehouse, int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.SecondaryWarehouse
	for _, w := range r.s.secondaries {
		if f.Status != "" && w.Status != f.Status {
			continue
		}
		if f.PrimaryWarehouseID != "" && !ptrEq(w.PrimaryWarehouseID, f.PrimaryWarehouseID) {
			continue
		}
		if f.Search != "" && !containsFold(&w.Name, f.Search) && !containsFold(w.Address, f.Search) && !containsFold(w.Responsible, f.Search) {
			continue
		}
		out = append(out, r.withParent(w))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return paginate(out, f.Page), len(out), nil
}

func (r secondaryRepo) Update(_ context.Context, w *entity.SecondaryWarehouse) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	old, ok := r.s.secondaries[w.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if err := r.checkParent(w); err != nil {
		return err
	}
	w.CreatedAt = old.CreatedAt
	r.s.secondaries[w.ID] = *w
	w.Parent = r.withParent(*w).Parent
	return nil
}

func (r secondaryRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.secondaries[id]; !ok {
		return domain.ErrNotFound
	}
	for _, st := range r.s.stock {
		if ptrEq(st.SecondaryWarehouseID, id) {
			return errRestrict
		}
	}
	delete(r.s.secondaries, id)
	return nil
}

// ── Productos ────────────────────────────────────────────────────────────────

type productRepo struct{ s *memStore }

var _ repository.ProductRepository = productRepo{}

func (r productRepo) check(p *entity.Product) error {
	for _, o := range r.s.products {
		if o.ID != p.ID && o.Code == p.Code {
			return domain.NewDuplicateError("codigo", "ya existe un producto con este código")
		}
	}
	if p.UnitOfMeasureID != nil {
		if _, ok := r.s.units[*p.UnitOfMeasureID]; !ok {
			return domain.NewValidationError("medida_id", "la unidad de medida no existe")
		}
	}
	return nil
}

func (r productRepo) withUnit(p entity.Product) *entity.Product {
	if p.UnitOfMeasureID != nil {
		if u, ok := r.s.units[*p.UnitOfMeasureID]; ok {
			p.Unit = &entity.UnitSummary{ID: u.ID, Name: u.Name, Symbol: u.Symbol}
		}
	}
	return &p
}

func (r productRepo) Create(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.check(p); err != nil {
		return err
	}
	r.s.products[p.ID] = *p
	return nil
}

func (r productRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	return r.withUnit(p), nil
}

func (r productRepo) GetByCode(_ context.Context, code string) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.products {
		if p.Code == code {
			return r.withUnit(p), nil
		}
	}
	return nil, nil
}

func (r productRepo) List(_ context.Context, f repository.ProductFilter) ([]*entity.Product, int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Product
	for _, p := range r.s.products {
		if f.Status != "" && p.Status != f.Status || f.Category != "" && !ptrEq(p.Category, f.Category) {
			continue
		}
		if f.Search != "" && !containsFold(&p.Code, f.Search) && !containsFold(&p.Name, f.Search) &&
			!containsFold(p.Description, f.Search) && !containsFold(p.Brand, f.Search) {
			continue
		}
		out = append(out, r.withUnit(p))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return paginate(out, f.Page), len(out), nil
}

func (r productRepo) Update(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	old, ok := r.s.products[p.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if err := r.check(p); err != nil {
		return err
	}
	p.CreatedAt = old.CreatedAt
	r.s.products[p.ID] = *p
	return nil
}

func (r productRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[id]; !ok {
		return domain.ErrNotFound
	}
	for _, st := range r.s.stock {
		if st.ProductID == id {
			return errRestrict
		}
	}
	delete(r.s.products, id)
	return nil
}

// ── Stock ────────────────────────────────────────────────────────────────────

type stockRepo struct{ s *memStore }

var _ repository.StockRepository = stockRepo{}

func (r stockRepo) view(st entity.Stock) *entity.StockView {
	v := &entity.StockView{Stock: st}
	if p, ok := r.s.products[st.ProductID]; ok {
		v.Product = entity.ProductSummary{ID: p.ID, Code: p.Code, Name: p.Name, Category: p.Category,
			Brand: p.Brand, StockMin: p.StockMin, Status: p.Status}
	}
	if st.PrimaryWarehouseID != nil {
		if w, ok := r.s.primaries[*st.PrimaryWarehouseID]; ok {
			v.PrimaryWarehouse = &entity.WarehouseSummary{ID: w.ID, Name: w.Name, Address: w.Address, Status: w.Status}
		}
	}
	if st.SecondaryWarehouseID != nil {
		if w, ok := r.s.secondaries[*st.SecondaryWarehouseID]; ok {
			v.SecondaryWarehouse = &entity.WarehouseSummary{ID: w.ID, Name: w.Name, Address: w.Address, Status: w.Status}
		}
	}
	return v
}

func (r stockRepo) Create(_ context.Context, st *entity.Stock) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	// CHECK (num_nonnulls(...) = 1)
	if (st.PrimaryWarehouseID == nil) == (st.SecondaryWarehouseID == nil) {
		return domain.NewValidationError("almacen", inventory.MsgExclusiveWarehouse)
	}
	if _, ok := r.s.products[st.ProductID]; !ok {
		return domain.NewValidationError("producto_id", "el producto no existe")
	}
	if st.PrimaryWarehouseID != nil {
		if _, ok := r.s.primaries[*st.PrimaryWarehouseID]; !ok {
			return domain.NewValidationError("almacen_principal_id", "el almacén principal no existe")
		}
	}
	if st.SecondaryWarehouseID != nil {
		if _, ok := r.s.secondaries[*st.SecondaryWarehouseID]; !ok {
			return domain.NewValidationError("almacen_secundario_id", "el almacén secundario no existe")
		}
	}
	r.s.stock[st.ID] = *st
	return nil
}

func (r stockRepo) GetByID(_ context.Context, id string) (*entity.StockView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	st, ok := r.s.stock[id]
	if !ok {
		return nil, nil
	}
	return r.view(st), nil
}

func (r stockRepo) List(_ context.Context, f repository.StockFilter) ([]*entity.StockView, int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.StockView
	for _, st := range r.s.stock {
		switch {
		case f.Status != "" && st.Status != f.Status,
			f.ProductID != "" && st.ProductID != f.ProductID,
			f.PrimaryWarehouseID != "" && !ptrEq(st.PrimaryWarehouseID, f.PrimaryWarehouseID),
			f.SecondaryWarehouseID != "" && !ptrEq(st.SecondaryWarehouseID, f.SecondaryWarehouseID),
			f.Search != "" && !containsFold(st.Location, f.Search) && !containsFold(st.Lot, f.Search):
			continue
		}
		out = append(out, r.view(st))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return paginate(out, f.Page), len(out), nil
}

func (r stockRepo) Update(_ context.Context, st *entity.Stock) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	old, ok := r.s.stock[st.ID]
	if !ok {
		return domain.ErrNotFound
	}
	st.ProductID = old.ProductID
	st.PrimaryWarehouseID = old.PrimaryWarehouseID
	st.SecondaryWarehouseID = old.SecondaryWarehouseID
	st.CreatedAt = old.CreatedAt
	r.s.stock[st.ID] = *st
	return nil
}

func (r stockRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.stock[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.stock, id)
	return nil
}

func (r stockRepo) ListLowStockCandidates(_ context.Context, f repository.LowStockFilter) ([]*entity.StockView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.StockView
	for _, st := range r.s.stock {
		v := r.view(st)
		if v.Product.Status != entity.ProductStatusActive || v.Product.StockMin <= 0 {
			continue
		}
		if f.PrimaryWarehouseID != "" && !ptrEq(st.PrimaryWarehouseID, f.PrimaryWarehouseID) ||
			f.SecondaryWarehouseID != "" && !ptrEq(st.SecondaryWarehouseID, f.SecondaryWarehouseID) {
			continue
		}
		out = append(out, v)
	}
	return out, nil
}
