package catalog

import (
	"sync"
	"time"

	"github.com/yourorg/stockroom/internal/id"
	"github.com/yourorg/stockroom/internal/models"
	"github.com/yourorg/stockroom/internal/storage"
)

// productsKey is the store key holding the authoritative collection.
const productsKey = "products"

// State is a snapshot of the product view. FilteredProducts is derived from
// Products and Filters and is never independently authoritative.
type State struct {
	Products         []models.Product
	FilteredProducts []models.Product
	Filters          models.Filters
	ViewMode         models.ViewMode
	IsLoading        bool
	Error            string
}

// Manager owns the authoritative product collection and the active view
// over it. Every mutating transition recomputes the filtered view before it
// returns, so the derived view can never be observed stale, and persists
// the collection after every change to it.
type Manager struct {
	mu    sync.Mutex
	store storage.Store
	state State

	now   func() time.Time
	newID func() string
}

// NewManager rehydrates the collection from the store and derives the
// initial view.
func NewManager(store storage.Store) *Manager {
	m := &Manager{
		store: store,
		now:   time.Now,
		newID: id.NewProductID,
	}
	m.state = State{
		Products: storage.LoadOr(store, productsKey, []models.Product{}),
		Filters:  models.DefaultFilters(),
		ViewMode: models.ViewGrid,
	}
	m.derive()
	return m
}

// State returns a snapshot; the slices are copies, so callers cannot reach
// back into the manager's collection.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.state
	s.Products = append([]models.Product(nil), m.state.Products...)
	s.FilteredProducts = append([]models.Product(nil), m.state.FilteredProducts...)
	return s
}

// AddProduct appends a new product to the collection. The manager assigns
// the identifier and both timestamps; callers supply everything else.
func (m *Manager) AddProduct(req models.CreateProductRequest) models.Product {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	p := models.Product{
		ID:          m.newID(),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		SKU:         req.SKU,
		Stock:       req.Stock,
		Status:      req.Status,
		Image:       req.Image,
		Tags:        append([]string(nil), req.Tags...),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	m.state.Products = append(m.state.Products, p)
	m.afterProductsChange()
	return p
}

// UpdateProduct merges the non-nil fields of req into the product with the
// given id and stamps its UpdatedAt. An unknown id is a silent no-op: no
// error, no effect on other entries.
func (m *Manager) UpdateProduct(productID string, req models.UpdateProductRequest) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.state.Products {
		if m.state.Products[i].ID != productID {
			continue
		}
		p := &m.state.Products[i]
		if req.Name != nil {
			p.Name = *req.Name
		}
		if req.Description != nil {
			p.Description = *req.Description
		}
		if req.Price != nil {
			p.Price = *req.Price
		}
		if req.Category != nil {
			p.Category = *req.Category
		}
		if req.SKU != nil {
			p.SKU = *req.SKU
		}
		if req.Stock != nil {
			p.Stock = *req.Stock
		}
		if req.Status != nil {
			p.Status = *req.Status
		}
		if req.Image != nil {
			p.Image = *req.Image
		}
		if req.Tags != nil {
			p.Tags = append([]string(nil), req.Tags...)
		}
		p.UpdatedAt = m.now()
		m.afterProductsChange()
		return
	}
}

// DeleteProduct removes the product with the given id; unknown ids are a
// silent no-op.
func (m *Manager) DeleteProduct(productID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.state.Products {
		if m.state.Products[i].ID == productID {
			m.state.Products = append(m.state.Products[:i], m.state.Products[i+1:]...)
			m.afterProductsChange()
			return
		}
	}
}

// SetFilters shallow-merges the patch into the current filters and
// re-derives the view.
func (m *Manager) SetFilters(patch models.FilterPatch) {
	m.mu.Lock()
	defer m.mu.Unlock()

	f := &m.state.Filters
	if patch.Search != nil {
		f.Search = *patch.Search
	}
	if patch.Category != nil {
		f.Category = *patch.Category
	}
	if patch.Status != nil {
		f.Status = *patch.Status
	}
	if patch.MinPrice != nil {
		f.MinPrice = *patch.MinPrice
	}
	if patch.MaxPrice != nil {
		f.MaxPrice = *patch.MaxPrice
	}
	if patch.SortBy != nil {
		f.SortBy = *patch.SortBy
	}
	if patch.SortOrder != nil {
		f.SortOrder = *patch.SortOrder
	}
	m.derive()
}

func (m *Manager) SetViewMode(mode models.ViewMode) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.ViewMode = mode
}

func (m *Manager) SetLoading(loading bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.IsLoading = loading
}

func (m *Manager) SetError(msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.Error = msg
}

// Refresh recomputes the derived view from the current collection and
// filters. Mutating transitions already do this; Refresh exists for callers
// that changed nothing but want the invariant re-established explicitly.
func (m *Manager) Refresh() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.derive()
}

// afterProductsChange persists the collection and re-derives the view.
// Persistence is fail-soft, so a storage failure never blocks a transition.
func (m *Manager) afterProductsChange() {
	m.store.Save(productsKey, m.state.Products)
	m.derive()
}

func (m *Manager) derive() {
	m.state.FilteredProducts = ApplyFilters(m.state.Products, m.state.Filters)
}
