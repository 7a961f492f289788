package repository

import (
	"sync"

	"storefront/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// MemoryCatalogRepository owns the authoritative in-memory product
// collection. One mutex serialises every mutation together with its save, so
// two writers can neither lose an update nor tear the persisted file. Reads
// work on snapshots and never observe a half-applied mutation.
type MemoryCatalogRepository struct {
	mu        sync.RWMutex
	products  []model.Product
	persister Persister
	logger    zerolog.Logger
}

// NewMemoryCatalogRepository creates a repository seeded with the given
// products. persister may be nil, in which case the catalogue is purely
// in-memory.
func NewMemoryCatalogRepository(initial []model.Product, persister Persister, logger zerolog.Logger) *MemoryCatalogRepository {
	products := make([]model.Product, len(initial))
	copy(products, initial)

	return &MemoryCatalogRepository{
		products:  products,
		persister: persister,
		logger:    logger.With().Str("component", "catalog-repository").Logger(),
	}
}

// Filter evaluates the query pipeline against a snapshot of the collection.
func (r *MemoryCatalogRepository) Filter(f ProductFilter) ([]model.Product, int, error) {
	snapshot := r.GetAll()
	return applyFilter(snapshot, f), len(snapshot), nil
}

// GetAll returns a copy of the collection in insertion order.
func (r *MemoryCatalogRepository) GetAll() []model.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshotLocked()
}

// GetByID returns the product with the given id.
func (r *MemoryCatalogRepository) GetByID(id string) (model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return model.Product{}, model.ErrProductNotFound
}

// Create assigns a fresh id and appends the product to the collection.
func (r *MemoryCatalogRepository) Create(product model.Product) (model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product.ID = newID()
	r.products = append(r.products, product)
	r.persistLocked()

	return product, nil
}

// Replace overwrites every field of the stored product except its id.
func (r *MemoryCatalogRepository) Replace(product model.Product) (model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.products {
		if p.ID == product.ID {
			r.products[i] = product
			r.persistLocked()
			return product, nil
		}
	}
	return model.Product{}, model.ErrProductNotFound
}

// Update applies mutate to the stored product under the repository lock.
func (r *MemoryCatalogRepository) Update(id string, mutate func(*model.Product)) (model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ID == id {
			mutate(&r.products[i])
			r.products[i].ID = id // id is immutable regardless of the mutation
			r.persistLocked()
			return r.products[i], nil
		}
	}
	return model.Product{}, model.ErrProductNotFound
}

// Delete removes the product and returns a snapshot of the removed record.
func (r *MemoryCatalogRepository) Delete(id string) (model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			r.persistLocked()
			return p, nil
		}
	}
	return model.Product{}, model.ErrProductNotFound
}

// Flush persists the current collection. The write lock is held for the
// whole save so a concurrent mutation's own save cannot be overwritten by a
// stale snapshot.
func (r *MemoryCatalogRepository) Flush() error {
	if r.persister == nil {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.persister.Save(r.snapshotLocked())
}

// snapshotLocked copies the collection. Callers must hold at least the read
// lock.
func (r *MemoryCatalogRepository) snapshotLocked() []model.Product {
	snapshot := make([]model.Product, len(r.products))
	copy(snapshot, r.products)
	return snapshot
}

// persistLocked writes the whole collection after a mutation. A failed save
// is downgraded to a warning: the in-memory state is still correct, only
// durability for this change was lost. Callers must hold the write lock.
func (r *MemoryCatalogRepository) persistLocked() {
	if r.persister == nil {
		return
	}
	if err := r.persister.Save(r.snapshotLocked()); err != nil {
		r.logger.Warn().Err(err).Msg("failed to persist catalogue state, in-memory state remains authoritative")
	}
}

// newID returns a random identifier. Random tokens survive deletion without
// reuse and leak nothing about catalogue size.
func newID() string {
	return uuid.NewString()
}
