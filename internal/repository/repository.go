package repository

import "storefront/internal/model"

// CatalogRepository defines the interface for catalogue data operations.
// Mutations are serialised against each other and against persistence, so a
// completed call is both applied in memory and (best effort) on disk.
type CatalogRepository interface {
	// Filter evaluates the query pipeline against a snapshot of the
	// collection and returns the matching products plus the total size of
	// the unfiltered collection.
	Filter(f ProductFilter) ([]model.Product, int, error)

	// GetAll returns a snapshot of the collection in insertion order.
	GetAll() []model.Product

	// GetByID returns the product with the given id.
	GetByID(id string) (model.Product, error)

	// Create assigns a fresh id to the product and appends it.
	Create(product model.Product) (model.Product, error)

	// Replace overwrites every field of the stored product except its id.
	Replace(product model.Product) (model.Product, error)

	// Update applies mutate to the stored product under the repository lock
	// and returns the result. Used for partial updates, where the merge must
	// not interleave with another writer.
	Update(id string, mutate func(*model.Product)) (model.Product, error)

	// Delete removes the product and returns a snapshot of the removed
	// record.
	Delete(id string) (model.Product, error)

	// Flush persists the current collection. Called on shutdown.
	Flush() error
}

// Persister writes the full catalogue state as one durable unit.
type Persister interface {
	Save(products []model.Product) error
}
