package service

import (
	"storefront/internal/model"
	"storefront/internal/repository"
)

// CatalogService defines operations for catalogue management.
type CatalogService interface {
	// List runs the query pipeline and returns matching products plus the
	// total size of the collection.
	List(filter repository.ProductFilter) ([]model.Product, int, error)

	// Get retrieves a single product by id.
	Get(id string) (model.Product, error)

	// Create validates the input, applies defaults and appends a new product.
	Create(input model.ProductInput) (model.Product, error)

	// Replace overwrites every field of an existing product except its id.
	// All mandatory fields must be present; a full replace never falls back
	// to stored values.
	Replace(id string, input model.ProductInput) (model.Product, error)

	// Patch merges only the supplied fields into an existing product.
	Patch(id string, input model.ProductInput) (model.Product, error)

	// Delete removes a product and returns the removed record.
	Delete(id string) (model.Product, error)

	// Categories returns the distinct categories in first-seen order.
	Categories() []string
}
