package service

import (
	"strings"

	"storefront/internal/model"
	"storefront/internal/repository"
	"storefront/internal/validation"

	"github.com/rs/zerolog"
)

// catalogService implements CatalogService.
type catalogService struct {
	repo      repository.CatalogRepository
	validator *validation.Validator
	logger    zerolog.Logger
}

// NewCatalogService creates a new catalogue service.
func NewCatalogService(repo repository.CatalogRepository, validator *validation.Validator, logger zerolog.Logger) CatalogService {
	return &catalogService{
		repo:      repo,
		validator: validator,
		logger:    logger.With().Str("service", "catalog").Logger(),
	}
}

// List runs the query pipeline against a snapshot of the collection.
func (s *catalogService) List(filter repository.ProductFilter) ([]model.Product, int, error) {
	products, total, err := s.repo.Filter(filter)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list products")
		return nil, 0, err
	}

	s.logger.Debug().
		Int("count", len(products)).
		Int("total", total).
		Msg("listed products")

	return products, total, nil
}

// Get retrieves a single product by id.
func (s *catalogService) Get(id string) (model.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Debug().Str("product_id", id).Msg("product not found")
		return model.Product{}, err
	}
	return product, nil
}

// Create validates the input in create mode, applies defaults and appends a
// new product. On validation failure no mutation takes place.
func (s *catalogService) Create(input model.ProductInput) (model.Product, error) {
	if fieldErrs := s.validator.Validate(input, validation.ModeCreate); len(fieldErrs) > 0 {
		s.logger.Debug().Int("violations", len(fieldErrs)).Msg("create rejected by validation")
		return model.Product{}, &model.ValidationError{Fields: fieldErrs}
	}

	created, err := s.repo.Create(buildProduct(input))
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create product")
		return model.Product{}, err
	}

	s.logger.Info().Str("product_id", created.ID).Str("name", created.Name).Msg("product created")
	return created, nil
}

// Replace overwrites an existing product. NotFound wins over validation when
// the id has no live record.
func (s *catalogService) Replace(id string, input model.ProductInput) (model.Product, error) {
	if _, err := s.repo.GetByID(id); err != nil {
		return model.Product{}, err
	}

	if fieldErrs := s.validator.Validate(input, validation.ModeFullUpdate); len(fieldErrs) > 0 {
		s.logger.Debug().Str("product_id", id).Int("violations", len(fieldErrs)).Msg("replace rejected by validation")
		return model.Product{}, &model.ValidationError{Fields: fieldErrs}
	}

	product := buildProduct(input)
	product.ID = id

	replaced, err := s.repo.Replace(product)
	if err != nil {
		return model.Product{}, err
	}

	s.logger.Info().Str("product_id", id).Msg("product replaced")
	return replaced, nil
}

// Patch validates only the supplied fields and merges them into the stored
// record under the repository lock. NotFound wins over validation, matching
// Replace. An empty input is a no-op that returns the record unchanged.
func (s *catalogService) Patch(id string, input model.ProductInput) (model.Product, error) {
	if _, err := s.repo.GetByID(id); err != nil {
		s.logger.Debug().Str("product_id", id).Msg("product not found")
		return model.Product{}, err
	}

	if fieldErrs := s.validator.Validate(input, validation.ModePartialUpdate); len(fieldErrs) > 0 {
		s.logger.Debug().Str("product_id", id).Int("violations", len(fieldErrs)).Msg("patch rejected by validation")
		return model.Product{}, &model.ValidationError{Fields: fieldErrs}
	}

	updated, err := s.repo.Update(id, func(p *model.Product) {
		if input.Name != nil {
			p.Name = strings.TrimSpace(*input.Name)
		}
		if input.Category != nil {
			p.Category = strings.TrimSpace(*input.Category)
		}
		if input.Description != nil {
			p.Description = strings.TrimSpace(*input.Description)
		}
		if input.Price != nil {
			p.Price = *input.Price
		}
		if input.Stock != nil {
			p.Stock = *input.Stock
		}
		if input.Rating != nil {
			p.Rating = *input.Rating
		}
		if input.Image != nil {
			p.Image = strings.TrimSpace(*input.Image)
		}
	})
	if err != nil {
		s.logger.Debug().Str("product_id", id).Msg("product not found")
		return model.Product{}, err
	}

	s.logger.Info().Str("product_id", id).Msg("product updated")
	return updated, nil
}

// Delete removes a product and returns the removed record's snapshot.
func (s *catalogService) Delete(id string) (model.Product, error) {
	removed, err := s.repo.Delete(id)
	if err != nil {
		s.logger.Debug().Str("product_id", id).Msg("product not found")
		return model.Product{}, err
	}

	s.logger.Info().Str("product_id", id).Str("name", removed.Name).Msg("product deleted")
	return removed, nil
}

// Categories returns the distinct categories in first-seen collection order.
func (s *catalogService) Categories() []string {
	seen := map[string]bool{}
	categories := []string{}
	for _, p := range s.repo.GetAll() {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	return categories
}

// buildProduct turns a validated create/full-update input into a product,
// trimming string fields and defaulting stock and rating to zero when
// absent. The id is left for the caller.
func buildProduct(input model.ProductInput) model.Product {
	product := model.Product{
		Name:        strings.TrimSpace(*input.Name),
		Category:    strings.TrimSpace(*input.Category),
		Description: strings.TrimSpace(*input.Description),
		Price:       *input.Price,
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}
	if input.Rating != nil {
		product.Rating = *input.Rating
	}
	if input.Image != nil {
		product.Image = strings.TrimSpace(*input.Image)
	}
	return product
}
