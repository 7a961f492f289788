package service

import (
	"testing"

	"storefront/internal/model"
	"storefront/internal/repository"
	"storefront/internal/validation"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCatalogRepository is a mock implementation of CatalogRepository.
type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) Filter(f repository.ProductFilter) ([]model.Product, int, error) {
	args := m.Called(f)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]model.Product), args.Int(1), args.Error(2)
}

func (m *MockCatalogRepository) GetAll() []model.Product {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]model.Product)
}

func (m *MockCatalogRepository) GetByID(id string) (model.Product, error) {
	args := m.Called(id)
	return args.Get(0).(model.Product), args.Error(1)
}

func (m *MockCatalogRepository) Create(product model.Product) (model.Product, error) {
	args := m.Called(product)
	return args.Get(0).(model.Product), args.Error(1)
}

func (m *MockCatalogRepository) Replace(product model.Product) (model.Product, error) {
	args := m.Called(product)
	return args.Get(0).(model.Product), args.Error(1)
}

func (m *MockCatalogRepository) Update(id string, mutate func(*model.Product)) (model.Product, error) {
	args := m.Called(id, mutate)
	return args.Get(0).(model.Product), args.Error(1)
}

func (m *MockCatalogRepository) Delete(id string) (model.Product, error) {
	args := m.Called(id)
	return args.Get(0).(model.Product), args.Error(1)
}

func (m *MockCatalogRepository) Flush() error {
	args := m.Called()
	return args.Error(0)
}

func strPtr(s string) *string { return &s }
func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int { return &i }

func createInput() model.ProductInput {
	return model.ProductInput{
		Name:        strPtr("  Wireless Mouse  "),
		Category:    strPtr("Peripherals"),
		Description: strPtr("Compact wireless mouse"),
		Price:       floatPtr(999),
	}
}

func newTestService(repo repository.CatalogRepository) CatalogService {
	return NewCatalogService(repo, validation.New(), zerolog.Nop())
}

func TestCatalogService_Create(t *testing.T) {
	t.Run("Applies defaults and trims strings", func(t *testing.T) {
		mockRepo := new(MockCatalogRepository)
		mockRepo.On("Create", mock.MatchedBy(func(p model.Product) bool {
			return p.Name == "Wireless Mouse" && p.Stock == 0 && p.Rating == 0
		})).Return(model.Product{ID: "new-id", Name: "Wireless Mouse", Price: 999}, nil)

		svc := newTestService(mockRepo)

		created, err := svc.Create(createInput())
		require.NoError(t, err)
		assert.Equal(t, "new-id", created.ID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Validation failure performs no mutation", func(t *testing.T) {
		mockRepo := new(MockCatalogRepository)
		svc := newTestService(mockRepo)

		input := createInput()
		input.Name = strPtr("A")
		input.Price = floatPtr(-1)

		_, err := svc.Create(input)

		var valErr *model.ValidationError
		require.ErrorAs(t, err, &valErr)
		assert.Len(t, valErr.Fields, 2, "every violation must be reported at once")
		mockRepo.AssertNotCalled(t, "Create", mock.Anything)
	})

	t.Run("Supplied stock and rating are kept", func(t *testing.T) {
		mockRepo := new(MockCatalogRepository)
		mockRepo.On("Create", mock.MatchedBy(func(p model.Product) bool {
			return p.Stock == 15 && p.Rating == 4.8
		})).Return(model.Product{ID: "new-id"}, nil)

		svc := newTestService(mockRepo)

		input := createInput()
		input.Stock = intPtr(15)
		input.Rating = floatPtr(4.8)

		_, err := svc.Create(input)
		require.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})
}

func TestCatalogService_Replace(t *testing.T) {
	t.Run("Unknown id wins over validation", func(t *testing.T) {
		mockRepo := new(MockCatalogRepository)
		mockRepo.On("GetByID", "missing").Return(model.Product{}, model.ErrProductNotFound)

		svc := newTestService(mockRepo)

		_, err := svc.Replace("missing", model.ProductInput{})
		assert.ErrorIs(t, err, model.ErrProductNotFound)
		mockRepo.AssertNotCalled(t, "Replace", mock.Anything)
	})

	t.Run("Missing required fields rejected", func(t *testing.T) {
		mockRepo := new(MockCatalogRepository)
		mockRepo.On("GetByID", "p1").Return(model.Product{ID: "p1"}, nil)

		svc := newTestService(mockRepo)

		_, err := svc.Replace("p1", model.ProductInput{Name: strPtr("Mouse")})

		var valErr *model.ValidationError
		require.ErrorAs(t, err, &valErr)
		mockRepo.AssertNotCalled(t, "Replace", mock.Anything)
	})

	t.Run("Overwrites every field except id", func(t *testing.T) {
		mockRepo := new(MockCatalogRepository)
		mockRepo.On("GetByID", "p1").Return(model.Product{ID: "p1", Name: "Old", Stock: 9, Rating: 3}, nil)
		mockRepo.On("Replace", mock.MatchedBy(func(p model.Product) bool {
			// absent optional fields reset to their defaults
			return p.ID == "p1" && p.Name == "Wireless Mouse" && p.Stock == 0 && p.Rating == 0
		})).Return(model.Product{ID: "p1", Name: "Wireless Mouse", Price: 999}, nil)

		svc := newTestService(mockRepo)

		replaced, err := svc.Replace("p1", createInput())
		require.NoError(t, err)
		assert.Equal(t, "p1", replaced.ID)
		mockRepo.AssertExpectations(t)
	})
}

func TestCatalogService_Patch(t *testing.T) {
	t.Run("Merges only supplied fields under the repository lock", func(t *testing.T) {
		stored := model.Product{ID: "p1", Name: "Mouse", Category: "Peripherals", Description: "Wireless", Price: 999, Stock: 5, Rating: 4.5}

		mockRepo := new(MockCatalogRepository)
		mockRepo.On("GetByID", "p1").Return(stored, nil)
		mockRepo.On("Update", "p1", mock.AnythingOfType("func(*model.Product)")).
			Run(func(args mock.Arguments) {
				mutate := args.Get(1).(func(*model.Product))
				mutate(&stored)
			}).
			Return(stored, nil).
			Once()

		svc := newTestService(mockRepo)

		_, err := svc.Patch("p1", model.ProductInput{Stock: intPtr(0)})
		require.NoError(t, err)

		assert.Equal(t, 0, stored.Stock, "zero stock must be applied, not skipped")
		assert.Equal(t, "Mouse", stored.Name)
		assert.Equal(t, 999.0, stored.Price)
	})

	t.Run("Empty input leaves the record untouched", func(t *testing.T) {
		stored := model.Product{ID: "p1", Name: "Mouse", Price: 999, Stock: 5}
		before := stored

		mockRepo := new(MockCatalogRepository)
		mockRepo.On("GetByID", "p1").Return(stored, nil)
		mockRepo.On("Update", "p1", mock.AnythingOfType("func(*model.Product)")).
			Run(func(args mock.Arguments) {
				mutate := args.Get(1).(func(*model.Product))
				mutate(&stored)
			}).
			Return(stored, nil)

		svc := newTestService(mockRepo)

		_, err := svc.Patch("p1", model.ProductInput{})
		require.NoError(t, err)
		assert.Equal(t, before, stored)
	})

	t.Run("Invalid supplied field rejected without mutation", func(t *testing.T) {
		mockRepo := new(MockCatalogRepository)
		mockRepo.On("GetByID", "p1").Return(model.Product{ID: "p1"}, nil)

		svc := newTestService(mockRepo)

		_, err := svc.Patch("p1", model.ProductInput{Rating: floatPtr(7)})

		var valErr *model.ValidationError
		require.ErrorAs(t, err, &valErr)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Unknown id", func(t *testing.T) {
		mockRepo := new(MockCatalogRepository)
		mockRepo.On("GetByID", "missing").Return(model.Product{}, model.ErrProductNotFound)

		svc := newTestService(mockRepo)

		_, err := svc.Patch("missing", model.ProductInput{Stock: intPtr(1)})
		assert.ErrorIs(t, err, model.ErrProductNotFound)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Unknown id wins over validation", func(t *testing.T) {
		mockRepo := new(MockCatalogRepository)
		mockRepo.On("GetByID", "missing").Return(model.Product{}, model.ErrProductNotFound)

		svc := newTestService(mockRepo)

		_, err := svc.Patch("missing", model.ProductInput{Price: floatPtr(-1)})
		assert.ErrorIs(t, err, model.ErrProductNotFound)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestCatalogService_Delete(t *testing.T) {
	mockRepo := new(MockCatalogRepository)
	mockRepo.On("Delete", "p1").Return(model.Product{ID: "p1", Name: "Mouse"}, nil)
	mockRepo.On("Delete", "missing").Return(model.Product{}, model.ErrProductNotFound)

	svc := newTestService(mockRepo)

	removed, err := svc.Delete("p1")
	require.NoError(t, err)
	assert.Equal(t, "Mouse", removed.Name)

	_, err = svc.Delete("missing")
	assert.ErrorIs(t, err, model.ErrProductNotFound)
}

func TestCatalogService_Categories(t *testing.T) {
	mockRepo := new(MockCatalogRepository)
	mockRepo.On("GetAll").Return([]model.Product{
		{ID: "p1", Category: "Audio"},
		{ID: "p2", Category: "Peripherals"},
		{ID: "p3", Category: "Audio"},
		{ID: "p4", Category: "Monitors"},
	})

	svc := newTestService(mockRepo)

	assert.Equal(t, []string{"Audio", "Peripherals", "Monitors"}, svc.Categories())
}

func TestCatalogService_List(t *testing.T) {
	products := []model.Product{{ID: "p1", Name: "Mouse", Price: 999}}

	mockRepo := new(MockCatalogRepository)
	mockRepo.On("Filter", mock.Anything).Return(products, 5, nil)

	svc := newTestService(mockRepo)

	result, total, err := svc.List(repository.ProductFilter{Category: "periph"})
	require.NoError(t, err)
	assert.Equal(t, products, result)
	assert.Equal(t, 5, total)
}
