package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/musasahinkundakci/firebase-backend-recipe/internal/models"
	"github.com/musasahinkundakci/firebase-backend-recipe/internal/repository"
)

// MockRecipeStore is a testify mock of service.RecipeStore.
type MockRecipeStore struct {
	mock.Mock
}

func (m *MockRecipeStore) Insert(ctx context.Context, recipe *models.Recipe) (string, error) {
	args := m.Called(ctx, recipe)
	return args.String(0), args.Error(1)
}

func (m *MockRecipeStore) FindByID(ctx context.Context, id string) (*models.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recipe), args.Error(1)
}

func (m *MockRecipeStore) Replace(ctx context.Context, id string, recipe *models.Recipe) error {
	args := m.Called(ctx, id, recipe)
	return args.Error(0)
}

func (m *MockRecipeStore) Delete(ctx context.Context, id string) (*models.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recipe), args.Error(1)
}

func (m *MockRecipeStore) List(ctx context.Context, q repository.ListQuery) ([]models.Recipe, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Recipe), args.Error(1)
}

func (m *MockRecipeStore) FindUnpublished(ctx context.Context) ([]models.Recipe, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Recipe), args.Error(1)
}

func (m *MockRecipeStore) SetPublished(ctx context.Context, id string, published bool) error {
	args := m.Called(ctx, id, published)
	return args.Error(0)
}

// MockCounterStore is a testify mock of service.CounterStore.
type MockCounterStore struct {
	mock.Mock
}

func (m *MockCounterStore) Adjust(ctx context.Context, name string, delta int64) error {
	args := m.Called(ctx, name, delta)
	return args.Error(0)
}

func (m *MockCounterStore) Get(ctx context.Context, name string) (int64, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(int64), args.Error(1)
}

// MockObjectStore is a testify mock of service.ObjectStore.
type MockObjectStore struct {
	mock.Mock
}

func (m *MockObjectStore) DeleteObject(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}
