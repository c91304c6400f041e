package mocks

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/musasahinkundakci/firebase-backend-recipe/internal/models"
	"github.com/musasahinkundakci/firebase-backend-recipe/internal/repository"
)

// ErrDuplicateKey mimics the unique-index violation of the real store.
var ErrDuplicateKey = errors.New("duplicate key")

// MemRecipeStore is an in-memory service.RecipeStore with the same
// observable semantics as the Mongo repository, including idempotent
// deletes and list filtering, ordering and pagination.
type MemRecipeStore struct {
	mu      sync.Mutex
	recipes map[string]models.Recipe
	order   []string
}

func NewMemRecipeStore() *MemRecipeStore {
	return &MemRecipeStore{recipes: make(map[string]models.Recipe)}
}

func (s *MemRecipeStore) Insert(ctx context.Context, recipe *models.Recipe) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	recipe.ID = uuid.NewString()
	s.recipes[recipe.ID] = *recipe
	s.order = append(s.order, recipe.ID)
	return recipe.ID, nil
}

func (s *MemRecipeStore) FindByID(ctx context.Context, id string) (*models.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	recipe, ok := s.recipes[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &recipe, nil
}

func (s *MemRecipeStore) Replace(ctx context.Context, id string, recipe *models.Recipe) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	recipe.ID = id
	if _, ok := s.recipes[id]; !ok {
		s.order = append(s.order, id)
	}
	s.recipes[id] = *recipe
	return nil
}

func (s *MemRecipeStore) Delete(ctx context.Context, id string) (*models.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	recipe, ok := s.recipes[id]
	if !ok {
		return nil, nil
	}
	delete(s.recipes, id)
	for i, other := range s.order {
		if other == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return &recipe, nil
}

func (s *MemRecipeStore) List(ctx context.Context, q repository.ListQuery) ([]models.Recipe, error) {
	s.mu.Lock()
	matched := []models.Recipe{}
	for _, id := range s.order {
		recipe := s.recipes[id]
		if q.PublishedOnly && !recipe.IsPublished {
			continue
		}
		if q.Category != "" && recipe.Category != q.Category {
			continue
		}
		matched = append(matched, recipe)
	}
	s.mu.Unlock()

	if q.OrderByField != "" {
		desc := strings.EqualFold(q.OrderByDirection, "desc")
		sort.SliceStable(matched, func(i, j int) bool {
			if desc {
				return recipeLess(matched[j], matched[i], q.OrderByField)
			}
			return recipeLess(matched[i], matched[j], q.OrderByField)
		})
	}

	if q.PerPage > 0 {
		offset := int64(0)
		if q.PageNumber > 0 {
			offset = (q.PageNumber - 1) * q.PerPage
		}
		if offset >= int64(len(matched)) {
			return []models.Recipe{}, nil
		}
		matched = matched[offset:]
		if int64(len(matched)) > q.PerPage {
			matched = matched[:q.PerPage]
		}
	}
	return matched, nil
}

func recipeLess(a, b models.Recipe, field string) bool {
	switch field {
	case "name":
		return a.Name < b.Name
	case "category":
		return a.Category < b.Category
	case "publishDate":
		return a.PublishDate.Before(b.PublishDate)
	default:
		return false
	}
}

func (s *MemRecipeStore) FindUnpublished(ctx context.Context) ([]models.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Recipe{}
	for _, id := range s.order {
		if recipe := s.recipes[id]; !recipe.IsPublished {
			out = append(out, recipe)
		}
	}
	return out, nil
}

func (s *MemRecipeStore) SetPublished(ctx context.Context, id string, published bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	recipe, ok := s.recipes[id]
	if !ok {
		return nil
	}
	recipe.IsPublished = published
	s.recipes[id] = recipe
	return nil
}

// Len reports the number of stored recipes.
func (s *MemRecipeStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.recipes)
}

// MemCounterStore is an in-memory service.CounterStore with the same
// clamp-at-zero adjust semantics as the Mongo repository.
type MemCounterStore struct {
	mu     sync.Mutex
	counts map[string]int64
}

func NewMemCounterStore() *MemCounterStore {
	return &MemCounterStore{counts: make(map[string]int64)}
}

func (s *MemCounterStore) Adjust(ctx context.Context, name string, delta int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := s.counts[name] + delta
	if v < 0 {
		v = 0
	}
	s.counts[name] = v
	return nil
}

func (s *MemCounterStore) Get(ctx context.Context, name string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counts[name], nil
}

// MemAccountStore is an in-memory service.AccountStore.
type MemAccountStore struct {
	mu       sync.Mutex
	accounts map[string]models.Account // keyed by email
}

func NewMemAccountStore() *MemAccountStore {
	return &MemAccountStore{accounts: make(map[string]models.Account)}
}

func (s *MemAccountStore) Insert(ctx context.Context, account *models.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[account.Email]; ok {
		return ErrDuplicateKey
	}
	s.accounts[account.Email] = *account
	return nil
}

func (s *MemAccountStore) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	account, ok := s.accounts[email]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &account, nil
}

// MemProfileStore is an in-memory service.ProfileStore with insert-once
// semantics.
type MemProfileStore struct {
	mu       sync.Mutex
	profiles map[string]models.UserProfile
}

func NewMemProfileStore() *MemProfileStore {
	return &MemProfileStore{profiles: make(map[string]models.UserProfile)}
}

func (s *MemProfileStore) Insert(ctx context.Context, profile *models.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.profiles[profile.ID]; ok {
		return ErrDuplicateKey
	}
	s.profiles[profile.ID] = *profile
	return nil
}

func (s *MemProfileStore) FindByID(ctx context.Context, id string) (*models.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	profile, ok := s.profiles[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &profile, nil
}
