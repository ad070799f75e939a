package usecase

import (
	"context"
	"io/fs"
	"sync"

	"recipe_backend/internal/domain"
	"recipe_backend/internal/domain/entity"
)

// Func-field mocks for the repository interfaces. Unset fields fall
// back to a sensible default so each test only wires what it asserts.

type mockUserRepository struct {
	CreateFunc           func(ctx context.Context, user *entity.User) error
	UpdateFunc           func(ctx context.Context, user *entity.User) error
	FindByIDFunc         func(ctx context.Context, id uint) (*entity.User, error)
	FindByUsernameFunc   func(ctx context.Context, username string) (*entity.User, error)
	FindAllFunc          func(ctx context.Context) ([]*entity.User, error)
	ExistsByIDFunc       func(ctx context.Context, id uint) (bool, error)
	ExistsByUsernameFunc func(ctx context.Context, username string) (bool, error)
	DeleteFunc           func(ctx context.Context, id uint) error
	UpdateImageKeyFunc   func(ctx context.Context, id uint, key string) error
	RecipesByAuthorFunc  func(ctx context.Context, userID uint) ([]*entity.Recipe, error)
	MenusByAuthorFunc    func(ctx context.Context, userID uint) ([]*entity.Menu, error)
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	user.ID = 1
	return nil
}

func (m *mockUserRepository) Update(ctx context.Context, user *entity.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, user)
	}
	return nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrUserNotFound
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	if m.FindByUsernameFunc != nil {
		return m.FindByUsernameFunc(ctx, username)
	}
	return nil, domain.ErrUserNotFound
}

func (m *mockUserRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockUserRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	if m.ExistsByIDFunc != nil {
		return m.ExistsByIDFunc(ctx, id)
	}
	return false, nil
}

func (m *mockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	if m.ExistsByUsernameFunc != nil {
		return m.ExistsByUsernameFunc(ctx, username)
	}
	return false, nil
}

func (m *mockUserRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockUserRepository) UpdateImageKey(ctx context.Context, id uint, key string) error {
	if m.UpdateImageKeyFunc != nil {
		return m.UpdateImageKeyFunc(ctx, id, key)
	}
	return nil
}

func (m *mockUserRepository) RecipesByAuthor(ctx context.Context, userID uint) ([]*entity.Recipe, error) {
	if m.RecipesByAuthorFunc != nil {
		return m.RecipesByAuthorFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockUserRepository) MenusByAuthor(ctx context.Context, userID uint) ([]*entity.Menu, error) {
	if m.MenusByAuthorFunc != nil {
		return m.MenusByAuthorFunc(ctx, userID)
	}
	return nil, nil
}

type mockRoleRepository struct {
	FindByNameFunc func(ctx context.Context, name string) (*entity.Role, error)
}

func (m *mockRoleRepository) FindByName(ctx context.Context, name string) (*entity.Role, error) {
	if m.FindByNameFunc != nil {
		return m.FindByNameFunc(ctx, name)
	}
	return &entity.Role{ID: 1, Name: name}, nil
}

type mockTokenProvider struct {
	GenerateFunc func(userID uint, username string, roles []string) (string, error)
}

func (m *mockTokenProvider) Generate(userID uint, username string, roles []string) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(userID, username, roles)
	}
	return "mock-token", nil
}

type mockRecipeRepository struct {
	CreateFunc             func(ctx context.Context, recipe *entity.Recipe) error
	UpdateFunc             func(ctx context.Context, recipe *entity.Recipe) error
	FindByIDFunc           func(ctx context.Context, id uint) (*entity.Recipe, error)
	FindAllFunc            func(ctx context.Context) ([]*entity.Recipe, error)
	ExistsByIDFunc         func(ctx context.Context, id uint) (bool, error)
	DeleteFunc             func(ctx context.Context, id uint) error
	UpdateImageKeyFunc     func(ctx context.Context, id uint, key string) error
	MenusOfFunc            func(ctx context.Context, id uint) ([]*entity.Menu, error)
	CommentsOfFunc         func(ctx context.Context, id uint) ([]*entity.Comment, error)
	IngredientsOfFunc      func(ctx context.Context, id uint) ([]*entity.Ingredient, error)
	AttachIngredientsFunc  func(ctx context.Context, id uint, ingredientIDs []uint) error
	DetachIngredientsFunc  func(ctx context.Context, id uint, ingredientIDs []uint) error
	ReplaceIngredientsFunc func(ctx context.Context, id uint, ingredientIDs []uint) error
}

func (m *mockRecipeRepository) Create(ctx context.Context, recipe *entity.Recipe) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, recipe)
	}
	recipe.ID = 1
	return nil
}

func (m *mockRecipeRepository) Update(ctx context.Context, recipe *entity.Recipe) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, recipe)
	}
	return nil
}

func (m *mockRecipeRepository) FindByID(ctx context.Context, id uint) (*entity.Recipe, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrRecipeNotFound
}

func (m *mockRecipeRepository) FindAll(ctx context.Context) ([]*entity.Recipe, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockRecipeRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	if m.ExistsByIDFunc != nil {
		return m.ExistsByIDFunc(ctx, id)
	}
	return false, nil
}

func (m *mockRecipeRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockRecipeRepository) UpdateImageKey(ctx context.Context, id uint, key string) error {
	if m.UpdateImageKeyFunc != nil {
		return m.UpdateImageKeyFunc(ctx, id, key)
	}
	return nil
}

func (m *mockRecipeRepository) MenusOf(ctx context.Context, id uint) ([]*entity.Menu, error) {
	if m.MenusOfFunc != nil {
		return m.MenusOfFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockRecipeRepository) CommentsOf(ctx context.Context, id uint) ([]*entity.Comment, error) {
	if m.CommentsOfFunc != nil {
		return m.CommentsOfFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockRecipeRepository) IngredientsOf(ctx context.Context, id uint) ([]*entity.Ingredient, error) {
	if m.IngredientsOfFunc != nil {
		return m.IngredientsOfFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockRecipeRepository) AttachIngredients(ctx context.Context, id uint, ingredientIDs []uint) error {
	if m.AttachIngredientsFunc != nil {
		return m.AttachIngredientsFunc(ctx, id, ingredientIDs)
	}
	return nil
}

func (m *mockRecipeRepository) DetachIngredients(ctx context.Context, id uint, ingredientIDs []uint) error {
	if m.DetachIngredientsFunc != nil {
		return m.DetachIngredientsFunc(ctx, id, ingredientIDs)
	}
	return nil
}

func (m *mockRecipeRepository) ReplaceIngredients(ctx context.Context, id uint, ingredientIDs []uint) error {
	if m.ReplaceIngredientsFunc != nil {
		return m.ReplaceIngredientsFunc(ctx, id, ingredientIDs)
	}
	return nil
}

type mockIngredientRepository struct {
	CreateFunc         func(ctx context.Context, ingredient *entity.Ingredient) error
	UpdateFunc         func(ctx context.Context, ingredient *entity.Ingredient) error
	FindByIDFunc       func(ctx context.Context, id uint) (*entity.Ingredient, error)
	FindAllFunc        func(ctx context.Context) ([]*entity.Ingredient, error)
	ExistsByIDFunc     func(ctx context.Context, id uint) (bool, error)
	DeleteFunc         func(ctx context.Context, id uint) error
	UpdateImageKeyFunc func(ctx context.Context, id uint, key string) error
}

func (m *mockIngredientRepository) Create(ctx context.Context, ingredient *entity.Ingredient) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, ingredient)
	}
	ingredient.ID = 1
	return nil
}

func (m *mockIngredientRepository) Update(ctx context.Context, ingredient *entity.Ingredient) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, ingredient)
	}
	return nil
}

func (m *mockIngredientRepository) FindByID(ctx context.Context, id uint) (*entity.Ingredient, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrIngredientNotFound
}

func (m *mockIngredientRepository) FindAll(ctx context.Context) ([]*entity.Ingredient, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockIngredientRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	if m.ExistsByIDFunc != nil {
		return m.ExistsByIDFunc(ctx, id)
	}
	return false, nil
}

func (m *mockIngredientRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockIngredientRepository) UpdateImageKey(ctx context.Context, id uint, key string) error {
	if m.UpdateImageKeyFunc != nil {
		return m.UpdateImageKeyFunc(ctx, id, key)
	}
	return nil
}

type mockMenuRepository struct {
	CreateFunc         func(ctx context.Context, menu *entity.Menu) error
	UpdateFunc         func(ctx context.Context, menu *entity.Menu) error
	FindByIDFunc       func(ctx context.Context, id uint) (*entity.Menu, error)
	FindAllFunc        func(ctx context.Context) ([]*entity.Menu, error)
	ExistsByIDFunc     func(ctx context.Context, id uint) (bool, error)
	DeleteFunc         func(ctx context.Context, id uint) error
	UpdateImageKeyFunc func(ctx context.Context, id uint, key string) error
	RecipesOfFunc      func(ctx context.Context, id uint) ([]*entity.Recipe, error)
	AttachRecipesFunc  func(ctx context.Context, id uint, recipeIDs []uint) error
	DetachRecipesFunc  func(ctx context.Context, id uint, recipeIDs []uint) error
}

func (m *mockMenuRepository) Create(ctx context.Context, menu *entity.Menu) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, menu)
	}
	menu.ID = 1
	return nil
}

func (m *mockMenuRepository) Update(ctx context.Context, menu *entity.Menu) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, menu)
	}
	return nil
}

func (m *mockMenuRepository) FindByID(ctx context.Context, id uint) (*entity.Menu, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrMenuNotFound
}

func (m *mockMenuRepository) FindAll(ctx context.Context) ([]*entity.Menu, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockMenuRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	if m.ExistsByIDFunc != nil {
		return m.ExistsByIDFunc(ctx, id)
	}
	return false, nil
}

func (m *mockMenuRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockMenuRepository) UpdateImageKey(ctx context.Context, id uint, key string) error {
	if m.UpdateImageKeyFunc != nil {
		return m.UpdateImageKeyFunc(ctx, id, key)
	}
	return nil
}

func (m *mockMenuRepository) RecipesOf(ctx context.Context, id uint) ([]*entity.Recipe, error) {
	if m.RecipesOfFunc != nil {
		return m.RecipesOfFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockMenuRepository) AttachRecipes(ctx context.Context, id uint, recipeIDs []uint) error {
	if m.AttachRecipesFunc != nil {
		return m.AttachRecipesFunc(ctx, id, recipeIDs)
	}
	return nil
}

func (m *mockMenuRepository) DetachRecipes(ctx context.Context, id uint, recipeIDs []uint) error {
	if m.DetachRecipesFunc != nil {
		return m.DetachRecipesFunc(ctx, id, recipeIDs)
	}
	return nil
}

type mockCommentRepository struct {
	CreateFunc   func(ctx context.Context, comment *entity.Comment) error
	UpdateFunc   func(ctx context.Context, comment *entity.Comment) error
	FindByIDFunc func(ctx context.Context, id uint) (*entity.Comment, error)
	FindAllFunc  func(ctx context.Context) ([]*entity.Comment, error)
	DeleteFunc   func(ctx context.Context, id uint) error
}

func (m *mockCommentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, comment)
	}
	comment.ID = 1
	return nil
}

func (m *mockCommentRepository) Update(ctx context.Context, comment *entity.Comment) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, comment)
	}
	return nil
}

func (m *mockCommentRepository) FindByID(ctx context.Context, id uint) (*entity.Comment, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrCommentNotFound
}

func (m *mockCommentRepository) FindAll(ctx context.Context) ([]*entity.Comment, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockCommentRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// memStorage is an in-memory blob store for image round-trip tests.
type memStorage struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

func newMemStorage() *memStorage {
	return &memStorage{blobs: make(map[string][]byte)}
}

func (s *memStorage) Put(ctx context.Context, data []byte, key, bucket string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[bucket+"/"+key] = append([]byte(nil), data...)
	return nil
}

func (s *memStorage) Get(ctx context.Context, key, bucket string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.blobs[bucket+"/"+key]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return data, nil
}

func (s *memStorage) Delete(ctx context.Context, key, bucket string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.blobs, bucket+"/"+key)
	return nil
}

func (s *memStorage) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.blobs)
}
