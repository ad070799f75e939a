// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"recipe_backend/internal/domain/entity"
	"recipe_backend/internal/usecase"
)

// CachingRecipeRepository decorates a RecipeRepository with Redis
// caching of the read paths that dominate traffic, FindAll and
// FindByID. Every mutation invalidates the whole namespace; the TTL
// bounds staleness introduced through the other repositories.
type CachingRecipeRepository struct {
	inner     usecase.RecipeRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.RecipeRepository = (*CachingRecipeRepository)(nil)

// NewCachingRecipeRepository decorates a RecipeRepository with Redis
// caching. If ttl is 0, it defaults to 5 minutes. If namespace is
// empty, it uses "recipes". A nil client disables caching entirely.
func NewCachingRecipeRepository(rdb *redis.Client, ttl time.Duration, inner usecase.RecipeRepository, namespace string) *CachingRecipeRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "recipes"
	}
	return &CachingRecipeRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// cachedUser is the cache shape of a recipe author. The password hash
// stays out of Redis; nothing on the read path needs it.
type cachedUser struct {
	ID          uint      `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number"`
	ImageKey    string    `json:"image_key"`
	CreatedAt   time.Time `json:"created_at"`
}

// cachedIngredient is the cache shape of an attached ingredient.
type cachedIngredient struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	ImageKey  string    `json:"image_key"`
	CreatedAt time.Time `json:"created_at"`
}

// cachedRecipe is the cache shape of a recipe. The entity keeps its
// associations unexported, so the decorator flattens the graph into
// this struct and rebuilds it on hits.
type cachedRecipe struct {
	ID              uint               `json:"id"`
	Name            string             `json:"name"`
	Description     string             `json:"description"`
	SecondsDuration int64              `json:"seconds_duration"`
	ProductsCost    int64              `json:"products_cost"`
	Complexity      string             `json:"complexity"`
	ImageKey        string             `json:"image_key"`
	CreatedAt       time.Time          `json:"created_at"`
	Author          *cachedUser        `json:"author,omitempty"`
	Ingredients     []cachedIngredient `json:"ingredients,omitempty"`
}

func toCached(r *entity.Recipe) cachedRecipe {
	c := cachedRecipe{
		ID:              r.ID,
		Name:            r.Name,
		Description:     r.Description,
		SecondsDuration: r.SecondsDuration,
		ProductsCost:    r.ProductsCost,
		Complexity:      string(r.Complexity),
		ImageKey:        r.ImageKey,
		CreatedAt:       r.CreatedAt,
	}
	if a := r.Author(); a != nil {
		c.Author = &cachedUser{
			ID:          a.ID,
			Username:    a.Username,
			Email:       a.Email,
			PhoneNumber: a.PhoneNumber,
			ImageKey:    a.ImageKey,
			CreatedAt:   a.CreatedAt,
		}
	}
	for _, i := range r.Ingredients() {
		c.Ingredients = append(c.Ingredients, cachedIngredient{
			ID:        i.ID,
			Name:      i.Name,
			ImageKey:  i.ImageKey,
			CreatedAt: i.CreatedAt,
		})
	}
	return c
}

func fromCached(c cachedRecipe) *entity.Recipe {
	r := &entity.Recipe{
		ID:              c.ID,
		Name:            c.Name,
		Description:     c.Description,
		SecondsDuration: c.SecondsDuration,
		ProductsCost:    c.ProductsCost,
		Complexity:      entity.Complexity(c.Complexity),
		ImageKey:        c.ImageKey,
		CreatedAt:       c.CreatedAt,
	}
	if c.Author != nil {
		author := &entity.User{
			ID:          c.Author.ID,
			Username:    c.Author.Username,
			Email:       c.Author.Email,
			PhoneNumber: c.Author.PhoneNumber,
			ImageKey:    c.Author.ImageKey,
			CreatedAt:   c.Author.CreatedAt,
		}
		author.AddRecipe(r)
	}
	for _, ci := range c.Ingredients {
		r.AddIngredient(&entity.Ingredient{
			ID:        ci.ID,
			Name:      ci.Name,
			ImageKey:  ci.ImageKey,
			CreatedAt: ci.CreatedAt,
		})
	}
	return r
}

// FindAll retrieves all recipes, checking cache first then falling back
// to the database.
func (c *CachingRecipeRepository) FindAll(ctx context.Context) ([]*entity.Recipe, error) {
	if c.rdb == nil {
		return c.inner.FindAll(ctx)
	}

	key := c.namespace + ":all"
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var cached []cachedRecipe
		if err := json.Unmarshal(b, &cached); err == nil {
			out := make([]*entity.Recipe, 0, len(cached))
			for _, cr := range cached {
				out = append(out, fromCached(cr))
			}
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	cached := make([]cachedRecipe, 0, len(out))
	for _, r := range out {
		cached = append(cached, toCached(r))
	}
	if b, err := json.Marshal(cached); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err() // Best effort
	}
	return out, nil
}

// FindByID retrieves one recipe, checking cache first then falling back
// to the database.
func (c *CachingRecipeRepository) FindByID(ctx context.Context, id uint) (*entity.Recipe, error) {
	if c.rdb == nil {
		return c.inner.FindByID(ctx, id)
	}

	key := c.idKey(id)
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var cached cachedRecipe
		if err := json.Unmarshal(b, &cached); err == nil {
			return fromCached(cached), nil
		}
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(toCached(out)); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err() // Best effort
	}
	return out, nil
}

// Create persists the recipe and invalidates the namespace.
func (c *CachingRecipeRepository) Create(ctx context.Context, recipe *entity.Recipe) error {
	if err := c.inner.Create(ctx, recipe); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// Update persists the recipe's scalar fields and invalidates the namespace.
func (c *CachingRecipeRepository) Update(ctx context.Context, recipe *entity.Recipe) error {
	if err := c.inner.Update(ctx, recipe); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// Delete removes the recipe and invalidates the namespace.
func (c *CachingRecipeRepository) Delete(ctx context.Context, id uint) error {
	if err := c.inner.Delete(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// UpdateImageKey sets the image key and invalidates the namespace.
func (c *CachingRecipeRepository) UpdateImageKey(ctx context.Context, id uint, key string) error {
	if err := c.inner.UpdateImageKey(ctx, id, key); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// AttachIngredients delegates and invalidates the namespace.
func (c *CachingRecipeRepository) AttachIngredients(ctx context.Context, id uint, ingredientIDs []uint) error {
	if err := c.inner.AttachIngredients(ctx, id, ingredientIDs); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// DetachIngredients delegates and invalidates the namespace.
func (c *CachingRecipeRepository) DetachIngredients(ctx context.Context, id uint, ingredientIDs []uint) error {
	if err := c.inner.DetachIngredients(ctx, id, ingredientIDs); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// ReplaceIngredients delegates and invalidates the namespace.
func (c *CachingRecipeRepository) ReplaceIngredients(ctx context.Context, id uint, ingredientIDs []uint) error {
	if err := c.inner.ReplaceIngredients(ctx, id, ingredientIDs); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// ExistsByID always hits the database; existence must not lag behind
// deletes done through other paths.
func (c *CachingRecipeRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	return c.inner.ExistsByID(ctx, id)
}

// MenusOf is a pass-through: menu membership changes through the menu
// repository, which this decorator never sees.
func (c *CachingRecipeRepository) MenusOf(ctx context.Context, id uint) ([]*entity.Menu, error) {
	return c.inner.MenusOf(ctx, id)
}

// CommentsOf is a pass-through for the same reason as MenusOf.
func (c *CachingRecipeRepository) CommentsOf(ctx context.Context, id uint) ([]*entity.Comment, error) {
	return c.inner.CommentsOf(ctx, id)
}

// IngredientsOf is a pass-through; attached ingredients can be renamed
// through the ingredient repository.
func (c *CachingRecipeRepository) IngredientsOf(ctx context.Context, id uint) ([]*entity.Ingredient, error) {
	return c.inner.IngredientsOf(ctx, id)
}

func (c *CachingRecipeRepository) idKey(id uint) string {
	return fmt.Sprintf("%s:id:%d", c.namespace, id)
}

// invalidate deletes every key of the namespace using SCAN. Best
// effort: a failed invalidation only shortens to the TTL.
func (c *CachingRecipeRepository) invalidate(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	pattern := c.namespace + ":*"
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return
			}
		}
		cursor = cur
		if cursor == 0 {
			return
		}
	}
}
