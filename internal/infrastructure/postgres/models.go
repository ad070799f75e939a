// Package postgres provides the GORM repository implementations. The
// cascade rules of the domain are written out here as explicit,
// transaction-bounded statements rather than left to database-level
// ON DELETE clauses, so the dependency graph of every delete is
// auditable in one place.
package postgres

import (
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"recipe_backend/internal/domain/entity"
)

// UserModel is the persistence shape of entity.User.
type UserModel struct {
	ID          uint   `gorm:"primaryKey"`
	Username    string `gorm:"uniqueIndex;size:255;not null"`
	Email       string `gorm:"size:255"`
	Password    string `gorm:"size:255;not null"`
	PhoneNumber string `gorm:"size:64"`
	ImageKey    string `gorm:"size:64"`
	CreatedAt   time.Time

	Roles []RoleModel `gorm:"many2many:users_roles;joinForeignKey:user_id;joinReferences:role_id"`
}

func (UserModel) TableName() string { return "users" }

// RoleModel is the persistence shape of entity.Role.
type RoleModel struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;size:64;not null"`
}

func (RoleModel) TableName() string { return "roles" }

// RecipeModel is the persistence shape of entity.Recipe.
type RecipeModel struct {
	ID              uint   `gorm:"primaryKey"`
	Name            string `gorm:"size:255;not null"`
	Description     string `gorm:"size:2048"`
	SecondsDuration int64
	ProductsCost    int64
	Complexity      string `gorm:"size:16"`
	ImageKey        string `gorm:"size:64"`
	CreatedAt       time.Time
	AuthorID        uint       `gorm:"index;not null"`
	Author          *UserModel `gorm:"foreignKey:AuthorID"`

	Ingredients []IngredientModel `gorm:"many2many:recipes_ingredients;joinForeignKey:recipe_id;joinReferences:ingredient_id"`
}

func (RecipeModel) TableName() string { return "recipes" }

// MenuModel is the persistence shape of entity.Menu.
type MenuModel struct {
	ID       uint   `gorm:"primaryKey"`
	Name     string `gorm:"size:255;not null"`
	ImageKey string `gorm:"size:64"`
	AuthorID uint       `gorm:"index;not null"`
	Author   *UserModel `gorm:"foreignKey:AuthorID"`

	Recipes []RecipeModel `gorm:"many2many:menus_recipes;joinForeignKey:menu_id;joinReferences:recipe_id"`
}

func (MenuModel) TableName() string { return "menus" }

// IngredientModel is the persistence shape of entity.Ingredient.
type IngredientModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:255;not null"`
	ImageKey  string `gorm:"size:64"`
	CreatedAt time.Time
}

func (IngredientModel) TableName() string { return "ingredients" }

// CommentModel is the persistence shape of entity.Comment.
type CommentModel struct {
	ID        uint   `gorm:"primaryKey"`
	Text      string `gorm:"size:2048;not null"`
	CreatedAt time.Time
	AuthorID  uint         `gorm:"index;not null"`
	Author    *UserModel   `gorm:"foreignKey:AuthorID"`
	RecipeID  uint         `gorm:"index;not null"`
	Recipe    *RecipeModel `gorm:"foreignKey:RecipeID"`
}

func (CommentModel) TableName() string { return "comments" }

// Models lists every model for schema automigration. The many2many tags
// above make AutoMigrate create the join tables as well.
func Models() []any {
	return []any{
		&UserModel{},
		&RoleModel{},
		&RecipeModel{},
		&MenuModel{},
		&IngredientModel{},
		&CommentModel{},
	}
}

// SeedRoles makes sure the built-in roles exist. Signup depends on
// ROLE_USER being present.
func SeedRoles(db *gorm.DB) error {
	for _, name := range []string{"ROLE_USER", "ROLE_ADMIN"} {
		role := RoleModel{Name: name}
		if err := db.Where("name = ?", name).FirstOrCreate(&role).Error; err != nil {
			return err
		}
	}
	return nil
}

// isUniqueViolation reports whether the error is a unique-constraint
// violation. gorm translates most driver errors; the pgconn check
// catches the ones raised inside raw statements.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// Entity mapping. Hydration goes through the paired entity methods so
// the in-memory graph comes out consistent on both sides.

func roleEntity(m *RoleModel) *entity.Role {
	return &entity.Role{ID: m.ID, Name: m.Name}
}

func userEntity(m *UserModel) *entity.User {
	u := &entity.User{
		ID:          m.ID,
		Username:    m.Username,
		Email:       m.Email,
		Password:    m.Password,
		PhoneNumber: m.PhoneNumber,
		ImageKey:    m.ImageKey,
		CreatedAt:   m.CreatedAt,
	}
	for i := range m.Roles {
		u.AddRole(roleEntity(&m.Roles[i]))
	}
	return u
}

func ingredientEntity(m *IngredientModel) *entity.Ingredient {
	return &entity.Ingredient{
		ID:        m.ID,
		Name:      m.Name,
		ImageKey:  m.ImageKey,
		CreatedAt: m.CreatedAt,
	}
}

func recipeEntity(m *RecipeModel) *entity.Recipe {
	r := &entity.Recipe{
		ID:              m.ID,
		Name:            m.Name,
		Description:     m.Description,
		SecondsDuration: m.SecondsDuration,
		ProductsCost:    m.ProductsCost,
		Complexity:      entity.Complexity(m.Complexity),
		ImageKey:        m.ImageKey,
		CreatedAt:       m.CreatedAt,
	}
	if m.Author != nil {
		userEntity(m.Author).AddRecipe(r)
	}
	for i := range m.Ingredients {
		r.AddIngredient(ingredientEntity(&m.Ingredients[i]))
	}
	return r
}

func menuEntity(m *MenuModel) *entity.Menu {
	menu := &entity.Menu{
		ID:       m.ID,
		Name:     m.Name,
		ImageKey: m.ImageKey,
	}
	if m.Author != nil {
		userEntity(m.Author).AddMenu(menu)
	}
	for i := range m.Recipes {
		menu.AddRecipe(recipeEntity(&m.Recipes[i]))
	}
	return menu
}

func commentEntity(m *CommentModel) *entity.Comment {
	c := &entity.Comment{
		ID:        m.ID,
		Text:      m.Text,
		CreatedAt: m.CreatedAt,
	}
	if m.Author != nil {
		userEntity(m.Author).AddComment(c)
	}
	if m.Recipe != nil {
		recipeEntity(m.Recipe).AddComment(c)
	}
	return c
}
