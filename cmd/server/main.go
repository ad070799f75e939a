package main

import (
	"fmt"
	"log"
	"log/slog"

	redisv9 "github.com/redis/go-redis/v9"

	"recipe_backend/internal/app/router"
	"recipe_backend/internal/infrastructure/postgres"
	"recipe_backend/internal/interface/handler"
	"recipe_backend/internal/platform/cache"
	"recipe_backend/internal/platform/config"
	"recipe_backend/internal/platform/db"
	jwtmw "recipe_backend/internal/platform/jwt"
	"recipe_backend/internal/platform/redis"
	"recipe_backend/internal/platform/storage"
	"recipe_backend/internal/security/checker"
	"recipe_backend/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// db
	gdb := db.Open(cfg.DSN())
	if cfg.RunMigrations {
		if err := db.Migrate(gdb, postgres.Models(), postgres.SeedRoles); err != nil {
			log.Fatal(err)
		}
	}

	// Redis; the app runs without it, just uncached
	var rdb *redisv9.Client
	if cfg.RedisAddr != "" {
		if tmp, err := redis.NewClient(cfg.RedisAddr, cfg.RedisPassword); err != nil {
			slog.Warn("Redis unavailable, running without cache", "error", err)
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					slog.Error("Failed to close Redis client", "error", err)
				}
			}()
		}
	}

	// Blob storage
	blobs, err := storage.NewDisk(cfg.StorageRoot)
	if err != nil {
		log.Fatal(err)
	}

	// Repository
	userRepo := postgres.NewUserRepository(gdb)
	roleRepo := postgres.NewRoleRepository(gdb)
	recipeRepo := postgres.NewRecipeRepository(gdb)
	menuRepo := postgres.NewMenuRepository(gdb)
	ingredientRepo := postgres.NewIngredientRepository(gdb)
	commentRepo := postgres.NewCommentRepository(gdb)

	// Recipes are the hottest read path, so only they get the cache wrap.
	cachedRecipeRepo := cache.NewCachingRecipeRepository(rdb, cfg.CacheTTL, recipeRepo, "recipes")

	// Tokens
	tokens := jwtmw.NewProvider(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)

	// Usecase
	authUC := usecase.NewAuthUsecase(userRepo, roleRepo, tokens)
	userUC := usecase.NewUserUsecase(userRepo, blobs, cfg.StorageBucket)
	recipeUC := usecase.NewRecipeUsecase(cachedRecipeRepo, ingredientRepo, userRepo, blobs, cfg.StorageBucket)
	menuUC := usecase.NewMenuUsecase(menuRepo, cachedRecipeRepo, userRepo, blobs, cfg.StorageBucket)
	ingredientUC := usecase.NewIngredientUsecase(ingredientRepo, blobs, cfg.StorageBucket)
	commentUC := usecase.NewCommentUsecase(commentRepo, cachedRecipeRepo, userRepo)

	// Ownership checkers
	userCheck := checker.NewUserChecker(userRepo)
	recipeCheck := checker.NewRecipeChecker(cachedRecipeRepo)
	menuCheck := checker.NewMenuChecker(menuRepo)
	commentCheck := checker.NewCommentChecker(commentRepo)

	// Handler
	h := router.Handlers{
		Auth:        handler.NewAuthHandler(authUC),
		Users:       handler.NewUserHandler(userUC, userCheck),
		Recipes:     handler.NewRecipeHandler(recipeUC, recipeCheck),
		Menus:       handler.NewMenuHandler(menuUC, menuCheck),
		Ingredients: handler.NewIngredientHandler(ingredientUC),
		Comments:    handler.NewCommentHandler(commentUC, commentCheck),
	}

	r := router.NewRouter(tokens, h)

	if err := r.Run(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		log.Fatal(err)
	}
}
