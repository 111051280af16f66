package container

import (
	"context"
	"fmt"
	"log"

	"blog-backend/internal/config"
	"blog-backend/internal/infrastructure/database"

	"blog-backend/internal/domains/post"
	postHandler "blog-backend/internal/domains/post/handler"
	postRepo "blog-backend/internal/domains/post/repository"
	postService "blog-backend/internal/domains/post/service"
	"blog-backend/internal/domains/user"
	userHandler "blog-backend/internal/domains/user/handler"
	userRepo "blog-backend/internal/domains/user/repository"
	userService "blog-backend/internal/domains/user/service"
)

// Container chứa TẤT CẢ dependencies của application
// Struct này là "root" của dependency graph
type Container struct {
	// Infrastructure - shared across all domains, singleton lifecycle
	Config *config.Config
	DB     *database.PostgresDB

	// Repository layer (data access)
	UserRepo user.Repository
	PostRepo post.Repository

	// Service layer (business logic)
	UserService user.Service
	PostService post.Service

	// Handler layer (HTTP)
	UserHandler *userHandler.UserHandler
	PostHandler *postHandler.PostHandler
}

// NewContainer tạo và initialize toàn bộ dependency graph
//
// Thứ tự initialization:
// 1. Config (không phụ thuộc gì)
// 2. Infrastructure (DB) - phụ thuộc Config
// 3. Repositories - phụ thuộc Infrastructure
// 4. Services - phụ thuộc Repositories
// 5. Handlers - phụ thuộc Services
func NewContainer() (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{}

	// Step 1: load configuration
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("✅ Config loaded (Environment: %s)", cfg.App.Environment)

	// Step 2: connect PostgreSQL
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)
	if err := db.Connect(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}
	c.DB = db
	log.Println("✅ PostgreSQL connected")

	// Step 3: repositories
	c.UserRepo = userRepo.NewPostgresRepository(db.Pool)
	c.PostRepo = postRepo.NewPostgresRepository(db.Pool)

	// Step 4: services
	c.UserService = userService.NewUserService(c.UserRepo)
	c.PostService = postService.NewPostService(c.PostRepo)

	// Step 5: handlers
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.PostHandler = postHandler.NewPostHandler(c.PostService)

	log.Println("✅ DI Container ready")
	return c, nil
}

// Cleanup giải phóng resources khi application shutdown
func (c *Container) Cleanup() {
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			log.Printf("⚠️  Failed to close database: %v", err)
		}
	}
}
