package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"dinoledger/docs"
	"dinoledger/internal/auth"
	"dinoledger/internal/cache"
	"dinoledger/internal/config"
	"dinoledger/internal/db"
	"dinoledger/internal/handler"
	"dinoledger/internal/repository"
	"dinoledger/internal/router"
	"dinoledger/internal/service"
	"dinoledger/internal/store"
)

// @title Dino Ledger API
// @version 1.0
// @description Inventory and profit tracking for collectible items.
// @host localhost:5000
// @BasePath /
// @schemes http
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	userRepo, itemRepo := openRepositories(cfg)

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()
	pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	if err := cacheClient.Ping(pingCtx); err != nil {
		log.Printf("Warning: redis unavailable at %s, sessions cannot be revoked: %v", cfg.RedisAddr, err)
	}
	cancel()

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.SecretKey, cfg.SessionTTL)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore, cacheClient, cfg.CodeHashing)
	itemService := service.NewItemService(itemRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, handler.SessionCookie{
		TTL:    jwtService.TTL(),
		Secure: cfg.CookieSecure,
	})
	itemHandler := handler.NewItemHandler(itemService)
	calculatorHandler := handler.NewCalculatorHandler(itemService)

	router.Register(e, jwtService, authService, authHandler, itemHandler, calculatorHandler)

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = strings.TrimPrefix(strings.TrimPrefix(cfg.SwaggerHost, "https://"), "http://")
	}
	log.Printf("Swagger documentation available at: http://%s/swagger/index.html", docs.SwaggerInfo.Host)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}

func openRepositories(cfg *config.Config) (repository.UserRepository, repository.ItemRepository) {
	switch cfg.StoreDriver {
	case config.DriverMySQL:
		gormDB, err := db.NewMySQL(cfg.MySQLDSN)
		if err != nil {
			log.Fatalf("database init: %v", err)
		}
		log.Println("Using MySQL storage")
		return repository.NewUserRepository(gormDB), repository.NewItemRepository(gormDB)
	case config.DriverJSON:
		if dir := filepath.Dir(cfg.DataFile); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				log.Fatalf("create data dir: %v", err)
			}
		}
		s := store.New(cfg.DataFile)
		doc := s.Load()
		log.Printf("Using JSON storage at %s (%d users, %d items)", s.Path(), len(doc.Users), len(doc.Items))
		return repository.NewJSONUserRepository(s), repository.NewJSONItemRepository(s)
	default:
		log.Fatalf("unknown STORE_DRIVER %q", cfg.StoreDriver)
		return nil, nil
	}
}
