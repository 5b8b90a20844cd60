package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"dinoledger/internal/auth"
	"dinoledger/internal/config"
	"dinoledger/internal/db"
	apperrors "dinoledger/internal/errors"
	"dinoledger/internal/model"
	"dinoledger/internal/repository"
	"dinoledger/internal/service"
	"dinoledger/internal/store"
)

// SeedItemData is one item as published by a seed source. Amounts are
// decimal strings; tax_rate is a percentage.
type SeedItemData struct {
	Name          string `json:"name"`
	Type          string `json:"dino_type"`
	PurchasePrice string `json:"purchase_price"`
	SellPrice     string `json:"sell_price"`
	Quantity      int    `json:"quantity"`
	TaxRate       string `json:"tax_rate"`
	Notes         string `json:"notes"`
}

var demoItems = []SeedItemData{
	{Name: "Rex", Type: "Creature", PurchasePrice: "10", SellPrice: "25", Quantity: 4, TaxRate: "10"},
	{Name: "Raptor pack", Type: "Species", PurchasePrice: "3.50", SellPrice: "6.25", Quantity: 12, TaxRate: "10"},
	{Name: "Amber token", Type: "Token", PurchasePrice: "0", SellPrice: "5", Quantity: 1, TaxRate: "0", Notes: "gift"},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()
	username := getEnv("SEED_USERNAME", "demo")
	code := getEnv("SEED_CODE", "demo123")

	userRepo, itemRepo := openRepositories(cfg)

	items := demoItems
	if url := os.Getenv("SEED_URL"); url != "" {
		log.Printf("Fetching items from: %s", url)
		fetched, err := fetchItemsFromAPI(url)
		if err != nil {
			log.Fatalf("Failed to fetch items: %v", err)
		}
		items = fetched
	}
	log.Printf("Seeding %d items for %q", len(items), username)

	ctx := context.Background()
	authService := service.NewAuthService(userRepo, auth.NewJWTService(cfg.SecretKey, time.Hour), auth.NewTokenStore(nil), nil, cfg.CodeHashing)
	itemService := service.NewItemService(itemRepo)

	user, err := authService.Register(ctx, username, code)
	switch {
	case errors.Is(err, apperrors.ErrDuplicateUsername):
		user, err = userRepo.FindByUsername(ctx, username)
		if err != nil {
			log.Fatalf("Failed to load user %q: %v", username, err)
		}
		log.Printf("User %q already exists (id %d)", username, user.ID)
	case err != nil:
		log.Fatalf("Failed to create user: %v", err)
	default:
		log.Printf("Created user %q (id %d)", username, user.ID)
	}

	created, skipped := seedItems(ctx, itemService, user.ID, items)

	log.Printf("Seed completed successfully!")
	log.Printf("  - Items created: %d", created)
	log.Printf("  - Items skipped: %d", skipped)
}

func openRepositories(cfg *config.Config) (repository.UserRepository, repository.ItemRepository) {
	if cfg.StoreDriver == config.DriverMySQL {
		gormDB, err := db.NewMySQL(cfg.MySQLDSN)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		log.Println("Connected to database")
		return repository.NewUserRepository(gormDB), repository.NewItemRepository(gormDB)
	}
	s := store.New(cfg.DataFile)
	log.Printf("Using JSON storage at %s", s.Path())
	return repository.NewJSONUserRepository(s), repository.NewJSONItemRepository(s)
}

// fetchItemsFromAPI fetches item data from an external source.
func fetchItemsFromAPI(url string) ([]SeedItemData, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch from API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var items []SeedItemData
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return items, nil
}

// seedItems creates every valid item and logs the rest.
func seedItems(ctx context.Context, svc service.ItemService, userID int, items []SeedItemData) (created, skipped int) {
	for _, item := range items {
		in, err := toInput(item)
		if err != nil {
			log.Printf("Skipping %q: %v", item.Name, err)
			skipped++
			continue
		}
		if _, err := svc.Create(ctx, userID, in); err != nil {
			log.Printf("Skipping %q: %v", item.Name, err)
			skipped++
			continue
		}
		created++
	}
	return created, skipped
}

func toInput(item SeedItemData) (service.ItemInput, error) {
	purchase, err := decimal.NewFromString(item.PurchasePrice)
	if err != nil {
		return service.ItemInput{}, fmt.Errorf("invalid purchase price %q", item.PurchasePrice)
	}
	sell, err := decimal.NewFromString(item.SellPrice)
	if err != nil {
		return service.ItemInput{}, fmt.Errorf("invalid sell price %q", item.SellPrice)
	}
	tax := decimal.NewFromInt(service.DefaultTaxRatePercent)
	if item.TaxRate != "" {
		if tax, err = decimal.NewFromString(item.TaxRate); err != nil {
			return service.ItemInput{}, fmt.Errorf("invalid tax rate %q", item.TaxRate)
		}
	}

	return service.ItemInput{
		Name:           item.Name,
		Category:       model.Category(item.Type),
		PurchasePrice:  purchase.InexactFloat64(),
		SellPrice:      sell.InexactFloat64(),
		Quantity:       item.Quantity,
		TaxRatePercent: tax.InexactFloat64(),
		Notes:          item.Notes,
	}, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
