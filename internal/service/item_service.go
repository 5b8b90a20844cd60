package service

import (
	"context"
	"fmt"
	"unicode/utf8"

	apperrors "dinoledger/internal/errors"
	"dinoledger/internal/ledger"
	"dinoledger/internal/model"
	"dinoledger/internal/repository"
)

// DefaultTaxRatePercent applies when a calculation request omits the tax rate.
const DefaultTaxRatePercent = 10

// ItemInput carries user-editable item fields. The tax rate is a percentage.
type ItemInput struct {
	Name           string
	Category       model.Category
	PurchasePrice  float64
	SellPrice      float64
	Quantity       int
	TaxRatePercent float64
	Notes          string
}

func (in ItemInput) validate() error {
	switch {
	case in.Name == "" || utf8.RuneCountInString(in.Name) > 100:
		return fmt.Errorf("%w: name must be 1-100 characters", apperrors.ErrValidation)
	case !in.Category.Valid():
		return fmt.Errorf("%w: unknown category %q", apperrors.ErrValidation, in.Category)
	case in.PurchasePrice < 0 || in.SellPrice < 0:
		return fmt.Errorf("%w: prices must not be negative", apperrors.ErrValidation)
	case in.Quantity < 1:
		return fmt.Errorf("%w: quantity must be at least 1", apperrors.ErrValidation)
	case in.TaxRatePercent < 0 || in.TaxRatePercent > 100:
		return fmt.Errorf("%w: tax rate must be between 0 and 100", apperrors.ErrValidation)
	}
	return nil
}

func (in ItemInput) apply(item *model.Item) {
	item.Name = in.Name
	item.Category = in.Category
	item.PurchasePrice = in.PurchasePrice
	item.SellPrice = in.SellPrice
	item.Quantity = in.Quantity
	item.TaxRate = ledger.PercentToFraction(in.TaxRatePercent)
	item.Notes = in.Notes
}

// ItemView is an item together with its unrounded derived figures.
type ItemView struct {
	model.Item
	ledger.Figures
	TaxRatePercent float64 `json:"tax_rate_percent"`
}

// NewItemView derives the figures of item.
func NewItemView(item model.Item) ItemView {
	return ItemView{
		Item:           item,
		Figures:        item.Derived(),
		TaxRatePercent: ledger.FractionToPercent(item.TaxRate),
	}
}

// Dashboard is a user's items and their portfolio aggregate.
type Dashboard struct {
	Items []ItemView       `json:"dinos"`
	Stats ledger.Portfolio `json:"stats"`
}

// ItemService handles item operations scoped to their owner.
type ItemService interface {
	Dashboard(ctx context.Context, userID int) (*Dashboard, error)
	Get(ctx context.Context, id, userID int) (*ItemView, error)
	Create(ctx context.Context, userID int, in ItemInput) (*ItemView, error)
	Update(ctx context.Context, id, userID int, in ItemInput) (*ItemView, error)
	Delete(ctx context.Context, id, userID int) error
	// Calculate returns figures rounded to two decimals.
	Calculate(in ledger.Input) ledger.Figures
}

type itemService struct {
	repo repository.ItemRepository
}

// NewItemService creates a new item service.
func NewItemService(repo repository.ItemRepository) ItemService {
	return &itemService{repo: repo}
}

// Dashboard lists the user's items in storage order with unrounded totals.
func (s *itemService) Dashboard(ctx context.Context, userID int) (*Dashboard, error) {
	items, err := s.repo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	views := make([]ItemView, 0, len(items))
	inputs := make([]ledger.Input, 0, len(items))
	for _, it := range items {
		views = append(views, NewItemView(it))
		inputs = append(inputs, it.LedgerInput())
	}

	return &Dashboard{
		Items: views,
		Stats: ledger.Aggregate(inputs),
	}, nil
}

// Get returns an owned item. Items of other users read as not found.
func (s *itemService) Get(ctx context.Context, id, userID int) (*ItemView, error) {
	item, err := s.repo.FindByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	view := NewItemView(*item)
	return &view, nil
}

// Create stores a new item owned by userID.
func (s *itemService) Create(ctx context.Context, userID int, in ItemInput) (*ItemView, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	item := &model.Item{OwnerID: userID}
	in.apply(item)
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}

	view := NewItemView(*item)
	return &view, nil
}

// Update replaces every mutable field of an owned item.
func (s *itemService) Update(ctx context.Context, id, userID int, in ItemInput) (*ItemView, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	item := &model.Item{ID: id, OwnerID: userID}
	in.apply(item)
	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}

	view := NewItemView(*item)
	return &view, nil
}

// Delete removes an owned item.
func (s *itemService) Delete(ctx context.Context, id, userID int) error {
	return s.repo.Delete(ctx, id, userID)
}

func (s *itemService) Calculate(in ledger.Input) ledger.Figures {
	return ledger.Compute(in).Rounded()
}
