package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "dinoledger/internal/errors"
	"dinoledger/internal/model"
)

type itemRepository struct {
	db *gorm.DB
}

// NewItemRepository builds a GORM-backed item repository.
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

// Create creates a new item.
func (r *itemRepository) Create(ctx context.Context, item *model.Item) error {
	item.ID = 0
	item.CreatedAt = model.Now()
	return r.db.WithContext(ctx).Create(item).Error
}

// Update replaces an owned item's fields within a transaction.
func (r *itemRepository) Update(ctx context.Context, item *model.Item) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.Item
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND user_id = ?", item.ID, item.OwnerID).
			First(&existing).Error; err != nil {
			return translate(err)
		}
		item.CreatedAt = existing.CreatedAt
		return tx.Save(item).Error
	})
}

// Delete removes an owned item.
func (r *itemRepository) Delete(ctx context.Context, id, ownerID int) error {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, ownerID).Delete(&model.Item{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindByID finds an item, optionally restricted to an owner.
func (r *itemRepository) FindByID(ctx context.Context, id, ownerID int) (*model.Item, error) {
	q := r.db.WithContext(ctx).Where("id = ?", id)
	if ownerID != AnyOwner {
		q = q.Where("user_id = ?", ownerID)
	}
	var item model.Item
	if err := q.First(&item).Error; err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

// ListByOwner lists an owner's items by ascending id.
func (r *itemRepository) ListByOwner(ctx context.Context, ownerID int) ([]model.Item, error) {
	items := make([]model.Item, 0)
	if err := r.db.WithContext(ctx).Where("user_id = ?", ownerID).Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
