package repository

import (
	"context"

	apperrors "dinoledger/internal/errors"
	"dinoledger/internal/model"
	"dinoledger/internal/store"
)

type jsonItemRepository struct {
	store *store.Store
}

// NewJSONItemRepository builds an ItemRepository over the JSON document store.
func NewJSONItemRepository(s *store.Store) ItemRepository {
	return &jsonItemRepository{store: s}
}

func (r *jsonItemRepository) Create(_ context.Context, item *model.Item) error {
	return r.store.Update(func(doc *store.Document) error {
		item.ID = doc.NextItemID
		item.CreatedAt = model.Now()
		doc.Items = append(doc.Items, *item)
		doc.NextItemID++
		return nil
	})
}

func (r *jsonItemRepository) Update(_ context.Context, item *model.Item) error {
	return r.store.Update(func(doc *store.Document) error {
		i := indexOf(doc.Items, item.ID, item.OwnerID)
		if i < 0 {
			return apperrors.ErrNotFound
		}
		item.CreatedAt = doc.Items[i].CreatedAt
		doc.Items[i] = *item
		return nil
	})
}

func (r *jsonItemRepository) Delete(_ context.Context, id, ownerID int) error {
	return r.store.Update(func(doc *store.Document) error {
		i := indexOf(doc.Items, id, ownerID)
		if i < 0 {
			return apperrors.ErrNotFound
		}
		doc.Items = append(doc.Items[:i], doc.Items[i+1:]...)
		return nil
	})
}

func (r *jsonItemRepository) FindByID(_ context.Context, id, ownerID int) (*model.Item, error) {
	doc := r.store.Load()
	i := indexOf(doc.Items, id, ownerID)
	if i < 0 {
		return nil, apperrors.ErrNotFound
	}
	item := doc.Items[i]
	return &item, nil
}

func (r *jsonItemRepository) ListByOwner(_ context.Context, ownerID int) ([]model.Item, error) {
	doc := r.store.Load()
	items := make([]model.Item, 0)
	for _, it := range doc.Items {
		if it.OwnerID == ownerID {
			items = append(items, it)
		}
	}
	return items, nil
}

// indexOf returns the position of the first item with id, or -1. An id match
// owned by someone else also yields -1 unless ownerID is AnyOwner.
func indexOf(items []model.Item, id, ownerID int) int {
	for i, it := range items {
		if it.ID != id {
			continue
		}
		if ownerID != AnyOwner && it.OwnerID != ownerID {
			return -1
		}
		return i
	}
	return -1
}
