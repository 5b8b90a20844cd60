package repository

import (
	"context"

	"dinoledger/internal/model"
)

// AnyOwner disables the ownership filter of ItemRepository.FindByID.
// User ids start at 1, so 0 never matches a real owner.
const AnyOwner = 0

// UserRepository defines user persistence operations.
type UserRepository interface {
	// Create assigns the next id and stores user. It fails with
	// errors.ErrDuplicateUsername on a case-sensitive username collision.
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id int) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
}

// ItemRepository defines item persistence operations. Every lookup or
// mutation that misses, or hits an item owned by someone else, returns
// errors.ErrNotFound.
type ItemRepository interface {
	Create(ctx context.Context, item *model.Item) error
	// Update replaces the mutable fields of the item matching item.ID and
	// item.OwnerID. CreatedAt is preserved and written back into item.
	Update(ctx context.Context, item *model.Item) error
	Delete(ctx context.Context, id, ownerID int) error
	// FindByID looks an item up by id; pass AnyOwner to skip the owner check.
	FindByID(ctx context.Context, id, ownerID int) (*model.Item, error)
	// ListByOwner returns the owner's items in insertion order.
	ListByOwner(ctx context.Context, ownerID int) ([]model.Item, error)
}
