package repository

import (
	"context"

	apperrors "dinoledger/internal/errors"
	"dinoledger/internal/model"
	"dinoledger/internal/store"
)

type jsonUserRepository struct {
	store *store.Store
}

// NewJSONUserRepository builds a UserRepository over the JSON document store.
func NewJSONUserRepository(s *store.Store) UserRepository {
	return &jsonUserRepository{store: s}
}

func (r *jsonUserRepository) Create(_ context.Context, user *model.User) error {
	return r.store.Update(func(doc *store.Document) error {
		for _, u := range doc.Users {
			if u.Username == user.Username {
				return apperrors.ErrDuplicateUsername
			}
		}

		user.ID = doc.NextUserID
		if user.CreatedAt.IsZero() {
			user.CreatedAt = model.Now()
		}
		doc.Users = append(doc.Users, *user)
		doc.NextUserID++
		return nil
	})
}

func (r *jsonUserRepository) FindByID(_ context.Context, id int) (*model.User, error) {
	doc := r.store.Load()
	for _, u := range doc.Users {
		if u.ID == id {
			user := u
			return &user, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *jsonUserRepository) FindByUsername(_ context.Context, username string) (*model.User, error) {
	doc := r.store.Load()
	for _, u := range doc.Users {
		if u.Username == username {
			user := u
			return &user, nil
		}
	}
	return nil, apperrors.ErrNotFound
}
