package repository

import (
	"context"
	"strings"

	"learnsphere/domain"
	"learnsphere/storage"
)

type userRepository struct {
	col *collection[domain.User]
}

func NewUserRepository(store storage.Store) domain.UserRepository {
	return &userRepository{col: newCollection[domain.User](store, usersKey)}
}

func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	return r.col.load(ctx)
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	users, err := r.col.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	users, err := r.col.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			return &users[i], nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// Create re-checks email uniqueness under the collection lock, so two
// concurrent registrations for the same address cannot both succeed.
func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	return r.col.mutate(ctx, func(users []domain.User) ([]domain.User, error) {
		for i := range users {
			if strings.EqualFold(users[i].Email, user.Email) {
				return nil, domain.ErrUserExists
			}
		}
		return append(users, *user), nil
	})
}
