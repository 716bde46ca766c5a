package memory

import (
	"context"
	"errors"

	"formvalidator/internal/core/domain/account"
	memoryPlatform "formvalidator/internal/platform/repository/memory"
)

type Repository struct {
	store *memoryPlatform.Repository[*account.Account]
}

func NewRepository() *Repository {
	return &Repository{
		store: memoryPlatform.New[*account.Account](),
	}
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (*account.Account, error) {
	acc, err := r.store.Get(ctx, account.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, memoryPlatform.ErrNotFound) {
			return nil, account.ErrAccountNotFound
		}
		return nil, err
	}
	return acc, nil
}

func (r *Repository) Save(ctx context.Context, acc *account.Account) error {
	err := r.store.Save(ctx, acc)
	if err != nil {
		if errors.Is(err, memoryPlatform.ErrAlreadyExists) {
			return &account.AlreadyExistsError{Email: acc.Email}
		}
		return err
	}
	return nil
}

func (r *Repository) Count(ctx context.Context) (int, error) {
	return r.store.Count(ctx)
}
