package ports

import (
	"context"
	"formvalidator/internal/core/domain/account"
)

type AccountRepository interface {
	Save(ctx context.Context, acc *account.Account) error
	GetByEmail(ctx context.Context, email string) (*account.Account, error)
}
