package signup

import (
	"context"

	"formvalidator/internal/core/domain/account"
	"formvalidator/internal/core/domain/signup"
	"formvalidator/internal/core/domain/validation"
)

type Manager interface {
	Validate(ctx context.Context, form signup.Form) (validation.Result, error)
	Register(ctx context.Context, form signup.Form) (*account.Account, validation.ErrorMap, error)
	GetAccount(ctx context.Context, email string) (*account.Account, error)
}
