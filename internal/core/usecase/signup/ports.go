package signup

import (
	"context"

	"formvalidator/internal/core/domain/validation"
)

// FormValidator runs the configured rules. *validation.Pipeline implements it.
type FormValidator interface {
	Validate(record validation.Record) (validation.Result, error)
}

// Observer is notified after every completed validation pass and every
// stored account.
type Observer interface {
	ObserveValidation(ctx context.Context, result validation.Result)
	ObserveRegistration(ctx context.Context)
}
