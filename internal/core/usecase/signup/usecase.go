package signup

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"formvalidator/internal/core/domain/account"
	"formvalidator/internal/core/domain/signup"
	"formvalidator/internal/core/domain/validation"
	"formvalidator/internal/core/ports"
	"formvalidator/internal/platform/logger"
)

const (
	MsgEmailTaken = "email is already registered"
	// MsgPasswordTooLong matches the byte cap on the HTTP request envelope.
	MsgPasswordTooLong = "at most 72 bytes"
)

type Usecase struct {
	validator FormValidator
	repo      ports.AccountRepository
	observer  Observer
}

func NewUsecase(validator FormValidator, repo ports.AccountRepository, observer Observer) *Usecase {
	return &Usecase{
		validator: validator,
		repo:      repo,
		observer:  observer,
	}
}

// Validate judges form without side effects beyond logging and the observer.
// Field values are never logged.
func (uc *Usecase) Validate(ctx context.Context, form signup.Form) (validation.Result, error) {
	log := logger.FromContext(ctx)

	result, err := uc.validator.Validate(form.Record())
	if err != nil {
		log.Error("Signup validation is misconfigured", logger.Error(err))
		return validation.Result{}, fmt.Errorf("validate signup: %w", err)
	}

	if result.Valid() {
		log.Debug("Signup form valid")
	} else {
		log.Debug("Signup form invalid",
			logger.Strings("failed_fields", result.Errors().Failed()),
			logger.Int("error_count", result.Errors().Count()),
		)
	}

	if uc.observer != nil {
		uc.observer.ObserveValidation(ctx, result)
	}

	return result, nil
}

// Register validates form and, when it passes, stores a new account. Field
// problems, including an email that is already taken, come back as an
// ErrorMap with a nil error.
func (uc *Usecase) Register(ctx context.Context, form signup.Form) (*account.Account, validation.ErrorMap, error) {
	log := logger.FromContext(ctx)

	result, err := uc.Validate(ctx, form)
	if err != nil {
		return nil, nil, err
	}
	if !result.Valid() {
		return nil, result.Errors(), nil
	}

	validated := signup.FormFromRecord(result.Record())
	acc, err := account.NewAccount(validated.Email, validated.Password)
	if errors.Is(err, account.ErrPasswordTooLong) {
		log.Info("Signup rejected, password too long to hash")
		return fieldRejection(signup.FieldPassword, MsgPasswordTooLong)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("create account: %w", err)
	}

	if err := uc.repo.Save(ctx, acc); err != nil {
		var existsErr *account.AlreadyExistsError
		if errors.As(err, &existsErr) {
			log.Info("Signup rejected, email already registered")
			return fieldRejection(signup.FieldEmail, MsgEmailTaken)
		}
		return nil, nil, fmt.Errorf("save account: %w", err)
	}

	log.Info("Account registered", logger.String("account_id", acc.ID))
	if uc.observer != nil {
		uc.observer.ObserveRegistration(ctx)
	}
	return acc, nil, nil
}

// fieldRejection reports a single field problem found after the rules passed
// in the same ErrorMap shape the rules use.
func fieldRejection(field, message string) (*account.Account, validation.ErrorMap, error) {
	errs, err := validation.Group(signup.Fields(), []validation.SingleError{{Field: field, Error: message}})
	if err != nil {
		return nil, nil, err
	}
	return nil, errs, nil
}

func (uc *Usecase) GetAccount(ctx context.Context, email string) (*account.Account, error) {
	log := logger.FromContext(ctx)
	log.Debug("Getting account", logger.String("domain", emailDomain(email)))

	return uc.repo.GetByEmail(ctx, email)
}

func emailDomain(email string) string {
	if at := strings.LastIndex(email, "@"); at >= 0 {
		return email[at+1:]
	}
	return ""
}
