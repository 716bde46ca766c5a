package signup

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"formvalidator/internal/core/domain/validation"
)

var (
	ErrEmptyDomain      = errors.New("allowed domain cannot be empty")
	ErrInvalidDomain    = errors.New("allowed domain must not contain '@'")
	ErrInvalidMinLength = errors.New("minimum password length must be positive")

	uppercaseRegex = regexp.MustCompile(`[A-Z]`)
	digitRegex     = regexp.MustCompile(`[0-9]`)
)

// Policy holds the tunable parts of the signup rules.
type Policy struct {
	AllowedDomain     string
	MinPasswordLength int
}

func DefaultPolicy() Policy {
	return Policy{
		AllowedDomain:     "example.com",
		MinPasswordLength: 6,
	}
}

func (p Policy) Validate() error {
	if strings.TrimSpace(p.AllowedDomain) == "" {
		return ErrEmptyDomain
	}
	if strings.Contains(p.AllowedDomain, "@") {
		return ErrInvalidDomain
	}
	if p.MinPasswordLength < 1 {
		return ErrInvalidMinLength
	}
	return nil
}

func ValidEmail() validation.Rule {
	return validation.NewRule("valid_email", FieldEmail, "email must contain '@'",
		func(r validation.Record) bool {
			return strings.Contains(r[FieldEmail], "@")
		})
}

// AllowedDomain requires the part after the last '@' to equal domain,
// ignoring case.
func AllowedDomain(domain string) validation.Rule {
	return validation.NewRule("allowed_domain", FieldEmail,
		fmt.Sprintf("invalid domain, only valid is '@%s'", domain),
		func(r validation.Record) bool {
			email := r[FieldEmail]
			at := strings.LastIndex(email, "@")
			if at < 0 {
				return false
			}
			return strings.EqualFold(email[at+1:], domain)
		})
}

func MinLength(n int) validation.Rule {
	return validation.NewRule("min_length", FieldPassword,
		fmt.Sprintf("at least %d characters", n),
		func(r validation.Record) bool {
			return utf8.RuneCountInString(r[FieldPassword]) >= n
		})
}

func OneCapital() validation.Rule {
	return validation.NewRule("one_capital", FieldPassword, "at least one capital letter",
		func(r validation.Record) bool {
			return uppercaseRegex.MatchString(r[FieldPassword])
		})
}

func OneNumber() validation.Rule {
	return validation.NewRule("one_number", FieldPassword, "at least one number",
		func(r validation.Record) bool {
			return digitRegex.MatchString(r[FieldPassword])
		})
}

func SamePassword() validation.Rule {
	return validation.NewRule("same_password", FieldPasswordConfirm, "password is not the same",
		func(r validation.Record) bool {
			return r[FieldPassword] == r[FieldPasswordConfirm]
		})
}

// Probe builds a form that every rule of p accepts. Health checks run it to
// catch a rule set that rejects good input.
func (p Policy) Probe() Form {
	password := "Probe1"
	if n := p.MinPasswordLength - utf8.RuneCountInString(password); n > 0 {
		password += strings.Repeat("x", n)
	}
	return Form{
		Email:           "probe@" + p.AllowedDomain,
		Password:        password,
		PasswordConfirm: password,
	}
}

// Rules returns the signup rules in declaration order. The order decides
// the order of messages within a field.
func Rules(p Policy) []validation.Rule {
	return []validation.Rule{
		ValidEmail(),
		AllowedDomain(p.AllowedDomain),
		MinLength(p.MinPasswordLength),
		OneCapital(),
		OneNumber(),
		SamePassword(),
	}
}

func NewPipeline(p Policy, opts ...validation.Option) (*validation.Pipeline, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("signup policy: %w", err)
	}
	return validation.NewPipeline(Fields(), Rules(p), opts...)
}
