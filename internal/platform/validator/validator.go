package validator

import (
	"fmt"
	"strings"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (fe FieldError) Error() string {
	return fmt.Sprintf("field %s: %s", fe.Field, fe.Message)
}

type ValidationError struct {
	Errors []FieldError `json:"errors"`
}

func (ve ValidationError) Error() string {
	errs := make([]string, 0, len(ve.Errors))
	for _, fe := range ve.Errors {
		errs = append(errs, fe.Error())
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(errs, ", "))
}

// Fields lists the fields that failed, in first-failure order, without repeats.
func (ve ValidationError) Fields() []string {
	seen := make(map[string]struct{}, len(ve.Errors))
	fields := make([]string, 0, len(ve.Errors))
	for _, fe := range ve.Errors {
		if _, ok := seen[fe.Field]; ok {
			continue
		}
		seen[fe.Field] = struct{}{}
		fields = append(fields, fe.Field)
	}
	return fields
}

// Validator checks struct tags on request envelopes. Fields are reported
// by their JSON names.
type Validator interface {
	Validate(s interface{}) error
}
