package validation

import (
	"fmt"
	"sort"
)

// Record holds the current value of every form field, keyed by field name.
// Rules only read it.
type Record map[string]string

// Fields returns the record's field names in sorted order.
func (r Record) Fields() []string {
	fields := make([]string, 0, len(r))
	for field := range r {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// SingleError is one failure attributable to exactly one field.
type SingleError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

func (e SingleError) String() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Error)
}

// Outcome is the result of applying a single rule: either the unchanged
// record or one field-scoped error.
type Outcome struct {
	record  Record
	failure *SingleError
}

func Valid(record Record) Outcome {
	return Outcome{record: record}
}

func Invalid(field, message string) Outcome {
	return Outcome{failure: &SingleError{Field: field, Error: message}}
}

func (o Outcome) IsValid() bool {
	return o.failure == nil
}

// Record returns the record passed through a successful rule, nil otherwise.
func (o Outcome) Record() Record {
	return o.record
}

func (o Outcome) Failure() (SingleError, bool) {
	if o.failure == nil {
		return SingleError{}, false
	}
	return *o.failure, true
}
