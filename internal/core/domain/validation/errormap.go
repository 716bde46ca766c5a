package validation

import "sort"

// ErrorMap maps every known field to the ordered messages of the rules that
// failed on it. A field without errors maps to an empty, non-nil slice.
type ErrorMap map[string][]string

// NewErrorMap returns a map pre-seeded with an empty list for each field.
func NewErrorMap(fields ...string) ErrorMap {
	m := make(ErrorMap, len(fields))
	for _, field := range fields {
		m[field] = []string{}
	}
	return m
}

// Group folds failures into a map seeded with fields, appending each message
// to its field in the order given. A failure naming a field outside the seed
// is a configuration error.
func Group(fields []string, failures []SingleError) (ErrorMap, error) {
	m := NewErrorMap(fields...)
	for _, failure := range failures {
		if _, ok := m[failure.Field]; !ok {
			return nil, &ConfigurationError{Field: failure.Field, Err: ErrUnknownField}
		}
		m[failure.Field] = append(m[failure.Field], failure.Error)
	}
	return m, nil
}

// Has reports whether any field carries at least one message.
func (m ErrorMap) Has() bool {
	for _, messages := range m {
		if len(messages) > 0 {
			return true
		}
	}
	return false
}

// Messages returns the messages recorded for field, or an empty slice.
func (m ErrorMap) Messages(field string) []string {
	if messages, ok := m[field]; ok {
		return messages
	}
	return []string{}
}

// Count returns the total number of messages across all fields.
func (m ErrorMap) Count() int {
	n := 0
	for _, messages := range m {
		n += len(messages)
	}
	return n
}

// Fields returns every key in sorted order.
func (m ErrorMap) Fields() []string {
	fields := make([]string, 0, len(m))
	for field := range m {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// Failed returns the fields that carry at least one message, sorted.
func (m ErrorMap) Failed() []string {
	var fields []string
	for field, messages := range m {
		if len(messages) > 0 {
			fields = append(fields, field)
		}
	}
	sort.Strings(fields)
	return fields
}

// Clone returns a deep copy whose message slices do not alias m's.
func (m ErrorMap) Clone() ErrorMap {
	out := make(ErrorMap, len(m))
	for field, messages := range m {
		out[field] = append([]string{}, messages...)
	}
	return out
}

// Merge concatenates other after m field by field and returns a new map
// holding the union of keys. Neither input is modified.
func (m ErrorMap) Merge(other ErrorMap) ErrorMap {
	out := m.Clone()
	for field, messages := range other {
		if _, ok := out[field]; !ok {
			out[field] = []string{}
		}
		out[field] = append(out[field], messages...)
	}
	return out
}
