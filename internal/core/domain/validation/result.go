package validation

// Result is the outcome of a whole validation pass: the original record when
// every rule passed, the grouped ErrorMap otherwise.
type Result struct {
	valid  bool
	record Record
	errors ErrorMap
}

func (r Result) Valid() bool {
	return r.valid
}

// Record returns the input record on success and nil on failure.
func (r Result) Record() Record {
	if !r.valid {
		return nil
	}
	return r.record
}

// Errors returns the grouped messages. On success every field maps to an
// empty list.
func (r Result) Errors() ErrorMap {
	return r.errors
}
