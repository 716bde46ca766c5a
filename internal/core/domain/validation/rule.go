package validation

// Rule judges a record. Implementations must be pure and deterministic and
// report failures only through the returned Outcome.
type Rule interface {
	// Name identifies the rule in configuration errors and logs.
	Name() string
	// Field is the field the rule reports failures against.
	Field() string
	Apply(record Record) Outcome
}

type predicateRule struct {
	name    string
	field   string
	message string
	check   func(Record) bool
}

// NewRule builds a rule that fails with message on field whenever check
// returns false.
func NewRule(name, field, message string, check func(Record) bool) Rule {
	return &predicateRule{
		name:    name,
		field:   field,
		message: message,
		check:   check,
	}
}

func (r *predicateRule) Name() string  { return r.name }
func (r *predicateRule) Field() string { return r.field }

func (r *predicateRule) Apply(record Record) Outcome {
	if r.check(record) {
		return Valid(record)
	}
	return Invalid(r.field, r.message)
}

type funcRule struct {
	name  string
	field string
	fn    func(Record) Outcome
}

// RuleFunc adapts a function that builds its own Outcome. The pipeline
// still rejects failures that name a field it does not know.
func RuleFunc(name, field string, fn func(Record) Outcome) Rule {
	return &funcRule{name: name, field: field, fn: fn}
}

func (r *funcRule) Name() string                { return r.name }
func (r *funcRule) Field() string               { return r.field }
func (r *funcRule) Apply(record Record) Outcome { return r.fn(record) }
