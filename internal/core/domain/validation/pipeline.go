package validation

import (
	"strconv"

	"golang.org/x/sync/errgroup"
)

type Option func(*Pipeline)

// WithParallelism evaluates rules on up to n goroutines. Values below 2 keep
// evaluation sequential. Message order is unaffected.
func WithParallelism(n int) Option {
	return func(p *Pipeline) {
		p.parallelism = n
	}
}

// Pipeline runs an ordered rule list against records of a fixed field set
// and accumulates every failure.
type Pipeline struct {
	fields      []string
	known       map[string]struct{}
	rules       []Rule
	parallelism int
}

// NewPipeline checks that every rule reports on one of fields.
func NewPipeline(fields []string, rules []Rule, opts ...Option) (*Pipeline, error) {
	known := make(map[string]struct{}, len(fields))
	for _, field := range fields {
		if _, dup := known[field]; dup {
			return nil, &ConfigurationError{Field: field, Err: ErrDuplicateField}
		}
		known[field] = struct{}{}
	}

	for i, rule := range rules {
		if rule == nil {
			return nil, &ConfigurationError{Rule: "#" + strconv.Itoa(i), Err: ErrNilRule}
		}
		if _, ok := known[rule.Field()]; !ok {
			return nil, &ConfigurationError{Rule: rule.Name(), Field: rule.Field(), Err: ErrUnknownField}
		}
	}

	p := &Pipeline{
		fields: append([]string{}, fields...),
		known:  known,
		rules:  append([]Rule{}, rules...),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

func (p *Pipeline) Fields() []string {
	return append([]string{}, p.fields...)
}

func (p *Pipeline) Rules() []Rule {
	return append([]Rule{}, p.rules...)
}

// Validate runs every rule against record. Expected failures come back in
// the Result; the error is reserved for configuration defects.
func (p *Pipeline) Validate(record Record) (Result, error) {
	for _, field := range p.fields {
		if _, ok := record[field]; !ok {
			return Result{}, &ConfigurationError{Field: field, Err: ErrMissingField}
		}
	}

	outcomes := p.evaluate(record)

	var failures []SingleError
	for i, outcome := range outcomes {
		failure, failed := outcome.Failure()
		if !failed {
			continue
		}
		if _, ok := p.known[failure.Field]; !ok {
			return Result{}, &ConfigurationError{Rule: p.rules[i].Name(), Field: failure.Field, Err: ErrUnknownField}
		}
		failures = append(failures, failure)
	}

	errs, err := Group(record.Fields(), failures)
	if err != nil {
		return Result{}, err
	}

	if len(failures) == 0 {
		return Result{valid: true, record: record, errors: errs}, nil
	}
	return Result{errors: errs}, nil
}

// evaluate returns one outcome per rule, indexed by rule position.
func (p *Pipeline) evaluate(record Record) []Outcome {
	outcomes := make([]Outcome, len(p.rules))

	if p.parallelism < 2 || len(p.rules) < 2 {
		for i, rule := range p.rules {
			outcomes[i] = rule.Apply(record)
		}
		return outcomes
	}

	var g errgroup.Group
	g.SetLimit(p.parallelism)
	for i, rule := range p.rules {
		i, rule := i, rule
		g.Go(func() error {
			outcomes[i] = rule.Apply(record)
			return nil
		})
	}
	_ = g.Wait()

	return outcomes
}

// RunAll validates record against rules using the record's own keys as the
// known field set.
func RunAll(record Record, rules []Rule) (Result, error) {
	p, err := NewPipeline(record.Fields(), rules)
	if err != nil {
		return Result{}, err
	}
	return p.Validate(record)
}
