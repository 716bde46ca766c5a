package signup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"formvalidator/internal/core/domain/validation"
)

func newDefaultPipeline(t *testing.T, opts ...validation.Option) *validation.Pipeline {
	t.Helper()
	p, err := NewPipeline(DefaultPolicy(), opts...)
	require.NoError(t, err)
	return p
}

func TestPipeline_Scenarios(t *testing.T) {
	tests := []struct {
		name      string
		form      Form
		wantValid bool
		expected  validation.ErrorMap
	}{
		{
			name:      "all_empty",
			form:      Form{},
			wantValid: false,
			expected: validation.ErrorMap{
				FieldEmail: {
					"email must contain '@'",
					"invalid domain, only valid is '@example.com'",
				},
				FieldPassword: {
					"at least 6 characters",
					"at least one capital letter",
					"at least one number",
				},
				FieldPasswordConfirm: {"password is not the same"},
			},
		},
		{
			name: "all_good",
			form: Form{
				Email:           "c@example.com",
				Password:        "p@aaSw0rd!",
				PasswordConfirm: "p@aaSw0rd!",
			},
			wantValid: true,
			expected: validation.ErrorMap{
				FieldEmail:           {},
				FieldPassword:        {},
				FieldPasswordConfirm: {},
			},
		},
		{
			name: "wrong_domain",
			form: Form{
				Email:           "c@other.com",
				Password:        "Abcdef1",
				PasswordConfirm: "Abcdef1",
			},
			wantValid: false,
			expected: validation.ErrorMap{
				FieldEmail:           {"invalid domain, only valid is '@example.com'"},
				FieldPassword:        {},
				FieldPasswordConfirm: {},
			},
		},
		{
			name: "no_capital_and_mismatch",
			form: Form{
				Email:           "c@example.com",
				Password:        "abc123",
				PasswordConfirm: "abc124",
			},
			wantValid: false,
			expected: validation.ErrorMap{
				FieldEmail:           {},
				FieldPassword:        {"at least one capital letter"},
				FieldPasswordConfirm: {"password is not the same"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, parallelism := range []int{0, 4} {
				p := newDefaultPipeline(t, validation.WithParallelism(parallelism))
				record := tt.form.Record()

				result, err := p.Validate(record)

				require.NoError(t, err)
				assert.Equal(t, tt.wantValid, result.Valid())
				assert.Equal(t, tt.expected, result.Errors())
				if tt.wantValid {
					assert.Equal(t, record, result.Record())
					assert.Equal(t, tt.form, FormFromRecord(result.Record()))
				}
			}
		})
	}
}

func TestRunAll_NoRules(t *testing.T) {
	record := Form{Email: "whatever"}.Record()

	result, err := validation.RunAll(record, nil)

	require.NoError(t, err)
	assert.True(t, result.Valid())
	assert.Equal(t, record, result.Record())
}

func TestRules(t *testing.T) {
	tests := []struct {
		name   string
		rule   validation.Rule
		form   Form
		passes bool
	}{
		{"email_with_at", ValidEmail(), Form{Email: "a@b"}, true},
		{"email_without_at", ValidEmail(), Form{Email: "ab"}, false},
		{"domain_exact", AllowedDomain("example.com"), Form{Email: "c@example.com"}, true},
		{"domain_case_insensitive", AllowedDomain("example.com"), Form{Email: "c@Example.COM"}, true},
		{"domain_suffix_trick", AllowedDomain("example.com"), Form{Email: "c@example.com.evil"}, false},
		{"domain_subdomain", AllowedDomain("example.com"), Form{Email: "c@mail.example.com"}, false},
		{"domain_last_at_wins", AllowedDomain("example.com"), Form{Email: "a@other.com@example.com"}, true},
		{"domain_missing_at", AllowedDomain("example.com"), Form{Email: "example.com"}, false},
		{"min_length_exact", MinLength(6), Form{Password: "abcdef"}, true},
		{"min_length_short", MinLength(6), Form{Password: "abcde"}, false},
		{"min_length_counts_runes", MinLength(6), Form{Password: "парол"}, false},
		{"capital_present", OneCapital(), Form{Password: "abC"}, true},
		{"capital_absent", OneCapital(), Form{Password: "abc"}, false},
		{"number_present", OneNumber(), Form{Password: "a1"}, true},
		{"number_absent", OneNumber(), Form{Password: "ab"}, false},
		{"same_password", SamePassword(), Form{Password: "x", PasswordConfirm: "x"}, true},
		{"different_password", SamePassword(), Form{Password: "x", PasswordConfirm: "y"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := tt.form.Record()

			outcome := tt.rule.Apply(record)

			assert.Equal(t, tt.passes, outcome.IsValid())
			if tt.passes {
				assert.Equal(t, record, outcome.Record())
				return
			}
			failure, failed := outcome.Failure()
			require.True(t, failed)
			assert.Equal(t, tt.rule.Field(), failure.Field)
			assert.NotEmpty(t, failure.Error)
		})
	}
}

func TestRules_MessagesFollowPolicy(t *testing.T) {
	p := Policy{AllowedDomain: "corp.test", MinPasswordLength: 10}

	result, err := validation.RunAll(Form{}.Record(), Rules(p))

	require.NoError(t, err)
	assert.Contains(t, result.Errors().Messages(FieldEmail), "invalid domain, only valid is '@corp.test'")
	assert.Contains(t, result.Errors().Messages(FieldPassword), "at least 10 characters")
}

func TestPolicy_Validate(t *testing.T) {
	tests := []struct {
		name    string
		policy  Policy
		wantErr error
	}{
		{"default", DefaultPolicy(), nil},
		{"empty_domain", Policy{AllowedDomain: " ", MinPasswordLength: 6}, ErrEmptyDomain},
		{"domain_with_at", Policy{AllowedDomain: "@example.com", MinPasswordLength: 6}, ErrInvalidDomain},
		{"zero_length", Policy{AllowedDomain: "example.com"}, ErrInvalidMinLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.policy.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)

			p, err := NewPipeline(tt.policy)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, p)
		})
	}
}

func TestFields(t *testing.T) {
	assert.Equal(t, []string{"email", "password1", "password2"}, Fields())
	assert.Equal(t, Fields(), Form{}.Record().Fields())
}

func TestPolicy_Probe(t *testing.T) {
	policies := []Policy{
		DefaultPolicy(),
		{AllowedDomain: "corp.internal", MinPasswordLength: 1},
		{AllowedDomain: "Example.ORG", MinPasswordLength: 24},
	}

	for _, policy := range policies {
		t.Run(policy.AllowedDomain, func(t *testing.T) {
			pipeline, err := NewPipeline(policy)
			require.NoError(t, err)

			probe := policy.Probe()
			result, err := pipeline.Validate(probe.Record())

			require.NoError(t, err)
			assert.True(t, result.Valid(), "probe rejected: %v", result.Errors())
			assert.GreaterOrEqual(t, len(probe.Password), policy.MinPasswordLength)
		})
	}
}
