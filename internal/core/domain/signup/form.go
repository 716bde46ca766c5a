package signup

import "formvalidator/internal/core/domain/validation"

const (
	FieldEmail           = "email"
	FieldPassword        = "password1"
	FieldPasswordConfirm = "password2"
)

// Fields returns the signup form's fields in display order.
func Fields() []string {
	return []string{FieldEmail, FieldPassword, FieldPasswordConfirm}
}

// Form is the typed view of a signup submission.
type Form struct {
	Email           string `json:"email" yaml:"email"`
	Password        string `json:"password1" yaml:"password1"`
	PasswordConfirm string `json:"password2" yaml:"password2"`
}

func (f Form) Record() validation.Record {
	return validation.Record{
		FieldEmail:           f.Email,
		FieldPassword:        f.Password,
		FieldPasswordConfirm: f.PasswordConfirm,
	}
}

func FormFromRecord(r validation.Record) Form {
	return Form{
		Email:           r[FieldEmail],
		Password:        r[FieldPassword],
		PasswordConfirm: r[FieldPasswordConfirm],
	}
}
