package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	validatorPlatform "formvalidator/internal/platform/validator"
)

type playgroundValidator struct {
	validate *validator.Validate
}

func NewPlaygroundAdapter() validatorPlatform.Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)
	if err := validate.RegisterValidation("maxbytes", maxBytes); err != nil {
		panic(err)
	}

	return &playgroundValidator{
		validate: validate,
	}
}

func (v *playgroundValidator) Validate(s interface{}) error {
	if err := v.validate.Struct(s); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			outErrors := make([]validatorPlatform.FieldError, len(validationErrors))
			for i, fe := range validationErrors {
				outErrors[i] = validatorPlatform.FieldError{
					Field:   fe.Field(),
					Message: getValidationErrorMessage(fe),
				}
			}
			return validatorPlatform.ValidationError{Errors: outErrors}
		}
		return err
	}
	return nil
}

// jsonFieldName reports fields under their JSON key, falling back to the
// lowercased Go name.
func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return strings.ToLower(field.Name)
	default:
		return name
	}
}

// maxBytes bounds the encoded length of a string, unlike max which counts
// runes. A malformed parameter panics, as the built-in tags do.
func maxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		panic(fmt.Sprintf("maxbytes: bad parameter %q on %s", fl.Param(), fl.FieldName()))
	}
	if fl.Field().Kind() != reflect.String {
		return false
	}
	return len(fl.Field().String()) <= limit
}

func getValidationErrorMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "this field must be a valid email address"
	case "max":
		return fmt.Sprintf("at most %s characters", e.Param())
	case "maxbytes":
		return fmt.Sprintf("at most %s bytes", e.Param())
	case "min":
		return fmt.Sprintf("at least %s characters", e.Param())
	case "printascii":
		return "only printable ASCII characters are allowed"
	default:
		return fmt.Sprintf("this field failed on the '%s' tag", e.Tag())
	}
}
