package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var ErrInvalidConfig = errors.New("invalid configuration")

var structValidator = newStructValidator()

func newStructValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return fld.Tag.Get("envconfig")
	})
	return v
}

// check enforces the validate tags of a loaded configuration. Violations
// are reported by environment variable name.
func check(cfg interface{}) error {
	if n, ok := cfg.(interface{ normalize() }); ok {
		n.normalize()
	}

	err := structValidator.Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		problems = append(problems, fmt.Sprintf("%s must satisfy %s", envName(fe.Namespace()), rule))
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
}

// envName turns "HttpConfig.HTTP_SERVER.PORT" into "HTTP_SERVER_PORT".
// Segments without an envconfig tag, such as the embedded BaseConfig, are
// dropped.
func envName(namespace string) string {
	segments := strings.Split(namespace, ".")
	if len(segments) > 0 {
		segments = segments[1:]
	}

	parts := segments[:0]
	for _, segment := range segments {
		if segment == strings.ToUpper(segment) {
			parts = append(parts, segment)
		}
	}
	return strings.Join(parts, "_")
}
