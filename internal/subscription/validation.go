package subscription

import (
	"errors"
	"reflect"
	"strings"

	"cuotas/internal/api"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	rules := map[string]func(string) bool{
		"frequency": func(s string) bool { return Frequency(s).Valid() },
		"period":    func(s string) bool { return PaymentPeriod(s).Valid() },
		"method":    func(s string) bool { return PaymentMethod(s).Valid() },
		"month":     validMonth,
	}
	for tag, ok := range rules {
		ok := ok
		_ = v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return ok(fl.Field().String())
		})
	}
	return v
}

// ValidationError reports input rejected before it reached the store.
type ValidationError struct {
	Details []api.FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Details))
	for _, d := range e.Details {
		msgs = append(msgs, d.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func invalid(field, tag, message string) *ValidationError {
	return &ValidationError{Details: []api.FieldError{{Field: field, Tag: tag, Message: message}}}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}

func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	if details := api.FieldErrors(err); details != nil {
		return &ValidationError{Details: details}
	}
	return err
}

func validateSubscription(s *Subscription) error {
	return validateStruct(s)
}

func validateMember(m *Member) error {
	return validateStruct(m)
}
