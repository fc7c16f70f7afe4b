package units

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// MaxConeShare caps the cone length relative to the nail length.
const MaxConeShare = 0.2

type FormError struct {
	Field   string  `json:"field"`
	Value   float64 `json:"value"`
	Message string  `json:"error"`
}

// FormErrors lists every field outside its form limits.
type FormErrors []FormError

func (e FormErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, fe := range e {
		msgs = append(msgs, fe.Field+": "+fe.Message)
	}
	return "form limits: " + strings.Join(msgs, "; ")
}

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
	v.RegisterStructValidation(coneShare, FormInput{})
	return v
}

func coneShare(sl validator.StructLevel) {
	in := sl.Current().Interface().(FormInput)
	if in.ConeLength > MaxConeShare*in.NailLength {
		sl.ReportError(in.ConeLength, "coneLength", "ConeLength", "coneshare", "")
	}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "gt":
		return "must be positive"
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	case "coneshare":
		return fmt.Sprintf("cone length cannot exceed %.0f%% of nail length", MaxConeShare*100)
	default:
		return "is invalid"
	}
}

// ValidateForm checks the display-unit limits of the form. It reports all violations.
func ValidateForm(in FormInput) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := make(FormErrors, 0, len(verrs))
	for _, fe := range verrs {
		value, _ := fe.Value().(float64)
		out = append(out, FormError{
			Field:   fe.Field(),
			Value:   value,
			Message: message(fe),
		})
	}
	return out
}
