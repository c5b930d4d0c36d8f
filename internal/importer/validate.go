package importer

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

const notBlankTag = "notblank"

var (
	validateOnce sync.Once
	validate     *validator.Validate
	translator   ut.Translator
)

func structValidator() (*validator.Validate, ut.Translator) {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		_en := en.New()
		uni := ut.New(_en, _en)
		translator, _ = uni.GetTranslator("en")
		_ = en_translations.RegisterDefaultTranslations(validate, translator)

		// Report JSON field names rather than Go field names.
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = validate.RegisterValidation(notBlankTag, func(fl validator.FieldLevel) bool {
			s, ok := fl.Field().Interface().(string)
			return ok && strings.TrimSpace(s) != ""
		})
		_ = validate.RegisterTranslation(notBlankTag, translator,
			func(ut.Translator) error { return nil },
			func(_ ut.Translator, fe validator.FieldError) string {
				return fe.Field() + " cannot be blank"
			})
	})
	return validate, translator
}

// ValidateActivitySet checks the structural rules of a parsed file: at least
// one activity, every activity named, and a grade on every done activity.
// Numeric ranges are left to the field normalizers.
func ValidateActivitySet(file *ActivitySetFile) []error {
	if file == nil {
		return []error{errors.New("activity set is empty")}
	}

	v, trans := structValidator()
	err := v.Struct(file)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []error{err}
	}

	out := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, fmt.Errorf("%s: %s", fieldPath(fe.Namespace()), fe.Translate(trans)))
	}
	return out
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
