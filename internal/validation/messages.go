package validation

import (
	"reflect"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
)

// Keyed by tag, or tag plus a kind suffix for size rules. {0} is the
// humanised field name, {1} the rule parameter; between splits its
// parameter into {1} and {2}.
var messages = map[string]string{
	"filled":          "The {0} field is required.",
	"string":          "The {0} field must be a string.",
	"integer":         "The {0} field must be an integer.",
	"numeric":         "The {0} field must be a number.",
	"date":            "The {0} field must be a valid date.",
	"email":           "The {0} field must be a valid email address.",
	"oneof":           "The selected {0} is invalid.",
	"exists":          "The selected {0} is invalid.",
	"unique":          "The {0} has already been taken.",
	"confirmed":       "The {0} field confirmation does not match.",
	"min.string":      "The {0} field must be at least {1} characters.",
	"min.numeric":     "The {0} field must be at least {1}.",
	"max.string":      "The {0} field must not be greater than {1} characters.",
	"max.numeric":     "The {0} field must not be greater than {1}.",
	"between.string":  "The {0} field must be between {1} and {2} characters.",
	"between.numeric": "The {0} field must be between {1} and {2}.",
	"fallback":        "The {0} field is invalid.",
}

func registerMessages(trans ut.Translator) error {
	for key, text := range messages {
		if err := trans.Add(key, text, false); err != nil {
			return err
		}
	}
	return nil
}

func (v *Validator) message(field string, fe validator.FieldError) string {
	key := fe.Tag()
	if key == "min" || key == "max" || key == "between" {
		if fe.Kind() == reflect.String {
			key += ".string"
		} else {
			key += ".numeric"
		}
	}

	attribute := humanize(field)
	params := []string{attribute, fe.Param()}
	if fe.Tag() == "between" {
		params = append([]string{attribute}, strings.Fields(fe.Param())...)
	}
	msg, err := v.trans.T(key, params...)
	if err != nil {
		msg, _ = v.trans.T("fallback", attribute)
	}
	return msg
}

// humanize renders a field name the way it appears in messages:
// category_id becomes "category id".
func humanize(field string) string {
	return strings.ReplaceAll(field, "_", " ")
}
