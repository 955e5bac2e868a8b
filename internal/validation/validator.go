package validation

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/cast"
)

// Validator evaluates Rules against decoded JSON bodies. It is safe for
// concurrent use.
type Validator struct {
	validate *validator.Validate
	trans    ut.Translator
	lookup   Lookup
}

type lookupState struct {
	err error
}

type lookupStateKey struct{}

// New builds a Validator. lookup may be nil when no rule set uses exists or
// unique.
func New(lookup Lookup) (*Validator, error) {
	v := &Validator{validate: validator.New(), lookup: lookup}

	locale := en.New()
	trans, _ := ut.New(locale, locale).GetTranslator(locale.Locale())
	if err := registerMessages(trans); err != nil {
		return nil, fmt.Errorf("register validation messages: %w", err)
	}
	v.trans = trans

	if err := v.registerTags(); err != nil {
		return nil, fmt.Errorf("register validation tags: %w", err)
	}
	return v, nil
}

// Validate checks input against rules. It returns nil FieldErrors when every
// field passes. The error result is reserved for datastore failures during
// exists/unique lookups.
//
// Numeric strings on integer and numeric fields are converted to float64
// and written back into input, so callers binding input afterwards see
// numbers.
func (v *Validator) Validate(ctx context.Context, input map[string]any, rules Rules) (FieldErrors, error) {
	state := &lookupState{}
	ctx = context.WithValue(ctx, lookupStateKey{}, state)

	var fieldErrs FieldErrors
	for _, rule := range rules {
		value, present := input[rule.Field]
		if present && (rule.has("integer") || rule.has("numeric")) {
			value = coerceNumber(value)
			input[rule.Field] = value
		}

		var err error
		if rule.has("confirmed") {
			err = v.validate.VarWithValueCtx(ctx, value, input[rule.Field+"_confirmation"], rule.Tags)
		} else {
			err = v.validate.VarCtx(ctx, value, rule.Tags)
		}

		if state.err != nil {
			return nil, state.err
		}
		if err == nil {
			continue
		}

		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) || len(verrs) == 0 {
			return nil, fmt.Errorf("validate %s: %w", rule.Field, err)
		}
		if fieldErrs == nil {
			fieldErrs = make(FieldErrors)
		}
		fieldErrs[rule.Field] = v.message(rule.Field, verrs[0])
	}

	return fieldErrs, nil
}

// coerceNumber turns numeric strings into float64 and leaves anything else
// untouched for the type tags to reject.
func coerceNumber(value any) any {
	s, ok := value.(string)
	if !ok {
		return value
	}
	f, err := cast.ToFloat64E(s)
	if err != nil {
		return value
	}
	return f
}
