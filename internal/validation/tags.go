package validation

import (
	"context"
	"math"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/araddon/dateparse"
	"github.com/go-playground/validator/v10"
)

func (v *Validator) registerTags() error {
	plain := map[string]validator.Func{
		"filled":    isFilled,
		"string":    isString,
		"integer":   isInteger,
		"numeric":   isNumeric,
		"date":      isDate,
		"confirmed": isConfirmed,
		"between":   isBetween,
	}
	for tag, fn := range plain {
		if err := v.validate.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}

	if err := v.validate.RegisterValidationCtx("exists", v.exists); err != nil {
		return err
	}
	return v.validate.RegisterValidationCtx("unique", v.unique)
}

// isFilled is a required check under which 0 and false still count as
// provided. The baked-in required tag treats them as missing.
func isFilled(fl validator.FieldLevel) bool {
	field := fl.Field()
	switch field.Kind() {
	case reflect.String:
		return strings.TrimSpace(field.String()) != ""
	case reflect.Slice, reflect.Map, reflect.Array:
		return field.Len() > 0
	case reflect.Ptr, reflect.Interface:
		return !field.IsNil()
	default:
		return field.IsValid()
	}
}

func isString(fl validator.FieldLevel) bool {
	return fl.Field().Kind() == reflect.String
}

func isInteger(fl validator.FieldLevel) bool {
	field := fl.Field()
	switch field.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	case reflect.Float32, reflect.Float64:
		f := field.Float()
		return !math.IsInf(f, 0) && f == math.Trunc(f)
	default:
		return false
	}
}

func isNumeric(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	case reflect.Float32, reflect.Float64:
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	default:
		return false
	}
}

func isDate(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	_, err := dateparse.ParseAny(strings.TrimSpace(fl.Field().String()))
	return err == nil
}

// isBetween checks an inclusive "low high" range: rune length for strings,
// value for numbers.
func isBetween(fl validator.FieldLevel) bool {
	low, high, ok := betweenBounds(fl.Param())
	if !ok {
		return false
	}

	var n float64
	field := fl.Field()
	switch field.Kind() {
	case reflect.String:
		n = float64(utf8.RuneCountInString(field.String()))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n = float64(field.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n = float64(field.Uint())
	case reflect.Float32, reflect.Float64:
		n = field.Float()
	default:
		return false
	}
	return n >= low && n <= high
}

func betweenBounds(param string) (low, high float64, ok bool) {
	parts := strings.Fields(param)
	if len(parts) != 2 {
		return 0, 0, false
	}
	low, errLow := strconv.ParseFloat(parts[0], 64)
	high, errHigh := strconv.ParseFloat(parts[1], 64)
	return low, high, errLow == nil && errHigh == nil
}

// isConfirmed compares the field with the value passed alongside it, which
// Validate supplies from <field>_confirmation.
func isConfirmed(fl validator.FieldLevel) bool {
	other := fl.Parent()
	if !other.IsValid() {
		return false
	}
	return reflect.DeepEqual(fl.Field().Interface(), other.Interface())
}

// exists passes when param's table (optionally "table.column", default
// column id) has a row matching the value.
func (v *Validator) exists(ctx context.Context, fl validator.FieldLevel) bool {
	table, column := splitTarget(fl.Param(), "id")
	found, ok := v.query(ctx, table, column, fl.Field().Interface())
	if !ok {
		return true
	}
	return found
}

// unique passes when no row of param's "table.column" holds the value.
// The column defaults to email.
func (v *Validator) unique(ctx context.Context, fl validator.FieldLevel) bool {
	table, column := splitTarget(fl.Param(), "email")
	found, ok := v.query(ctx, table, column, fl.Field().Interface())
	if !ok {
		return true
	}
	return !found
}

// query runs a lookup. On failure it records the error for Validate to
// return and reports ok=false so the rule is not blamed on the client.
func (v *Validator) query(ctx context.Context, table, column string, value any) (found, ok bool) {
	state, _ := ctx.Value(lookupStateKey{}).(*lookupState)
	fail := func(err error) (bool, bool) {
		if state != nil && state.err == nil {
			state.err = err
		}
		return false, false
	}

	if v.lookup == nil {
		return fail(ErrNoLookup)
	}

	if f, isFloat := value.(float64); isFloat && f == math.Trunc(f) {
		value = int64(f)
	}

	found, err := v.lookup.Exists(ctx, table, column, value)
	if err != nil {
		return fail(err)
	}
	return found, true
}

func splitTarget(param, defaultColumn string) (table, column string) {
	table, column, ok := strings.Cut(param, ".")
	if !ok || column == "" {
		column = defaultColumn
	}
	return table, column
}
