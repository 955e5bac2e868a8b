package api

import (
	"fmt"
	"reflect"

	"github.com/go-viper/mapstructure/v2"
	"github.com/phrazzld/mart-api/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	decimalType = reflect.TypeOf(decimal.Decimal{})
	dateType    = reflect.TypeOf(domain.Date{})
)

// bind copies validated input onto target by json field name. Keys holding
// nil zero the field, which gives update its full-replace semantics.
func bind(input map[string]any, target any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		Squash:           true,
		ZeroFields:       true,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.ComposeDecodeHookFunc(moneyHook, dateHook),
		Result:           target,
	})
	if err != nil {
		return fmt.Errorf("build decoder: %w", err)
	}
	if err := dec.Decode(input); err != nil {
		return fmt.Errorf("bind input: %w", err)
	}
	return nil
}

func moneyHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	if to != decimalType {
		return data, nil
	}
	return domain.ParseMoney(data)
}

func dateHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	if to != dateType {
		return data, nil
	}
	s, ok := data.(string)
	if !ok {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidDate, data)
	}
	return domain.ParseDate(s)
}
