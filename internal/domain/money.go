package domain

import "github.com/shopspring/decimal"

func init() {
	// Money travels as JSON numbers, matching what clients already send.
	decimal.MarshalJSONWithoutQuotes = true
}

// ParseMoney converts a validated JSON number or numeric string into an
// amount rounded to cents.
func ParseMoney(v any) (decimal.Decimal, error) {
	var (
		d   decimal.Decimal
		err error
	)
	switch n := v.(type) {
	case float64:
		d = decimal.NewFromFloat(n)
	case int:
		d = decimal.NewFromInt(int64(n))
	case int64:
		d = decimal.NewFromInt(n)
	case string:
		d, err = decimal.NewFromString(n)
	case decimal.Decimal:
		d = n
	default:
		return decimal.Zero, ErrInvalidMoney
	}
	if err != nil || d.IsNegative() {
		return decimal.Zero, ErrInvalidMoney
	}
	return d.Round(2), nil
}
