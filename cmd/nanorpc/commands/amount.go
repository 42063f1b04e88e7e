package commands

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// unitExponents maps a unit to its size in raw as a power of ten.
var unitExponents = map[string]int32{
	"mrai": 30,
	"krai": 27,
	"rai":  24,
}

// parseAmount parses a non-negative decimal amount. When integer is set the
// amount must also be whole, as raw amounts are.
func parseAmount(s string, integer bool) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, errors.Wrapf(err, "invalid amount %q", s)
	}
	if d.IsNegative() {
		return decimal.Decimal{}, errors.Errorf("amount can't be negative: %s", s)
	}
	if integer && !d.IsInteger() {
		return decimal.Decimal{}, errors.Errorf("amount must be a whole number of raw: %s", s)
	}
	return d, nil
}

// convertOffline converts amount between raw and unit without asking the
// node. Conversions to raw must land on a whole number.
func convertOffline(direction, unit string, amount decimal.Decimal) (string, error) {
	exp, ok := unitExponents[unit]
	if !ok {
		return "", errors.Errorf("unknown unit %q", unit)
	}
	switch direction {
	case directionFrom:
		return amount.Shift(-exp).String(), nil
	case directionTo:
		raw := amount.Shift(exp)
		if !raw.IsInteger() {
			return "", errors.Errorf("%s %s is not a whole number of raw", amount, unit)
		}
		return raw.String(), nil
	default:
		return "", errors.Errorf("unknown direction %q", direction)
	}
}
