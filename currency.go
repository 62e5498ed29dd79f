package worldpay_cg_hosted

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// currencyExponent returns the number of decimal places of an ISO 4217
// currency code.
func currencyExponent(code string) (int, error) {
	unit, err := currency.ParseISO(strings.ToUpper(code))
	if err != nil {
		return 0, &ValidationError{Field: "currency", Message: fmt.Sprintf("unsupported currency %q", code)}
	}
	scale, _ := currency.Standard.Rounding(unit)
	return scale, nil
}

// amountInteger validates amount against the currency's precision and
// returns it in minor units.
func amountInteger(amount decimal.Decimal, exponent int) (string, error) {
	if amount.IsNegative() {
		return "", &ValidationError{Field: "amount", Message: "amount must not be negative"}
	}
	shifted := amount.Shift(int32(exponent))
	if !shifted.Equal(shifted.Truncate(0)) {
		return "", &ValidationError{
			Field:   "amount",
			Message: fmt.Sprintf("amount precision is too high for currency (max %d decimal places)", exponent),
		}
	}
	return shifted.Truncate(0).String(), nil
}
