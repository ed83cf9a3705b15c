package cli

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// MoneyFormatter renders amounts in a fixed display currency.
type MoneyFormatter struct {
	currency *money.Currency
}

// NewMoneyFormatter returns a formatter for the ISO 4217 currency code.
func NewMoneyFormatter(code string) (*MoneyFormatter, error) {
	cur := money.GetCurrency(strings.ToUpper(code))
	if cur == nil {
		return nil, fmt.Errorf("unknown currency %q", code)
	}
	return &MoneyFormatter{currency: cur}, nil
}

// Format renders amount rounded to the currency's minor unit, e.g. "$60.00".
func (f *MoneyFormatter) Format(amount decimal.Decimal) string {
	minor := amount.Shift(int32(f.currency.Fraction)).Round(0)
	if minor.BigInt().IsInt64() {
		return f.currency.Formatter().Format(minor.IntPart())
	}
	return f.formatBig(minor)
}

// formatBig lays out minor units that overflow int64 the same way go-money does.
func (f *MoneyFormatter) formatBig(minor decimal.Decimal) string {
	c := f.currency
	digits := minor.Abs().BigInt().String()
	if len(digits) <= c.Fraction {
		digits = strings.Repeat("0", c.Fraction-len(digits)+1) + digits
	}
	if c.Thousand != "" {
		for i := len(digits) - c.Fraction - 3; i > 0; i -= 3 {
			digits = digits[:i] + c.Thousand + digits[i:]
		}
	}
	if c.Fraction > 0 {
		digits = digits[:len(digits)-c.Fraction] + c.Decimal + digits[len(digits)-c.Fraction:]
	}

	out := strings.Replace(c.Template, "1", digits, 1)
	out = strings.Replace(out, "$", c.Grapheme, 1)
	if minor.IsNegative() {
		out = "-" + out
	}
	return out
}
