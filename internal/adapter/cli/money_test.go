package cli

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestMoneyFormatter(t *testing.T) {
	tests := []struct {
		currency string
		amount   string
		want     string
	}{
		{"USD", "60", "$60.00"},
		{"USD", "0.125", "$0.13"},
		{"USD", "0", "$0.00"},
		{"USD", "1234.5", "$1,234.50"},
		{"usd", "-40", "-$40.00"},
		{"USD", "92233720368547758.07", "$92,233,720,368,547,758.07"},
		{"USD", "100000000000000000", "$100,000,000,000,000,000.00"},
		{"USD", "-100000000000000000.5", "-$100,000,000,000,000,000.50"},
	}

	for _, tt := range tests {
		f, err := NewMoneyFormatter(tt.currency)
		if err != nil {
			t.Fatalf("NewMoneyFormatter(%q): %v", tt.currency, err)
		}
		if got := f.Format(decimal.RequireFromString(tt.amount)); got != tt.want {
			t.Errorf("Format(%s %s) = %q, want %q", tt.amount, tt.currency, got, tt.want)
		}
	}
}

func TestMoneyFormatterUnknownCurrency(t *testing.T) {
	if _, err := NewMoneyFormatter("XXY"); err == nil {
		t.Fatal("expected error for unknown currency")
	}
}
