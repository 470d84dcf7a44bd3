package domain

import "fmt"

var currencySymbols = map[string]string{
	"INR": "₹",
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
}

// FormatAmountMinor renders an amount held in minor currency units for
// display, e.g. 50000 paise -> "₹500.00". Unknown currencies fall back to
// the ISO code prefix.
func FormatAmountMinor(amountMinor int64, currency string) string {
	symbol, ok := currencySymbols[currency]
	if !ok {
		return fmt.Sprintf("%s %d.%02d", currency, amountMinor/100, amountMinor%100)
	}
	return fmt.Sprintf("%s%d.%02d", symbol, amountMinor/100, amountMinor%100)
}
