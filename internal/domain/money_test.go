package domain

import "testing"

func TestFormatAmountMinor(t *testing.T) {
	tests := []struct {
		name        string
		amountMinor int64
		currency    string
		want        string
	}{
		{"paise to rupees", 50000, "INR", "₹500.00"},
		{"sub-rupee remainder", 50050, "INR", "₹500.50"},
		{"single paisa", 1, "INR", "₹0.01"},
		{"dollars", 1999, "USD", "$19.99"},
		{"unknown currency falls back to code", 2500, "JPY", "JPY 25.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatAmountMinor(tt.amountMinor, tt.currency)
			if got != tt.want {
				t.Errorf("FormatAmountMinor(%d, %q) = %q, want %q", tt.amountMinor, tt.currency, got, tt.want)
			}
		})
	}
}

func TestTransactionDisplayName(t *testing.T) {
	tx := &Transaction{PayerName: "J. Mattis"}
	if got := tx.DisplayName(); got != "J. Mattis" {
		t.Errorf("DisplayName() = %q, want payer name", got)
	}

	tx.Anonymous = true
	if got := tx.DisplayName(); got != "Anonymous" {
		t.Errorf("DisplayName() with anonymous flag = %q, want Anonymous", got)
	}

	empty := &Transaction{}
	if got := empty.DisplayName(); got != "Anonymous" {
		t.Errorf("DisplayName() with empty name = %q, want Anonymous", got)
	}
}

func TestStatusIsTerminal(t *testing.T) {
	if StatusCreated.IsTerminal() {
		t.Error("CREATED must not be terminal")
	}
	if !StatusPaid.IsTerminal() || !StatusFailed.IsTerminal() {
		t.Error("PAID and FAILED must be terminal")
	}
}
