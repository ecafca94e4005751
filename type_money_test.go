package screener

import "testing"

func TestMoneyString(t *testing.T) {
	tests := []struct {
		m    Money
		want string
	}{
		{M(150, "USD"), "$150.00"},
		{M(1234.56, "USD"), "$1,234.56"},
		{M(150, "EUR"), "€150.00"},
		{M(-42.5, "USD"), "-$42.50"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Errorf("M(%v, %q).String() = %q, want %q", tt.m.Float64(), tt.m.Currency(), got, tt.want)
		}
	}
}

func TestMoneyEqual(t *testing.T) {
	if !M(150, "USD").Equal(M(150, "USD")) {
		t.Errorf("Money.Equal() = false for identical values")
	}
	if M(150, "USD").Equal(M(150, "EUR")) {
		t.Errorf("Money.Equal() = true across currencies")
	}
}

func TestMoneyIsZero(t *testing.T) {
	if !M(0, "USD").IsZero() {
		t.Errorf("M(0).IsZero() = false")
	}
	if M(0.01, "USD").IsZero() {
		t.Errorf("M(0.01).IsZero() = true")
	}
}
