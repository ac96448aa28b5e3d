package cmd

import "testing"

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		currency string
		amount   int
		want     string
	}{
		{"¥", 0, "¥0"},
		{"¥", 100, "¥100"},
		{"¥", 1000, "¥1,000"},
		{"¥", 12300, "¥12,300"},
		{"€", 1234567, "€1,234,567"},
		{"", 500, "500"},
	}
	for _, tt := range tests {
		got := formatAmount(tt.currency, tt.amount)
		if got != tt.want {
			t.Errorf("formatAmount(%q, %d) = %q, want %q", tt.currency, tt.amount, got, tt.want)
		}
	}
}
