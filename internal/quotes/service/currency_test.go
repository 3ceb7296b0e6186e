package service

import "testing"

func TestFormatCurrency(t *testing.T) {
	cases := map[int]string{
		0:       "$0",
		100:     "$100",
		1234:    "$1,234",
		1234567: "$1,234,567",
		-50:     "-$50",
	}
	for amount, want := range cases {
		if got := FormatCurrency(amount); got != want {
			t.Errorf("FormatCurrency(%d) = %q, want %q", amount, got, want)
		}
	}
}

func TestFormatPrice(t *testing.T) {
	cases := map[float64]string{
		15.5:   "$16",
		15.49:  "$15",
		1200:   "$1,200",
		-12.5:  "-$13",
		0.0001: "$0",
	}
	for price, want := range cases {
		if got := FormatPrice(price); got != want {
			t.Errorf("FormatPrice(%v) = %q, want %q", price, got, want)
		}
	}
}
