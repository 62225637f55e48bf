package cli

import (
	"testing"
	"time"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.00"},
		{15.5, "15.50"},
		{1234.5, "1,234.50"},
		{1234567.891, "1,234,567.89"},
		{-50, "-50.00"},
		{-0.001, "0.00"},
		{999.999, "1,000.00"},
	}
	for _, tt := range tests {
		if got := FormatAmount(tt.in); got != tt.want {
			t.Errorf("FormatAmount(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	if got := FormatNumber(1234567); got != "1,234,567" {
		t.Fatalf("FormatNumber = %q", got)
	}
	if got := FormatNumber(-1000); got != "-1,000" {
		t.Fatalf("FormatNumber(-1000) = %q", got)
	}
	if got := FormatNumber(12); got != "12" {
		t.Fatalf("FormatNumber(12) = %q", got)
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(0.755); got != "75.5%" {
		t.Fatalf("FormatPercent = %q", got)
	}
}

func TestFormatTime(t *testing.T) {
	if got := FormatTime(time.Time{}); got != "-" {
		t.Fatalf("FormatTime(zero) = %q, want -", got)
	}
	if got := FormatTime(time.Now()); got == "-" {
		t.Fatal("FormatTime(now) returned placeholder")
	}
}

func TestFormatExact(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0.004, "0.004"},
		{40, "40"},
		{-12.5, "-12.5"},
		{1234567.891, "1234567.891"},
	}
	for _, tt := range tests {
		if got := FormatExact(tt.in); got != tt.want {
			t.Errorf("FormatExact(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
