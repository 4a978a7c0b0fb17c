package parse

import (
	"math"
	"strings"
	"testing"
	"time"
)

func TestAmount(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want float64
	}{
		{"$1 000,00", 1000},
		{"", 0},
		{"garbage", 0},
		{"1000.00", 1000},
		{"$12,50", 12.5},
		{"  $3 ", 3},
		{"1 250,75", 1250.75},
		{"$", 0},
		{"1,000.00", 0},
		{"NaN", 0},
		{"Inf", 0},
		{"1e3", 0},
		{"1e400", 0},
		{"1e90000000", 0},
		{"$1E90000000", 0},
		{"-1e-90000000", 0},
		{"1" + strings.Repeat("0", 400), 0},
	}
	for _, c := range cases {
		if got := Amount(c.in); got != c.want {
			t.Errorf("Amount(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestDate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"05/03/2024", "2024-03-05", true},
		{"5/3/2024", "2024-03-05", true},
		{" 29/02/2024 ", "2024-02-29", true},
		{"05/03/24", "2024-03-05", true},
		{"", "", false},
		{"   ", "", false},
		{"31/31/2024", "", false},
		{"30/02/2024", "", false},
		{"2024-03-05", "", false},
		{"Aucun", "", false},
	}
	for _, c := range cases {
		got, ok := Date(c.in)
		if got != c.want || ok != c.wantOK {
			t.Errorf("Date(%q) = (%q, %v), want (%q, %v)", c.in, got, ok, c.want, c.wantOK)
		}
	}
}

func TestInt(t *testing.T) {
	t.Parallel()

	if got := Int(" 4 "); got != 4 {
		t.Fatalf("Int(\" 4 \") = %d", got)
	}
	if got := Int("2.5"); got != 0 {
		t.Fatalf("Int(\"2.5\") = %d, want 0", got)
	}
	if got := Int(""); got != 0 {
		t.Fatalf("Int(\"\") = %d, want 0", got)
	}
}

func TestLooseInt(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want int
	}{
		{"3", 3},
		{"$4", 4},
		{"2,9", 2},
		{"1 2", 12},
		{"abc", 0},
		{"", 0},
		{"1e90000000", 0},
		{"99999999999999999999", 0},
		{"-99999999999999999999", 0},
	}
	for _, c := range cases {
		if got := LooseInt(c.in); got != c.want {
			t.Errorf("LooseInt(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestFloat(t *testing.T) {
	t.Parallel()

	if got := Float("12.5"); got != 12.5 {
		t.Fatalf("Float(\"12.5\") = %v", got)
	}
	if got := Float("douze"); got != 0 {
		t.Fatalf("Float(\"douze\") = %v, want 0", got)
	}
}

func TestAmount_ExponentReturnsQuickly(t *testing.T) {
	t.Parallel()

	start := time.Now()
	for _, in := range []string{"1e90000000", "$1e90000000", "2,5E2147483647"} {
		if got := Amount(in); got != 0 || math.IsInf(got, 0) {
			t.Fatalf("Amount(%q) = %v, want 0", in, got)
		}
	}
	if d := time.Since(start); d > time.Second {
		t.Fatalf("exponent amounts took %v", d)
	}
}
