package main

import (
	"math"
	"testing"
)

func TestNumericLiteral(t *testing.T) {
	cases := []struct {
		text string
		want *float64
	}{
		{"42", ptr(42)},
		{"  -3.5 ", ptr(-3.5)},
		{"1e6", ptr(1e6)},
		{"", nil},
		{"2+3", nil},
		{"math.sqrt(2)", nil},
		{"abc", nil},
	}
	for _, c := range cases {
		got := numericLiteral(c.text)
		switch {
		case c.want == nil && got != nil:
			t.Errorf("numericLiteral(%q) = %v, want nil", c.text, *got)
		case c.want != nil && got == nil:
			t.Errorf("numericLiteral(%q) = nil, want %v", c.text, *c.want)
		case c.want != nil && *got != *c.want:
			t.Errorf("numericLiteral(%q) = %v, want %v", c.text, *got, *c.want)
		}
	}
}

func TestEvalExpression(t *testing.T) {
	cases := []struct {
		expr string
		want float64
	}{
		{"2+3", 5},
		{"7", 7},
		{"10 * (2 + 1.5)", 35},
		{"math.sqrt(16)", 4},
		{"2 * math.pi", 2 * math.Pi},
	}
	for _, c := range cases {
		got, err := EvalExpression(c.expr)
		if err != nil {
			t.Errorf("EvalExpression(%q): %v", c.expr, err)
			continue
		}
		if math.Abs(got-c.want) > 1e-9 {
			t.Errorf("EvalExpression(%q) = %v, want %v", c.expr, got, c.want)
		}
	}
}

func TestEvalExpressionErrors(t *testing.T) {
	for _, expr := range []string{"", "2 +", `"hello"`, "true"} {
		if _, err := EvalExpression(expr); err == nil {
			t.Errorf("EvalExpression(%q) succeeded, want error", expr)
		}
	}
}

func ptr(v float64) *float64 {
	return &v
}
