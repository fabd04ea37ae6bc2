// Package amount formats and parses the amount a payee types on the receive screen.
//
// The text form groups digits with '.' every three places from the right,
// the way VND amounts are written ("1.500.000").
package amount

import (
	"strings"

	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

const (
	GroupSeparator = "."
	Currency       = "VND"
)

var label = accounting.Accounting{
	Symbol:    Currency,
	Precision: 0,
	Thousand:  GroupSeparator,
	Decimal:   ",",
	Format:    "%v %s",
}

// Format keeps only ASCII digits from input and regroups them.
func Format(input string) string {
	digits := make([]byte, 0, len(input))
	for i := 0; i < len(input); i++ {
		if c := input[i]; c >= '0' && c <= '9' {
			digits = append(digits, c)
		}
	}
	if len(digits) == 0 {
		return ""
	}

	var b strings.Builder
	b.Grow(len(digits) + len(digits)/3)
	for i, c := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteString(GroupSeparator)
		}
		b.WriteByte(c)
	}
	return b.String()
}

// Parse reverses Format. Empty, malformed and negative text all yield zero.
func Parse(text string) decimal.Decimal {
	raw := strings.ReplaceAll(strings.TrimSpace(text), GroupSeparator, "")
	if raw == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(raw)
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// Label renders a parsed amount for display, e.g. "1.500.000 VND".
func Label(d decimal.Decimal) string {
	if !d.IsPositive() {
		return ""
	}
	return label.FormatMoneyBigRat(d.Rat())
}
