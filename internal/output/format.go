package output

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatCurrency renders a rupee amount with Indian digit grouping
// (1,00,00,000 style).
func FormatCurrency(amount decimal.Decimal) string {
	s := amount.Round(0).String()

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	if len(s) > 3 {
		head, tail := s[:len(s)-3], s[len(s)-3:]
		var groups []string
		for len(head) > 2 {
			groups = append([]string{head[len(head)-2:]}, groups...)
			head = head[:len(head)-2]
		}
		if head != "" {
			groups = append([]string{head}, groups...)
		}
		s = strings.Join(groups, ",") + "," + tail
	}

	if neg {
		return "-₹" + s
	}
	return "₹" + s
}

// FormatPercent renders a percentage value at one decimal place.
func FormatPercent(amount decimal.Decimal) string {
	return amount.StringFixed(1) + "%"
}

// FormatRate renders an annual rate fraction (0.12) as a percentage.
func FormatRate(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}
