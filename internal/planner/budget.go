package planner

import (
	"regexp"
	"strconv"
	"strings"
)

var amountPattern = regexp.MustCompile(`\d+(?:,\d+)*(?:\.\d+)?`)

// Budget is the result of scanning a free-form budget string.
type Budget struct {
	Amount float64
	Symbol string
}

// ParseBudget extracts an amount and a currency symbol from free-form text
// such as "50,000 INR" or "$800". It never fails: unreadable input comes
// back as a zero amount so plan generation can still proceed.
func ParseBudget(raw string) Budget {
	lower := strings.ToLower(raw)

	symbol := "₹"
	switch {
	case strings.Contains(lower, "$") || strings.Contains(lower, "usd"):
		symbol = "$"
	case strings.Contains(lower, "€") || strings.Contains(lower, "eur"):
		symbol = "€"
	case strings.Contains(lower, "₹") || strings.Contains(lower, "inr") || strings.Contains(lower, "rs"):
		symbol = "₹"
	}

	match := amountPattern.FindString(raw)
	if match == "" {
		return Budget{Symbol: symbol}
	}

	amount, err := strconv.ParseFloat(strings.ReplaceAll(match, ",", ""), 64)
	if err != nil {
		return Budget{Symbol: symbol}
	}
	return Budget{Amount: amount, Symbol: symbol}
}
