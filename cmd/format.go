package cmd

import "strconv"

// formatAmount renders an amount with the configured currency symbol and
// thousands separators, e.g. formatAmount("¥", 12300) == "¥12,300".
func formatAmount(currency string, amount int) string {
	s := strconv.Itoa(amount)
	if len(s) <= 3 {
		return currency + s
	}
	grouped := ""
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			grouped += ","
		}
		grouped += string(c)
	}
	return currency + grouped
}
