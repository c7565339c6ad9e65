// utils/format.go - Display formatting helpers
package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatFileSize renders a byte count the way document rows store it,
// e.g. 1302528 -> "1.24 MB".
func FormatFileSize(bytes int64) string {
	return fmt.Sprintf("%.2f MB", float64(bytes)/1024/1024)
}

// FormatMoney renders an amount as a dollar figure with thousands
// separators, e.g. 1234567.5 -> "$1,234,567.50".
func FormatMoney(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	s := strconv.FormatFloat(amount, 'f', 2, 64)
	parts := strings.SplitN(s, ".", 2)

	intPart := parts[0]
	var grouped []string
	for len(intPart) > 3 {
		grouped = append([]string{intPart[len(intPart)-3:]}, grouped...)
		intPart = intPart[:len(intPart)-3]
	}
	grouped = append([]string{intPart}, grouped...)

	out := "$" + strings.Join(grouped, ",") + "." + parts[1]
	if negative {
		out = "-" + out
	}
	return out
}
