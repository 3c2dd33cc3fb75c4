package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatRupees renders an integer amount with the "Rs. " prefix and Indian
// digit grouping (last three digits, then pairs): 10000 -> "Rs. 10,000",
// 1234567 -> "Rs. 12,34,567".
func FormatRupees(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return fmt.Sprintf("%sRs. %s", sign, groupIndian(amount))
}

// ParseRupeesToInt parses "Rs. 10,000" or "10000" into an integer amount.
func ParseRupeesToInt(s string) (int64, error) {
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)
	for _, prefix := range []string{"rs.", "rs", "₹"} {
		if strings.HasPrefix(lower, prefix) {
			s = s[len(prefix):]
			break
		}
	}
	replacer := strings.NewReplacer(",", "", " ", "")
	s = replacer.Replace(strings.TrimSpace(s))
	if s == "" {
		return 0, fmt.Errorf("invalid rupee amount")
	}
	return strconv.ParseInt(s, 10, 64)
}

func groupIndian(n int64) string {
	str := strconv.FormatInt(n, 10)
	if len(str) <= 3 {
		return str
	}
	head := str[:len(str)-3]
	tail := str[len(str)-3:]
	var out strings.Builder
	for i, c := range head {
		if i != 0 && (len(head)-i)%2 == 0 {
			out.WriteByte(',')
		}
		out.WriteRune(c)
	}
	return out.String() + "," + tail
}
