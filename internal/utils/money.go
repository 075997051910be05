package utils

import "strconv"

// FormatRupees renders an amount with Indian digit grouping: Rs 12,34,567.
func FormatRupees(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	s := strconv.FormatInt(amount, 10)
	if len(s) <= 3 {
		return sign + "Rs " + s
	}

	head := s[:len(s)-3]
	tail := s[len(s)-3:]
	var out []byte
	for i := 0; i < len(head); i++ {
		if i > 0 && (len(head)-i)%2 == 0 {
			out = append(out, ',')
		}
		out = append(out, head[i])
	}
	return sign + "Rs " + string(out) + "," + tail
}
