package core

// Atoi converts the leading decimal integer in s, ignoring leading
// whitespace and an optional sign. It returns 0 when s holds no digits and
// ignores anything after the digits.
func Atoi(s string) int {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}

	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	var n int
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		// Saturate rather than overflow.
		if n > (maxInt-9)/10 {
			n = maxInt
			continue
		}
		n = n*10 + int(s[i]-'0')
	}

	if neg {
		return -n
	}
	return n
}

const maxInt = int(^uint(0) >> 1)

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
