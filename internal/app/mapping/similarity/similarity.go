// Package similarity scores how alike two column names are.
package similarity

import "strings"

// Normalize lowercases s and keeps only ASCII letters and digits, so
// "Order_ID", "order id" and "orderid" all compare equal.
func Normalize(s string) string {
	s = strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Score returns a similarity in [0,1] between two column names: 1 for equal
// normalized forms, otherwise 1 - levenshtein/maxLen over the normalized forms.
func Score(a, b string) float64 {
	return ScoreNormalized(Normalize(a), Normalize(b))
}

// ScoreNormalized is Score for inputs that already went through Normalize.
func ScoreNormalized(a, b string) float64 {
	if a == b {
		return 1.0
	}

	maxLen := max(len(a), len(b))
	if maxLen == 0 {
		return 1.0
	}
	return float64(maxLen-Levenshtein(a, b)) / float64(maxLen)
}

// Levenshtein is the byte-wise edit distance between a and b.
func Levenshtein(a, b string) int {
	if len(a) < len(b) {
		a, b = b, a
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

// Max returns the best Score of name against any of the candidates, or 0
// when there are none.
func Max(name string, candidates []string) float64 {
	n := Normalize(name)
	best := 0.0
	for _, c := range candidates {
		if s := ScoreNormalized(n, Normalize(c)); s > best {
			best = s
			if best == 1.0 {
				break
			}
		}
	}
	return best
}
