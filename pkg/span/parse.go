package span

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse reads a span written in interval notation, e.g. "[1, 5)",
// "(-∞, 10]" or "(-inf, inf)". Keys are decoded with parseKey and must not
// contain a comma.
func Parse[K any](s string, parseKey func(string) (K, error)) (Span[K], error) {
	var sp Span[K]
	t := strings.TrimSpace(s)
	if len(t) < 2 {
		return sp, fmt.Errorf("invalid span %q", s)
	}
	from, to, ok := strings.Cut(t, ",")
	if !ok {
		return sp, fmt.Errorf("no comma in span %q", s)
	}
	from, to = strings.TrimSpace(from), strings.TrimSpace(to)
	if from == "" || to == "" {
		return sp, fmt.Errorf("invalid span %q", s)
	}

	open, lo := from[0], strings.TrimSpace(from[1:])
	switch {
	case isNegInf(lo):
		if open != '(' {
			return sp, fmt.Errorf("unbounded start must be open in span %q", s)
		}
		sp.Left = LeftUnbounded[K]()
	case open == '[' || open == '(':
		v, err := parseKey(lo)
		if err != nil {
			return sp, fmt.Errorf("invalid start %q in span %q: %w", lo, s, err)
		}
		if open == '[' {
			sp.Left = LeftIncluded(v)
		} else {
			sp.Left = LeftExcluded(v)
		}
	default:
		return sp, fmt.Errorf("span %q must start with '[' or '('", s)
	}

	shut, hi := to[len(to)-1], strings.TrimSpace(to[:len(to)-1])
	switch {
	case isPosInf(hi):
		if shut != ')' {
			return sp, fmt.Errorf("unbounded end must be open in span %q", s)
		}
		sp.Right = RightUnbounded[K]()
	case shut == ']' || shut == ')':
		v, err := parseKey(hi)
		if err != nil {
			return sp, fmt.Errorf("invalid end %q in span %q: %w", hi, s, err)
		}
		if shut == ']' {
			sp.Right = RightIncluded(v)
		} else {
			sp.Right = RightExcluded(v)
		}
	default:
		return sp, fmt.Errorf("span %q must end with ']' or ')'", s)
	}
	return sp, nil
}

// ParseInt is Parse for base 10 int keys.
func ParseInt(s string) (Span[int], error) {
	return Parse(s, strconv.Atoi)
}

func isNegInf(s string) bool {
	return s == "-∞" || strings.EqualFold(s, "-inf")
}

func isPosInf(s string) bool {
	return s == "∞" || s == "+∞" || strings.EqualFold(s, "inf") || strings.EqualFold(s, "+inf")
}
