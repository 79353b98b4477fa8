package span

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var ints = Ordered[int]()

func TestLeftOrder(t *testing.T) {
	cases := map[string]struct {
		a, b Left[int]
		want int
	}{
		"UnboundedUnbounded": {a: LeftUnbounded[int](), b: LeftUnbounded[int](), want: 0},
		"UnboundedIncluded":  {a: LeftUnbounded[int](), b: LeftIncluded(0), want: -1},
		"UnboundedExcluded":  {a: LeftUnbounded[int](), b: LeftExcluded(0), want: -1},
		"IncludedUnbounded":  {a: LeftIncluded(0), b: LeftUnbounded[int](), want: 1},
		"IncludedSame":       {a: LeftIncluded(0), b: LeftIncluded(0), want: 0},
		"IncludedLess":       {a: LeftIncluded(0), b: LeftIncluded(1), want: -1},
		"IncludedGreater":    {a: LeftIncluded(1), b: LeftIncluded(0), want: 1},
		"IncludedExcluded":   {a: LeftIncluded(5), b: LeftExcluded(5), want: -1},
		"IncludedExcluded4":  {a: LeftIncluded(5), b: LeftExcluded(4), want: 1},
		"IncludedExcluded6":  {a: LeftIncluded(5), b: LeftExcluded(6), want: -1},
		"ExcludedSame":       {a: LeftExcluded(0), b: LeftExcluded(0), want: 0},
		"ExcludedIncluded":   {a: LeftExcluded(5), b: LeftIncluded(5), want: 1},
		"ExcludedIncluded4":  {a: LeftExcluded(5), b: LeftIncluded(4), want: 1},
		"ExcludedIncluded6":  {a: LeftExcluded(5), b: LeftIncluded(6), want: -1},
		"ExcludedUnbounded":  {a: LeftExcluded(0), b: LeftUnbounded[int](), want: 1},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, ints.Left(tc.a, tc.b))
			assert.Equal(t, -tc.want, ints.Left(tc.b, tc.a))
		})
	}
}

func TestRightOrder(t *testing.T) {
	cases := map[string]struct {
		a, b Right[int]
		want int
	}{
		"UnboundedUnbounded": {a: RightUnbounded[int](), b: RightUnbounded[int](), want: 0},
		"UnboundedIncluded":  {a: RightUnbounded[int](), b: RightIncluded(0), want: 1},
		"ExcludedUnbounded":  {a: RightExcluded(0), b: RightUnbounded[int](), want: -1},
		"IncludedSame":       {a: RightIncluded(3), b: RightIncluded(3), want: 0},
		"ExcludedSame":       {a: RightExcluded(3), b: RightExcluded(3), want: 0},
		"ExcludedIncluded":   {a: RightExcluded(5), b: RightIncluded(5), want: -1},
		"IncludedExcluded":   {a: RightIncluded(5), b: RightExcluded(5), want: 1},
		"IncludedExcluded6":  {a: RightIncluded(5), b: RightExcluded(6), want: -1},
		"ValueWins":          {a: RightExcluded(7), b: RightIncluded(6), want: 1},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, ints.Right(tc.a, tc.b))
			assert.Equal(t, -tc.want, ints.Right(tc.b, tc.a))
		})
	}
}

func TestCrossOrder(t *testing.T) {
	cases := map[string]struct {
		l    Left[int]
		r    Right[int]
		want int
	}{
		"UnboundedUnbounded":  {l: LeftUnbounded[int](), r: RightUnbounded[int](), want: -1},
		"UnboundedIncluded":   {l: LeftUnbounded[int](), r: RightIncluded(-100), want: -1},
		"IncludedUnbounded":   {l: LeftIncluded(100), r: RightUnbounded[int](), want: -1},
		"IncludedIncluded":    {l: LeftIncluded(5), r: RightIncluded(5), want: 0},
		"IncludedExcluded":    {l: LeftIncluded(5), r: RightExcluded(5), want: 1},
		"ExcludedIncluded":    {l: LeftExcluded(5), r: RightIncluded(5), want: 1},
		"ExcludedExcluded":    {l: LeftExcluded(5), r: RightExcluded(5), want: 1},
		"IncludedBelow":       {l: LeftIncluded(4), r: RightExcluded(5), want: -1},
		"ExcludedBelow":       {l: LeftExcluded(4), r: RightExcluded(5), want: -1},
		"IncludedAbove":       {l: LeftIncluded(6), r: RightIncluded(5), want: 1},
		"ExcludedAboveClosed": {l: LeftExcluded(6), r: RightIncluded(5), want: 1},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, ints.LeftRight(tc.l, tc.r))
			assert.Equal(t, -tc.want, ints.RightLeft(tc.r, tc.l))
		})
	}
}

// Every edge is mapped to a point on a doubled number line: v-ε, v and v+ε
// become 3v-1, 3v and 3v+1, the infinities sit past both ends. Comparing the
// points must agree with every Order method.
func leftPoint(l Left[int]) int {
	switch l.Kind {
	case Included:
		return 3 * l.Value
	case Excluded:
		return 3*l.Value + 1
	}
	return -1 << 20
}

func rightPoint(r Right[int]) int {
	switch r.Kind {
	case Included:
		return 3 * r.Value
	case Excluded:
		return 3*r.Value - 1
	}
	return 1 << 20
}

func allLefts(lo, hi int) []Left[int] {
	out := []Left[int]{LeftUnbounded[int]()}
	for v := lo; v <= hi; v++ {
		out = append(out, LeftIncluded(v), LeftExcluded(v))
	}
	return out
}

func allRights(lo, hi int) []Right[int] {
	out := []Right[int]{RightUnbounded[int]()}
	for v := lo; v <= hi; v++ {
		out = append(out, RightIncluded(v), RightExcluded(v))
	}
	return out
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

func TestOrderMatchesGeometry(t *testing.T) {
	lefts, rights := allLefts(-2, 2), allRights(-2, 2)
	for _, a := range lefts {
		for _, b := range lefts {
			assert.Equal(t, sign(leftPoint(a)-leftPoint(b)), sign(ints.Left(a, b)), "%s vs %s", a, b)
		}
		for _, r := range rights {
			assert.Equal(t, sign(leftPoint(a)-rightPoint(r)), sign(ints.LeftRight(a, r)), "%s vs %s", a, r)
			assert.Equal(t, -ints.LeftRight(a, r), ints.RightLeft(r, a), "%s vs %s", a, r)
		}
	}
	for _, a := range rights {
		for _, b := range rights {
			assert.Equal(t, sign(rightPoint(a)-rightPoint(b)), sign(ints.Right(a, b)), "%s vs %s", a, b)
		}
	}
}

func TestCrossOrderTransitive(t *testing.T) {
	lefts, rights := allLefts(-2, 2), allRights(-2, 2)
	// l1 <= r <= l2 implies l1 <= l2, and r1 <= l <= r2 implies r1 <= r2
	for _, l1 := range lefts {
		for _, r := range rights {
			if ints.LeftRight(l1, r) > 0 {
				continue
			}
			for _, l2 := range lefts {
				if ints.RightLeft(r, l2) <= 0 {
					assert.LessOrEqual(t, ints.Left(l1, l2), 0, "%s <= %s <= %s", l1, r, l2)
				}
			}
		}
	}
	for _, r1 := range rights {
		for _, l := range lefts {
			if ints.RightLeft(r1, l) > 0 {
				continue
			}
			for _, r2 := range rights {
				if ints.LeftRight(l, r2) <= 0 {
					assert.LessOrEqual(t, ints.Right(r1, r2), 0, "%s <= %s <= %s", r1, l, r2)
				}
			}
		}
	}
}

func TestAdjacent(t *testing.T) {
	l, ok := RightIncluded(5).AdjacentLeft()
	assert.True(t, ok)
	assert.Equal(t, LeftExcluded(5), l)

	l, ok = RightExcluded(5).AdjacentLeft()
	assert.True(t, ok)
	assert.Equal(t, LeftIncluded(5), l)

	_, ok = RightUnbounded[int]().AdjacentLeft()
	assert.False(t, ok)

	r, ok := LeftIncluded(5).AdjacentRight()
	assert.True(t, ok)
	assert.Equal(t, RightExcluded(5), r)

	r, ok = LeftExcluded(5).AdjacentRight()
	assert.True(t, ok)
	assert.Equal(t, RightIncluded(5), r)

	_, ok = LeftUnbounded[int]().AdjacentRight()
	assert.False(t, ok)
}
