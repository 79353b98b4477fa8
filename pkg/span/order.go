package span

import "cmp"

// Order compares key values and, through its methods, edges and spans built
// on them. It must be a total order over the keys it is given.
type Order[K any] func(a, b K) int

// Ordered returns the natural order of K.
func Ordered[K cmp.Ordered]() Order[K] {
	return cmp.Compare[K]
}

// Left orders two left edges: unbounded first, and at equal values [v
// before (v.
func (o Order[K]) Left(a, b Left[K]) int {
	switch {
	case a.Kind == Unbounded && b.Kind == Unbounded:
		return 0
	case a.Kind == Unbounded:
		return -1
	case b.Kind == Unbounded:
		return 1
	}
	if c := o(a.Value, b.Value); c != 0 {
		return c
	}
	return sideRank(a.Kind, Included) - sideRank(b.Kind, Included)
}

// Right orders two right edges: unbounded last, and at equal values v)
// before v].
func (o Order[K]) Right(a, b Right[K]) int {
	switch {
	case a.Kind == Unbounded && b.Kind == Unbounded:
		return 0
	case a.Kind == Unbounded:
		return 1
	case b.Kind == Unbounded:
		return -1
	}
	if c := o(a.Value, b.Value); c != 0 {
		return c
	}
	return sideRank(a.Kind, Excluded) - sideRank(b.Kind, Excluded)
}

// sideRank is 0 for the kind that sorts first at a shared value, 1 otherwise.
func sideRank(k, first Kind) int {
	if k == first {
		return 0
	}
	return 1
}

// LeftRight places a left edge against a right edge. They are equal only
// when both are Included at the same value; that single point belongs to a
// span ending there and a span starting there.
func (o Order[K]) LeftRight(l Left[K], r Right[K]) int {
	if l.Kind == Unbounded || r.Kind == Unbounded {
		return -1
	}
	c := o(l.Value, r.Value)
	if c != 0 {
		return c
	}
	if l.Kind == Included && r.Kind == Included {
		return 0
	}
	// (v is after v] and v), [v is after v)
	return 1
}

// RightLeft is LeftRight seen from the right edge.
func (o Order[K]) RightLeft(r Right[K], l Left[K]) int {
	return -o.LeftRight(l, r)
}
