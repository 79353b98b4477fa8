package span

// Span is one interval, a left edge and a right edge.
type Span[K any] struct {
	Left  Left[K]
	Right Right[K]
}

func New[K any](l Left[K], r Right[K]) Span[K] {
	return Span[K]{Left: l, Right: r}
}

// RangeBounds is anything that can describe its two endpoints.
type RangeBounds[K any] interface {
	StartBound() Bound[K]
	EndBound() Bound[K]
}

// FromRange lowers a range to a span; the start bound becomes the left edge
// and the end bound the right edge, kind for kind.
func FromRange[K any](r RangeBounds[K]) Span[K] {
	return Span[K]{
		Left:  Left[K](r.StartBound()),
		Right: Right[K](r.EndBound()),
	}
}

func (s Span[K]) StartBound() Bound[K] { return Bound[K](s.Left) }
func (s Span[K]) EndBound() Bound[K]   { return Bound[K](s.Right) }

func (s Span[K]) String() string {
	return s.Left.String() + ", " + s.Right.String()
}

// Span orders two spans partially. a is before b when a ends strictly
// before b starts, after b in the mirrored case and equal when the edges
// are identical. Spans that overlap any other way return ok == false.
func (o Order[K]) Span(a, b Span[K]) (c int, ok bool) {
	switch {
	case o.RightLeft(a.Right, b.Left) < 0:
		return -1, true
	case o.LeftRight(a.Left, b.Right) > 0:
		return 1, true
	case o.Left(a.Left, b.Left) == 0 && o.Right(a.Right, b.Right) == 0:
		return 0, true
	}
	return 0, false
}

func (o Order[K]) Overlaps(a, b Span[K]) bool {
	return !(o.RightLeft(a.Right, b.Left) < 0) && !(o.LeftRight(a.Left, b.Right) > 0)
}

// IsEmpty reports whether the left edge of s sorts after its right edge,
// i.e. no key lies inside s.
func (o Order[K]) IsEmpty(s Span[K]) bool {
	return o.LeftRight(s.Left, s.Right) > 0
}

// Contains reports whether key lies inside s.
func (o Order[K]) Contains(s Span[K], key K) bool {
	return o.Left(s.Left, LeftIncluded(key)) <= 0 && o.RightLeft(s.Right, LeftIncluded(key)) >= 0
}
