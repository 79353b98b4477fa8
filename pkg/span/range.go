package span

// Range is a plain pair of bounds. The constructors below cover every
// bounded, half-bounded and unbounded shape.
type Range[K any] struct {
	Start Bound[K]
	End   Bound[K]
}

func (r Range[K]) StartBound() Bound[K] { return r.Start }
func (r Range[K]) EndBound() Bound[K]   { return r.End }

func (r Range[K]) String() string {
	return FromRange[K](r).String()
}

// Closed is [a, b].
func Closed[K any](a, b K) Range[K] {
	return Range[K]{Start: IncludedBound(a), End: IncludedBound(b)}
}

// ClosedOpen is [a, b).
func ClosedOpen[K any](a, b K) Range[K] {
	return Range[K]{Start: IncludedBound(a), End: ExcludedBound(b)}
}

// OpenClosed is (a, b].
func OpenClosed[K any](a, b K) Range[K] {
	return Range[K]{Start: ExcludedBound(a), End: IncludedBound(b)}
}

// Open is (a, b).
func Open[K any](a, b K) Range[K] {
	return Range[K]{Start: ExcludedBound(a), End: ExcludedBound(b)}
}

// AtLeast is [a, ∞).
func AtLeast[K any](a K) Range[K] {
	return Range[K]{Start: IncludedBound(a)}
}

// GreaterThan is (a, ∞).
func GreaterThan[K any](a K) Range[K] {
	return Range[K]{Start: ExcludedBound(a)}
}

// AtMost is (-∞, b].
func AtMost[K any](b K) Range[K] {
	return Range[K]{End: IncludedBound(b)}
}

// LessThan is (-∞, b).
func LessThan[K any](b K) Range[K] {
	return Range[K]{End: ExcludedBound(b)}
}

// All is (-∞, ∞).
func All[K any]() Range[K] {
	return Range[K]{}
}

// Point is [a, a].
func Point[K any](a K) Range[K] {
	return Closed(a, a)
}
