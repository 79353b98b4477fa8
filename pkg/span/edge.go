package span

import "fmt"

// Kind tells whether an edge is open, closed or absent.
type Kind uint8

const (
	Unbounded Kind = iota
	Included
	Excluded
)

func (k Kind) String() string {
	switch k {
	case Unbounded:
		return "unbounded"
	case Included:
		return "included"
	case Excluded:
		return "excluded"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Bound is a range endpoint without a side, the way a caller writes it.
type Bound[K any] struct {
	Kind  Kind
	Value K
}

func UnboundedBound[K any]() Bound[K]  { return Bound[K]{} }
func IncludedBound[K any](v K) Bound[K] { return Bound[K]{Kind: Included, Value: v} }
func ExcludedBound[K any](v K) Bound[K] { return Bound[K]{Kind: Excluded, Value: v} }

// Left is the start edge of a span. Unbounded sits at -∞, Included(v) at v
// and Excluded(v) just after v.
type Left[K any] Bound[K]

// Right is the end edge of a span. Excluded(v) sits just before v,
// Included(v) at v and Unbounded at +∞.
type Right[K any] Bound[K]

func LeftUnbounded[K any]() Left[K]  { return Left[K]{} }
func LeftIncluded[K any](v K) Left[K] { return Left[K]{Kind: Included, Value: v} }
func LeftExcluded[K any](v K) Left[K] { return Left[K]{Kind: Excluded, Value: v} }

func RightUnbounded[K any]() Right[K]  { return Right[K]{} }
func RightIncluded[K any](v K) Right[K] { return Right[K]{Kind: Included, Value: v} }
func RightExcluded[K any](v K) Right[K] { return Right[K]{Kind: Excluded, Value: v} }

func (l Left[K]) Bound() Bound[K]  { return Bound[K](l) }
func (r Right[K]) Bound() Bound[K] { return Bound[K](r) }

// AdjacentLeft returns the left edge of whatever starts right after r.
// An unbounded right edge has nothing after it.
func (r Right[K]) AdjacentLeft() (Left[K], bool) {
	switch r.Kind {
	case Included:
		return LeftExcluded(r.Value), true
	case Excluded:
		return LeftIncluded(r.Value), true
	}
	return Left[K]{}, false
}

// AdjacentRight returns the right edge of whatever ends right before l.
func (l Left[K]) AdjacentRight() (Right[K], bool) {
	switch l.Kind {
	case Included:
		return RightExcluded(l.Value), true
	case Excluded:
		return RightIncluded(l.Value), true
	}
	return Right[K]{}, false
}

func (l Left[K]) String() string {
	switch l.Kind {
	case Included:
		return fmt.Sprintf("[%v", l.Value)
	case Excluded:
		return fmt.Sprintf("(%v", l.Value)
	}
	return "(-∞"
}

func (r Right[K]) String() string {
	switch r.Kind {
	case Included:
		return fmt.Sprintf("%v]", r.Value)
	case Excluded:
		return fmt.Sprintf("%v)", r.Value)
	}
	return "∞)"
}
