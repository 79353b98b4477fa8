package spanmap

import (
	"iter"

	"github.com/henderiw/spanmap/pkg/span"
	"github.com/tidwall/btree"
)

// Get returns the values active at key in ascending order. The sequence
// looks key up again every time it is ranged over and reads the live set;
// do not mutate the map while ranging over it.
func (m *Map[K, V]) Get(key K) iter.Seq[V] {
	return func(yield func(V) bool) {
		set := m.setAt(key)
		if set == nil {
			return
		}
		set.Scan(yield)
	}
}

// Values is Get collected into a slice.
func (m *Map[K, V]) Values(key K) []V {
	set := m.setAt(key)
	if set == nil {
		return nil
	}
	return set.Items()
}

// Contains reports whether v is active at key.
func (m *Map[K, V]) Contains(key K, v V) bool {
	set := m.setAt(key)
	if set == nil {
		return false
	}
	_, ok := set.Get(v)
	return ok
}

func (m *Map[K, V]) setAt(key K) *btree.BTreeG[V] {
	c, ok := m.cellAt(span.LeftIncluded(key))
	if !ok {
		return nil
	}
	return c.set
}

// Cells walks the partition from left to right, yielding the span each
// cell covers together with its values.
func (m *Map[K, V]) Cells() iter.Seq2[span.Span[K], iter.Seq[V]] {
	return func(yield func(span.Span[K], iter.Seq[V]) bool) {
		it := m.cells.Iter()
		defer it.Release()
		if !it.First() {
			return
		}
		cur := it.Item()
		for {
			more := it.Next()
			s := span.Span[K]{Left: cur.edge, Right: span.RightUnbounded[K]()}
			var next cell[K, V]
			if more {
				next = it.Item()
				// a cell starting at the unbounded edge can only be the first
				s.Right, _ = next.edge.AdjacentRight()
			}
			set := cur.set
			if !yield(s, func(yield func(V) bool) { set.Scan(yield) }) {
				return
			}
			if !more {
				return
			}
			cur = next
		}
	}
}
