package spanmap

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/henderiw/spanmap/pkg/span"
	"github.com/tidwall/btree"
)

// Map associates possibly overlapping spans of K with sets of V and answers
// which values are active at a given key.
//
// Internally the key line is partitioned into cells. Every cell starts at a
// left edge and runs up to the next cell; the first cell always starts at
// the unbounded left edge. Two neighbouring cells never hold equal sets.
//
// A Map is not safe for concurrent use; guard mutations with a lock when it
// is shared.
type Map[K, V any] struct {
	order span.Order[K]
	less  func(a, b V) bool
	cells *btree.BTreeG[cell[K, V]]
}

type cell[K, V any] struct {
	edge span.Left[K]
	set  *btree.BTreeG[V]
}

var noLocks = btree.Options{NoLocks: true}

// New returns an empty map over naturally ordered keys and values.
func New[K, V cmp.Ordered]() *Map[K, V] {
	return NewFunc[K, V](cmp.Compare[K], cmp.Compare[V])
}

// NewFunc returns an empty map ordering keys with kcmp and values with vcmp.
func NewFunc[K, V any](kcmp func(a, b K) int, vcmp func(a, b V) int) *Map[K, V] {
	order := span.Order[K](kcmp)
	m := &Map[K, V]{
		order: order,
		less:  func(a, b V) bool { return vcmp(a, b) < 0 },
		cells: btree.NewBTreeGOptions(func(a, b cell[K, V]) bool {
			return order.Left(a.edge, b.edge) < 0
		}, noLocks),
	}
	m.cells.Set(cell[K, V]{edge: span.LeftUnbounded[K](), set: m.newSet()})
	return m
}

func (m *Map[K, V]) newSet() *btree.BTreeG[V] {
	return btree.NewBTreeGOptions(m.less, noLocks)
}

// Order returns the key order the map was built with.
func (m *Map[K, V]) Order() span.Order[K] { return m.order }

// Insert adds v to every key in r.
func (m *Map[K, V]) Insert(r span.RangeBounds[K], v V) {
	m.InsertSpan(span.FromRange(r), v)
}

// Remove takes v away from every key in r.
func (m *Map[K, V]) Remove(r span.RangeBounds[K], v V) {
	m.RemoveSpan(span.FromRange(r), v)
}

func (m *Map[K, V]) InsertSpan(s span.Span[K], v V) {
	m.updateSetsInSpan(s, func(set *btree.BTreeG[V]) {
		set.Set(v)
	})
}

func (m *Map[K, V]) RemoveSpan(s span.Span[K], v V) {
	m.updateSetsInSpan(s, func(set *btree.BTreeG[V]) {
		set.Delete(v)
	})
}

// updateSetsInSpan splits the partition at both ends of s, applies f to
// every cell inside s and merges every cell that f left equal to its left
// neighbour, the two boundaries of s included.
func (m *Map[K, V]) updateSetsInSpan(s span.Span[K], f func(set *btree.BTreeG[V])) {
	// empty spans would only leave split points behind
	if m.order.IsEmpty(s) {
		return
	}

	start := s.Left
	m.ensureBoundary(start)

	end, hasEnd := s.Right.AdjacentLeft()
	if hasEnd {
		m.ensureBoundary(end)
	}

	// f can make two cells inside s equal, e.g. {a} and {a b} after adding b
	var prev *btree.BTreeG[V]
	var redundant []cell[K, V]
	m.cells.Ascend(cell[K, V]{edge: start}, func(c cell[K, V]) bool {
		if m.order.RightLeft(s.Right, c.edge) < 0 {
			return false
		}
		f(c.set)
		if prev != nil && m.setsEqual(prev, c.set) {
			redundant = append(redundant, c)
		} else {
			prev = c.set
		}
		return true
	})
	for _, c := range redundant {
		m.cells.Delete(c)
	}

	m.mergeAdjacentLeft(start)
	if hasEnd {
		m.mergeAdjacentLeft(end)
	}
}

// cellAt returns the cell with the greatest edge not after edge.
func (m *Map[K, V]) cellAt(edge span.Left[K]) (cell[K, V], bool) {
	var found cell[K, V]
	var ok bool
	m.cells.Descend(cell[K, V]{edge: edge}, func(c cell[K, V]) bool {
		found, ok = c, true
		return false
	})
	return found, ok
}

// ensureBoundary makes sure a cell starts exactly at edge, splitting the
// cell that covers edge into two with equal sets if needed.
func (m *Map[K, V]) ensureBoundary(edge span.Left[K]) {
	c, ok := m.cellAt(edge)
	if !ok {
		m.cells.Set(cell[K, V]{edge: edge, set: m.newSet()})
		return
	}
	if m.order.Left(c.edge, edge) == 0 {
		return
	}
	m.cells.Set(cell[K, V]{edge: edge, set: c.set.Copy()})
}

// mergeAdjacentLeft drops the cell covering edge when its set equals the
// set of the cell before it.
func (m *Map[K, V]) mergeAdjacentLeft(edge span.Left[K]) {
	var pair []cell[K, V]
	m.cells.Descend(cell[K, V]{edge: edge}, func(c cell[K, V]) bool {
		pair = append(pair, c)
		return len(pair) < 2
	})
	if len(pair) < 2 {
		return
	}
	right, left := pair[0], pair[1]
	if m.setsEqual(left.set, right.set) {
		m.cells.Delete(right)
	}
}

func (m *Map[K, V]) setsEqual(a, b *btree.BTreeG[V]) bool {
	if a.Len() != b.Len() {
		return false
	}
	ia, ib := a.Iter(), b.Iter()
	defer ia.Release()
	defer ib.Release()
	for oka, okb := ia.First(), ib.First(); oka && okb; oka, okb = ia.Next(), ib.Next() {
		if m.less(ia.Item(), ib.Item()) || m.less(ib.Item(), ia.Item()) {
			return false
		}
	}
	return true
}

// Len returns the number of cells in the partition, at least one.
func (m *Map[K, V]) Len() int {
	return m.cells.Len()
}

// Clone returns an independent copy of m. Value sets are shared copy on
// write, so cloning costs one pass over the cells.
func (m *Map[K, V]) Clone() *Map[K, V] {
	out := &Map[K, V]{
		order: m.order,
		less:  m.less,
		cells: btree.NewBTreeGOptions(m.cells.Less, noLocks),
	}
	m.cells.Scan(func(c cell[K, V]) bool {
		out.cells.Set(cell[K, V]{edge: c.edge, set: c.set.Copy()})
		return true
	})
	return out
}

// Equal reports whether m and other cover every key with the same values.
// The partition is canonical, so this is a cell by cell comparison.
func (m *Map[K, V]) Equal(other *Map[K, V]) bool {
	if m.cells.Len() != other.cells.Len() {
		return false
	}
	ia, ib := m.cells.Iter(), other.cells.Iter()
	defer ia.Release()
	defer ib.Release()
	for oka, okb := ia.First(), ib.First(); oka && okb; oka, okb = ia.Next(), ib.Next() {
		a, b := ia.Item(), ib.Item()
		if m.order.Left(a.edge, b.edge) != 0 || !m.setsEqual(a.set, b.set) {
			return false
		}
	}
	return true
}

func (m *Map[K, V]) String() string {
	var sb strings.Builder
	sb.WriteString("{")
	first := true
	for s, values := range m.Cells() {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		sb.WriteString(s.String())
		sb.WriteString(": [")
		sep := ""
		for v := range values {
			fmt.Fprintf(&sb, "%s%v", sep, v)
			sep = " "
		}
		sb.WriteString("]")
	}
	sb.WriteString("}")
	return sb.String()
}
