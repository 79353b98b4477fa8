package spanmap

import (
	"fmt"
	"testing"

	"github.com/henderiw/spanmap/pkg/span"
)

func BenchmarkGet(b *testing.B) {
	single := New[int, int]()
	single.Insert(span.Closed(1, 1000), 10)

	overlapping := New[int, int]()
	for i := 0; i < 10; i++ {
		overlapping.Insert(span.Closed(i*100, (i+5)*100), i)
	}

	largeSet := New[int, int]()
	for i := 0; i < 100; i++ {
		largeSet.Insert(span.Closed(1, 1000), i)
	}

	many := New[int, int]()
	for i := 0; i < 1000; i++ {
		many.Insert(span.Closed(i*2, i*2+1), i)
	}

	strs := New[string, int]()
	strs.Insert(span.Closed("aaa", "zzz"), 10)

	cases := []struct {
		name string
		run  func() int
	}{
		{"SingleRange", func() int { return len(single.Values(500)) }},
		{"Overlapping10", func() int { return len(overlapping.Values(250)) }},
		{"LargeValueSet100", func() int { return len(largeSet.Values(500)) }},
		{"Many1000NoOverlap", func() int { return len(many.Values(999)) }},
		{"StringKeys", func() int { return len(strs.Values("mmm")) }},
	}
	for _, tc := range cases {
		b.Run(tc.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = tc.run()
			}
		})
	}
}

func BenchmarkInsert(b *testing.B) {
	for _, n := range []int{10, 100, 1000} {
		b.Run(fmt.Sprintf("Overlapping%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				m := New[int, int]()
				for j := 0; j < n; j++ {
					m.Insert(span.ClosedOpen(j, j+n/2), j)
				}
			}
		})
		b.Run(fmt.Sprintf("Disjoint%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				m := New[int, int]()
				for j := 0; j < n; j++ {
					m.Insert(span.Closed(j*3, j*3+1), j)
				}
			}
		})
	}
}

func BenchmarkRemove(b *testing.B) {
	base := New[int, int]()
	for j := 0; j < 1000; j++ {
		base.Insert(span.ClosedOpen(j, j+50), j%7)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m := base.Clone()
		m.Remove(span.ClosedOpen(100, 900), 3)
	}
}
