package spantable

import (
	"cmp"
	"errors"
	"fmt"
	"iter"
	"slices"
	"sync"

	"github.com/go-logr/logr"
	"github.com/henderiw/spanmap/pkg/span"
	"github.com/henderiw/spanmap/pkg/spanmap"
	"k8s.io/apimachinery/pkg/labels"
)

// Table tracks named, labeled claims over spans of K. It is safe for
// concurrent use: lookups share a read lock, claims and releases take the
// write lock.
type Table[K any] interface {
	Get(key K) Entries
	GetByLabel(key K, selector labels.Selector) Entries
	Claim(s span.Span[K], name string, l labels.Set) error
	ClaimRange(r span.RangeBounds[K], name string, l labels.Set) error
	Release(s span.Span[K], name string) error
	ReleaseRange(r span.RangeBounds[K], name string) error
	ReleaseAll(name string) error
	Update(name string, l labels.Set) error

	Spans(name string) []span.Span[K]
	Gaps() []span.Span[K]
	Has(name string) bool
	Count() int

	GetAll() Entries
	String() string
}

type ValidationFn[K any] func(s span.Span[K]) error

type Option func(*options)

type options struct {
	log logr.Logger
}

func WithLogger(log logr.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

func New[K cmp.Ordered](initClaims []Claim[K], v ValidationFn[K], opts ...Option) (Table[K], error) {
	return NewFunc(cmp.Compare[K], initClaims, v, opts...)
}

func NewFunc[K any](kcmp func(a, b K) int, initClaims []Claim[K], v ValidationFn[K], opts ...Option) (Table[K], error) {
	o := &options{log: logr.Discard()}
	for _, opt := range opts {
		opt(o)
	}

	r := &table[K]{
		m:          new(sync.RWMutex),
		spans:      spanmap.NewFunc(kcmp, cmp.Compare[string]),
		entries:    map[string]labels.Set{},
		validateFn: v,
		log:        o.log,
	}

	var errm error
	for _, c := range initClaims {
		if err := r.claim(c.Span, c.Name, c.Labels, true); err != nil {
			errm = errors.Join(errm, err)
		}
	}

	return r, errm
}

type table[K any] struct {
	m          *sync.RWMutex
	spans      *spanmap.Map[K, string]
	entries    map[string]labels.Set
	validateFn ValidationFn[K]
	log        logr.Logger
}

func (r *table[K]) validate(s span.Span[K], name string, init bool) error {
	if name == "" {
		return fmt.Errorf("cannot claim span %s without a name", s)
	}
	if r.spans.Order().IsEmpty(s) {
		return fmt.Errorf("span %s is empty", s)
	}
	if r.validateFn != nil && !init {
		if err := r.validateFn(s); err != nil {
			return fmt.Errorf("span %s rejected: %w", s, err)
		}
	}
	return nil
}

func (r *table[K]) Get(key K) Entries {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.get(key, labels.Everything())
}

func (r *table[K]) GetByLabel(key K, selector labels.Selector) Entries {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.get(key, selector)
}

func (r *table[K]) get(key K, selector labels.Selector) Entries {
	var entries Entries
	for name := range r.spans.Get(key) {
		l := r.entries[name]
		if selector.Matches(l) {
			entries = append(entries, NewEntry(name, l))
		}
	}
	return entries
}

func (r *table[K]) Claim(s span.Span[K], name string, l labels.Set) error {
	r.m.Lock()
	defer r.m.Unlock()

	return r.claim(s, name, l, false)
}

func (r *table[K]) ClaimRange(rng span.RangeBounds[K], name string, l labels.Set) error {
	return r.Claim(span.FromRange(rng), name, l)
}

// claim adds name over s. Labels given for an existing name replace the
// ones it had; nil labels keep them.
func (r *table[K]) claim(s span.Span[K], name string, l labels.Set, init bool) error {
	if err := r.validate(s, name, init); err != nil {
		return err
	}
	if existing, ok := r.entries[name]; !ok || l != nil {
		if ok {
			r.log.V(1).Info("labels replaced", "name", name, "old", existing.String(), "new", l.String())
		}
		r.entries[name] = l
	}
	r.spans.InsertSpan(s, name)
	r.log.V(1).Info("claimed", "name", name, "span", s.String(), "cells", r.spans.Len())
	return nil
}

func (r *table[K]) Release(s span.Span[K], name string) error {
	r.m.Lock()
	defer r.m.Unlock()

	return r.release(s, name)
}

func (r *table[K]) ReleaseRange(rng span.RangeBounds[K], name string) error {
	return r.Release(span.FromRange(rng), name)
}

func (r *table[K]) ReleaseAll(name string) error {
	r.m.Lock()
	defer r.m.Unlock()

	return r.release(span.FromRange[K](span.All[K]()), name)
}

func (r *table[K]) release(s span.Span[K], name string) error {
	if _, ok := r.entries[name]; !ok {
		return fmt.Errorf("entry %s not found", name)
	}
	r.spans.RemoveSpan(s, name)
	if len(r.spansOf(name)) == 0 {
		delete(r.entries, name)
	}
	r.log.V(1).Info("released", "name", name, "span", s.String(), "cells", r.spans.Len())
	return nil
}

func (r *table[K]) Update(name string, l labels.Set) error {
	r.m.Lock()
	defer r.m.Unlock()

	if _, ok := r.entries[name]; !ok {
		return fmt.Errorf("entry %s not found", name)
	}
	r.entries[name] = l
	return nil
}

func (r *table[K]) Spans(name string) []span.Span[K] {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.spansOf(name)
}

func (r *table[K]) Gaps() []span.Span[K] {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.join(func(values iter.Seq[string]) bool {
		for range values {
			return false
		}
		return true
	})
}

func (r *table[K]) spansOf(name string) []span.Span[K] {
	return r.join(func(values iter.Seq[string]) bool {
		for v := range values {
			if v == name {
				return true
			}
		}
		return false
	})
}

// join merges the consecutive cells whose values match into maximal spans.
func (r *table[K]) join(match func(values iter.Seq[string]) bool) []span.Span[K] {
	var out []span.Span[K]
	joining := false
	for s, values := range r.spans.Cells() {
		held := match(values)
		switch {
		case held && joining:
			out[len(out)-1].Right = s.Right
		case held:
			out = append(out, s)
		}
		joining = held
	}
	return out
}

func (r *table[K]) Has(name string) bool {
	r.m.RLock()
	defer r.m.RUnlock()

	_, ok := r.entries[name]
	return ok
}

func (r *table[K]) Count() int {
	r.m.RLock()
	defer r.m.RUnlock()

	return len(r.entries)
}

func (r *table[K]) GetAll() Entries {
	r.m.RLock()
	defer r.m.RUnlock()

	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	slices.Sort(names)

	entries := make(Entries, 0, len(names))
	for _, name := range names {
		entries = append(entries, NewEntry(name, r.entries[name]))
	}
	return entries
}

func (r *table[K]) String() string {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.spans.String()
}
