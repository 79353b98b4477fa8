package spantable

import (
	"fmt"

	"github.com/henderiw/spanmap/pkg/span"
	"k8s.io/apimachinery/pkg/labels"
)

type Entry interface {
	Name() string
	Labels() labels.Set
	String() string
}

type entry struct {
	name   string
	labels labels.Set
}
type Entries []Entry

func (r entry) Name() string       { return r.name }
func (r entry) Labels() labels.Set { return r.labels }
func (r entry) String() string     { return fmt.Sprintf("name: %s, labels: %s", r.name, r.labels.String()) }

func NewEntry(name string, l labels.Set) Entry {
	return entry{
		name:   name,
		labels: l,
	}
}

// Names returns the entry names in order.
func (r Entries) Names() []string {
	names := make([]string, 0, len(r))
	for _, e := range r {
		names = append(names, e.Name())
	}
	return names
}

// Claim is one span handed to New to seed a table.
type Claim[K any] struct {
	Span   span.Span[K]
	Name   string
	Labels labels.Set
}
