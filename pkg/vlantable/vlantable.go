package vlantable

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/henderiw/spanmap/pkg/span"
	"github.com/henderiw/spanmap/pkg/spantable"
	"k8s.io/apimachinery/pkg/labels"
)

const maxVLAN uint16 = 4095

// VLANTable records which owners hold which VLAN ID ranges.
type VLANTable interface {
	Get(id uint16) spantable.Entries
	GetByLabel(id uint16, selector labels.Selector) spantable.Entries
	Claim(from, to uint16, owner string, l labels.Set) error
	ClaimString(s string, owner string, l labels.Set) error
	Release(from, to uint16, owner string) error
	ReleaseAll(owner string) error
	Update(owner string, l labels.Set) error

	Ranges(owner string) []Range
	Count() int
	Has(owner string) bool

	IsFree(id uint16) bool
	FindFree() (uint16, error)

	GetAll() spantable.Entries
}

// Range is an inclusive VLAN ID range.
type Range struct {
	From uint16
	To   uint16
}

func (r Range) String() string {
	if r.From == r.To {
		return strconv.Itoa(int(r.From))
	}
	return fmt.Sprintf("%d-%d", r.From, r.To)
}

var initClaims = []spantable.Claim[uint16]{
	{Span: span.FromRange[uint16](span.Point[uint16](0)), Name: "untagged", Labels: labels.Set{"type": "untagged", "status": "reserved"}},
	{Span: span.FromRange[uint16](span.Point[uint16](1)), Name: "default", Labels: labels.Set{"type": "untagged", "status": "reserved"}},
	{Span: span.FromRange[uint16](span.Point(maxVLAN)), Name: "reserved", Labels: labels.Set{"type": "untagged", "status": "reserved"}},
}

func New(opts ...spantable.Option) (VLANTable, error) {
	t, err := spantable.New[uint16](
		initClaims,
		func(s span.Span[uint16]) error {
			o := span.Ordered[uint16]()
			switch {
			case o.Contains(s, 0):
				return fmt.Errorf("VLAN %d is the untagged VLAN, cannot be added to the database", 0)
			case o.Contains(s, 1):
				return fmt.Errorf("VLAN %d is the default VLAN, cannot be added to the database", 1)
			case o.Contains(s, maxVLAN):
				return fmt.Errorf("VLAN %d is reserved, cannot be added to the database", maxVLAN)
			}
			if s.Right.Kind == span.Unbounded || s.Right.Value > maxVLAN {
				return fmt.Errorf("VLAN range %s exceeds %d", s, maxVLAN)
			}
			return nil
		},
		opts...,
	)
	if err != nil {
		return nil, err
	}
	return &vlanTable{table: t}, nil
}

type vlanTable struct {
	table spantable.Table[uint16]
}

func (r *vlanTable) Get(id uint16) spantable.Entries {
	return r.table.Get(id)
}

func (r *vlanTable) GetByLabel(id uint16, selector labels.Selector) spantable.Entries {
	return r.table.GetByLabel(id, selector)
}

func (r *vlanTable) Claim(from, to uint16, owner string, l labels.Set) error {
	return r.table.ClaimRange(span.Closed(from, to), owner, l)
}

func (r *vlanTable) ClaimString(s string, owner string, l labels.Set) error {
	rng, err := ParseRange(s)
	if err != nil {
		return err
	}
	return r.Claim(rng.From, rng.To, owner, l)
}

func (r *vlanTable) Release(from, to uint16, owner string) error {
	return r.table.ReleaseRange(span.Closed(from, to), owner)
}

func (r *vlanTable) ReleaseAll(owner string) error {
	return r.table.ReleaseAll(owner)
}

func (r *vlanTable) Update(owner string, l labels.Set) error {
	return r.table.Update(owner, l)
}

func (r *vlanTable) Ranges(owner string) []Range {
	var ranges []Range
	for _, s := range r.table.Spans(owner) {
		if rng, ok := clamp(s); ok {
			ranges = append(ranges, rng)
		}
	}
	return ranges
}

func (r *vlanTable) Count() int {
	return r.table.Count()
}

func (r *vlanTable) Has(owner string) bool {
	return r.table.Has(owner)
}

func (r *vlanTable) IsFree(id uint16) bool {
	return id <= maxVLAN && len(r.table.Get(id)) == 0
}

func (r *vlanTable) FindFree() (uint16, error) {
	for _, gap := range r.table.Gaps() {
		if rng, ok := clamp(gap); ok {
			return rng.From, nil
		}
	}
	return 0, fmt.Errorf("no free VLAN")
}

func (r *vlanTable) GetAll() spantable.Entries {
	return r.table.GetAll()
}

// clamp turns s into the VLAN IDs it covers.
func clamp(s span.Span[uint16]) (Range, bool) {
	rng := Range{From: 0, To: maxVLAN}
	switch s.Left.Kind {
	case span.Included:
		rng.From = s.Left.Value
	case span.Excluded:
		if s.Left.Value >= maxVLAN {
			return Range{}, false
		}
		rng.From = s.Left.Value + 1
	}
	switch s.Right.Kind {
	case span.Included:
		rng.To = min(s.Right.Value, maxVLAN)
	case span.Excluded:
		if s.Right.Value == 0 {
			return Range{}, false
		}
		rng.To = min(s.Right.Value-1, maxVLAN)
	}
	return rng, rng.From <= rng.To
}

// ParseRange reads "100" or "100-200".
func ParseRange(s string) (Range, error) {
	from, to, found := strings.Cut(strings.TrimSpace(s), "-")
	if !found {
		to = from
	}
	f, err := strconv.ParseUint(strings.TrimSpace(from), 10, 16)
	if err != nil {
		return Range{}, fmt.Errorf("invalid VLAN range %q: %w", s, err)
	}
	t, err := strconv.ParseUint(strings.TrimSpace(to), 10, 16)
	if err != nil {
		return Range{}, fmt.Errorf("invalid VLAN range %q: %w", s, err)
	}
	return Range{From: uint16(f), To: uint16(t)}, nil
}
