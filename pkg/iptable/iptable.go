package iptable

import (
	"fmt"
	"net/netip"
	"strings"

	"github.com/henderiw/spanmap/pkg/span"
	"github.com/henderiw/spanmap/pkg/spantable"
	"go4.org/netipx"
	"k8s.io/apimachinery/pkg/labels"
)

// IPTable records which owners hold which address ranges. Ranges of
// different owners may overlap.
type IPTable interface {
	Get(addr string) ([]string, error)
	Owners(addr netip.Addr) []string
	GetByLabel(addr string, selector labels.Selector) (spantable.Entries, error)

	Claim(r netipx.IPRange, owner string, l labels.Set) error
	ClaimPrefix(p netip.Prefix, owner string, l labels.Set) error
	ClaimString(s string, owner string, l labels.Set) error
	Release(r netipx.IPRange, owner string) error
	ReleasePrefix(p netip.Prefix, owner string) error
	ReleaseString(s string, owner string) error
	ReleaseAll(owner string) error

	Ranges(owner string) []netipx.IPRange
	Count() int
	Has(owner string) bool

	IsFree(addr string) bool
	FindFree() (netip.Addr, error)

	GetAll() spantable.Entries
}

// New returns a table accepting claims between from and to, both included.
func New(from, to netip.Addr, opts ...spantable.Option) (IPTable, error) {
	ipRange := netipx.IPRangeFrom(from, to)
	if !ipRange.IsValid() {
		return nil, fmt.Errorf("invalid ip range from %s to %s", from, to)
	}
	r := &ipTable{ipRange: ipRange}

	t, err := spantable.NewFunc(netip.Addr.Compare, nil, r.validateSpan, opts...)
	if err != nil {
		return nil, err
	}
	r.table = t
	return r, nil
}

type ipTable struct {
	table   spantable.Table[netip.Addr]
	ipRange netipx.IPRange
}

func (r *ipTable) Get(addr string) ([]string, error) {
	ip, err := r.validateIP(addr)
	if err != nil {
		return nil, err
	}
	return r.Owners(ip), nil
}

func (r *ipTable) Owners(addr netip.Addr) []string {
	return r.table.Get(addr).Names()
}

func (r *ipTable) GetByLabel(addr string, selector labels.Selector) (spantable.Entries, error) {
	ip, err := r.validateIP(addr)
	if err != nil {
		return nil, err
	}
	return r.table.GetByLabel(ip, selector), nil
}

func (r *ipTable) Claim(rng netipx.IPRange, owner string, l labels.Set) error {
	if !rng.IsValid() {
		return fmt.Errorf("claim failed, invalid ip range %s", rng)
	}
	return r.table.ClaimRange(span.Closed(rng.From(), rng.To()), owner, l)
}

func (r *ipTable) ClaimPrefix(p netip.Prefix, owner string, l labels.Set) error {
	return r.Claim(netipx.RangeOfPrefix(p.Masked()), owner, l)
}

func (r *ipTable) ClaimString(s string, owner string, l labels.Set) error {
	rng, err := parseRange(s)
	if err != nil {
		return err
	}
	return r.Claim(rng, owner, l)
}

func (r *ipTable) Release(rng netipx.IPRange, owner string) error {
	if !rng.IsValid() {
		return fmt.Errorf("release failed, invalid ip range %s", rng)
	}
	return r.table.ReleaseRange(span.Closed(rng.From(), rng.To()), owner)
}

func (r *ipTable) ReleasePrefix(p netip.Prefix, owner string) error {
	return r.Release(netipx.RangeOfPrefix(p.Masked()), owner)
}

func (r *ipTable) ReleaseString(s string, owner string) error {
	rng, err := parseRange(s)
	if err != nil {
		return err
	}
	return r.Release(rng, owner)
}

func (r *ipTable) ReleaseAll(owner string) error {
	return r.table.ReleaseAll(owner)
}

func (r *ipTable) Ranges(owner string) []netipx.IPRange {
	var ranges []netipx.IPRange
	for _, s := range r.table.Spans(owner) {
		if rng, ok := r.clamp(s); ok {
			ranges = append(ranges, rng)
		}
	}
	return ranges
}

func (r *ipTable) Count() int {
	return r.table.Count()
}

func (r *ipTable) Has(owner string) bool {
	return r.table.Has(owner)
}

func (r *ipTable) IsFree(addr string) bool {
	ip, err := r.validateIP(addr)
	if err != nil {
		return false
	}
	return len(r.table.Get(ip)) == 0
}

// FindFree returns the lowest address in the table range nobody owns.
func (r *ipTable) FindFree() (netip.Addr, error) {
	for _, gap := range r.table.Gaps() {
		if rng, ok := r.clamp(gap); ok {
			return rng.From(), nil
		}
	}
	return netip.Addr{}, fmt.Errorf("no free ip address from %s to %s", r.ipRange.From(), r.ipRange.To())
}

func (r *ipTable) GetAll() spantable.Entries {
	return r.table.GetAll()
}

func (r *ipTable) validateSpan(s span.Span[netip.Addr]) error {
	rng, ok := r.clamp(s)
	if !ok || rng != spanRange(s) {
		return fmt.Errorf("ip range %s does not fit in the range from %s to %s", s, r.ipRange.From(), r.ipRange.To())
	}
	return nil
}

func (r *ipTable) validateIP(addr string) (netip.Addr, error) {
	ip, err := netip.ParseAddr(addr)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("ip address %s is invalid", addr)
	}
	if !r.ipRange.Contains(ip) {
		return netip.Addr{}, fmt.Errorf("ip address %s, does not fit in the range from %s to %s", addr, r.ipRange.From(), r.ipRange.To())
	}
	return ip, nil
}

// clamp cuts s down to the addresses it shares with the table range.
func (r *ipTable) clamp(s span.Span[netip.Addr]) (netipx.IPRange, bool) {
	from, to := r.ipRange.From(), r.ipRange.To()
	switch s.Left.Kind {
	case span.Included:
		from = laterAddr(from, s.Left.Value)
	case span.Excluded:
		next := s.Left.Value.Next()
		if !next.IsValid() {
			return netipx.IPRange{}, false
		}
		from = laterAddr(from, next)
	}
	switch s.Right.Kind {
	case span.Included:
		to = earlierAddr(to, s.Right.Value)
	case span.Excluded:
		prev := s.Right.Value.Prev()
		if !prev.IsValid() {
			return netipx.IPRange{}, false
		}
		to = earlierAddr(to, prev)
	}
	rng := netipx.IPRangeFrom(from, to)
	return rng, rng.IsValid()
}

// spanRange is the range a closed span was built from.
func spanRange(s span.Span[netip.Addr]) netipx.IPRange {
	if s.Left.Kind != span.Included || s.Right.Kind != span.Included {
		return netipx.IPRange{}
	}
	return netipx.IPRangeFrom(s.Left.Value, s.Right.Value)
}

func laterAddr(a, b netip.Addr) netip.Addr {
	if a.Less(b) {
		return b
	}
	return a
}

func earlierAddr(a, b netip.Addr) netip.Addr {
	if b.Less(a) {
		return b
	}
	return a
}

// parseRange accepts "from-to" ranges, prefixes and single addresses.
func parseRange(s string) (netipx.IPRange, error) {
	switch {
	case strings.Contains(s, "-"):
		rng, err := netipx.ParseIPRange(s)
		if err != nil {
			return netipx.IPRange{}, fmt.Errorf("ip range %s is invalid: %w", s, err)
		}
		return rng, nil
	case strings.Contains(s, "/"):
		p, err := netip.ParsePrefix(s)
		if err != nil {
			return netipx.IPRange{}, fmt.Errorf("ip prefix %s is invalid: %w", s, err)
		}
		return netipx.RangeOfPrefix(p.Masked()), nil
	default:
		ip, err := netip.ParseAddr(s)
		if err != nil {
			return netipx.IPRange{}, fmt.Errorf("ip address %s is invalid", s)
		}
		return netipx.IPRangeFrom(ip, ip), nil
	}
}
