package catan

import (
	"strings"

	"github.com/KirkDiggler/catan-odds/internal/errors"
)

// Trade ratios: how many of a card it takes to get one card back.
const (
	BankTradeRatio     = 4
	GenericPortRatio   = 3
	ResourcePortRatio  = 2
	PortKindAll        = "all"
	portKindAllDisplay = "3:1 any"
)

// PortMode selects how a resource-specific port changes the ratios.
type PortMode int

const (
	// PortModeStandard improves the ported resource itself: a wood port
	// sets wood to 2.
	PortModeStandard PortMode = iota
	// PortModeLegacy improves every resource except the ported one, the
	// rule the first scoring spreadsheets used. Kept for parity.
	PortModeLegacy
)

// ParsePortMode maps "standard" and "legacy" to a PortMode.
func ParsePortMode(name string) (PortMode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "standard":
		return PortModeStandard, nil
	case "legacy":
		return PortModeLegacy, nil
	}
	return PortModeStandard, errors.InvalidArgumentf("invalid port mode %q (expected standard or legacy)", name)
}

func (m PortMode) String() string {
	if m == PortModeLegacy {
		return "legacy"
	}
	return "standard"
}

// TradeProfile is one owner's current trade ratio for each resource. It
// is not safe for concurrent mutation.
type TradeProfile struct {
	ratios map[Resource]int
	mode   PortMode
}

// TradeProfileOption configures a TradeProfile
type TradeProfileOption func(*TradeProfile)

// WithPortMode sets how resource ports are applied.
func WithPortMode(mode PortMode) TradeProfileOption {
	return func(p *TradeProfile) {
		p.mode = mode
	}
}

// NewTradeProfile returns a profile trading everything at the bank rate.
func NewTradeProfile(opts ...TradeProfileOption) *TradeProfile {
	p := &TradeProfile{ratios: make(map[Resource]int, len(resources))}
	for _, opt := range opts {
		opt(p)
	}
	p.Reset()
	return p
}

// NewTradeProfileWithPorts builds a profile and acquires each port in
// order. Any invalid kind fails the whole call.
func NewTradeProfileWithPorts(kinds []string, opts ...TradeProfileOption) (*TradeProfile, error) {
	p := NewTradeProfile(opts...)
	for _, kind := range kinds {
		if err := p.AcquirePort(kind); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Mode returns the port mode in effect.
func (p *TradeProfile) Mode() PortMode { return p.mode }

// Ratio returns the ratio for r. Non-producing markers report the bank rate.
func (p *TradeProfile) Ratio(r Resource) int {
	if ratio, ok := p.ratios[r]; ok {
		return ratio
	}
	return BankTradeRatio
}

// Ratios returns a copy of every ratio.
func (p *TradeProfile) Ratios() map[Resource]int {
	out := make(map[Resource]int, len(p.ratios))
	for r, ratio := range p.ratios {
		out[r] = ratio
	}
	return out
}

// AcquirePort applies a port. kind is "all" or a resource name, case-insensitive.
// Ratios only ever go down.
func (p *TradeProfile) AcquirePort(kind string) error {
	normalized := strings.ToLower(strings.TrimSpace(kind))
	if normalized == PortKindAll {
		p.lower(GenericPortRatio, func(Resource) bool { return true })
		return nil
	}

	r := Resource(normalized)
	if !r.IsProducing() {
		return errors.InvalidPortKind(kind)
	}

	switch p.mode {
	case PortModeLegacy:
		p.lower(ResourcePortRatio, func(other Resource) bool { return other != r })
	default:
		p.lower(ResourcePortRatio, func(other Resource) bool { return other == r })
	}
	return nil
}

// Reset puts every resource back to the bank rate.
func (p *TradeProfile) Reset() {
	for _, r := range resources {
		p.ratios[r] = BankTradeRatio
	}
}

func (p *TradeProfile) lower(to int, match func(Resource) bool) {
	for _, r := range resources {
		if match(r) && p.ratios[r] > to {
			p.ratios[r] = to
		}
	}
}

// PortLabel renders a port kind for display, e.g. "2:1 wood".
func PortLabel(kind string) string {
	normalized := strings.ToLower(strings.TrimSpace(kind))
	if normalized == PortKindAll {
		return portKindAllDisplay
	}
	return "2:1 " + normalized
}
