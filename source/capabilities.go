package source

import "slices"

// Capability identifies a long-format field a source backs with real
// data rather than synthesized defaults.
type Capability string

const (
	CapabilityOwnership Capability = "ownership"
	CapabilityLinkCount Capability = "link_count"
	CapabilityBlocks    Capability = "blocks"
	CapabilitySymlinks  Capability = "symlinks"
	CapabilityModTime   Capability = "mod_time"
)

// Capabilities describes what a source supports.
type Capabilities struct {
	Capabilities []Capability `json:"capabilities"`
}

// Contains checks if a capability is supported.
func (c *Capabilities) Contains(cap Capability) bool {
	return slices.Contains(c.Capabilities, cap)
}
