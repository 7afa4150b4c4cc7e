// Package catan holds the production-probability model for a hex tile board:
// the 2d6 odds table, tiles, trade profiles, settlements and the fixed board
// topology that binds them.
package catan

import (
	"strings"

	"github.com/KirkDiggler/catan-odds/internal/errors"
)

// Resource is a tile resource. The zero value is not valid.
type Resource string

// Producing resources
const (
	ResourceWood  Resource = "wood"
	ResourceSheep Resource = "sheep"
	ResourceWheat Resource = "wheat"
	ResourceBrick Resource = "brick"
	ResourceOre   Resource = "ore"
)

// Non-producing markers
const (
	ResourceDesert Resource = "desert"
	ResourceNone   Resource = "none"
)

var resources = [...]Resource{
	ResourceWood,
	ResourceSheep,
	ResourceWheat,
	ResourceBrick,
	ResourceOre,
}

// Resources returns the five producing resources in canonical order.
func Resources() []Resource {
	out := make([]Resource, len(resources))
	copy(out, resources[:])
	return out
}

// ParseResource canonicalizes a resource name. Matching is case-insensitive;
// "desert" and "none" are accepted as markers.
func ParseResource(name string) (Resource, error) {
	r := Resource(strings.ToLower(strings.TrimSpace(name)))
	switch r {
	case ResourceWood, ResourceSheep, ResourceWheat, ResourceBrick, ResourceOre,
		ResourceDesert, ResourceNone:
		return r, nil
	}
	return ResourceNone, errors.InvalidResource(name)
}

// IsProducing reports whether r is one of the five producing resources.
func (r Resource) IsProducing() bool {
	for _, p := range resources {
		if r == p {
			return true
		}
	}
	return false
}

func (r Resource) String() string {
	return string(r)
}
