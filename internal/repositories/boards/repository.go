// Package boards stores generated board layouts so odds can be queried
// against the same board across requests.
package boards

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/catan-odds/internal/entities/catan"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=boardsmock github.com/KirkDiggler/catan-odds/internal/repositories/boards Repository

// EntityType is the storage type of a board record
const EntityType = "board"

// BoardData is the persisted form of a board
type BoardData struct {
	ID string `json:"id"`

	// Seed the layout was generated from, nil for random or hand-built boards
	Seed *int64 `json:"seed,omitempty"`

	Layout catan.Layout `json:"layout"`

	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// GetID implements core.Entity
func (d *BoardData) GetID() string { return d.ID }

// GetType implements core.Entity
func (d *BoardData) GetType() string { return EntityType }

var _ core.Entity = (*BoardData)(nil)

// CreateInput contains parameters for storing a board
type CreateInput struct {
	ID     string
	Seed   *int64
	Layout catan.Layout
	TTL    time.Duration // zero uses the repository default
}

// CreateOutput contains the stored board
type CreateOutput struct {
	Data *BoardData
}

// GetInput contains parameters for loading a board
type GetInput struct {
	ID string
}

// GetOutput contains the loaded board
type GetOutput struct {
	Data *BoardData
}

// DeleteInput contains parameters for deleting a board
type DeleteInput struct {
	ID string
}

// DeleteOutput reports whether a board was removed
type DeleteOutput struct {
	Deleted bool
}

// Repository defines storage operations for boards
type Repository interface {
	// Create stores a new board with the given TTL
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get loads a board; missing or expired boards are NotFound
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete removes a board
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}
