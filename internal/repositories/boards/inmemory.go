package boards

import (
	"context"
	"sync"

	"github.com/KirkDiggler/catan-odds/internal/errors"
	"github.com/KirkDiggler/catan-odds/internal/pkg/clock"
)

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu    sync.RWMutex
	clock clock.Clock
	store map[string]*BoardData
}

// NewInMemory creates a new in-memory repository. A nil clock uses the
// system clock.
func NewInMemory(c clock.Clock) *InMemoryRepository {
	if c == nil {
		c = clock.New()
	}
	return &InMemoryRepository{
		clock: c,
		store: make(map[string]*BoardData),
	}
}

var _ Repository = (*InMemoryRepository)(nil)

// Create stores a board
func (r *InMemoryRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}
	if len(input.Layout) == 0 {
		return nil, errors.InvalidArgument(errLayoutEmpty)
	}

	ttl := input.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	now := r.clock.Now()

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.store[input.ID]; ok && !now.After(existing.ExpiresAt) {
		return nil, errors.New(errors.CodeAlreadyExists, "board already exists").
			WithMeta("board_id", input.ID)
	}

	data := &BoardData{
		ID:        input.ID,
		Seed:      input.Seed,
		Layout:    append(input.Layout[:0:0], input.Layout...),
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
	r.store[input.ID] = data

	return &CreateOutput{Data: copyData(data)}, nil
}

// Get retrieves a board by ID
func (r *InMemoryRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	r.mu.RLock()
	data, exists := r.store[input.ID]
	r.mu.RUnlock()

	if !exists {
		return nil, errors.NotFound("board not found").WithMeta("board_id", input.ID)
	}
	if r.clock.Now().After(data.ExpiresAt) {
		r.mu.Lock()
		delete(r.store, input.ID)
		r.mu.Unlock()
		return nil, errors.NotFound("board has expired").WithMeta("board_id", input.ID)
	}

	// Return a copy to prevent external modification
	return &GetOutput{Data: copyData(data)}, nil
}

// Delete removes a board
func (r *InMemoryRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	_, exists := r.store[input.ID]
	delete(r.store, input.ID)

	return &DeleteOutput{Deleted: exists}, nil
}

func copyData(d *BoardData) *BoardData {
	out := *d
	out.Layout = append(d.Layout[:0:0], d.Layout...)
	if d.Seed != nil {
		seed := *d.Seed
		out.Seed = &seed
	}
	return &out
}
