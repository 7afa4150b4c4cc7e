package boards

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/catan-odds/internal/errors"
	"github.com/KirkDiggler/catan-odds/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/catan-odds/internal/redis"
)

const (
	// DefaultTTL is how long a board lives when the caller does not say
	DefaultTTL = 24 * time.Hour

	errIDEmpty     = "board ID cannot be empty"
	errLayoutEmpty = "board layout cannot be empty"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a new Redis repository for boards
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

// Create stores a board under board:{id} with the given TTL
func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}
	if len(input.Layout) == 0 {
		return nil, errors.InvalidArgument(errLayoutEmpty)
	}

	now := r.clock.Now()
	ttl := input.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	data := &BoardData{
		ID:        input.ID,
		Seed:      input.Seed,
		Layout:    input.Layout,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal board")
	}

	// SetNX so a colliding ID never overwrites a live board
	ok, err := r.client.SetNX(ctx, buildKey(data), payload, ttl).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to store board in Redis")
	}
	if !ok {
		return nil, errors.New(errors.CodeAlreadyExists, "board already exists").
			WithMeta("board_id", input.ID)
	}

	return &CreateOutput{Data: data}, nil
}

// Get loads a board by ID
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	key := buildKey(&BoardData{ID: input.ID})

	payload, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound("board not found").WithMeta("board_id", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get board from Redis")
	}

	var data BoardData
	if err := json.Unmarshal([]byte(payload), &data); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal board")
	}

	if r.clock.Now().After(data.ExpiresAt) {
		_ = r.client.Del(ctx, key)
		return nil, errors.NotFound("board has expired").WithMeta("board_id", input.ID)
	}

	return &GetOutput{Data: &data}, nil
}

// Delete removes a board; deleting a missing board is not an error
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	removed, err := r.client.Del(ctx, buildKey(&BoardData{ID: input.ID})).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete board from Redis")
	}

	return &DeleteOutput{Deleted: removed > 0}, nil
}

// buildKey creates the Redis key {type}:{id} for a stored entity
func buildKey(e core.Entity) string {
	return fmt.Sprintf("%s:%s", e.GetType(), e.GetID())
}
