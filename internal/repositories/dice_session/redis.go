package dicesession

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-sheet/internal/redis"
)

const (
	// Key pattern: dice_session:{session_id}:{context}
	keyPrefix  = "dice_session:"
	defaultTTL = 15 * time.Minute

	errSessionIDEmpty = "session ID cannot be empty"
	errContextEmpty   = "context cannot be empty"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
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

// NewRedisRepository creates a new Redis repository for roll sets
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

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateKey(input.SessionID, input.Context); err != nil {
		return nil, err
	}

	ttl := input.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}

	now := r.clock.Now()
	set := &RollSet{
		SessionID: input.SessionID,
		Context:   input.Context,
		Method:    input.Method,
		Rolls:     input.Rolls,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}

	data, err := json.Marshal(set)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal roll set")
	}

	if err := r.client.Set(ctx, buildKey(input.SessionID, input.Context), data, ttl).Err(); err != nil {
		return nil, errors.Transport(err, "store roll set")
	}

	return &SaveOutput{RollSet: set}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if err := validateKey(input.SessionID, input.Context); err != nil {
		return nil, err
	}

	key := buildKey(input.SessionID, input.Context)
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redisclient.Nil {
			return nil, errors.NotFoundf("no %s rolls for session %s", input.Context, input.SessionID)
		}
		return nil, errors.Transport(err, "get roll set")
	}

	var set RollSet
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, errors.Parse(err, key)
	}

	// redis expiry is authoritative; the clock check covers a server without it
	if r.clock.Now().After(set.ExpiresAt) {
		_ = r.client.Del(ctx, key).Err()
		return nil, errors.NotFoundf("%s rolls for session %s have expired", input.Context, input.SessionID)
	}

	return &GetOutput{RollSet: &set}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if err := validateKey(input.SessionID, input.Context); err != nil {
		return nil, err
	}

	var deleted int
	got, err := r.Get(ctx, GetInput(input))
	if err == nil {
		deleted = len(got.RollSet.Rolls)
	}

	if err := r.client.Del(ctx, buildKey(input.SessionID, input.Context)).Err(); err != nil {
		return nil, errors.Transport(err, "delete roll set")
	}

	return &DeleteOutput{RollsDeleted: deleted}, nil
}

func validateKey(sessionID, context string) error {
	if sessionID == "" {
		return errors.InvalidArgument(errSessionIDEmpty)
	}
	if context == "" {
		return errors.InvalidArgument(errContextEmpty)
	}
	return nil
}

func buildKey(sessionID, context string) string {
	return fmt.Sprintf("%s%s:%s", keyPrefix, sessionID, context)
}
