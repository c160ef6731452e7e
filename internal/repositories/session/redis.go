package session

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/rpg-sheet/internal/redis"
	"github.com/KirkDiggler/rpg-sheet/internal/store"
)

const (
	sessionKeyPrefix = "sheet_session:"
	indexKey         = "sheet_session:index"

	// DefaultTTL is how long an untouched session survives
	DefaultTTL = 24 * time.Hour

	errSessionNil = "session cannot be nil"
	errIDEmpty    = "session ID cannot be empty"
)

// record is the persisted form of a session
type record struct {
	ID        string             `json:"id"`
	Document  *entities.Document `json:"document,omitempty"`
	Derived   json.RawMessage    `json:"derived,omitempty"`
	Version   uint64             `json:"version"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// Config holds the configuration for the Redis-backed registry
type Config struct {
	Client      redisclient.Client
	Clock       clock.Clock
	IDGenerator idgen.Generator
	// TTL defaults to DefaultTTL
	TTL time.Duration
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
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.TTL < 0 {
		vb.Field("TTL", "must not be negative")
	}

	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	idGen  idgen.Generator
	ttl    time.Duration

	mu      sync.Mutex
	live    map[string]*Session
	touched map[string]time.Time
}

// NewRedisRepository creates a new session registry backed by Redis
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
		idGen:  cfg.IDGenerator,
		ttl:    ttl,
		live:    map[string]*Session{},
		touched: map[string]time.Time{},
	}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	id := input.ID
	if id == "" {
		id = r.idGen.Generate()
	}

	sess := &Session{
		ID:        id,
		Store:     store.New(),
		CreatedAt: r.clock.Now(),
	}

	r.mu.Lock()
	r.evictIdleLocked()
	if _, exists := r.live[id]; exists {
		r.mu.Unlock()
		return nil, errors.AlreadyExistsf("session %s already exists", id)
	}
	r.live[id] = sess
	r.touched[id] = sess.CreatedAt
	r.mu.Unlock()

	if _, err := r.Save(ctx, SaveInput{Session: sess}); err != nil {
		r.forget(id)
		return nil, err
	}

	slog.DebugContext(ctx, "Session opened", "session_id", id)

	return &CreateOutput{Session: sess}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	r.mu.Lock()
	sess, ok := r.live[input.ID]
	r.mu.Unlock()
	if ok {
		// the Redis key carries the TTL; a live session whose key is gone has expired
		alive, err := r.client.Expire(ctx, sessionKeyPrefix+input.ID, r.ttl).Result()
		if err != nil {
			return nil, errors.Transport(err, "get session")
		}
		if !alive {
			r.forget(input.ID)
			if err := r.client.SRem(ctx, indexKey, input.ID).Err(); err != nil {
				slog.WarnContext(ctx, "Failed to prune session index", "session_id", input.ID, "error", err)
			}
			slog.InfoContext(ctx, "Session expired", "session_id", input.ID)
			return nil, errors.NotFoundf("session %s not found", input.ID)
		}
		r.touch(input.ID)
		return &GetOutput{Session: sess}, nil
	}

	rec, err := r.load(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	var derived *entities.Snapshot
	if len(rec.Derived) > 0 {
		if derived, err = entities.ParseSnapshot(rec.Derived); err != nil {
			return nil, errors.Parse(err, sessionKeyPrefix+input.ID)
		}
	}

	restored := &Session{
		ID:        rec.ID,
		Store:     store.New(),
		CreatedAt: rec.CreatedAt,
	}
	restored.Store.Restore(store.State{
		Document: rec.Document,
		Derived:  derived,
		Version:  rec.Version,
	})

	r.mu.Lock()
	defer r.mu.Unlock()
	r.evictIdleLocked()
	// another request may have restored it first
	if existing, ok := r.live[input.ID]; ok {
		r.touched[input.ID] = r.clock.Now()
		return &GetOutput{Session: existing}, nil
	}
	r.live[input.ID] = restored
	r.touched[input.ID] = r.clock.Now()

	slog.InfoContext(ctx, "Session restored", "session_id", input.ID, "version", rec.Version)

	return &GetOutput{Session: restored}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Session == nil || input.Session.Store == nil {
		return nil, errors.InvalidArgument(errSessionNil)
	}
	if input.Session.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	st := input.Session.Store.State()
	rec := record{
		ID:        input.Session.ID,
		Document:  st.Document,
		Version:   st.Version,
		CreatedAt: input.Session.CreatedAt,
		UpdatedAt: r.clock.Now(),
	}
	if st.Derived != nil {
		rec.Derived = st.Derived.Raw
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal session")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, sessionKeyPrefix+rec.ID, data, r.ttl)
	pipe.SAdd(ctx, indexKey, rec.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Transport(err, "save session")
	}
	r.touch(rec.ID)

	return &SaveOutput{Version: st.Version}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	r.mu.Lock()
	_, live := r.live[input.ID]
	r.mu.Unlock()
	r.forget(input.ID)

	pipe := r.client.TxPipeline()
	del := pipe.Del(ctx, sessionKeyPrefix+input.ID)
	pipe.SRem(ctx, indexKey, input.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Transport(err, "delete session")
	}

	if !live && del.Val() == 0 {
		return nil, errors.NotFoundf("session %s not found", input.ID)
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	members, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Transport(err, "list sessions")
	}

	ids := make([]string, 0, len(members))
	var expired []any
	for _, id := range members {
		n, err := r.client.Exists(ctx, sessionKeyPrefix+id).Result()
		if err != nil {
			return nil, errors.Transport(err, "list sessions")
		}
		if n == 0 {
			expired = append(expired, id)
			continue
		}
		ids = append(ids, id)
	}

	if len(expired) > 0 {
		for _, id := range expired {
			r.forget(id.(string))
		}
		// stale index entries only cost space
		if err := r.client.SRem(ctx, indexKey, expired...).Err(); err != nil {
			slog.WarnContext(ctx, "Failed to prune session index", "error", err)
		}
	}

	sort.Strings(ids)
	return &ListOutput{IDs: ids}, nil
}

// touch records activity on a live session
func (r *redisRepository) touch(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.live[id]; ok {
		r.touched[id] = r.clock.Now()
	}
}

func (r *redisRepository) forget(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.live, id)
	delete(r.touched, id)
}

// evictIdleLocked drops live sessions untouched for longer than the TTL.
// Their Redis keys have expired too. Caller holds r.mu.
func (r *redisRepository) evictIdleLocked() {
	cutoff := r.clock.Now().Add(-r.ttl)
	for id, at := range r.touched {
		if at.Before(cutoff) {
			delete(r.live, id)
			delete(r.touched, id)
		}
	}
}

func (r *redisRepository) load(ctx context.Context, id string) (*record, error) {
	key := sessionKeyPrefix + id
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redisclient.Nil {
			return nil, errors.NotFoundf("session %s not found", id)
		}
		return nil, errors.Transport(err, "get session")
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, errors.Parse(err, key)
	}
	return &rec, nil
}
