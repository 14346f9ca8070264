package draftstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"wayfarer/internal/domain/booking"
	"wayfarer/internal/infra"
	"wayfarer/internal/pkg/clock"
	"wayfarer/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// terminalRetention keeps confirmed/failed/expired drafts readable for a
// while after the offer TTL would have evicted them, so review screens
// that race the transition still resolve.
const terminalRetention = 24 * time.Hour

// RedisStore keeps drafts as JSON values whose TTL mirrors the offer
// expiry, so abandoned drafts evict themselves.
type RedisStore struct {
	client *redis.Client
	clock  clock.Clock
}

func NewRedisStore(cfg config.RedisConfig, clk clock.Clock) *RedisStore {
	return &RedisStore{
		client: redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		clock:  clk,
	}
}

func (s *RedisStore) Save(ctx context.Context, draft *booking.Draft) error {
	payload, err := json.Marshal(toRecord(draft))
	if err != nil {
		return infra.WrapRepoErr("failed to encode draft", err)
	}

	ttl := clock.Until(s.clock, draft.ExpiresAt())
	if draft.Status().IsTerminal() {
		ttl = terminalRetention
	} else if ttl <= 0 {
		ttl = time.Minute
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, draftKey(draft.ID()), payload, ttl)
	pipe.Set(ctx, offerKey(draft.OfferID()), draft.ID().String(), ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return infra.WrapRepoErr("failed to save draft", err)
	}
	return nil
}

func (s *RedisStore) FindByID(ctx context.Context, id uuid.UUID) (*booking.Draft, error) {
	data, err := s.client.Get(ctx, draftKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, infra.WrapRepoErr("draft not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load draft", err)
	}

	var rec draftRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, infra.WrapRepoErr("failed to decode draft", err)
	}
	return fromRecord(rec)
}

func (s *RedisStore) FindIDByOfferID(ctx context.Context, offerID string) (uuid.UUID, error) {
	raw, err := s.client.Get(ctx, offerKey(offerID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return uuid.Nil, infra.WrapRepoErr("no draft for offer", err, infra.KindNotFound)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to resolve offer draft", err)
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("corrupt offer index entry", err)
	}
	return id, nil
}

func (s *RedisStore) Delete(ctx context.Context, id uuid.UUID) error {
	draft, err := s.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil
		}
		return err
	}

	pipe := s.client.TxPipeline()
	pipe.Del(ctx, draftKey(id))
	pipe.Del(ctx, offerKey(draft.OfferID()))
	if _, err := pipe.Exec(ctx); err != nil {
		return infra.WrapRepoErr("failed to delete draft", err)
	}
	return nil
}

func (s *RedisStore) AcquireFinalizeLock(ctx context.Context, id uuid.UUID, ttl time.Duration) (bool, error) {
	ok, err := s.client.SetNX(ctx, lockKey(id), "locked", ttl).Result()
	if err != nil {
		return false, infra.WrapRepoErr("failed to acquire finalize lock", err)
	}
	return ok, nil
}

func (s *RedisStore) ReleaseFinalizeLock(ctx context.Context, id uuid.UUID) error {
	if err := s.client.Del(ctx, lockKey(id)).Err(); err != nil {
		return infra.WrapRepoErr("failed to release finalize lock", err)
	}
	return nil
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func draftKey(id uuid.UUID) string {
	return "booking:draft:" + id.String()
}

func offerKey(offerID string) string {
	return "booking:draft:offer:" + offerID
}

func lockKey(id uuid.UUID) string {
	return "booking:draft:lock:" + id.String()
}
