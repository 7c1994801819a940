package rosters

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/dungeon-sim/internal/entities"
	apperrors "github.com/KirkDiggler/dungeon-sim/internal/errors"
	"github.com/KirkDiggler/dungeon-sim/internal/uuid"
)

// Data is the Redis serialization format for one NPC. Only living NPCs
// are persisted, so the alive flag is implicit.
type Data struct {
	ID   string        `json:"id"`
	Kind entities.Kind `json:"kind"`
	Name string        `json:"name"`
	X    int           `json:"x"`
	Y    int           `json:"y"`
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client        redis.UniversalClient
	UUIDGenerator uuid.Generator // Optional
}

// redisRepository implements Repository using one JSON value per NPC plus
// a list key holding the roster order
type redisRepository struct {
	client        redis.UniversalClient
	uuidGenerator uuid.Generator
}

// NewRedisRepository creates a new Redis-backed roster repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil || cfg.Client == nil {
		panic("RedisRepoConfig and Client are required")
	}

	repo := &redisRepository{
		client:        cfg.Client,
		uuidGenerator: cfg.UUIDGenerator,
	}
	if repo.uuidGenerator == nil {
		repo.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}

	return repo
}

func orderKey(target string) string {
	return fmt.Sprintf("roster:%s:order", target)
}

func npcKey(target, id string) string {
	return fmt.Sprintf("roster:%s:npc:%s", target, id)
}

// Save replaces the stored roster: previous NPC values are removed, then
// each NPC is written with its position appended to the order list.
func (r *redisRepository) Save(ctx context.Context, target string, npcs []*entities.NPC) error {
	oldIDs, err := r.client.LRange(ctx, orderKey(target), 0, -1).Result()
	if err != nil {
		return apperrors.WrapWithCode(err, apperrors.CodeInternal, "failed to read existing roster order")
	}

	pipe := r.client.Pipeline()
	for _, id := range oldIDs {
		pipe.Del(ctx, npcKey(target, id))
	}
	pipe.Del(ctx, orderKey(target))

	for _, npc := range npcs {
		data, err := json.Marshal(Data{
			ID:   npc.ID,
			Kind: npc.Kind,
			Name: npc.Name,
			X:    npc.X,
			Y:    npc.Y,
		})
		if err != nil {
			return apperrors.WrapWithCode(err, apperrors.CodeInternal, "failed to marshal NPC")
		}

		pipe.Set(ctx, npcKey(target, npc.ID), string(data), 0)
		pipe.RPush(ctx, orderKey(target), npc.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return apperrors.WrapWithCode(err, apperrors.CodeInternal, "failed to write roster to Redis")
	}

	return nil
}

// Load fetches the order list, then the NPC values concurrently,
// reassembling them in order-list order. Entries that are missing or fail
// to decode are skipped.
func (r *redisRepository) Load(ctx context.Context, target string) ([]*entities.NPC, error) {
	ids, err := r.client.LRange(ctx, orderKey(target), 0, -1).Result()
	if err != nil {
		return nil, apperrors.WrapWithCode(err, apperrors.CodeInternal, "failed to read roster order")
	}
	if len(ids) == 0 {
		return nil, apperrors.NotFoundf("roster not found: %s", target)
	}

	loaded := make([]*entities.NPC, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			raw, err := r.client.Get(ctx, npcKey(target, id)).Result()
			if err != nil {
				if err == redis.Nil {
					return nil
				}
				return fmt.Errorf("failed to get NPC %s: %w", id, err)
			}

			var data Data
			if err := json.Unmarshal([]byte(raw), &data); err != nil {
				return nil
			}
			if !entities.InBounds(data.X, data.Y) {
				return nil
			}

			loaded[i] = entities.New(r.uuidGenerator.New(), data.Kind, data.Name, data.X, data.Y)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, apperrors.WrapWithCode(err, apperrors.CodeInternal, "failed to load roster from Redis")
	}

	npcs := make([]*entities.NPC, 0, len(loaded))
	for _, npc := range loaded {
		if npc != nil {
			npcs = append(npcs, npc)
		}
	}

	return npcs, nil
}
