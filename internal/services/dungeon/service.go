package dungeon

//go:generate mockgen -destination=mock/mock_service.go -package=mockdungeon -source=service.go

import (
	"context"
	"strings"

	"github.com/KirkDiggler/dungeon-sim/internal/entities"
	apperrors "github.com/KirkDiggler/dungeon-sim/internal/errors"
	"github.com/KirkDiggler/dungeon-sim/internal/repositories/rosters"
	"github.com/KirkDiggler/dungeon-sim/internal/services/combat"
	"github.com/KirkDiggler/dungeon-sim/internal/uuid"
)

// RedisTargetPrefix routes a save/load target to the Redis repository
const RedisTargetPrefix = "redis:"

// Service defines the dungeon registry interface. The registry owns the
// ordered NPC roster; insertion order is preserved for print and save.
type Service interface {
	// AddNPC validates coordinates, constructs an NPC, and appends it
	AddNPC(ctx context.Context, input *AddNPCInput) (*entities.NPC, error)

	// ListNPCs returns copies of the living NPCs in roster order
	ListNPCs(ctx context.Context) []*entities.NPC

	// Save writes the living roster to the given target
	Save(ctx context.Context, target string) error

	// Load replaces the entire roster with the target's contents. A
	// missing target yields an empty roster, not an error.
	Load(ctx context.Context, target string) error

	// Battle runs one combat pass at the given range and purges the dead
	Battle(ctx context.Context, withinRange float64) (*combat.Report, error)
}

// AddNPCInput contains data for spawning an NPC
type AddNPCInput struct {
	Kind entities.Kind
	Name string
	X    int
	Y    int
}

// service implements the Service interface
type service struct {
	files         rosters.Repository
	redis         rosters.Repository
	resolver      *combat.Resolver
	uuidGenerator uuid.Generator
	npcs          []*entities.NPC
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	FileRepository  rosters.Repository // Required
	RedisRepository rosters.Repository // Optional (redis: targets rejected if nil)
	Resolver        *combat.Resolver   // Required
	UUIDGenerator   uuid.Generator     // Optional
}

// NewService creates a new dungeon service
func NewService(cfg *ServiceConfig) Service {
	if cfg.FileRepository == nil {
		panic("file repository is required")
	}
	if cfg.Resolver == nil {
		panic("combat resolver is required")
	}

	svc := &service{
		files:    cfg.FileRepository,
		redis:    cfg.RedisRepository,
		resolver: cfg.Resolver,
	}

	if cfg.UUIDGenerator != nil {
		svc.uuidGenerator = cfg.UUIDGenerator
	} else {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}

	return svc
}

// AddNPC validates coordinates, constructs an NPC, and appends it
func (s *service) AddNPC(ctx context.Context, input *AddNPCInput) (*entities.NPC, error) {
	if input == nil {
		return nil, apperrors.InvalidArgument("input is required")
	}
	if !entities.InBounds(input.X, input.Y) {
		return nil, apperrors.InvalidArgumentf("invalid coordinates (%d, %d): must be within [%d, %d]",
			input.X, input.Y, entities.MinCoordinate, entities.MaxCoordinate)
	}

	npc := entities.New(s.uuidGenerator.New(), input.Kind, input.Name, input.X, input.Y)
	s.npcs = append(s.npcs, npc)

	return npc.Clone(), nil
}

// ListNPCs returns copies of the living NPCs in roster order
func (s *service) ListNPCs(ctx context.Context) []*entities.NPC {
	listed := make([]*entities.NPC, 0, len(s.npcs))
	for _, npc := range s.npcs {
		if !npc.IsAlive() {
			continue
		}
		listed = append(listed, npc.Clone())
	}
	return listed
}

// Save writes the living roster to the repository selected by target
func (s *service) Save(ctx context.Context, target string) error {
	repo, name, err := s.route(target)
	if err != nil {
		return err
	}

	return repo.Save(ctx, name, s.ListNPCs(ctx))
}

// Load replaces the entire roster with the target's contents, discarding
// any prior state including NPCs never saved
func (s *service) Load(ctx context.Context, target string) error {
	repo, name, err := s.route(target)
	if err != nil {
		return err
	}

	loaded, err := repo.Load(ctx, name)
	if err != nil {
		if apperrors.IsNotFound(err) {
			s.npcs = nil
			return nil
		}
		return apperrors.Wrap(err, "failed to load roster")
	}

	s.npcs = loaded
	return nil
}

// Battle runs one combat pass, then purges every dead NPC from the roster
func (s *service) Battle(ctx context.Context, withinRange float64) (*combat.Report, error) {
	report := s.resolver.ResolvePass(s.npcs, withinRange)

	living := s.npcs[:0]
	for _, npc := range s.npcs {
		if npc.IsAlive() {
			living = append(living, npc)
		}
	}
	for i := len(living); i < len(s.npcs); i++ {
		s.npcs[i] = nil
	}
	s.npcs = living

	return report, nil
}

// route picks the repository for a save/load target
func (s *service) route(target string) (rosters.Repository, string, error) {
	if name, ok := strings.CutPrefix(target, RedisTargetPrefix); ok {
		if s.redis == nil {
			return nil, "", apperrors.InvalidArgument("redis storage is not configured")
		}
		if name == "" {
			return nil, "", apperrors.InvalidArgument("redis target name is empty")
		}
		return s.redis, name, nil
	}

	return s.files, target, nil
}
