package rosters

import (
	"bufio"
	"context"
	"os"
	"strings"

	"github.com/KirkDiggler/dungeon-sim/internal/entities"
	apperrors "github.com/KirkDiggler/dungeon-sim/internal/errors"
	"github.com/KirkDiggler/dungeon-sim/internal/uuid"
)

// FileRepoConfig holds configuration for the file repository
type FileRepoConfig struct {
	UUIDGenerator uuid.Generator // Optional
}

// fileRepository implements Repository using whitespace-delimited text
// files, one NPC per line: "<KIND> <name> <x> <y>"
type fileRepository struct {
	uuidGenerator uuid.Generator
}

// NewFileRepository creates a new file-backed roster repository
func NewFileRepository(cfg *FileRepoConfig) Repository {
	repo := &fileRepository{}
	if cfg != nil && cfg.UUIDGenerator != nil {
		repo.uuidGenerator = cfg.UUIDGenerator
	} else {
		repo.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}
	return repo
}

// Save overwrites target with one line per NPC in order
func (r *fileRepository) Save(ctx context.Context, target string, npcs []*entities.NPC) error {
	var sb strings.Builder
	for _, npc := range npcs {
		sb.WriteString(entities.FormatLine(npc))
		sb.WriteByte('\n')
	}

	if err := os.WriteFile(target, []byte(sb.String()), 0o644); err != nil {
		return apperrors.WrapWithCode(err, apperrors.CodeInternal, "failed to write roster file")
	}

	return nil
}

// Load reads target line by line, skipping lines that fail to parse.
// Parsing continues to end of file, never stopping at a bad line.
func (r *fileRepository) Load(ctx context.Context, target string) ([]*entities.NPC, error) {
	file, err := os.Open(target)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.NotFoundf("roster file not found: %s", target)
		}
		return nil, apperrors.WrapWithCode(err, apperrors.CodeInternal, "failed to open roster file")
	}
	defer func() { _ = file.Close() }()

	var npcs []*entities.NPC
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		npc, err := entities.ParseLine(r.uuidGenerator.New(), line)
		if err != nil {
			continue
		}
		npcs = append(npcs, npc)
	}

	if err := scanner.Err(); err != nil {
		return nil, apperrors.WrapWithCode(err, apperrors.CodeInternal, "failed to read roster file")
	}

	return npcs, nil
}
