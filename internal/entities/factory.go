package entities

import (
	"strconv"
	"strings"

	apperrors "github.com/KirkDiggler/dungeon-sim/internal/errors"
)

// New constructs a living NPC. Inputs are assumed validated by the caller.
func New(id string, kind Kind, name string, x, y int) *NPC {
	return &NPC{
		ID:    id,
		Kind:  kind,
		Name:  name,
		X:     x,
		Y:     y,
		alive: true,
	}
}

// ParseLine parses one persisted roster line of the form
// "<KIND> <name> <x> <y>" with whitespace-separated tokens. It returns an
// invalid argument error for anything that is not exactly four tokens with a
// recognized uppercase kind and in-bounds integer coordinates.
func ParseLine(id, line string) (*NPC, error) {
	tokens := strings.Fields(line)
	if len(tokens) != 4 {
		return nil, apperrors.InvalidArgumentf("expected 4 tokens, got %d", len(tokens))
	}

	kind, ok := KindFromToken(tokens[0])
	if !ok {
		return nil, apperrors.InvalidArgumentf("unknown kind token %q", tokens[0])
	}

	x, err := strconv.Atoi(tokens[2])
	if err != nil {
		return nil, apperrors.InvalidArgumentf("bad x coordinate %q", tokens[2])
	}
	y, err := strconv.Atoi(tokens[3])
	if err != nil {
		return nil, apperrors.InvalidArgumentf("bad y coordinate %q", tokens[3])
	}

	if !InBounds(x, y) {
		return nil, apperrors.InvalidArgumentf("coordinates (%d, %d) out of bounds", x, y)
	}

	return New(id, kind, tokens[1], x, y), nil
}

// FormatLine renders an NPC in the persisted roster format parsed by ParseLine
func FormatLine(npc *NPC) string {
	return npc.Kind.Token() + " " + npc.Name + " " +
		strconv.Itoa(npc.X) + " " + strconv.Itoa(npc.Y)
}
