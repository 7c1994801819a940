package entities

import (
	"fmt"
	"math"
)

// Coordinate bounds for the dungeon grid, enforced at creation time only
const (
	MinCoordinate = 0
	MaxCoordinate = 500
)

// Kind represents the fixed category of an NPC
type Kind string

const (
	KindPrincess Kind = "princess"
	KindDragon   Kind = "dragon"
	KindKnight   Kind = "knight"
)

// KindFromKeyword maps a lowercase command keyword to a Kind.
// Matching is exact and case-sensitive.
func KindFromKeyword(keyword string) (Kind, bool) {
	switch keyword {
	case "princess":
		return KindPrincess, true
	case "dragon":
		return KindDragon, true
	case "knight":
		return KindKnight, true
	default:
		return "", false
	}
}

// KindFromToken maps an uppercase persistence token to a Kind.
// Matching is exact and case-sensitive.
func KindFromToken(token string) (Kind, bool) {
	switch token {
	case "PRINCESS":
		return KindPrincess, true
	case "DRAGON":
		return KindDragon, true
	case "KNIGHT":
		return KindKnight, true
	default:
		return "", false
	}
}

// Token returns the uppercase persistence token for the kind
func (k Kind) Token() string {
	switch k {
	case KindPrincess:
		return "PRINCESS"
	case KindDragon:
		return "DRAGON"
	case KindKnight:
		return "KNIGHT"
	default:
		return "UNKNOWN"
	}
}

// Display returns the human-readable name of the kind
func (k Kind) Display() string {
	switch k {
	case KindPrincess:
		return "Princess"
	case KindDragon:
		return "Dragon"
	case KindKnight:
		return "Knight"
	default:
		return "Unknown"
	}
}

// NPC is a dungeon inhabitant. The roster owns all NPC state; the alive
// flag flips to false at most once and dead NPCs never come back.
type NPC struct {
	ID    string `json:"id"`
	Kind  Kind   `json:"kind"`
	Name  string `json:"name"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
	alive bool
}

// IsAlive reports whether the NPC is still alive
func (n *NPC) IsAlive() bool {
	return n.alive
}

// MarkDead flips the alive flag. Irreversible.
func (n *NPC) MarkDead() {
	n.alive = false
}

// DistanceTo returns the Euclidean distance to another NPC
func (n *NPC) DistanceTo(other *NPC) float64 {
	return math.Hypot(float64(n.X-other.X), float64(n.Y-other.Y))
}

// Render returns the display line used by the print command
func (n *NPC) Render() string {
	return fmt.Sprintf("%s %s at (%d, %d)", n.Kind.Display(), n.Name, n.X, n.Y)
}

// Clone returns a copy so callers cannot mutate roster state
func (n *NPC) Clone() *NPC {
	clone := *n
	return &clone
}

// InBounds reports whether a coordinate pair is inside the dungeon grid
func InBounds(x, y int) bool {
	return x >= MinCoordinate && x <= MaxCoordinate &&
		y >= MinCoordinate && y <= MaxCoordinate
}
