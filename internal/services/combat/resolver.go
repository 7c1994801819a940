// Package combat resolves battle passes over the dungeon roster against a
// static kind-pair rule table: dragons kill princesses, knights kill
// dragons, nothing else fights.
package combat

import (
	"github.com/KirkDiggler/dungeon-sim/internal/entities"
	"github.com/KirkDiggler/dungeon-sim/internal/events"
)

// killRules maps killer kind to the one kind it kills
var killRules = map[entities.Kind]entities.Kind{
	entities.KindDragon: entities.KindPrincess,
	entities.KindKnight: entities.KindDragon,
}

// Kill records one resolved kill in emission order
type Kill struct {
	KillerID   string
	KillerName string
	VictimID   string
	VictimName string
}

// Report summarizes one battle pass
type Report struct {
	Kills []Kill
}

// Resolver runs battle passes and emits one kill event per kill
type Resolver struct {
	bus *events.Bus
}

// ResolverConfig holds configuration for the resolver
type ResolverConfig struct {
	Bus *events.Bus // Required
}

// NewResolver creates a new combat resolver
func NewResolver(cfg *ResolverConfig) *Resolver {
	if cfg == nil || cfg.Bus == nil {
		panic("event bus is required")
	}

	return &Resolver{bus: cfg.Bus}
}

// ResolvePass evaluates every unordered pair (i, j), i < j in roster
// order, both directions, against the rule table. Pair eligibility uses
// liveness as of the start of the pass, so an NPC killed mid-pass still
// acts as a killer in its remaining pairs. Within one pair the second
// direction sees the first direction's outcome: a victim killed i->j
// never strikes back j->i, and an already-dead victim is never killed
// twice. NPCs are marked dead in place; the caller owns removal of the
// dead.
func (r *Resolver) ResolvePass(npcs []*entities.NPC, withinRange float64) *Report {
	report := &Report{}

	aliveAtStart := make([]bool, len(npcs))
	for i, npc := range npcs {
		aliveAtStart[i] = npc.IsAlive()
	}

	for i := 0; i < len(npcs); i++ {
		if !aliveAtStart[i] {
			continue
		}
		for j := i + 1; j < len(npcs); j++ {
			if !aliveAtStart[j] {
				continue
			}
			if r.strike(npcs[i], npcs[j], withinRange, report) {
				continue
			}
			r.strike(npcs[j], npcs[i], withinRange, report)
		}
	}

	return report
}

// strike applies one directional rule check, reporting whether the victim
// died
func (r *Resolver) strike(attacker, victim *entities.NPC, withinRange float64, report *Report) bool {
	if !victim.IsAlive() {
		return false
	}
	if attacker.DistanceTo(victim) > withinRange {
		return false
	}
	if killRules[attacker.Kind] != victim.Kind {
		return false
	}

	victim.MarkDead()
	report.Kills = append(report.Kills, Kill{
		KillerID:   attacker.ID,
		KillerName: attacker.Name,
		VictimID:   victim.ID,
		VictimName: victim.Name,
	})

	r.bus.Emit(&events.KillEvent{
		Killer: attacker.Clone(),
		Victim: victim.Clone(),
	})

	return true
}
