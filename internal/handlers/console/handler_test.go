package console_test

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dungeon-sim/internal/events"
	"github.com/KirkDiggler/dungeon-sim/internal/handlers/console"
	"github.com/KirkDiggler/dungeon-sim/internal/notifiers"
	"github.com/KirkDiggler/dungeon-sim/internal/repositories/rosters"
	"github.com/KirkDiggler/dungeon-sim/internal/services/combat"
	"github.com/KirkDiggler/dungeon-sim/internal/services/dungeon"
)

// runScript spins up a full console stack, feeds it a command script, and
// returns everything written to the output stream.
func runScript(t *testing.T, script string) string {
	t.Helper()

	var out bytes.Buffer

	bus := events.NewBus()
	bus.Subscribe(events.EventTypeKill, notifiers.NewConsoleNotifier(&out))

	service := dungeon.NewService(&dungeon.ServiceConfig{
		FileRepository: rosters.NewFileRepository(&rosters.FileRepoConfig{}),
		Resolver:       combat.NewResolver(&combat.ResolverConfig{Bus: bus}),
	})

	handler := console.NewHandler(&console.HandlerConfig{
		Service: service,
		Input:   strings.NewReader(script),
		Output:  &out,
		Prompt:  "? ",
	})

	require.NoError(t, handler.Run(context.Background()))
	return out.String()
}

func TestRun_ExitTerminates(t *testing.T) {
	out := runScript(t, "exit")

	assert.Equal(t, "? ", out)
}

func TestRun_EndOfInputTerminates(t *testing.T) {
	out := runScript(t, "print")

	// One prompt for print, one for the read that hit end of input
	assert.Equal(t, "? ? ", out)
}

func TestRun_AddAndPrint(t *testing.T) {
	out := runScript(t, "add dragon Smaug 10 20 print exit")

	assert.Contains(t, out, "Dragon Smaug at (10, 20)\n")
}

func TestRun_UnknownCommand(t *testing.T) {
	out := runScript(t, "dance exit")

	assert.Contains(t, out, "Unknown command\n")
}

func TestRun_UnknownKindConsumesArguments(t *testing.T) {
	// The goblin's arguments must not be re-read as commands
	out := runScript(t, "add goblin Grik 1 1 print exit")

	assert.Contains(t, out, "Unknown NPC kind\n")
	assert.NotContains(t, out, "Unknown command")
	assert.NotContains(t, out, "Grik")
}

func TestRun_OutOfRangeAddRejected(t *testing.T) {
	out := runScript(t, "add dragon Smaug 501 0 print exit")

	assert.Contains(t, out, "invalid coordinates (501, 0)")
	assert.NotContains(t, out, "Smaug at")
}

func TestRun_NonIntegerCoordinates(t *testing.T) {
	out := runScript(t, "add dragon Smaug ten 20 print exit")

	assert.Contains(t, out, "Coordinates must be integers\n")
	assert.NotContains(t, out, "Smaug at")
}

func TestRun_BadBattleRange(t *testing.T) {
	out := runScript(t, "battle far exit")

	assert.Contains(t, out, "Range must be a number\n")
}

func TestRun_BattleScenario(t *testing.T) {
	out := runScript(t,
		"add dragon D 0 0 "+
			"add princess P 3 4 "+
			"battle 5 "+
			"print exit")

	assert.Contains(t, out, "D killed P\n")
	assert.Contains(t, out, "Dragon D at (0, 0)\n")
	assert.NotContains(t, out, "Princess P at")
}

func TestRun_ThreeKindBattleScenario(t *testing.T) {
	out := runScript(t,
		"add knight K 0 0 "+
			"add dragon Dr 0 0 "+
			"add princess Pr 0 0 "+
			"battle 0 "+
			"print exit")

	assert.Contains(t, out, "K killed Dr\n")
	assert.Contains(t, out, "Dr killed Pr\n")
	assert.Contains(t, out, "Knight K at (0, 0)\n")
	assert.NotContains(t, out, "Dragon Dr at")
	assert.NotContains(t, out, "Princess Pr at")
}

func TestRun_KnightsDoNotFight(t *testing.T) {
	out := runScript(t,
		"add knight A 0 0 "+
			"add knight B 1 0 "+
			"battle 10 "+
			"print exit")

	assert.NotContains(t, out, "killed")
	assert.Contains(t, out, "Knight A at (0, 0)\n")
	assert.Contains(t, out, "Knight B at (1, 0)\n")
}

func TestRun_SaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dungeon.txt")

	out := runScript(t,
		"add princess Fiona 3 4 "+
			"add knight Lancelot 5 6 "+
			"save "+path+" "+
			"add dragon Unsaved 9 9 "+
			"load "+path+" "+
			"print exit")

	assert.Contains(t, out, "Princess Fiona at (3, 4)\n")
	assert.Contains(t, out, "Knight Lancelot at (5, 6)\n")
	assert.NotContains(t, out, "Unsaved")
}

func TestRun_LoadMissingFileEmptiesRoster(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")

	out := runScript(t,
		"add knight Lancelot 5 6 "+
			"load "+path+" "+
			"print exit")

	assert.NotContains(t, out, "Lancelot at")
}

func TestRun_ArgumentsMaySpanLines(t *testing.T) {
	out := runScript(t, "add\ndragon\nSmaug\n10\n20\nprint\nexit\n")

	assert.Contains(t, out, "Dragon Smaug at (10, 20)\n")
}

func TestNewHandler_RequiredDependencies(t *testing.T) {
	assert.Panics(t, func() {
		console.NewHandler(&console.HandlerConfig{
			Input:  strings.NewReader(""),
			Output: &bytes.Buffer{},
		})
	})
}
