package combat

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

// fixedRoll always returns the same draw.
type fixedRoll int

func (f fixedRoll) Intn(n int) int { return int(f) % n }

// noCrit never lands under any sane crit threshold.
const noCrit = fixedRoll(100)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestHero(t *testing.T, hp, potions int) *Entity {
	t.Helper()
	inv, err := NewInventory(map[Item]int{ItemPotion: potions, ItemBomb: 1})
	require.NoError(t, err)
	return NewHero("Arthur", hp, 25, 5, inv)
}

func newTestBattle(t *testing.T, s Settings, hero *Entity, monsters []*Entity, rng Roller) *Battle {
	t.Helper()
	b, err := NewBattle(s, hero, monsters, rng, WithLogger(quietLogger()))
	require.NoError(t, err)
	return b
}
