package combat

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNarrate(t *testing.T) {
	tests := []struct {
		ev   Event
		want string
	}{
		{ev: Event{Type: EventRoundStart, Round: 4}, want: "--- ROUND 4 ---"},
		{ev: Event{Type: EventAttack, Actor: "Arthur", Target: "Goblin_0", Damage: 23, HP: 37},
			want: "Arthur attacks Goblin_0 for 23 damage (HP 37)."},
		{ev: Event{Type: EventAttack, Actor: "Goblin_0", Target: "Arthur", Damage: 15, Crit: true, HP: 185},
			want: ">>> CRITICAL! <<< Goblin_0 attacks Arthur for 15 damage (HP 185)."},
		{ev: Event{Type: EventPotion, Actor: "Arthur", Damage: 50, HP: 90},
			want: "Arthur drinks a potion (+50 HP, now 90)."},
		{ev: Event{Type: EventDefeat, Actor: "Arthur"}, want: "DEFEAT... Arthur has fallen."},
		{ev: Event{Type: EventTimeout, Round: 50}, want: "Round limit reached after 50 rounds; the battle is a draw."},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Narrate(tt.ev))
	}
}

func TestOutcome_JSON(t *testing.T) {
	b, err := json.Marshal(Result{Outcome: Timeout, Rounds: 50})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"outcome":"timeout"`)
	assert.Equal(t, "outcome(9)", Outcome(9).String())
	assert.False(t, Ongoing.Terminal())
	assert.True(t, Defeat.Terminal())
}
