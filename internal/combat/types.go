package combat

import "fmt"

type EventType string

const (
	EventBattleStart  EventType = "battle_start"
	EventRoundStart   EventType = "round_start"
	EventAttack       EventType = "attack"
	EventPotion       EventType = "potion"
	EventActionFailed EventType = "action_failed"
	EventVictory      EventType = "victory"
	EventDefeat       EventType = "defeat"
	EventTimeout      EventType = "timeout"
)

type Event struct {
	Round  int       `json:"round"`
	Type   EventType `json:"type"`
	Actor  string    `json:"actor,omitempty"`
	Target string    `json:"target,omitempty"`
	Damage int       `json:"damage,omitempty"`
	Crit   bool      `json:"crit,omitempty"`
	HP     int       `json:"hp"`
	Text   string    `json:"text,omitempty"`
}

// Narrate renders an event as a console line.
func Narrate(ev Event) string {
	switch ev.Type {
	case EventBattleStart:
		return fmt.Sprintf("Battle begins: %s vs %s.", ev.Actor, ev.Text)
	case EventRoundStart:
		return fmt.Sprintf("--- ROUND %d ---", ev.Round)
	case EventAttack:
		line := fmt.Sprintf("%s attacks %s for %d damage (HP %d).", ev.Actor, ev.Target, ev.Damage, ev.HP)
		if ev.Crit {
			return ">>> CRITICAL! <<< " + line
		}
		return line
	case EventPotion:
		return fmt.Sprintf("%s drinks a potion (+%d HP, now %d).", ev.Actor, ev.Damage, ev.HP)
	case EventActionFailed:
		return fmt.Sprintf("[%s] %s", ev.Actor, ev.Text)
	case EventVictory:
		return "VICTORY! All monsters are defeated."
	case EventDefeat:
		return fmt.Sprintf("DEFEAT... %s has fallen.", ev.Actor)
	case EventTimeout:
		return fmt.Sprintf("Round limit reached after %d rounds; the battle is a draw.", ev.Round)
	}
	return string(ev.Type)
}

type Outcome int

const (
	Ongoing Outcome = iota
	Victory
	Defeat
	Timeout
)

func (o Outcome) String() string {
	switch o {
	case Ongoing:
		return "ongoing"
	case Victory:
		return "victory"
	case Defeat:
		return "defeat"
	case Timeout:
		return "timeout"
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

func (o Outcome) Terminal() bool { return o != Ongoing }

func (o Outcome) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

// Round is everything that happened in one round.
type Round struct {
	Number  int     `json:"number"`
	Events  []Event `json:"events"`
	Outcome Outcome `json:"outcome"`
}
