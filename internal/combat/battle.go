package combat

import (
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"maps"
)

var ErrInvalidBattle = errors.New("invalid battle")

type Settings struct {
	MaxRounds       int
	CritChance      int
	PotionHeal      int
	PotionThreshold int
}

func DefaultSettings() Settings {
	return Settings{
		MaxRounds:       50,
		CritChance:      20,
		PotionHeal:      50,
		PotionThreshold: 50,
	}
}

type Option func(*Battle)

func WithLogger(l *slog.Logger) Option {
	return func(b *Battle) {
		if l != nil {
			b.log = l
		}
	}
}

func WithPolicy(p HeroPolicy) Option {
	return func(b *Battle) {
		if p != nil {
			b.policy = p
		}
	}
}

// Battle owns one hero and one roster for the length of a single fight.
// It is not safe for concurrent use.
type Battle struct {
	settings Settings
	hero     *Entity
	monsters []*Entity
	resolver *Resolver
	policy   HeroPolicy
	log      *slog.Logger

	round   int
	played  int
	outcome Outcome
	started bool
	err     error

	crits    int
	damageBy map[string]int
}

func NewBattle(s Settings, hero *Entity, monsters []*Entity, rng Roller, opts ...Option) (*Battle, error) {
	if hero == nil {
		return nil, fmt.Errorf("%w: nil hero", ErrInvalidBattle)
	}
	if !hero.HasInventory() {
		return nil, fmt.Errorf("%w: hero %s: %w", ErrInvalidBattle, hero.Name, ErrNoInventory)
	}
	if len(monsters) == 0 {
		return nil, fmt.Errorf("%w: empty roster", ErrInvalidBattle)
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidBattle)
	}
	if s.MaxRounds <= 0 {
		return nil, fmt.Errorf("%w: max rounds must be positive, got %d", ErrInvalidBattle, s.MaxRounds)
	}
	seen := map[*Entity]bool{hero: true}
	for i, m := range monsters {
		if m == nil {
			return nil, fmt.Errorf("%w: nil monster at %d", ErrInvalidBattle, i)
		}
		if seen[m] {
			return nil, fmt.Errorf("%w: %s appears twice", ErrInvalidBattle, m.Name)
		}
		seen[m] = true
	}

	b := &Battle{
		settings: s,
		hero:     hero,
		monsters: monsters,
		resolver: NewResolver(rng, s.CritChance),
		policy:   PotionFirst{Threshold: s.PotionThreshold},
		log:      slog.Default(),
		damageBy: map[string]int{},
	}
	for _, opt := range opts {
		opt(b)
	}
	hero.log = b.log
	for _, m := range monsters {
		m.log = b.log
	}
	return b, nil
}

func (b *Battle) Hero() *Entity       { return b.hero }
func (b *Battle) Monsters() []*Entity { return b.monsters }
func (b *Battle) Outcome() Outcome    { return b.outcome }

// Err reports why the battle stopped early, if it did.
func (b *Battle) Err() error { return b.err }

// Living returns the monsters still standing, in roster order.
func (b *Battle) Living() []*Entity {
	out := make([]*Entity, 0, len(b.monsters))
	for _, m := range b.monsters {
		if m.IsAlive() {
			out = append(out, m)
		}
	}
	return out
}

// Rounds plays the battle lazily, one round per iteration. The sequence can
// be consumed once; later calls yield nothing.
func (b *Battle) Rounds() iter.Seq[Round] {
	return func(yield func(Round) bool) {
		if b.started {
			return
		}
		b.started = true
		for b.outcome == Ongoing && b.err == nil {
			if !yield(b.playRound()) {
				return
			}
		}
	}
}

func (b *Battle) playRound() Round {
	living := b.Living()
	if len(living) == 0 {
		// Nothing left to fight: the round is not played, so it keeps the
		// number of the last round that was.
		r := Round{Number: b.round}
		emit := func(ev Event) {
			ev.Round = r.Number
			r.Events = append(r.Events, ev)
		}
		if b.round == 0 {
			b.announce(emit)
		}
		b.finish(Victory, b.round, emit)
		r.Outcome = b.outcome
		return r
	}

	b.round++
	r := Round{Number: b.round}
	emit := func(ev Event) {
		ev.Round = r.Number
		r.Events = append(r.Events, ev)
	}
	if b.round == 1 {
		b.announce(emit)
	}
	emit(Event{Type: EventRoundStart, HP: b.hero.HP})

	if err := b.heroTurn(living, emit); err != nil {
		b.err = err
		b.played = b.round
		b.log.Error("battle aborted", "round", b.round, "err", err)
		return r
	}

	// Monsters act from the snapshot taken before the hero moved.
	for _, m := range living {
		if !b.hero.IsAlive() {
			break
		}
		if err := b.strike(m, b.hero, emit); err != nil {
			b.err = err
			b.played = b.round
			return r
		}
	}

	switch {
	case !b.hero.IsAlive():
		b.finish(Defeat, b.round, emit)
	case len(b.Living()) == 0:
		b.finish(Victory, b.round, emit)
	case b.round >= b.settings.MaxRounds:
		b.finish(Timeout, b.round, emit)
	}
	r.Outcome = b.outcome
	return r
}

func (b *Battle) announce(emit func(Event)) {
	emit(Event{Type: EventBattleStart, Actor: b.hero.Name, HP: b.hero.HP,
		Text: fmt.Sprintf("%d monsters", len(b.monsters))})
}

func (b *Battle) finish(o Outcome, played int, emit func(Event)) {
	b.outcome = o
	b.played = played
	switch o {
	case Victory:
		emit(Event{Type: EventVictory, Actor: b.hero.Name, HP: b.hero.HP})
	case Defeat:
		emit(Event{Type: EventDefeat, Actor: b.hero.Name, HP: b.hero.HP})
	case Timeout:
		emit(Event{Type: EventTimeout, Actor: b.hero.Name, HP: b.hero.HP})
	}
	b.log.Debug("battle finished", "outcome", o, "rounds", played, "hero_hp", b.hero.HP)
}

// heroTurn runs the policy's action and, if it fails for any reason, falls
// back to hitting the first living monster. The fallback is not retried.
func (b *Battle) heroTurn(living []*Entity, emit func(Event)) error {
	act := b.policy.Decide(b.hero, living)
	err := b.perform(act, living, emit)
	if err == nil {
		return nil
	}
	b.log.Debug("hero action failed, attacking instead", "hero", b.hero.Name, "err", err)
	emit(Event{Type: EventActionFailed, Actor: b.hero.Name, HP: b.hero.HP, Text: err.Error()})
	return b.strike(b.hero, living[0], emit)
}

func (b *Battle) perform(act Action, living []*Entity, emit func(Event)) error {
	switch act.Kind {
	case ActPotion:
		hp, err := b.hero.UsePotion(b.settings.PotionHeal)
		if err != nil {
			return err
		}
		emit(Event{Type: EventPotion, Actor: b.hero.Name, Target: b.hero.Name,
			Damage: b.settings.PotionHeal, HP: hp})
		return nil
	case ActAttack:
		target := act.Target
		if target == nil {
			target = living[0]
		}
		return b.strike(b.hero, target, emit)
	}
	return fmt.Errorf("unknown action kind %d", act.Kind)
}

func (b *Battle) strike(attacker, target *Entity, emit func(Event)) error {
	s, err := attacker.AttackTarget(target, b.resolver)
	if err != nil {
		return err
	}
	if s.Crit {
		b.crits++
	}
	b.damageBy[s.Attacker] += s.Damage
	emit(Event{Type: EventAttack, Actor: s.Attacker, Target: s.Target,
		Damage: s.Damage, Crit: s.Crit, HP: s.TargetHP})
	return nil
}

type Result struct {
	Outcome   Outcome        `json:"outcome"`
	Rounds    int            `json:"rounds"` // rounds in which anyone acted
	Hero      string         `json:"hero"`
	HeroHP    int            `json:"hero_hp"`
	Survivors int            `json:"survivors"`
	Inventory map[Item]int   `json:"inventory"`
	Crits     int            `json:"crits"`
	DamageBy  map[string]int `json:"damage_by,omitempty"`
	Events    []Event        `json:"events,omitempty"`
	Err       error          `json:"-"`
}

// Run drains Rounds and summarizes the battle. Events are kept only when
// record is set.
func (b *Battle) Run(record bool) Result {
	var events []Event
	for r := range b.Rounds() {
		if record {
			events = append(events, r.Events...)
		}
	}
	return b.Result(events)
}

// Result summarizes the battle as it stands.
func (b *Battle) Result(events []Event) Result {
	return Result{
		Outcome:   b.outcome,
		Rounds:    b.played,
		Hero:      b.hero.Name,
		HeroHP:    b.hero.HP,
		Survivors: len(b.Living()),
		Inventory: b.hero.Inventory.Snapshot(),
		Crits:     b.crits,
		DamageBy:  maps.Clone(b.damageBy),
		Events:    events,
		Err:       b.err,
	}
}
