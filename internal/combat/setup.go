package combat

import (
	"fmt"

	"rpgsim/internal/config"
)

// NewRoster builds count identical monsters named prefix_0, prefix_1, ...
func NewRoster(prefix string, count, hp, atk, def int) []*Entity {
	out := make([]*Entity, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, NewMonster(fmt.Sprintf("%s_%d", prefix, i), hp, atk, def))
	}
	return out
}

func SettingsFrom(cfg *config.BattleConfig) Settings {
	return Settings{
		MaxRounds:       cfg.MaxRounds,
		CritChance:      cfg.CritChance,
		PotionHeal:      cfg.PotionHeal,
		PotionThreshold: cfg.PotionThreshold,
	}
}

// FromConfig builds a fresh hero and roster from cfg. Every call returns
// new entities, so battles never share state.
func FromConfig(cfg *config.BattleConfig, rng Roller, opts ...Option) (*Battle, error) {
	counts := make(map[Item]int, len(cfg.Hero.Inventory))
	for k, v := range cfg.Hero.Inventory {
		counts[Item(k)] = v
	}
	inv, err := NewInventory(counts)
	if err != nil {
		return nil, fmt.Errorf("hero %s: %w", cfg.Hero.Name, err)
	}
	h := cfg.Hero
	hero := NewHero(h.Name, h.HP, h.Attack, h.Defense, inv)
	m := cfg.Monsters
	roster := NewRoster(m.NamePrefix, m.Count, m.HP, m.Attack, m.Defense)
	return NewBattle(SettingsFrom(cfg), hero, roster, rng, opts...)
}
