package config

import (
	"errors"
	"fmt"
)

var knownItems = map[string]bool{"potion": true, "bomb": true}

type BattleConfig struct {
	Seed            int64      `yaml:"seed"`
	MaxRounds       int        `yaml:"max_rounds"`
	CritChance      int        `yaml:"crit_chance"`
	PotionHeal      int        `yaml:"potion_heal"`
	PotionThreshold int        `yaml:"potion_threshold"`
	Hero            HeroDef    `yaml:"hero"`
	Monsters        MonsterDef `yaml:"monsters"`
}

// Default returns the stock encounter: Arthur against five goblins.
func Default() BattleConfig {
	return BattleConfig{
		Seed:            12345,
		MaxRounds:       50,
		CritChance:      20,
		PotionHeal:      50,
		PotionThreshold: 50,
		Hero: HeroDef{
			Name:    "Arthur",
			HP:      200,
			Attack:  25,
			Defense: 5,
			Inventory: map[string]int{
				"potion": 2,
				"bomb":   1,
			},
		},
		Monsters: MonsterDef{
			Count:      5,
			NamePrefix: "Goblin",
			HP:         60,
			Attack:     10,
			Defense:    2,
		},
	}
}

// Validate reports every problem at once.
func (c BattleConfig) Validate() error {
	var errs []error
	if c.MaxRounds <= 0 {
		errs = append(errs, fmt.Errorf("max_rounds must be positive, got %d", c.MaxRounds))
	}
	if c.CritChance < 0 {
		errs = append(errs, fmt.Errorf("crit_chance must not be negative, got %d", c.CritChance))
	}
	if c.PotionHeal < 0 {
		errs = append(errs, fmt.Errorf("potion_heal must not be negative, got %d", c.PotionHeal))
	}
	if c.Hero.Name == "" {
		errs = append(errs, errors.New("hero.name is required"))
	}
	if c.Hero.HP <= 0 {
		errs = append(errs, fmt.Errorf("hero.hp must be positive, got %d", c.Hero.HP))
	}
	for item, n := range c.Hero.Inventory {
		if !knownItems[item] {
			errs = append(errs, fmt.Errorf("hero.inventory.%s: unknown item (want potion or bomb)", item))
		}
		if n < 0 {
			errs = append(errs, fmt.Errorf("hero.inventory.%s must not be negative, got %d", item, n))
		}
	}
	if c.Monsters.Count <= 0 {
		errs = append(errs, fmt.Errorf("monsters.count must be positive, got %d", c.Monsters.Count))
	}
	if c.Monsters.NamePrefix == "" {
		errs = append(errs, errors.New("monsters.name_prefix is required"))
	}
	if c.Monsters.HP <= 0 {
		errs = append(errs, fmt.Errorf("monsters.hp must be positive, got %d", c.Monsters.HP))
	}
	return errors.Join(errs...)
}
