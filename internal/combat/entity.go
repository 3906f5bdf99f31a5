package combat

import (
	"errors"
	"fmt"
	"log/slog"
)

var (
	ErrAttackOnDeadTarget = errors.New("cannot attack a dead target")
	ErrEmptyInventory     = errors.New("inventory empty")
	ErrNoInventory        = errors.New("combatant carries no inventory")
)

// Entity is any combatant. Monsters have a nil Inventory; the hero has one.
type Entity struct {
	Name      string
	HP        int
	Attack    int
	Defense   int
	Inventory *Inventory

	log *slog.Logger
}

func NewMonster(name string, hp, atk, def int) *Entity {
	return &Entity{Name: name, HP: hp, Attack: atk, Defense: def}
}

// NewHero builds an inventory-carrying combatant. A nil inventory becomes
// an empty one.
func NewHero(name string, hp, atk, def int, inv *Inventory) *Entity {
	if inv == nil {
		inv = &Inventory{counts: map[Item]int{}}
	}
	return &Entity{Name: name, HP: hp, Attack: atk, Defense: def, Inventory: inv}
}

func (e *Entity) IsAlive() bool      { return e.HP > 0 }
func (e *Entity) HasInventory() bool { return e.Inventory != nil }

func (e *Entity) logger() *slog.Logger {
	if e.log != nil {
		return e.log
	}
	return slog.Default()
}

// TakeDamage applies mitigated damage and returns the amount dealt. HP may
// go below zero. A negative amount is logged and ignored.
func (e *Entity) TakeDamage(amount int) int {
	if amount < 0 {
		e.logger().Warn("negative damage ignored", "target", e.Name, "amount", amount)
		return 0
	}
	dmg := Mitigate(amount, e.Defense)
	e.HP -= dmg
	return dmg
}

// Strike is the narrated result of one attack.
type Strike struct {
	Attacker string `json:"attacker"`
	Target   string `json:"target"`
	Roll     int    `json:"roll"`
	Crit     bool   `json:"crit"`
	Damage   int    `json:"damage"`
	TargetHP int    `json:"target_hp"`
}

func (e *Entity) AttackTarget(target *Entity, r *Resolver) (Strike, error) {
	if !target.IsAlive() {
		return Strike{}, fmt.Errorf("%s -> %s: %w", e.Name, target.Name, ErrAttackOnDeadTarget)
	}
	roll := r.Roll()
	base, crit := ResolveAttack(e.Attack, roll, r.CritChance)
	dmg := target.TakeDamage(base)
	return Strike{
		Attacker: e.Name,
		Target:   target.Name,
		Roll:     roll,
		Crit:     crit,
		Damage:   dmg,
		TargetHP: target.HP,
	}, nil
}

// UsePotion drinks one potion and returns the new HP. HP has no ceiling.
func (e *Entity) UsePotion(heal int) (int, error) {
	if !e.HasInventory() {
		return e.HP, fmt.Errorf("%s: %w", e.Name, ErrNoInventory)
	}
	if err := e.Inventory.Consume(ItemPotion); err != nil {
		return e.HP, fmt.Errorf("%s: %w", e.Name, err)
	}
	e.HP += heal
	return e.HP, nil
}
