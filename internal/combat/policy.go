package combat

type ActionKind int

const (
	ActAttack ActionKind = iota
	ActPotion
)

type Action struct {
	Kind   ActionKind
	Target *Entity
}

// HeroPolicy picks the hero's action for a round. living is never empty.
type HeroPolicy interface {
	Decide(hero *Entity, living []*Entity) Action
}

// PotionFirst drinks while HP is below Threshold and otherwise hits the
// first living monster.
type PotionFirst struct {
	Threshold int
}

func (p PotionFirst) Decide(hero *Entity, living []*Entity) Action {
	if hero.HP < p.Threshold {
		return Action{Kind: ActPotion}
	}
	return Action{Kind: ActAttack, Target: living[0]}
}
