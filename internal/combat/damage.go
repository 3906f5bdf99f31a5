package combat

// CritRollSides is the number of faces on the crit die. Draws land in
// [0, 100] inclusive, so a threshold of 20 crits on 20 of 101 outcomes.
const CritRollSides = 101

// Roller is the random source behind critical hits. *rand.Rand satisfies it.
type Roller interface {
	Intn(n int) int
}

// ResolveAttack returns the pre-mitigation damage for one swing.
func ResolveAttack(attackPower, roll, critChance int) (base int, crit bool) {
	crit = roll < critChance
	base = attackPower
	if crit {
		base *= 2
	}
	return base, crit
}

// Mitigate applies defense. Every landed hit deals at least 1.
func Mitigate(amount, defense int) int {
	return max(1, amount-defense)
}

// Resolver binds a random source to a crit threshold.
type Resolver struct {
	Rng        Roller
	CritChance int
}

func NewResolver(rng Roller, critChance int) *Resolver {
	return &Resolver{Rng: rng, CritChance: critChance}
}

func (r *Resolver) Roll() int {
	return r.Rng.Intn(CritRollSides)
}
