package combat

import (
	"fmt"
	"maps"
	"slices"
)

type Item string

const (
	ItemPotion Item = "potion"
	// ItemBomb is carried but no action spends it yet.
	ItemBomb Item = "bomb"
)

// KnownItem reports whether item is one the hero can carry.
func KnownItem(item Item) bool {
	return item == ItemPotion || item == ItemBomb
}

type Inventory struct {
	counts map[Item]int
}

func NewInventory(counts map[Item]int) (*Inventory, error) {
	inv := &Inventory{counts: make(map[Item]int, len(counts))}
	for item, n := range counts {
		if !KnownItem(item) {
			return nil, fmt.Errorf("inventory: unknown item %q", item)
		}
		if n < 0 {
			return nil, fmt.Errorf("inventory %s: negative count %d", item, n)
		}
		inv.counts[item] = n
	}
	return inv, nil
}

// DefaultInventory is the stock hero kit: two potions and a bomb.
func DefaultInventory() *Inventory {
	return &Inventory{counts: map[Item]int{ItemPotion: 2, ItemBomb: 1}}
}

func (inv *Inventory) Count(item Item) int { return inv.counts[item] }

// Consume takes one item. It fails without side effects when none are left.
func (inv *Inventory) Consume(item Item) error {
	n := inv.counts[item]
	if n <= 0 {
		return fmt.Errorf("no %s left: %w", item, ErrEmptyInventory)
	}
	inv.counts[item] = n - 1
	return nil
}

func (inv *Inventory) Snapshot() map[Item]int {
	return maps.Clone(inv.counts)
}

func (inv *Inventory) Items() []Item {
	return slices.Sorted(maps.Keys(inv.counts))
}
