// Package inventory holds consumable items and permanent perks.
package inventory

// EffectKind identifies what an item does when used.
type EffectKind string

const (
	EffectHeal     EffectKind = "heal"
	EffectEnergy   EffectKind = "energy"
	EffectStrength EffectKind = "strength"
	EffectBlock    EffectKind = "block"
	EffectCleanse  EffectKind = "cleanse" // no debuffs exist yet, so this does nothing
)

// Effect is a structured item effect.
type Effect struct {
	Kind   EffectKind `json:"kind"`
	Amount int        `json:"amount,omitempty"`
}

// Item is a stack of consumables in the player's bag.
type Item struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	Effect         Effect `json:"effect"`
	UsableInBattle bool   `json:"usable_in_battle"`
	Quantity       int    `json:"quantity"`
}

// PerkKind identifies a passive effect.
type PerkKind string

const (
	PerkDraw           PerkKind = "draw"            // extra cards per hand
	PerkBattleBlock    PerkKind = "battle_block"    // block at battle start
	PerkBattleStrength PerkKind = "battle_strength" // strength at battle start
	PerkTurnDamage     PerkKind = "turn_damage"     // damage taken after each enemy turn
	PerkFirstCardFree  PerkKind = "first_card_free" // first card each turn costs 0
	PerkDodge          PerkKind = "dodge"
	PerkEcho           PerkKind = "echo"
)

// PerkEffect is a structured perk effect.
type PerkEffect struct {
	Kind   PerkKind `json:"kind"`
	Amount int      `json:"amount,omitempty"`
}

// Perk is a permanent passive granted by bosses and events.
type Perk struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Summary     string     `json:"summary"` // player-facing effect text
	Effect      PerkEffect `json:"effect"`
}

// Add puts quantity copies of item into items, stacking by id.
func Add(items []Item, item Item, quantity int) []Item {
	for i := range items {
		if items[i].ID == item.ID {
			items[i].Quantity += quantity
			return items
		}
	}
	item.Quantity = quantity
	return append(items, item)
}

// Consume removes one unit of the item with the given id, dropping the stack
// once it is empty. It reports the item that was consumed.
func Consume(items []Item, id string) ([]Item, Item, bool) {
	for i := range items {
		if items[i].ID != id || items[i].Quantity <= 0 {
			continue
		}
		used := items[i]
		items[i].Quantity--
		if items[i].Quantity == 0 {
			items = append(items[:i], items[i+1:]...)
		}
		return items, used, true
	}
	return items, Item{}, false
}

// Find returns the item with the given id.
func Find(items []Item, id string) (Item, bool) {
	for _, it := range items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// Sum totals the amounts of every perk of the given kind.
func Sum(perks []Perk, kind PerkKind) int {
	n := 0
	for _, p := range perks {
		if p.Effect.Kind == kind {
			n += p.Effect.Amount
		}
	}
	return n
}

// Has reports whether any perk of the given kind is held.
func Has(perks []Perk, kind PerkKind) bool {
	for _, p := range perks {
		if p.Effect.Kind == kind {
			return true
		}
	}
	return false
}
