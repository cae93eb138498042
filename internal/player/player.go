// Package player holds the run-long player aggregate.
package player

import (
	"math/rand"

	"brainrot-spire/internal/deck"
	"brainrot-spire/internal/inventory"
)

// Player is everything the hero carries between nodes. The embedded piles are
// only meaningful during a battle.
type Player struct {
	Health    int `json:"health"`
	MaxHealth int `json:"max_health"`
	Energy    int `json:"energy"`
	MaxEnergy int `json:"max_energy"`
	Gold      int `json:"gold"`
	Strength  int `json:"strength"`
	Block     int `json:"block"`

	Equipment []deck.Equipment     `json:"equipment"`
	Equipped  map[deck.Slot]string `json:"equipped"`
	Items     []inventory.Item     `json:"items"`
	Perks     []inventory.Perk     `json:"perks"`
	Deck      []deck.Card          `json:"deck"`
	deck.Piles
}

// New builds a fresh player with the given gear equipped in its own slots.
func New(rng *rand.Rand, health, energy, gold int, gear []deck.Equipment, items []inventory.Item) *Player {
	p := &Player{
		Health:    health,
		MaxHealth: health,
		Energy:    energy,
		MaxEnergy: energy,
		Gold:      gold,
		Equipment: deck.CloneEquipment(gear),
		Equipped:  make(map[deck.Slot]string),
		Items:     []inventory.Item{},
		Perks:     []inventory.Perk{},
	}
	for _, eq := range gear {
		if _, taken := p.Equipped[eq.Slot]; !taken {
			p.Equipped[eq.Slot] = eq.ID
		}
	}
	for _, it := range items {
		q := it.Quantity
		if q < 1 {
			q = 1
		}
		p.Items = inventory.Add(p.Items, it, q)
	}
	p.RebuildDeck(rng)
	return p
}

// RebuildDeck recomposes the deck from the equipped slots and resets the piles.
func (p *Player) RebuildDeck(rng *rand.Rand) {
	p.Deck = deck.Compose(p.Equipment, p.Equipped)
	p.Reset(rng, p.Deck)
}

// Owns reports whether equipment with the given id is in the owned pool.
func (p *Player) Owns(id string) bool {
	_, ok := deck.Find(p.Equipment, id)
	return ok
}

// Acquire adds eq to the owned pool. It is a no-op if the id is already owned.
func (p *Player) Acquire(eq deck.Equipment) bool {
	if p.Owns(eq.ID) {
		return false
	}
	p.Equipment = append(p.Equipment, eq.Clone())
	return true
}

// Equip puts owned equipment into slot and rebuilds the deck. It fails when the
// id is not owned or belongs to a different slot.
func (p *Player) Equip(rng *rand.Rand, id string, slot deck.Slot) bool {
	eq, ok := deck.Find(p.Equipment, id)
	if !ok || eq.Slot != slot {
		return false
	}
	p.Equipped[slot] = id
	p.RebuildDeck(rng)
	return true
}

// Heal restores up to amount health without exceeding MaxHealth and returns
// how much was actually restored.
func (p *Player) Heal(amount int) int {
	before := p.Health
	p.Health += amount
	if p.Health > p.MaxHealth {
		p.Health = p.MaxHealth
	}
	if p.Health < before {
		p.Health = before
	}
	return p.Health - before
}

// Damage removes amount health, flooring at zero.
func (p *Player) Damage(amount int) {
	p.Health -= amount
	if p.Health < 0 {
		p.Health = 0
	}
}

// Dead reports whether health has reached zero.
func (p *Player) Dead() bool { return p.Health <= 0 }

// Clone returns a deep copy of p.
func (p *Player) Clone() *Player {
	if p == nil {
		return nil
	}
	c := *p
	c.Equipment = deck.CloneEquipment(p.Equipment)
	c.Equipped = make(map[deck.Slot]string, len(p.Equipped))
	for k, v := range p.Equipped {
		c.Equipped[k] = v
	}
	c.Items = append([]inventory.Item(nil), p.Items...)
	c.Perks = append([]inventory.Perk(nil), p.Perks...)
	c.Deck = deck.CloneCards(p.Deck)
	c.Piles = p.Piles.Clone()
	return &c
}
