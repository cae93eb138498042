package battle

import (
	"math/rand"

	"brainrot-spire/internal/inventory"
)

// Kind distinguishes regular enemies from bosses.
type Kind string

const (
	KindEnemy Kind = "enemy"
	KindBoss  Kind = "boss"
)

// EffectStrength is the only intent effect the resolver applies.
const EffectStrength = "strength"

// Move is one entry of a foe's repertoire. Bosses call them abilities.
type Move struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Damage      int     `json:"damage,omitempty"`
	Hits        int     `json:"hits,omitempty"` // descriptive; damage is applied once
	Effect      string  `json:"effect,omitempty"`
	Value       int     `json:"value,omitempty"`
	Probability float64 `json:"probability,omitempty"` // descriptive; intents are rolled uniformly
}

// Intent is the move a foe has announced for its next turn.
type Intent struct {
	Name   string `json:"name"`
	Damage int    `json:"damage,omitempty"`
	Effect string `json:"effect,omitempty"`
}

// Foe is an enemy or boss. Catalog entries are templates; a battle works on
// its own copy.
type Foe struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	Kind          Kind            `json:"kind"`
	Health        int             `json:"health"`
	CurrentHealth int             `json:"current_health"`
	Strength      int             `json:"strength"`
	Block         int             `json:"block"`
	Moves         []Move          `json:"moves"`
	Intent        *Intent         `json:"intent,omitempty"`
	Reward        *inventory.Perk `json:"reward,omitempty"`
}

// Clone returns a deep copy of f.
func (f Foe) Clone() Foe {
	f.Moves = append([]Move(nil), f.Moves...)
	if f.Intent != nil {
		in := *f.Intent
		f.Intent = &in
	}
	if f.Reward != nil {
		r := *f.Reward
		f.Reward = &r
	}
	return f
}

// RollIntent samples the next intent uniformly from the foe's moves.
func (f *Foe) RollIntent(rng *rand.Rand) {
	if len(f.Moves) == 0 {
		f.Intent = nil
		return
	}
	m := f.Moves[rng.Intn(len(f.Moves))]
	f.Intent = &Intent{Name: m.Name, Damage: m.Damage, Effect: m.Effect}
}

// Defeated reports whether the foe has no health left.
func (f *Foe) Defeated() bool { return f.CurrentHealth <= 0 }

// Absorb runs dmg through block. The returned block and overflow are never negative.
func Absorb(block, dmg int) (newBlock, overflow int) {
	if block < 0 {
		block = 0
	}
	if dmg < 0 {
		dmg = 0
	}
	if block >= dmg {
		return block - dmg, 0
	}
	return 0, dmg - block
}
