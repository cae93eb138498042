// Package battle resolves turn-based card fights between the player and one foe.
package battle

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"brainrot-spire/internal/deck"
	"brainrot-spire/internal/inventory"
	"brainrot-spire/internal/player"
)

var (
	ErrBattleOver      = errors.New("battle is over")
	ErrNotPlayerTurn   = errors.New("not the player's turn")
	ErrNoCard          = errors.New("no card at that hand index")
	ErrNotEnoughEnergy = errors.New("not enough energy")
)

// Outcome is the state of a battle after an action resolves.
type Outcome uint8

const (
	Ongoing Outcome = iota
	Victory
	Defeat
)

// LogType classifies a battle log entry.
type LogType string

const (
	LogDamage LogType = "damage"
	LogBlock  LogType = "block"
	LogHeal   LogType = "heal"
	LogEffect LogType = "effect"
	LogCard   LogType = "card"
)

// Party names the source or target of a log entry.
type Party string

const (
	PartyPlayer Party = "player"
	PartyEnemy  Party = "enemy"
	PartySystem Party = "system"
)

// LogEntry is one line of the append-only battle log.
type LogEntry struct {
	ID        uuid.UUID `json:"id"`
	Type      LogType   `json:"type"`
	Source    Party     `json:"source"`
	Target    Party     `json:"target"`
	Value     int       `json:"value"`
	Message   string    `json:"message"`
	Timestamp int64     `json:"timestamp"` // unix ms
}

// Battle is a fight in progress.
type Battle struct {
	Enemy       Foe        `json:"enemy"`
	Turn        int        `json:"turn"`
	PlayerTurn  bool       `json:"player_turn"`
	Log         []LogEntry `json:"log"`
	CardsPlayed int        `json:"cards_played"` // this turn
}

// Clone returns a deep copy of b.
func (b *Battle) Clone() *Battle {
	if b == nil {
		return nil
	}
	c := *b
	c.Enemy = b.Enemy.Clone()
	c.Log = append([]LogEntry(nil), b.Log...)
	return &c
}

// Rules are the tunable numbers the resolver needs.
type Rules struct {
	HandSize          int
	EnemyStrengthGain int
}

// Resolver applies battle actions. It is not safe for concurrent use.
type Resolver struct {
	rules Rules
	rng   *rand.Rand
	now   func() time.Time
}

// NewResolver returns a resolver drawing randomness from rng. A nil now uses time.Now.
func NewResolver(rules Rules, rng *rand.Rand, now func() time.Time) *Resolver {
	if now == nil {
		now = time.Now
	}
	return &Resolver{rules: rules, rng: rng, now: now}
}

func (r *Resolver) log(b *Battle, typ LogType, src, dst Party, value int, format string, args ...any) {
	if b == nil {
		return
	}
	b.Log = append(b.Log, LogEntry{
		ID:        uuid.Must(uuid.NewRandomFromReader(r.rng)),
		Type:      typ,
		Source:    src,
		Target:    dst,
		Value:     value,
		Message:   fmt.Sprintf(format, args...),
		Timestamp: r.now().UnixMilli(),
	})
}

func (r *Resolver) turnMarker(b *Battle, side string) {
	r.log(b, LogEffect, PartySystem, PartySystem, 0, "--- Turn %d - %s Turn ---", b.Turn, side)
}

// Start begins a fight against a copy of foe. The player's battle stats are
// reset, battle-start perks are applied and the opening hand is drawn.
func (r *Resolver) Start(p *player.Player, foe Foe) *Battle {
	enemy := foe.Clone()
	enemy.CurrentHealth = enemy.Health
	enemy.Strength = 0
	enemy.Block = 0
	enemy.RollIntent(r.rng)

	b := &Battle{Enemy: enemy, Turn: 1, PlayerTurn: true, Log: []LogEntry{}}

	p.Energy = p.MaxEnergy
	p.Strength = 0
	p.Block = 0
	p.Reset(r.rng, p.Deck)

	r.turnMarker(b, "Player")
	for _, perk := range p.Perks {
		switch perk.Effect.Kind {
		case inventory.PerkBattleBlock:
			p.Block += perk.Effect.Amount
			r.log(b, LogBlock, PartyPlayer, PartyPlayer, perk.Effect.Amount, "%s grants %d block", perk.Name, perk.Effect.Amount)
		case inventory.PerkBattleStrength:
			p.Strength += perk.Effect.Amount
			r.log(b, LogEffect, PartyPlayer, PartyPlayer, perk.Effect.Amount, "%s grants %d strength", perk.Name, perk.Effect.Amount)
		}
	}
	r.DrawHand(p)
	return b
}

// DrawHand draws the hand size plus any draw-perk bonus.
func (r *Resolver) DrawHand(p *player.Player) int {
	return p.DrawCards(r.rng, r.rules.HandSize+inventory.Sum(p.Perks, inventory.PerkDraw))
}

// Cost returns what playing card would cost right now.
func (r *Resolver) Cost(p *player.Player, b *Battle, card deck.Card) int {
	if b.CardsPlayed == 0 && inventory.Has(p.Perks, inventory.PerkFirstCardFree) {
		return 0
	}
	return card.Energy
}

func (r *Resolver) over(p *player.Player, b *Battle) bool {
	return b.Enemy.Defeated() || p.Dead()
}

// PlayCard plays the hand card at index. Effects resolve in a fixed order:
// damage, block, strength, heal, energy gain, draw.
func (r *Resolver) PlayCard(p *player.Player, b *Battle, index int) (Outcome, error) {
	if r.over(p, b) {
		return r.outcome(p, b), ErrBattleOver
	}
	if !b.PlayerTurn {
		return Ongoing, ErrNotPlayerTurn
	}
	if index < 0 || index >= len(p.Hand) {
		return Ongoing, ErrNoCard
	}
	cost := r.Cost(p, b, p.Hand[index])
	if cost > p.Energy {
		return Ongoing, ErrNotEnoughEnergy
	}

	card, _ := p.Take(index)
	p.Energy -= cost
	p.Discard = append(p.Discard, card)
	b.CardsPlayed++
	r.log(b, LogCard, PartyPlayer, PartyPlayer, 0, "Played %s", card.Name)

	if card.Damage > 0 {
		r.strike(p, b, card)
	}
	if card.Block > 0 {
		p.Block += card.Block
		r.log(b, LogBlock, PartyPlayer, PartyPlayer, card.Block, "Gained %d block", card.Block)
	}
	if card.Strength > 0 {
		p.Strength += card.Strength
		r.log(b, LogEffect, PartyPlayer, PartyPlayer, card.Strength, "Gained %d strength", card.Strength)
	}
	if card.Heal > 0 {
		if healed := p.Heal(card.Heal); healed > 0 {
			r.log(b, LogHeal, PartyPlayer, PartyPlayer, healed, "Healed for %d HP", healed)
		}
	}
	if card.EnergyGain > 0 {
		before := p.Energy
		p.Energy = min(p.MaxEnergy, p.Energy+card.EnergyGain)
		if gained := p.Energy - before; gained > 0 {
			r.log(b, LogEffect, PartyPlayer, PartyPlayer, gained, "Gained %d energy", gained)
		}
	}
	if card.Draw > 0 {
		if drew := p.DrawCards(r.rng, card.Draw); drew > 0 {
			r.log(b, LogEffect, PartyPlayer, PartyPlayer, drew, "Drew %d %s", drew, plural(drew, "card"))
		}
	}
	return r.outcome(p, b), nil
}

// strike applies card damage plus strength once per hit. Strength is not
// consumed, so every hit scales with it.
func (r *Resolver) strike(p *player.Player, b *Battle, card deck.Card) {
	total := card.Damage + p.Strength
	hits := card.HitCount()
	e := &b.Enemy
	for i := 0; i < hits; i++ {
		if hits > 1 {
			r.log(b, LogDamage, PartyPlayer, PartyEnemy, total, "Dealing %d damage (hit %d/%d)", total, i+1, hits)
		} else {
			r.log(b, LogDamage, PartyPlayer, PartyEnemy, total, "Dealing %d damage", total)
		}
		blocked := min(e.Block, total)
		var overflow int
		e.Block, overflow = Absorb(e.Block, total)
		if blocked > 0 {
			r.log(b, LogBlock, PartyEnemy, PartyEnemy, blocked, "%s blocked %d damage", e.Name, blocked)
		}
		if overflow > 0 {
			e.CurrentHealth = max(0, e.CurrentHealth-overflow)
			r.log(b, LogDamage, PartyPlayer, PartyEnemy, overflow, "Dealt %d damage to %s", overflow, e.Name)
		}
	}
}

// EndTurn hands control to the foe, resolves exactly one enemy action and,
// if the player survives, starts the next player turn.
func (r *Resolver) EndTurn(p *player.Player, b *Battle) (Outcome, error) {
	if r.over(p, b) {
		return r.outcome(p, b), ErrBattleOver
	}
	if !b.PlayerTurn {
		return Ongoing, ErrNotPlayerTurn
	}

	b.PlayerTurn = false
	r.turnMarker(b, "Enemy")
	r.enemyAct(p, b)

	if curse := inventory.Sum(p.Perks, inventory.PerkTurnDamage); curse > 0 && !p.Dead() {
		p.Damage(curse)
		r.log(b, LogDamage, PartySystem, PartyPlayer, curse, "A curse deals %d damage", curse)
	}
	if p.Dead() {
		return Defeat, nil
	}

	b.Turn++
	p.Energy = p.MaxEnergy
	p.Block = 0
	p.DiscardHand()
	b.PlayerTurn = true
	b.CardsPlayed = 0
	r.turnMarker(b, "Player")
	r.DrawHand(p)
	return Ongoing, nil
}

func (r *Resolver) enemyAct(p *player.Player, b *Battle) {
	e := &b.Enemy
	if e.Intent == nil {
		e.RollIntent(r.rng)
	}
	if in := e.Intent; in != nil {
		r.log(b, LogEffect, PartyEnemy, PartyEnemy, 0, "%s uses %s", e.Name, in.Name)
		if in.Damage > 0 {
			dmg := in.Damage + e.Strength
			r.log(b, LogDamage, PartyEnemy, PartyPlayer, dmg, "%s attacks for %d damage", e.Name, dmg)
			blocked := min(max(p.Block, 0), dmg)
			var overflow int
			p.Block, overflow = Absorb(p.Block, dmg)
			if blocked > 0 {
				r.log(b, LogBlock, PartyPlayer, PartyPlayer, blocked, "Blocked %d damage", blocked)
			}
			if overflow > 0 {
				p.Damage(overflow)
				r.log(b, LogDamage, PartyEnemy, PartyPlayer, overflow, "Took %d damage", overflow)
			}
		}
		if in.Effect == EffectStrength {
			gain := r.rules.EnemyStrengthGain
			e.Strength += gain
			r.log(b, LogEffect, PartyEnemy, PartyEnemy, gain, "%s gained %d strength", e.Name, gain)
		}
	}
	e.RollIntent(r.rng)
}

// ApplyItem applies an item's effect to the player. b may be nil outside a
// fight, in which case nothing is logged.
func (r *Resolver) ApplyItem(p *player.Player, b *Battle, it inventory.Item) {
	amt := it.Effect.Amount
	switch it.Effect.Kind {
	case inventory.EffectHeal:
		healed := p.Heal(amt)
		r.log(b, LogHeal, PartyPlayer, PartyPlayer, healed, "Used %s to heal %d HP", it.Name, healed)
	case inventory.EffectEnergy:
		p.Energy += amt
		r.log(b, LogEffect, PartyPlayer, PartyPlayer, amt, "Used %s to gain %d energy", it.Name, amt)
	case inventory.EffectStrength:
		p.Strength += amt
		r.log(b, LogEffect, PartyPlayer, PartyPlayer, amt, "Used %s to gain %d strength", it.Name, amt)
	case inventory.EffectBlock:
		p.Block += amt
		r.log(b, LogBlock, PartyPlayer, PartyPlayer, amt, "Used %s to gain %d block", it.Name, amt)
	default:
		r.log(b, LogEffect, PartyPlayer, PartyPlayer, 0, "Used %s", it.Name)
	}
}

func (r *Resolver) outcome(p *player.Player, b *Battle) Outcome {
	switch {
	case p.Dead():
		return Defeat
	case b.Enemy.Defeated():
		return Victory
	}
	return Ongoing
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
