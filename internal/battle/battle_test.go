package battle

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"brainrot-spire/internal/deck"
	"brainrot-spire/internal/inventory"
	"brainrot-spire/internal/player"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = func() time.Time { return time.Unix(1700000000, 0) }

func newResolver(seed int64) *Resolver {
	return NewResolver(Rules{HandSize: 5, EnemyStrengthGain: 2}, rand.New(rand.NewSource(seed)), fixedNow)
}

func goblin() Foe {
	return Foe{
		ID: "meme_goblin", Name: "Meme Goblin", Kind: KindEnemy, Health: 30,
		Moves: []Move{{Name: "Scratch", Damage: 5}, {Name: "Bite", Damage: 8}},
	}
}

// fight builds a player holding exactly hand and a battle against foe on turn 1.
func fight(foe Foe, hand ...deck.Card) (*player.Player, *Battle) {
	p := &player.Player{Health: 80, MaxHealth: 80, Energy: 3, MaxEnergy: 3, Equipped: map[deck.Slot]string{}}
	p.Hand = hand
	foe.CurrentHealth = foe.Health
	b := &Battle{Enemy: foe, Turn: 1, PlayerTurn: true}
	return p, b
}

func TestAbsorb(t *testing.T) {
	tests := []struct {
		block, dmg             int
		wantBlock, wantOverflw int
	}{
		{0, 6, 0, 6},
		{5, 8, 0, 3},
		{10, 4, 6, 0},
		{5, 5, 0, 0},
		{-3, 4, 0, 4},
		{3, -1, 3, 0},
	}
	for _, tt := range tests {
		nb, of := Absorb(tt.block, tt.dmg)
		if nb != tt.wantBlock || of != tt.wantOverflw {
			t.Errorf("Absorb(%d, %d) = (%d, %d); want (%d, %d)", tt.block, tt.dmg, nb, of, tt.wantBlock, tt.wantOverflw)
		}
		if nb < 0 || of < 0 {
			t.Errorf("Absorb(%d, %d) returned a negative value", tt.block, tt.dmg)
		}
	}
}

func TestPlayCardBasicAttack(t *testing.T) {
	r := newResolver(1)
	punch := deck.Card{ID: "punch", Name: "Punch", Damage: 6, Energy: 1}
	p, b := fight(goblin(), punch)

	out, err := r.PlayCard(p, b, 0)
	require.NoError(t, err)
	assert.Equal(t, Ongoing, out)
	assert.Equal(t, 24, b.Enemy.CurrentHealth)
	assert.Equal(t, 2, p.Energy)
	assert.Empty(t, p.Hand)
	assert.Equal(t, []deck.Card{punch}, p.Discard)
}

func TestPlayCardBlockAbsorption(t *testing.T) {
	r := newResolver(1)
	foe := goblin()
	foe.Block = 5
	p, b := fight(foe, deck.Card{Name: "Bash", Damage: 8, Energy: 1})
	b.Enemy.Block = 5

	_, err := r.PlayCard(p, b, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, b.Enemy.Block)
	assert.Equal(t, 27, b.Enemy.CurrentHealth)
}

func TestPlayCardMultiHitScalesWithStrength(t *testing.T) {
	r := newResolver(1)
	p, b := fight(goblin(), deck.Card{Name: "Triple", Damage: 5, Hits: 3, Energy: 1})
	p.Strength = 2

	_, err := r.PlayCard(p, b, 0)
	require.NoError(t, err)
	assert.Equal(t, 9, b.Enemy.CurrentHealth)
	assert.Equal(t, 2, p.Strength, "strength is not consumed")
}

func TestPlayCardLethal(t *testing.T) {
	r := newResolver(1)
	p, b := fight(goblin(), deck.Card{Name: "Big", Damage: 10, Energy: 1}, deck.Card{Name: "Punch", Damage: 6, Energy: 1})
	b.Enemy.CurrentHealth = 5

	out, err := r.PlayCard(p, b, 0)
	require.NoError(t, err)
	assert.Equal(t, Victory, out)
	assert.Equal(t, 0, b.Enemy.CurrentHealth)

	_, err = r.PlayCard(p, b, 0)
	assert.True(t, errors.Is(err, ErrBattleOver))
	_, err = r.EndTurn(p, b)
	assert.True(t, errors.Is(err, ErrBattleOver))
}

func TestPlayCardGuards(t *testing.T) {
	r := newResolver(1)
	expensive := deck.Card{Name: "Snap", Damage: 20, Energy: 4}

	p, b := fight(goblin(), expensive)
	_, err := r.PlayCard(p, b, 0)
	assert.ErrorIs(t, err, ErrNotEnoughEnergy)
	assert.Len(t, p.Hand, 1)
	assert.Equal(t, 3, p.Energy)

	_, err = r.PlayCard(p, b, 3)
	assert.ErrorIs(t, err, ErrNoCard)

	b.PlayerTurn = false
	_, err = r.PlayCard(p, b, 0)
	assert.ErrorIs(t, err, ErrNotPlayerTurn)
	assert.Empty(t, b.Log)
}

func TestPlayCardEffectOrderAndLog(t *testing.T) {
	r := newResolver(1)
	card := deck.Card{Name: "Combo", Damage: 2, Block: 3, Strength: 1, Heal: 4, EnergyGain: 1, Draw: 1, Energy: 1}
	p, b := fight(goblin(), card)
	p.Health = 70
	p.Draw = []deck.Card{{Name: "Punch"}}

	_, err := r.PlayCard(p, b, 0)
	require.NoError(t, err)

	var types []LogType
	for _, e := range b.Log {
		types = append(types, e.Type)
	}
	assert.Equal(t, []LogType{LogCard, LogDamage, LogDamage, LogBlock, LogEffect, LogHeal, LogEffect, LogEffect}, types)
	assert.Equal(t, 3, p.Block)
	assert.Equal(t, 1, p.Strength)
	assert.Equal(t, 74, p.Health)
	assert.Equal(t, 3, p.Energy, "energy gain is capped at max")
	assert.Len(t, p.Hand, 1)
	assert.Equal(t, 28, b.Enemy.CurrentHealth, "strength gained by the card applies after its damage")
}

func TestFirstCardFreePerk(t *testing.T) {
	r := newResolver(1)
	c := deck.Card{Name: "Slash", Damage: 9, Energy: 2}
	p, b := fight(goblin(), c, c)
	p.Perks = []inventory.Perk{{Effect: inventory.PerkEffect{Kind: inventory.PerkFirstCardFree}}}

	_, err := r.PlayCard(p, b, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, p.Energy)
	_, err = r.PlayCard(p, b, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, p.Energy)
}

func TestEndTurnDefeat(t *testing.T) {
	r := newResolver(1)
	p, b := fight(goblin())
	p.Health = 3
	b.Enemy.Intent = &Intent{Name: "Smash", Damage: 10}

	out, err := r.EndTurn(p, b)
	require.NoError(t, err)
	assert.Equal(t, Defeat, out)
	assert.Equal(t, 0, p.Health)
	assert.False(t, b.PlayerTurn)
	assert.Equal(t, 1, b.Turn)
}

func TestEndTurnAdvances(t *testing.T) {
	r := newResolver(1)
	hand := []deck.Card{{Name: "a"}, {Name: "b"}}
	p, b := fight(goblin(), hand...)
	p.Draw = make([]deck.Card, 10)
	p.Energy = 0
	p.Block = 4
	b.Enemy.Intent = &Intent{Name: "Scratch", Damage: 5}

	out, err := r.EndTurn(p, b)
	require.NoError(t, err)
	assert.Equal(t, Ongoing, out)
	assert.Equal(t, 79, p.Health, "block absorbs 4 of 5")
	assert.Equal(t, 0, p.Block)
	assert.Equal(t, 2, b.Turn)
	assert.True(t, b.PlayerTurn)
	assert.Equal(t, 3, p.Energy)
	assert.Len(t, p.Hand, 5)
	assert.Len(t, p.Discard, 2)
	require.NotNil(t, b.Enemy.Intent, "a new intent is rolled")
	assert.Equal(t, "--- Turn 2 - Player Turn ---", b.Log[len(b.Log)-1].Message)

	_, err = r.EndTurn(p, b)
	require.NoError(t, err)
	b.PlayerTurn = false
	_, err = r.EndTurn(p, b)
	assert.ErrorIs(t, err, ErrNotPlayerTurn)
}

func TestEnemyStrengthEffect(t *testing.T) {
	r := newResolver(1)
	doge := Foe{ID: "doge", Name: "Feral Doge", Health: 40, Moves: []Move{{Name: "Wow Howl", Effect: EffectStrength, Value: 2}}}
	p, b := fight(doge)
	b.Enemy.Intent = &Intent{Name: "Wow Howl", Effect: EffectStrength}

	_, err := r.EndTurn(p, b)
	require.NoError(t, err)
	assert.Equal(t, 2, b.Enemy.Strength)
	assert.Equal(t, 80, p.Health)

	b.Enemy.Intent = &Intent{Name: "Much Bite", Damage: 7}
	_, err = r.EndTurn(p, b)
	require.NoError(t, err)
	assert.Equal(t, 71, p.Health, "enemy strength adds to intent damage")
}

func TestUnknownIntentEffectIsInert(t *testing.T) {
	r := newResolver(1)
	p, b := fight(goblin())
	b.Enemy.Intent = &Intent{Name: "Troll Logic", Effect: "confusion"}

	_, err := r.EndTurn(p, b)
	require.NoError(t, err)
	assert.Equal(t, 80, p.Health)
	assert.Equal(t, 0, b.Enemy.Strength)
}

func TestCursePerkDamagesAfterEnemyTurn(t *testing.T) {
	r := newResolver(1)
	p, b := fight(goblin())
	p.Perks = []inventory.Perk{{Name: "Meme Curse", Effect: inventory.PerkEffect{Kind: inventory.PerkTurnDamage, Amount: 3}}}
	b.Enemy.Intent = &Intent{Name: "Nothing"}

	_, err := r.EndTurn(p, b)
	require.NoError(t, err)
	assert.Equal(t, 77, p.Health)
}

func TestStartResetsAndCopiesFoe(t *testing.T) {
	r := newResolver(5)
	cards := make([]deck.Card, 12)
	p := &player.Player{Health: 80, MaxHealth: 80, MaxEnergy: 3, Strength: 7, Block: 9, Deck: cards}
	p.Perks = []inventory.Perk{
		{Name: "Aerial Advantage", Effect: inventory.PerkEffect{Kind: inventory.PerkBattleBlock, Amount: 5}},
		{Name: "Tralalero Essence", Effect: inventory.PerkEffect{Kind: inventory.PerkDraw, Amount: 1}},
	}
	template := goblin()

	b := r.Start(p, template)
	assert.Equal(t, 3, p.Energy)
	assert.Equal(t, 0, p.Strength)
	assert.Equal(t, 5, p.Block)
	assert.Len(t, p.Hand, 6)
	assert.Equal(t, 12, p.Count())
	assert.Equal(t, 30, b.Enemy.CurrentHealth)
	require.NotNil(t, b.Enemy.Intent)
	assert.Equal(t, "--- Turn 1 - Player Turn ---", b.Log[0].Message)

	b.Enemy.CurrentHealth = 1
	b.Enemy.Moves[0].Damage = 99
	assert.Equal(t, 0, template.CurrentHealth)
	assert.Equal(t, 5, template.Moves[0].Damage)
}

func TestApplyItem(t *testing.T) {
	r := newResolver(1)
	p, b := fight(goblin())
	p.Health = 50

	r.ApplyItem(p, b, inventory.Item{Name: "Health Potion", Effect: inventory.Effect{Kind: inventory.EffectHeal, Amount: 20}})
	r.ApplyItem(p, b, inventory.Item{Name: "Energy Drink", Effect: inventory.Effect{Kind: inventory.EffectEnergy, Amount: 2}})
	r.ApplyItem(p, b, inventory.Item{Name: "Block Potion", Effect: inventory.Effect{Kind: inventory.EffectBlock, Amount: 15}})
	r.ApplyItem(p, nil, inventory.Item{Name: "Strength Potion", Effect: inventory.Effect{Kind: inventory.EffectStrength, Amount: 3}})

	assert.Equal(t, 70, p.Health)
	assert.Equal(t, 5, p.Energy, "item energy is not capped")
	assert.Equal(t, 15, p.Block)
	assert.Equal(t, 3, p.Strength)
	assert.Len(t, b.Log, 3)
}
