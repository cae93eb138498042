package deck

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGear() []Equipment {
	return []Equipment{
		{ID: "fists", Slot: SlotWeapon, Cards: []Card{
			{ID: "punch", Damage: 6, Energy: 1, Quantity: 4},
			{ID: "block", Block: 5, Energy: 1, Quantity: 4},
			{ID: "flex", Strength: 2, Energy: 1, Quantity: 2},
		}},
		{ID: "basic_hat", Slot: SlotHead, Cards: []Card{
			{ID: "headbutt", Damage: 4, Energy: 1, Quantity: 3},
			{ID: "duck", Block: 4, Energy: 1},
		}},
		{ID: "chad_sword", Slot: SlotWeapon, Cards: []Card{
			{ID: "slash", Damage: 9, Energy: 1, Quantity: 3},
		}},
	}
}

func TestComposeCountsAndOrder(t *testing.T) {
	gear := testGear()
	cards := Compose(gear, map[Slot]string{SlotWeapon: "fists", SlotHead: "basic_hat"})

	// 4+4+2 from fists, 3+1 from the hat.
	require.Len(t, cards, 14)
	// Head comes before weapon in slot order.
	assert.Equal(t, "headbutt", cards[0].ID)
	assert.Equal(t, "duck", cards[3].ID)
	assert.Equal(t, "punch", cards[4].ID)
	assert.Equal(t, "flex", cards[13].ID)
}

func TestComposeSkipsUnknownIDs(t *testing.T) {
	cards := Compose(testGear(), map[Slot]string{SlotWeapon: "missing", SlotHead: "basic_hat", SlotFeet: ""})
	assert.Len(t, cards, 4)
}

func TestComposeDeterministic(t *testing.T) {
	eq := map[Slot]string{SlotWeapon: "fists", SlotHead: "basic_hat"}
	assert.Equal(t, Compose(testGear(), eq), Compose(testGear(), eq))
}

func TestComposeCopiesAreIndependent(t *testing.T) {
	gear := testGear()
	cards := Compose(gear, map[Slot]string{SlotWeapon: "fists"})
	cards[0].Upgrade(1.5)

	if cards[1].Upgraded || cards[1].Damage != 6 {
		t.Errorf("sibling copy changed: %+v", cards[1])
	}
	if gear[0].Cards[0].Upgraded {
		t.Error("template changed by upgrading a composed copy")
	}
}

func TestShufflePreservesMultiset(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	cards := Compose(testGear(), map[Slot]string{SlotWeapon: "fists", SlotHead: "basic_hat"})
	shuffled := Shuffle(rng, cards)

	assert.ElementsMatch(t, cards, shuffled)
	// The input is not reordered.
	assert.Equal(t, "headbutt", cards[0].ID)
}

func TestDeckConservation(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	cards := Compose(testGear(), map[Slot]string{SlotWeapon: "fists", SlotHead: "basic_hat"})
	var p Piles
	p.Reset(rng, cards)
	require.Equal(t, len(cards), p.Count())

	for turn := 0; turn < 20; turn++ {
		p.DrawCards(rng, 5)
		if _, ok := p.Take(0); ok {
			// A played card lands on the discard pile.
			p.Discard = append(p.Discard, cards[0])
		}
		p.DiscardHand()
		if p.Count() != len(cards) {
			t.Fatalf("turn %d: count = %d; want %d", turn, p.Count(), len(cards))
		}
	}
}

func TestDrawReshufflesDiscard(t *testing.T) {
	tests := []struct {
		name        string
		draw, disc  int
		n           int
		wantHand    int
		wantDiscard int
	}{
		{"enough in draw", 6, 4, 5, 5, 4},
		{"reshuffle needed", 2, 6, 5, 5, 0},
		{"both short", 1, 2, 5, 3, 0},
		{"both empty", 0, 0, 5, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(1))
			p := Piles{
				Draw:    make([]Card, tt.draw),
				Discard: make([]Card, tt.disc),
			}
			got := p.DrawCards(rng, tt.n)
			assert.Equal(t, tt.wantHand, got)
			assert.Len(t, p.Hand, tt.wantHand)
			assert.Len(t, p.Discard, tt.wantDiscard)
			assert.Equal(t, tt.draw+tt.disc, p.Count())
		})
	}
}

func TestDrawPopsFromTop(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	p := Piles{Draw: []Card{{ID: "a"}, {ID: "b"}, {ID: "c"}}}
	p.DrawCards(rng, 2)
	assert.Equal(t, []Card{{ID: "c"}, {ID: "b"}}, p.Hand)
	assert.Equal(t, []Card{{ID: "a"}}, p.Draw)
}

func TestTakeOutOfRange(t *testing.T) {
	p := Piles{Hand: []Card{{ID: "a"}}}
	if _, ok := p.Take(1); ok {
		t.Error("Take(1) on a one-card hand should fail")
	}
	if _, ok := p.Take(-1); ok {
		t.Error("Take(-1) should fail")
	}
	c, ok := p.Take(0)
	require.True(t, ok)
	assert.Equal(t, "a", c.ID)
	assert.Empty(t, p.Hand)
}

func TestUpgrade(t *testing.T) {
	c := Card{Damage: 5, Block: 7}
	c.Upgrade(1.5)
	assert.Equal(t, 7, c.Damage)
	assert.Equal(t, 10, c.Block)
	assert.True(t, c.Upgraded)

	utility := Card{Draw: 2}
	utility.Upgrade(1.5)
	assert.Equal(t, 0, utility.Damage)
	assert.True(t, utility.Upgraded)
}
