package assets

import (
	"testing"

	"brainrot-spire/internal/battle"
	"brainrot-spire/internal/event"

	"github.com/stretchr/testify/assert"
)

func TestEquipmentIDsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, eq := range Equipment {
		if seen[eq.ID] {
			t.Errorf("duplicate equipment id %q", eq.ID)
		}
		seen[eq.ID] = true
		if !eq.Slot.Valid() {
			t.Errorf("%s: invalid slot %q", eq.ID, eq.Slot)
		}
		if len(eq.Cards) == 0 {
			t.Errorf("%s: no cards", eq.ID)
		}
	}
}

func TestShopReferencesExist(t *testing.T) {
	c := Default()
	for i, e := range c.Shop {
		switch e.Kind {
		case ShopItem:
			_, ok := c.FindItem(e.ItemID)
			assert.True(t, ok, "shop[%d] item %q", i, e.ItemID)
		case ShopEquipment:
			_, ok := c.FindEquipment(e.EquipmentID)
			assert.True(t, ok, "shop[%d] equipment %q", i, e.EquipmentID)
		case ShopCard:
			assert.NotEmpty(t, e.Card.ID)
		default:
			t.Errorf("shop[%d]: unknown kind %q", i, e.Kind)
		}
		assert.Positive(t, e.Price)
	}
}

func TestBossesCarryRewards(t *testing.T) {
	assert.Len(t, Bosses, 5)
	for _, b := range Bosses {
		assert.Equal(t, battle.KindBoss, b.Kind)
		assert.NotNil(t, b.Reward, b.ID)
		assert.NotEmpty(t, b.Moves, b.ID)
		assert.NotEmpty(t, Glyphs[b.ID], b.ID)
	}
}

// Only the strength effect is resolved in battle, so no other tag may appear.
func TestIntentEffectsAreSupported(t *testing.T) {
	for _, f := range append(append([]battle.Foe{}, Bosses...), Enemies...) {
		for _, m := range f.Moves {
			if m.Effect != "" && m.Effect != battle.EffectStrength {
				t.Errorf("%s/%s: unsupported effect %q", f.ID, m.Name, m.Effect)
			}
		}
	}
}

func TestEventOptionsHaveKinds(t *testing.T) {
	known := map[event.Kind]bool{
		event.KindHeal: true, event.KindBuff: true, event.KindTrade: true,
		event.KindRandom: true, event.KindUpgrade: true, event.KindNone: true,
	}
	for _, ev := range Events {
		for _, o := range ev.Options {
			if !known[o.Effect.Kind] {
				t.Errorf("%s: option %q has kind %q", ev.ID, o.Text, o.Effect.Kind)
			}
		}
	}
}

func TestBossLookupCopies(t *testing.T) {
	c := Default()
	b, ok := c.Boss("tralalero")
	assert.True(t, ok)
	b.Moves[0].Damage = 999
	b.Reward.Name = "changed"
	assert.Equal(t, 12, Bosses[0].Moves[0].Damage)
	assert.Equal(t, "Tralalero Essence", Bosses[0].Reward.Name)

	_, ok = c.Boss("nobody")
	assert.False(t, ok)
}
