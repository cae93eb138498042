package assets

import (
	"brainrot-spire/internal/deck"
	"brainrot-spire/internal/event"
	"brainrot-spire/internal/inventory"
)

// Items lists every consumable.
var Items = []inventory.Item{
	{ID: "health_potion", Name: "Health Potion", Description: "Restores 20 HP when used.",
		Effect: inventory.Effect{Kind: inventory.EffectHeal, Amount: 20}, UsableInBattle: true, Quantity: 1},
	{ID: "energy_drink", Name: "Energy Drink", Description: "Grants 2 energy when used.",
		Effect: inventory.Effect{Kind: inventory.EffectEnergy, Amount: 2}, UsableInBattle: true, Quantity: 1},
	{ID: "strength_potion", Name: "Strength Potion", Description: "Grants 3 strength for the current battle.",
		Effect: inventory.Effect{Kind: inventory.EffectStrength, Amount: 3}, UsableInBattle: true, Quantity: 1},
	{ID: "block_potion", Name: "Block Potion", Description: "Grants 15 block immediately.",
		Effect: inventory.Effect{Kind: inventory.EffectBlock, Amount: 15}, UsableInBattle: true, Quantity: 1},
	{ID: "cleansing_oil", Name: "Cleansing Oil", Description: "Removes all negative status effects.",
		Effect: inventory.Effect{Kind: inventory.EffectCleanse}, UsableInBattle: true, Quantity: 1},
}

// Events lists every narrative encounter.
var Events = []event.Event{
	{
		ID:          "mysterious_stranger",
		Title:       "Mysterious Stranger",
		Description: "A cloaked figure offers you a deal...",
		Options: []event.Option{
			{Text: "Trade 10 HP for a random equipment", Effect: event.Effect{Kind: event.KindTrade, HP: -10, Reward: "equipment"}},
			{Text: "Ignore and move on", Effect: event.Effect{Kind: event.KindNone}},
		},
	},
	{
		ID:          "ancient_shrine",
		Title:       "Ancient Shrine",
		Description: "You discover an ancient shrine dedicated to forgotten memes.",
		Options: []event.Option{
			{Text: "Pray for strength (+2 strength each battle)", Effect: event.Effect{Kind: event.KindBuff, Stat: event.StatStrength, Value: 2}},
			{Text: "Pray for protection (+10 max HP)", Effect: event.Effect{Kind: event.KindBuff, Stat: event.StatMaxHealth, Value: 10}},
			{Text: "Desecrate the shrine (50% chance: +50 gold or curse)", Effect: event.Effect{Kind: event.KindRandom, Gold: 50, Curse: "Meme Curse"}},
		},
	},
	{
		ID:          "abandoned_gym",
		Title:       "Abandoned Gym",
		Description: "You find Zyzz's abandoned gym. The equipment is still in good condition.",
		Options: []event.Option{
			{Text: "Work out (Gain 5 max HP)", Effect: event.Effect{Kind: event.KindBuff, Stat: event.StatMaxHealth, Value: 5}},
			{Text: "Take protein shake (Heal 15 HP)", Effect: event.Effect{Kind: event.KindHeal, Value: 15}},
			{Text: "Study technique books (Upgrade a card)", Effect: event.Effect{Kind: event.KindUpgrade, Target: "random_card"}},
		},
	},
}

// ShopKind says what a shop entry sells.
type ShopKind string

const (
	ShopCard      ShopKind = "card"
	ShopItem      ShopKind = "item"
	ShopEquipment ShopKind = "equipment"
)

// ShopEntry is one slot on the merchant's shelf. Exactly one of Card, ItemID
// or EquipmentID is used, depending on Kind.
type ShopEntry struct {
	Kind        ShopKind
	Name        string
	Price       int
	Card        deck.Card
	ItemID      string
	EquipmentID string
}

// Shop is the fixed shop inventory.
var Shop = []ShopEntry{
	{Kind: ShopCard, Name: "Gigachad Smash", Price: 50,
		Card: deck.Card{ID: "gigachad_smash", Name: "Gigachad Smash", Damage: 14, Energy: 2, Description: "Deal 14 damage", Grade: deck.GradeUncommon}},
	{Kind: ShopCard, Name: "Flex Pose", Price: 50,
		Card: deck.Card{ID: "flex_pose", Name: "Flex Pose", Block: 12, Energy: 2, Description: "Gain 12 block", Grade: deck.GradeUncommon}},
	{Kind: ShopCard, Name: "Meme Review", Price: 75,
		Card: deck.Card{ID: "meme_review", Name: "Meme Review", Damage: 8, Draw: 1, Energy: 1, Description: "Deal 8 damage and draw a card", Grade: deck.GradeRare}},
	{Kind: ShopCard, Name: "Sigma Mindset", Price: 100,
		Card: deck.Card{ID: "sigma_mindset", Name: "Sigma Mindset", Strength: 3, Energy: 1, Description: "Gain 3 strength", Grade: deck.GradeEpic}},
	{Kind: ShopItem, Name: "Health Potion", Price: 40, ItemID: "health_potion"},
	{Kind: ShopItem, Name: "Energy Drink", Price: 60, ItemID: "energy_drink"},
	{Kind: ShopEquipment, Name: "Protein Necklace", Price: 150, EquipmentID: "protein_necklace"},
	{Kind: ShopEquipment, Name: "Meme Bracelet", Price: 200, EquipmentID: "meme_bracelet"},
}
