package assets

import (
	"brainrot-spire/internal/battle"
	"brainrot-spire/internal/inventory"
)

// Bosses is the boss roster in menu order. Only the strength intent effect is
// resolved in battle, so abilities carry no other effect tags.
var Bosses = []battle.Foe{
	{
		ID:          "tralalero",
		Name:        "Tralalero Tralala",
		Description: "The first and most iconic Italian brainrot character.",
		Kind:        battle.KindBoss,
		Health:      120,
		Moves: []battle.Move{
			{Name: "Surreal Melody", Damage: 12, Description: "Confuses with its iconic sound"},
			{Name: "Visual Distortion", Damage: 8, Description: "Disorients with surreal visuals"},
			{Name: "Meme Overload", Damage: 20, Description: "Overwhelms with concentrated meme energy"},
		},
		Reward: &inventory.Perk{
			Name:    "Tralalero Essence",
			Summary: "Draw 1 additional card each turn",
			Effect:  inventory.PerkEffect{Kind: inventory.PerkDraw, Amount: 1},
		},
	},
	{
		ID:          "tungtung",
		Name:        "Tung Tung Tung Sahur",
		Description: "Indonesian origin character with distinct rhythm.",
		Kind:        battle.KindBoss,
		Health:      140,
		Moves: []battle.Move{
			{Name: "Rhythmic Assault", Damage: 10, Hits: 3, Description: "Strikes with its rhythm"},
			{Name: "Cultural Fusion", Damage: 15, Description: "Baffles with cultural confusion"},
			{Name: "Unusual Appearance", Damage: 25, Description: "Shocks with its bizarre appearance"},
		},
		Reward: &inventory.Perk{
			Name:    "Rhythm Master",
			Summary: "First card played each turn costs 0 energy",
			Effect:  inventory.PerkEffect{Kind: inventory.PerkFirstCardFree},
		},
	},
	{
		ID:          "bombardiro",
		Name:        "Bombardiro Crocodilo",
		Description: "Anthropomorphic crocodile bomber plane.",
		Kind:        battle.KindBoss,
		Health:      160,
		Moves: []battle.Move{
			{Name: "Aerial Assault", Damage: 18, Description: "Dive bombs from above"},
			{Name: "Crocodile Bite", Damage: 14, Description: "Clamps down with powerful jaws"},
			{Name: "Bomber Run", Damage: 30, Description: "Devastating bombing attack"},
		},
		Reward: &inventory.Perk{
			Name:    "Aerial Advantage",
			Summary: "Start each battle with 5 block",
			Effect:  inventory.PerkEffect{Kind: inventory.PerkBattleBlock, Amount: 5},
		},
	},
	{
		ID:          "ballerina",
		Name:        "Ballerina Cappuccina",
		Description: "Ballet dancer with a cappuccino mug head.",
		Kind:        battle.KindBoss,
		Health:      130,
		Moves: []battle.Move{
			{Name: "Pirouette", Damage: 12, Description: "Spins gracefully"},
			{Name: "Hot Coffee Splash", Damage: 16, Description: "Splashes scalding coffee"},
			{Name: "Absurd Performance", Damage: 22, Description: "Confuses with an absurd dance routine"},
		},
		Reward: &inventory.Perk{
			Name:    "Graceful Movement",
			Summary: "25% chance to dodge attacks",
			Effect:  inventory.PerkEffect{Kind: inventory.PerkDodge, Amount: 25},
		},
	},
	{
		ID:          "lirili",
		Name:        "Lirili Larila",
		Description: "Time-bending character with surreal abilities.",
		Kind:        battle.KindBoss,
		Health:      180,
		Moves: []battle.Move{
			{Name: "Time Warp", Damage: 14, Description: "Bends time around the target"},
			{Name: "Reality Distortion", Damage: 20, Description: "Warps reality around the target"},
			{Name: "Surreal Fusion", Damage: 35, Description: "Unleashes pure surreal energy"},
		},
		Reward: &inventory.Perk{
			Name:    "Time Bender",
			Summary: "10% chance to play a card twice",
			Effect:  inventory.PerkEffect{Kind: inventory.PerkEcho, Amount: 10},
		},
	},
}

// Enemies is the pool regular battle nodes draw from.
var Enemies = []battle.Foe{
	{
		ID:     "meme_goblin",
		Name:   "Meme Goblin",
		Kind:   battle.KindEnemy,
		Health: 30,
		Moves: []battle.Move{
			{Name: "Scratch", Damage: 5, Probability: 0.6},
			{Name: "Bite", Damage: 8, Probability: 0.4},
		},
	},
	{
		ID:     "doge",
		Name:   "Feral Doge",
		Kind:   battle.KindEnemy,
		Health: 40,
		Moves: []battle.Move{
			{Name: "Much Bite", Damage: 7, Probability: 0.5},
			{Name: "Very Scratch", Damage: 4, Hits: 2, Probability: 0.3},
			{Name: "Wow Howl", Effect: battle.EffectStrength, Value: 2, Probability: 0.2},
		},
	},
	{
		ID:     "troll_face",
		Name:   "Troll Face",
		Kind:   battle.KindEnemy,
		Health: 50,
		Moves: []battle.Move{
			{Name: "Problem?", Damage: 10, Probability: 0.4},
			{Name: "Troll Logic", Probability: 0.3},
			{Name: "U Mad?", Damage: 6, Probability: 0.3},
		},
	},
}

// Glyphs maps foe ids to the emoji drawn next to their names.
var Glyphs = map[string]string{
	"tralalero":   "🦈",
	"tungtung":    "🥁",
	"bombardiro":  "🐊",
	"ballerina":   "🩰",
	"lirili":      "🌵",
	"meme_goblin": "👺",
	"doge":        "🐕",
	"troll_face":  "😏",
}
