package assets

import "brainrot-spire/internal/deck"

// Equipment is every wearable in the game. Cards whose text mentions weak,
// vulnerable or other statuses only apply their numeric fields.
var Equipment = []deck.Equipment{
	{
		ID: "fists", Name: "Gigachad Fists", Slot: deck.SlotWeapon, Grade: deck.GradeCommon,
		Description: "Your natural weapons. Simple but effective.",
		Cards: []deck.Card{
			{ID: "punch", Name: "Punch", Damage: 6, Energy: 1, Description: "Deal 6 damage", Quantity: 4, Grade: deck.GradeCommon},
			{ID: "block", Name: "Block", Block: 5, Energy: 1, Description: "Gain 5 block", Quantity: 4, Grade: deck.GradeCommon},
			{ID: "flex", Name: "Flex", Strength: 2, Energy: 1, Description: "Gain 2 strength", Quantity: 2, Grade: deck.GradeUncommon},
		},
	},
	{
		ID: "gauntlet", Name: "Infinite Gauntlet", Slot: deck.SlotOffhand, Grade: deck.GradeLegendary,
		Description: "Harness the power of the cosmos.",
		Cards: []deck.Card{
			{ID: "finger_snap", Name: "Finger Snap", Damage: 20, Energy: 3, Description: "Deal 20 damage", Quantity: 1, Grade: deck.GradeLegendary},
			{ID: "power_bash", Name: "Power Bash", Damage: 10, Energy: 1, Description: "Deal 10 damage", Quantity: 2, Grade: deck.GradeRare},
			{ID: "cosmic_shield", Name: "Cosmic Shield", Block: 8, Energy: 1, Description: "Gain 8 block", Quantity: 3, Grade: deck.GradeUncommon},
			{ID: "reality_warp", Name: "Reality Warp", Draw: 3, Energy: 2, Description: "Draw 3 cards", Quantity: 1, Grade: deck.GradeEpic},
		},
	},
	{
		ID: "sunglasses", Name: "Deal With It Sunglasses", Slot: deck.SlotHead, Grade: deck.GradeUncommon,
		Description: "Enhance your coolness factor to damaging levels.",
		Cards: []deck.Card{
			{ID: "cool_stare", Name: "Cool Stare", Damage: 8, Energy: 1, Description: "Deal 8 damage", Quantity: 3, Grade: deck.GradeUncommon},
			{ID: "shade_block", Name: "Shade Block", Block: 7, Energy: 1, Description: "Gain 7 block", Quantity: 3, Grade: deck.GradeCommon},
			{ID: "meme_power", Name: "Meme Power", Strength: 3, Energy: 2, Description: "Gain 3 strength", Quantity: 2, Grade: deck.GradeRare},
			{ID: "deal_with_it", Name: "Deal With It", Damage: 15, Energy: 2, Description: "Deal 15 damage", Quantity: 1, Grade: deck.GradeEpic},
		},
	},
	{
		ID: "chad_sword", Name: "Chad Sword", Slot: deck.SlotWeapon, Grade: deck.GradeRare,
		Description: "A mighty blade forged from pure testosterone.",
		Cards: []deck.Card{
			{ID: "slash", Name: "Slash", Damage: 9, Energy: 1, Description: "Deal 9 damage", Quantity: 3, Grade: deck.GradeCommon},
			{ID: "parry", Name: "Parry", Block: 9, Energy: 1, Description: "Gain 9 block", Quantity: 3, Grade: deck.GradeUncommon},
			{ID: "double_strike", Name: "Double Strike", Damage: 6, Hits: 2, Energy: 2, Description: "Deal 6 damage twice", Quantity: 2, Grade: deck.GradeRare},
			{ID: "gigachad_stance", Name: "Gigachad Stance", Strength: 4, Block: 4, Energy: 2, Description: "Gain 4 strength and 4 block", Quantity: 1, Grade: deck.GradeEpic},
		},
	},
	{
		ID: "abs_armor", Name: "Six-Pack Abs Armor", Slot: deck.SlotChest, Grade: deck.GradeCommon,
		Description: "Natural armor that makes enemies jealous.",
		Cards: []deck.Card{
			{ID: "flex_defense", Name: "Flex Defense", Block: 10, Energy: 1, Description: "Gain 10 block", Quantity: 3, Grade: deck.GradeCommon},
			{ID: "intimidate", Name: "Intimidate", Energy: 1, Description: "Stare the enemy down", Quantity: 2, Grade: deck.GradeUncommon},
			{ID: "taunt", Name: "Taunt", Energy: 1, Description: "Mock the enemy", Quantity: 2, Grade: deck.GradeUncommon},
		},
	},
	{
		ID: "sigma_boots", Name: "Sigma Grindset Boots", Slot: deck.SlotFeet, Grade: deck.GradeUncommon,
		Description: "Never skip leg day. These boots increase your mobility.",
		Cards: []deck.Card{
			{ID: "quick_step", Name: "Quick Step", Draw: 1, Energy: 0, Description: "Draw 1 card", Quantity: 2, Grade: deck.GradeRare},
			{ID: "leg_sweep", Name: "Leg Sweep", Damage: 5, Block: 5, Energy: 1, Description: "Deal 5 damage and gain 5 block", Quantity: 3, Grade: deck.GradeUncommon},
			{ID: "run_away", Name: "Tactical Retreat", Block: 12, Energy: 2, Description: "Gain 12 block", Quantity: 2, Grade: deck.GradeCommon},
		},
	},
	{
		ID: "protein_necklace", Name: "Protein Shake Necklace", Slot: deck.SlotAccessory1, Grade: deck.GradeCommon,
		Description: "A vial of pure protein always at the ready.",
		Cards: []deck.Card{
			{ID: "protein_boost", Name: "Protein Boost", Strength: 1, Energy: 1, Description: "Gain 1 strength", Quantity: 1, Grade: deck.GradeEpic},
			{ID: "quick_sip", Name: "Quick Sip", Heal: 5, Energy: 1, Description: "Heal 5 HP", Quantity: 2, Grade: deck.GradeUncommon},
			{ID: "energy_drink", Name: "Energy Drink", EnergyGain: 2, Energy: 0, Description: "Gain 2 energy", Quantity: 1, Grade: deck.GradeRare},
		},
	},
	{
		ID: "meme_bracelet", Name: "Meme Knowledge Bracelet", Slot: deck.SlotAccessory2, Grade: deck.GradeRare,
		Description: "Contains the power of a thousand memes.",
		Cards: []deck.Card{
			{ID: "meme_reference", Name: "Obscure Reference", Damage: 12, Energy: 2, Description: "Deal 12 damage", Quantity: 2, Grade: deck.GradeRare},
			{ID: "viral_content", Name: "Viral Content", Energy: 1, Description: "Go viral", Quantity: 2, Grade: deck.GradeUncommon},
			{ID: "repost", Name: "Repost", Energy: 1, Description: "Repost the last meme", Quantity: 1, Grade: deck.GradeEpic},
		},
	},
	{
		ID: "basic_hat", Name: "Basic Hat", Slot: deck.SlotHead, Grade: deck.GradeCommon,
		Description: "A simple hat for basic protection.",
		Cards: []deck.Card{
			{ID: "headbutt", Name: "Headbutt", Damage: 4, Energy: 1, Description: "Deal 4 damage", Quantity: 3, Grade: deck.GradeCommon},
			{ID: "duck", Name: "Duck", Block: 4, Energy: 1, Description: "Gain 4 block", Quantity: 3, Grade: deck.GradeCommon},
		},
	},
	{
		ID: "basic_shield", Name: "Basic Shield", Slot: deck.SlotOffhand, Grade: deck.GradeCommon,
		Description: "A simple wooden shield for basic defense.",
		Cards: []deck.Card{
			{ID: "shield_bash", Name: "Shield Bash", Damage: 3, Energy: 1, Description: "Deal 3 damage", Quantity: 3, Grade: deck.GradeCommon},
			{ID: "shield_block", Name: "Shield Block", Block: 6, Energy: 1, Description: "Gain 6 block", Quantity: 3, Grade: deck.GradeCommon},
		},
	},
	{
		ID: "basic_shoes", Name: "Basic Shoes", Slot: deck.SlotFeet, Grade: deck.GradeCommon,
		Description: "Simple shoes for basic mobility.",
		Cards: []deck.Card{
			{ID: "kick", Name: "Kick", Damage: 5, Energy: 1, Description: "Deal 5 damage", Quantity: 3, Grade: deck.GradeCommon},
			{ID: "step_back", Name: "Step Back", Block: 3, Energy: 1, Description: "Gain 3 block", Quantity: 3, Grade: deck.GradeCommon},
		},
	},
	{
		ID: "basic_ring", Name: "Basic Ring", Slot: deck.SlotAccessory2, Grade: deck.GradeCommon,
		Description: "A simple ring with basic magical properties.",
		Cards: []deck.Card{
			{ID: "magic_spark", Name: "Magic Spark", Damage: 4, Energy: 1, Description: "Deal 4 damage", Quantity: 2, Grade: deck.GradeCommon},
			{ID: "basic_heal", Name: "Basic Heal", Heal: 3, Energy: 1, Description: "Heal 3 HP", Quantity: 2, Grade: deck.GradeCommon},
		},
	},
}
