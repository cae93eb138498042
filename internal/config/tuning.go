// Package config loads game tuning from YAML and process settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"brainrot-spire/internal/generate"
)

// Tuning holds every balance number the engine reads.
type Tuning struct {
	StartingHealth    int              `yaml:"starting_health" json:"starting_health"`
	StartingEnergy    int              `yaml:"starting_energy" json:"starting_energy"`
	StartingGold      int              `yaml:"starting_gold" json:"starting_gold"`
	StartingEquipment []string         `yaml:"starting_equipment" json:"starting_equipment"`
	StartingItems     []string         `yaml:"starting_items" json:"starting_items"`
	HandSize          int              `yaml:"hand_size" json:"hand_size"`
	Path              PathTuning       `yaml:"path" json:"path"`
	Rewards           RewardTuning     `yaml:"rewards" json:"rewards"`
	EnemyStrengthGain int              `yaml:"enemy_strength_gain" json:"enemy_strength_gain"`
	CampHeal          int              `yaml:"camp_heal" json:"camp_heal"`
	CurseDamage       int              `yaml:"curse_damage" json:"curse_damage"`
	UpgradeMultiplier float64          `yaml:"upgrade_multiplier" json:"upgrade_multiplier"`
	BossesToWin       int              `yaml:"bosses_to_win" json:"bosses_to_win"`
	DefaultBoss       string           `yaml:"default_boss" json:"default_boss"`
	Shrine            []ShrineBlessing `yaml:"shrine" json:"shrine"`
}

// PathTuning shapes generated paths.
type PathTuning struct {
	MaxWidth int               `yaml:"max_width" json:"max_width"`
	Height   int               `yaml:"height" json:"height"`
	Weights  []generate.Weight `yaml:"weights" json:"weights"`
}

// RewardTuning controls battle gold rewards: GoldMin + rand[0, GoldSpread).
type RewardTuning struct {
	GoldMin    int `yaml:"gold_min" json:"gold_min"`
	GoldSpread int `yaml:"gold_spread" json:"gold_spread"`
}

// ShrineBlessing is one outcome of praying at a shrine.
type ShrineBlessing struct {
	Heal int `yaml:"heal,omitempty" json:"heal,omitempty"`
	Gold int `yaml:"gold,omitempty" json:"gold,omitempty"`
}

// Default returns the stock tuning.
func Default() Tuning {
	return Tuning{
		StartingHealth: 80,
		StartingEnergy: 3,
		StartingGold:   100,
		StartingEquipment: []string{
			"fists", "basic_hat", "basic_shield", "abs_armor",
			"basic_shoes", "protein_necklace", "basic_ring",
		},
		StartingItems: []string{"health_potion"},
		HandSize:      5,
		Path: PathTuning{
			MaxWidth: 4,
			Height:   15,
			Weights: []generate.Weight{
				{Type: generate.NodeBattle, Weight: 0.5},
				{Type: generate.NodeShop, Weight: 0.1},
				{Type: generate.NodeEvent, Weight: 0.15},
				{Type: generate.NodeCamp, Weight: 0.05},
				{Type: generate.NodeShrine, Weight: 0.1},
				{Type: generate.NodeBlacksmith, Weight: 0.1},
			},
		},
		Rewards:           RewardTuning{GoldMin: 25, GoldSpread: 15},
		EnemyStrengthGain: 2,
		CampHeal:          30,
		CurseDamage:       3,
		UpgradeMultiplier: 1.5,
		BossesToWin:       5,
		DefaultBoss:       "tralalero",
		Shrine:            []ShrineBlessing{{Heal: 15}, {Heal: 20}, {Gold: 50}},
	}
}

var ErrInvalid = errors.New("invalid tuning")

// Validate rejects tuning the engine cannot run with.
func (t *Tuning) Validate() error {
	if t.StartingHealth < 1 || t.StartingEnergy < 1 {
		return fmt.Errorf("%w: starting health and energy must be positive", ErrInvalid)
	}
	if t.HandSize < 1 {
		return fmt.Errorf("%w: hand_size must be positive", ErrInvalid)
	}
	if t.BossesToWin < 1 {
		return fmt.Errorf("%w: bosses_to_win must be positive", ErrInvalid)
	}
	if t.Rewards.GoldSpread < 1 {
		return fmt.Errorf("%w: rewards.gold_spread must be positive", ErrInvalid)
	}
	if len(t.Shrine) == 0 {
		return fmt.Errorf("%w: shrine needs at least one blessing", ErrInvalid)
	}
	cfg := generate.Config{Width: t.Path.MaxWidth, Height: t.Path.Height, Weights: t.Path.Weights}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// Load reads a YAML tuning file. Keys missing from the file keep their default
// values. The result is validated.
func Load(path string) (Tuning, error) {
	t := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("read tuning: %w", err)
	}
	if err := yaml.Unmarshal(b, &t); err != nil {
		return t, fmt.Errorf("parse tuning %s: %w", path, err)
	}
	if err := t.Validate(); err != nil {
		return t, err
	}
	return t, nil
}
