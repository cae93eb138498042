// Package game is the run controller: a set of pure actions over a State
// snapshot covering path traversal, battles, events, shops and progression.
package game

import (
	"brainrot-spire/internal/battle"
	"brainrot-spire/internal/deck"
	"brainrot-spire/internal/event"
	"brainrot-spire/internal/generate"
	"brainrot-spire/internal/inventory"
	"brainrot-spire/internal/player"
)

// Status is the top-level screen the run is on.
type Status string

const (
	StatusMenu       Status = "menu"
	StatusPath       Status = "path"
	StatusBattle     Status = "battle"
	StatusEvent      Status = "event"
	StatusShop       Status = "shop"
	StatusCamp       Status = "camp"
	StatusShrine     Status = "shrine"
	StatusBlacksmith Status = "blacksmith"
	StatusStart      Status = "start"
	StatusVictory    Status = "victory"
	StatusDefeat     Status = "defeat"
)

// Terminal reports whether the run is over.
func (s Status) Terminal() bool {
	return s == StatusVictory || s == StatusDefeat
}

// RewardKind classifies what LastReward describes.
type RewardKind string

const (
	RewardGold      RewardKind = "gold"
	RewardPerk      RewardKind = "perk"
	RewardCurse     RewardKind = "curse"
	RewardHeal      RewardKind = "heal"
	RewardMaxHealth RewardKind = "max_health"
	RewardEquipment RewardKind = "equipment"
	RewardItem      RewardKind = "item"
	RewardCard      RewardKind = "card"
	RewardUpgrade   RewardKind = "upgrade"
	RewardVictory   RewardKind = "victory"
)

// Reward describes the last thing the player gained, for display.
type Reward struct {
	Kind        RewardKind      `json:"kind"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Amount      int             `json:"amount,omitempty"`
	Item        *inventory.Item `json:"item,omitempty"`
	Equipment   *deck.Equipment `json:"equipment,omitempty"`
	Perk        *inventory.Perk `json:"perk,omitempty"`
	Card        *deck.Card      `json:"card,omitempty"`
}

// Clone returns a deep copy of r.
func (r *Reward) Clone() *Reward {
	if r == nil {
		return nil
	}
	c := *r
	if r.Item != nil {
		it := *r.Item
		c.Item = &it
	}
	if r.Equipment != nil {
		eq := r.Equipment.Clone()
		c.Equipment = &eq
	}
	if r.Perk != nil {
		pk := *r.Perk
		c.Perk = &pk
	}
	if r.Card != nil {
		cd := *r.Card
		c.Card = &cd
	}
	return &c
}

// State is a complete snapshot of a run. It holds plain data only, so it can
// be serialized as-is and deep-copied by Clone.
type State struct {
	Player            *player.Player `json:"player"`
	Path              *generate.Path `json:"path"`
	CurrentBoss       *battle.Foe    `json:"current_boss"`
	DefeatedBosses    []string       `json:"defeated_bosses"`
	Battle            *battle.Battle `json:"battle,omitempty"`
	Event             *event.Event   `json:"event,omitempty"`
	Status            Status         `json:"status"`
	ShowVictoryEffect bool           `json:"show_victory_effect"`
	LastReward        *Reward        `json:"last_reward,omitempty"`
	Preview           string         `json:"preview_node,omitempty"` // staged node id
}

// Clone returns a deep copy of s.
func (s *State) Clone() *State {
	if s == nil {
		return nil
	}
	c := *s
	c.Player = s.Player.Clone()
	c.Path = s.Path.Clone()
	if s.CurrentBoss != nil {
		b := s.CurrentBoss.Clone()
		c.CurrentBoss = &b
	}
	c.DefeatedBosses = append([]string(nil), s.DefeatedBosses...)
	c.Battle = s.Battle.Clone()
	if s.Event != nil {
		ev := s.Event.Clone()
		c.Event = &ev
	}
	c.LastReward = s.LastReward.Clone()
	return &c
}

// CurrentNode returns the node the player stands on.
func (s *State) CurrentNode() *generate.Node {
	if s.Path == nil {
		return nil
	}
	return s.Path.Node(s.Path.CurrentNode)
}

// PreviewNode returns the staged node, or nil.
func (s *State) PreviewNode() *generate.Node {
	if s.Path == nil || s.Preview == "" {
		return nil
	}
	return s.Path.Node(s.Preview)
}

// BossesDefeated returns the number of distinct bosses beaten.
func (s *State) BossesDefeated() int {
	seen := make(map[string]bool, len(s.DefeatedBosses))
	for _, id := range s.DefeatedBosses {
		seen[id] = true
	}
	return len(seen)
}

// HasDefeated reports whether the boss with id has been beaten this run.
func (s *State) HasDefeated(id string) bool {
	for _, d := range s.DefeatedBosses {
		if d == id {
			return true
		}
	}
	return false
}
