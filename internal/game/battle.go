package game

import (
	"fmt"

	"brainrot-spire/internal/battle"
	"brainrot-spire/internal/inventory"
)

func (e *Engine) fighting(s *State) error {
	if s.Status.Terminal() {
		return ErrGameOver
	}
	if s.Status != StatusBattle || s.Battle == nil {
		return ErrNoBattle
	}
	return nil
}

// PlayCard plays the hand card at index in the current battle.
func (e *Engine) PlayCard(s *State, index int) (*State, error) {
	if err := e.fighting(s); err != nil {
		return s, err
	}
	ns := s.Clone()
	out, err := e.resolver.PlayCard(ns.Player, ns.Battle, index)
	if err != nil {
		return s, err
	}
	e.settle(ns, out)
	return ns, nil
}

// EndTurn ends the player's turn and resolves the enemy's action.
func (e *Engine) EndTurn(s *State) (*State, error) {
	if err := e.fighting(s); err != nil {
		return s, err
	}
	ns := s.Clone()
	out, err := e.resolver.EndTurn(ns.Player, ns.Battle)
	if err != nil {
		return s, err
	}
	e.settle(ns, out)
	return ns, nil
}

// UseItem consumes one unit of an inventory item. During a battle only
// battle-usable items are accepted and the effect is logged.
func (e *Engine) UseItem(s *State, itemID string) (*State, error) {
	if s.Status.Terminal() {
		return s, ErrGameOver
	}
	it, ok := inventory.Find(s.Player.Items, itemID)
	if !ok || it.Quantity <= 0 {
		return s, fmt.Errorf("%w: %q", ErrNoItem, itemID)
	}
	inBattle := s.Status == StatusBattle && s.Battle != nil
	if inBattle {
		if s.Battle.Enemy.Defeated() {
			return s, battle.ErrBattleOver
		}
		if !it.UsableInBattle {
			return s, fmt.Errorf("%w: %q", ErrNotUsable, itemID)
		}
	}

	ns := s.Clone()
	ns.Player.Items, it, _ = inventory.Consume(ns.Player.Items, itemID)
	var b *battle.Battle
	if inBattle {
		b = ns.Battle
	}
	e.resolver.ApplyItem(ns.Player, b, it)
	e.log.Debug().Str("item", itemID).Bool("battle", inBattle).Msg("item used")
	return ns, nil
}

// settle routes a finished battle. A win shows the victory effect and stashes
// the reward; the battle stays in place until HideVictoryEffect.
func (e *Engine) settle(s *State, out battle.Outcome) {
	switch out {
	case battle.Defeat:
		s.Status = StatusDefeat
		e.log.Info().Str("enemy", s.Battle.Enemy.ID).Int("turn", s.Battle.Turn).Msg("player defeated")
	case battle.Victory:
		s.ShowVictoryEffect = true
		foe := s.Battle.Enemy
		if foe.Kind == battle.KindBoss {
			e.bossDefeated(s, foe)
			return
		}
		gold := e.rules.Rewards.GoldMin + e.rng.Intn(e.rules.Rewards.GoldSpread)
		s.Player.Gold += gold
		s.LastReward = &Reward{
			Kind:        RewardGold,
			Name:        "Gold",
			Description: fmt.Sprintf("You earned %d gold!", gold),
			Amount:      gold,
		}
		e.log.Debug().Str("enemy", foe.ID).Int("gold", gold).Msg("enemy defeated")
	}
}

func (e *Engine) bossDefeated(s *State, foe battle.Foe) {
	if !s.HasDefeated(foe.ID) {
		s.DefeatedBosses = append(s.DefeatedBosses, foe.ID)
	}
	count := s.BossesDefeated()
	e.log.Info().Str("boss", foe.ID).Int("defeated", count).Msg("boss defeated")

	if count >= e.rules.BossesToWin {
		s.Status = StatusVictory
		s.LastReward = &Reward{
			Kind:        RewardVictory,
			Name:        "Victory",
			Description: fmt.Sprintf("All %d bosses defeated!", count),
			Amount:      count,
		}
		return
	}
	if foe.Reward == nil {
		s.LastReward = &Reward{Kind: RewardPerk, Name: foe.Name, Description: "Defeated " + foe.Name}
		return
	}
	perk := *foe.Reward
	perk.ID = "perk_" + foe.ID
	perk.Description = "Defeated " + foe.Name
	s.Player.Perks = append(s.Player.Perks, perk)
	s.LastReward = &Reward{
		Kind:        RewardPerk,
		Name:        perk.Name,
		Description: perk.Summary,
		Perk:        &perk,
	}
}

// HideVictoryEffect dismisses the victory screen and drops the finished battle.
// A boss kill returns to the boss menu, a regular win to the path. Terminal
// statuses are kept.
func (e *Engine) HideVictoryEffect(s *State) (*State, error) {
	if !s.ShowVictoryEffect {
		return s, ErrNoVictoryEffect
	}
	ns := s.Clone()
	ns.ShowVictoryEffect = false
	boss := ns.Battle != nil && ns.Battle.Enemy.Kind == battle.KindBoss
	ns.Battle = nil
	switch {
	case ns.Status.Terminal():
	case boss:
		ns.Status = StatusMenu
	default:
		ns.Status = StatusPath
	}
	return ns, nil
}

// ClearLastReward drops the reward descriptor once it has been shown.
func (e *Engine) ClearLastReward(s *State) (*State, error) {
	ns := s.Clone()
	ns.LastReward = nil
	return ns, nil
}
