package game

import (
	"fmt"

	"brainrot-spire/assets"
	"brainrot-spire/internal/deck"
	"brainrot-spire/internal/event"
	"brainrot-spire/internal/inventory"
	"brainrot-spire/internal/player"
)

// at checks that the run is live and on the given screen.
func at(s *State, want Status) error {
	if s.Status.Terminal() {
		return ErrGameOver
	}
	if s.Status != want {
		return fmt.Errorf("%w: %s", ErrWrongStatus, s.Status)
	}
	return nil
}

// ResolveEvent applies the chosen option of the current event and returns to
// the path.
func (e *Engine) ResolveEvent(s *State, option int) (*State, error) {
	if s.Status.Terminal() {
		return s, ErrGameOver
	}
	if s.Status != StatusEvent || s.Event == nil {
		return s, ErrNoEvent
	}
	if option < 0 || option >= len(s.Event.Options) {
		return s, fmt.Errorf("%w: %d", ErrNoOption, option)
	}

	ns := s.Clone()
	opt := ns.Event.Options[option]
	p := ns.Player
	eff := opt.Effect
	var r *Reward

	switch eff.Kind {
	case event.KindHeal:
		healed := p.Heal(eff.Value)
		r = &Reward{Kind: RewardHeal, Name: "Healed", Description: fmt.Sprintf("Recovered %d HP", healed), Amount: healed}
	case event.KindBuff:
		r = e.buff(p, eff)
	case event.KindTrade:
		p.Health = max(1, p.Health+eff.HP)
		r = e.tradeForEquipment(p)
	case event.KindRandom:
		if e.rng.Intn(2) == 0 {
			p.Gold += eff.Gold
			r = &Reward{Kind: RewardGold, Name: "Gold", Description: fmt.Sprintf("You found %d gold!", eff.Gold), Amount: eff.Gold}
		} else {
			curse := inventory.Perk{
				ID:          e.newID("perk_curse_"),
				Name:        eff.Curse,
				Description: "Cursed at " + ns.Event.Title,
				Summary:     fmt.Sprintf("Take %d damage after each enemy turn", e.rules.CurseDamage),
				Effect:      inventory.PerkEffect{Kind: inventory.PerkTurnDamage, Amount: e.rules.CurseDamage},
			}
			p.Perks = append(p.Perks, curse)
			r = &Reward{Kind: RewardCurse, Name: curse.Name, Description: curse.Summary, Perk: &curse}
		}
	case event.KindUpgrade:
		r = e.upgradeCard(p, false)
	}

	e.log.Debug().Str("event", ns.Event.ID).Str("kind", string(eff.Kind)).Msg("event resolved")
	ns.LastReward = r
	ns.Event = nil
	ns.Status = StatusPath
	return ns, nil
}

func (e *Engine) buff(p *player.Player, eff event.Effect) *Reward {
	switch eff.Stat {
	case event.StatMaxHealth:
		p.MaxHealth += eff.Value
		p.Health += eff.Value
		return &Reward{Kind: RewardMaxHealth, Name: "Max HP", Description: fmt.Sprintf("Max HP increased by %d", eff.Value), Amount: eff.Value}
	case event.StatStrength:
		perk := inventory.Perk{
			ID:          e.newID("perk_strength_"),
			Name:        "Shrine Blessing",
			Description: "Blessed by an ancient shrine",
			Summary:     fmt.Sprintf("Start each battle with %d strength", eff.Value),
			Effect:      inventory.PerkEffect{Kind: inventory.PerkBattleStrength, Amount: eff.Value},
		}
		p.Perks = append(p.Perks, perk)
		return &Reward{Kind: RewardPerk, Name: perk.Name, Description: perk.Summary, Perk: &perk}
	}
	e.log.Warn().Str("stat", eff.Stat).Msg("unknown buff stat")
	return nil
}

func (e *Engine) tradeForEquipment(p *player.Player) *Reward {
	var candidates []deck.Equipment
	for _, eq := range e.content.Equipment {
		if !p.Owns(eq.ID) {
			candidates = append(candidates, eq)
		}
	}
	if len(candidates) == 0 {
		return &Reward{Kind: RewardEquipment, Name: "Nothing", Description: "You already own everything on offer"}
	}
	eq := candidates[e.rng.Intn(len(candidates))].Clone()
	p.Acquire(eq)
	return &Reward{Kind: RewardEquipment, Name: eq.Name, Description: eq.Description, Equipment: &eq}
}

// upgradeCard upgrades a random deck card. With fresh set only cards that
// have not been upgraded yet are candidates.
func (e *Engine) upgradeCard(p *player.Player, fresh bool) *Reward {
	var idx []int
	for i, c := range p.Deck {
		if !fresh || !c.Upgraded {
			idx = append(idx, i)
		}
	}
	if len(idx) == 0 {
		desc := "The deck is empty"
		if fresh {
			desc = "Every card is already upgraded"
		}
		return &Reward{Kind: RewardUpgrade, Name: "Nothing", Description: desc}
	}
	c := &p.Deck[idx[e.rng.Intn(len(idx))]]
	c.Upgrade(e.rules.UpgradeMultiplier)
	card := *c
	return &Reward{Kind: RewardUpgrade, Name: card.Name, Description: card.Name + " was upgraded", Card: &card}
}

// BuyItem buys the shop entry at index.
func (e *Engine) BuyItem(s *State, index int) (*State, error) {
	if err := at(s, StatusShop); err != nil {
		return s, err
	}
	shop := e.content.Shop
	if index < 0 || index >= len(shop) {
		return s, fmt.Errorf("%w: %d", ErrNoShopEntry, index)
	}
	entry := shop[index]
	if s.Player.Gold < entry.Price {
		return s, ErrInsufficientGold
	}

	ns := s.Clone()
	p := ns.Player
	var r *Reward
	switch entry.Kind {
	case assets.ShopCard:
		eq := e.firstEquipped(p)
		if eq == nil {
			return s, ErrNothingEquipped
		}
		card := entry.Card
		eq.Cards = append(eq.Cards, card)
		p.Deck = append(p.Deck, card)
		p.Reset(e.rng, p.Deck)
		r = &Reward{Kind: RewardCard, Name: card.Name, Description: "Added to " + eq.Name, Card: &card}
	case assets.ShopItem:
		it, ok := e.content.FindItem(entry.ItemID)
		if !ok {
			return s, fmt.Errorf("%w: %q", ErrUnknownContent, entry.ItemID)
		}
		p.Items = inventory.Add(p.Items, it, 1)
		r = &Reward{Kind: RewardItem, Name: it.Name, Description: it.Description, Item: &it}
	case assets.ShopEquipment:
		if p.Owns(entry.EquipmentID) {
			return s, fmt.Errorf("%w: %q", ErrAlreadyOwned, entry.EquipmentID)
		}
		eq, ok := e.content.FindEquipment(entry.EquipmentID)
		if !ok {
			return s, fmt.Errorf("%w: %q", ErrUnknownContent, entry.EquipmentID)
		}
		p.Acquire(eq)
		r = &Reward{Kind: RewardEquipment, Name: eq.Name, Description: eq.Description, Equipment: &eq}
	default:
		return s, fmt.Errorf("%w: shop kind %q", ErrUnknownContent, entry.Kind)
	}
	p.Gold -= entry.Price
	ns.LastReward = r
	e.log.Debug().Str("entry", entry.Name).Int("price", entry.Price).Int("gold", p.Gold).Msg("bought")
	return ns, nil
}

// firstEquipped returns the owned equipment in the first occupied slot.
func (e *Engine) firstEquipped(p *player.Player) *deck.Equipment {
	for _, slot := range deck.Slots {
		id := p.Equipped[slot]
		if id == "" {
			continue
		}
		for i := range p.Equipment {
			if p.Equipment[i].ID == id {
				return &p.Equipment[i]
			}
		}
	}
	return nil
}

// EquipItem puts owned equipment into slot and rebuilds the deck.
func (e *Engine) EquipItem(s *State, id string, slot deck.Slot) (*State, error) {
	if s.Status.Terminal() {
		return s, ErrGameOver
	}
	if s.Status == StatusBattle {
		return s, ErrInBattle
	}
	ns := s.Clone()
	if !ns.Player.Equip(e.rng, id, slot) {
		return s, fmt.Errorf("%w: %q in %s", ErrCannotEquip, id, slot)
	}
	return ns, nil
}

// AcquireEquipment adds catalog equipment to the owned pool. Acquiring
// something already owned changes nothing.
func (e *Engine) AcquireEquipment(s *State, id string) (*State, error) {
	if s.Status.Terminal() {
		return s, ErrGameOver
	}
	eq, ok := e.content.FindEquipment(id)
	if !ok {
		return s, fmt.Errorf("%w: %q", ErrUnknownContent, id)
	}
	if s.Player.Owns(id) {
		return s, nil
	}
	ns := s.Clone()
	ns.Player.Acquire(eq)
	ns.LastReward = &Reward{Kind: RewardEquipment, Name: eq.Name, Description: eq.Description, Equipment: &eq}
	return ns, nil
}

// HealPlayer restores up to amount health.
func (e *Engine) HealPlayer(s *State, amount int) (*State, error) {
	if amount < 0 {
		return s, ErrInvalidAmount
	}
	if s.Status.Terminal() {
		return s, ErrGameOver
	}
	ns := s.Clone()
	ns.Player.Heal(amount)
	return ns, nil
}

// AddGold gives the player gold.
func (e *Engine) AddGold(s *State, amount int) (*State, error) {
	if amount < 0 {
		return s, ErrInvalidAmount
	}
	if s.Status.Terminal() {
		return s, ErrGameOver
	}
	ns := s.Clone()
	ns.Player.Gold += amount
	return ns, nil
}

// AddPerk grants a perk. An empty id is filled in.
func (e *Engine) AddPerk(s *State, perk inventory.Perk) (*State, error) {
	if s.Status.Terminal() {
		return s, ErrGameOver
	}
	ns := s.Clone()
	if perk.ID == "" {
		perk.ID = e.newID("perk_")
	}
	ns.Player.Perks = append(ns.Player.Perks, perk)
	return ns, nil
}

// Rest heals at a camp and returns to the path.
func (e *Engine) Rest(s *State) (*State, error) {
	if err := at(s, StatusCamp); err != nil {
		return s, err
	}
	ns := s.Clone()
	healed := ns.Player.Heal(e.rules.CampHeal)
	ns.LastReward = &Reward{Kind: RewardHeal, Name: "Rested", Description: fmt.Sprintf("Recovered %d HP", healed), Amount: healed}
	ns.Status = StatusPath
	return ns, nil
}

// Pray receives one of the shrine blessings at random and returns to the path.
func (e *Engine) Pray(s *State) (*State, error) {
	if err := at(s, StatusShrine); err != nil {
		return s, err
	}
	ns := s.Clone()
	b := e.rules.Shrine[e.rng.Intn(len(e.rules.Shrine))]
	if b.Gold > 0 {
		ns.Player.Gold += b.Gold
		ns.LastReward = &Reward{Kind: RewardGold, Name: "Offering", Description: fmt.Sprintf("The shrine grants %d gold", b.Gold), Amount: b.Gold}
	} else {
		healed := ns.Player.Heal(b.Heal)
		ns.LastReward = &Reward{Kind: RewardHeal, Name: "Blessing", Description: fmt.Sprintf("Recovered %d HP", healed), Amount: healed}
	}
	ns.Status = StatusPath
	return ns, nil
}

// Reforge upgrades a random card at the blacksmith and returns to the path.
func (e *Engine) Reforge(s *State) (*State, error) {
	if err := at(s, StatusBlacksmith); err != nil {
		return s, err
	}
	ns := s.Clone()
	ns.LastReward = e.upgradeCard(ns.Player, true)
	ns.Status = StatusPath
	return ns, nil
}
