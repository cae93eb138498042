// Package deck derives battle decks from equipped gear and manages the
// draw/hand/discard piles during a fight.
package deck

import "math/rand"

// Compose builds the active deck from the equipped slots. Slots are visited in
// Slots order and each card template is copied Quantity times. Slots pointing
// at unknown equipment ids are skipped.
func Compose(owned []Equipment, equipped map[Slot]string) []Card {
	var out []Card
	for _, slot := range Slots {
		id, ok := equipped[slot]
		if !ok || id == "" {
			continue
		}
		eq, found := Find(owned, id)
		if !found {
			continue
		}
		for _, c := range eq.Cards {
			for i := 0; i < c.Copies(); i++ {
				out = append(out, c)
			}
		}
	}
	return out
}

// Shuffle returns a uniformly shuffled copy of cards.
func Shuffle(rng *rand.Rand, cards []Card) []Card {
	out := CloneCards(cards)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// Piles is the in-battle card cycle. The top of the draw pile is its last element.
type Piles struct {
	Draw    []Card `json:"draw_pile"`
	Hand    []Card `json:"hand"`
	Discard []Card `json:"discard_pile"`
}

// Reset empties hand and discard and refills the draw pile with a fresh shuffle of cards.
func (p *Piles) Reset(rng *rand.Rand, cards []Card) {
	p.Draw = Shuffle(rng, cards)
	p.Hand = []Card{}
	p.Discard = []Card{}
}

// DrawCards moves up to n cards from the draw pile into the hand. When the draw
// pile runs out the discard pile is shuffled into a new draw pile. Drawing stops
// when both are empty. It returns the number of cards drawn.
func (p *Piles) DrawCards(rng *rand.Rand, n int) int {
	drawn := 0
	for i := 0; i < n; i++ {
		if len(p.Draw) == 0 {
			if len(p.Discard) == 0 {
				break
			}
			p.Draw = Shuffle(rng, p.Discard)
			p.Discard = []Card{}
		}
		last := len(p.Draw) - 1
		p.Hand = append(p.Hand, p.Draw[last])
		p.Draw = p.Draw[:last]
		drawn++
	}
	return drawn
}

// DiscardHand moves the whole hand onto the discard pile.
func (p *Piles) DiscardHand() {
	p.Discard = append(p.Discard, p.Hand...)
	p.Hand = []Card{}
}

// Take removes and returns the hand card at index.
func (p *Piles) Take(index int) (Card, bool) {
	if index < 0 || index >= len(p.Hand) {
		return Card{}, false
	}
	c := p.Hand[index]
	hand := make([]Card, 0, len(p.Hand)-1)
	hand = append(hand, p.Hand[:index]...)
	p.Hand = append(hand, p.Hand[index+1:]...)
	return c, true
}

// Count returns the total number of cards across all three piles.
func (p *Piles) Count() int {
	return len(p.Draw) + len(p.Hand) + len(p.Discard)
}

// Clone returns a deep copy of p.
func (p Piles) Clone() Piles {
	return Piles{
		Draw:    CloneCards(p.Draw),
		Hand:    CloneCards(p.Hand),
		Discard: CloneCards(p.Discard),
	}
}
