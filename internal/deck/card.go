package deck

// Grade is a rarity tier. It only drives presentation emphasis.
type Grade string

const (
	GradeCommon    Grade = "common"
	GradeUncommon  Grade = "uncommon"
	GradeRare      Grade = "rare"
	GradeEpic      Grade = "epic"
	GradeLegendary Grade = "legendary"
)

// Card is an immutable card template. Piles hold value copies of it.
type Card struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Energy      int    `json:"energy"` // cost to play
	Damage      int    `json:"damage,omitempty"`
	Hits        int    `json:"hits,omitempty"` // 0 means a single hit
	Block       int    `json:"block,omitempty"`
	Strength    int    `json:"strength,omitempty"`
	Heal        int    `json:"heal,omitempty"`
	EnergyGain  int    `json:"energy_gain,omitempty"`
	Draw        int    `json:"draw,omitempty"`
	Quantity    int    `json:"quantity,omitempty"` // copies emitted by Compose; 0 means 1
	Upgraded    bool   `json:"upgraded,omitempty"`
	Grade       Grade  `json:"grade,omitempty"`
}

// HitCount returns how many times the card's damage is applied.
func (c Card) HitCount() int {
	if c.Hits < 1 {
		return 1
	}
	return c.Hits
}

// Copies returns how many instances Compose emits for this template.
func (c Card) Copies() int {
	if c.Quantity < 1 {
		return 1
	}
	return c.Quantity
}

// Upgrade scales damage and block by factor (rounded down) and flags the card.
func (c *Card) Upgrade(factor float64) {
	if c.Damage > 0 {
		c.Damage = int(float64(c.Damage) * factor)
	}
	if c.Block > 0 {
		c.Block = int(float64(c.Block) * factor)
	}
	c.Upgraded = true
}

// CloneCards returns a copy of cards that shares no backing array.
func CloneCards(cards []Card) []Card {
	if cards == nil {
		return nil
	}
	out := make([]Card, len(cards))
	copy(out, cards)
	return out
}
