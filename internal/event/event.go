// Package event describes the choose-one encounters found on event nodes.
package event

// Kind selects how an option's effect is resolved.
type Kind string

const (
	KindHeal    Kind = "heal"
	KindBuff    Kind = "buff"
	KindTrade   Kind = "trade"
	KindRandom  Kind = "random"
	KindUpgrade Kind = "upgrade"
	KindNone    Kind = "none"
)

// Buff targets.
const (
	StatMaxHealth = "max_health"
	StatStrength  = "strength"
)

// Effect is a tagged union; only the fields relevant to Kind are set.
type Effect struct {
	Kind   Kind   `json:"kind"`
	Value  int    `json:"value,omitempty"`  // heal amount or buff size
	Stat   string `json:"stat,omitempty"`   // buff target
	HP     int    `json:"hp,omitempty"`     // trade: health change, usually negative
	Reward string `json:"reward,omitempty"` // trade: what is received
	Gold   int    `json:"gold,omitempty"`   // random: good outcome
	Curse  string `json:"curse,omitempty"`  // random: bad outcome perk name
	Target string `json:"target,omitempty"` // upgrade target
}

// Option is one choice offered by an event.
type Option struct {
	Text   string `json:"text"`
	Effect Effect `json:"effect"`
}

// Event is a narrative encounter.
type Event struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Options     []Option `json:"options"`
}

// Clone returns a deep copy of e.
func (e Event) Clone() Event {
	e.Options = append([]Option(nil), e.Options...)
	return e
}
