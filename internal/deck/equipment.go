package deck

// Slot is one of the eight fixed equipment slots.
type Slot string

const (
	SlotHead       Slot = "head"
	SlotChest      Slot = "chest"
	SlotWeapon     Slot = "weapon"
	SlotOffhand    Slot = "offhand"
	SlotLegs       Slot = "legs"
	SlotFeet       Slot = "feet"
	SlotAccessory1 Slot = "accessory1"
	SlotAccessory2 Slot = "accessory2"
)

// Slots lists every slot in composition order.
var Slots = []Slot{
	SlotHead,
	SlotChest,
	SlotWeapon,
	SlotOffhand,
	SlotLegs,
	SlotFeet,
	SlotAccessory1,
	SlotAccessory2,
}

// Valid reports whether s is one of the fixed slots.
func (s Slot) Valid() bool {
	for _, known := range Slots {
		if s == known {
			return true
		}
	}
	return false
}

// Equipment is a wearable item that contributes cards to the deck while equipped.
type Equipment struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Slot        Slot   `json:"slot"`
	Grade       Grade  `json:"grade"`
	Cards       []Card `json:"cards"`
}

// Clone returns a deep copy of e.
func (e Equipment) Clone() Equipment {
	e.Cards = CloneCards(e.Cards)
	return e
}

// CardCount returns the number of card instances e contributes.
func (e Equipment) CardCount() int {
	n := 0
	for _, c := range e.Cards {
		n += c.Copies()
	}
	return n
}

// CloneEquipment deep-copies a list of equipment.
func CloneEquipment(list []Equipment) []Equipment {
	if list == nil {
		return nil
	}
	out := make([]Equipment, len(list))
	for i, e := range list {
		out[i] = e.Clone()
	}
	return out
}

// Find returns the equipment with the given id.
func Find(list []Equipment, id string) (Equipment, bool) {
	for _, e := range list {
		if e.ID == id {
			return e, true
		}
	}
	return Equipment{}, false
}
