// Package assets holds the static content tables: bosses, enemies, equipment,
// items, events and the shop shelf.
package assets

import (
	"brainrot-spire/internal/battle"
	"brainrot-spire/internal/deck"
	"brainrot-spire/internal/event"
	"brainrot-spire/internal/inventory"
)

// Catalog bundles the content tables the engine reads. Tests substitute
// smaller catalogs.
type Catalog struct {
	Bosses    []battle.Foe
	Enemies   []battle.Foe
	Equipment []deck.Equipment
	Items     []inventory.Item
	Events    []event.Event
	Shop      []ShopEntry
}

// Default returns the built-in content.
func Default() Catalog {
	return Catalog{
		Bosses:    Bosses,
		Enemies:   Enemies,
		Equipment: Equipment,
		Items:     Items,
		Events:    Events,
		Shop:      Shop,
	}
}

// Boss returns a copy of the boss with the given id.
func (c Catalog) Boss(id string) (battle.Foe, bool) {
	for _, b := range c.Bosses {
		if b.ID == id {
			return b.Clone(), true
		}
	}
	return battle.Foe{}, false
}

// FindEquipment returns a copy of the equipment with the given id.
func (c Catalog) FindEquipment(id string) (deck.Equipment, bool) {
	eq, ok := deck.Find(c.Equipment, id)
	if !ok {
		return deck.Equipment{}, false
	}
	return eq.Clone(), true
}

// FindItem returns the item template with the given id.
func (c Catalog) FindItem(id string) (inventory.Item, bool) {
	return inventory.Find(c.Items, id)
}
