// Package generate builds the layered encounter path walked during a run.
package generate

import (
	"brainrot-spire/internal/battle"
	"brainrot-spire/internal/event"
)

// NodeType determines what happens when a node is entered.
type NodeType string

const (
	NodeStart      NodeType = "start"
	NodeBattle     NodeType = "battle"
	NodeShop       NodeType = "shop"
	NodeEvent      NodeType = "event"
	NodeCamp       NodeType = "camp"
	NodeShrine     NodeType = "shrine"
	NodeBlacksmith NodeType = "blacksmith"
	NodeBoss       NodeType = "boss"
)

// Fixed node ids.
const (
	StartID = "start"
	BossID  = "boss"
)

// Node is one step on the path. Foe is set on battle and boss nodes, Event on
// event nodes.
type Node struct {
	ID          string       `json:"id"`
	Type        NodeType     `json:"type"`
	X           int          `json:"x"`
	Y           int          `json:"y"`
	Connections []string     `json:"connections"`
	Visited     bool         `json:"visited"`
	Available   bool         `json:"available"`
	Foe         *battle.Foe  `json:"foe,omitempty"`
	Event       *event.Event `json:"event,omitempty"`
}

// Clone returns a deep copy of n.
func (n Node) Clone() Node {
	n.Connections = append([]string(nil), n.Connections...)
	if n.Foe != nil {
		f := n.Foe.Clone()
		n.Foe = &f
	}
	if n.Event != nil {
		e := n.Event.Clone()
		n.Event = &e
	}
	return n
}

// ConnectsTo reports whether n has an edge to id.
func (n *Node) ConnectsTo(id string) bool {
	for _, c := range n.Connections {
		if c == id {
			return true
		}
	}
	return false
}

// Path is the full node graph plus the id of the node the player stands on.
type Path struct {
	Nodes       []Node `json:"nodes"`
	CurrentNode string `json:"current_node"`
}

// Node returns the node with the given id, or nil.
func (p *Path) Node(id string) *Node {
	for i := range p.Nodes {
		if p.Nodes[i].ID == id {
			return &p.Nodes[i]
		}
	}
	return nil
}

// Row returns the nodes at layer y in ascending column order.
func (p *Path) Row(y int) []*Node {
	var row []*Node
	for i := range p.Nodes {
		if p.Nodes[i].Y == y {
			row = append(row, &p.Nodes[i])
		}
	}
	return row
}

// Height returns the number of layers.
func (p *Path) Height() int {
	h := 0
	for _, n := range p.Nodes {
		if n.Y+1 > h {
			h = n.Y + 1
		}
	}
	return h
}

// Incoming returns the ids of nodes with an edge to id.
func (p *Path) Incoming(id string) []string {
	var in []string
	for _, n := range p.Nodes {
		if n.ConnectsTo(id) {
			in = append(in, n.ID)
		}
	}
	return in
}

// Visit marks id visited, makes its next-row connections available and closes
// every unvisited sibling in the same row.
func (p *Path) Visit(id string) *Node {
	target := p.Node(id)
	if target == nil {
		return nil
	}
	target.Visited = true
	for i := range p.Nodes {
		n := &p.Nodes[i]
		switch {
		case n.ID == id:
		case n.Y == target.Y+1 && target.ConnectsTo(n.ID):
			n.Available = true
		case n.Y == target.Y && !n.Visited:
			n.Available = false
		}
	}
	p.CurrentNode = id
	return target
}

// Clone returns a deep copy of p.
func (p *Path) Clone() *Path {
	if p == nil {
		return nil
	}
	c := &Path{CurrentNode: p.CurrentNode, Nodes: make([]Node, len(p.Nodes))}
	for i, n := range p.Nodes {
		c.Nodes[i] = n.Clone()
	}
	return c
}
