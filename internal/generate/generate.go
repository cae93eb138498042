package generate

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sort"

	"brainrot-spire/internal/battle"
	"brainrot-spire/internal/event"
)

// Weight is the draw weight of one interior node type.
type Weight struct {
	Type   NodeType `yaml:"type" json:"type"`
	Weight float64  `yaml:"weight" json:"weight"`
}

// Config drives generation of one path.
type Config struct {
	Width   int // max nodes per row and number of columns
	Height  int // rows including start and boss
	Weights []Weight
	Enemies []battle.Foe
	Events  []event.Event
	Boss    battle.Foe
	Rand    *rand.Rand
}

var (
	ErrBadWeights = errors.New("node weights must sum to 1")
	ErrTooShort   = errors.New("path height must be at least 3")
	ErrTooNarrow  = errors.New("path width must be at least 1")
)

// Validate checks the structural limits of cfg.
func (cfg *Config) Validate() error {
	if cfg.Height < 3 {
		return fmt.Errorf("%w: got %d", ErrTooShort, cfg.Height)
	}
	if cfg.Width < 1 {
		return fmt.Errorf("%w: got %d", ErrTooNarrow, cfg.Width)
	}
	return ValidateWeights(cfg.Weights)
}

// ValidateWeights checks that ws is non-empty and sums to 1.
func ValidateWeights(ws []Weight) error {
	sum := 0.0
	for _, w := range ws {
		if w.Weight < 0 {
			return fmt.Errorf("%w: %s is negative", ErrBadWeights, w.Type)
		}
		sum += w.Weight
	}
	if math.Abs(sum-1) > 1e-9 {
		return fmt.Errorf("%w: got %g", ErrBadWeights, sum)
	}
	return nil
}

// Generate builds a path: a start node, Height-2 interior rows of 1..Width
// nodes each and a boss node. The row before the boss is all camps. Every
// non-start node has at least one incoming edge and only the start node's
// successors are available.
func Generate(cfg *Config) *Path {
	rng := cfg.Rand
	mid := cfg.Width / 2
	p := &Path{CurrentNode: StartID}

	p.Nodes = append(p.Nodes, Node{ID: StartID, Type: NodeStart, X: mid, Y: 0, Visited: true, Available: true})

	for y := 1; y < cfg.Height-1; y++ {
		count := rng.Intn(cfg.Width) + 1
		cols := rng.Perm(cfg.Width)[:count]
		sort.Ints(cols)
		for _, x := range cols {
			typ := NodeCamp
			if y != cfg.Height-2 {
				typ = pickType(rng, cfg.Weights)
			}
			n := Node{ID: fmt.Sprintf("node-%d-%d", y, x), Type: typ, X: x, Y: y}
			switch typ {
			case NodeBattle:
				if len(cfg.Enemies) > 0 {
					foe := cfg.Enemies[rng.Intn(len(cfg.Enemies))].Clone()
					foe.Kind = battle.KindEnemy
					foe.CurrentHealth = foe.Health
					n.Foe = &foe
				}
			case NodeEvent:
				if len(cfg.Events) > 0 {
					ev := cfg.Events[rng.Intn(len(cfg.Events))].Clone()
					n.Event = &ev
				}
			}
			p.Nodes = append(p.Nodes, n)
		}
	}

	boss := cfg.Boss.Clone()
	boss.Kind = battle.KindBoss
	boss.CurrentHealth = boss.Health
	p.Nodes = append(p.Nodes, Node{ID: BossID, Type: NodeBoss, X: mid, Y: cfg.Height - 1, Foe: &boss})

	connect(p, cfg.Height, rng)

	start := p.Node(StartID)
	for _, id := range start.Connections {
		p.Node(id).Available = true
	}
	return p
}

// pickType draws a node type by cumulative weight. Rounding slack falls back to battle.
func pickType(rng *rand.Rand, ws []Weight) NodeType {
	r := rng.Float64()
	cum := 0.0
	for _, w := range ws {
		cum += w.Weight
		if r <= cum {
			return w.Type
		}
	}
	return NodeBattle
}

// byDistance orders nodes by column distance from x, then by column.
func byDistance(nodes []*Node, x int) []*Node {
	out := append([]*Node(nil), nodes...)
	sort.SliceStable(out, func(i, j int) bool {
		di, dj := abs(out[i].X-x), abs(out[j].X-x)
		if di != dj {
			return di < dj
		}
		return out[i].X < out[j].X
	})
	return out
}

func connect(p *Path, height int, rng *rand.Rand) {
	// Forward: each node links to its one or two nearest successors.
	for y := 0; y < height-1; y++ {
		next := p.Row(y + 1)
		for _, n := range p.Row(y) {
			k := min(len(next), rng.Intn(2)+1)
			for _, t := range byDistance(next, n.X)[:k] {
				n.Connections = append(n.Connections, t.ID)
			}
		}
	}
	// Backfill: orphans get an edge from the nearest node above.
	for y := 1; y < height; y++ {
		prev := p.Row(y - 1)
		if len(prev) == 0 {
			continue
		}
		for _, n := range p.Row(y) {
			if len(p.Incoming(n.ID)) > 0 {
				continue
			}
			closest := byDistance(prev, n.X)[0]
			closest.Connections = append(closest.Connections, n.ID)
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
