package generate

import (
	"errors"
	"math/rand"
	"testing"

	"brainrot-spire/internal/battle"
	"brainrot-spire/internal/event"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testWeights = []Weight{
	{NodeBattle, 0.5},
	{NodeShop, 0.1},
	{NodeEvent, 0.15},
	{NodeCamp, 0.05},
	{NodeShrine, 0.1},
	{NodeBlacksmith, 0.1},
}

func defaultTestConfig(seed int64) *Config {
	return &Config{
		Width:   4,
		Height:  15,
		Weights: testWeights,
		Enemies: []battle.Foe{
			{ID: "meme_goblin", Name: "Meme Goblin", Health: 30, Moves: []battle.Move{{Name: "Scratch", Damage: 5}}},
			{ID: "doge", Name: "Feral Doge", Health: 40, Moves: []battle.Move{{Name: "Much Bite", Damage: 7}}},
		},
		Events: []event.Event{{ID: "abandoned_gym", Options: []event.Option{{Text: "Leave", Effect: event.Effect{Kind: event.KindNone}}}}},
		Boss:   battle.Foe{ID: "tralalero", Name: "Tralalero Tralala", Health: 120, Moves: []battle.Move{{Name: "Surreal Melody", Damage: 12}}},
		Rand:   rand.New(rand.NewSource(seed)),
	}
}

func TestGenerateShape(t *testing.T) {
	for seed := int64(0); seed < 25; seed++ {
		cfg := defaultTestConfig(seed)
		p := Generate(cfg)

		start := p.Node(StartID)
		require.NotNil(t, start)
		if !start.Visited || !start.Available || start.X != 2 || start.Y != 0 {
			t.Fatalf("seed=%d: bad start node %+v", seed, *start)
		}
		boss := p.Node(BossID)
		require.NotNil(t, boss)
		if boss.Y != 14 || boss.Type != NodeBoss || boss.Foe == nil || boss.Foe.Kind != battle.KindBoss {
			t.Fatalf("seed=%d: bad boss node %+v", seed, *boss)
		}
		assert.Equal(t, 15, p.Height())

		for y := 1; y < 14; y++ {
			row := p.Row(y)
			if len(row) < 1 || len(row) > 4 {
				t.Errorf("seed=%d row=%d: %d nodes; want 1..4", seed, y, len(row))
			}
			for i := 1; i < len(row); i++ {
				if row[i].X <= row[i-1].X {
					t.Errorf("seed=%d row=%d: columns not strictly ascending", seed, y)
				}
			}
			for _, n := range row {
				if y == 13 && n.Type != NodeCamp {
					t.Errorf("seed=%d: node %s before the boss is %s; want camp", seed, n.ID, n.Type)
				}
				if n.Type == NodeBattle && (n.Foe == nil || n.Foe.CurrentHealth != n.Foe.Health) {
					t.Errorf("seed=%d: battle node %s has no fresh foe", seed, n.ID)
				}
				if n.Type == NodeEvent && n.Event == nil {
					t.Errorf("seed=%d: event node %s has no event", seed, n.ID)
				}
			}
		}
	}
}

func TestGenerateEveryNodeReachable(t *testing.T) {
	for seed := int64(0); seed < 25; seed++ {
		p := Generate(defaultTestConfig(seed))
		for _, n := range p.Nodes {
			if n.ID == StartID {
				continue
			}
			if len(p.Incoming(n.ID)) == 0 {
				t.Errorf("seed=%d: node %s has no incoming edge", seed, n.ID)
			}
		}
		for _, n := range p.Nodes {
			for _, c := range n.Connections {
				target := p.Node(c)
				require.NotNil(t, target)
				if target.Y != n.Y+1 {
					t.Errorf("seed=%d: edge %s -> %s skips a row", seed, n.ID, c)
				}
			}
		}
	}
}

func TestGenerateAvailability(t *testing.T) {
	p := Generate(defaultTestConfig(3))
	start := p.Node(StartID)
	for _, n := range p.Nodes {
		if n.ID == StartID {
			continue
		}
		want := start.ConnectsTo(n.ID)
		if n.Available != want || n.Visited {
			t.Errorf("node %s: available=%v visited=%v; want available=%v visited=false", n.ID, n.Available, n.Visited, want)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(defaultTestConfig(42))
	b := Generate(defaultTestConfig(42))
	assert.Equal(t, a, b)
}

func TestGenerateNodeContentIsCopied(t *testing.T) {
	cfg := defaultTestConfig(1)
	p := Generate(cfg)
	boss := p.Node(BossID)
	boss.Foe.CurrentHealth = 0
	boss.Foe.Moves[0].Damage = 99
	assert.Equal(t, 12, cfg.Boss.Moves[0].Damage)

	c := p.Clone()
	c.Node(BossID).Foe.Name = "changed"
	assert.Equal(t, "Tralalero Tralala", p.Node(BossID).Foe.Name)
}

func TestConnectTieBreaksOnLowerColumn(t *testing.T) {
	p := &Path{Nodes: []Node{
		{ID: "a", X: 1, Y: 0},
		{ID: "b", X: 0, Y: 1},
		{ID: "c", X: 2, Y: 1},
	}}
	got := byDistance(p.Row(1), 1)
	assert.Equal(t, "b", got[0].ID)
	assert.Equal(t, "c", got[1].ID)
}

func TestVisitRowExclusivity(t *testing.T) {
	for seed := int64(0); seed < 25; seed++ {
		p := Generate(defaultTestConfig(seed))
		// Walk greedily along first connections up to the boss.
		cur := p.Node(StartID)
		for cur.ID != BossID {
			next := p.Node(cur.Connections[0])
			require.True(t, next.Available, "seed=%d: %s should be available", seed, next.ID)
			p.Visit(next.ID)
			for _, sib := range p.Row(next.Y) {
				if sib.ID != next.ID && !sib.Visited && sib.Available {
					t.Fatalf("seed=%d: sibling %s still available after visiting %s", seed, sib.ID, next.ID)
				}
			}
			for _, c := range next.Connections {
				assert.True(t, p.Node(c).Available)
			}
			cur = next
		}
		assert.Equal(t, BossID, p.CurrentNode)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		mut  func(*Config)
		want error
	}{
		{"ok", func(*Config) {}, nil},
		{"short", func(c *Config) { c.Height = 2 }, ErrTooShort},
		{"narrow", func(c *Config) { c.Width = 0 }, ErrTooNarrow},
		{"weights", func(c *Config) { c.Weights = []Weight{{NodeBattle, 0.7}} }, ErrBadWeights},
		{"negative", func(c *Config) { c.Weights = []Weight{{NodeBattle, 1.5}, {NodeShop, -0.5}} }, ErrBadWeights},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultTestConfig(0)
			tt.mut(cfg)
			err := cfg.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}
