package game

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"brainrot-spire/assets"
	"brainrot-spire/internal/battle"
	"brainrot-spire/internal/config"
	"brainrot-spire/internal/deck"
	"brainrot-spire/internal/generate"
	"brainrot-spire/internal/inventory"
	"brainrot-spire/internal/player"
)

// Precondition failures. Every action returns its input state unchanged
// together with one of these.
var (
	ErrUnknownBoss      = errors.New("unknown boss")
	ErrBossDefeated     = errors.New("boss already defeated")
	ErrGameOver         = errors.New("run is over")
	ErrWrongStatus      = errors.New("action not available here")
	ErrNodeUnavailable  = errors.New("node is not available")
	ErrNoPreview        = errors.New("no node staged")
	ErrNoBattle         = errors.New("no battle in progress")
	ErrInBattle         = errors.New("not allowed during battle")
	ErrNoEvent          = errors.New("no event in progress")
	ErrNoOption         = errors.New("no such event option")
	ErrNoVictoryEffect  = errors.New("no victory to dismiss")
	ErrNoItem           = errors.New("item not in inventory")
	ErrNotUsable        = errors.New("item cannot be used in battle")
	ErrNoShopEntry      = errors.New("no such shop entry")
	ErrInsufficientGold = errors.New("not enough gold")
	ErrAlreadyOwned     = errors.New("equipment already owned")
	ErrNothingEquipped  = errors.New("no equipment to attach the card to")
	ErrUnknownContent   = errors.New("unknown content id")
	ErrCannotEquip      = errors.New("equipment not owned or wrong slot")
	ErrInvalidAmount    = errors.New("amount must not be negative")
)

// Engine applies actions to run snapshots. Each action clones its input,
// mutates the clone and returns it, so callers may keep older snapshots.
// An Engine owns its random source and is not safe for concurrent use.
type Engine struct {
	rules    config.Tuning
	content  assets.Catalog
	rng      *rand.Rand
	log      zerolog.Logger
	now      func() time.Time
	resolver *battle.Resolver
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine's logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// WithClock overrides the time source used for battle log timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// New returns an engine for the given tuning and content.
func New(rules config.Tuning, content assets.Catalog, rng *rand.Rand, opts ...Option) (*Engine, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, errors.New("nil random source")
	}
	e := &Engine{
		rules:   rules,
		content: content,
		rng:     rng,
		log:     zerolog.Nop(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.resolver = battle.NewResolver(battle.Rules{
		HandSize:          rules.HandSize,
		EnemyStrengthGain: rules.EnemyStrengthGain,
	}, rng, e.now)
	return e, nil
}

// Rules returns the engine's tuning.
func (e *Engine) Rules() config.Tuning { return e.rules }

// Content returns the engine's content tables.
func (e *Engine) Content() assets.Catalog { return e.content }

// CardCost returns what the hand card at index costs right now, or -1.
func (e *Engine) CardCost(s *State, index int) int {
	if s.Battle == nil || index < 0 || index >= len(s.Player.Hand) {
		return -1
	}
	return e.resolver.Cost(s.Player, s.Battle, s.Player.Hand[index])
}

// newID returns an id drawn from the engine's random source.
func (e *Engine) newID(prefix string) string {
	return prefix + uuid.Must(uuid.NewRandomFromReader(e.rng)).String()
}

// InitGame starts a fresh run against bossID. Defeated-boss history is cleared.
func (e *Engine) InitGame(bossID string) (*State, error) {
	boss, ok := e.content.Boss(bossID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBoss, bossID)
	}

	var items []inventory.Item
	for _, id := range e.rules.StartingItems {
		if it, ok := e.content.FindItem(id); ok {
			items = append(items, it)
		}
	}
	gear := e.startingGear()
	p := player.New(e.rng, e.rules.StartingHealth, e.rules.StartingEnergy, e.rules.StartingGold, gear, items)

	s := &State{
		Player:         p,
		CurrentBoss:    &boss,
		DefeatedBosses: []string{},
		Status:         StatusPath,
	}
	s.Path = e.generatePath(boss)
	e.log.Info().Str("boss", bossID).Int("deck", len(p.Deck)).Msg("run started")
	return s, nil
}

// ResetGame starts a fresh run against the default boss.
func (e *Engine) ResetGame() (*State, error) {
	return e.InitGame(e.rules.DefaultBoss)
}

// ChallengeBoss continues a run after a boss kill: the player and the defeated
// list carry over and a new path is generated toward bossID.
func (e *Engine) ChallengeBoss(s *State, bossID string) (*State, error) {
	if s.Status.Terminal() {
		return s, ErrGameOver
	}
	if s.Status != StatusMenu {
		return s, ErrWrongStatus
	}
	if s.HasDefeated(bossID) {
		return s, fmt.Errorf("%w: %q", ErrBossDefeated, bossID)
	}
	boss, ok := e.content.Boss(bossID)
	if !ok {
		return s, fmt.Errorf("%w: %q", ErrUnknownBoss, bossID)
	}

	ns := s.Clone()
	ns.CurrentBoss = &boss
	ns.Path = e.generatePath(boss)
	ns.Battle = nil
	ns.Event = nil
	ns.Preview = ""
	ns.ShowVictoryEffect = false
	ns.LastReward = nil
	ns.Status = StatusPath
	ns.Player.Reset(e.rng, ns.Player.Deck)
	e.log.Info().Str("boss", bossID).Int("defeated", ns.BossesDefeated()).Msg("boss challenged")
	return ns, nil
}

func (e *Engine) startingGear() []deck.Equipment {
	var gear []deck.Equipment
	for _, id := range e.rules.StartingEquipment {
		eq, ok := e.content.FindEquipment(id)
		if !ok {
			e.log.Warn().Str("equipment", id).Msg("unknown starting equipment")
			continue
		}
		gear = append(gear, eq)
	}
	return gear
}

func (e *Engine) generatePath(boss battle.Foe) *generate.Path {
	return generate.Generate(&generate.Config{
		Width:   e.rules.Path.MaxWidth,
		Height:  e.rules.Path.Height,
		Weights: e.rules.Path.Weights,
		Enemies: e.content.Enemies,
		Events:  e.content.Events,
		Boss:    boss,
		Rand:    e.rng,
	})
}
