// Package ui is a terminal front end for the run controller. It renders the
// latest snapshot, turns key presses into engine actions one at a time and
// saves the snapshot after every accepted action.
package ui

import (
	"context"
	"errors"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"brainrot-spire/internal/battle"
	"brainrot-spire/internal/deck"
	"brainrot-spire/internal/game"
	"brainrot-spire/internal/generate"
	"brainrot-spire/internal/store"
)

type mode uint8

const (
	modeMain mode = iota
	modeItems
	modeEquip
)

// App drives one player's run on one screen. It is not safe for concurrent use.
type App struct {
	screen tcell.Screen
	engine *game.Engine
	store  store.Store
	key    string
	name   string
	log    zerolog.Logger
	onEnd  func(*game.State)

	state  *game.State // nil until a run is started
	mode   mode
	cursor int
	msg    string
	ended  bool // onEnd already called for this run
	quit   bool
}

// Option configures an App.
type Option func(*App)

// WithLogger sets the app's logger.
func WithLogger(l zerolog.Logger) Option { return func(a *App) { a.log = l } }

// WithName sets the player name shown in the header.
func WithName(name string) Option { return func(a *App) { a.name = name } }

// WithRunEnd registers a callback invoked once when a run reaches victory or defeat.
func WithRunEnd(fn func(*game.State)) Option { return func(a *App) { a.onEnd = fn } }

// New returns an app that saves snapshots under key in st.
func New(screen tcell.Screen, engine *game.Engine, st store.Store, key string, opts ...Option) *App {
	a := &App{
		screen: screen,
		engine: engine,
		store:  st,
		key:    key,
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// State returns the current snapshot, or nil before a run has started.
func (a *App) State() *game.State { return a.state }

// Load restores the saved snapshot for the app's key, if any.
func (a *App) Load(ctx context.Context) {
	s, err := a.store.Load(ctx, a.key)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return
	case err != nil:
		a.log.Warn().Err(err).Str("key", a.key).Msg("could not load save; starting fresh")
		return
	}
	a.state = s
	a.ended = s.Status.Terminal()
	a.log.Info().Str("key", a.key).Str("status", string(s.Status)).Msg("save loaded")
}

// Run loads the saved run and processes input until the player quits or the
// screen is closed.
func (a *App) Run(ctx context.Context) error {
	a.Load(ctx)
	for !a.quit {
		if err := ctx.Err(); err != nil {
			return err
		}
		a.Draw()
		ev := a.screen.PollEvent()
		if ev == nil {
			return nil
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			a.screen.Sync()
		case *tcell.EventKey:
			a.HandleKey(ctx, ev)
		}
	}
	return nil
}

// apply returns a func that takes an engine action's result, so calls read
// a.apply(ctx)(a.engine.Rest(s)).
func (a *App) apply(ctx context.Context) func(*game.State, error) bool {
	return func(next *game.State, err error) bool {
		return a.commit(ctx, next, err)
	}
}

// commit stores the result of an engine action. Rejected actions leave the
// snapshot alone and show the reason.
func (a *App) commit(ctx context.Context, next *game.State, err error) bool {
	if err != nil {
		a.msg = err.Error()
		a.log.Debug().Err(err).Msg("action rejected")
		return false
	}
	prev := a.state
	a.state = next
	a.msg = ""
	if prev == nil || prev.Status != next.Status {
		a.cursor = 0
	}
	if err := a.store.Save(ctx, a.key, next); err != nil {
		a.log.Error().Err(err).Str("key", a.key).Msg("save failed")
	}
	if next.Status.Terminal() && !a.ended {
		a.ended = true
		if a.onEnd != nil {
			a.onEnd(next)
		}
	}
	return true
}

// HandleKey applies one key press.
func (a *App) HandleKey(ctx context.Context, ev *tcell.EventKey) {
	act := keyToAction(ev)
	if act == ActionQuit {
		a.quit = true
		return
	}
	if pick := digit(ev); pick >= 0 && pick < a.choices() {
		a.cursor = pick
		act = ActionSelect
	}
	switch act {
	case ActionUp:
		a.move(-1)
		return
	case ActionDown:
		a.move(1)
		return
	}

	s := a.state
	if s == nil {
		if act == ActionSelect {
			bosses := a.engine.Content().Bosses
			if a.cursor < len(bosses) {
				a.ended = false
				next, err := a.engine.InitGame(bosses[a.cursor].ID)
				a.apply(ctx)(next, err)
			}
		}
		return
	}

	if s.LastReward != nil && !s.ShowVictoryEffect && !s.Status.Terminal() {
		if act == ActionSelect || act == ActionBack {
			a.apply(ctx)(a.engine.ClearLastReward(s))
		}
		return
	}

	switch a.mode {
	case modeItems:
		a.itemKey(ctx, act)
		return
	case modeEquip:
		a.equipKey(ctx, act)
		return
	}

	switch s.Status {
	case game.StatusMenu:
		if act == ActionSelect {
			if b := a.bossChoices(); a.cursor < len(b) {
				a.apply(ctx)(a.engine.ChallengeBoss(s, b[a.cursor].ID))
			}
		}
	case game.StatusPath:
		a.pathKey(ctx, act)
	case game.StatusBattle:
		a.battleKey(ctx, act)
	case game.StatusEvent:
		if act == ActionSelect {
			a.apply(ctx)(a.engine.ResolveEvent(s, a.cursor))
		}
	case game.StatusShop:
		switch act {
		case ActionSelect:
			a.apply(ctx)(a.engine.BuyItem(s, a.cursor))
		case ActionBack:
			a.apply(ctx)(a.engine.LeaveNode(s))
		case ActionItems, ActionEquip:
			a.openMode(act)
		}
	case game.StatusCamp, game.StatusShrine, game.StatusBlacksmith:
		switch act {
		case ActionSelect:
			a.apply(ctx)(a.nodeAction(s))
		case ActionBack:
			a.apply(ctx)(a.engine.LeaveNode(s))
		}
	case game.StatusStart:
		if act == ActionSelect || act == ActionBack {
			a.apply(ctx)(a.engine.LeaveNode(s))
		}
	case game.StatusVictory, game.StatusDefeat:
		if act == ActionSelect {
			if s.ShowVictoryEffect {
				a.apply(ctx)(a.engine.HideVictoryEffect(s))
				return
			}
			a.state = nil
			a.cursor = 0
			a.msg = ""
		}
	}
}

func (a *App) nodeAction(s *game.State) (*game.State, error) {
	switch s.Status {
	case game.StatusCamp:
		return a.engine.Rest(s)
	case game.StatusShrine:
		return a.engine.Pray(s)
	default:
		return a.engine.Reforge(s)
	}
}

func (a *App) pathKey(ctx context.Context, act Action) {
	s := a.state
	nodes := a.availableNodes()
	switch act {
	case ActionSelect:
		if len(nodes) == 0 {
			return
		}
		id := nodes[min(a.cursor, len(nodes)-1)].ID
		if s.Preview == id {
			a.apply(ctx)(a.engine.ConfirmNodeMove(s))
			return
		}
		a.apply(ctx)(a.engine.PreviewNode(s, id))
	case ActionBack:
		if s.Preview != "" {
			a.apply(ctx)(a.engine.CancelNodePreview(s))
		}
	case ActionItems, ActionEquip:
		a.openMode(act)
	}
}

func (a *App) battleKey(ctx context.Context, act Action) {
	s := a.state
	if s.ShowVictoryEffect {
		if act == ActionSelect {
			a.apply(ctx)(a.engine.HideVictoryEffect(s))
		}
		return
	}
	switch act {
	case ActionSelect:
		a.apply(ctx)(a.engine.PlayCard(s, a.cursor))
		if n := len(a.state.Player.Hand); a.cursor >= n && n > 0 {
			a.cursor = n - 1
		}
	case ActionEndTurn:
		a.apply(ctx)(a.engine.EndTurn(s))
	case ActionItems:
		a.openMode(act)
	}
}

func (a *App) openMode(act Action) {
	a.cursor = 0
	if act == ActionItems {
		a.mode = modeItems
	} else {
		a.mode = modeEquip
	}
}

func (a *App) itemKey(ctx context.Context, act Action) {
	switch act {
	case ActionBack, ActionItems:
		a.mode, a.cursor = modeMain, 0
	case ActionSelect:
		items := a.state.Player.Items
		if a.cursor < len(items) {
			if a.apply(ctx)(a.engine.UseItem(a.state, items[a.cursor].ID)) {
				a.mode, a.cursor = modeMain, 0
			}
		}
	}
}

func (a *App) equipKey(ctx context.Context, act Action) {
	switch act {
	case ActionBack, ActionEquip:
		a.mode, a.cursor = modeMain, 0
	case ActionSelect:
		owned := a.state.Player.Equipment
		if a.cursor < len(owned) {
			eq := owned[a.cursor]
			if a.apply(ctx)(a.engine.EquipItem(a.state, eq.ID, eq.Slot)) {
				a.msg = "Equipped " + eq.Name
			}
		}
	}
}

func (a *App) move(d int) {
	n := a.choices()
	if n == 0 {
		a.cursor = 0
		return
	}
	a.cursor = (a.cursor + d + n) % n
}

// choices returns how many entries the current screen lets the cursor pick from.
func (a *App) choices() int {
	s := a.state
	if s == nil {
		return len(a.engine.Content().Bosses)
	}
	switch a.mode {
	case modeItems:
		return len(s.Player.Items)
	case modeEquip:
		return len(s.Player.Equipment)
	}
	switch s.Status {
	case game.StatusMenu:
		return len(a.bossChoices())
	case game.StatusPath:
		return len(a.availableNodes())
	case game.StatusBattle:
		return len(s.Player.Hand)
	case game.StatusEvent:
		if s.Event != nil {
			return len(s.Event.Options)
		}
	case game.StatusShop:
		return len(a.engine.Content().Shop)
	}
	return 0
}

// bossChoices lists the bosses not yet beaten this run.
func (a *App) bossChoices() []battle.Foe {
	var out []battle.Foe
	for _, b := range a.engine.Content().Bosses {
		if a.state == nil || !a.state.HasDefeated(b.ID) {
			out = append(out, b)
		}
	}
	return out
}

// availableNodes lists the nodes the player can move to, left to right.
func (a *App) availableNodes() []*generate.Node {
	var out []*generate.Node
	if a.state == nil || a.state.Path == nil {
		return out
	}
	for i := range a.state.Path.Nodes {
		n := &a.state.Path.Nodes[i]
		if n.Available && !n.Visited {
			out = append(out, n)
		}
	}
	return out
}

func equippedIn(p map[deck.Slot]string, eq deck.Equipment) bool {
	return p[eq.Slot] == eq.ID
}
