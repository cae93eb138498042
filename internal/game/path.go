package game

import (
	"fmt"

	"brainrot-spire/internal/generate"
)

func (e *Engine) movable(s *State, id string) error {
	if s.Status.Terminal() {
		return ErrGameOver
	}
	if s.Status != StatusPath {
		return ErrWrongStatus
	}
	n := s.Path.Node(id)
	if n == nil || !n.Available || n.Visited {
		return fmt.Errorf("%w: %q", ErrNodeUnavailable, id)
	}
	return nil
}

// PreviewNode stages an available node without touching the path.
func (e *Engine) PreviewNode(s *State, id string) (*State, error) {
	if err := e.movable(s, id); err != nil {
		return s, err
	}
	ns := s.Clone()
	ns.Preview = id
	return ns, nil
}

// ConfirmNodeMove moves to the staged node.
func (e *Engine) ConfirmNodeMove(s *State) (*State, error) {
	if s.Preview == "" {
		return s, ErrNoPreview
	}
	return e.MoveToNode(s, s.Preview)
}

// CancelNodePreview discards the staged node, if any.
func (e *Engine) CancelNodePreview(s *State) (*State, error) {
	ns := s.Clone()
	ns.Preview = ""
	return ns, nil
}

// MoveToNode visits an available node. Siblings in its row close, its
// successors open and the run switches to the node's encounter.
func (e *Engine) MoveToNode(s *State, id string) (*State, error) {
	if err := e.movable(s, id); err != nil {
		return s, err
	}
	ns := s.Clone()
	ns.Preview = ""
	ns.Battle = nil
	ns.Event = nil
	n := ns.Path.Visit(id)

	switch n.Type {
	case generate.NodeBattle, generate.NodeBoss:
		if n.Foe == nil {
			e.log.Warn().Str("node", id).Msg("battle node without foe")
			ns.Status = StatusPath
			break
		}
		ns.Battle = e.resolver.Start(ns.Player, *n.Foe)
		ns.Status = StatusBattle
	case generate.NodeEvent:
		if n.Event == nil {
			e.log.Warn().Str("node", id).Msg("event node without event")
			ns.Status = StatusPath
			break
		}
		ev := n.Event.Clone()
		ns.Event = &ev
		ns.Status = StatusEvent
	default:
		ns.Status = Status(n.Type)
	}
	e.log.Debug().Str("node", id).Str("type", string(n.Type)).Msg("moved")
	return ns, nil
}

// LeaveNode returns from a shop, camp, shrine or blacksmith to the path.
func (e *Engine) LeaveNode(s *State) (*State, error) {
	switch s.Status {
	case StatusShop, StatusCamp, StatusShrine, StatusBlacksmith, StatusStart:
	default:
		return s, ErrWrongStatus
	}
	ns := s.Clone()
	ns.Status = StatusPath
	return ns, nil
}
