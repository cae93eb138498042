package store

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"brainrot-spire/internal/game"
)

// RunLog summarizes a finished run. One is appended per run to runs.jsonl.
type RunLog struct {
	Player         string    `json:"player,omitempty"`
	EndedAt        time.Time `json:"ended_at"`
	Victory        bool      `json:"victory"`
	Boss           string    `json:"boss"`
	BossesDefeated []string  `json:"bosses_defeated"`
	Depth          int       `json:"depth"` // row reached on the last path
	Turns          int       `json:"turns"` // turn count of the last battle
	Health         int       `json:"health"`
	MaxHealth      int       `json:"max_health"`
	Gold           int       `json:"gold"`
	DeckSize       int       `json:"deck_size"`
	Perks          []string  `json:"perks"`
	CauseOfDeath   string    `json:"cause_of_death,omitempty"`
}

// NewRunLog builds a summary of s.
func NewRunLog(player string, s *game.State, at time.Time) RunLog {
	log := RunLog{
		Player:         player,
		EndedAt:        at.UTC(),
		Victory:        s.Status == game.StatusVictory,
		BossesDefeated: append([]string{}, s.DefeatedBosses...),
		Perks:          []string{},
	}
	if s.CurrentBoss != nil {
		log.Boss = s.CurrentBoss.ID
	}
	if n := s.CurrentNode(); n != nil {
		log.Depth = n.Y
	}
	if s.Battle != nil {
		log.Turns = s.Battle.Turn
		if s.Status == game.StatusDefeat {
			log.CauseOfDeath = s.Battle.Enemy.Name
		}
	}
	if p := s.Player; p != nil {
		log.Health = p.Health
		log.MaxHealth = p.MaxHealth
		log.Gold = p.Gold
		log.DeckSize = len(p.Deck)
		for _, pk := range p.Perks {
			log.Perks = append(log.Perks, pk.Name)
		}
	}
	return log
}

// AppendRunLog appends log as a single JSON line to dir/runs.jsonl.
func AppendRunLog(dir string, log RunLog) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}
	data, err := codec.Marshal(log)
	if err != nil {
		return fmt.Errorf("encode run log: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(dir, "runs.jsonl"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open run log: %w", err)
	}
	defer f.Close()
	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write run log: %w", err)
	}
	return nil
}
