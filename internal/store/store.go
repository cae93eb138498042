// Package store persists run snapshots. A snapshot is the complete game.State
// encoded as JSON and kept under a caller-chosen key.
package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"

	"brainrot-spire/internal/game"
)

var (
	ErrNotFound = errors.New("snapshot not found")
	ErrBadKey   = errors.New("invalid snapshot key")
	ErrCorrupt  = errors.New("corrupt snapshot")
)

// Store saves and loads snapshots by key.
type Store interface {
	Save(ctx context.Context, key string, s *game.State) error
	Load(ctx context.Context, key string) (*game.State, error)
	Delete(ctx context.Context, key string) error
}

// codec matches encoding/json output, including sorted map keys.
var codec = sonic.ConfigStd

// Encode serializes a snapshot.
func Encode(s *game.State) ([]byte, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: nil state", ErrCorrupt)
	}
	return codec.Marshal(s)
}

// Decode parses a snapshot produced by Encode.
func Decode(b []byte) (*game.State, error) {
	var s game.State
	if err := codec.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	if s.Player == nil || s.Path == nil {
		return nil, fmt.Errorf("%w: missing player or path", ErrCorrupt)
	}
	return &s, nil
}

func checkKey(key string) error {
	if strings.TrimSpace(key) == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return fmt.Errorf("%w: %q", ErrBadKey, key)
	}
	return nil
}

// DataDir returns the directory for local saves and run logs.
// Follows the XDG Base Directory spec: $XDG_DATA_HOME/brainrot-spire,
// defaulting to ~/.local/share/brainrot-spire.
func DataDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "brainrot-spire"), nil
}
