package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"brainrot-spire/internal/generate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	d := Default()
	require.NoError(t, d.Validate())
	assert.Equal(t, 80, d.StartingHealth)
	assert.Equal(t, 15, d.Path.Height)
	assert.Len(t, d.StartingEquipment, 7)
}

func TestLoadOverridesOnlyGivenKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	body := "hand_size: 6\npath:\n  height: 10\ncamp_heal: 25\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 6, got.HandSize)
	assert.Equal(t, 10, got.Path.Height)
	assert.Equal(t, 4, got.Path.MaxWidth, "unset nested keys keep defaults")
	assert.Equal(t, 25, got.CampHeal)
	assert.Equal(t, 80, got.StartingHealth)
}

func TestLoadRejectsBadWeights(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	body := "path:\n  weights:\n    - type: battle\n      weight: 0.4\n    - type: shop\n      weight: 0.4\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalid)
	assert.ErrorIs(t, err, generate.ErrBadWeights)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "read tuning:"))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		mut  func(*Tuning)
	}{
		{"hand size", func(t *Tuning) { t.HandSize = 0 }},
		{"height", func(t *Tuning) { t.Path.Height = 2 }},
		{"width", func(t *Tuning) { t.Path.MaxWidth = 0 }},
		{"bosses", func(t *Tuning) { t.BossesToWin = 0 }},
		{"shrine", func(t *Tuning) { t.Shrine = nil }},
		{"spread", func(t *Tuning) { t.Rewards.GoldSpread = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Default()
			tt.mut(&d)
			assert.ErrorIs(t, d.Validate(), ErrInvalid)
		})
	}
}

func TestLoadEnvDefaults(t *testing.T) {
	e, err := LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, "info", e.LogLevel)
	assert.Equal(t, 2222, e.SSHPort)
	assert.Equal(t, "brainrot-spire.db", e.DB)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("BRAINROT_SEED", "42")
	t.Setenv("BRAINROT_SSH_PORT", "2300")
	t.Setenv("BRAINROT_DATA_DIR", "/tmp/brainrot")

	e, err := LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, int64(42), e.Seed)
	assert.Equal(t, 2300, e.SSHPort)
	assert.Equal(t, "/tmp/brainrot", e.DataDir)
}

func TestLoadEnvError(t *testing.T) {
	t.Setenv("BRAINROT_SSH_PORT", "not-a-port")
	_, err := LoadEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestEnvLoadTuning(t *testing.T) {
	got, err := Env{}.LoadTuning()
	require.NoError(t, err)
	assert.Equal(t, Default(), got)
}

func TestEnvLogger(t *testing.T) {
	var buf bytes.Buffer
	l, c, err := Env{LogLevel: "warn"}.Logger(&buf)
	require.NoError(t, err)
	defer c.Close()
	l.Info().Msg("hidden")
	l.Warn().Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"message":"shown"`)

	path := filepath.Join(t.TempDir(), "game.log")
	l, c, err = Env{LogLevel: "debug", LogFile: path}.Logger(&buf)
	require.NoError(t, err)
	l.Debug().Msg("to file")
	require.NoError(t, c.Close())
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")

	_, _, err = Env{LogLevel: "loud"}.Logger(&buf)
	assert.Error(t, err)
}
