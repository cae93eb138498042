package config

import (
	"fmt"
	"io"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// Env is the process configuration shared by the local client and the SSH host.
type Env struct {
	DataDir  string `env:"BRAINROT_DATA_DIR"`
	Tuning   string `env:"BRAINROT_TUNING"`
	Seed     int64  `env:"BRAINROT_SEED"` // 0 seeds from the clock
	LogLevel string `env:"BRAINROT_LOG_LEVEL" envDefault:"info"`
	LogFile  string `env:"BRAINROT_LOG_FILE"`
	SSHPort  int    `env:"BRAINROT_SSH_PORT" envDefault:"2222"`
	SSHKey   string `env:"BRAINROT_SSH_KEY" envDefault:".ssh_host_key"`
	DB       string `env:"BRAINROT_DB" envDefault:"brainrot-spire.db"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadEnv parses Env from the environment.
func LoadEnv() (Env, error) {
	var e Env
	err := ParseEnv(&e)
	return e, err
}

// LoadTuning returns the tuning file named by e, or the defaults when none is set.
func (e Env) LoadTuning() (Tuning, error) {
	if e.Tuning == "" {
		return Default(), nil
	}
	return Load(e.Tuning)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Logger returns a logger at the configured level. It writes to LogFile when
// one is set and to fallback otherwise. The returned closer releases the file.
func (e Env) Logger(fallback io.Writer) (zerolog.Logger, io.Closer, error) {
	lvl, err := zerolog.ParseLevel(e.LogLevel)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("parse log level: %w", err)
	}
	var w io.Writer = fallback
	var c io.Closer = nopCloser{}
	if e.LogFile != "" {
		f, err := os.OpenFile(e.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return zerolog.Nop(), nopCloser{}, fmt.Errorf("open log file: %w", err)
		}
		w, c = f, f
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), c, nil
}
