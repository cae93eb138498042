// brainrot-spire-server hosts Brainrot Spire over SSH. Every connection plays
// its own run, saved under the SSH user name. Build:
//
//	go build -o brainrot-spire-server ./cmd/server
//
// Usage:
//
//	./brainrot-spire-server [--port 2222] [--key .ssh_host_key] [--db brainrot-spire.db]
//
// Connect with:
//
//	ssh -t -p 2222 yourname@localhost
package main

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"flag"
	"fmt"
	mrand "math/rand"
	"os"
	"os/signal"
	"strings"
	"sync"
	"sync/atomic"
	"syscall"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	xssh "golang.org/x/crypto/ssh"

	"brainrot-spire/assets"
	"brainrot-spire/internal/config"
	"brainrot-spire/internal/game"
	internalssh "brainrot-spire/internal/ssh"
	"brainrot-spire/internal/store"
	"brainrot-spire/internal/ui"
)

func main() {
	env, err := config.LoadEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("read environment")
	}
	port := flag.Int("port", env.SSHPort, "SSH server port")
	keyFile := flag.String("key", env.SSHKey, "Path to the PEM-encoded host key (auto-generated if absent)")
	dbPath := flag.String("db", env.DB, "SQLite database holding saved runs")
	flag.Parse()

	logger, logFile, err := env.Logger(os.Stderr)
	if err != nil {
		log.Fatal().Err(err).Msg("init logger")
	}
	defer logFile.Close()
	log.Logger = logger

	tuning, err := env.LoadTuning()
	if err != nil {
		log.Fatal().Err(err).Msg("load tuning")
	}
	dataDir := env.DataDir
	if dataDir == "" {
		if dataDir, err = store.DataDir(); err != nil {
			log.Warn().Err(err).Msg("no data dir; run logs disabled")
		}
	}

	db, err := store.OpenSQLite(*dbPath)
	if err != nil {
		log.Fatal().Err(err).Str("db", *dbPath).Msg("open store")
	}
	defer db.Close()
	if n, err := db.Active(context.Background()); err == nil {
		log.Info().Int("runs", n).Msg("runs in progress")
	}

	h := &host{
		tuning:  tuning,
		content: assets.Default(),
		store:   db,
		dataDir: dataDir,
		seed:    env.Seed,
		playing: make(map[string]bool),
	}
	srv := &gossh.Server{
		Addr:    fmt.Sprintf(":%d", *port),
		Handler: h.handleSession,
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// No authentication: the SSH user name only selects the save slot.
		HostSigners: []gossh.Signer{loadOrCreateHostKey(*keyFile)},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		log.Info().Msg("shutting down")
		_ = srv.Close()
	}()

	log.Info().Int("port", *port).Str("db", *dbPath).Msg("brainrot-spire SSH server listening")
	log.Info().Msgf("Connect with:  ssh -t -p %d <name>@localhost", *port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, gossh.ErrServerClosed) {
		log.Error().Err(err).Msg("serve")
	}
}

// ─── sessions ───────────────────────────────────────────────────────────────

// host hands every SSH session its own engine and screen over a shared store.
type host struct {
	tuning  config.Tuning
	content assets.Catalog
	store   store.Store
	dataDir string
	seed    int64
	count   atomic.Int64

	mu      sync.Mutex
	playing map[string]bool // save keys with a live session
}

// claim marks key as in use. Two sessions never drive the same save.
func (h *host) claim(key string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.playing[key] {
		return false
	}
	h.playing[key] = true
	return true
}

func (h *host) release(key string) {
	h.mu.Lock()
	delete(h.playing, key)
	h.mu.Unlock()
}

// newEngine returns an engine with its own random source. A fixed seed is
// offset per session so concurrent runs differ.
func (h *host) newEngine(logger zerolog.Logger) (*game.Engine, error) {
	n := h.count.Add(1)
	seed := time.Now().UnixNano()
	if h.seed != 0 {
		seed = h.seed + n
	}
	return game.New(h.tuning, h.content, mrand.New(mrand.NewSource(seed)), game.WithLogger(logger))
}

// handleSession is the gliderlabs SSH handler for one connection.
// It blocks for the duration of the connection so the SSH session stays open.
func (h *host) handleSession(s gossh.Session) {
	pty, winCh, hasPTY := s.Pty()
	if !hasPTY {
		fmt.Fprintln(s, "This game requires a PTY. Connect with: ssh -t -p 2222 <host>")
		return
	}

	name := sanitizeName(s.User())
	key := storeKey(name)
	if name == "" {
		name = key
	}
	logger := log.With().Str("player", name).Str("remote", s.RemoteAddr().String()).Logger()

	if !h.claim(key) {
		fmt.Fprintf(s, "%s is already climbing the spire from another terminal.\n", name)
		return
	}
	defer h.release(key)

	term := pty.Term
	for _, env := range s.Environ() {
		if strings.HasPrefix(env, "TERM=") {
			term = env[5:]
			break
		}
	}
	if !allowedTerms[term] {
		logger.Debug().Str("term", term).Msg("unsupported TERM; using xterm-256color")
		term = "xterm-256color"
	}

	// TERM must be set in the process environment before NewTerminfoScreenFromTty.
	tty := internalssh.NewTty(s, pty, winCh)
	termMu.Lock()
	_ = os.Setenv("TERM", term)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		return
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(s, "Screen init failed: %v\n", err)
		return
	}
	defer screen.Fini()
	// Fini wakes PollEvent when the client hangs up.
	go func() {
		<-s.Context().Done()
		screen.Fini()
	}()

	engine, err := h.newEngine(logger)
	if err != nil {
		logger.Error().Err(err).Msg("engine setup failed")
		return
	}
	app := ui.New(screen, engine, h.store, key,
		ui.WithLogger(logger),
		ui.WithName(name),
		ui.WithRunEnd(func(st *game.State) {
			if h.dataDir == "" {
				return
			}
			if err := store.AppendRunLog(h.dataDir, store.NewRunLog(name, st, time.Now())); err != nil {
				logger.Warn().Err(err).Msg("run log not written")
			}
		}),
	)

	logger.Info().Msg("session started")
	if err := app.Run(s.Context()); err != nil && !errors.Is(err, context.Canceled) {
		logger.Warn().Err(err).Msg("session ended with error")
	}
	logger.Info().Msg("session ended")
}

// termMu protects os.Setenv("TERM") around screen creation.
var termMu sync.Mutex

// allowedTerms lists the TERM values a client may select. Anything else falls
// back to xterm-256color so clients cannot point terminfo lookups elsewhere.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-color":           true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"vt220":                 true,
	"rxvt-unicode-256color": true,
}

const maxNameBytes = 16

// sanitizeName drops control characters from an SSH user name and trims it
// to at most maxNameBytes without splitting a rune.
func sanitizeName(raw string) string {
	var sb strings.Builder
	for _, r := range raw {
		if unicode.IsControl(r) || r == unicode.ReplacementChar {
			continue
		}
		if sb.Len()+len(string(r)) > maxNameBytes {
			break
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// storeKey turns a display name into a save key.
func storeKey(name string) string {
	key := strings.NewReplacer("/", "_", "\\", "_").Replace(name)
	if key == "" || strings.Trim(key, ".") == "" {
		return "player"
	}
	return key
}

// ─── host key ───────────────────────────────────────────────────────────────

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string) gossh.Signer {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			log.Info().Str("path", path).Msg("loaded host key")
			return signer
		}
	}

	log.Info().Str("path", path).Msg("generating new ed25519 host key")
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		log.Fatal().Err(err).Msg("generate host key")
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		log.Fatal().Err(err).Msg("create signer")
	}
	// Persist for next run (non-fatal if it fails).
	if pemBlock, err := xssh.MarshalPrivateKey(key, "brainrot-spire server"); err == nil {
		_ = os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0600)
	}
	return signer
}
