// astral-assault-server hosts the game over SSH. Every connection plays its
// own independent run. Build:
//
//	go build -o astral-assault-server ./cmd/server
//
// Usage:
//
//	./astral-assault-server [--port 2222] [--key server_host_key]
//
// Connect:
//
//	ssh -t -p 2222 localhost
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sync/atomic"

	"astral-assault/internal/clock"
	"astral-assault/internal/config"
	"astral-assault/internal/game"
	internalssh "astral-assault/internal/ssh"

	gossh "github.com/gliderlabs/ssh"
	xssh "golang.org/x/crypto/ssh"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	port := flag.Int("port", cfg.SSHPort, "SSH server port")
	keyFile := flag.String("key", cfg.SSHHostKey, "Path to the PEM-encoded host key (generated if absent)")
	flag.Parse()

	level, _ := cfg.Level()
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	signer, err := loadOrCreateHostKey(*keyFile, log)
	if err != nil {
		log.Error("host key", "err", err)
		os.Exit(1)
	}

	h := &host{cfg: cfg, log: log}
	srv := &gossh.Server{
		Addr:    fmt.Sprintf(":%d", *port),
		Handler: h.handleSession,
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// No authentication: anyone who can reach the port may play.
		HostSigners: []gossh.Signer{signer},
	}

	log.Info("astral-assault SSH server listening", "addr", srv.Addr)
	log.Info("connect with", "cmd", fmt.Sprintf("ssh -t -p %d localhost", *port))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, gossh.ErrServerClosed) {
		log.Error("serve", "err", err)
		os.Exit(1)
	}
}

// host runs one game per SSH session.
type host struct {
	cfg    config.Config
	log    *slog.Logger
	active atomic.Int64
}

// handleSession is the gliderlabs SSH handler for one connection.
// It blocks for the duration of the game so the session stays open.
func (h *host) handleSession(s gossh.Session) {
	pty, winCh, hasPTY := s.Pty()
	if !hasPTY {
		fmt.Fprintln(s, "This game requires a PTY. Connect with: ssh -t -p <port> <host>")
		return
	}

	log := h.log.With("user", s.User(), "remote", s.RemoteAddr().String())
	term := internalssh.TermFromEnviron(s.Environ())
	if pty.Term != "" {
		term = internalssh.TermFromEnviron([]string{"TERM=" + pty.Term})
	}

	tty := internalssh.NewSessionTty(s, pty.Window, winCh)
	screen, err := internalssh.NewScreen(tty, term)
	if err != nil {
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		log.Warn("screen setup", "term", term, "err", err)
		return
	}

	n := h.active.Add(1)
	defer h.active.Add(-1)
	log.Info("session started", "term", term, "active", n)

	g := game.NewWithScreen(screen, h.cfg, clock.Real{}, log)
	if err := g.Run(s.Context()); err != nil {
		log.Error("session", "err", err)
	}
	log.Info("session ended", "best", g.Best())
}

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string, log *slog.Logger) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			log.Info("loaded host key", "path", path)
			return signer, nil
		}
	}

	log.Info("generating ed25519 host key", "path", path)
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	// Persist for next run (non-fatal if it fails).
	if block, err := xssh.MarshalPrivateKey(key, "astral-assault server"); err == nil {
		if err := os.WriteFile(path, pem.EncodeToMemory(block), 0o600); err != nil {
			log.Warn("persist host key", "path", path, "err", err)
		}
	}
	return signer, nil
}
