package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestHostKeyGeneratedThenReloaded(t *testing.T) {
	log := slog.New(slog.DiscardHandler)
	path := filepath.Join(t.TempDir(), "host_key")

	first, err := loadOrCreateHostKey(path, log)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("host key not persisted: %v", err)
	}

	second, err := loadOrCreateHostKey(path, log)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !bytes.Equal(first.PublicKey().Marshal(), second.PublicKey().Marshal()) {
		t.Fatal("reloaded key differs from generated key")
	}
}

func TestHostKeyRegeneratedWhenCorrupt(t *testing.T) {
	log := slog.New(slog.DiscardHandler)
	path := filepath.Join(t.TempDir(), "host_key")
	if err := os.WriteFile(path, []byte("not a key"), 0o600); err != nil {
		t.Fatal(err)
	}

	signer, err := loadOrCreateHostKey(path, log)
	if err != nil {
		t.Fatalf("loadOrCreateHostKey: %v", err)
	}
	if signer.PublicKey().Type() != "ssh-ed25519" {
		t.Fatalf("expected ed25519 key, got %s", signer.PublicKey().Type())
	}
}
