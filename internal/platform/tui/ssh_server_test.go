package tui

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewSSHServerUnknownGame(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.GameID = "nope"
	if _, err := NewSSHServer(cfg); err == nil {
		t.Error("expected an error for an unregistered game")
	}
}

func TestNewSSHServer(t *testing.T) {
	dir := t.TempDir()

	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(dir, "keys", "host_key")
	cfg.DBPath = filepath.Join(dir, "scores.db")
	cfg.Levels = testLevels
	cfg.TickRate = 0

	srv, err := NewSSHServer(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if srv.Addr() != "127.0.0.1:0" {
		t.Errorf("Addr() = %q", srv.Addr())
	}
	if srv.title != "Simon Says" {
		t.Errorf("title = %q", srv.title)
	}
	if srv.config.TickRate != 60 {
		t.Errorf("TickRate = %d, expected the 60 default", srv.config.TickRate)
	}
	if srv.store == nil {
		t.Error("store not opened")
	}
	if _, err := os.Stat(filepath.Join(dir, "keys")); err != nil {
		t.Errorf("host key directory: %v", err)
	}

	if err := srv.Shutdown(); err != nil {
		t.Errorf("Shutdown: %v", err)
	}
}
