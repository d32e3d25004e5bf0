package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lgbarn/pawnchess-go/internal/config"
)

func saveRestoreBool(ptr *bool, val bool) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreString(ptr *string, val string) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

// ---------------------------------------------------------------------------
// applyFlags
// ---------------------------------------------------------------------------

func TestApplyFlags_Defaults(t *testing.T) {
	cfg := config.NewConfig()
	applyFlags(cfg)

	if cfg.Players.White != "" || cfg.Players.Black != "" {
		t.Errorf("Players = %+v; want empty names", cfg.Players)
	}
	if cfg.Output.Format != config.TextBoard {
		t.Errorf("Format = %v; want text", cfg.Output.Format)
	}
	if !cfg.Output.ShowBanner {
		t.Error("ShowBanner = false; want true")
	}
	if cfg.Log.Level != config.LevelInfo {
		t.Errorf("Log.Level = %q; want %q", cfg.Log.Level, config.LevelInfo)
	}
	if cfg.StartPosition != "" {
		t.Errorf("StartPosition = %q; want empty", cfg.StartPosition)
	}
}

func TestApplyFlags_AllSet(t *testing.T) {
	defer saveRestoreString(whiteName, "Amelia")()
	defer saveRestoreString(blackName, "Bob")()
	defer saveRestoreString(startPosition, "8/8/8/8/8/8/8/8 b -")()
	defer saveRestoreBool(jsonOutput, true)()
	defer saveRestoreBool(quiet, true)()
	defer saveRestoreBool(debugLog, true)()

	cfg := config.NewConfig()
	applyFlags(cfg)

	if cfg.Players.White != "Amelia" || cfg.Players.Black != "Bob" {
		t.Errorf("Players = %+v", cfg.Players)
	}
	if cfg.Output.Format != config.JSONBoard {
		t.Errorf("Format = %v; want json", cfg.Output.Format)
	}
	if cfg.Output.ShowBanner {
		t.Error("ShowBanner = true; want false with -s")
	}
	if cfg.Log.Level != config.LevelDebug {
		t.Errorf("Log.Level = %q; want %q", cfg.Log.Level, config.LevelDebug)
	}
	if cfg.StartPosition != "8/8/8/8/8/8/8/8 b -" {
		t.Errorf("StartPosition = %q", cfg.StartPosition)
	}
}

// ---------------------------------------------------------------------------
// setupLogFile
// ---------------------------------------------------------------------------

func TestSetupLogFile(t *testing.T) {
	t.Run("no flags leaves logging off", func(t *testing.T) {
		cfg := config.NewConfig()
		closer, err := setupLogFile(cfg)
		if err != nil || closer != nil {
			t.Fatalf("setupLogFile() = %v, %v; want nil, nil", closer, err)
		}
		if cfg.Log.Enabled() {
			t.Error("logging enabled without -l or -L")
		}
	})

	t.Run("create truncates", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "game.log")
		if err := os.WriteFile(path, []byte("old\n"), 0644); err != nil {
			t.Fatal(err)
		}
		defer saveRestoreString(logFile, path)()

		cfg := config.NewConfig()
		closer, err := setupLogFile(cfg)
		if err != nil {
			t.Fatalf("setupLogFile() error = %v", err)
		}
		closer.Close()

		data, _ := os.ReadFile(path)
		if len(data) != 0 {
			t.Errorf("log file not truncated: %q", data)
		}
		if !cfg.Log.Enabled() {
			t.Error("logging not enabled with -l")
		}
	})

	t.Run("append keeps content", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "game.log")
		if err := os.WriteFile(path, []byte("old\n"), 0644); err != nil {
			t.Fatal(err)
		}
		defer saveRestoreString(appendLog, path)()

		cfg := config.NewConfig()
		closer, err := setupLogFile(cfg)
		if err != nil {
			t.Fatalf("setupLogFile() error = %v", err)
		}
		if _, err := cfg.Log.File.Write([]byte("new\n")); err != nil {
			t.Fatal(err)
		}
		closer.Close()

		data, _ := os.ReadFile(path)
		if string(data) != "old\nnew\n" {
			t.Errorf("log file = %q; want appended content", data)
		}
	})

	t.Run("unopenable path", func(t *testing.T) {
		defer saveRestoreString(logFile, filepath.Join(t.TempDir(), "missing", "game.log"))()
		if _, err := setupLogFile(config.NewConfig()); err == nil {
			t.Error("setupLogFile() expected error for missing directory")
		}
	})
}

// ---------------------------------------------------------------------------
// run
// ---------------------------------------------------------------------------

func TestRun(t *testing.T) {
	tests := []struct {
		name     string
		position string
		input    string
		wantCode int
		wantOut  string
	}{
		{"win", "8/P7/8/8/8/8/7p/8 w -", "Amelia\nBob\na7a8\n", 0, "White Wins!\nBye!\n"},
		{"exit", "", "Amelia\nBob\nexit\n", 0, "Bye!\n"},
		{"bad position", "9/8/8/8/8/8/8/8 w -", "", 1, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			cfg := config.NewConfigBuilder().
				WithStartPosition(tt.position).
				WithInput(strings.NewReader(tt.input)).
				WithOutput(&out).
				Build()

			if code := run(cfg); code != tt.wantCode {
				t.Fatalf("run() = %d; want %d", code, tt.wantCode)
			}
			if !strings.HasSuffix(out.String(), tt.wantOut) {
				t.Errorf("output %q; want suffix %q", out.String(), tt.wantOut)
			}
		})
	}
}
