package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tinytelemetry/termfolio/internal/typewriter"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := loadConfig(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if diff := cmp.Diff(typewriter.DefaultConfig(), cfg.typewriterConfig()); diff != "" {
		t.Errorf("typewriter config mismatch (-want +got):\n%s", diff)
	}
	if cfg.CursorInterval != typewriter.DefaultCursorInterval {
		t.Errorf("cursor-interval = %v", cfg.CursorInterval)
	}
	if cfg.APIAddr != "127.0.0.1:3000" {
		t.Errorf("api-addr = %q, want 127.0.0.1:3000", cfg.APIAddr)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("log-level = %q, want info", cfg.LogLevel)
	}
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("TERMFOLIO_DELETE_DELAY", "15ms")
	t.Setenv("TERMFOLIO_LOOP", "false")

	path := writeConfig(t, `
profile: ~/me.yml
type-delay: 20ms
delete-delay: 90ms
api-port: 8080
`)
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}

	if cfg.TypeDelay != 20*time.Millisecond {
		t.Errorf("type-delay = %v, want 20ms", cfg.TypeDelay)
	}
	if cfg.DeleteDelay != 15*time.Millisecond {
		t.Errorf("delete-delay = %v, want env override 15ms", cfg.DeleteDelay)
	}
	if cfg.Loop {
		t.Error("loop = true, want env override false")
	}
	if cfg.APIAddr != "127.0.0.1:8080" {
		t.Errorf("api-addr = %q", cfg.APIAddr)
	}
	if want := filepath.Join(home, "me.yml"); cfg.Profile != want {
		t.Errorf("profile = %q, want %q", cfg.Profile, want)
	}
	if cfg.ConfigPath != path {
		t.Errorf("config path = %q, want %q", cfg.ConfigPath, path)
	}
}

func TestLoadConfig_InvalidPort(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	for _, port := range []string{"0", "70000"} {
		path := writeConfig(t, "api-port: "+port+"\n")
		if _, err := loadConfig(path); err == nil || !strings.Contains(err.Error(), "api-port") {
			t.Errorf("api-port %s: err = %v, want invalid api-port", port, err)
		}
	}
}

func TestTypewriterConfig_ClampsDelays(t *testing.T) {
	cfg := appConfig{TypeDelay: -time.Second, Loop: true}
	got := cfg.typewriterConfig()
	if got.TypeDelay != typewriter.MinDelay || got.DeleteDelay != typewriter.MinDelay {
		t.Fatalf("delays = %v/%v, want clamped to %v", got.TypeDelay, got.DeleteDelay, typewriter.MinDelay)
	}
}

func TestFramesCommand(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer
	root, closeLog := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"frames", "--ticks", "3", "--config", filepath.Join(t.TempDir(), "none.yml")})
	if err := run(root, closeLog); err != nil {
		t.Fatalf("frames: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("frames output has %d lines, want header + 3:\n%s", len(lines), out.String())
	}
	if !strings.Contains(lines[1], `"F"`) || !strings.Contains(lines[3], `"Ful"`) {
		t.Errorf("unexpected timeline:\n%s", out.String())
	}
}

func TestFramesCommand_ClampsTicks(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer
	root, closeLog := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"frames", "-n", "1000000000000000", "--config", filepath.Join(t.TempDir(), "none.yml")})
	if err := run(root, closeLog); err != nil {
		t.Fatalf("frames: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if got, want := len(lines), typewriter.MaxTicks+1; got != want {
		t.Fatalf("frames output has %d lines, want %d", got, want)
	}
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	root, closeLog := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"version"})
	if err := run(root, closeLog); err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.Contains(out.String(), "Version:    dev") {
		t.Errorf("version output = %q", out.String())
	}
}

func TestRun_ClosesLoggerOnError(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	cfgPath := writeConfig(t, "profile: "+filepath.Join(t.TempDir(), "missing.yaml")+"\n")

	before := zap.L()
	root, closeLog := newRootCmd()
	root.SetArgs([]string{"frames", "--config", cfgPath})
	if err := run(root, closeLog); err == nil {
		t.Fatal("frames with a missing profile succeeded")
	}

	if zap.L() != before {
		t.Fatal("global logger still replaced after a failed command")
	}
	data, err := os.ReadFile(filepath.Join(home, ".local", "state", "termfolio", "termfolio.log"))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "termfolio starting") {
		t.Errorf("log missing start line:\n%s", data)
	}
}

func TestLogOutput(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		ok           bool
		ownsTerminal bool
		want         string
		wantOK       bool
	}{
		{"file for ui", "/state/termfolio.log", true, true, "/state/termfolio.log", true},
		{"file for serve", "/state/termfolio.log", true, false, "/state/termfolio.log", true},
		{"no file for ui", "", false, true, "", false},
		{"no file for serve", "", false, false, "stderr", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := logOutput(tt.path, tt.ok, tt.ownsTerminal)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("logOutput = %q, %v; want %q, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestConfigureRuntimeLogger_SilentForUIWithoutLogFile(t *testing.T) {
	// A regular file as HOME makes the state directory impossible to create.
	home := filepath.Join(t.TempDir(), "home")
	if err := os.WriteFile(home, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("HOME", home)

	logger, closeLog := configureRuntimeLogger("debug", true)
	defer closeLog()
	if logger.Core().Enabled(zapcore.ErrorLevel) {
		t.Fatal("UI logger writes somewhere without a log file")
	}

	logger, closeLog = configureRuntimeLogger("debug", false)
	defer closeLog()
	if !logger.Core().Enabled(zapcore.ErrorLevel) {
		t.Fatal("non-UI logger dropped its stderr fallback")
	}
}
