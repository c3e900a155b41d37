package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadEnvDefaults(t *testing.T) {
	t.Setenv("STAGE", "")
	t.Setenv("PORT", "")
	t.Setenv("BASE_URL", "")
	t.Setenv("PLAYER_NAME", "")

	env, err := LoadEnv()
	if err != nil {
		t.Fatal(err)
	}
	if env.Stage != StageDev {
		t.Fatalf("expected stage: %s\t got: %s", StageDev, env.Stage)
	}
	if env.Port != DefaultPort {
		t.Fatalf("expected port: %d\t got: %d", DefaultPort, env.Port)
	}
	if env.BaseUrl != DefaultBaseUrl || env.PlayerName != DefaultPlayerName {
		t.Fatalf("unexpected defaults: %+v", env)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("STAGE", StageProd)
	t.Setenv("PORT", "9191")
	t.Setenv("BASE_URL", "http://localhost:5000")
	t.Setenv("PLAYER_NAME", "bot")

	env, err := LoadEnv()
	if err != nil {
		t.Fatal(err)
	}
	if env.Port != 9191 || env.BaseUrl != "http://localhost:5000" || env.PlayerName != "bot" {
		t.Fatalf("overrides not applied: %+v", env)
	}
}

func TestLoadEnvInvalid(t *testing.T) {
	tests := []struct {
		name  string
		stage string
		port  string
	}{
		{name: "invalid stage", stage: "staging"},
		{name: "invalid port", stage: StageProd, port: "abc"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Setenv("STAGE", test.stage)
			t.Setenv("PORT", test.port)
			if _, err := LoadEnv(); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestLoadBotConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bot.yaml")
	content := "poll_interval: 500ms\nwait_timeout: 1m\nmax_cycles: 12\ngame_id: 20\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBotConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.PollInterval != 500*time.Millisecond {
		t.Fatalf("expected poll interval: %s\t got: %s", 500*time.Millisecond, cfg.PollInterval)
	}
	if cfg.WaitTimeout != time.Minute {
		t.Fatalf("expected wait timeout: %s\t got: %s", time.Minute, cfg.WaitTimeout)
	}
	if cfg.MaxCycles != 12 || cfg.GameId != 20 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.RequestTimeout != DefaultRequestTimeout {
		t.Fatalf("expected default request timeout\t got: %s", cfg.RequestTimeout)
	}
}

func TestLoadBotConfigDefaults(t *testing.T) {
	cfg, err := LoadBotConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg != DefaultBotConfig() {
		t.Fatalf("expected defaults\t got: %+v", cfg)
	}

	if _, err := LoadBotConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
