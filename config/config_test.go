package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Store.Driver != StoreMemory || cfg.HTTPServer.Port != 8080 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.Reminder.Window != time.Minute || cfg.Reminder.Interval != 30*time.Second {
		t.Errorf("reminder defaults = %+v", cfg.Reminder)
	}
	if cfg.Interpreter.Timezone != "UTC" || cfg.Interpreter.ClassifyCacheSize != 1024 {
		t.Errorf("interpreter defaults = %+v", cfg.Interpreter)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("STORE_DRIVER", "Postgres")
	t.Setenv("STORE_DSN", "${VOICETASK_TEST_DB}")
	t.Setenv("VOICETASK_TEST_DB", "postgres://u:p@localhost:5432/tasks")
	t.Setenv("LOGGER_LEVEL", "warn")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Store.Driver != StorePostgres {
		t.Errorf("driver = %q", cfg.Store.Driver)
	}
	if cfg.Store.DSN != "postgres://u:p@localhost:5432/tasks" {
		t.Errorf("dsn = %q", cfg.Store.DSN)
	}
	if cfg.Logger.Level != "warn" {
		t.Errorf("level = %q", cfg.Logger.Level)
	}
}

func TestLoadRejectsInvalidStore(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "unknown driver", env: map[string]string{"STORE_DRIVER": "mongo"}},
		{name: "sqlite without dsn", env: map[string]string{"STORE_DRIVER": "sqlite"}},
		{name: "bad reminder window", env: map[string]string{"REMINDER_WINDOW": "0s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			t.Cleanup(viper.Reset)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			if _, err := Load(); err == nil {
				t.Error("Load() error = nil, want validation error")
			}
		})
	}
}

func TestWatchReloadsLogLevel(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	t.Chdir(dir)

	// Replaces config.yaml with a rename so the watcher never sees a
	// half-written file.
	writeConfig := func(body string) {
		t.Helper()
		tmp := filepath.Join(dir, "next.yaml.tmp")
		if err := os.WriteFile(tmp, []byte(body), 0o600); err != nil {
			t.Fatalf("write config: %v", err)
		}
		if err := os.Rename(tmp, filepath.Join(dir, "config.yaml")); err != nil {
			t.Fatalf("rename config: %v", err)
		}
	}
	writeConfig("logger:\n  level: info\n")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Logger.Level != "info" {
		t.Fatalf("level = %q, want info", cfg.Logger.Level)
	}

	changed := make(chan string, 16)
	skipped := make(chan error, 16)
	Watch(func(next *Config) {
		select {
		case changed <- next.Logger.Level:
		default:
		}
	}, func(err error) {
		select {
		case skipped <- err:
		default:
		}
	})

	writeConfig("logger:\n  level: info\nstore:\n  driver: mongo\n")
	select {
	case err := <-skipped:
		if err == nil {
			t.Error("onSkip called with a nil error")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("invalid reload was not reported")
	}

	writeConfig("logger:\n  level: warn\n")
	timeout := time.After(5 * time.Second)
	for {
		select {
		case level := <-changed:
			if level == "warn" {
				return
			}
		case <-timeout:
			t.Fatal("onChange never saw logger.level warn")
		}
	}
}
