package state

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"draftr/config"
)

func TestContextWithEnv(t *testing.T) {
	ctx := ContextWithEnv(context.Background())
	if ctx == nil {
		t.Fatal("ContextWithEnv() returned nil")
	}

	env := EnvFromContext(ctx)
	if env == nil {
		t.Fatal("EnvFromContext() returned nil")
	}
	if env.start.IsZero() {
		t.Error("Environment start time not set")
	}
	if env.Now == nil {
		t.Error("Environment clock not set")
	}
	if !strings.Contains(env.DefaultBoilerplate, "{{ .Expires }}") {
		t.Error("Default boilerplate does not reference expiry date")
	}
}

func TestEnvFromContext(t *testing.T) {
	t.Run("valid context", func(t *testing.T) {
		ctx := ContextWithEnv(context.Background())
		if env := EnvFromContext(ctx); env == nil {
			t.Error("Expected non-nil environment")
		}
	})

	t.Run("panic on missing env", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("Expected panic when env not in context")
			}
		}()
		EnvFromContext(context.Background())
	})
}

func TestLocalEnv_Boilerplate(t *testing.T) {
	env := EnvFromContext(ContextWithEnv(context.Background()))

	t.Run("no config", func(t *testing.T) {
		if env.Boilerplate() != env.DefaultBoilerplate {
			t.Error("Expected default boilerplate without configuration")
		}
	})

	t.Run("empty template in config", func(t *testing.T) {
		env.Cfg = &config.Config{Version: 1}
		if env.Boilerplate() != env.DefaultBoilerplate {
			t.Error("Expected default boilerplate for empty configured template")
		}
	})

	t.Run("configured template", func(t *testing.T) {
		env.Cfg = &config.Config{Version: 1}
		env.Cfg.Document.BoilerplateTemplate = "Expires {{ .Expires }}"
		if env.Boilerplate() != "Expires {{ .Expires }}" {
			t.Errorf("Boilerplate() = %q", env.Boilerplate())
		}
	})
}

func TestLocalEnv_Uptime(t *testing.T) {
	env := EnvFromContext(ContextWithEnv(context.Background()))

	time.Sleep(10 * time.Millisecond)
	uptime := env.Uptime()

	if uptime < 10*time.Millisecond {
		t.Errorf("Uptime() = %v, expected at least 10ms", uptime)
	}
	if uptime > 1*time.Second {
		t.Errorf("Uptime() = %v, unexpectedly large", uptime)
	}
}

func TestLocalEnv_RedirectStdLog(t *testing.T) {
	t.Run("with logger", func(t *testing.T) {
		env := &LocalEnv{
			Log: zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1))),
		}
		env.RedirectStdLog()
		if env.restoreStdLog == nil {
			t.Error("Expected restoreStdLog to be set")
		}
		env.RestoreStdLog()
	})

	t.Run("without logger", func(t *testing.T) {
		env := &LocalEnv{}
		env.RedirectStdLog()
		if env.restoreStdLog != nil {
			t.Error("Expected restoreStdLog to remain nil")
		}
		env.RestoreStdLog()
	})
}

func TestLocalEnv_RedirectAndRestore(t *testing.T) {
	env := &LocalEnv{
		Log: zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1))),
	}

	for i := range 3 {
		env.RedirectStdLog()
		if env.restoreStdLog == nil {
			t.Errorf("Iteration %d: restoreStdLog not set", i)
		}
		env.RestoreStdLog()
	}
}

func TestInitialize(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		ctx, err := Initialize(context.Background(), "", false)
		if err != nil {
			t.Fatalf("Initialize() error = %v", err)
		}
		defer Destroy(ctx)

		env := EnvFromContext(ctx)
		if env.Cfg == nil || env.Log == nil {
			t.Fatal("configuration or logger not prepared")
		}
		if env.Cfg.Layout.PageWidth != 72 {
			t.Errorf("PageWidth = %d, want 72", env.Cfg.Layout.PageWidth)
		}
		if env.restoreStdLog == nil {
			t.Error("standard logger was not redirected")
		}
	})

	t.Run("configuration file", func(t *testing.T) {
		dir := t.TempDir()
		logFile := filepath.Join(dir, "draftr.log")
		cfgFile := filepath.Join(dir, "draftr.yaml")
		content := `version: 1
layout:
  page_width: 80
document:
  toc: false
logging:
  console:
    level: none
  file:
    level: normal
    destination: ` + logFile + `
    mode: overwrite
`
		if err := os.WriteFile(cfgFile, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}

		ctx, err := Initialize(context.Background(), cfgFile, true)
		if err != nil {
			t.Fatalf("Initialize() error = %v", err)
		}
		env := EnvFromContext(ctx)
		if env.Cfg.Layout.PageWidth != 80 || env.Cfg.Document.TOC {
			t.Errorf("configuration file ignored: %+v", env.Cfg)
		}
		Destroy(ctx)

		data, err := os.ReadFile(logFile)
		if err != nil {
			t.Fatalf("log file: %v", err)
		}
		for _, want := range []string{"Program started", "Effective configuration", "Program ended"} {
			if !strings.Contains(string(data), want) {
				t.Errorf("log does not contain %q:\n%s", want, data)
			}
		}
	})

	t.Run("bad configuration", func(t *testing.T) {
		cfgFile := filepath.Join(t.TempDir(), "draftr.yaml")
		if err := os.WriteFile(cfgFile, []byte("version: 2\n"), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := Initialize(context.Background(), cfgFile, false); err == nil {
			t.Error("expected error for invalid configuration")
		}
	})
}
