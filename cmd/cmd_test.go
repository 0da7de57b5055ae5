package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/marcus/popup/internal/config"
)

func TestApplyDemoFlags(t *testing.T) {
	t.Run("unset flags keep config values", func(t *testing.T) {
		fs := pflag.NewFlagSet("demo", pflag.ContinueOnError)
		addDemoFlags(fs)
		if err := fs.Parse(nil); err != nil {
			t.Fatalf("parse: %v", err)
		}

		cfg := config.Default()
		cfg.Width = 70
		cfg.Markdown = true
		if err := applyDemoFlags(cfg, fs); err != nil {
			t.Fatalf("applyDemoFlags: %v", err)
		}

		if cfg.Width != 70 || !cfg.Markdown {
			t.Errorf("config overridden by defaults: %+v", cfg)
		}
	})

	t.Run("set flags override", func(t *testing.T) {
		fs := pflag.NewFlagSet("demo", pflag.ContinueOnError)
		addDemoFlags(fs)
		args := []string{
			"--delay", "1s",
			"--width", "64",
			"--markdown",
			"--hints=false",
			"--db", "/tmp/x.db",
			"--log-file", "/tmp/popup.log",
			"--log-level", "debug",
			"--remind", "2m",
		}
		if err := fs.Parse(args); err != nil {
			t.Fatalf("parse: %v", err)
		}

		cfg := config.Default()
		if err := applyDemoFlags(cfg, fs); err != nil {
			t.Fatalf("applyDemoFlags: %v", err)
		}

		if cfg.CloseDelay() != time.Second {
			t.Errorf("CloseDelay: got %v, want 1s", cfg.CloseDelay())
		}
		if cfg.Width != 64 {
			t.Errorf("Width: got %d, want 64", cfg.Width)
		}
		if !cfg.Markdown {
			t.Error("Markdown: got false, want true")
		}
		if !cfg.HideHints {
			t.Error("HideHints: got false, want true")
		}
		if cfg.DBPath != "/tmp/x.db" {
			t.Errorf("DBPath: got %q", cfg.DBPath)
		}
		if cfg.LogFile != "/tmp/popup.log" || cfg.LogLevel != "debug" {
			t.Errorf("logging: got %q %q", cfg.LogFile, cfg.LogLevel)
		}
		if cfg.RemindEvery() != 2*time.Minute {
			t.Errorf("RemindEvery: got %v, want 2m", cfg.RemindEvery())
		}
	})
}

func TestApplyDemoFlagsRejectsTruncatedDurations(t *testing.T) {
	tests := []struct {
		args    []string
		wantErr bool
	}{
		{[]string{"--remind", "500ms"}, true},
		{[]string{"--remind=-1s"}, true},
		{[]string{"--remind", "0"}, false},
		{[]string{"--remind", "1500ms"}, false},
		{[]string{"--delay", "500us"}, true},
		{[]string{"--delay", "0"}, false},
		{[]string{"--delay", "1ms"}, false},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			fs := pflag.NewFlagSet("demo", pflag.ContinueOnError)
			addDemoFlags(fs)
			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("parse: %v", err)
			}
			err := applyDemoFlags(config.Default(), fs)
			if (err != nil) != tt.wantErr {
				t.Errorf("applyDemoFlags err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPopupOptionsFromConfig(t *testing.T) {
	cfg := config.Default()
	if got := len(popupOptions(cfg)); got != 4 {
		t.Errorf("got %d options, want 4", got)
	}
}

func TestRunInit(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer
	c := &cobra.Command{}
	c.SetOut(&out)

	if err := runInit(c, dir); err != nil {
		t.Fatalf("runInit failed: %v", err)
	}
	if _, err := os.Stat(config.Path(dir)); err != nil {
		t.Errorf("config not written: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, config.DefaultDBFile)); err != nil {
		t.Errorf("database not created: %v", err)
	}
	if !strings.Contains(out.String(), "Wrote") {
		t.Errorf("output = %q", out.String())
	}

	out.Reset()
	if err := runInit(c, dir); err != nil {
		t.Fatalf("second runInit failed: %v", err)
	}
	if !strings.Contains(out.String(), "Config exists") {
		t.Errorf("second output = %q", out.String())
	}
}

func TestVersionCommand(t *testing.T) {
	SetVersion("1.2.3")
	defer SetVersion("")

	var out bytes.Buffer
	versionCmd.SetOut(&out)
	versionCmd.Run(versionCmd, nil)

	if got := strings.TrimSpace(out.String()); got != "popup 1.2.3" {
		t.Errorf("version output = %q", got)
	}
}
