package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	if cfg.Template != DefaultTemplate {
		t.Errorf("Template = %q, want %q", cfg.Template, DefaultTemplate)
	}
	if cfg.SequenceStart != 1 {
		t.Errorf("SequenceStart = %d, want 1", cfg.SequenceStart)
	}
}

func TestLoadFrom(t *testing.T) {
	t.Parallel()

	write := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		return path
	}

	t.Run("full config", func(t *testing.T) {
		t.Parallel()
		path := write(t, `
template = "$(FILE.NAME)_$(SEQUENCE)"
sequence_start = 100

[overrides]
username = "jo"
pictures_dir = "/mnt/photos"
`)
		cfg, err := loadFrom(path)
		if err != nil {
			t.Fatalf("loadFrom() error: %v", err)
		}
		if cfg.Template != "$(FILE.NAME)_$(SEQUENCE)" {
			t.Errorf("Template = %q", cfg.Template)
		}
		if cfg.SequenceStart != 100 {
			t.Errorf("SequenceStart = %d, want 100", cfg.SequenceStart)
		}
		if cfg.Overrides.Username != "jo" || cfg.Overrides.PicturesDir != "/mnt/photos" {
			t.Errorf("Overrides = %+v", cfg.Overrides)
		}
	})

	t.Run("missing file returns defaults", func(t *testing.T) {
		t.Parallel()
		cfg, err := loadFrom(filepath.Join(t.TempDir(), "missing.toml"))
		if err != nil {
			t.Fatalf("loadFrom() error: %v", err)
		}
		if cfg.Template != DefaultTemplate {
			t.Errorf("Template = %q, want default", cfg.Template)
		}
	})

	t.Run("empty template falls back", func(t *testing.T) {
		t.Parallel()
		cfg, err := loadFrom(write(t, `template = ""`))
		if err != nil {
			t.Fatal(err)
		}
		if cfg.Template != DefaultTemplate {
			t.Errorf("Template = %q, want default", cfg.Template)
		}
	})

	t.Run("sequence start clamped", func(t *testing.T) {
		t.Parallel()
		cfg, err := loadFrom(write(t, `sequence_start = -5`))
		if err != nil {
			t.Fatal(err)
		}
		if cfg.SequenceStart != 1 {
			t.Errorf("SequenceStart = %d, want 1", cfg.SequenceStart)
		}
	})

	t.Run("relative override rejected", func(t *testing.T) {
		t.Parallel()
		_, err := loadFrom(write(t, "[overrides]\npictures_dir = \"photos\""))
		if err == nil {
			t.Fatal("expected error for relative path")
		}
		if !strings.Contains(err.Error(), "pictures_dir") {
			t.Errorf("error %q does not name the field", err)
		}
	})

	t.Run("tilde override expanded", func(t *testing.T) {
		t.Parallel()
		cfg, err := loadFrom(write(t, "[overrides]\nhome_dir = \"~\"\ndesktop_dir = \"~/Desktop\""))
		if err != nil {
			t.Fatal(err)
		}
		home, err := os.UserHomeDir()
		if err != nil {
			t.Skip("no home directory")
		}
		if cfg.Overrides.HomeDir != home {
			t.Errorf("HomeDir = %q, want %q", cfg.Overrides.HomeDir, home)
		}
		if want := filepath.Join(home, "Desktop"); cfg.Overrides.DesktopDir != want {
			t.Errorf("DesktopDir = %q, want %q", cfg.Overrides.DesktopDir, want)
		}
	})

	t.Run("invalid toml", func(t *testing.T) {
		t.Parallel()
		if _, err := loadFrom(write(t, "template = [")); err == nil {
			t.Fatal("expected parse error")
		}
	})
}
