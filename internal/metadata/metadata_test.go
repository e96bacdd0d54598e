package metadata

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestCaptureTimestamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want time.Time
		ok   bool
	}{
		{
			name: "plain",
			raw:  "2024:06:01 14:30:05",
			want: time.Date(2024, 6, 1, 14, 30, 5, 0, time.Local),
			ok:   true,
		},
		{
			name: "fractional second",
			raw:  "2024:06:01 14:30:05.25",
			want: time.Date(2024, 6, 1, 14, 30, 5, 250000000, time.Local),
			ok:   true,
		},
		{name: "empty", raw: "", ok: false},
		{name: "garbage", raw: "last tuesday", ok: false},
		{name: "iso format rejected", raw: "2024-06-01 14:30:05", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := Image{CaptureTime: tt.raw}.CaptureTimestamp()
			if ok != tt.ok {
				t.Fatalf("CaptureTimestamp(%q) ok = %v, want %v", tt.raw, ok, tt.ok)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("CaptureTimestamp(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestLabels(t *testing.T) {
	t.Parallel()

	img := Image{RedLabel: true, BlueLabel: true}
	got := img.Labels()
	want := []string{"red", "blue"}
	if len(got) != len(want) {
		t.Fatalf("Labels() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Labels()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if labels := (Image{}).Labels(); len(labels) != 0 {
		t.Errorf("Labels() on empty image = %v, want none", labels)
	}
}

func TestBasenameExtension(t *testing.T) {
	t.Parallel()

	img := Image{Filename: "IMG_0001.CR2"}
	if got := img.Basename(); got != "IMG_0001" {
		t.Errorf("Basename() = %q, want %q", got, "IMG_0001")
	}
	if got := img.Extension(); got != "CR2" {
		t.Errorf("Extension() = %q, want %q", got, "CR2")
	}

	noExt := Image{Filename: "README"}
	if got := noExt.Extension(); got != "" {
		t.Errorf("Extension() without dot = %q, want empty", got)
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("full sidecar", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "img.toml")
		sidecar := `
path = "/photos/2024/IMG_0001.CR2"
capture_time = "2024:06:01 14:30:05"
iso = 400.0
aperture = 2.8
rating = 3
red_label = true
title = "Harbor at dawn"
latitude = 47.05
`
		if err := os.WriteFile(path, []byte(sidecar), 0o644); err != nil {
			t.Fatal(err)
		}

		img, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error: %v", err)
		}
		if img.Filename != "IMG_0001.CR2" {
			t.Errorf("Filename = %q, want derived from path", img.Filename)
		}
		if img.Rating != 3 || img.ISO != 400 || !img.RedLabel {
			t.Errorf("unexpected fields: %+v", img)
		}
		if img.Latitude == nil || *img.Latitude != 47.05 {
			t.Errorf("Latitude = %v, want 47.05", img.Latitude)
		}
		if img.Longitude != nil {
			t.Errorf("Longitude = %v, want nil", img.Longitude)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
			t.Error("expected error for missing sidecar")
		}
	})

	t.Run("invalid toml", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "bad.toml")
		if err := os.WriteFile(path, []byte("rating = ["), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Error("expected error for invalid sidecar")
		}
	})
}

func TestFromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "IMG_0002.JPG")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	img, err := FromFile(path)
	if err != nil {
		t.Fatalf("FromFile() error: %v", err)
	}
	if img.Filename != "IMG_0002.JPG" {
		t.Errorf("Filename = %q", img.Filename)
	}
	if _, ok := img.CaptureTimestamp(); !ok {
		t.Errorf("CaptureTime %q did not parse", img.CaptureTime)
	}

	if _, err := FromFile(filepath.Dir(path)); err == nil {
		t.Error("expected error for directory")
	}
}
