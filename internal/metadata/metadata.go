// Package metadata defines the image record the substitution engine
// reads from. Records are supplied by the caller; phex does not decode
// EXIF itself. The CLI loads records from TOML sidecar files or builds
// a minimal one from the file on disk.
package metadata

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Image holds the metadata of a single photo at export time.
// Zero values mean "unknown" and expand to the empty string.
type Image struct {
	Path     string `toml:"path"`     // full path of the source file
	Filename string `toml:"filename"` // basename including extension

	// Pixel dimensions at the pipeline stages.
	SensorWidth  int `toml:"sensor_width"`
	SensorHeight int `toml:"sensor_height"`
	RawWidth     int `toml:"raw_width"`
	RawHeight    int `toml:"raw_height"`
	CropWidth    int `toml:"crop_width"`
	CropHeight   int `toml:"crop_height"`
	ExportWidth  int `toml:"export_width"`
	ExportHeight int `toml:"export_height"`

	// CaptureTime is the raw EXIF form "YYYY:MM:DD HH:MM:SS" with an
	// optional fractional second.
	CaptureTime string `toml:"capture_time"`

	ExposureTime  float64 `toml:"exposure_time"` // seconds
	ExposureBias  float64 `toml:"exposure_bias"` // EV
	ISO           float64 `toml:"iso"`
	Aperture      float64 `toml:"aperture"`
	FocalLength   float64 `toml:"focal_length"`   // mm
	FocusDistance float64 `toml:"focus_distance"` // meters
	CropFactor    float64 `toml:"crop_factor"`

	Maker string `toml:"maker"`
	Model string `toml:"model"`
	Lens  string `toml:"lens"`

	// GPS fields are pointers so "no fix" and 0.0 stay distinct.
	Latitude  *float64 `toml:"latitude"`
	Longitude *float64 `toml:"longitude"`
	Elevation *float64 `toml:"elevation"`

	Rating int `toml:"rating"` // 0..5, -1 = rejected

	RedLabel    bool `toml:"red_label"`
	YellowLabel bool `toml:"yellow_label"`
	GreenLabel  bool `toml:"green_label"`
	BlueLabel   bool `toml:"blue_label"`
	PurpleLabel bool `toml:"purple_label"`

	Title       string `toml:"title"`
	Description string `toml:"description"`
	Creator     string `toml:"creator"`
	Publisher   string `toml:"publisher"`
	Rights      string `toml:"rights"`

	ID             int    `toml:"id"`
	Version        int    `toml:"version"`
	DuplicateIndex int    `toml:"duplicate_index"`
	VersionName    string `toml:"version_name"`
}

// exifTimeLayouts cover the fixed EXIF text format with and without a
// fractional second.
var exifTimeLayouts = []string{
	"2006:01:02 15:04:05.999999999",
	"2006:01:02 15:04:05",
}

// CaptureTimestamp parses the raw capture time.
// The second return is false when the field is absent or malformed.
func (img Image) CaptureTimestamp() (time.Time, bool) {
	s := strings.TrimSpace(img.CaptureTime)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range exifTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Labels returns the active color label names in fixed order.
func (img Image) Labels() []string {
	var labels []string
	for _, l := range []struct {
		set  bool
		name string
	}{
		{img.RedLabel, "red"},
		{img.YellowLabel, "yellow"},
		{img.GreenLabel, "green"},
		{img.BlueLabel, "blue"},
		{img.PurpleLabel, "purple"},
	} {
		if l.set {
			labels = append(labels, l.name)
		}
	}
	return labels
}

// Basename returns the filename without its extension.
func (img Image) Basename() string {
	ext := filepath.Ext(img.Filename)
	return strings.TrimSuffix(img.Filename, ext)
}

// Extension returns the filename extension without the leading dot.
func (img Image) Extension() string {
	return strings.TrimPrefix(filepath.Ext(img.Filename), ".")
}

// Load reads an image record from a TOML sidecar file.
func Load(path string) (Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Image{}, fmt.Errorf("read sidecar: %w", err)
	}
	var img Image
	if err := toml.Unmarshal(data, &img); err != nil {
		return Image{}, fmt.Errorf("parse sidecar %s: %w", path, err)
	}
	if img.Filename == "" && img.Path != "" {
		img.Filename = filepath.Base(img.Path)
	}
	return img, nil
}

// FromFile builds a minimal record from a file on disk: path, name and
// the modification time standing in for the capture time. Useful for
// previewing templates without a sidecar.
func FromFile(path string) (Image, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Image{}, err
	}
	if info.IsDir() {
		return Image{}, errors.New("expected a file, got a directory")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return Image{
		Path:        abs,
		Filename:    filepath.Base(abs),
		CaptureTime: info.ModTime().Format("2006:01:02 15:04:05"),
	}, nil
}
