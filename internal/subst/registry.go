package subst

import (
	"fmt"
	"math"
	"os"
	"os/user"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/phex-cli/phex/internal/metadata"
)

// Options carries the ancillary context of one expansion. All fields
// are optional; unset fields are derived from the process environment.
type Options struct {
	Username    string
	HomeDir     string
	PicturesDir string
	DesktopDir  string

	// Now supplies the wall clock. Tests override it.
	Now func() time.Time
}

// names is the closed placeholder set, in display order. Adding a name
// here without populating it in buildRegistry makes it expand to "".
var names = []string{
	"ROLL.NAME",
	"FILE.FOLDER",
	"FILE.NAME",
	"FILE.EXTENSION",
	"ID",
	"DUPLICATE.INDEX",
	"VERSION",
	"VERSION.IF.MULTI",
	"VERSION.NAME",
	"SEQUENCE",
	"WIDTH",
	"HEIGHT",
	"SENSOR.WIDTH",
	"SENSOR.HEIGHT",
	"RAW.WIDTH",
	"RAW.HEIGHT",
	"CROP.WIDTH",
	"CROP.HEIGHT",
	"EXPORT.WIDTH",
	"EXPORT.HEIGHT",
	"YEAR",
	"MONTH",
	"DAY",
	"HOUR",
	"MINUTE",
	"SECOND",
	"MSEC",
	"EXIF.YEAR",
	"EXIF.MONTH",
	"EXIF.DAY",
	"EXIF.HOUR",
	"EXIF.MINUTE",
	"EXIF.SECOND",
	"EXIF.MSEC",
	"EXIF.ISO",
	"EXIF.EXPOSURE",
	"EXIF.EXPOSURE.BIAS",
	"EXIF.APERTURE",
	"EXIF.FOCAL.LENGTH",
	"EXIF.FOCUS.DISTANCE",
	"EXIF.CROP",
	"EXIF.MAKER",
	"EXIF.MODEL",
	"EXIF.LENS",
	"EXIF.DATE.REGIONAL",
	"EXIF.TIME.REGIONAL",
	"EXIF.FLASH",
	"EXIF.METERING",
	"EXIF.WHITEBALANCE",
	"LONGITUDE",
	"LATITUDE",
	"ELEVATION",
	"GPS.LONGITUDE",
	"GPS.LATITUDE",
	"GPS.ELEVATION",
	"GPS.LOCATION",
	"STARS",
	"LABELS",
	"TITLE",
	"DESCRIPTION",
	"CREATOR",
	"PUBLISHER",
	"RIGHTS",
	"TAGS",
	"CATEGORY",
	"SIDECAR.TXT",
	"FOLDER.PICTURES",
	"FOLDER.HOME",
	"FOLDER.DESKTOP",
	"USERNAME",
	"JOBCODE",
	"OPENCL.ACTIVATED",
	"NL",
}

// notImplemented documents names that are reserved but never populated.
// They stay in the closed set so templates using them expand to ""
// instead of tripping the unknown-placeholder diagnostic.
var notImplemented = map[string]bool{
	"EXIF.DATE.REGIONAL": true,
	"EXIF.TIME.REGIONAL": true,
	"EXIF.FLASH":         true,
	"EXIF.METERING":      true,
	"EXIF.WHITEBALANCE":  true,
	"GPS.LOCATION":       true,
	"TAGS":               true,
	"CATEGORY":           true,
	"SIDECAR.TXT":        true,
	"JOBCODE":            true,
	"OPENCL.ACTIVATED":   true,
}

// legacyAliases rewrites bare legacy names to their current forms.
var legacyAliases = map[string]string{
	"HOME":            "FOLDER.HOME",
	"PICTURES.FOLDER": "FOLDER.PICTURES",
	"DESKTOP":         "FOLDER.DESKTOP",
}

// Names returns the closed placeholder set in display order.
func Names() []string {
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// Implemented reports whether a placeholder is ever populated.
func Implemented(name string) bool {
	return !notImplemented[name]
}

// buildRegistry resolves every placeholder for one expansion call.
// The returned map is owned by the caller; nothing is shared between
// calls, so concurrent expansions never observe each other.
func buildRegistry(img metadata.Image, seq int, opts Options) map[string]string {
	now := time.Now()
	if opts.Now != nil {
		now = opts.Now()
	}

	home := opts.HomeDir
	if home == "" {
		home, _ = os.UserHomeDir()
	}
	username := opts.Username
	if username == "" {
		if u, err := user.Current(); err == nil {
			username = u.Username
		} else {
			username = os.Getenv("USER")
		}
	}
	pictures := opts.PicturesDir
	if pictures == "" && home != "" {
		pictures = filepath.Join(home, "Pictures")
	}
	desktop := opts.DesktopDir
	if desktop == "" && home != "" {
		desktop = filepath.Join(home, "Desktop")
	}

	reg := make(map[string]string, len(names))
	for _, n := range names {
		reg[n] = ""
	}

	reg["ROLL.NAME"] = rollName(img.Path)
	reg["FILE.FOLDER"] = fileFolder(img.Path)
	reg["FILE.NAME"] = img.Filename
	reg["FILE.EXTENSION"] = img.Extension()

	reg["ID"] = itoaPositive(img.ID)
	reg["DUPLICATE.INDEX"] = itoaPositive(img.DuplicateIndex)
	reg["VERSION"] = itoaPositive(img.Version)
	if img.DuplicateIndex > 0 {
		reg["VERSION.IF.MULTI"] = itoaPositive(img.Version)
	}
	reg["VERSION.NAME"] = img.VersionName

	reg["SEQUENCE"] = fmt.Sprintf("%04d", seq)

	reg["SENSOR.WIDTH"] = itoaPositive(img.SensorWidth)
	reg["SENSOR.HEIGHT"] = itoaPositive(img.SensorHeight)
	reg["RAW.WIDTH"] = itoaPositive(img.RawWidth)
	reg["RAW.HEIGHT"] = itoaPositive(img.RawHeight)
	reg["CROP.WIDTH"] = itoaPositive(img.CropWidth)
	reg["CROP.HEIGHT"] = itoaPositive(img.CropHeight)
	reg["EXPORT.WIDTH"] = itoaPositive(img.ExportWidth)
	reg["EXPORT.HEIGHT"] = itoaPositive(img.ExportHeight)
	reg["WIDTH"] = firstNonEmpty(reg["EXPORT.WIDTH"], reg["RAW.WIDTH"])
	reg["HEIGHT"] = firstNonEmpty(reg["EXPORT.HEIGHT"], reg["RAW.HEIGHT"])

	reg["YEAR"] = fmt.Sprintf("%04d", now.Year())
	reg["MONTH"] = fmt.Sprintf("%02d", int(now.Month()))
	reg["DAY"] = fmt.Sprintf("%02d", now.Day())
	reg["HOUR"] = fmt.Sprintf("%02d", now.Hour())
	reg["MINUTE"] = fmt.Sprintf("%02d", now.Minute())
	reg["SECOND"] = fmt.Sprintf("%02d", now.Second())
	reg["MSEC"] = fmt.Sprintf("%03d", now.Nanosecond()/1e6)

	if taken, ok := img.CaptureTimestamp(); ok {
		reg["EXIF.YEAR"] = fmt.Sprintf("%04d", taken.Year())
		reg["EXIF.MONTH"] = fmt.Sprintf("%02d", int(taken.Month()))
		reg["EXIF.DAY"] = fmt.Sprintf("%02d", taken.Day())
		reg["EXIF.HOUR"] = fmt.Sprintf("%02d", taken.Hour())
		reg["EXIF.MINUTE"] = fmt.Sprintf("%02d", taken.Minute())
		reg["EXIF.SECOND"] = fmt.Sprintf("%02d", taken.Second())
		reg["EXIF.MSEC"] = fmt.Sprintf("%03d", taken.Nanosecond()/1e6)
	}

	reg["EXIF.ISO"] = floatValue(img.ISO)
	reg["EXIF.EXPOSURE"] = exposureValue(img.ExposureTime)
	reg["EXIF.EXPOSURE.BIAS"] = biasValue(img.ExposureBias)
	reg["EXIF.APERTURE"] = floatValue(img.Aperture)
	reg["EXIF.FOCAL.LENGTH"] = floatValue(img.FocalLength)
	reg["EXIF.FOCUS.DISTANCE"] = floatValue(img.FocusDistance)
	reg["EXIF.CROP"] = floatValue(img.CropFactor)
	reg["EXIF.MAKER"] = img.Maker
	reg["EXIF.MODEL"] = img.Model
	reg["EXIF.LENS"] = img.Lens

	reg["LATITUDE"] = coordValue(img.Latitude)
	reg["LONGITUDE"] = coordValue(img.Longitude)
	reg["ELEVATION"] = coordValue(img.Elevation)
	reg["GPS.LATITUDE"] = reg["LATITUDE"]
	reg["GPS.LONGITUDE"] = reg["LONGITUDE"]
	reg["GPS.ELEVATION"] = reg["ELEVATION"]

	reg["STARS"] = starsValue(img.Rating)
	reg["LABELS"] = strings.Join(img.Labels(), ",")

	reg["TITLE"] = img.Title
	reg["DESCRIPTION"] = img.Description
	reg["CREATOR"] = img.Creator
	reg["PUBLISHER"] = img.Publisher
	reg["RIGHTS"] = img.Rights

	reg["FOLDER.PICTURES"] = pictures
	reg["FOLDER.HOME"] = home
	reg["FOLDER.DESKTOP"] = desktop
	reg["USERNAME"] = username
	reg["NL"] = "\n"

	return reg
}

// Resolve builds the full placeholder table for an image. Exposed for
// the placeholder listing and browser; Expand builds its own copy per
// call.
func Resolve(img metadata.Image, seq int, opts Options) map[string]string {
	return buildRegistry(img, seq, opts)
}

func rollName(path string) string {
	if path == "" {
		return ""
	}
	dir := filepath.Dir(path)
	if dir == "." || dir == string(filepath.Separator) {
		return ""
	}
	return filepath.Base(dir)
}

func fileFolder(path string) string {
	if path == "" {
		return ""
	}
	if dir := filepath.Dir(path); dir != "." {
		return dir
	}
	return ""
}

func itoaPositive(n int) string {
	if n <= 0 {
		return ""
	}
	return strconv.Itoa(n)
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

// floatValue renders a float without trailing zeros; zero means unknown.
func floatValue(f float64) string {
	if f == 0 {
		return ""
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// exposureValue renders sub-second exposures as a 1/n fraction, the
// customary display for shutter speeds.
func exposureValue(sec float64) string {
	if sec <= 0 {
		return ""
	}
	if sec < 1 {
		return "1/" + strconv.FormatFloat(math.Round(1/sec), 'f', -1, 64)
	}
	return strconv.FormatFloat(sec, 'f', -1, 64)
}

func biasValue(ev float64) string {
	if ev == 0 {
		return ""
	}
	return fmt.Sprintf("%+.1f", ev)
}

func coordValue(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

// starsValue renders the star rating; 0 is unrated and -1 rejected.
func starsValue(rating int) string {
	switch {
	case rating < 0:
		return "rejected"
	case rating == 0:
		return ""
	case rating > 5:
		return "5"
	default:
		return strconv.Itoa(rating)
	}
}
