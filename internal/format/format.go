// Package format renders phex data for terminal display.
package format

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// RenderTable creates a formatted table with proper column alignment.
// Headers and rows are rendered using lipgloss/table which calculates
// column widths from content. No borders are rendered.
func RenderTable(headers []string, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	var output strings.Builder

	t := table.New().
		Headers(headers...).
		Rows(rows...).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		BorderRow(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).PaddingRight(2)
			}
			return lipgloss.NewStyle().PaddingRight(2)
		})

	output.WriteString(t.String())
	output.WriteString("\n")

	return output.String()
}

// placeholderHelp maps placeholder names to one-line descriptions.
// Names missing from this map get an empty help column.
var placeholderHelp = map[string]string{
	"ROLL.NAME":           "name of the folder containing the image",
	"FILE.FOLDER":         "full path of the image's folder",
	"FILE.NAME":           "image filename including extension",
	"FILE.EXTENSION":      "filename extension without the dot",
	"ID":                  "library id of the image",
	"DUPLICATE.INDEX":     "index among duplicates of the same source",
	"VERSION":             "version number of the edit",
	"VERSION.IF.MULTI":    "version number, only when duplicates exist",
	"VERSION.NAME":        "name given to this version",
	"SEQUENCE":            "caller-assigned export sequence number",
	"WIDTH":               "export width, falling back to raw width",
	"HEIGHT":              "export height, falling back to raw height",
	"SENSOR.WIDTH":        "sensor width in pixels",
	"SENSOR.HEIGHT":       "sensor height in pixels",
	"RAW.WIDTH":           "raw file width in pixels",
	"RAW.HEIGHT":          "raw file height in pixels",
	"CROP.WIDTH":          "cropped width in pixels",
	"CROP.HEIGHT":         "cropped height in pixels",
	"EXPORT.WIDTH":        "exported width in pixels",
	"EXPORT.HEIGHT":       "exported height in pixels",
	"YEAR":                "current year",
	"MONTH":               "current month",
	"DAY":                 "current day",
	"HOUR":                "current hour",
	"MINUTE":              "current minute",
	"SECOND":              "current second",
	"MSEC":                "current millisecond",
	"EXIF.YEAR":           "capture year",
	"EXIF.MONTH":          "capture month",
	"EXIF.DAY":            "capture day",
	"EXIF.HOUR":           "capture hour",
	"EXIF.MINUTE":         "capture minute",
	"EXIF.SECOND":         "capture second",
	"EXIF.MSEC":           "capture millisecond",
	"EXIF.ISO":            "ISO sensitivity",
	"EXIF.EXPOSURE":       "exposure time, 1/n for sub-second",
	"EXIF.EXPOSURE.BIAS":  "exposure bias in EV",
	"EXIF.APERTURE":       "aperture f-number",
	"EXIF.FOCAL.LENGTH":   "focal length in mm",
	"EXIF.FOCUS.DISTANCE": "focus distance in meters",
	"EXIF.CROP":           "sensor crop factor",
	"EXIF.MAKER":          "camera maker",
	"EXIF.MODEL":          "camera model",
	"EXIF.LENS":           "lens description",
	"EXIF.DATE.REGIONAL":  "not implemented",
	"EXIF.TIME.REGIONAL":  "not implemented",
	"EXIF.FLASH":          "not implemented",
	"EXIF.METERING":       "not implemented",
	"EXIF.WHITEBALANCE":   "not implemented",
	"LONGITUDE":           "GPS longitude",
	"LATITUDE":            "GPS latitude",
	"ELEVATION":           "GPS elevation in meters",
	"GPS.LONGITUDE":       "GPS longitude",
	"GPS.LATITUDE":        "GPS latitude",
	"GPS.ELEVATION":       "GPS elevation in meters",
	"GPS.LOCATION":        "not implemented",
	"STARS":               "star rating, or rejected",
	"LABELS":              "active color labels, comma separated",
	"TITLE":               "image title",
	"DESCRIPTION":         "image description",
	"CREATOR":             "creator",
	"PUBLISHER":           "publisher",
	"RIGHTS":              "rights statement",
	"TAGS":                "not implemented",
	"CATEGORY":            "not implemented",
	"SIDECAR.TXT":         "not implemented",
	"FOLDER.PICTURES":     "user's pictures directory",
	"FOLDER.HOME":         "user's home directory",
	"FOLDER.DESKTOP":      "user's desktop directory",
	"USERNAME":            "invoking user's name",
	"JOBCODE":             "not implemented",
	"OPENCL.ACTIVATED":    "not implemented",
	"NL":                  "newline character",
}

// PlaceholderHelp returns the one-line description of a placeholder.
func PlaceholderHelp(name string) string {
	return placeholderHelp[name]
}

// DisplayValue makes a placeholder value printable in a single table
// cell: newlines become visible escapes and long values are shortened.
// Truncation is rune-based so multi-byte values are never cut mid-rune.
func DisplayValue(v string) string {
	v = strings.ReplaceAll(v, "\n", `\n`)
	if runes := []rune(v); len(runes) > 40 {
		return string(runes[:37]) + "..."
	}
	return v
}
