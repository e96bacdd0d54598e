// Package shellquote quotes strings for use as single command-line
// arguments. Two dialects are supported: POSIX shells (single-quote
// wrapping with the '\'' escape) and the Windows command interpreter
// (double-quote wrapping with caret-escaped doubled quotes).
//
// Both operations are pure and idempotent: quoting an already-quoted
// string returns it unchanged.
package shellquote

import (
	"runtime"
	"strings"
)

// Dialect selects the quoting convention of a command interpreter.
type Dialect int

const (
	// Posix quotes for sh-compatible shells.
	Posix Dialect = iota
	// Windows quotes for cmd.exe.
	Windows
)

// posixEscape closes the quoted string, emits an escaped single quote
// and reopens it. The only character that cannot appear inside single
// quotes is the single quote itself.
const posixEscape = `'\''`

// windowsEscape is a caret-escaped doubled quote for cmd.exe.
const windowsEscape = `^""`

// Current returns the dialect of the running platform.
func Current() Dialect {
	if runtime.GOOS == "windows" {
		return Windows
	}
	return Posix
}

// String returns the dialect name.
func (d Dialect) String() string {
	if d == Windows {
		return "windows"
	}
	return "posix"
}

// IsNotSanitized reports whether s still needs quoting for the dialect.
func IsNotSanitized(s string, d Dialect) bool {
	switch d {
	case Windows:
		return !isQuotedWindows(s)
	default:
		return !isQuotedPosix(s)
	}
}

// Sanitize quotes s as one argument for the dialect's interpreter.
// Already-quoted input is returned unchanged.
func Sanitize(s string, d Dialect) string {
	if !IsNotSanitized(s, d) {
		return s
	}
	switch d {
	case Windows:
		return `"` + strings.ReplaceAll(s, `"`, windowsEscape) + `"`
	default:
		return "'" + strings.ReplaceAll(s, "'", posixEscape) + "'"
	}
}

// isQuotedPosix reports whether s is wrapped in a single pair of single
// quotes and every interior single quote belongs to a '\'' escape.
func isQuotedPosix(s string) bool {
	if len(s) < 2 || s[0] != '\'' || s[len(s)-1] != '\'' {
		return false
	}
	inner := s[1 : len(s)-1]
	inner = strings.ReplaceAll(inner, posixEscape, "")
	return !strings.Contains(inner, "'")
}

// isQuotedWindows reports whether s is wrapped in double quotes.
// cmd.exe quoting has no interior validation worth doing.
func isQuotedWindows(s string) bool {
	return len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"'
}
