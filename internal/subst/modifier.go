package subst

import (
	"regexp"
	"strconv"
	"strings"
)

// modifierKind enumerates the mutually exclusive modifier operations.
// A token carries at most one; the first grammar rule that matches the
// modifier text wins and there is no chaining.
type modifierKind int

const (
	modNone modifierKind = iota
	modUpperAll
	modUpperFirst
	modLowerAll
	modLowerFirst
	modSlice
	modSliceOpen
	modDefaultRef
	modDefaultLiteral
	modReplaceNonEmpty
	modStripPrefix
	modStripSuffix
	modReplaceAll
	modReplaceFirstStart
	modReplaceFirstEnd
	modReplaceFirst
)

// modifier is one classified operation.
type modifier struct {
	kind       modifierKind
	start, end int    // slice offsets as written (external convention)
	ref        string // placeholder reference of -$(ref)
	text       string // literal or pattern argument
	repl       string // replacement of the /.../ forms
}

var (
	reSliceTwo = regexp.MustCompile(`^:(-?\d+):(-?\d+)$`)
	reSliceOne = regexp.MustCompile(`^:(-?\d+)$`)
	reRef      = regexp.MustCompile(`^-\$\(([A-Za-z._]+)\)$`)
)

// classifyModifier tests the grammar rules in fixed priority order.
// Text matching none of them yields modNone and the value passes
// through unmodified.
func classifyModifier(expr string) modifier {
	switch {
	case expr == "":
		return modifier{kind: modNone}
	case strings.HasPrefix(expr, "^^"):
		return modifier{kind: modUpperAll}
	case strings.HasPrefix(expr, "^"):
		return modifier{kind: modUpperFirst}
	case strings.HasPrefix(expr, ",,"):
		return modifier{kind: modLowerAll}
	case strings.HasPrefix(expr, ","):
		return modifier{kind: modLowerFirst}
	}

	if m := reSliceTwo.FindStringSubmatch(expr); m != nil {
		start, _ := strconv.Atoi(m[1])
		end, _ := strconv.Atoi(m[2])
		return modifier{kind: modSlice, start: start, end: end}
	}
	if m := reSliceOne.FindStringSubmatch(expr); m != nil {
		start, _ := strconv.Atoi(m[1])
		return modifier{kind: modSliceOpen, start: start}
	}
	if m := reRef.FindStringSubmatch(expr); m != nil {
		return modifier{kind: modDefaultRef, ref: m[1]}
	}

	switch {
	case strings.HasPrefix(expr, "-"):
		return modifier{kind: modDefaultLiteral, text: expr[1:]}
	case strings.HasPrefix(expr, "+"):
		return modifier{kind: modReplaceNonEmpty, text: expr[1:]}
	case strings.HasPrefix(expr, "#"):
		return modifier{kind: modStripPrefix, text: expr[1:]}
	case strings.HasPrefix(expr, "%"):
		return modifier{kind: modStripSuffix, text: expr[1:]}
	}

	if pat, repl, ok := splitReplace(expr, "//"); ok {
		return modifier{kind: modReplaceAll, text: pat, repl: repl}
	}
	if pat, repl, ok := splitReplace(expr, "/#"); ok {
		return modifier{kind: modReplaceFirstStart, text: pat, repl: repl}
	}
	if pat, repl, ok := splitReplace(expr, "/%"); ok {
		return modifier{kind: modReplaceFirstEnd, text: pat, repl: repl}
	}
	if pat, repl, ok := splitReplace(expr, "/"); ok {
		return modifier{kind: modReplaceFirst, text: pat, repl: repl}
	}

	return modifier{kind: modNone}
}

// splitReplace splits "<lead>pattern/replacement" at the separating
// slash. Misses when the lead or the separator is absent.
func splitReplace(expr, lead string) (pat, repl string, ok bool) {
	rest, found := strings.CutPrefix(expr, lead)
	if !found {
		return "", "", false
	}
	return strings.Cut(rest, "/")
}

// apply runs the modifier on a resolved value. lookup resolves a
// placeholder reference for the -$(ref) form; diag reports non-fatal
// evaluation problems.
func (m modifier) apply(value string, lookup func(string) (string, bool), diag func(msg string, kv ...any)) string {
	switch m.kind {
	case modUpperAll:
		return strings.ToUpper(value)
	case modUpperFirst:
		return changeFirst(value, strings.ToUpper)
	case modLowerAll:
		return strings.ToLower(value)
	case modLowerFirst:
		return changeFirst(value, strings.ToLower)
	case modSlice:
		return slice(value, m.start, m.end, false)
	case modSliceOpen:
		return slice(value, m.start, 0, true)
	case modDefaultRef:
		if value != "" {
			return value
		}
		ref, ok := lookup(normalizeName(m.ref))
		if !ok {
			diag("unknown placeholder in default", "name", m.ref)
			return ""
		}
		return ref
	case modDefaultLiteral:
		if value == "" {
			return m.text
		}
		return value
	case modReplaceNonEmpty:
		if value != "" {
			return m.text
		}
		return value
	case modStripPrefix:
		return strip(value, m.text, true, diag)
	case modStripSuffix:
		return strip(value, m.text, false, diag)
	case modReplaceAll:
		re, err := compilePattern(m.text, "", "")
		if err != nil {
			diag("bad pattern", "pattern", m.text, "err", err)
			return value
		}
		return re.ReplaceAllString(value, translateReplacement(m.repl))
	case modReplaceFirstStart:
		re, err := compilePattern(m.text, "^", "")
		if err != nil {
			diag("bad pattern", "pattern", m.text, "err", err)
			return value
		}
		return re.ReplaceAllString(value, translateReplacement(m.repl))
	case modReplaceFirstEnd:
		re, err := compilePattern(m.text, "", "$")
		if err != nil {
			diag("bad pattern", "pattern", m.text, "err", err)
			return value
		}
		return re.ReplaceAllString(value, translateReplacement(m.repl))
	case modReplaceFirst:
		return replaceFirst(value, m.text, m.repl, diag)
	default:
		return value
	}
}

// changeFirst transforms only the first rune of s.
func changeFirst(s string, f func(string) string) string {
	if s == "" {
		return s
	}
	for i := range s {
		if i > 0 {
			return f(s[:i]) + s[i:]
		}
	}
	return f(s)
}

// slice cuts a substring with the engine's 1-based inclusive indexing.
// External offsets are 0-based with an exclusive end; negative offsets
// count back from the end with -1 naming the last character. A
// two-offset slice with both offsets negative is swapped first, which
// normalizes the reversed from-end ranges users tend to write. Out of
// range indices clamp instead of erroring.
func slice(s string, start, end int, openEnded bool) string {
	runes := []rune(s)
	n := len(runes)

	if !openEnded && start < 0 && end < 0 {
		start, end = end, start
	}

	// 0-based external start to 1-based inclusive.
	if start >= 0 {
		start++
	} else {
		start = n + start + 1
	}

	if openEnded {
		end = n
	} else if end < 0 {
		end = n + end + 1
	}

	if start < 1 {
		start = 1
	}
	if end > n {
		end = n
	}
	if start > end {
		return ""
	}
	return string(runes[start-1 : end])
}

// strip removes one anchored pattern match from the value. The pattern
// argument is treated as literal text: it goes through EscapePattern
// before compiling, matching the source application's behavior.
func strip(value, pat string, prefix bool, diag func(msg string, kv ...any)) string {
	var re *regexp.Regexp
	var err error
	if prefix {
		re, err = compilePattern(EscapePattern(pat), "^", "")
	} else {
		re, err = compilePattern(EscapePattern(pat), "", "$")
	}
	if err != nil {
		diag("bad strip pattern", "pattern", pat, "err", err)
		return value
	}
	loc := re.FindStringIndex(value)
	if loc == nil {
		return value
	}
	if prefix {
		return value[loc[1]:]
	}
	return value[:loc[0]]
}

// replaceFirst replaces exactly the leftmost match, with capture
// references expanded in the replacement.
func replaceFirst(value, pat, repl string, diag func(msg string, kv ...any)) string {
	re, err := compilePattern(pat, "", "")
	if err != nil {
		diag("bad pattern", "pattern", pat, "err", err)
		return value
	}
	idx := re.FindStringSubmatchIndex(value)
	if idx == nil {
		return value
	}
	expanded := re.ExpandString(nil, translateReplacement(repl), value, idx)
	return value[:idx[0]] + string(expanded) + value[idx[1]:]
}
