package subst

import "strings"

// token is one $(...) occurrence in a template.
type token struct {
	raw      string // full token text including $( and )
	name     string // placeholder name after alias rewriting
	modifier string // text after the name, "" when absent
}

// scanTokens finds all non-overlapping $(...) tokens in a template.
// At most one embedded $(...) level is recognized, which is what the
// default-from-placeholder modifier needs. Deeper nesting and
// unterminated tokens are parse misses: the text is skipped and stays
// literal in the output.
func scanTokens(template string) []token {
	var tokens []token
	for i := 0; i+1 < len(template); {
		start := strings.Index(template[i:], "$(")
		if start < 0 {
			break
		}
		start += i

		raw, ok := matchToken(template[start:])
		if !ok {
			i = start + 2
			continue
		}

		inner := raw[2 : len(raw)-1]
		name := leadingName(inner)
		tokens = append(tokens, token{
			raw:      raw,
			name:     normalizeName(name),
			modifier: inner[len(name):],
		})
		i = start + len(raw)
	}
	return tokens
}

// matchToken matches a balanced token at the start of s, permitting one
// nested parenthesis level.
func matchToken(s string) (string, bool) {
	depth := 1
	for i := 2; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
			if depth > 2 {
				return "", false
			}
		case ')':
			depth--
			if depth == 0 {
				return s[:i+1], true
			}
		}
	}
	return "", false
}

// leadingName returns the leading run of letters, dots and underscores.
func leadingName(s string) string {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' || c == '.' || c == '_' {
			continue
		}
		return s[:i]
	}
	return s
}

// normalizeName applies the legacy alias rewrite: underscores become
// dots, and three bare legacy names map to their current equivalents.
func normalizeName(name string) string {
	name = strings.ReplaceAll(name, "_", ".")
	if current, ok := legacyAliases[name]; ok {
		return current
	}
	return name
}
