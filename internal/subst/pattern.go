package subst

import (
	"fmt"
	"regexp"
	"strings"
)

// The strip and replace modifiers use a reduced pattern dialect whose
// magic characters are . * + - ? ^ $ % [ ] ( ). This file translates
// that dialect to Go's regexp engine. The mapping:
//
//	%d %a %w %s %l %u %x %p   character classes (uppercase = complement)
//	%<magic>                  literal magic character
//	-                         lazy zero-or-more (Go *?)
//	. * + ? ^ $ ( ) [ ]       same meaning in both engines
//	%n in replacements        capture reference (Go ${n})
//
// Characters that are magic only in Go ({ } | \) are escaped so they
// stay literal.

// patternClasses maps a dialect class letter to Go character-class
// content (without brackets).
var patternClasses = map[byte]string{
	'a': `A-Za-z`,
	'd': `0-9`,
	'l': `a-z`,
	'u': `A-Z`,
	'w': `0-9A-Za-z`,
	'x': `0-9A-Fa-f`,
	's': ` \t\n\r\f\v`,
	'p': "!-/:-@\\[-`{-~",
}

// EscapePattern escapes the characters % - ( ) + with a % prefix so a
// literal string can be embedded in a pattern. The escape set matches
// the source application and is deliberately incomplete: ^ $ . [ ] *
// pass through unescaped. See DESIGN.md before "fixing" this.
func EscapePattern(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '%', '-', '(', ')', '+':
			b.WriteByte('%')
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// translatePattern converts a dialect pattern into Go regexp source.
func translatePattern(pat string) (string, error) {
	var b strings.Builder
	b.Grow(len(pat) + 8)
	for i := 0; i < len(pat); i++ {
		c := pat[i]
		switch c {
		case '%':
			i++
			if i >= len(pat) {
				return "", fmt.Errorf("pattern %q ends with %%", pat)
			}
			e := pat[i]
			if content, ok := patternClasses[lowerByte(e)]; ok {
				if e >= 'A' && e <= 'Z' {
					b.WriteString("[^" + content + "]")
				} else {
					b.WriteString("[" + content + "]")
				}
			} else {
				b.WriteString(regexp.QuoteMeta(string(e)))
			}
		case '-':
			b.WriteString("*?")
		case '[':
			class, rest, err := translateClass(pat[i:])
			if err != nil {
				return "", err
			}
			b.WriteString(class)
			i += rest - 1
		case '{', '}', '|', '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String(), nil
}

// translateClass converts a [...] set starting at pat[0]. Returns the
// Go class and the number of dialect bytes consumed.
func translateClass(pat string) (string, int, error) {
	var b strings.Builder
	b.WriteByte('[')
	i := 1
	if i < len(pat) && pat[i] == '^' {
		b.WriteByte('^')
		i++
	}
	for i < len(pat) {
		c := pat[i]
		switch c {
		case ']':
			b.WriteByte(']')
			return b.String(), i + 1, nil
		case '%':
			i++
			if i >= len(pat) {
				return "", 0, fmt.Errorf("class in %q ends with %%", pat)
			}
			e := pat[i]
			if content, ok := patternClasses[lowerByte(e)]; ok {
				if e >= 'A' && e <= 'Z' {
					return "", 0, fmt.Errorf("negated class %%%c not supported inside []", e)
				}
				b.WriteString(content)
			} else {
				switch e {
				case '\\', ']', '^':
					b.WriteByte('\\')
					b.WriteByte(e)
				default:
					b.WriteByte(e)
				}
			}
		case '\\':
			b.WriteString(`\\`)
		default:
			b.WriteByte(c)
		}
		i++
	}
	return "", 0, fmt.Errorf("unterminated class in %q", pat)
}

// translateReplacement converts a dialect replacement string: %n
// becomes a capture reference, %% a literal percent, and $ is escaped
// so Go's expander treats it literally.
func translateReplacement(rep string) string {
	var b strings.Builder
	b.Grow(len(rep) + 4)
	for i := 0; i < len(rep); i++ {
		c := rep[i]
		switch {
		case c == '%' && i+1 < len(rep) && rep[i+1] >= '0' && rep[i+1] <= '9':
			b.WriteString("${" + string(rep[i+1]) + "}")
			i++
		case c == '%' && i+1 < len(rep):
			b.WriteByte(rep[i+1])
			i++
		case c == '$':
			b.WriteString("$$")
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// compilePattern translates pat and compiles it with an optional
// anchor prefix/suffix.
func compilePattern(pat, prefix, suffix string) (*regexp.Regexp, error) {
	src, err := translatePattern(pat)
	if err != nil {
		return nil, err
	}
	re, err := regexp.Compile(prefix + src + suffix)
	if err != nil {
		return nil, fmt.Errorf("pattern %q: %w", pat, err)
	}
	return re, nil
}

func lowerByte(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
