// Package subst expands $(...) placeholder tokens in filename and
// path templates. Values come from image metadata, system folders and
// the wall clock; each token may carry one modifier (case transform,
// slice, default, pattern strip or replace).
//
// Expansion never fails: unknown placeholders become the empty string,
// malformed tokens stay literal, and all diagnostics go to the context
// logger.
package subst

import (
	"context"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/phex-cli/phex/internal/log"
	"github.com/phex-cli/phex/internal/metadata"
)

// Expand substitutes every $(...) token in template using img, the
// caller-assigned sequence number and opts. The placeholder table is
// rebuilt for each call and discarded afterwards, so concurrent calls
// are independent.
func Expand(ctx context.Context, template string, img metadata.Image, seq int, opts Options) string {
	if !strings.Contains(template, "$(") {
		return template
	}

	l := log.FromContext(ctx)
	reg := buildRegistry(img, seq, opts)

	lookup := func(name string) (string, bool) {
		v, ok := reg[name]
		return v, ok
	}

	out := template
	for _, tok := range scanTokens(template) {
		if tok.name == "" {
			// No leading name run means the token does not match the
			// grammar. It stays literal, like unterminated tokens.
			l.Debug("malformed token", "token", tok.raw)
			continue
		}

		value, ok := reg[tok.name]
		if !ok {
			l.Debug("unknown placeholder", "name", tok.name, "suggestion", suggest(tok.name))
			out = strings.ReplaceAll(out, tok.raw, "")
			continue
		}

		mod := classifyModifier(tok.modifier)
		result := mod.apply(value, lookup, l.Debug)

		// The full token text is replaced everywhere it occurs, not
		// only at the matched span. Identical token text always
		// resolves identically within one call, so this is benign.
		out = strings.ReplaceAll(out, tok.raw, result)
	}
	return out
}

// suggest returns the closest known placeholder name, or "".
func suggest(name string) string {
	matches := fuzzy.Find(name, names)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Str
}
