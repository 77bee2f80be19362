// Rule-based engine. Three passes over the text in order: literal spelling
// pairs, spacing patterns, punctuation patterns. Each pass scans left to
// right so recorded corrections come out in document order, which is what
// the edit locator downstream expects
package corrector

import (
	"context"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"redpen/internal/core/normalize"
	"redpen/internal/core/reconcile"
	"redpen/internal/core/rulepack"
)

// Rules is the local engine backed by a compiled rulepack
type Rules struct {
	pack *rulepack.Pack
}

// NewRules constructs the rule engine
func NewRules(pack *rulepack.Pack) *Rules {
	return &Rules{pack: pack}
}

// Correct applies the rule passes to text. It never fails; the error return
// satisfies the Corrector contract shared with remote adapters
func (r *Rules) Correct(_ context.Context, text, mode string) (Result, error) {
	res := Result{Original: text}

	cur, corr := r.applySpelling(text)
	res.Corrections = append(res.Corrections, corr...)

	cur, corr = applyRegexPass(cur, r.pack.Spacing, r.pack.SpacingCompiled, reconcile.CategorySpacing)
	res.Corrections = append(res.Corrections, corr...)

	cur, corr = applyRegexPass(cur, r.pack.Punctuation, r.pack.PunctCompiled, reconcile.CategoryPunctuation)
	res.Corrections = append(res.Corrections, corr...)

	// heavier modes also tidy whitespace runs, without an edit record since
	// there is no single fragment to point at
	if mode == ModeCopyediting || mode == ModeRewriting {
		cur = normalize.CollapseSpaces(cur)
	}

	res.Corrected = cur
	return res, nil
}

// applySpelling replaces literal wrong forms left to right. At each position
// the longest matching pair wins (the pack keeps pairs sorted longest first)
func (r *Rules) applySpelling(text string) (string, []Correction) {
	var b strings.Builder
	b.Grow(len(text))
	var out []Correction

	i := 0
	for i < len(text) {
		matched := false
		for _, sp := range r.pack.Spelling {
			if strings.HasPrefix(text[i:], sp.Wrong) {
				b.WriteString(sp.Right)
				out = append(out, Correction{
					Category:    reconcile.CategorySpelling,
					Original:    sp.Wrong,
					Corrected:   sp.Right,
					Explanation: sp.Note,
				})
				i += len(sp.Wrong)
				matched = true
				break
			}
		}
		if matched {
			continue
		}
		_, size := utf8.DecodeRuneInString(text[i:])
		if size == 0 {
			break
		}
		b.WriteString(text[i : i+size])
		i += size
	}
	return b.String(), out
}

// span is one regex match scheduled for replacement
type span struct {
	start, end int
	rule       int
}

// applyRegexPass collects the matches of every rule in the block, drops
// overlaps in favor of the earlier (then longer) match, and rewrites the
// text in a single sweep
func applyRegexPass(text string, rules []rulepack.RegexRule, compiled []*regexp.Regexp, category string) (string, []Correction) {
	var spans []span
	for ri, re := range compiled {
		for _, m := range re.FindAllStringIndex(text, -1) {
			spans = append(spans, span{start: m[0], end: m[1], rule: ri})
		}
	}
	if len(spans) == 0 {
		return text, nil
	}

	sort.Slice(spans, func(i, j int) bool {
		if spans[i].start != spans[j].start {
			return spans[i].start < spans[j].start
		}
		return spans[i].end > spans[j].end
	})

	var b strings.Builder
	b.Grow(len(text))
	var out []Correction

	cursor := 0
	for _, s := range spans {
		if s.start < cursor {
			continue // overlapped by an earlier match
		}
		b.WriteString(text[cursor:s.start])

		matched := text[s.start:s.end]
		replaced := compiled[s.rule].ReplaceAllString(matched, rules[s.rule].Replace)
		b.WriteString(replaced)
		if replaced != matched {
			out = append(out, Correction{
				Category:    category,
				Original:    matched,
				Corrected:   replaced,
				Explanation: rules[s.rule].Note,
			})
		}
		cursor = s.end
	}
	b.WriteString(text[cursor:])
	return b.String(), out
}
