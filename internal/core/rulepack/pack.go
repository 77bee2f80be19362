// Package rulepack loads and compiles correction rules from the embedded v1 rules.json.
// It prepares literal spelling pairs and regex templates for the rule corrector
package rulepack

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

//go:embed rules.json
var embedded []byte

type rawSpellingV1 struct {
	Wrong string `json:"wrong"`
	Right string `json:"right"`
	Note  string `json:"note,omitempty"`
}

type rawRegexV1 struct {
	ID      string `json:"id"`
	Pattern string `json:"pattern"`
	Replace string `json:"replace"`
	Note    string `json:"note,omitempty"`
}

type rawPackV1 struct {
	Version     int             `json:"version"`
	Meta        map[string]any  `json:"meta"`
	Spelling    []rawSpellingV1 `json:"spelling"`
	Spacing     []rawRegexV1    `json:"spacing"`
	Punctuation []rawRegexV1    `json:"punctuation"`
}

// Spelling is a literal wrong -> right replacement pair
type Spelling struct {
	Wrong string
	Right string
	Note  string
}

// RegexRule is a compiled pattern with its replacement template
type RegexRule struct {
	ID      string
	Pattern string
	Replace string
	Note    string
}

// Pack represents a compiled rule pack for the rule corrector
type Pack struct {
	Version int

	// Literal spelling pairs, longest wrong form first so broader
	// fixes win over their substrings
	Spelling []Spelling

	// Compiled spacing rules, 1:1 with SpacingCompiled
	Spacing         []RegexRule
	SpacingCompiled []*regexp.Regexp

	// Compiled punctuation rules, 1:1 with PunctCompiled
	Punctuation   []RegexRule
	PunctCompiled []*regexp.Regexp

	// Optional extras surfaced by the rules API
	Meta map[string]any
}

// Load returns the compiled pack from the embedded v1 rules.json
func Load() (*Pack, error) {
	var rp rawPackV1
	if err := json.Unmarshal(embedded, &rp); err != nil {
		return nil, fmt.Errorf("rulepack: parse rules.json: %w", err)
	}
	if rp.Version != 1 {
		return nil, fmt.Errorf("rulepack: unsupported rules.json version %d (want 1)", rp.Version)
	}

	p := &Pack{
		Version: rp.Version,
		Meta:    rp.Meta,
	}

	// Spelling pairs (trimmed; ignore empty wrong forms)
	for _, s := range rp.Spelling {
		wrong := strings.TrimSpace(s.Wrong)
		if wrong == "" {
			continue
		}
		p.Spelling = append(p.Spelling, Spelling{
			Wrong: wrong,
			Right: s.Right,
			Note:  s.Note,
		})
	}

	var err error
	if p.Spacing, p.SpacingCompiled, err = compileRules(rp.Spacing); err != nil {
		return nil, err
	}
	if p.Punctuation, p.PunctCompiled, err = compileRules(rp.Punctuation); err != nil {
		return nil, err
	}

	// Longest wrong form first, ties broken lexically for determinism
	sort.SliceStable(p.Spelling, func(i, j int) bool {
		a, b := p.Spelling[i].Wrong, p.Spelling[j].Wrong
		if len(a) != len(b) {
			return len(a) > len(b)
		}
		return a < b
	})

	return p, nil
}

// compileRules compiles a raw regex rule block preserving author order.
// Patterns are compiled verbatim, whitespace is significant in a regex
func compileRules(in []rawRegexV1) ([]RegexRule, []*regexp.Regexp, error) {
	rules := make([]RegexRule, 0, len(in))
	compiled := make([]*regexp.Regexp, 0, len(in))
	for _, r := range in {
		if r.Pattern == "" {
			continue
		}
		re, err := regexp.Compile(r.Pattern)
		if err != nil {
			return nil, nil, fmt.Errorf("rulepack: compile %q (%s): %w", r.Pattern, r.ID, err)
		}
		rules = append(rules, RegexRule{
			ID:      r.ID,
			Pattern: r.Pattern,
			Replace: r.Replace,
			Note:    r.Note,
		})
		compiled = append(compiled, re)
	}
	return rules, compiled, nil
}
