// Package domain holds DTOs for rules http and service contracts
package domain

// SpellingRule is a literal replacement pair
type SpellingRule struct {
	Wrong string `json:"wrong" example:"됬"`
	Right string `json:"right" example:"됐"`
	Note  string `json:"note,omitempty" example:"되었-의 준말은 됐-"`
}

// PatternRule is a regex rule with its replacement template
type PatternRule struct {
	ID      string `json:"id" example:"su-itda"`
	Pattern string `json:"pattern" example:"수있"`
	Replace string `json:"replace" example:"수 있"`
	Note    string `json:"note,omitempty" example:"'수 있다' 띄어쓰기"`
}

// PackInfo summarizes the loaded rule pack
type PackInfo struct {
	Version          int            `json:"version" example:"1"`
	SpellingCount    int            `json:"spelling_count" example:"18"`
	SpacingCount     int            `json:"spacing_count" example:"7"`
	PunctuationCount int            `json:"punctuation_count" example:"5"`
	Meta             map[string]any `json:"meta,omitempty"`
}
