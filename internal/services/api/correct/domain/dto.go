// Package domain holds DTOs for correct http and service contracts
package domain

// Engine names selectable per request
const (
	EngineRules  = "rules"
	EngineRemote = "remote"
)

// CorrectionInput is the input for a correction request.
// Text length is capped at 1000 characters, counted in runes
type CorrectionInput struct {
	Text      string `json:"text" validate:"required,max=1000" example:"나는 밥을 됬다"`
	Mode      string `json:"mode,omitempty" validate:"omitempty,oneof=proofreading copyediting rewriting" example:"proofreading"`
	Engine    string `json:"engine,omitempty" validate:"omitempty,oneof=rules remote" example:"rules"`
	SessionID string `json:"session_id,omitempty" validate:"omitempty,uuid4" example:"1f0e9c1a-7a31-4c6e-9a65-2b8f6a2f3d44"`
}

// AnalyzeInput is the input for text analysis without rewriting
type AnalyzeInput struct {
	Text string `json:"text" validate:"required,max=1000" example:"나는 밥을 됬다"`
}

// Correction is one resolved edit against the original text.
// Start and End are rune offsets, half open
type Correction struct {
	Type        string `json:"type" example:"spelling"`
	Original    string `json:"original" example:"됬"`
	Corrected   string `json:"corrected" example:"됐"`
	Explanation string `json:"explanation" example:"되었-의 준말은 됐-"`
	Start       int    `json:"start" example:"6"`
	End         int    `json:"end" example:"7"`
	Resolved    bool   `json:"resolved" example:"true"`
}

// Segment is one display run of the original text
type Segment struct {
	Kind       string      `json:"kind" example:"annotated"`
	Text       string      `json:"text" example:"됬"`
	Correction *Correction `json:"correction,omitempty"`
}

// Statistics summarizes a correction pass in rune counts
type Statistics struct {
	OriginalLength  int `json:"original_length" example:"8"`
	CorrectedLength int `json:"corrected_length" example:"8"`
	NumCorrections  int `json:"num_corrections" example:"1"`
}

// CorrectionResult is the basic correction payload
type CorrectionResult struct {
	Original       string       `json:"original"`
	Corrected      string       `json:"corrected"`
	HasCorrections bool         `json:"has_corrections" example:"true"`
	Mode           string       `json:"mode" example:"proofreading"`
	Engine         string       `json:"engine" example:"rules"`
	Corrections    []Correction `json:"corrections"`
	Statistics     Statistics   `json:"statistics"`
}

// DetailedResult adds the rendered segment view and the edits that could
// not be rendered inline
type DetailedResult struct {
	CorrectionResult

	Segments   []Segment    `json:"segments"`
	Unresolved []Correction `json:"unresolved"`
}

// AnalysisResult reports issues without applying them
type AnalysisResult struct {
	CharCount     int          `json:"char_count" example:"8"`
	WordCount     int          `json:"word_count" example:"3"`
	SentenceCount int          `json:"sentence_count" example:"1"`
	IssueCount    int          `json:"issue_count" example:"1"`
	Issues        []Correction `json:"issues"`
}

// SessionInfo identifies a correction session used for submission gating
type SessionInfo struct {
	SessionID string `json:"session_id" example:"1f0e9c1a-7a31-4c6e-9a65-2b8f6a2f3d44"`
	State     string `json:"state" example:"idle"`
}
