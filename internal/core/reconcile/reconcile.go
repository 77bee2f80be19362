// Package reconcile matches corrector edits back onto the original text and
// projects the result into display segments
//
// Offsets are rune counts into the original text, half open [Start, End).
// The locator walks edits in input order with a single non decreasing search
// cursor so a repeated fragment annotates its next occurrence instead of
// re-matching an earlier one. When a fragment is not found at or after the
// cursor the locator retries once from position zero; only a fragment absent
// from the text entirely collapses to the degenerate [0,0) span
package reconcile

// Edit categories reported by correctors. The set is open ended, remote
// correctors may report values outside this list
const (
	CategorySpelling    = "spelling"
	CategorySpacing     = "spacing"
	CategoryPunctuation = "punctuation"
	CategoryGrammar     = "grammar"
	CategoryStyle       = "style"
)

// Edit is a single proposed correction against the original text.
// Start and End are meaningful only when Resolved is true
type Edit struct {
	Category    string
	Fragment    string
	Replacement string
	Explanation string

	Start    int
	End      int
	Resolved bool
}

// ZeroWidth reports whether the edit spans no text
func (e Edit) ZeroWidth() bool { return e.Start == e.End }

// Segment kinds
const (
	SegmentPlain     = "plain"
	SegmentAnnotated = "annotated"
)

// Segment is one display run of the original text. Annotated segments carry
// the edit whose span they cover
type Segment struct {
	Kind string
	Text string
	Edit *Edit
}

// Locate resolves each edit's span within text. The returned slice has the
// same length and order as edits. Absence of a match is a data condition,
// not an error: such edits come back with the degenerate [0,0) span and
// Resolved false. An empty fragment resolves zero width at the cursor
// without advancing it. A retry hit behind the cursor never rewinds it, so
// later duplicates cannot re-match an occurrence already annotated
func Locate(text string, edits []Edit) []Edit {
	rs := []rune(text)
	out := make([]Edit, len(edits))
	cursor := 0

	for i, e := range edits {
		fr := []rune(e.Fragment)
		if len(fr) == 0 {
			e.Start, e.End = cursor, cursor
			e.Resolved = true
			out[i] = e
			continue
		}

		idx := indexRunes(rs, fr, cursor)
		if idx < 0 && cursor > 0 {
			// permissive retry from the top, once
			idx = indexRunes(rs, fr, 0)
		}
		if idx < 0 {
			e.Start, e.End = 0, 0
			e.Resolved = false
			out[i] = e
			continue
		}

		e.Start, e.End = idx, idx+len(fr)
		e.Resolved = true
		if e.End > cursor {
			cursor = e.End
		}
		out[i] = e
	}
	return out
}

// Project walks text left to right and emits plain runs interleaved with
// annotated runs for the located edits. Concatenating the Text of every
// emitted segment reproduces text exactly.
//
// Callers pass edits sorted ascending by Start and non overlapping; the
// projector does not re-sort. It defensively skips any edit that would
// violate coverage (span behind the emission cursor or out of bounds) and
// excludes zero width edits from inline rendering, see Unresolved
func Project(text string, located []Edit) []Segment {
	rs := []rune(text)
	segs := make([]Segment, 0, 2*len(located)+1)
	cursor := 0

	for i := range located {
		e := located[i]
		if !e.Resolved || e.ZeroWidth() {
			continue
		}
		if e.Start < cursor || e.End > len(rs) || e.Start > e.End {
			continue
		}
		if e.Start > cursor {
			segs = append(segs, Segment{Kind: SegmentPlain, Text: string(rs[cursor:e.Start])})
		}
		segs = append(segs, Segment{
			Kind: SegmentAnnotated,
			Text: string(rs[e.Start:e.End]),
			Edit: &located[i],
		})
		cursor = e.End
	}

	// trailing plain run, emitted even when empty so renders always end on
	// a plain segment and an empty edit list yields exactly one segment
	segs = append(segs, Segment{Kind: SegmentPlain, Text: string(rs[cursor:])})
	return segs
}

// Unresolved returns the edits excluded from inline rendering, zero width
// spans and fragments that were never found
func Unresolved(located []Edit) []Edit {
	var out []Edit
	for _, e := range located {
		if !e.Resolved || e.ZeroWidth() {
			out = append(out, e)
		}
	}
	return out
}

// Result pairs the rendered segments with the edits that could not be
// rendered inline
type Result struct {
	Segments   []Segment
	Unresolved []Edit
}

// Render locates edits against text and projects them in one step
func Render(text string, edits []Edit) Result {
	located := Locate(text, edits)
	return Result{
		Segments:   Project(text, located),
		Unresolved: Unresolved(located),
	}
}

// indexRunes returns the rune index of the first occurrence of needle in
// haystack at or after from, or -1
func indexRunes(haystack, needle []rune, from int) int {
	if from < 0 {
		from = 0
	}
	last := len(haystack) - len(needle)
	for i := from; i <= last; i++ {
		if equalRunes(haystack[i:i+len(needle)], needle) {
			return i
		}
	}
	return -1
}

func equalRunes(a, b []rune) bool {
	for i := range b {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
