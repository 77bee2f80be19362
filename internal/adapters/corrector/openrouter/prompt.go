package openrouter

import (
	"encoding/json"
	"strings"

	"redpen/internal/core/corrector"
)

const answerShape = `응답은 반드시 아래 JSON 형식만 사용한다. 다른 텍스트를 덧붙이지 않는다.
{"corrected": "교정된 전체 문장", "changes": [{"type": "spelling|spacing|punctuation|grammar|style", "original": "원래 표현", "corrected": "고친 표현", "explanation": "간단한 이유"}]}`

var prompts = map[string]string{
	corrector.ModeProofreading: "너는 한국어 교정 전문가다. 입력된 글의 맞춤법, 띄어쓰기, 문장 부호 오류만 고친다. " +
		"문장의 의미와 어투는 바꾸지 않는다.\n" + answerShape,
	corrector.ModeCopyediting: "너는 한국어 교열 전문가다. 맞춤법과 띄어쓰기를 고치고, 어색한 표현과 중복된 표현을 " +
		"자연스럽게 다듬는다. 글의 구조는 유지한다.\n" + answerShape,
	corrector.ModeRewriting: "너는 한국어 윤문 전문가다. 맞춤법과 띄어쓰기를 고치고, 문장 구조를 더 읽기 쉽게 " +
		"다시 쓴다. 원문의 의미는 보존한다.\n" + answerShape,
}

// promptFor returns the system prompt for mode, defaulting to proofreading
func promptFor(mode string) string {
	if p, ok := prompts[mode]; ok {
		return p
	}
	return prompts[corrector.ModeProofreading]
}

// parseAnswer extracts the structured answer from the model's message
// content. Models often wrap JSON in markdown fences, so fences are stripped
// before parsing. An unparseable answer yields the zero value, which the
// caller treats as a pass-through
func parseAnswer(content string) modelAnswer {
	s := stripFences(content)

	var a modelAnswer
	if err := json.Unmarshal([]byte(s), &a); err == nil {
		return a
	}

	// some models prepend prose before the JSON object, try the first brace
	if i := strings.Index(s, "{"); i >= 0 {
		if j := strings.LastIndex(s, "}"); j > i {
			if err := json.Unmarshal([]byte(s[i:j+1]), &a); err == nil {
				return a
			}
		}
	}
	return modelAnswer{}
}

// stripFences removes a surrounding markdown code fence if present
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	// drop an optional language tag on the opening fence line
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		first := strings.TrimSpace(s[:i])
		if first == "json" || first == "" {
			s = s[i+1:]
		}
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
