package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

const fenceMarker = "```"

var fencePattern = regexp.MustCompile("```json|```")

// ParseFailure is the only failure Normalize returns. OriginalText is the
// untouched model output so the caller can log it.
type ParseFailure struct {
	Message      string
	OriginalText string
}

func (e *ParseFailure) Error() string {
	return "parse failure: " + e.Message
}

// NormalizedQuestion is one question recovered from model output.
// Fields the model sent that are not modelled here, or that had an
// unexpected JSON type, are kept verbatim in Extra.
type NormalizedQuestion struct {
	Question     string
	Options      []string
	AnswerIndex  *int
	AnswerText   *string
	QuestionType QuestionType
	Extra        map[string]json.RawMessage
}

// NormalizedBatch keeps the order the model emitted.
type NormalizedBatch []NormalizedQuestion

// MarshalJSON writes the known fields, then Extra sorted by key.
// QuestionType is written under both "questionType" and "type".
func (q NormalizedQuestion) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	written := make(map[string]struct{}, len(q.Extra)+6)
	write := func(key string, val interface{}) error {
		raw, ok := val.(json.RawMessage)
		if !ok {
			b, err := json.Marshal(val)
			if err != nil {
				return err
			}
			raw = b
		}
		if len(written) > 0 {
			buf.WriteByte(',')
		}
		written[key] = struct{}{}
		k, _ := json.Marshal(key)
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(raw)
		return nil
	}

	buf.WriteByte('{')
	fields := []struct {
		key string
		val interface{}
		set bool
	}{
		{"question", q.Question, true},
		{"options", q.Options, q.Options != nil},
		{"answerIndex", q.AnswerIndex, q.AnswerIndex != nil},
		{"answerText", q.AnswerText, q.AnswerText != nil},
		{"questionType", q.QuestionType, true},
		{"type", q.QuestionType, true},
	}
	for _, f := range fields {
		if !f.set {
			continue
		}
		if err := write(f.key, f.val); err != nil {
			return nil, err
		}
	}

	keys := make([]string, 0, len(q.Extra))
	for k := range q.Extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if _, dup := written[k]; dup {
			continue
		}
		if err := write(k, q.Extra[k]); err != nil {
			return nil, err
		}
	}
	if _, ok := written["options"]; !ok {
		if err := write("options", []string{}); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads what MarshalJSON writes, so stored drafts round-trip.
func (q *NormalizedQuestion) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	nq, ok := projectQuestion(fields, "")
	if !ok {
		return fmt.Errorf("question record has no question text")
	}
	var qt QuestionType
	if raw, exists := fields["questionType"]; exists {
		_ = json.Unmarshal(raw, &qt)
	}
	nq.QuestionType = qt
	*q = nq
	return nil
}

// ExtractionStrategy isolates the JSON object inside fence-stripped text.
// It must return the input unchanged when it finds nothing to extract.
type ExtractionStrategy interface {
	Extract(text string) string
}

// BraceSpan slices from the first '{' to the last '}' inclusive. It does not
// balance braces, so prose containing braces around the object can mis-slice.
type BraceSpan struct{}

func (BraceSpan) Extract(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || start >= end {
		return text
	}
	return text[start : end+1]
}

// BalancedObject returns the first brace-balanced object starting at the
// first '{', ignoring braces inside JSON strings. If the object never closes
// it falls back to the input.
type BalancedObject struct{}

func (BalancedObject) Extract(text string) string {
	start := strings.Index(text, "{")
	if start == -1 {
		return text
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1]
			}
		}
	}
	return text
}

// ExtractionStrategyByName maps the config value to a strategy.
func ExtractionStrategyByName(name string) (ExtractionStrategy, error) {
	switch name {
	case "", "brace_span":
		return BraceSpan{}, nil
	case "balanced":
		return BalancedObject{}, nil
	}
	return nil, fmt.Errorf("unknown extraction strategy %q", name)
}

// StripFences removes every ``` and ```json marker when the text contains a
// fence, then trims. Fence-free text is returned unchanged.
func StripFences(text string) string {
	if !strings.Contains(text, fenceMarker) {
		return text
	}
	return strings.TrimSpace(fencePattern.ReplaceAllString(text, ""))
}

// Normalizer turns raw model output into a NormalizedBatch. It holds no
// mutable state and is safe for concurrent use.
type Normalizer struct {
	extractor ExtractionStrategy
}

// NewNormalizer uses BraceSpan when strategy is nil.
func NewNormalizer(strategy ExtractionStrategy) *Normalizer {
	if strategy == nil {
		strategy = BraceSpan{}
	}
	return &Normalizer{extractor: strategy}
}

// Normalize never panics. The only error it returns is *ParseFailure.
func (n *Normalizer) Normalize(raw string, qt QuestionType) (NormalizedBatch, error) {
	text := n.extractor.Extract(StripFences(raw))

	var root map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &root); err != nil {
		return nil, &ParseFailure{Message: err.Error(), OriginalText: raw}
	}
	if root == nil {
		// the literal null parses into a nil map
		return nil, &ParseFailure{Message: "top-level value is not an object", OriginalText: raw}
	}

	var elems []json.RawMessage
	if rawQuestions, ok := root["questions"]; ok {
		if err := json.Unmarshal(rawQuestions, &elems); err != nil {
			elems = nil
		}
	}

	batch := make(NormalizedBatch, 0, len(elems))
	for _, el := range elems {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(el, &fields); err != nil || fields == nil {
			continue
		}
		q, ok := projectQuestion(fields, qt)
		if !ok {
			continue
		}
		batch = append(batch, q)
	}
	return batch, nil
}

// Normalize runs the default BraceSpan normalizer.
func Normalize(raw string, qt QuestionType) (NormalizedBatch, error) {
	return defaultNormalizer.Normalize(raw, qt)
}

var defaultNormalizer = NewNormalizer(nil)

func projectQuestion(fields map[string]json.RawMessage, qt QuestionType) (NormalizedQuestion, bool) {
	q := NormalizedQuestion{QuestionType: qt}

	// bank records use questionText; accept it when question is unusable
	textKey := "question"
	text, ok := decodeString(fields[textKey])
	if !ok || strings.TrimSpace(text) == "" {
		textKey = "questionText"
		text, ok = decodeString(fields[textKey])
	}
	if !ok || strings.TrimSpace(text) == "" {
		return q, false
	}
	q.Question = text

	extra := make(map[string]json.RawMessage)
	for k, v := range fields {
		switch k {
		case textKey, "questionType", "type":
		case "options":
			var opts []string
			if err := json.Unmarshal(v, &opts); err == nil && opts != nil {
				q.Options = opts
			} else {
				extra[k] = v
			}
		case "answerIndex":
			var idx int
			if isNull(v) || json.Unmarshal(v, &idx) != nil {
				extra[k] = v
			} else {
				q.AnswerIndex = &idx
			}
		case "answerText":
			if s, ok := decodeString(v); ok {
				q.AnswerText = &s
			} else {
				extra[k] = v
			}
		default:
			extra[k] = v
		}
	}
	if len(extra) > 0 {
		q.Extra = extra
	}
	return q, true
}

func decodeString(raw json.RawMessage) (string, bool) {
	if raw == nil || isNull(raw) {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

func isNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}
