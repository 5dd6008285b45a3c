package service

import (
	"encoding/json"
	"strings"
)

// AnswerKind tags the decoded shape of a submitted answer. Clients send a bare
// string or an {answer_text} object for choice questions, and a single
// {prompt,response} object or an array of them for matching questions.
type AnswerKind int

const (
	AnswerNone AnswerKind = iota
	AnswerChoice
	AnswerSinglePair
	AnswerPairList
)

type PairValue struct {
	Prompt   string `json:"prompt"`
	Response string `json:"response"`
}

// SubmittedAnswer is the tagged union decoded once at the request boundary.
// Malformed payloads decode to AnswerNone and simply grade as incorrect;
// they are never an error.
type SubmittedAnswer struct {
	Kind   AnswerKind
	Choice string
	Pair   PairValue
	Pairs  []PairValue

	raw json.RawMessage
}

func (a *SubmittedAnswer) UnmarshalJSON(data []byte) error {
	a.raw = append(json.RawMessage(nil), data...)
	a.Kind = AnswerNone

	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		return nil
	}

	switch trimmed[0] {
	case '"':
		var s string
		if json.Unmarshal(data, &s) == nil {
			a.Kind = AnswerChoice
			a.Choice = s
		}
	case '[':
		var pairs []PairValue
		if json.Unmarshal(data, &pairs) == nil {
			a.Kind = AnswerPairList
			a.Pairs = pairs
		}
	case '{':
		var obj struct {
			AnswerText *string `json:"answer_text"`
			Prompt     *string `json:"prompt"`
			Response   *string `json:"response"`
		}
		if json.Unmarshal(data, &obj) != nil {
			return nil
		}
		if obj.Prompt != nil && obj.Response != nil {
			a.Kind = AnswerSinglePair
			a.Pair = PairValue{Prompt: *obj.Prompt, Response: *obj.Response}
		} else if obj.AnswerText != nil {
			a.Kind = AnswerChoice
			a.Choice = *obj.AnswerText
		}
	}
	return nil
}

func (a SubmittedAnswer) MarshalJSON() ([]byte, error) {
	if a.raw == nil {
		return []byte("null"), nil
	}
	return a.raw, nil
}

// Raw returns the submitted value exactly as the client sent it, for storage.
func (a SubmittedAnswer) Raw() json.RawMessage {
	return a.raw
}

// CorrectAnswers is the merged accepted-answer set for one question: every
// correct choice text plus every correct match pair. In practice a question
// holds only one of the two kinds.
type CorrectAnswers struct {
	Choices []string
	Pairs   []PairValue
}

func (c CorrectAnswers) Empty() bool {
	return len(c.Choices) == 0 && len(c.Pairs) == 0
}

func normalizeAnswer(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func pairEquals(a, b PairValue) bool {
	return normalizeAnswer(a.Prompt) == normalizeAnswer(b.Prompt) &&
		normalizeAnswer(a.Response) == normalizeAnswer(b.Response)
}

// IsCorrect compares a submitted answer against the question's accepted set.
// Pure, no I/O; any absent or malformed input is false, never an error.
//
// Choice answers pass on normalized membership. A single submitted pair passes
// when it equals any correct pair. A submitted pair array must have the same
// length as the correct set and consume it one-to-one: each correct pair
// satisfies at most one submitted pair, so repeating one correct pair to pad
// the length does not pass.
func IsCorrect(submitted SubmittedAnswer, correct CorrectAnswers) bool {
	if correct.Empty() {
		return false
	}
	switch submitted.Kind {
	case AnswerChoice:
		want := normalizeAnswer(submitted.Choice)
		for _, c := range correct.Choices {
			if normalizeAnswer(c) == want {
				return true
			}
		}
	case AnswerSinglePair:
		for _, p := range correct.Pairs {
			if pairEquals(submitted.Pair, p) {
				return true
			}
		}
	case AnswerPairList:
		if len(submitted.Pairs) != len(correct.Pairs) || len(correct.Pairs) == 0 {
			return false
		}
		remaining := append([]PairValue(nil), correct.Pairs...)
		for _, sp := range submitted.Pairs {
			idx := -1
			for i, cp := range remaining {
				if pairEquals(sp, cp) {
					idx = i
					break
				}
			}
			if idx < 0 {
				return false
			}
			remaining = append(remaining[:idx], remaining[idx+1:]...)
		}
		return true
	}
	return false
}
