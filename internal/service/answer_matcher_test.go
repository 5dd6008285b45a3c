package service

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeAnswer(t *testing.T, payload string) SubmittedAnswer {
	t.Helper()
	var a SubmittedAnswer
	require.NoError(t, json.Unmarshal([]byte(payload), &a))
	return a
}

func TestSubmittedAnswerUnmarshal(t *testing.T) {
	t.Run("BareString", func(t *testing.T) {
		a := decodeAnswer(t, `"Khaen"`)
		assert.Equal(t, AnswerChoice, a.Kind)
		assert.Equal(t, "Khaen", a.Choice)
	})

	t.Run("AnswerTextObject", func(t *testing.T) {
		a := decodeAnswer(t, `{"answer_text":"Ranat Ek"}`)
		assert.Equal(t, AnswerChoice, a.Kind)
		assert.Equal(t, "Ranat Ek", a.Choice)
	})

	t.Run("SinglePairObject", func(t *testing.T) {
		a := decodeAnswer(t, `{"prompt":"Khaen","response":"wind"}`)
		assert.Equal(t, AnswerSinglePair, a.Kind)
		assert.Equal(t, PairValue{Prompt: "Khaen", Response: "wind"}, a.Pair)
	})

	t.Run("PairArray", func(t *testing.T) {
		a := decodeAnswer(t, `[{"prompt":"Khaen","response":"wind"},{"prompt":"Khong Wong","response":"percussion"}]`)
		assert.Equal(t, AnswerPairList, a.Kind)
		assert.Len(t, a.Pairs, 2)
	})

	t.Run("MalformedIsNoneNotError", func(t *testing.T) {
		a := decodeAnswer(t, `42`)
		assert.Equal(t, AnswerNone, a.Kind)

		a = decodeAnswer(t, `null`)
		assert.Equal(t, AnswerNone, a.Kind)

		a = decodeAnswer(t, `{"unrelated":true}`)
		assert.Equal(t, AnswerNone, a.Kind)
	})

	t.Run("RawRoundTrips", func(t *testing.T) {
		a := decodeAnswer(t, `{"answer_text":"Khaen"}`)
		out, err := json.Marshal(a)
		require.NoError(t, err)
		assert.JSONEq(t, `{"answer_text":"Khaen"}`, string(out))
	})
}

func TestIsCorrectChoice(t *testing.T) {
	correct := CorrectAnswers{Choices: []string{"Khaen", "Saw Duang"}}

	t.Run("ExactMatch", func(t *testing.T) {
		assert.True(t, IsCorrect(decodeAnswer(t, `"Khaen"`), correct))
	})

	t.Run("CaseAndSpaceInsensitive", func(t *testing.T) {
		assert.True(t, IsCorrect(decodeAnswer(t, `"  khaen "`), correct))
		assert.True(t, IsCorrect(decodeAnswer(t, `{"answer_text":"KHAEN"}`), correct))
		assert.True(t, IsCorrect(decodeAnswer(t, `"saw duang"`), correct))
	})

	t.Run("WrongAnswer", func(t *testing.T) {
		assert.False(t, IsCorrect(decodeAnswer(t, `"Ranat Ek"`), correct))
	})

	t.Run("EmptyCorrectSetNeverPasses", func(t *testing.T) {
		assert.False(t, IsCorrect(decodeAnswer(t, `"anything"`), CorrectAnswers{}))
	})

	t.Run("NoneKindFails", func(t *testing.T) {
		assert.False(t, IsCorrect(decodeAnswer(t, `null`), correct))
	})
}

func TestIsCorrectPairs(t *testing.T) {
	correct := CorrectAnswers{Pairs: []PairValue{
		{Prompt: "Khaen", Response: "wind"},
		{Prompt: "Khong Wong", Response: "percussion"},
		{Prompt: "Saw Duang", Response: "string"},
	}}

	t.Run("FullSetAnyOrder", func(t *testing.T) {
		a := decodeAnswer(t, `[
			{"prompt":"Saw Duang","response":"string"},
			{"prompt":"Khaen","response":"wind"},
			{"prompt":"Khong Wong","response":"percussion"}
		]`)
		assert.True(t, IsCorrect(a, correct))
	})

	t.Run("NormalizedPairText", func(t *testing.T) {
		a := decodeAnswer(t, `[
			{"prompt":" KHAEN ","response":"Wind"},
			{"prompt":"khong wong","response":"PERCUSSION"},
			{"prompt":"saw duang","response":"string"}
		]`)
		assert.True(t, IsCorrect(a, correct))
	})

	t.Run("LengthMustMatch", func(t *testing.T) {
		a := decodeAnswer(t, `[{"prompt":"Khaen","response":"wind"}]`)
		assert.False(t, IsCorrect(a, correct))
	})

	t.Run("DuplicatePairCannotPadLength", func(t *testing.T) {
		a := decodeAnswer(t, `[
			{"prompt":"Khaen","response":"wind"},
			{"prompt":"Khaen","response":"wind"},
			{"prompt":"Khaen","response":"wind"}
		]`)
		assert.False(t, IsCorrect(a, correct))
	})

	t.Run("OneWrongPairFailsAll", func(t *testing.T) {
		a := decodeAnswer(t, `[
			{"prompt":"Khaen","response":"wind"},
			{"prompt":"Khong Wong","response":"percussion"},
			{"prompt":"Saw Duang","response":"wind"}
		]`)
		assert.False(t, IsCorrect(a, correct))
	})

	t.Run("SinglePairIsLenient", func(t *testing.T) {
		a := decodeAnswer(t, `{"prompt":"Khaen","response":"wind"}`)
		assert.True(t, IsCorrect(a, correct))

		a = decodeAnswer(t, `{"prompt":"Khaen","response":"percussion"}`)
		assert.False(t, IsCorrect(a, correct))
	})

	t.Run("EmptyArrayAgainstEmptyCorrectSet", func(t *testing.T) {
		assert.False(t, IsCorrect(decodeAnswer(t, `[]`), CorrectAnswers{}))
	})
}
