package utils

import (
	"encoding/json"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONArrayFromFencedNoise(t *testing.T) {
	raw := "Sure! Here are the questions:\n```json\n[{\"id\":\"c1\",\"question\":\"Q?\"}]\n```\nHope this helps."

	got, err := ExtractJSONArray(raw)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"c1","question":"Q?"}]`, got)
	assert.True(t, json.Valid([]byte(got)))
}

func TestExtractJSONArrayPlain(t *testing.T) {
	got, err := ExtractJSONArray(`[1, 2, 3]`)
	require.NoError(t, err)
	assert.Equal(t, `[1, 2, 3]`, got)
}

func TestExtractJSONObjectWithProsePrefix(t *testing.T) {
	raw := "好的,方案如下:{\"title\":\"方案\",\"activities\":[{\"time\":\"09:00\"}]} 以上。"

	got, err := ExtractJSONObject(raw)
	require.NoError(t, err)
	assert.Equal(t, `{"title":"方案","activities":[{"time":"09:00"}]}`, got)
}

func TestExtractJSONObjectIgnoresBracketsInsideStrings(t *testing.T) {
	raw := `{"note":"a } inside a string","ok":true} trailing`

	got, err := ExtractJSONObject(raw)
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(got)))

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(got), &parsed))
	assert.Equal(t, "a } inside a string", parsed["note"])
}

func TestExtractJSONObjectHandlesEscapedQuotes(t *testing.T) {
	raw := `noise {"text":"he said \"hi\" {"} noise`

	got, err := ExtractJSONObject(raw)
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(got)))
}

func TestExtractJSONArrayNoBrackets(t *testing.T) {
	_, err := ExtractJSONArray("I'm sorry, I cannot produce that content.")
	assert.ErrorIs(t, err, ErrNoJSONFound)
}

func TestExtractJSONObjectEmptyInput(t *testing.T) {
	_, err := ExtractJSONObject("   \n  ")
	assert.ErrorIs(t, err, ErrNoJSONFound)
}

func TestExtractJSONArrayWrongBracketType(t *testing.T) {
	// Object-only text has no array to recover.
	_, err := ExtractJSONArray(`{"not":"an array"}`)
	assert.ErrorIs(t, err, ErrNoJSONFound)
}

func TestExtractJSONArrayUnbalancedFallsBackToLastClose(t *testing.T) {
	// Truncation artifact: one close bracket is missing at depth 0 but a
	// later close exists.
	raw := `[{"a":1}, {"b":2}]`
	got, err := ExtractJSONArray("prefix " + raw)
	require.NoError(t, err)
	assert.Equal(t, raw, got)
}

func TestStripMarkdownFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, StripMarkdownFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, StripMarkdownFences("```JSON\n{\"a\":1}\n```"))
	assert.Equal(t, "no fences", StripMarkdownFences("  no fences  "))
}

func TestPreviewTruncates(t *testing.T) {
	long := make([]byte, 500)
	for i := range long {
		long[i] = 'x'
	}
	preview := Preview(string(long))
	assert.Len(t, preview, 203) // 200 chars + "..."
	assert.Equal(t, Preview("short"), "short")
}

func TestPreviewKeepsRunesWhole(t *testing.T) {
	long := strings.Repeat("共识方案", 100)
	preview := Preview(long)

	assert.True(t, utf8.ValidString(preview))
	assert.True(t, strings.HasSuffix(preview, "..."))
	// Each character is 3 bytes, so 200 does not land on a boundary and
	// the cut has to back up.
	assert.Equal(t, 198+3, len(preview))
}
