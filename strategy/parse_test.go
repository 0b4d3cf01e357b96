package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumberedThoughts(t *testing.T) {
	text := "1. Identify the variables.\n2) Relate them.\nSome aside.\n3: Solve."
	thoughts := parseNumberedThoughts(text)
	require.Len(t, thoughts, 3)
	assert.Equal(t, "Identify the variables.", thoughts[0])
	assert.Equal(t, "Relate them.", thoughts[1])
	assert.Equal(t, "Solve.", thoughts[2])
}

func TestParseNumberedThoughts_NoNumbers(t *testing.T) {
	assert.Empty(t, parseNumberedThoughts("just a flowing paragraph with no list"))
}

func TestExtractAnswer_LeadIn(t *testing.T) {
	text := "1. Compute the area.\n2. Double it.\nAnswer: 42 square meters"
	assert.Equal(t, "42 square meters", extractAnswer(text))
}

func TestExtractAnswer_LastLeadInWins(t *testing.T) {
	text := "Answer: a first guess.\nMore reasoning follows.\nTherefore, the refined value is 17."
	assert.Equal(t, "the refined value is 17.", extractAnswer(text))
}

func TestExtractAnswer_SentenceFallback(t *testing.T) {
	text := "The reasoning meanders. The result equals twelve apples. OK."
	assert.Equal(t, "The result equals twelve apples.", extractAnswer(text))
}

func TestExtractAnswer_WholeReplyFallback(t *testing.T) {
	assert.Equal(t, "short", extractAnswer("  short  "))
}

func TestParseCandidates(t *testing.T) {
	text := "1. Use dynamic programming\n2. Use greedy selection\n3. Brute force\nRANKING: 2, 1, 3"
	candidates, ranking := parseCandidates(text, 3)
	require.Len(t, candidates, 3)
	assert.Equal(t, "Use dynamic programming", candidates[0])
	assert.Equal(t, "Use greedy selection", candidates[1])
	assert.Equal(t, "Brute force", candidates[2])
	assert.Equal(t, "2, 1, 3", ranking)
}

func TestParseCandidates_BulletsAndCap(t *testing.T) {
	text := "- first\n- second\n- third\n- fourth"
	candidates, ranking := parseCandidates(text, 2)
	require.Len(t, candidates, 2)
	assert.Equal(t, "first", candidates[0])
	assert.Equal(t, "second", candidates[1])
	assert.Empty(t, ranking)
}

func TestActionSubject(t *testing.T) {
	assert.Equal(t, "largest moon of Saturn", actionSubject("SEARCH: largest moon of Saturn"))
	assert.Equal(t, "plain directive", actionSubject("plain directive"))
	assert.Equal(t, "ANSWER:", actionSubject("ANSWER:"))
}
