package challenge

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleBatch = `{
	"response_code": 0,
	"results": [
		{
			"category": "Science: Computers",
			"type": "multiple",
			"question": "What does CPU stand for?",
			"correct_answer": "Central Processing Unit",
			"incorrect_answers": ["Central Process Unit", "Computer Personal Unit", "Central Processor Unit"]
		},
		{
			"category": "History",
			"type": "boolean",
			"question": "The Berlin Wall fell in 1989.",
			"correct_answer": "True",
			"incorrect_answers": ["False"]
		}
	]
}`

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func TestDecodeQuestionsBothFormats(t *testing.T) {
	questions, err := decodeQuestions([]byte(sampleBatch), testRNG())
	require.NoError(t, err)
	require.Len(t, questions, 2)

	multiple := questions[0]
	assert.Equal(t, "Science: Computers", multiple.Category)
	assert.Len(t, multiple.Answers, 4)
	assert.Contains(t, multiple.Answers, "Central Processing Unit")
	assert.True(t, multiple.Check("Central Processing Unit"))
	assert.False(t, multiple.Check("Central Process Unit"))

	boolean := questions[1]
	assert.Equal(t, []string{"True", "False"}, boolean.Answers)
	assert.True(t, boolean.Check("True"))
	assert.False(t, boolean.Check("False"))
}

func TestCheckNormalizesAnswer(t *testing.T) {
	questions, err := decodeQuestions([]byte(sampleBatch), testRNG())
	require.NoError(t, err)
	q := questions[0]
	assert.True(t, q.Check("  central processing unit "))
}

func TestDecodeRejectsBadResponseCode(t *testing.T) {
	_, err := decodeQuestions([]byte(`{"response_code": 2, "results": []}`), testRNG())
	assert.Error(t, err)
}

func TestDecodeRejectsMalformedJSON(t *testing.T) {
	_, err := decodeQuestions([]byte(`{"results": [`), testRNG())
	assert.Error(t, err)
}

func TestDecodeSkipsEmptyQuestions(t *testing.T) {
	batch := `{"response_code": 0, "results": [{"category": "x", "type": "multiple", "question": "", "correct_answer": "", "incorrect_answers": []}]}`
	questions, err := decodeQuestions([]byte(batch), testRNG())
	require.NoError(t, err)
	assert.Empty(t, questions)
}
