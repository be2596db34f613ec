package interview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuestions(t *testing.T) {
	questions, err := ParseQuestions(`["Tell me about yourself", "What is a goroutine?"]`)
	require.NoError(t, err)
	assert.Equal(t, []string{"Tell me about yourself", "What is a goroutine?"}, questions)
}

func TestParseQuestions_EmptyArray(t *testing.T) {
	questions, err := ParseQuestions(`[]`)
	require.NoError(t, err)
	assert.Empty(t, questions)
}

func TestParseQuestions_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "prose", input: `Here are your questions: 1. Why Go?`},
		{name: "markdown fenced", input: "```json\n[\"Why Go?\"]\n```"},
		{name: "object", input: `{"questions": ["Why Go?"]}`},
		{name: "mixed items", input: `["Why Go?", 42]`},
		{name: "nested arrays", input: `[["Why Go?"]]`},
		{name: "null", input: `null`},
		{name: "plain string", input: `"Why Go?"`},
		{name: "empty", input: ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			questions, err := ParseQuestions(tt.input)
			assert.Nil(t, questions)
			var parseErr *ErrGenerationParse
			require.ErrorAs(t, err, &parseErr)
		})
	}
}
