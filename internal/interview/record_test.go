package interview

import (
	"strings"
	"testing"
	"time"

	"github.com/jonathan/interview-prep/internal/schemas"
	"github.com/stretchr/testify/assert"
)

func TestSplitTechStack(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{input: "Go,Rust,", expected: []string{"Go", "Rust", ""}},
		{input: "Go", expected: []string{"Go"}},
		{input: "Go, Rust", expected: []string{"Go", " Rust"}},
		{input: ",,", expected: []string{"", "", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitTechStack(tt.input))
		})
	}
}

func TestRandomCover(t *testing.T) {
	for i := 0; i < 50; i++ {
		cover := RandomCover()
		assert.True(t, strings.HasPrefix(cover, "/covers/"), cover)
		assert.Contains(t, interviewCovers, strings.TrimPrefix(cover, "/covers"))
	}
}

func TestNewRecord(t *testing.T) {
	now := time.Date(2026, 3, 4, 5, 6, 7, 890_000_000, time.FixedZone("CET", 3600))
	p := Params{Type: "mixed", Role: "SRE", Level: "junior", Amount: "3", TechStack: "Go,Rust,"}

	record := NewRecord(p, []string{"Q1"}, "user-1", "/covers/adobe.png", now)

	assert.Equal(t, "SRE", record.Role)
	assert.Equal(t, "mixed", record.Type)
	assert.Equal(t, "junior", record.Level)
	assert.Equal(t, []string{"Go", "Rust", ""}, record.TechStack)
	assert.Equal(t, []string{"Q1"}, record.Questions)
	assert.Equal(t, "user-1", record.UserID)
	assert.True(t, record.Finalized)
	assert.Equal(t, "/covers/adobe.png", record.CoverImage)
	assert.Equal(t, "2026-03-04T04:06:07.890Z", record.CreatedAt)
	assert.NoError(t, schemas.Validate(schemas.InterviewRecord, record))
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt(Params{Type: "behavioural", Role: "PM", Level: "mid", Amount: "4", TechStack: "Jira"})

	assert.Contains(t, prompt, "The job role is PM.")
	assert.Contains(t, prompt, "The job experience level is mid.")
	assert.Contains(t, prompt, "The tech stack used in the job is: Jira.")
	assert.Contains(t, prompt, "should lean towards: behavioural.")
	assert.Contains(t, prompt, "The amount of questions required is: 4.")
	assert.Contains(t, prompt, `do not use "/" or "*"`)
	assert.Contains(t, prompt, `["Question 1", "Question 2", "Question 3"]`)
}
