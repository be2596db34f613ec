package interview

import (
	"encoding/json"
	"errors"

	"github.com/jonathan/interview-prep/internal/schemas"
)

// ParseQuestions parses generated text strictly as a JSON array of strings.
// No cleanup is attempted: fenced or annotated output is rejected.
func ParseQuestions(text string) ([]string, error) {
	if !json.Valid([]byte(text)) {
		return nil, &ErrGenerationParse{Reason: "output is not valid JSON"}
	}

	if err := schemas.Validate(schemas.Questions, text); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			return nil, &ErrGenerationParse{Reason: "output is not an array of strings (" + validationErr.Summary() + ")"}
		}
		return nil, &ErrGenerationParse{Reason: "schema validation failed", Cause: err}
	}

	var questions []string
	if err := json.Unmarshal([]byte(text), &questions); err != nil {
		return nil, &ErrGenerationParse{Reason: "output could not be decoded", Cause: err}
	}
	return questions, nil
}
