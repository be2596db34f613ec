// Package types provides type definitions for structured data used throughout the interview-prep service.
//
//nolint:revive // types is a standard Go package name pattern
package types

// InterviewsCollection is the document collection interview records are appended to.
const InterviewsCollection = "interviews"

// UsersCollection is the document collection user profiles are read from.
const UsersCollection = "users"

// InterviewRecord is a generated interview as persisted in the interviews collection.
// Records are append-only: they are created once and never updated.
type InterviewRecord struct {
	Role       string   `json:"role"`
	Type       string   `json:"type"`
	Level      string   `json:"level"`
	TechStack  []string `json:"techstack"` // split on commas, empty segments kept
	Questions  []string `json:"questions"`
	UserID     string   `json:"userId"`
	Finalized  bool     `json:"finalized"`
	CoverImage string   `json:"coverImage"`
	CreatedAt  string   `json:"createdAt"` // ISO-8601, UTC
}

// User is the profile stored in the users collection for an authenticated session.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// GenerateResponse is the body returned by POST /generate.
type GenerateResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// AcknowledgeResponse is the body returned by GET /generate.
type AcknowledgeResponse struct {
	Success bool   `json:"success"`
	Data    string `json:"data"`
}
