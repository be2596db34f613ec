package interview

import (
	"math/rand/v2"
	"strings"
	"time"

	"github.com/jonathan/interview-prep/internal/types"
)

// isoMillis matches the ISO-8601 form used for createdAt (UTC, milliseconds).
const isoMillis = "2006-01-02T15:04:05.000Z"

// interviewCovers is the catalogue of cover images served by the front end.
var interviewCovers = []string{
	"/adobe.png",
	"/amazon.png",
	"/facebook.png",
	"/hostinger.png",
	"/pinterest.png",
	"/quora.png",
	"/reddit.png",
	"/skype.png",
	"/spotify.png",
	"/telegram.png",
	"/tiktok.png",
	"/yahoo.png",
}

// RandomCover returns a random cover image path.
func RandomCover() string {
	return "/covers" + interviewCovers[rand.IntN(len(interviewCovers))]
}

// SplitTechStack splits a comma-delimited tech stack. Segments are neither
// trimmed nor filtered, so "Go,Rust," yields ["Go" "Rust" ""].
func SplitTechStack(s string) []string {
	return strings.Split(s, ",")
}

// NewRecord builds the finalized record to persist for a generation request.
func NewRecord(p Params, questions []string, userID, cover string, now time.Time) types.InterviewRecord {
	return types.InterviewRecord{
		Role:       p.Role,
		Type:       p.Type,
		Level:      p.Level,
		TechStack:  SplitTechStack(p.TechStack),
		Questions:  questions,
		UserID:     userID,
		Finalized:  true,
		CoverImage: cover,
		CreatedAt:  now.UTC().Format(isoMillis),
	}
}
