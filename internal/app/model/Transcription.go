package model

import "time"

// DefaultAuthor is recorded when a transcription is submitted without an author.
const DefaultAuthor = "whisper-large-v3"

const (
	MinRating = 0
	MaxRating = 5
)

// Transcription is one stored transcription attempt for an audio file.
type Transcription struct {
	ID            int       `json:"id"`
	Filename      string    `json:"filename"`
	Transcription string    `json:"transcription"`
	Author        string    `json:"author"`
	Rating        int       `json:"rating"`
	Timestamp     time.Time `json:"timestamp"`
}

// NewTranscription carries the fields accepted on insertion. Transcription is a
// pointer so that an absent value can be told apart from an empty string.
type NewTranscription struct {
	Filename      string
	Transcription *string
	Author        string
	Timestamp     time.Time
}

// ValidRating reports whether r lies in the accepted rating range.
func ValidRating(r int) bool {
	return r >= MinRating && r <= MaxRating
}
