package repository

import (
	"context"

	"audio-review/internal/app/model"
)

// TranscriptionDAO is the transcription history & rating store.
type TranscriptionDAO interface {
	Close() error

	// Initialize creates the transcriptions table when it is missing. Safe to call repeatedly.
	Initialize(ctx context.Context) error

	// Insert appends a history entry. A (filename, transcription) pair that is
	// already stored is left untouched and reported with inserted == false.
	Insert(ctx context.Context, rec model.NewTranscription) (inserted bool, err error)

	// SetRating sets an absolute rating on a record and refreshes its timestamp.
	SetRating(ctx context.Context, id int, rating int) error

	// ListAll returns every record ordered by filename, then timestamp ascending.
	ListAll(ctx context.Context) ([]model.Transcription, error)
}
