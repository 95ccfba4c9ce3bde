package dto

import (
	"strings"

	"audio-review/internal/api/errors"
	"audio-review/internal/app/model"
)

// SaveTranscriptionRequest appends a transcription to a file's history.
// Transcription may be empty but must be present.
type SaveTranscriptionRequest struct {
	Name          string  `json:"name" binding:"required" example:"a.wav"`
	Transcription *string `json:"transcription" binding:"required" example:"hello world"`
	Author        string  `json:"author,omitempty" example:"reviewer"`
}

// Validate performs domain-specific validation
func (r *SaveTranscriptionRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.NewValidationError("Validation failed", map[string]string{"name": "is required"})
	}
	return nil
}

// ToModel converts the request to a store insert.
func (r *SaveTranscriptionRequest) ToModel() model.NewTranscription {
	return model.NewTranscription{
		Filename:      r.Name,
		Transcription: r.Transcription,
		Author:        r.Author,
	}
}

// SaveTranscriptionResponse reports whether a new history entry was created;
// inserted is false when the same text was already stored for the file.
type SaveTranscriptionResponse struct {
	Status   string `json:"status" example:"ok"`
	Inserted bool   `json:"inserted"`
}

// RatingRequest sets the rating of one transcription.
type RatingRequest struct {
	Rating *int `json:"rating" binding:"required,min=0,max=5" example:"4"`
}

// StatusResponse is the body of mutations that return nothing else.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

func OK() StatusResponse {
	return StatusResponse{Status: "ok"}
}
