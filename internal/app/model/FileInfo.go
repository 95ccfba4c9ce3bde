package model

import "time"

// AudioFile is an audio file listed by an audio source.
type AudioFile struct {
	Name    string
	URL     string
	Size    int64
	ModTime time.Time
}
