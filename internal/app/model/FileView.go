package model

// FileView is the read-only aggregation of an audio file with its history.
//
// ID is the store id of the latest record. Files without history get the
// negative ordinal -(position+1) in the name-sorted listing; it never matches a
// stored record.
type FileView struct {
	ID            int             `json:"id"`
	Name          string          `json:"name"`
	URL           string          `json:"url"`
	Transcription string          `json:"transcription"`
	Author        string          `json:"author,omitempty"`
	Rating        int             `json:"rating"`
	History       []Transcription `json:"history"`
}

// HasHistory reports whether any transcription was recorded for the file.
func (v FileView) HasHistory() bool {
	return len(v.History) > 0
}
