package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	apperrors "audio-review/internal/app/errors"
	"audio-review/internal/app/model"
)

// Record is one entry of a batch file.
type Record struct {
	Name          *string `json:"name" yaml:"name"`
	Transcription *string `json:"transcription" yaml:"transcription"`
	Timestamp     string  `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`
	Author        string  `json:"author,omitempty" yaml:"author,omitempty"`
}

// naiveISO is what Python's datetime.isoformat() emits without a zone.
const naiveISO = "2006-01-02T15:04:05.999999999"

var timestampLayouts = []string{time.RFC3339Nano, naiveISO, "2006-01-02 15:04:05.999999999"}

// Entry is one element of a batch file. Err is set when the element could not
// be decoded into a Record; Record then holds whatever fields did decode.
type Entry struct {
	Record Record
	Err    error
}

// ReadBatch loads a JSON array, or a YAML list when the file ends in .yaml/.yml.
// Only a file that is not a list fails as a whole; every element is decoded on
// its own.
func ReadBatch(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.Unreadable(err, path)
	}

	var entries []Entry
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		entries, err = decodeYAML(data)
	default:
		entries, err = decodeJSON(data)
	}
	if err != nil {
		return nil, apperrors.Unreadable(err, path)
	}
	return entries, nil
}

func decodeJSON(data []byte) ([]Entry, error) {
	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(elems))
	for _, elem := range elems {
		var e Entry
		if err := json.Unmarshal(elem, &e.Record); err != nil {
			e.Err = apperrors.InvalidField("record", err.Error())
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func decodeYAML(data []byte) ([]Entry, error) {
	var nodes []yaml.Node
	if err := yaml.Unmarshal(data, &nodes); err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(nodes))
	for i := range nodes {
		var e Entry
		if err := nodes[i].Decode(&e.Record); err != nil {
			e.Err = apperrors.InvalidField("record", err.Error())
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// ParseTimestamp accepts RFC 3339 and zone-less ISO timestamps, the latter
// read as UTC.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts.UTC(), nil
		}
	}
	return time.Time{}, apperrors.InvalidField("timestamp", fmt.Sprintf("cannot parse %q", s))
}

// ToNew validates the record and converts it to a store insert.
func (r Record) ToNew() (model.NewTranscription, error) {
	if r.Name == nil || strings.TrimSpace(*r.Name) == "" {
		return model.NewTranscription{}, apperrors.RequiredField("name")
	}
	if r.Transcription == nil {
		return model.NewTranscription{}, apperrors.RequiredField("transcription")
	}

	nt := model.NewTranscription{
		Filename:      *r.Name,
		Transcription: r.Transcription,
		Author:        r.Author,
	}
	if r.Timestamp != "" {
		ts, err := ParseTimestamp(r.Timestamp)
		if err != nil {
			return model.NewTranscription{}, err
		}
		nt.Timestamp = ts
	}
	return nt, nil
}

func (r Record) name() string {
	if r.Name == nil {
		return ""
	}
	return *r.Name
}
