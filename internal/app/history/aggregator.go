package history

import (
	"context"

	"github.com/samber/lo"

	"audio-review/internal/app/audio"
	"audio-review/internal/app/model"
)

// RecordLister is the read side of the transcription store.
type RecordLister interface {
	ListAll(ctx context.Context) ([]model.Transcription, error)
}

// Aggregator joins the audio files of a source with their stored history.
type Aggregator struct {
	source audio.Source
	store  RecordLister
}

// NewAggregator creates an Aggregator.
func NewAggregator(source audio.Source, store RecordLister) *Aggregator {
	return &Aggregator{source: source, store: store}
}

// BuildViews returns one FileView per listed audio file, in name order.
// Records for files that are no longer listed are ignored.
func (a *Aggregator) BuildViews(ctx context.Context) ([]model.FileView, error) {
	files, err := a.source.ListAudioFiles(ctx)
	if err != nil {
		return nil, err
	}

	records, err := a.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	return Merge(files, records), nil
}

// Merge builds the views for files from records, which must be ordered by
// filename then timestamp as returned by the store.
func Merge(files []model.AudioFile, records []model.Transcription) []model.FileView {
	byName := lo.GroupBy(records, func(r model.Transcription) string {
		return r.Filename
	})

	views := make([]model.FileView, 0, len(files))
	for i, f := range files {
		group := byName[f.Name]
		view := model.FileView{
			ID:      -(i + 1),
			Name:    f.Name,
			URL:     f.URL,
			History: group,
		}
		if len(group) == 0 {
			view.History = []model.Transcription{}
		} else {
			current := group[len(group)-1]
			view.ID = current.ID
			view.Transcription = current.Transcription
			view.Author = current.Author
			view.Rating = current.Rating
		}
		views = append(views, view)
	}
	return views
}
