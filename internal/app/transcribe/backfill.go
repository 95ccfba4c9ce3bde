package transcribe

import (
	"context"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"audio-review/internal/app/audio"
	"audio-review/internal/app/importer"
	"audio-review/internal/app/model"
)

// ViewBuilder yields the merged file views.
type ViewBuilder interface {
	BuildViews(ctx context.Context) ([]model.FileView, error)
}

// Inserter stores a transcription.
type Inserter interface {
	Insert(ctx context.Context, rec model.NewTranscription) (bool, error)
}

// FileFailure is a file the backfill could not transcribe or store.
type FileFailure struct {
	Name string
	Err  error
}

// Result summarizes a backfill run.
type Result struct {
	Pending  int
	Inserted int
	Failures []FileFailure
}

// Backfiller transcribes audio files that have no history yet.
type Backfiller struct {
	views       ViewBuilder
	files       audio.Opener
	store       Inserter
	transcriber Transcriber
	logger      *zap.Logger
	progress    *importer.Progress
}

func NewBackfiller(views ViewBuilder, files audio.Opener, store Inserter, transcriber Transcriber, logger *zap.Logger) *Backfiller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Backfiller{
		views:       views,
		files:       files,
		store:       store,
		transcriber: transcriber,
		logger:      logger,
	}
}

// WithProgress shows a bar on p while Run works. The caller owns p and calls
// Wait on it.
func (b *Backfiller) WithProgress(p *importer.Progress) *Backfiller {
	b.progress = p
	return b
}

// Run transcribes at most limit untranscribed files in name order; limit <= 0
// means all of them. Listing failures abort the run, per-file failures do not.
func (b *Backfiller) Run(ctx context.Context, limit int) (*Result, error) {
	views, err := b.views.BuildViews(ctx)
	if err != nil {
		return nil, err
	}

	pending := lo.Filter(views, func(v model.FileView, _ int) bool {
		return !v.HasHistory()
	})
	if limit > 0 && len(pending) > limit {
		pending = pending[:limit]
	}

	result := &Result{Pending: len(pending)}
	b.logger.Info("backfilling transcriptions",
		zap.Int("files", len(views)),
		zap.Int("pending", len(pending)),
		zap.String("author", b.transcriber.Author()))

	bar := b.progress.NewBar(len(pending), "Transcribing")
	defer bar.Complete()

	for _, view := range pending {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		err := b.transcribeOne(ctx, view.Name)
		bar.Increment()
		if err != nil {
			b.logger.Warn("transcription failed", zap.String("name", view.Name), zap.Error(err))
			result.Failures = append(result.Failures, FileFailure{Name: view.Name, Err: err})
			continue
		}
		result.Inserted++
	}
	return result, nil
}

func (b *Backfiller) transcribeOne(ctx context.Context, name string) error {
	rc, err := b.files.Open(ctx, name)
	if err != nil {
		return err
	}
	defer rc.Close()

	text, err := b.transcriber.Transcribe(ctx, name, rc)
	if err != nil {
		return err
	}

	_, err = b.store.Insert(ctx, model.NewTranscription{
		Filename:      name,
		Transcription: &text,
		Author:        b.transcriber.Author(),
	})
	if err != nil {
		return err
	}
	b.logger.Debug("transcribed", zap.String("name", name), zap.Int("chars", len(text)))
	return nil
}
