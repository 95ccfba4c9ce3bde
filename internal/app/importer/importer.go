package importer

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"audio-review/internal/app/metrics"
	"audio-review/internal/app/model"
)

// Inserter is the part of the store the importer writes through.
type Inserter interface {
	Insert(ctx context.Context, rec model.NewTranscription) (bool, error)
}

// Failure describes one record that could not be stored.
type Failure struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
	Err   error  `json:"-"`
}

func (f Failure) Error() string {
	return fmt.Sprintf("record %d (%q): %v", f.Index, f.Name, f.Err)
}

// Report summarizes a batch. Total = Inserted + Duplicates + len(Failures).
type Report struct {
	Total      int       `json:"total"`
	Inserted   int       `json:"inserted"`
	Duplicates int       `json:"duplicates"`
	Failures   []Failure `json:"failures"`
}

func (r *Report) Failed() int { return len(r.Failures) }

type Importer struct {
	store    Inserter
	logger   *zap.Logger
	metrics  *metrics.Metrics
	progress *Progress
}

type Option func(*Importer)

func WithMetrics(m *metrics.Metrics) Option {
	return func(i *Importer) { i.metrics = m }
}

func WithProgress(p *Progress) Option {
	return func(i *Importer) { i.progress = p }
}

func New(store Inserter, logger *zap.Logger, opts ...Option) *Importer {
	if logger == nil {
		logger = zap.NewNop()
	}
	i := &Importer{store: store, logger: logger}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Import reads the batch at path and inserts each record on its own. Only a
// file that cannot be read or parsed fails the call; per-record problems land
// in the report.
func (i *Importer) Import(ctx context.Context, path string) (*Report, error) {
	entries, err := ReadBatch(path)
	if err != nil {
		return nil, err
	}

	i.logger.Info("importing batch", zap.String("path", path), zap.Int("records", len(entries)))
	report := i.importEntries(ctx, entries)
	i.logger.Info("batch imported",
		zap.String("path", path),
		zap.Int("total", report.Total),
		zap.Int("inserted", report.Inserted),
		zap.Int("duplicates", report.Duplicates),
		zap.Int("failed", report.Failed()))
	return report, nil
}

// ImportRecords processes records sequentially. A cancelled context marks the
// remaining records as failed. Callers that enabled progress call Wait on it
// once they are done.
func (i *Importer) ImportRecords(ctx context.Context, records []Record) *Report {
	entries := make([]Entry, len(records))
	for idx, rec := range records {
		entries[idx] = Entry{Record: rec}
	}
	return i.importEntries(ctx, entries)
}

func (i *Importer) importEntries(ctx context.Context, entries []Entry) *Report {
	report := &Report{Total: len(entries), Failures: []Failure{}}
	bar := i.progress.NewBar(len(entries), "Importing transcriptions")
	defer bar.Complete()

	for idx, entry := range entries {
		outcome := i.importOne(ctx, idx, entry, report)
		i.metrics.ObserveImport(outcome)
		bar.Increment()
	}
	return report
}

func (i *Importer) importOne(ctx context.Context, idx int, entry Entry, report *Report) string {
	rec := entry.Record
	fail := func(err error) string {
		f := Failure{Index: idx, Name: rec.name(), Err: err}
		report.Failures = append(report.Failures, f)
		i.logger.Warn("record skipped", zap.Int("index", idx), zap.String("name", f.Name), zap.Error(err))
		return metrics.ImportFailed
	}

	if err := ctx.Err(); err != nil {
		return fail(err)
	}
	if entry.Err != nil {
		return fail(entry.Err)
	}
	nt, err := rec.ToNew()
	if err != nil {
		return fail(err)
	}
	inserted, err := i.store.Insert(ctx, nt)
	if err != nil {
		return fail(err)
	}
	if !inserted {
		report.Duplicates++
		return metrics.ImportDuplicate
	}
	report.Inserted++
	return metrics.ImportInserted
}
