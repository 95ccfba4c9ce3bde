package importer

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

type ProgressConfig struct {
	Enabled bool
	Writer  io.Writer
}

// Progress renders one bar per import. A disabled Progress is a no-op.
type Progress struct {
	container *mpb.Progress
	enabled   bool
	mu        sync.Mutex
}

type ProgressBar struct {
	bar *mpb.Bar
}

func NewProgress(config ProgressConfig) *Progress {
	if !config.Enabled {
		return &Progress{}
	}

	writer := config.Writer
	if writer == nil {
		writer = os.Stderr
	}

	return &Progress{
		// Auto refresh keeps rendering when writer is not a terminal.
		container: mpb.New(
			mpb.WithOutput(writer),
			mpb.WithAutoRefresh(),
			mpb.WithRefreshRate(120*time.Millisecond),
		),
		enabled: true,
	}
}

func (p *Progress) NewBar(total int, description string) *ProgressBar {
	if p == nil || !p.enabled {
		return &ProgressBar{}
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	bar := p.container.AddBar(int64(total),
		mpb.PrependDecorators(
			decor.Name(description+" ", decor.WC{W: len(description) + 1, C: decor.DindentRight}),
			decor.CountersNoUnit("(%d/%d)", decor.WCSyncWidth),
		),
		mpb.AppendDecorators(
			decor.NewPercentage("%.1f", decor.WCSyncSpace),
			decor.AverageSpeed(0, "%.1f records/s", decor.WCSyncSpace),
		),
	)
	return &ProgressBar{bar: bar}
}

func (pb *ProgressBar) Increment() {
	if pb.bar != nil {
		pb.bar.Increment()
	}
}

func (pb *ProgressBar) Complete() {
	if pb.bar != nil {
		pb.bar.SetTotal(pb.bar.Current(), true)
	}
}

func (p *Progress) Wait() {
	if p != nil && p.enabled {
		p.container.Wait()
	}
}

// IsTTY reports whether w is a character device.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	stat, err := file.Stat()
	if err != nil {
		return false
	}
	return stat.Mode()&os.ModeCharDevice != 0
}

func ShouldShowProgress(forced bool) bool {
	return forced || IsTTY(os.Stderr)
}
