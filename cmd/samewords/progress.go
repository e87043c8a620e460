package main

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
)

const progressThrottle = 100 * time.Millisecond

func isTerminal(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func newDownloadBar(out io.Writer, total int64) *progressbar.ProgressBar {
	return progressbar.NewOptions64(total,
		progressbar.OptionSetWriter(out),
		progressbar.OptionSetDescription("Downloading"),
		progressbar.OptionShowBytes(true),
		progressbar.OptionSetWidth(30),
		progressbar.OptionThrottle(progressThrottle),
		progressbar.OptionClearOnFinish(),
	)
}

// scanProgress tracks bytes consumed from the word list. A nil receiver is a
// no-op so callers need not branch when progress is disabled.
type scanProgress struct {
	bar *progressbar.ProgressBar
}

func newScanProgress(out io.Writer, total int64, enabled bool) *scanProgress {
	if !enabled || total <= 0 || !isTerminal(out) {
		return nil
	}
	return &scanProgress{bar: progressbar.NewOptions64(total,
		progressbar.OptionSetWriter(out),
		progressbar.OptionSetDescription("Processing words"),
		progressbar.OptionShowBytes(true),
		progressbar.OptionSetWidth(30),
		progressbar.OptionThrottle(progressThrottle),
		progressbar.OptionClearOnFinish(),
	)}
}

func (p *scanProgress) add(n int) {
	if p == nil {
		return
	}
	_ = p.bar.Add(n)
}

func (p *scanProgress) finish() {
	if p == nil {
		return
	}
	_ = p.bar.Finish()
}
