package wordlist

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path"
	"strings"

	"github.com/dustin/go-humanize"

	"samewords/internal/fileutil"
	"samewords/internal/logging"
)

func (s *Source) download(ctx context.Context) error {
	s.logger.Info("downloading word list archive", slog.String("url", s.url))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return fmt.Errorf("download word list: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("download word list: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download word list: unexpected status %d", resp.StatusCode)
	}

	total := resp.ContentLength
	counter := &progressCounter{
		total:   total,
		sampler: logging.NewProgressSampler(0),
		logger:  s.logger,
	}
	sinks := []io.Writer{counter}
	if s.progress != nil {
		if w := s.progress(total); w != nil {
			sinks = append(sinks, w)
		}
	}

	written, err := fileutil.WriteAtomic(s.archivePath, io.TeeReader(resp.Body, io.MultiWriter(sinks...)), 0o644)
	if err != nil {
		return fmt.Errorf("download word list: %w", err)
	}
	if total > 0 && written != total {
		return fmt.Errorf("download word list: received %d of %d bytes", written, total)
	}
	s.logger.Debug("archive saved",
		slog.String("archive", s.archivePath),
		logging.Int64("bytes", written),
		slog.String("size", humanize.Bytes(uint64(written))),
	)
	return nil
}

// extract copies the configured member out of the archive into the word list
// path and returns the number of bytes written.
func (s *Source) extract() (int64, error) {
	zr, err := zip.OpenReader(s.archivePath)
	if err != nil {
		return 0, fmt.Errorf("open word list archive: %w", err)
	}
	defer zr.Close()

	for _, file := range zr.File {
		if file.FileInfo().IsDir() || !strings.EqualFold(path.Base(file.Name), s.member) {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return 0, fmt.Errorf("open archive entry %s: %w", file.Name, err)
		}
		written, err := fileutil.WriteAtomic(s.path, rc, 0o644)
		rc.Close()
		if err != nil {
			return 0, fmt.Errorf("extract %s: %w", file.Name, err)
		}
		return written, nil
	}
	return 0, fmt.Errorf("%w: %s has no %s", ErrMemberNotFound, s.archivePath, s.member)
}

// progressCounter logs sampled download progress at debug level.
type progressCounter struct {
	total   int64
	done    int64
	sampler *logging.ProgressSampler
	logger  *slog.Logger
}

func (p *progressCounter) Write(b []byte) (int, error) {
	p.done += int64(len(b))
	if p.total <= 0 {
		return len(b), nil
	}
	percent := float64(p.done) / float64(p.total) * 100
	if p.sampler.ShouldLog(percent) {
		p.logger.Debug("download progress",
			slog.Int("percent", int(percent)),
			slog.String("received", humanize.Bytes(uint64(p.done))),
			slog.String("total", humanize.Bytes(uint64(p.total))),
		)
	}
	return len(b), nil
}
