package wordlist

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gofrs/flock"

	"samewords/internal/fileutil"
	"samewords/internal/logging"
)

const (
	defaultDownloadTimeout = 5 * time.Minute
	lockRetryDelay         = 200 * time.Millisecond
)

// ErrMemberNotFound is returned when the downloaded archive lacks the word list.
var ErrMemberNotFound = errors.New("word list not found in archive")

// ProgressFunc is called once per download with the expected size in bytes
// (-1 when unknown). The returned writer receives a copy of every downloaded
// chunk; returning nil disables it.
type ProgressFunc func(total int64) io.Writer

// Options configures a Source.
type Options struct {
	// URL of the zip archive.
	URL string
	// Path of the unpacked word list.
	Path string
	// ArchivePath is where the downloaded archive is stored. Defaults to Path
	// with a .zip extension.
	ArchivePath string
	// Member is the archive entry to unpack. Defaults to the base name of Path.
	Member string
	// Timeout bounds the HTTP download.
	Timeout time.Duration
	// KeepArchive leaves the archive on disk after unpacking.
	KeepArchive bool
	// Progress optionally observes download progress.
	Progress ProgressFunc
	// Client overrides the HTTP client.
	Client *http.Client
}

// Source provides the word list file, fetching it on first use.
type Source struct {
	url         string
	path        string
	archivePath string
	member      string
	keepArchive bool
	progress    ProgressFunc
	client      *http.Client
	logger      *slog.Logger

	once sync.Once
	err  error
}

// New validates opts and returns a Source.
func New(opts Options, logger *slog.Logger) (*Source, error) {
	url := strings.TrimSpace(opts.URL)
	if url == "" {
		return nil, errors.New("word list url is required")
	}
	path := strings.TrimSpace(opts.Path)
	if path == "" {
		return nil, errors.New("word list path is required")
	}
	archivePath := strings.TrimSpace(opts.ArchivePath)
	if archivePath == "" {
		archivePath = strings.TrimSuffix(path, filepath.Ext(path)) + ".zip"
	}
	if archivePath == path {
		return nil, fmt.Errorf("archive path and word list path are both %s", path)
	}
	member := strings.TrimSpace(opts.Member)
	if member == "" {
		member = filepath.Base(path)
	}
	client := opts.Client
	if client == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultDownloadTimeout
		}
		client = &http.Client{Timeout: timeout}
	}
	return &Source{
		url:         url,
		path:        path,
		archivePath: archivePath,
		member:      member,
		keepArchive: opts.KeepArchive,
		progress:    opts.Progress,
		client:      client,
		logger:      logging.NewComponentLogger(logger, "wordlist"),
	}, nil
}

// Path returns the location of the unpacked word list.
func (s *Source) Path() string {
	return s.path
}

// Ensure makes sure the word list exists locally, downloading and unpacking it
// when missing. Only the first call does any work; later calls return its
// result.
func (s *Source) Ensure(ctx context.Context) error {
	s.once.Do(func() {
		s.err = s.acquire(ctx, false)
	})
	return s.err
}

// Refresh downloads and unpacks the archive even when the word list is already
// present.
func (s *Source) Refresh(ctx context.Context) error {
	return s.acquire(ctx, true)
}

// Open ensures the word list is present and opens it for reading. The file
// size is returned for progress reporting.
func (s *Source) Open(ctx context.Context) (*os.File, int64, error) {
	if err := s.Ensure(ctx); err != nil {
		return nil, 0, err
	}
	file, err := os.Open(s.path)
	if err != nil {
		return nil, 0, fmt.Errorf("open word list: %w", err)
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, 0, fmt.Errorf("stat word list: %w", err)
	}
	return file, info.Size(), nil
}

func (s *Source) acquire(ctx context.Context, force bool) error {
	if !force {
		present, err := fileutil.Exists(s.path)
		if err != nil {
			return fmt.Errorf("inspect word list: %w", err)
		}
		if present {
			s.logger.Info("word list already exists, skipping download", slog.String("path", s.path))
			return nil
		}
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create word list directory: %w", err)
	}
	lock := flock.New(s.path + ".lock")
	// TryLockContext retries until the lock is free or ctx ends.
	if _, err := lock.TryLockContext(ctx, lockRetryDelay); err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("wait for word list lock %s: %w", lock.Path(), err)
		}
		return fmt.Errorf("lock word list: %w", err)
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			s.logger.Debug("release word list lock failed", logging.Error(err))
		}
	}()

	// Another process may have finished while we waited for the lock.
	if !force {
		if present, err := fileutil.Exists(s.path); err == nil && present {
			s.logger.Info("word list already exists, skipping download", slog.String("path", s.path))
			return nil
		}
	}

	if err := s.download(ctx); err != nil {
		return err
	}
	s.logger.Info("download complete, extracting file", slog.String("archive", s.archivePath))

	written, err := s.extract()
	if err != nil {
		return err
	}
	s.logger.Info("extraction complete",
		slog.String("path", s.path),
		slog.String("size", humanize.Bytes(uint64(written))),
	)

	if !s.keepArchive {
		if err := os.Remove(s.archivePath); err != nil && !errors.Is(err, os.ErrNotExist) {
			logging.WarnWithContext(s.logger, "downloaded archive could not be removed", "archive_cleanup_failed",
				slog.String("archive", s.archivePath),
				logging.Error(err),
				logging.String(logging.FieldErrorHint, "delete the archive manually"),
				logging.String(logging.FieldImpact, "archive keeps using disk space"),
			)
		}
	}
	return nil
}
