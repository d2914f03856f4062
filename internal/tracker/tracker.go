// Package tracker reads a hand-tracking feed and exposes it as an external
// positional control. The feed is a line-oriented stream (a file, a FIFO or
// any io.Reader) where every line carries one normalized X sample.
package tracker

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-catch/internal/core"
)

// ErrNoSource is returned by Start when no feed path is configured.
var ErrNoSource = errors.New("tracker: no feed configured")

// Config holds configuration for a tracking feed.
type Config struct {
	// Path is the file or FIFO to read samples from.
	Path string

	// Logger receives feed lifecycle messages. Nil discards them.
	Logger *log.Logger
}

// Feed is a core.ExternalControl backed by a line-oriented sample stream.
// Safe for concurrent use: the reader goroutine writes samples while the
// game loop reads them.
type Feed struct {
	cfg    Config
	logger *log.Logger
	open   func(path string) (io.ReadCloser, error)

	mu      sync.Mutex
	cur     *run
	active  bool
	x       float64
	hasX    bool
	samples int
	err     error
}

// run is one Start..Stop cycle of the reader goroutine.
type run struct {
	rc        io.ReadCloser
	ctx       context.Context
	cancel    context.CancelFunc
	done      chan struct{}
	closeOnce sync.Once
	closeErr  error
}

func (r *run) close() error {
	r.closeOnce.Do(func() {
		r.closeErr = r.rc.Close()
	})
	return r.closeErr
}

var _ core.ExternalControl = (*Feed)(nil)

// New creates a feed for the given configuration. Nothing is opened until Start.
func New(cfg Config) *Feed {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Feed{
		cfg:    cfg,
		logger: logger,
		open:   openFile,
	}
}

func openFile(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

// Path returns the configured feed path.
func (f *Feed) Path() string {
	return f.cfg.Path
}

// Start opens the feed and begins reading samples in the background.
// Opening a FIFO blocks until a writer connects, so callers on a UI thread
// should start the feed asynchronously. Starting an active feed is a no-op.
func (f *Feed) Start(ctx context.Context) error {
	f.mu.Lock()
	if f.cur != nil {
		f.mu.Unlock()
		return nil
	}
	f.mu.Unlock()

	if f.cfg.Path == "" {
		return ErrNoSource
	}

	rc, err := f.open(f.cfg.Path)
	if err != nil {
		return fmt.Errorf("open tracker feed %s: %w", f.cfg.Path, err)
	}

	runCtx, cancel := context.WithCancel(ctx)
	r := &run{
		rc:     rc,
		ctx:    runCtx,
		cancel: cancel,
		done:   make(chan struct{}),
	}

	f.mu.Lock()
	if f.cur != nil {
		// Lost a race with a concurrent Start
		f.mu.Unlock()
		cancel()
		_ = rc.Close()
		return nil
	}
	f.cur = r
	f.active = true
	f.hasX = false
	f.samples = 0
	f.err = nil
	f.mu.Unlock()

	f.logger.Info("tracker started", "path", f.cfg.Path)

	go f.watch(r)
	go f.read(r)
	return nil
}

// Stop halts the reader, closes the feed and forgets the last sample.
// Stopping an inactive feed is a no-op.
func (f *Feed) Stop() error {
	f.mu.Lock()
	r := f.cur
	f.mu.Unlock()
	if r == nil {
		return nil
	}

	r.cancel()
	err := r.close()
	<-r.done

	f.mu.Lock()
	if f.cur == r {
		f.cur = nil
	}
	f.active = false
	f.hasX = false
	f.mu.Unlock()

	f.logger.Info("tracker stopped", "path", f.cfg.Path)
	if err != nil {
		return fmt.Errorf("close tracker feed: %w", err)
	}
	return nil
}

// Active reports whether the feed is currently being read.
func (f *Feed) Active() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.active
}

// X returns the latest sample. ok is false when the feed is inactive or the
// tracker reported no hand.
func (f *Feed) X() (float64, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.active {
		return 0, false
	}
	return f.x, f.hasX
}

// Samples returns how many valid lines were read since the last Start.
func (f *Feed) Samples() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.samples
}

// Err returns the error that ended the last read loop, if any.
// A clean end of stream or a Stop is not an error.
func (f *Feed) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

// watch closes the feed when the context is cancelled so a blocked read returns.
func (f *Feed) watch(r *run) {
	select {
	case <-r.ctx.Done():
		_ = r.close()
	case <-r.done:
	}
}

func (f *Feed) read(r *run) {
	defer close(r.done)

	scanner := bufio.NewScanner(r.rc)
	for scanner.Scan() {
		x, ok, err := ParseSample(scanner.Text())
		if err != nil {
			f.logger.Debug("skipping tracker sample", "error", err)
			continue
		}

		f.mu.Lock()
		f.x = x
		f.hasX = ok
		f.samples++
		f.mu.Unlock()
	}

	err := scanner.Err()
	if r.ctx.Err() != nil {
		// Stopped or cancelled; read errors from the forced close don't count
		err = nil
	}
	r.cancel()
	_ = r.close()

	f.mu.Lock()
	f.active = false
	f.hasX = false
	f.err = err
	if f.cur == r {
		f.cur = nil
	}
	f.mu.Unlock()

	if err != nil {
		f.logger.Warn("tracker feed failed", "path", f.cfg.Path, "error", err)
		return
	}
	f.logger.Info("tracker feed ended", "path", f.cfg.Path)
}
