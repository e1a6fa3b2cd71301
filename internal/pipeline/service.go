package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/dgallion1/docdiff/internal/compare"
	"github.com/dgallion1/docdiff/internal/config"
	"github.com/dgallion1/docdiff/internal/parser"
	"golang.org/x/sync/errgroup"
)

// Document is one uploaded file.
type Document struct {
	Filename string
	Data     []byte
}

// ParseError reports a document the parser could not read.
type ParseError struct {
	Filename string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("document %s: %v", e.Filename, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Service runs comparisons and keeps their results for a while.
type Service struct {
	store   *Store
	stats   *Stats
	log     *slog.Logger
	opts    parser.Options
	cleanup time.Duration

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewService(cfg config.Config, log *slog.Logger) *Service {
	return &Service{
		store:   NewStore(cfg.ResultTTL),
		stats:   NewStats(cfg.StatsWindow),
		log:     log,
		opts:    parser.Options{PDFFallbackPdftotext: cfg.PDFFallbackPdftotext},
		cleanup: cfg.CleanupInterval,
	}
}

// Start launches the background eviction of expired results.
func (s *Service) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(s.cleanup)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := s.store.Cleanup(); n > 0 {
					s.log.Info("evicted expired comparisons", "count", n)
				}
			}
		}
	}()
}

// Stop halts background work and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
}

// Compare extracts the services section of both documents and diffs them.
// The two documents are parsed concurrently; a parse failure of either
// aborts the comparison with a *ParseError.
func (s *Service) Compare(ctx context.Context, a, b Document) (*Record, error) {
	start := time.Now()
	log := s.log.With("file_a", a.Filename, "file_b", b.Filename)

	var textA, textB string
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		textA, err = s.extractText(gctx, a)
		return err
	})
	g.Go(func() error {
		var err error
		textB, err = s.extractText(gctx, b)
		return err
	})
	if err := g.Wait(); err != nil {
		log.Warn("comparison failed", "error", err)
		return nil, err
	}

	cmp := compare.Texts(textA, textB)
	rec := &Record{
		ID:         NewID(),
		DocumentA:  info(a),
		DocumentB:  info(b),
		Comparison: cmp,
		CreatedAt:  time.Now(),
		DurationMs: time.Since(start).Milliseconds(),
	}
	incomplete := cmp.Summary.Incomplete()
	s.store.Put(rec)
	s.stats.Record(rec.DurationMs, incomplete)

	log = log.With("comparison_id", rec.ID)
	if incomplete {
		log.Warn("services section not found or empty",
			"items_a", cmp.Summary.ItemsA,
			"items_b", cmp.Summary.ItemsB,
		)
	}
	log.Info("comparison complete",
		"kept", cmp.Summary.Kept,
		"removed", cmp.Summary.Removed,
		"added", cmp.Summary.Added,
		"duration_ms", rec.DurationMs,
	)
	return rec, nil
}

func (s *Service) extractText(ctx context.Context, doc Document) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	text, err := parser.ExtractText(bytes.NewReader(doc.Data), doc.Filename, s.opts)
	if err != nil {
		return "", &ParseError{Filename: doc.Filename, Err: err}
	}
	return text, nil
}

func info(doc Document) DocumentInfo {
	return DocumentInfo{
		Filename:    doc.Filename,
		ContentHash: ContentHashHex(doc.Data),
		Size:        len(doc.Data),
	}
}

// Get returns a stored comparison by ID, or nil.
func (s *Service) Get(id string) *Record {
	return s.store.Get(id)
}

// Stats returns the latency snapshot and the number of stored comparisons.
func (s *Service) Stats() (StatsSnapshot, int) {
	return s.stats.Snapshot(), s.store.Len()
}
