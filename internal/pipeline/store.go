package pipeline

import (
	"crypto/sha256"
	"fmt"
	"sync"
	"time"

	"github.com/dgallion1/docdiff/internal/compare"
)

// DocumentInfo describes one side of a comparison.
type DocumentInfo struct {
	Filename    string `json:"filename"`
	ContentHash string `json:"content_hash"`
	Size        int    `json:"size"`
}

// Record is a finished comparison kept for later export.
type Record struct {
	ID         string             `json:"comparison_id"`
	DocumentA  DocumentInfo       `json:"document_a"`
	DocumentB  DocumentInfo       `json:"document_b"`
	Comparison compare.Comparison `json:"comparison"`
	CreatedAt  time.Time          `json:"created_at"`
	DurationMs int64              `json:"duration_ms"`
}

// Rows returns the comparison table.
func (r *Record) Rows() []compare.Row {
	return r.Comparison.Result.Rows()
}

// Store is a thread-safe in-memory comparison registry with TTL eviction.
type Store struct {
	mu      sync.Mutex
	records map[string]*Record
	ttl     time.Duration
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		records: make(map[string]*Record),
		ttl:     ttl,
	}
}

func (s *Store) Put(rec *Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[rec.ID] = rec
}

// Get returns the record, or nil when unknown or expired.
func (s *Store) Get(id string) *Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := s.records[id]
	if rec == nil || time.Since(rec.CreatedAt) > s.ttl {
		return nil
	}
	return rec
}

// Len counts records that have not expired, whether or not Cleanup has run.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, rec := range s.records {
		if time.Since(rec.CreatedAt) <= s.ttl {
			n++
		}
	}
	return n
}

// Cleanup removes expired records and returns how many were dropped.
func (s *Store) Cleanup() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	removed := 0
	for id, rec := range s.records {
		if now.Sub(rec.CreatedAt) > s.ttl {
			delete(s.records, id)
			removed++
		}
	}
	return removed
}

// ContentHashHex computes SHA-256 of content and returns hex string.
func ContentHashHex(data []byte) string {
	h := sha256.Sum256(data)
	return fmt.Sprintf("%x", h[:])
}
