package pipeline

import (
	"slices"
	"sync"
	"time"
)

type comparisonSample struct {
	at         time.Time
	ms         int64
	incomplete bool
}

// StatsSnapshot summarizes the comparisons run inside the window.
// Incomplete counts those where at least one document had no services
// section, the same condition the service warns about.
type StatsSnapshot struct {
	Count      int     `json:"count"`
	Incomplete int     `json:"incomplete"`
	MinMs      int64   `json:"min_ms"`
	MaxMs      int64   `json:"max_ms"`
	AvgMs      float64 `json:"avg_ms"`
	P50Ms      float64 `json:"p50_ms"`
	P95Ms      float64 `json:"p95_ms"`
	P99Ms      float64 `json:"p99_ms"`
}

// Stats keeps comparison timings for a sliding window.
type Stats struct {
	mu     sync.Mutex
	window time.Duration
	recent []comparisonSample
}

// NewStats falls back to a one hour window when window is not positive.
func NewStats(window time.Duration) *Stats {
	if window <= 0 {
		window = time.Hour
	}
	return &Stats{window: window, recent: make([]comparisonSample, 0, 256)}
}

// Record adds one finished comparison. Negative durations count as zero.
func (s *Stats) Record(durationMs int64, incomplete bool) {
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expire(now)
	s.recent = append(s.recent, comparisonSample{at: now, ms: max(durationMs, 0), incomplete: incomplete})
}

func (s *Stats) Snapshot() StatsSnapshot {
	now := time.Now()
	s.mu.Lock()
	s.expire(now)
	durations := make([]int64, len(s.recent))
	snap := StatsSnapshot{Count: len(s.recent)}
	var total int64
	for i, c := range s.recent {
		durations[i] = c.ms
		total += c.ms
		if c.incomplete {
			snap.Incomplete++
		}
	}
	s.mu.Unlock()

	if snap.Count == 0 {
		return snap
	}
	slices.Sort(durations)
	snap.MinMs = durations[0]
	snap.MaxMs = durations[len(durations)-1]
	snap.AvgMs = float64(total) / float64(snap.Count)
	snap.P50Ms = percentile(durations, 50)
	snap.P95Ms = percentile(durations, 95)
	snap.P99Ms = percentile(durations, 99)
	return snap
}

// expire drops samples older than the window. Samples are appended in time
// order, so the live ones form a suffix. Caller holds s.mu.
func (s *Stats) expire(now time.Time) {
	cutoff := now.Add(-s.window)
	i := 0
	for i < len(s.recent) && s.recent[i].at.Before(cutoff) {
		i++
	}
	if i > 0 {
		s.recent = append(s.recent[:0], s.recent[i:]...)
	}
}

// percentile interpolates linearly between the two closest ranks of sorted.
func percentile(sorted []int64, pct float64) float64 {
	n := len(sorted)
	switch {
	case n == 0:
		return 0
	case pct <= 0:
		return float64(sorted[0])
	case pct >= 100:
		return float64(sorted[n-1])
	}
	rank := float64(n-1) * pct / 100
	lo := int(rank)
	if lo+1 >= n {
		return float64(sorted[lo])
	}
	frac := rank - float64(lo)
	return float64(sorted[lo]) + frac*float64(sorted[lo+1]-sorted[lo])
}
