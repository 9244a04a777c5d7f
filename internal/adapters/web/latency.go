package web

import (
	"sort"
	"sync"
	"time"
)

// LatencyWindow is how far back the health endpoint looks at request timings.
const LatencyWindow = 5 * time.Minute

// latencySamples bounds how many recent durations feed the median.
const latencySamples = 1024

// latencyTracker counts requests over a rolling window and reports the median
// of the most recent durations within it. Memory is fixed: durations live in a
// ring of latencySamples entries and counts in one bucket per second.
// Safe for concurrent use.
type latencyTracker struct {
	mu     sync.Mutex
	window time.Duration
	now    func() time.Time

	ring    [latencySamples]latencySample
	next    int
	size    int
	buckets []secondBucket
	scratch []time.Duration
}

type latencySample struct {
	ts time.Time
	d  time.Duration
}

type secondBucket struct {
	sec int64
	n   int
}

func newLatencyTracker(window time.Duration) *latencyTracker {
	secs := int(window / time.Second)
	if secs < 1 {
		secs = 1
	}
	return &latencyTracker{
		window:  window,
		now:     time.Now,
		buckets: make([]secondBucket, secs),
		scratch: make([]time.Duration, 0, latencySamples),
	}
}

// Record adds one request duration at the current time.
func (l *latencyTracker) Record(d time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.now()

	l.ring[l.next] = latencySample{ts: now, d: d}
	l.next = (l.next + 1) % latencySamples
	if l.size < latencySamples {
		l.size++
	}

	sec := now.Unix()
	b := &l.buckets[sec%int64(len(l.buckets))]
	if b.sec != sec {
		*b = secondBucket{sec: sec}
	}
	b.n++
}

// Summary returns the request count within the window and the median of the
// retained durations within it. The median is 0 when the window is empty.
func (l *latencyTracker) Summary() (count int, p50 time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.now()

	oldest := now.Unix() - int64(len(l.buckets))
	for _, b := range l.buckets {
		if b.sec > oldest {
			count += b.n
		}
	}

	cutoff := now.Add(-l.window)
	ds := l.scratch[:0]
	for i := 0; i < l.size; i++ {
		if s := l.ring[i]; !s.ts.Before(cutoff) {
			ds = append(ds, s.d)
		}
	}
	if len(ds) == 0 {
		return count, 0
	}
	sort.Slice(ds, func(i, j int) bool { return ds[i] < ds[j] })
	return count, ds[len(ds)/2]
}
