// Package metrics counts decode outcomes of a CLI run. Counters are keyed by
// metric name and an optional program label; a run flushes them to its logger
// once it finishes.
package metrics

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"
)

// Metrics receives decode measurements.
type Metrics interface {
	// IncrementCounter adds value to the named counter.
	IncrementCounter(ctx context.Context, name string, value uint64) error

	// RecordHistogram records one observation of the named distribution.
	RecordHistogram(ctx context.Context, name string, value float64) error

	// Flush reports the values collected so far.
	Flush(ctx context.Context) error
}

// Metric names recorded by the command line.
const (
	MetricInstructionsDecoded = "instructions_decoded"
	MetricEventsDecoded       = "events_decoded"
	MetricPayloadsDropped     = "payloads_dropped"
	MetricDecodeFailures      = "decode_failures"
	MetricDecodeMilliseconds  = "decode_milliseconds"
)

// Labeled appends a program label to a metric name: events_decoded{damm}.
func Labeled(name, program string) string {
	if program == "" {
		return name
	}
	return name + "{" + program + "}"
}

// Collection fans every call out to several Metrics.
type Collection struct {
	metrics []Metrics
	mu      sync.RWMutex
}

func NewCollection(metrics ...Metrics) *Collection {
	return &Collection{metrics: metrics}
}

func (c *Collection) Add(m Metrics) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.metrics = append(c.metrics, m)
}

func (c *Collection) IncrementCounter(ctx context.Context, name string, value uint64) error {
	return c.each(func(m Metrics) error { return m.IncrementCounter(ctx, name, value) })
}

func (c *Collection) RecordHistogram(ctx context.Context, name string, value float64) error {
	return c.each(func(m Metrics) error { return m.RecordHistogram(ctx, name, value) })
}

func (c *Collection) Flush(ctx context.Context) error {
	return c.each(func(m Metrics) error { return m.Flush(ctx) })
}

func (c *Collection) each(fn func(Metrics) error) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, m := range c.metrics {
		if err := fn(m); err != nil {
			return err
		}
	}
	return nil
}

func (c *Collection) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.metrics)
}

// Noop discards everything.
type Noop struct{}

func (Noop) IncrementCounter(context.Context, string, uint64) error { return nil }
func (Noop) RecordHistogram(context.Context, string, float64) error { return nil }
func (Noop) Flush(context.Context) error                            { return nil }

// Summary aggregates the observations of one histogram.
type Summary struct {
	Count uint64
	Sum   float64
	Min   float64
	Max   float64
}

func (s *Summary) observe(v float64) {
	if s.Count == 0 || v < s.Min {
		s.Min = v
	}
	if s.Count == 0 || v > s.Max {
		s.Max = v
	}
	s.Count++
	s.Sum += v
}

// LogMetrics keeps counters and histogram summaries in memory and writes them
// to a slog logger on Flush.
type LogMetrics struct {
	logger     *slog.Logger
	level      slog.Level
	mu         sync.RWMutex
	counters   map[string]uint64
	histograms map[string]*Summary
}

// NewLogMetrics flushes to logger at debug level. A nil logger means
// slog.Default.
func NewLogMetrics(logger *slog.Logger) *LogMetrics {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogMetrics{
		logger:     logger,
		level:      slog.LevelDebug,
		counters:   make(map[string]uint64),
		histograms: make(map[string]*Summary),
	}
}

// WithLevel sets the level Flush logs at.
func (l *LogMetrics) WithLevel(level slog.Level) *LogMetrics {
	l.level = level
	return l
}

func (l *LogMetrics) IncrementCounter(_ context.Context, name string, value uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.counters[name] += value
	return nil
}

func (l *LogMetrics) RecordHistogram(_ context.Context, name string, value float64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	s, ok := l.histograms[name]
	if !ok {
		s = &Summary{}
		l.histograms[name] = s
	}
	s.observe(value)
	return nil
}

// Counter returns the current value of a counter.
func (l *LogMetrics) Counter(name string) uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.counters[name]
}

// Histogram returns a copy of a histogram summary.
func (l *LogMetrics) Histogram(name string) (Summary, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	s, ok := l.histograms[name]
	if !ok {
		return Summary{}, false
	}
	return *s, true
}

// Flush logs one record per metric, in name order. Nothing is logged when no
// metric was recorded.
func (l *LogMetrics) Flush(ctx context.Context) error {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, name := range sortedKeys(l.counters) {
		l.logger.Log(ctx, l.level, "metric", "name", name, "value", l.counters[name])
	}
	for _, name := range sortedKeys(l.histograms) {
		s := l.histograms[name]
		l.logger.Log(ctx, l.level, "metric",
			"name", name,
			"count", s.Count,
			"sum", s.Sum,
			"min", s.Min,
			"max", s.Max)
	}
	return nil
}

// Since records the milliseconds elapsed from start under name.
func Since(ctx context.Context, m Metrics, name string, start time.Time) error {
	return m.RecordHistogram(ctx, name, float64(time.Since(start).Microseconds())/1000)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
