package metrics

import (
	"sync/atomic"
	"time"
)

// SearchMetric summarizes one tree-search invocation.
type SearchMetric struct {
	Goroutines   int
	Duration     time.Duration
	Episodes     int
	Cutoff       int
	FullPlayouts int
}

// MoveMetric ties a search metric to its position in a game.
type MoveMetric struct {
	Step   int
	Player string
	SearchMetric
}

// GameMetric summarizes one finished game.
type GameMetric struct {
	Winner     string
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

// AgentConfig identifies a search configuration under comparison.
type AgentConfig struct {
	ID         int
	Goroutines int
	Episodes   int
	Duration   time.Duration
	Cutoff     int
}

// Collector accumulates counters from concurrent search workers.
type Collector interface {
	Start(goroutines, cutoff int)
	AddEpisode()
	AddFullPlayout()
	Complete() SearchMetric
}

type collector struct {
	goroutines   int
	cutoff       int
	startTime    time.Time
	episodes     atomic.Int32
	fullPlayouts atomic.Int32
}

// NewCollector returns a collector backed by atomic counters.
func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(goroutines, cutoff int) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.cutoff = cutoff
	m.episodes.Store(0)
	m.fullPlayouts.Store(0)
}

func (m *collector) AddEpisode() {
	m.episodes.Add(1)
}

func (m *collector) AddFullPlayout() {
	m.fullPlayouts.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Goroutines:   m.goroutines,
		Duration:     time.Since(m.startTime),
		Episodes:     int(m.episodes.Load()),
		Cutoff:       m.cutoff,
		FullPlayouts: int(m.fullPlayouts.Load()),
	}
}

// dummyCollector drops everything; used when metrics are not requested.
type dummyCollector struct{}

// NewDummyCollector returns a no-op collector.
func NewDummyCollector() Collector { return dummyCollector{} }

func (dummyCollector) Start(int, int)         {}
func (dummyCollector) AddEpisode()            {}
func (dummyCollector) AddFullPlayout()        {}
func (dummyCollector) Complete() SearchMetric { return SearchMetric{} }
