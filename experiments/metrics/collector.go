package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Duration     time.Duration
	Episodes     int
	FullPlayouts int // Rollouts that ended with a winner and a loser
	Nodes        int
	MaxDepth     int
	BestAverage  float64 // Average reward of the chosen root child
}

type MoveMetric struct {
	Step   int
	Player string // Colour on turn
	Agent  string
	Move   string
	SearchMetric
}

type GameMetric struct {
	Seats      [3]string // Agent name per colour
	Winner     string    // Colour, "" if the game ended without one
	Loser      string
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

type Collector interface {
	Start()
	AddEpisode()
	AddFullPlayout()
	AddNodes(n int)
	AddDepth(depth int)
	Complete(bestAverage float64) SearchMetric
}

type collector struct {
	startTime    time.Time
	episodes     atomic.Int32
	fullPlayouts atomic.Int32
	nodes        atomic.Int32
	maxDepth     atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the counters for a new decision.
func (m *collector) Start() {
	m.startTime = time.Now()
	m.episodes.Store(0)
	m.fullPlayouts.Store(0)
	m.nodes.Store(0)
	m.maxDepth.Store(0)
}

func (m *collector) AddFullPlayout() {
	m.fullPlayouts.Add(1)
}

func (m *collector) AddEpisode() {
	m.episodes.Add(1)
}

func (m *collector) AddNodes(n int) {
	m.nodes.Add(int32(n))
}

func (m *collector) AddDepth(depth int) {
	for {
		current := m.maxDepth.Load()
		if int32(depth) <= current || m.maxDepth.CompareAndSwap(current, int32(depth)) {
			return
		}
	}
}

func (m *collector) Complete(bestAverage float64) SearchMetric {
	return SearchMetric{
		Duration:     time.Since(m.startTime),
		Episodes:     int(m.episodes.Load()),
		FullPlayouts: int(m.fullPlayouts.Load()),
		Nodes:        int(m.nodes.Load()),
		MaxDepth:     int(m.maxDepth.Load()),
		BestAverage:  bestAverage,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                                    {}
func (m *dummyCollector) AddFullPlayout()                           {}
func (m *dummyCollector) AddEpisode()                               {}
func (m *dummyCollector) AddNodes(n int)                            {}
func (m *dummyCollector) AddDepth(depth int)                        {}
func (m *dummyCollector) Complete(bestAverage float64) SearchMetric { return SearchMetric{} }
