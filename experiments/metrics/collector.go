package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Depth      int // Effective depth after the endgame override
	Duration   time.Duration
	Nodes      int // Moves applied while scoring
	MaxPly     int // Deepest ply reached below the root
	Candidates int
	BestScore  int
}

type MoveMetric struct {
	Step   int
	Player int // game.Player value
	Move   string
	Passed bool
	SearchMetric
}

type GameMetric struct {
	StartingPlayer int    // game.Player value
	Winner         string // "Black", "White" or "" for a tie
	BlackDiscs     int
	WhiteDiscs     int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	Passes         int
}

type Collector interface {
	Start(depth int)
	AddNode(ply int)
	SetResult(candidates, bestScore int)
	Complete() SearchMetric
}

type collector struct {
	depth      int
	startTime  time.Time
	nodes      atomic.Int64
	maxPly     atomic.Int32
	candidates int
	bestScore  int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth int) {
	m.startTime = time.Now()
	m.depth = depth
	m.nodes.Store(0)
	m.maxPly.Store(0)
	m.candidates = 0
	m.bestScore = 0
}

func (m *collector) AddNode(ply int) {
	m.nodes.Add(1)
	for {
		current := m.maxPly.Load()
		if int32(ply) <= current || m.maxPly.CompareAndSwap(current, int32(ply)) {
			return
		}
	}
}

func (m *collector) SetResult(candidates, bestScore int) {
	m.candidates = candidates
	m.bestScore = bestScore
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:      m.depth,
		Duration:   time.Since(m.startTime),
		Nodes:      int(m.nodes.Load()),
		MaxPly:     int(m.maxPly.Load()),
		Candidates: m.candidates,
		BestScore:  m.bestScore,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int)                     {}
func (m *dummyCollector) AddNode(ply int)                     {}
func (m *dummyCollector) SetResult(candidates, bestScore int) {}
func (m *dummyCollector) Complete() SearchMetric              { return SearchMetric{} }
