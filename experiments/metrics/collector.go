package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Depth        int
	LocalSearch  bool
	Duration     time.Duration
	Nodes        int // Nodes entered, leaves included
	Leaves       int // Nodes scored by the evaluation function
	Cutoffs      int // Alpha-beta prunes
	Timeouts     int // Leaves forced by the deadline
	NoLegalMoves int // Nodes whose player could not move
	MaxBranching int // Largest number of children explored under one node
}

type MoveMetric struct {
	Step   int
	Player int // Player number
	SearchMetric
}

type GameMetric struct {
	StartingPlayer int
	Winner         int // Player number, 0 if the game hit the turn limit
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(depth int, localSearch bool)
	AddNode()
	AddLeaf()
	AddCutoff()
	AddTimeout()
	AddNoLegalMoves()
	ObserveBranching(children int)
	Complete() SearchMetric
}

type collector struct {
	depth        int
	localSearch  bool
	startTime    time.Time
	nodes        atomic.Int64
	leaves       atomic.Int64
	cutoffs      atomic.Int64
	timeouts     atomic.Int64
	noLegalMoves atomic.Int64
	maxBranching atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth int, localSearch bool) {
	m.startTime = time.Now()
	m.depth = depth
	m.localSearch = localSearch
	m.nodes.Store(0)
	m.leaves.Store(0)
	m.cutoffs.Store(0)
	m.timeouts.Store(0)
	m.noLegalMoves.Store(0)
	m.maxBranching.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) AddTimeout() {
	m.timeouts.Add(1)
}

func (m *collector) AddNoLegalMoves() {
	m.noLegalMoves.Add(1)
}

func (m *collector) ObserveBranching(children int) {
	for {
		current := m.maxBranching.Load()
		if int64(children) <= current || m.maxBranching.CompareAndSwap(current, int64(children)) {
			return
		}
	}
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:        m.depth,
		LocalSearch:  m.localSearch,
		Duration:     time.Since(m.startTime),
		Nodes:        int(m.nodes.Load()),
		Leaves:       int(m.leaves.Load()),
		Cutoffs:      int(m.cutoffs.Load()),
		Timeouts:     int(m.timeouts.Load()),
		NoLegalMoves: int(m.noLegalMoves.Load()),
		MaxBranching: int(m.maxBranching.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int, localSearch bool) {}
func (m *dummyCollector) AddNode()                          {}
func (m *dummyCollector) AddLeaf()                          {}
func (m *dummyCollector) AddCutoff()                        {}
func (m *dummyCollector) AddTimeout()                       {}
func (m *dummyCollector) AddNoLegalMoves()                  {}
func (m *dummyCollector) ObserveBranching(children int)     {}
func (m *dummyCollector) Complete() SearchMetric            { return SearchMetric{} }
