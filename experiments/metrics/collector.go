package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Duration time.Duration
	Depth    int // Deepest completed search depth
	Nodes    int
	Prunes   int
	BookHit  bool
}

type MoveMetric struct {
	Step   int
	Player int // Player ID
	SearchMetric
}

type GameMetric struct {
	StartingPlayer int // Player ID
	Winner         int // Player ID, -1 if no winner
	Forfeit        bool
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start()
	AddNode()
	AddPrune()
	SetDepth(depth int)
	SetBookHit()
	Complete() SearchMetric
}

type collector struct {
	startTime time.Time
	nodes     atomic.Int64
	prunes    atomic.Int64
	depth     atomic.Int32
	bookHit   atomic.Bool
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.startTime = time.Now()
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddPrune() {
	m.prunes.Add(1)
}

func (m *collector) SetDepth(depth int) {
	m.depth.Store(int32(depth))
}

func (m *collector) SetBookHit() {
	m.bookHit.Store(true)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Duration: time.Since(m.startTime),
		Depth:    int(m.depth.Load()),
		Nodes:    int(m.nodes.Load()),
		Prunes:   int(m.prunes.Load()),
		BookHit:  m.bookHit.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                 {}
func (m *dummyCollector) AddNode()               {}
func (m *dummyCollector) AddPrune()              {}
func (m *dummyCollector) SetDepth(depth int)     {}
func (m *dummyCollector) SetBookHit()            {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
