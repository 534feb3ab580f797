package metrics

import (
	"sync/atomic"
	"time"
)

// InferenceMetric captures what one AddKnowledge call derived.
type InferenceMetric struct {
	Duration         time.Duration
	Sentences        int // sentences added, including subset derivations
	SubsetInferences int
	MinesDeduced     int
	SafesDeduced     int
}

type MoveMetric struct {
	Step  int
	Row   int
	Col   int
	Guess bool // true when the move came from the random fallback
	InferenceMetric
}

type GameMetric struct {
	Height     int
	Width      int
	Mines      int
	Outcome    string
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
	Guesses    int
	MinesFound int // mines proven by the end of the game
}

type Collector interface {
	Start()
	AddSentence()
	AddSubsetInference()
	AddMineDeduction()
	AddSafeDeduction()
	Complete() InferenceMetric
}

type collector struct {
	startTime        time.Time
	sentences        atomic.Int32
	subsetInferences atomic.Int32
	minesDeduced     atomic.Int32
	safesDeduced     atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.startTime = time.Now()
	m.sentences.Store(0)
	m.subsetInferences.Store(0)
	m.minesDeduced.Store(0)
	m.safesDeduced.Store(0)
}

func (m *collector) AddSentence() {
	m.sentences.Add(1)
}

func (m *collector) AddSubsetInference() {
	m.subsetInferences.Add(1)
}

func (m *collector) AddMineDeduction() {
	m.minesDeduced.Add(1)
}

func (m *collector) AddSafeDeduction() {
	m.safesDeduced.Add(1)
}

func (m *collector) Complete() InferenceMetric {
	return InferenceMetric{
		Duration:         time.Since(m.startTime),
		Sentences:        int(m.sentences.Load()),
		SubsetInferences: int(m.subsetInferences.Load()),
		MinesDeduced:     int(m.minesDeduced.Load()),
		SafesDeduced:     int(m.safesDeduced.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                    {}
func (m *dummyCollector) AddSentence()              {}
func (m *dummyCollector) AddSubsetInference()       {}
func (m *dummyCollector) AddMineDeduction()         {}
func (m *dummyCollector) AddSafeDeduction()         {}
func (m *dummyCollector) Complete() InferenceMetric { return InferenceMetric{} }
