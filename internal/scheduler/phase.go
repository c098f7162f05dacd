package scheduler

import "time"

// Phase is one stage of a frame. Phases always run in declaration order.
type Phase int

const (
	PhaseFixedUpdate Phase = iota
	PhasePhysics
	PhaseInput
	PhaseUpdate
	PhaseLateUpdate
	PhaseRender
	phaseCount
)

var phaseNames = [phaseCount]string{
	PhaseFixedUpdate: "FixedUpdate",
	PhasePhysics:     "Physics",
	PhaseInput:       "Input",
	PhaseUpdate:      "Update",
	PhaseLateUpdate:  "LateUpdate",
	PhaseRender:      "Render",
}

func (p Phase) String() string {
	if p < 0 || p >= phaseCount {
		return "Unknown"
	}
	return phaseNames[p]
}

// Phases lists every phase in execution order.
func Phases() []Phase {
	out := make([]Phase, phaseCount)
	for i := range out {
		out[i] = Phase(i)
	}
	return out
}

// Stats summarises scheduler execution.
type Stats struct {
	Frames     uint64
	FixedSteps uint64
	Phases     []PhaseStats
}

// PhaseStats holds execution timings for a single phase.
type PhaseStats struct {
	Phase          Phase
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type phaseStats struct {
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

func newPhaseStats() *phaseStats {
	return &phaseStats{minDuration: time.Duration(1<<63 - 1)}
}

func (s *phaseStats) record(d time.Duration) {
	s.executionCount++
	s.lastDuration = d
	s.totalDuration += d
	if d < s.minDuration {
		s.minDuration = d
	}
	if d > s.maxDuration {
		s.maxDuration = d
	}
}

func (s *phaseStats) snapshot(p Phase) PhaseStats {
	out := PhaseStats{
		Phase:          p,
		ExecutionCount: s.executionCount,
		MaxDuration:    s.maxDuration,
		LastDuration:   s.lastDuration,
		TotalDuration:  s.totalDuration,
	}
	if s.executionCount > 0 {
		out.MinDuration = s.minDuration
		out.AvgDuration = s.totalDuration / time.Duration(s.executionCount)
	}
	return out
}
