package engine

// Time holds the frame clock. DeltaTime reports the fixed step while the
// fixed-update and physics passes run, and the measured frame time otherwise.
type Time struct {
	FixedDeltaTime float32
	DeltaTime      float32
	FrameDeltaTime float32
	TimeSinceStart float64
	FrameCount     uint64
	FixedStepCount uint64
}

// DefaultFixedDeltaTime is the fixed physics step in seconds.
const DefaultFixedDeltaTime = 0.02

func NewTime(fixedDeltaTime float32) *Time {
	if fixedDeltaTime <= 0 {
		fixedDeltaTime = DefaultFixedDeltaTime
	}
	return &Time{FixedDeltaTime: fixedDeltaTime}
}

// SetDeltaTimeFixed makes DeltaTime report the fixed step.
func (t *Time) SetDeltaTimeFixed() {
	t.DeltaTime = t.FixedDeltaTime
}

// SetDeltaTimeFrame makes DeltaTime report the last measured frame time.
func (t *Time) SetDeltaTimeFrame() {
	t.DeltaTime = t.FrameDeltaTime
}

// UpdateFrame records the measured duration of the frame that just ended.
func (t *Time) UpdateFrame(delta float64) {
	t.FrameDeltaTime = float32(delta)
	t.TimeSinceStart += delta
	t.FrameCount++
}
