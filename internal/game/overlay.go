package game

import (
	"fmt"
	"time"
	"unigo/internal/scheduler"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Overlay is the F1 debug panel: frame counters, per-phase timings and a
// scene reload button.
type Overlay struct {
	Visible bool
	Stats   func() scheduler.Stats
	Reload  func()
}

const (
	overlayX     = 10
	overlayY     = 10
	overlayWidth = 300
	rowHeight    = 18
)

// Lines renders the stats as text rows.
func (o *Overlay) Lines(st scheduler.Stats, lights int, fps int32) []string {
	lines := []string{
		fmt.Sprintf("FPS %d   frames %d   fixed steps %d", fps, st.Frames, st.FixedSteps),
		fmt.Sprintf("lights %d", lights),
	}
	for _, p := range st.Phases {
		lines = append(lines, fmt.Sprintf("%-12s last %6s  avg %6s  max %6s",
			p.Phase, ms(p.LastDuration), ms(p.AvgDuration), ms(p.MaxDuration)))
	}
	return lines
}

func ms(d time.Duration) string {
	return fmt.Sprintf("%.2fms", float64(d.Microseconds())/1000)
}

func (o *Overlay) Draw(lights int) {
	if rl.IsKeyPressed(rl.KeyF1) {
		o.Visible = !o.Visible
	}
	if !o.Visible || o.Stats == nil {
		return
	}
	lines := o.Lines(o.Stats(), lights, rl.GetFPS())
	height := float32(len(lines)*rowHeight + 3*rowHeight)
	gui.Panel(rl.Rectangle{X: overlayX, Y: overlayY, Width: overlayWidth, Height: height}, "Debug")

	y := float32(overlayY + rowHeight + 6)
	for _, line := range lines {
		gui.Label(rl.Rectangle{X: overlayX + 8, Y: y, Width: overlayWidth - 16, Height: rowHeight}, line)
		y += rowHeight
	}
	if o.Reload != nil && gui.Button(rl.Rectangle{X: overlayX + 8, Y: y + 4, Width: 120, Height: rowHeight}, "Reload scene") {
		o.Reload()
	}
}
