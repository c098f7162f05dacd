package input

import (
	"unigo/internal/scheduler"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Poller turns raylib's polled keyboard into key messages. It must be
// called on the window thread after rl.PollInputEvents.
type Poller struct {
	held []int32
}

// Poll appends the key transitions since the previous call to out.
func (p *Poller) Poll(out []scheduler.Message) []scheduler.Message {
	kept := p.held[:0]
	for _, key := range p.held {
		if rl.IsKeyUp(key) {
			out = append(out, scheduler.Message{Kind: scheduler.MessageKeyUp, Key: key})
			continue
		}
		kept = append(kept, key)
	}
	p.held = kept
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		out = append(out, scheduler.Message{Kind: scheduler.MessageKeyDown, Key: key})
		p.held = append(p.held, key)
	}
	return out
}
