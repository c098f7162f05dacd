package game

import (
	"unigo/internal/config"
	"unigo/internal/input"
	"unigo/internal/scheduler"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// source appends whatever messages it has to out.
type source func(out []scheduler.Message) []scheduler.Message

// messageQueue collects messages from its sources once per pump and hands
// them out one at a time.
type messageQueue struct {
	sources []source
	posted  chan scheduler.Message
	pending []scheduler.Message
	polled  bool
}

func newMessageQueue(sources ...source) *messageQueue {
	return &messageQueue{
		sources: sources,
		posted:  make(chan scheduler.Message, 16),
	}
}

// Post enqueues a message from any goroutine. It never blocks; when the
// queue is full the message is dropped and false returned.
func (q *messageQueue) Post(msg scheduler.Message) bool {
	select {
	case q.posted <- msg:
		return true
	default:
		return false
	}
}

// PeekMessage polls the sources on the first call of a pump and reports
// false once the batch is drained, arming the next poll.
func (q *messageQueue) PeekMessage() (scheduler.Message, bool) {
	if !q.polled {
		q.polled = true
		q.fill()
	}
	if len(q.pending) == 0 {
		q.polled = false
		return scheduler.Message{}, false
	}
	msg := q.pending[0]
	q.pending = q.pending[1:]
	return msg, true
}

func (q *messageQueue) fill() {
	for _, src := range q.sources {
		q.pending = src(q.pending)
	}
	for {
		select {
		case msg := <-q.posted:
			if n := len(q.pending); n > 0 && msg.Kind == scheduler.MessageReloadScene && q.pending[n-1] == msg {
				continue
			}
			q.pending = append(q.pending, msg)
		default:
			return
		}
	}
}

// Window is the raylib window seen as a message source: close requests,
// keyboard transitions and messages posted by other goroutines.
type Window struct {
	*messageQueue
	cfg    config.Window
	poller input.Poller
}

func NewWindow(cfg config.Window) *Window {
	w := &Window{cfg: cfg}
	w.messageQueue = newMessageQueue(w.pollClose, w.poller.Poll)
	return w
}

func (w *Window) Open() {
	if w.cfg.HighDPI {
		rl.SetConfigFlags(rl.FlagWindowHighdpi)
	}
	rl.InitWindow(w.cfg.Width, w.cfg.Height, w.cfg.Title)
	rl.SetTargetFPS(w.cfg.TargetFPS)
	rl.SetExitKey(rl.KeyEscape)
}

func (w *Window) Close() {
	rl.CloseWindow()
}

func (w *Window) pollClose(out []scheduler.Message) []scheduler.Message {
	if rl.WindowShouldClose() {
		out = append(out, scheduler.Message{Kind: scheduler.MessageQuit})
	}
	return out
}
