// Package input tracks keyboard state from window messages.
package input

import (
	"unigo/internal/scheduler"

	"github.com/kamstrup/intmap"
)

// State implements engine.Input. Key transitions arrive as window messages
// and become visible at the next Update, so a whole frame observes the
// same keyboard.
type State struct {
	down    *intmap.Map[int32, bool]
	pending []event
	pressed *intmap.Map[int32, bool]
}

type event struct {
	key  int32
	down bool
}

func NewState() *State {
	return &State{
		down:    intmap.New[int32, bool](16),
		pressed: intmap.New[int32, bool](8),
	}
}

// HandleMessage queues key messages; anything else is ignored.
func (s *State) HandleMessage(msg scheduler.Message) {
	switch msg.Kind {
	case scheduler.MessageKeyDown:
		s.Press(msg.Key)
	case scheduler.MessageKeyUp:
		s.Release(msg.Key)
	}
}

func (s *State) Press(key int32) {
	s.pending = append(s.pending, event{key: key, down: true})
}

func (s *State) Release(key int32) {
	s.pending = append(s.pending, event{key: key})
}

// Update applies queued transitions. A key pressed and released within
// one frame still reads as pressed for that frame.
func (s *State) Update() {
	s.pressed.Clear()
	for _, e := range s.pending {
		if e.down {
			if !s.KeyDown(e.key) {
				s.pressed.Put(e.key, true)
			}
			s.down.Put(e.key, true)
		} else {
			s.down.Del(e.key)
		}
	}
	s.pending = s.pending[:0]
}

func (s *State) KeyDown(key int32) bool {
	_, ok := s.down.Get(key)
	return ok
}

// KeyPressed reports a key that went down during the last Update.
func (s *State) KeyPressed(key int32) bool {
	_, ok := s.pressed.Get(key)
	return ok
}

// DownCount is the number of keys currently held.
func (s *State) DownCount() int {
	return s.down.Len()
}
