package scheduler

import (
	"unigo/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Device is the rendering collaborator. The scheduler only brackets frames
// and camera passes; drawing itself is done by Renderer components.
type Device interface {
	Clear(color rl.Color)
	BeginCamera(cam rl.Camera3D, lights []engine.LightData)
	EndCamera()
	Present()
}

// MessageKind classifies window messages.
type MessageKind int

const (
	MessageQuit MessageKind = iota
	MessageReloadScene
	MessageKeyDown
	MessageKeyUp
)

// Message is an OS or application message delivered by the Window.
type Message struct {
	Kind MessageKind
	Key  int32
	Path string
}

// Window delivers messages without blocking.
type Window interface {
	PeekMessage() (Message, bool)
}

// MessageHandler receives messages the scheduler does not handle itself.
// Input implementations usually satisfy it.
type MessageHandler interface {
	HandleMessage(msg Message)
}
