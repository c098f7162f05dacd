package engine

// Event is a multicast notification with no payload.
type Event struct {
	listeners []func()
}

// AddListener subscribes callback. Nil callbacks are ignored.
func (e *Event) AddListener(callback func()) {
	if callback == nil {
		return
	}
	e.listeners = append(e.listeners, callback)
}

func (e *Event) RemoveAllListeners() {
	e.listeners = nil
}

// Invoke calls every listener in subscription order.
func (e *Event) Invoke() {
	for _, listener := range e.listeners {
		listener()
	}
}

func (e *Event) ListenerCount() int {
	return len(e.listeners)
}

// EventWithArg is a multicast notification carrying one value.
type EventWithArg[T any] struct {
	listeners []func(T)
}

func (e *EventWithArg[T]) AddListener(callback func(T)) {
	if callback == nil {
		return
	}
	e.listeners = append(e.listeners, callback)
}

func (e *EventWithArg[T]) RemoveAllListeners() {
	e.listeners = nil
}

func (e *EventWithArg[T]) Invoke(arg T) {
	for _, listener := range e.listeners {
		listener(arg)
	}
}

func (e *EventWithArg[T]) ListenerCount() int {
	return len(e.listeners)
}
