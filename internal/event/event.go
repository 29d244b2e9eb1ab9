package event

// Event is a multicast callback with no payload. The interaction engine fires
// one per committed discrete action; the host subscribes its domain mutations.
type Event struct {
	listeners map[int]func()
	nextID    int
}

// AddListener registers a callback and returns an id usable with RemoveListener.
func (e *Event) AddListener(callback func()) int {
	if callback == nil {
		return -1
	}
	if e.listeners == nil {
		e.listeners = make(map[int]func())
	}
	id := e.nextID
	e.nextID++
	e.listeners[id] = callback
	return id
}

// RemoveListener unregisters the callback previously returned by AddListener.
func (e *Event) RemoveListener(id int) {
	delete(e.listeners, id)
}

// RemoveAllListeners clears all listeners.
func (e *Event) RemoveAllListeners() {
	e.listeners = nil
}

// Invoke calls all registered listeners.
func (e *Event) Invoke() {
	for _, listener := range e.listeners {
		listener()
	}
}

// ListenerCount returns the number of registered listeners.
func (e *Event) ListenerCount() int {
	return len(e.listeners)
}

// EventWithArg is a multicast callback with one payload argument.
type EventWithArg[T any] struct {
	listeners map[int]func(T)
	nextID    int
}

func (e *EventWithArg[T]) AddListener(callback func(T)) int {
	if callback == nil {
		return -1
	}
	if e.listeners == nil {
		e.listeners = make(map[int]func(T))
	}
	id := e.nextID
	e.nextID++
	e.listeners[id] = callback
	return id
}

func (e *EventWithArg[T]) RemoveListener(id int) {
	delete(e.listeners, id)
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
