package engine

// ListenerID identifies a listener so it can be removed later.
type ListenerID int

type listener[T any] struct {
	id       ListenerID
	callback func(T)
}

// Event is a multicast event carrying one value, e.g. a physics contact.
// The zero value is ready to use.
type Event[T any] struct {
	listeners []listener[T]
	nextID    ListenerID
}

// AddListener registers callback and returns its ID. A nil callback is ignored and gets ID 0.
func (e *Event[T]) AddListener(callback func(T)) ListenerID {
	if callback == nil {
		return 0
	}
	e.nextID++
	e.listeners = append(e.listeners, listener[T]{id: e.nextID, callback: callback})
	return e.nextID
}

// RemoveListener unregisters the listener with the given ID.
func (e *Event[T]) RemoveListener(id ListenerID) bool {
	for i, l := range e.listeners {
		if l.id == id {
			e.listeners = append(e.listeners[:i:i], e.listeners[i+1:]...)
			return true
		}
	}
	return false
}

func (e *Event[T]) RemoveAllListeners() {
	e.listeners = nil
}

// Invoke calls the listeners in registration order. Listeners added or removed
// during Invoke take effect on the next call.
func (e *Event[T]) Invoke(arg T) {
	for _, l := range e.listeners {
		l.callback(arg)
	}
}

func (e *Event[T]) ListenerCount() int {
	return len(e.listeners)
}
