package dom

import "sync"

// Window exposes the event currently being dispatched, the way
// https://html.spec.whatwg.org/#dom-window-event does.
type Window struct {
	mu      sync.RWMutex
	current any
}

func NewWindow() *Window {
	return &Window{}
}

// SetCurrentEvent installs e as the window's current event. Passing nil (or a
// nil *Event / *LegacyEvent) clears it.
func (w *Window) SetCurrentEvent(e any) {
	switch ev := e.(type) {
	case *Event:
		if ev == nil {
			e = nil
		}
	case *LegacyEvent:
		if ev == nil {
			e = nil
		}
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.current = e
}

// CurrentEvent returns the event being dispatched, or nil outside dispatch.
func (w *Window) CurrentEvent() any {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.current
}
