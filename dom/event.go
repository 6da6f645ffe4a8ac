// Package dom provides the host-side event objects a browser environment
// hands to script: the WHATWG Event interface, the flag-only event object of
// older hosts, and the window that exposes the event being dispatched.
package dom

import (
	"fmt"
	"time"

	"github.com/heathj/minievent/webidl"
)

type EventPhase uint16

const (
	NoneEventPhase EventPhase = iota
	CapturingPhase
	AtTargetPhase
	BubblingPhase
)

func (p EventPhase) String() string {
	switch p {
	case CapturingPhase:
		return "capturing"
	case AtTargetPhase:
		return "at-target"
	case BubblingPhase:
		return "bubbling"
	default:
		return "none"
	}
}

// EventInit is https://dom.spec.whatwg.org/#dictdef-eventinit
type EventInit struct {
	Bubbles    bool
	Cancelable bool
	Composed   bool
}

var timeOrigin = time.Now()

// https://dom.spec.whatwg.org/#interface-event
type Event struct {
	eventType  webidl.DOMString
	eventPhase EventPhase
	bubbles    bool
	cancelable bool
	composed   bool
	isTrusted  bool
	timeStamp  webidl.DOMHighResTimeStamp

	stopPropagationFlag          bool
	stopImmediatePropagationFlag bool
	canceledFlag                 bool
	initializedFlag              bool
	dispatchFlag                 bool
}

// NewEvent is https://dom.spec.whatwg.org/#dom-event-event
func NewEvent(eventType webidl.DOMString, init EventInit) *Event {
	e := &Event{timeStamp: webidl.Since(timeOrigin)}
	e.initialize(eventType, init.Bubbles, init.Cancelable)
	e.composed = init.Composed
	return e
}

// https://dom.spec.whatwg.org/#concept-event-initialize
func (e *Event) initialize(eventType webidl.DOMString, bubbles, cancelable bool) {
	e.initializedFlag = true
	e.stopPropagationFlag = false
	e.stopImmediatePropagationFlag = false
	e.canceledFlag = false
	e.isTrusted = false
	e.eventType = eventType
	e.bubbles = bubbles
	e.cancelable = cancelable
}

func (e *Event) Type() webidl.DOMString                { return e.eventType }
func (e *Event) EventPhase() EventPhase                { return e.eventPhase }
func (e *Event) Bubbles() bool                         { return e.bubbles }
func (e *Event) Cancelable() bool                      { return e.cancelable }
func (e *Event) Composed() bool                        { return e.composed }
func (e *Event) IsTrusted() bool                       { return e.isTrusted }
func (e *Event) TimeStamp() webidl.DOMHighResTimeStamp { return e.timeStamp }
func (e *Event) DefaultPrevented() bool                { return e.canceledFlag }

// StopPropagation is https://dom.spec.whatwg.org/#dom-event-stoppropagation
func (e *Event) StopPropagation() { e.stopPropagationFlag = true }

// StopImmediatePropagation is https://dom.spec.whatwg.org/#dom-event-stopimmediatepropagation
func (e *Event) StopImmediatePropagation() {
	e.stopPropagationFlag = true
	e.stopImmediatePropagationFlag = true
}

// ImmediatePropagationStopped reports the stop immediate propagation flag.
// Dispatchers read it between listeners.
func (e *Event) ImmediatePropagationStopped() bool { return e.stopImmediatePropagationFlag }

// CancelBubble is https://dom.spec.whatwg.org/#dom-event-cancelbubble
func (e *Event) CancelBubble() bool { return e.stopPropagationFlag }

// SetCancelBubble only ever sets the flag; assigning false is ignored.
func (e *Event) SetCancelBubble(v bool) {
	if v {
		e.stopPropagationFlag = true
	}
}

// PreventDefault is https://dom.spec.whatwg.org/#dom-event-preventdefault
func (e *Event) PreventDefault() { e.setCanceledFlag() }

// ReturnValue is https://dom.spec.whatwg.org/#dom-event-returnvalue
func (e *Event) ReturnValue() bool { return !e.canceledFlag }

// SetReturnValue cancels the event when v is false; true is ignored.
func (e *Event) SetReturnValue(v bool) {
	if !v {
		e.setCanceledFlag()
	}
}

// https://dom.spec.whatwg.org/#set-the-canceled-flag
func (e *Event) setCanceledFlag() {
	if e.cancelable {
		e.canceledFlag = true
	}
}

// InitEvent is https://dom.spec.whatwg.org/#dom-event-initevent
// It does nothing while the event is being dispatched.
func (e *Event) InitEvent(eventType webidl.DOMString, bubbles, cancelable bool) {
	if e.dispatchFlag {
		return
	}
	e.initialize(eventType, bubbles, cancelable)
}

// BeginDispatch marks the event as being dispatched at its target.
func (e *Event) BeginDispatch(trusted bool) {
	e.dispatchFlag = true
	e.isTrusted = trusted
	e.eventPhase = AtTargetPhase
}

// EndDispatch resets the dispatch state the way step 12 of
// https://dom.spec.whatwg.org/#concept-event-dispatch does.
func (e *Event) EndDispatch() {
	e.eventPhase = NoneEventPhase
	e.dispatchFlag = false
	e.stopPropagationFlag = false
	e.stopImmediatePropagationFlag = false
}

func (e *Event) String() string {
	return fmt.Sprintf("[Event type=%s phase=%s]", e.eventType, e.eventPhase)
}
