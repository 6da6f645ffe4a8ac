package event

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Host events are detected by capability. Method-based hosts implement the
// first three interfaces; legacy hosts only accept returnValue and
// cancelBubble assignments, either through the setters or as keys of a
// map[string]any. A map host may also carry its methods as func() values
// under "preventDefault", "stopPropagation" and "stopImmediatePropagation".
type (
	DefaultPreventer interface {
		PreventDefault()
	}
	PropagationStopper interface {
		StopPropagation()
	}
	ImmediatePropagationStopper interface {
		StopImmediatePropagation()
	}
	ReturnValueSetter interface {
		SetReturnValue(bool)
	}
	CancelBubbleSetter interface {
		SetCancelBubble(bool)
	}
)

const (
	returnValueKey  = "returnValue"
	cancelBubbleKey = "cancelBubble"
)

// Environment gives access to the host's ambient current event, the
// equivalent of window.event. CurrentEvent may return nil.
type Environment interface {
	CurrentEvent() any
}

// EnvironmentFunc adapts a function to an Environment.
type EnvironmentFunc func() any

func (f EnvironmentFunc) CurrentEvent() any { return f() }

// hostBindings are installed on each adapted Event and close over its host.
type hostBindings struct {
	preventDefault           func()
	stopPropagation          func()
	stopImmediatePropagation func()
}

// Adapter wraps host events into Events.
type Adapter struct {
	env    Environment
	logger logrus.FieldLogger
}

func NewAdapter(opts ...Option) *Adapter {
	a := &Adapter{logger: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

var defaultAdapter = NewAdapter()

// FromHostEvent wraps host with the default Adapter, which has no
// Environment.
func FromHostEvent(host any, args ...any) *Event {
	return defaultAdapter.FromHostEvent(host, args...)
}

// FromHostEvent builds an Event from args (see New) whose cancellation
// methods also act on host. A nil host falls back to the Adapter's
// Environment; if that yields nothing too, only the Event's own flags change.
//
// PreventDefault calls the host's PreventDefault, or sets its returnValue to
// false. StopPropagation calls the host's StopPropagation, or sets its
// cancelBubble to true. StopImmediatePropagation calls the host's
// StopImmediatePropagation if it has one and is skipped otherwise; it never
// calls the host's StopPropagation.
func (a *Adapter) FromHostEvent(host any, args ...any) *Event {
	if isNil(host) {
		host = nil
		if !isNil(a.env) {
			host = a.env.CurrentEvent()
			if isNil(host) {
				host = nil
			}
		}
	}

	e := New(args...)
	e.host = host

	log := a.logger
	e.bindings = &hostBindings{
		preventDefault:           func() { preventHostDefault(host, log) },
		stopPropagation:          func() { stopHostPropagation(host, log) },
		stopImmediatePropagation: func() { stopHostImmediatePropagation(host, log) },
	}
	return e
}

// debugHost is only reached from the fallback branches, and skips formatting
// when the logger reports debug as disabled.
func debugHost(log logrus.FieldLogger, host any, method, msg string) {
	if l, ok := log.(interface{ IsLevelEnabled(logrus.Level) bool }); ok && !l.IsLevelEnabled(logrus.DebugLevel) {
		return
	}
	log.WithFields(logrus.Fields{
		"host":   fmt.Sprintf("%T", host),
		"method": method,
	}).Debug(msg)
}

func preventHostDefault(host any, log logrus.FieldLogger) {
	switch h := host.(type) {
	case nil:
		debugHost(log, host, "PreventDefault", "no host event")
	case DefaultPreventer:
		h.PreventDefault()
	case ReturnValueSetter:
		h.SetReturnValue(false)
	case map[string]any:
		if !callMethod(h, "preventDefault") {
			h[returnValueKey] = false
		}
	default:
		debugHost(log, host, "PreventDefault", "host event cannot be cancelled")
	}
}

func stopHostPropagation(host any, log logrus.FieldLogger) {
	switch h := host.(type) {
	case nil:
		debugHost(log, host, "StopPropagation", "no host event")
	case PropagationStopper:
		h.StopPropagation()
	case CancelBubbleSetter:
		h.SetCancelBubble(true)
	case map[string]any:
		if !callMethod(h, "stopPropagation") {
			h[cancelBubbleKey] = true
		}
	default:
		debugHost(log, host, "StopPropagation", "host event cannot be stopped")
	}
}

func stopHostImmediatePropagation(host any, log logrus.FieldLogger) {
	switch h := host.(type) {
	case ImmediatePropagationStopper:
		h.StopImmediatePropagation()
		return
	case map[string]any:
		if callMethod(h, "stopImmediatePropagation") {
			return
		}
	}
	debugHost(log, host, "StopImmediatePropagation", "host event has no immediate stop, skipping")
}

// callMethod invokes a func() stored under name in a map host, the shape a
// script object with methods takes once decoded into Go.
func callMethod(h map[string]any, name string) bool {
	fn, ok := h[name].(func())
	if !ok || fn == nil {
		return false
	}
	fn()
	return true
}
