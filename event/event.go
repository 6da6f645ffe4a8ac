// Package event provides the event object handed to listeners by a
// dispatcher. An Event carries a type and payload, and lets listeners
// suppress the default action or stop propagation to the listeners after
// them. Events are built from raw arguments with New (or the named
// constructors) or by wrapping a host event with FromHostEvent.
//
// An Event is meant to be used by one dispatch at a time: listeners run
// sequentially and the flags carry no synchronization.
package event

import (
	"fmt"
	"sort"
	"strings"
)

// Event is the normalized event object.
type Event struct {
	// Type selects the listeners. Empty means no type was supplied.
	Type string
	// Data is the payload given as a non-object argument, or the "data"
	// field of a data object.
	Data any
	// Fields holds the remaining fields copied from a data object.
	Fields map[string]any

	defaultPrevented            bool
	propagationStopped          bool
	immediatePropagationStopped bool

	host     any
	bindings *hostBindings
}

// New builds an Event from one of three call conventions:
//
//	New(type, data) // explicit type and payload
//	New(object)     // object's "type" field becomes the type, other fields are copied
//	New(type)       // type only
//
// If exactly one argument is supplied and it is an object (a map with string
// keys, a struct or a pointer to a struct), it is reinterpreted as
// {type, ...data}. Otherwise the first argument is the type and the second,
// if present, is the data. Arguments past the second are ignored.
//
// Data that is an object has its fields shallow-copied onto the event; data
// that is any other truthy value is stored in Data; falsy data (nil, false,
// zero, "", nil slices and the like) sets nothing. A type resolved from the
// arguments is assigned last, so it wins over a "type" field of the data.
func New(args ...any) *Event {
	if len(args) == 1 && isObject(args[0]) {
		return build("", args[0])
	}

	var (
		typ  string
		data any
	)
	if len(args) > 0 {
		typ, _ = asString(args[0])
	}
	if len(args) > 1 {
		data = args[1]
	}
	return build(typ, data)
}

// NewType builds an Event with a type and no payload.
func NewType(typ string) *Event {
	return build(typ, nil)
}

// NewWithData builds an Event with an explicit type and payload.
func NewWithData(typ string, data any) *Event {
	return build(typ, data)
}

// FromObject builds an Event from a single data object. Non-object values are
// stored as the payload of an untyped event.
func FromObject(obj any) *Event {
	return build("", obj)
}

func build(typ string, data any) *Event {
	e := &Event{}
	if fields, fromStruct, ok := objectFields(data); ok {
		e.assign(fields, fromStruct)
	} else if truthy(data) {
		e.Data = data
	}

	if typ != "" {
		e.Type = typ
	}
	return e
}

// assign copies fields onto the event in key order. Map keys are matched
// against "type" and "data" exactly; fields flattened from a struct carry Go
// field names, so there the match folds case and the later key wins.
func (e *Event) assign(fields map[string]any, foldCase bool) {
	matches := func(k, name string) bool {
		if foldCase {
			return strings.EqualFold(k, name)
		}
		return k == name
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		v := fields[k]
		switch {
		case matches(k, "type"):
			if s, ok := asString(v); ok {
				e.Type = s
				continue
			}
		case matches(k, "data"):
			e.Data = v
			continue
		}

		if e.Fields == nil {
			e.Fields = make(map[string]any, len(fields))
		}
		e.Fields[k] = v
	}
}

func (e *Event) IsDefaultPrevented() bool            { return e.defaultPrevented }
func (e *Event) IsPropagationStopped() bool          { return e.propagationStopped }
func (e *Event) IsImmediatePropagationStopped() bool { return e.immediatePropagationStopped }

// PreventDefault marks the default action as suppressed. On an adapted event
// the host event is cancelled first.
func (e *Event) PreventDefault() {
	if e.bindings != nil {
		e.bindings.preventDefault()
	}
	e.defaultPrevented = true
}

// StopPropagation keeps the event from reaching further listeners. On an
// adapted event the host event is stopped first.
func (e *Event) StopPropagation() {
	if e.bindings != nil {
		e.bindings.stopPropagation()
	}
	e.stopPropagation()
}

// StopImmediatePropagation stops propagation and also skips the remaining
// listeners of the current target. On an adapted event only the host's
// immediate stop is invoked; the propagation half sets the in-memory flag.
func (e *Event) StopImmediatePropagation() {
	if e.bindings != nil {
		e.bindings.stopImmediatePropagation()
	}
	e.immediatePropagationStopped = true
	e.stopPropagation()
}

func (e *Event) stopPropagation() {
	e.propagationStopped = true
}

// Host returns the host event wrapped by FromHostEvent, or nil.
func (e *Event) Host() any {
	return e.host
}

// Get reads an own property of the event: "type", "data" or a copied field.
func (e *Event) Get(key string) (any, bool) {
	switch key {
	case "type":
		if e.Type != "" {
			return e.Type, true
		}
	case "data":
		if e.Data != nil {
			return e.Data, true
		}
	}

	v, ok := e.Fields[key]
	return v, ok
}

// Properties returns the event's own properties as a new map.
func (e *Event) Properties() map[string]any {
	props := make(map[string]any, len(e.Fields)+2)
	for k, v := range e.Fields {
		props[k] = v
	}
	if e.Type != "" {
		props["type"] = e.Type
	}
	if e.Data != nil {
		props["data"] = e.Data
	}
	return props
}

func (e *Event) String() string {
	return fmt.Sprintf("[Event type=%s]", e.Type)
}
