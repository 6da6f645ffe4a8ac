// Package webidl holds the WebIDL scalar types the dom host events are
// expressed in.
package webidl

import "time"

// https://heycam.github.io/webidl/#idl-DOMString
type DOMString string

// https://w3c.github.io/hr-time/#dom-domhighrestimestamp
type DOMHighResTimeStamp float64

// Since returns the milliseconds elapsed from origin as a
// DOMHighResTimeStamp.
func Since(origin time.Time) DOMHighResTimeStamp {
	return DOMHighResTimeStamp(float64(time.Since(origin).Microseconds()) / 1000)
}
