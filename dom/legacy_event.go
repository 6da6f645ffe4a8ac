package dom

import (
	"fmt"

	"github.com/heathj/minievent/webidl"
)

// LegacyEvent is the event object of hosts that predate DOM Level 2 events.
// It has no cancellation methods; script cancels by assigning ReturnValue
// and CancelBubble.
type LegacyEvent struct {
	Type         webidl.DOMString
	ReturnValue  bool
	CancelBubble bool
}

func NewLegacyEvent(eventType webidl.DOMString) *LegacyEvent {
	return &LegacyEvent{
		Type:        eventType,
		ReturnValue: true,
	}
}

func (e *LegacyEvent) SetReturnValue(v bool)  { e.ReturnValue = v }
func (e *LegacyEvent) SetCancelBubble(v bool) { e.CancelBubble = v }

func (e *LegacyEvent) String() string {
	return fmt.Sprintf("[LegacyEvent type=%s returnValue=%t cancelBubble=%t]", e.Type, e.ReturnValue, e.CancelBubble)
}
