/*
Copyright 2011-2026 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package rans

import (
	"fmt"
	"time"
)

// Event types fired by a Coder towards its Listener. There is no
// adaptive state here to report on, unlike a general-purpose codec, so
// the event set is narrow: the coder spills a word (push) or refills
// one (pop), and it terminates.
const (
	EvtRenormalizeOut = 0 // push_symbol spilled a word to buf
	EvtRenormalizeIn  = 1 // pop_symbol refilled state from buf
	EvtFinishEncoding = 2 // finish_encoding was called
	EvtFinishDecoding = 3 // finish_decoding was called
)

// Event describes one renormalization or termination step.
type Event struct {
	eventType int
	bufLen    int
	state     uint64
	eventTime time.Time
}

func newEvent(evtType, bufLen int, state uint64) *Event {
	return &Event{eventType: evtType, bufLen: bufLen, state: state, eventTime: time.Now()}
}

// Type returns the event type (one of the Evt* constants).
func (e *Event) Type() int {
	return e.eventType
}

// BufLen returns len(buf) at the time of the event.
func (e *Event) BufLen() int {
	return e.bufLen
}

// State returns the coder's 64-bit register at the time of the event.
func (e *Event) State() uint64 {
	return e.state
}

// Time returns when the event was generated.
func (e *Event) Time() time.Time {
	return e.eventTime
}

// String returns a human-readable representation of the event.
func (e *Event) String() string {
	t := ""

	switch e.eventType {
	case EvtRenormalizeOut:
		t = "RENORMALIZE_OUT"
	case EvtRenormalizeIn:
		t = "RENORMALIZE_IN"
	case EvtFinishEncoding:
		t = "FINISH_ENCODING"
	case EvtFinishDecoding:
		t = "FINISH_DECODING"
	}

	return fmt.Sprintf("{ \"type\":\"%s\", \"bufLen\":%d, \"state\":%d, \"time\":%d }",
		t, e.bufLen, e.state, e.eventTime.UnixNano()/1000000)
}

// Listener is implemented by observers of a Coder's renormalization
// and termination events. It is the coder's only observability hook:
// there is no adaptive state or compression ratio to log mid-stream,
// so a Listener exists purely for callers that want to trace buffer
// growth (e.g. to size a preallocated output buffer, or to debug a
// mismatched encode/decode pairing).
type Listener interface {
	ProcessEvent(evt *Event)
}

// notify calls l.ProcessEvent if l is non-nil. Coder methods use this
// instead of checking for a nil listener at every call site.
func notify(l Listener, evtType, bufLen int, state uint64) {
	if l == nil {
		return
	}

	l.ProcessEvent(newEvent(evtType, bufLen, state))
}
