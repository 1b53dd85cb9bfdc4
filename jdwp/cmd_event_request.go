package jdwp

import "github.com/jdwpgo/jdwpgo/jdwp/wire"

type setEventRequest struct {
	EventKind     EventKind
	SuspendPolicy SuspendPolicy
	Modifiers     []Modifier
}

func (r setEventRequest) encode(w *wire.Writer) error {
	if err := w.WriteU8(uint8(r.EventKind)); err != nil {
		return err
	}
	if err := w.WriteU8(uint8(r.SuspendPolicy)); err != nil {
		return err
	}
	return wire.WriteSlice(w, r.Modifiers, func(w *wire.Writer, m Modifier) error { return m.encode(w) })
}

// SetEventRequest requests that the target VM report occurrences of
// eventKind, suspending as described by suspendPolicy, restricted by
// modifiers (applied in order; an event is reported only if it satisfies
// all of them). Returns the RequestID needed to clear the request later,
// and to correlate Composite events back to it.
//
// The VM Start and VM Death events are generated automatically and cannot
// be requested through this command.
func (s *Session) SetEventRequest(eventKind EventKind, suspendPolicy SuspendPolicy, modifiers []Modifier) (RequestID, error) {
	req := setEventRequest{EventKind: eventKind, SuspendPolicy: suspendPolicy, Modifiers: modifiers}
	return sendCommand(s, 15, 1, req, readRequestID)
}

type clearEventRequest struct {
	EventKind EventKind
	Request   RequestID
}

func (r clearEventRequest) encode(w *wire.Writer) error {
	if err := w.WriteU8(uint8(r.EventKind)); err != nil {
		return err
	}
	return r.Request.encode(w)
}

// ClearEventRequest clears a previously set event request matching both
// eventKind and request. A no-op, not an error, if no such request exists.
// Automatically generated events have no corresponding request and cannot
// be cleared this way.
func (s *Session) ClearEventRequest(eventKind EventKind, request RequestID) (struct{}, error) {
	return sendCommand(s, 15, 2, clearEventRequest{EventKind: eventKind, Request: request}, decodeUnit)
}

// ClearAllBreakpoints removes every set breakpoint. A no-op if none are set.
func (s *Session) ClearAllBreakpoints() (struct{}, error) {
	return sendCommand(s, 15, 3, nil, decodeUnit)
}
