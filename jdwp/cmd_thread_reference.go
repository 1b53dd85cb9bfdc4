package jdwp

import "github.com/jdwpgo/jdwpgo/jdwp/wire"

type threadRequest struct{ Thread ThreadID }

func (r threadRequest) encode(w *wire.Writer) error { return r.Thread.encode(w) }

// ThreadName returns thread's name.
func (s *Session) ThreadName(thread ThreadID) (string, error) {
	return sendCommand(s, 11, 1, threadRequest{Thread: thread}, (*wire.Reader).ReadString)
}

// SuspendThread suspends thread. Suspends are counted; a thread must be
// resumed as many times as it was suspended before it runs again.
func (s *Session) SuspendThread(thread ThreadID) (struct{}, error) {
	return sendCommand(s, 11, 2, threadRequest{Thread: thread}, decodeUnit)
}

// ResumeThread decrements thread's pending suspend count; it resumes
// executing once the count reaches zero. A no-op if not previously
// suspended by the front-end.
func (s *Session) ResumeThread(thread ThreadID) (struct{}, error) {
	return sendCommand(s, 11, 3, threadRequest{Thread: thread}, decodeUnit)
}

// ThreadStatusReply is thread's last-known running status together with
// its suspend status.
type ThreadStatusReply struct {
	ThreadStatus  ThreadStatus
	SuspendStatus SuspendStatus
}

func decodeThreadStatusReply(r *wire.Reader) (ThreadStatusReply, error) {
	var rep ThreadStatusReply
	ts, err := r.ReadU32()
	if err != nil {
		return rep, err
	}
	ss, err := r.ReadU32()
	rep.ThreadStatus = ThreadStatus(ts)
	rep.SuspendStatus = SuspendStatus(ss)
	return rep, err
}

// ThreadStatusAndSuspend returns thread's current running and suspend status.
func (s *Session) ThreadStatusAndSuspend(thread ThreadID) (ThreadStatusReply, error) {
	return sendCommand(s, 11, 4, threadRequest{Thread: thread}, decodeThreadStatusReply)
}

// ThreadGroup returns the thread group that contains thread.
func (s *Session) ThreadGroup(thread ThreadID) (ThreadGroupID, error) {
	return sendCommand(s, 11, 5, threadRequest{Thread: thread}, readThreadGroupID)
}

// FrameLimit bounds ThreadReference.Frames: a fixed count, or
// AllRemainingFrames. The wire encoding is a single i32, -1 meaning "all
// remaining".
type FrameLimit struct {
	Count        uint32
	AllRemaining bool
}

func LimitFrames(n uint32) FrameLimit { return FrameLimit{Count: n} }
func AllRemainingFrames() FrameLimit  { return FrameLimit{AllRemaining: true} }

func (l FrameLimit) encode(w *wire.Writer) error {
	if l.AllRemaining {
		return w.WriteI32(-1)
	}
	return w.WriteI32(int32(l.Count))
}

type framesRequest struct {
	Thread     ThreadID
	StartFrame uint32
	Limit      FrameLimit
}

func (r framesRequest) encode(w *wire.Writer) error {
	if err := r.Thread.encode(w); err != nil {
		return err
	}
	if err := w.WriteU32(r.StartFrame); err != nil {
		return err
	}
	return r.Limit.encode(w)
}

// StackFrame is one entry of ThreadReference.Frames' reply: a frame
// identifier paired with its current execution location.
type StackFrame struct {
	Frame    FrameID
	Location Location
}

func decodeStackFrame(r *wire.Reader) (StackFrame, error) {
	var f StackFrame
	var err error
	if f.Frame, err = readFrameID(r); err != nil {
		return f, err
	}
	f.Location, err = readLocation(r)
	return f, err
}

// Frames returns thread's call stack, starting with the currently
// executing frame. Thread must be suspended; returned frame IDs are valid
// only while it remains so.
func (s *Session) Frames(thread ThreadID, startFrame uint32, limit FrameLimit) ([]StackFrame, error) {
	req := framesRequest{Thread: thread, StartFrame: startFrame, Limit: limit}
	return sendCommand(s, 11, 6, req, func(r *wire.Reader) ([]StackFrame, error) {
		return wire.ReadSlice(r, decodeStackFrame)
	})
}

// FrameCount returns the number of frames on thread's stack. Thread must
// be suspended.
func (s *Session) FrameCount(thread ThreadID) (uint32, error) {
	return sendCommand(s, 11, 7, threadRequest{Thread: thread}, (*wire.Reader).ReadU32)
}

// OwnedMonitors returns the objects whose monitors thread currently holds.
// Thread must be suspended. Requires the CanGetOwnedMonitorInfo
// capability.
func (s *Session) OwnedMonitors(thread ThreadID) ([]TaggedObjectID, error) {
	return sendCommand(s, 11, 8, threadRequest{Thread: thread}, func(r *wire.Reader) ([]TaggedObjectID, error) {
		return wire.ReadSlice(r, readTaggedObjectID)
	})
}

// CurrentContendedMonitor returns the monitor thread is waiting to enter
// or waiting on, if any. Thread must be suspended. Requires the
// CanGetCurrentContendedMonitor capability.
func (s *Session) CurrentContendedMonitor(thread ThreadID) (TaggedObjectID, bool, error) {
	return sendCommand(s, 11, 9, threadRequest{Thread: thread}, readOptionalTaggedObjectID)
}

type stopThreadRequest struct {
	Thread    ThreadID
	Throwable TaggedObjectID
}

func (r stopThreadRequest) encode(w *wire.Writer) error {
	if err := r.Thread.encode(w); err != nil {
		return err
	}
	return r.Throwable.encode(w)
}

// StopThread stops thread with an asynchronous exception, as if by
// java.lang.Thread.stop. throwable must be a java.lang.Throwable or
// subclass instance.
func (s *Session) StopThread(thread ThreadID, throwable TaggedObjectID) (struct{}, error) {
	return sendCommand(s, 11, 10, stopThreadRequest{Thread: thread, Throwable: throwable}, decodeUnit)
}

// InterruptThread interrupts thread, as if by java.lang.Thread.interrupt.
func (s *Session) InterruptThread(thread ThreadID) (struct{}, error) {
	return sendCommand(s, 11, 11, threadRequest{Thread: thread}, decodeUnit)
}

// SuspendCount returns the number of outstanding suspends thread has
// accumulated across thread- and VM-level suspend commands.
func (s *Session) SuspendCount(thread ThreadID) (uint32, error) {
	return sendCommand(s, 11, 12, threadRequest{Thread: thread}, (*wire.Reader).ReadU32)
}

// StackDepth is the frame depth at which a monitor was acquired, or
// unknown (e.g. for monitors entered via JNI MonitorEnter).
type StackDepth struct {
	Depth   uint32
	Unknown bool
}

func readStackDepth(r *wire.Reader) (StackDepth, error) {
	v, err := r.ReadI32()
	if err != nil {
		return StackDepth{}, err
	}
	if v == -1 {
		return StackDepth{Unknown: true}, nil
	}
	return StackDepth{Depth: uint32(v)}, nil
}

// OwnedMonitorStackDepthInfo is one entry of
// ThreadReference.OwnedMonitorsStackDepthInfo's reply.
type OwnedMonitorStackDepthInfo struct {
	Monitor TaggedObjectID
	Depth   StackDepth
}

func decodeOwnedMonitorStackDepthInfo(r *wire.Reader) (OwnedMonitorStackDepthInfo, error) {
	var o OwnedMonitorStackDepthInfo
	var err error
	if o.Monitor, err = readTaggedObjectID(r); err != nil {
		return o, err
	}
	o.Depth, err = readStackDepth(r)
	return o, err
}

// OwnedMonitorsStackDepthInfo returns monitors thread owns along with the
// stack depth at which each was acquired. Thread must be suspended. Since
// JDWP version 1.6; requires the CanGetMonitorFrameInfo capability.
func (s *Session) OwnedMonitorsStackDepthInfo(thread ThreadID) ([]OwnedMonitorStackDepthInfo, error) {
	return sendCommand(s, 11, 13, threadRequest{Thread: thread}, func(r *wire.Reader) ([]OwnedMonitorStackDepthInfo, error) {
		return wire.ReadSlice(r, decodeOwnedMonitorStackDepthInfo)
	})
}

type forceEarlyReturnRequest struct {
	Thread ThreadID
	Value  Value
}

func (r forceEarlyReturnRequest) encode(w *wire.Writer) error {
	if err := r.Thread.encode(w); err != nil {
		return err
	}
	return r.Value.encode(w)
}

// ForceEarlyReturn forces thread's current method to return value
// immediately, skipping remaining instructions and finally blocks. Thread
// must be suspended; the called method must be non-native. Since JDWP
// version 1.6; requires the CanForceEarlyReturn capability.
func (s *Session) ForceEarlyReturn(thread ThreadID, value Value) (struct{}, error) {
	return sendCommand(s, 11, 14, forceEarlyReturnRequest{Thread: thread, Value: value}, decodeUnit)
}
