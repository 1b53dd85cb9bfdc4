package jdwp

import "github.com/jdwpgo/jdwpgo/jdwp/wire"

type invokeInterfaceMethodRequest struct {
	Interface InterfaceID
	Thread    ThreadID
	Method    MethodID
	Arguments []Value
	Options   InvokeOptions
}

func (r invokeInterfaceMethodRequest) encode(w *wire.Writer) error {
	if err := r.Interface.encode(w); err != nil {
		return err
	}
	if err := r.Thread.encode(w); err != nil {
		return err
	}
	if err := r.Method.encode(w); err != nil {
		return err
	}
	if err := wire.WriteSlice(w, r.Arguments, func(w *wire.Writer, v Value) error { return v.encode(w) }); err != nil {
		return err
	}
	return w.WriteU32(uint32(r.Options))
}

// InvokeInterfaceMethod invokes a static interface method (non-static
// initializer) in thread, which must be suspended by an event. Available
// since JDWP version 1.8.
func (s *Session) InvokeInterfaceMethod(iface InterfaceID, thread ThreadID, method MethodID, args []Value, options InvokeOptions) (InvokeMethodReply, error) {
	req := invokeInterfaceMethodRequest{Interface: iface, Thread: thread, Method: method, Arguments: args, Options: options}
	return sendCommand(s, 5, 1, req, decodeInvokeMethodReply)
}
