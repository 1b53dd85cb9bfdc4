package jdwp

import (
	"io"
	"net"
	"testing"
	"time"

	"github.com/jdwpgo/jdwpgo/jdwp/wire"
	"github.com/stretchr/testify/require"
)

// fakeDebuggee accepts one connection, performs the JDWP handshake, and lets
// the test script the rest of the exchange by reading/writing raw packets.
type fakeDebuggee struct {
	ln   net.Listener
	conn net.Conn
}

func startFakeDebuggee(t *testing.T) *fakeDebuggee {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	accepted := make(chan net.Conn, 1)
	go func() {
		conn, err := ln.Accept()
		if err == nil {
			accepted <- conn
		}
	}()

	f := &fakeDebuggee{ln: ln}
	t.Cleanup(func() {
		ln.Close()
		if f.conn != nil {
			f.conn.Close()
		}
	})

	go func() {
		conn := <-accepted
		buf := make([]byte, len(handshake))
		if _, err := io.ReadFull(conn, buf); err != nil {
			return
		}
		conn.Write(handshake)
		f.conn = conn
	}()

	return f
}

func (f *fakeDebuggee) addr() string { return f.ln.Addr().String() }

// readCommandPacket reads one command packet's header and body from the
// connection, blocking until it arrives.
func (f *fakeDebuggee) readCommandPacket(t *testing.T) (id uint32, cmd commandID, body []byte) {
	t.Helper()
	waitForConn(t, f)
	r := wire.NewReader(f.conn, wire.DefaultIDSizes)
	h, b, err := readPacket(r)
	require.NoError(t, err)
	require.False(t, h.isReply)
	return h.id, h.cmd, b
}

func waitForConn(t *testing.T, f *fakeDebuggee) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for f.conn == nil {
		if time.Now().After(deadline) {
			t.Fatal("timed out waiting for fake debuggee to accept connection")
		}
		time.Sleep(time.Millisecond)
	}
}

func (f *fakeDebuggee) writeReplyPacket(t *testing.T, id uint32, errCode ErrorCode, body []byte) {
	t.Helper()
	w := wire.NewWriter(f.conn, wire.DefaultIDSizes)
	require.NoError(t, w.WriteU32(uint32(packetHeaderSize+len(body))))
	require.NoError(t, w.WriteU32(id))
	require.NoError(t, w.WriteU8(flagsReply))
	require.NoError(t, w.WriteU16(uint16(errCode)))
	if len(body) > 0 {
		_, err := w.WriteRaw(body)
		require.NoError(t, err)
	}
	require.NoError(t, w.Flush())
}

func (f *fakeDebuggee) writeEventPacket(t *testing.T, body []byte) {
	t.Helper()
	w := wire.NewWriter(f.conn, wire.DefaultIDSizes)
	require.NoError(t, w.WriteU32(uint32(packetHeaderSize+len(body))))
	require.NoError(t, w.WriteU32(0))
	require.NoError(t, w.WriteU8(0))
	require.NoError(t, w.WriteU8(64))
	require.NoError(t, w.WriteU8(100))
	if len(body) > 0 {
		_, err := w.WriteRaw(body)
		require.NoError(t, err)
	}
	require.NoError(t, w.Flush())
}

func TestAttachPerformsHandshake(t *testing.T) {
	f := startFakeDebuggee(t)
	session, err := Attach(f.addr(), WithDialTimeout(time.Second))
	require.NoError(t, err)
	defer session.conn.Close()
	require.NotNil(t, session)
}

func TestVersionRoundTrip(t *testing.T) {
	f := startFakeDebuggee(t)
	session, err := Attach(f.addr(), WithDialTimeout(time.Second))
	require.NoError(t, err)
	defer session.conn.Close()

	done := make(chan VersionReply, 1)
	errCh := make(chan error, 1)
	go func() {
		v, err := session.Version()
		if err != nil {
			errCh <- err
			return
		}
		done <- v
	}()

	id, cmd, body := f.readCommandPacket(t)
	require.Equal(t, commandID{set: 1, command: 1}, cmd)
	require.Empty(t, body)

	replyBody := newByteBuffer()
	w := wire.NewWriter(replyBody, wire.DefaultIDSizes)
	require.NoError(t, w.WriteString("JVM debug interface"))
	require.NoError(t, w.WriteU32(1))
	require.NoError(t, w.WriteU32(6))
	require.NoError(t, w.WriteString("11.0.2"))
	require.NoError(t, w.WriteString("Test VM"))
	require.NoError(t, w.Flush())

	f.writeReplyPacket(t, id, ErrNone, replyBody.Bytes())

	select {
	case v := <-done:
		require.Equal(t, "JVM debug interface", v.Description)
		require.Equal(t, uint32(1), v.VersionMajor)
		require.Equal(t, uint32(6), v.VersionMinor)
		require.Equal(t, "11.0.2", v.VMVersion)
		require.Equal(t, "Test VM", v.VMName)
	case err := <-errCh:
		t.Fatalf("Version() returned error: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for Version() reply")
	}
}

func TestVersionReturnsHostError(t *testing.T) {
	f := startFakeDebuggee(t)
	session, err := Attach(f.addr(), WithDialTimeout(time.Second))
	require.NoError(t, err)
	defer session.conn.Close()

	errCh := make(chan error, 1)
	go func() {
		_, err := session.Version()
		errCh <- err
	}()

	id, _, _ := f.readCommandPacket(t)
	f.writeReplyPacket(t, id, ErrorCode(113), nil)

	select {
	case err := <-errCh:
		var hostErr *HostError
		require.ErrorAs(t, err, &hostErr)
		require.Equal(t, ErrorCode(113), hostErr.Code)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for Version() error")
	}
}

func TestEventsChannelDeliversComposite(t *testing.T) {
	f := startFakeDebuggee(t)
	session, err := Attach(f.addr(), WithDialTimeout(time.Second))
	require.NoError(t, err)
	defer session.conn.Close()

	waitForConn(t, f)

	body := newByteBuffer()
	w := wire.NewWriter(body, wire.DefaultIDSizes)
	require.NoError(t, w.WriteU8(uint8(SuspendNone)))
	require.NoError(t, w.WriteU32(1))
	require.NoError(t, w.WriteU8(uint8(EventVMDeath)))
	require.NoError(t, w.WriteI32(0)) // optional request_id absent
	require.NoError(t, w.Flush())

	f.writeEventPacket(t, body.Bytes())

	select {
	case composite := <-session.Events():
		require.Equal(t, SuspendNone, composite.SuspendPolicy)
		require.Len(t, composite.Events, 1)
		require.Equal(t, EventVMDeath, composite.Events[0].Kind)
		require.False(t, composite.Events[0].HasRequest)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for composite event")
	}
}

func TestDisposeClosesConnection(t *testing.T) {
	f := startFakeDebuggee(t)
	session, err := Attach(f.addr(), WithDialTimeout(time.Second))
	require.NoError(t, err)

	require.NoError(t, session.Dispose())

	err = session.checkDisposed()
	require.ErrorIs(t, err, ErrDisposed)
}
