package jdwp

import (
	"fmt"
	"io"
	"net"
	"sync"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/jdwpgo/jdwpgo/jdwp/wire"
)

// handshake is the fixed 14-byte ASCII string both sides exchange before
// any packet traffic begins.
var handshake = []byte("JDWP-Handshake")

// Option configures a Session at construction time.
type Option func(*sessionConfig)

type sessionConfig struct {
	dialTimeout    time.Duration
	logger         hclog.Logger
	eventQueueSize int
}

// WithDialTimeout bounds how long Attach waits to establish the TCP
// connection and exchange the handshake.
func WithDialTimeout(d time.Duration) Option {
	return func(c *sessionConfig) { c.dialTimeout = d }
}

// WithLogger supplies a structured logger for session lifecycle and
// background-reader diagnostics. A nil logger (the default) discards them.
func WithLogger(l hclog.Logger) Option {
	return func(c *sessionConfig) { c.logger = l }
}

// WithEventQueueSize sets the buffered capacity of the Composite event
// channel. Once full, the background reader blocks delivering further
// packets until a consumer drains Events().
func WithEventQueueSize(n int) Option {
	return func(c *sessionConfig) { c.eventQueueSize = n }
}

type waiter chan waitResult

type waitResult struct {
	body []byte
	err  error
}

// Session multiplexes commands and asynchronous events over a single JDWP
// TCP connection. One background goroutine owns the read side; callers of
// the command methods contend only for the write-side mutex and a
// short-lived waiter channel.
type Session struct {
	conn   net.Conn
	logger hclog.Logger

	writeMu sync.Mutex
	wr      *wire.Writer

	waitersMu sync.Mutex
	waiters   map[uint32]waiter

	events chan Composite

	ids *xorshift32

	disposedMu sync.Mutex
	disposed   bool
	fatalErr   error

	readerDone chan struct{}
}

// Attach dials addr, performs the JDWP handshake, and starts the
// background reader. The returned Session's identifier widths default to
// 8 bytes each until a caller issues VirtualMachine.IDSizes and calls
// SetIDSizes with the result.
func Attach(addr string, opts ...Option) (*Session, error) {
	cfg := sessionConfig{
		dialTimeout:    10 * time.Second,
		eventQueueSize: 64,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = hclog.NewNullLogger()
	}

	conn, err := net.DialTimeout("tcp", addr, cfg.dialTimeout)
	if err != nil {
		return nil, fmt.Errorf("jdwp: dial %s: %w", addr, err)
	}

	if err := conn.SetDeadline(time.Now().Add(cfg.dialTimeout)); err != nil {
		conn.Close()
		return nil, fmt.Errorf("jdwp: set handshake deadline: %w", err)
	}
	if _, err := conn.Write(handshake); err != nil {
		conn.Close()
		return nil, fmt.Errorf("jdwp: write handshake: %w", err)
	}
	reply := make([]byte, len(handshake))
	if _, err := io.ReadFull(conn, reply); err != nil {
		conn.Close()
		return nil, fmt.Errorf("jdwp: read handshake: %w", err)
	}
	if string(reply) != string(handshake) {
		conn.Close()
		return nil, ErrFailedHandshake
	}
	if err := conn.SetDeadline(time.Time{}); err != nil {
		conn.Close()
		return nil, fmt.Errorf("jdwp: clear handshake deadline: %w", err)
	}

	s := &Session{
		conn:       conn,
		logger:     cfg.logger.Named("jdwp"),
		wr:         wire.NewWriter(conn, wire.DefaultIDSizes),
		waiters:    make(map[uint32]waiter),
		events:     make(chan Composite, cfg.eventQueueSize),
		ids:        newXorshift32(defaultRequestIDSeed),
		readerDone: make(chan struct{}),
	}

	go s.readLoop(wire.DefaultIDSizes)

	s.logger.Debug("attached", "addr", addr)
	return s, nil
}

// SetIDSizes updates the identifier widths used to encode and decode every
// subsequent packet. Call this once, right after issuing
// VirtualMachine.IDSizes, before any command that carries an identifier.
func (s *Session) SetIDSizes(sizes wire.IDSizes) {
	s.writeMu.Lock()
	s.wr.IDSizes = sizes
	s.writeMu.Unlock()
}

// Events returns the channel Composite events are delivered on.
func (s *Session) Events() <-chan Composite { return s.events }

func (s *Session) nextRequestID() uint32 {
	return s.ids.next()
}

// send writes a command packet and, unless the command is Dispose, blocks
// for its reply. encode may be nil for commands with no request fields.
func (s *Session) send(cmd commandID, encode func(*wire.Writer) error, isDispose bool) ([]byte, error) {
	if err := s.checkDisposed(); err != nil {
		return nil, err
	}

	id := s.nextRequestID()

	var w waiter
	if !isDispose {
		w = make(waiter, 1)
		s.waitersMu.Lock()
		s.waiters[id] = w
		s.waitersMu.Unlock()
	}

	s.writeMu.Lock()
	writeErr := s.writePacket(id, cmd, encode)
	if writeErr == nil {
		writeErr = s.wr.Flush()
	}
	s.writeMu.Unlock()

	if writeErr != nil {
		if !isDispose {
			s.waitersMu.Lock()
			delete(s.waiters, id)
			s.waitersMu.Unlock()
		}
		s.poison(writeErr)
		return nil, &TransportError{Err: writeErr}
	}

	if isDispose {
		s.teardown()
		return nil, nil
	}

	result := <-w
	return result.body, result.err
}

func (s *Session) writePacket(id uint32, cmd commandID, encode func(*wire.Writer) error) error {
	var body []byte
	if encode != nil {
		buf := newByteBuffer()
		bw := wire.NewWriter(buf, s.wr.IDSizes)
		if err := encode(bw); err != nil {
			return err
		}
		if err := bw.Flush(); err != nil {
			return err
		}
		body = buf.Bytes()
	}

	if err := s.wr.WriteU32(uint32(packetHeaderSize + len(body))); err != nil {
		return err
	}
	if err := s.wr.WriteU32(id); err != nil {
		return err
	}
	if err := s.wr.WriteU8(0); err != nil { // flags: command packet
		return err
	}
	if err := s.wr.WriteU8(cmd.set); err != nil {
		return err
	}
	if err := s.wr.WriteU8(cmd.command); err != nil {
		return err
	}
	if len(body) == 0 {
		return nil
	}
	_, err := s.wr.WriteRaw(body)
	return err
}

// readLoop is the single background goroutine that owns the read side of
// the connection: it decodes one packet at a time, routes Composite events
// to the events channel, and delivers replies to their waiter.
func (s *Session) readLoop(sizes wire.IDSizes) {
	defer close(s.readerDone)
	defer close(s.events)

	r := wire.NewReader(s.conn, sizes)
	for {
		r.IDSizes = s.currentIDSizes()
		header, body, err := readPacket(r)
		if err != nil {
			s.poison(err)
			s.failAllWaiters(&TransportError{Err: err})
			return
		}

		if !header.isReply {
			if header.cmd == (commandID{set: 64, command: 100}) {
				rr := wire.NewReader(newByteReader(body), r.IDSizes)
				composite, err := readComposite(rr)
				if err != nil {
					s.logger.Warn("failed to decode composite event", "error", err)
					continue
				}
				if n := rr.BytesRead(); n != len(body) {
					s.logger.Warn("surplus data in composite event", "expected", n, "actual", len(body))
				}
				select {
				case s.events <- composite:
				case <-s.readerDone:
					return
				}
				continue
			}
			s.logger.Debug("discarding unexpected host command",
				"set", header.cmd.set, "command", header.cmd.command)
			continue
		}

		s.waitersMu.Lock()
		w, ok := s.waiters[header.id]
		if ok {
			delete(s.waiters, header.id)
		}
		s.waitersMu.Unlock()

		if !ok {
			s.logger.Debug("discarding reply with no waiter", "id", header.id)
			continue
		}

		if header.errCode != ErrNone {
			w <- waitResult{err: &HostError{Code: header.errCode}}
			continue
		}
		w <- waitResult{body: body}
	}
}

func (s *Session) currentIDSizes() wire.IDSizes {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.wr.IDSizes
}

func readPacket(r *wire.Reader) (packetHeader, []byte, error) {
	length, err := r.ReadU32()
	if err != nil {
		return packetHeader{}, nil, err
	}
	id, err := r.ReadU32()
	if err != nil {
		return packetHeader{}, nil, err
	}
	flags, err := r.ReadU8()
	if err != nil {
		return packetHeader{}, nil, err
	}
	h := packetHeader{length: length, id: id}
	if flags&flagsReply != 0 {
		h.isReply = true
		code, err := r.ReadU16()
		if err != nil {
			return packetHeader{}, nil, err
		}
		h.errCode = ErrorCode(code)
	} else {
		set, err := r.ReadU8()
		if err != nil {
			return packetHeader{}, nil, err
		}
		command, err := r.ReadU8()
		if err != nil {
			return packetHeader{}, nil, err
		}
		h.cmd = commandID{set: set, command: command}
	}

	n := h.bodyLength()
	body := make([]byte, n)
	for read := 0; read < n; {
		b, err := r.ReadByte()
		if err != nil {
			return packetHeader{}, nil, err
		}
		body[read] = b
		read++
	}
	return h, body, nil
}

func (s *Session) failAllWaiters(err error) {
	s.waitersMu.Lock()
	waiters := s.waiters
	s.waiters = make(map[uint32]waiter)
	s.waitersMu.Unlock()

	for _, w := range waiters {
		w <- waitResult{err: err}
	}
}

func (s *Session) checkDisposed() error {
	s.disposedMu.Lock()
	defer s.disposedMu.Unlock()
	if s.disposed {
		if s.fatalErr != nil {
			err := s.fatalErr
			s.fatalErr = nil
			return err
		}
		return ErrDisposed
	}
	return nil
}

func (s *Session) poison(err error) {
	s.disposedMu.Lock()
	defer s.disposedMu.Unlock()
	if !s.disposed {
		s.disposed = true
		s.fatalErr = err
		s.logger.Error("session poisoned by transport error", "error", err)
	}
}

func (s *Session) teardown() {
	s.disposedMu.Lock()
	s.disposed = true
	s.disposedMu.Unlock()
	s.logger.Debug("session disposed")

	if tc, ok := s.conn.(*net.TCPConn); ok {
		tc.CloseRead()
		tc.CloseWrite()
	}
	s.conn.Close()
}

// Dispose sends the VirtualMachine Dispose command and tears the
// connection down without waiting for a reply, since the host may not
// send one once disposal begins. Any bytes that arrive before the reader
// goroutine observes the closed socket are discarded.
func (s *Session) Dispose() error {
	_, err := s.send(commandID{set: 1, command: 6}, nil, true)
	return err
}
