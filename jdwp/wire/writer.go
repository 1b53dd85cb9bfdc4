package wire

import (
	"bufio"
	"encoding/binary"
	"io"
	"math"
)

// Writer encodes JDWP primitives to a byte stream in big-endian order.
type Writer struct {
	w       *bufio.Writer
	IDSizes IDSizes
}

func NewWriter(w io.Writer, sizes IDSizes) *Writer {
	return &Writer{w: bufio.NewWriter(w), IDSizes: sizes}
}

func (w *Writer) Flush() error { return w.w.Flush() }

func (w *Writer) WriteByte(b byte) error { return w.w.WriteByte(b) }

func (w *Writer) WriteBool(v bool) error {
	if v {
		return w.WriteByte(1)
	}
	return w.WriteByte(0)
}

func (w *Writer) WriteU8(v uint8) error { return w.WriteByte(v) }

func (w *Writer) WriteI8(v int8) error { return w.WriteByte(byte(v)) }

func (w *Writer) WriteU16(v uint16) error {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], v)
	_, err := w.w.Write(buf[:])
	return err
}

func (w *Writer) WriteI16(v int16) error { return w.WriteU16(uint16(v)) }

func (w *Writer) WriteU32(v uint32) error {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], v)
	_, err := w.w.Write(buf[:])
	return err
}

func (w *Writer) WriteI32(v int32) error { return w.WriteU32(uint32(v)) }

func (w *Writer) WriteU64(v uint64) error {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	_, err := w.w.Write(buf[:])
	return err
}

func (w *Writer) WriteI64(v int64) error { return w.WriteU64(uint64(v)) }

func (w *Writer) WriteF32(v float32) error { return w.WriteU32(math.Float32bits(v)) }

func (w *Writer) WriteF64(v float64) error { return w.WriteU64(math.Float64bits(v)) }

// WriteID writes v using the given identifier byte width (1..8), truncating
// to the low `width` bytes the way every negotiated-width ID field does.
func (w *Writer) WriteID(width int, v uint64) error {
	buf := make([]byte, width)
	for i := width - 1; i >= 0; i-- {
		buf[i] = byte(v)
		v >>= 8
	}
	_, err := w.w.Write(buf)
	return err
}

// WriteRaw writes b verbatim, with no length prefix.
func (w *Writer) WriteRaw(b []byte) (int, error) { return w.w.Write(b) }

// WriteString writes a u32-length-prefixed UTF-8 string.
func (w *Writer) WriteString(s string) error {
	if err := w.WriteU32(uint32(len(s))); err != nil {
		return err
	}
	_, err := w.w.Write([]byte(s))
	return err
}

// WriteSlice writes a u32-length-prefixed homogeneous collection.
func WriteSlice[T any](w *Writer, items []T, encodeOne func(*Writer, T) error) error {
	if err := w.WriteU32(uint32(len(items))); err != nil {
		return err
	}
	for _, item := range items {
		if err := encodeOne(w, item); err != nil {
			return err
		}
	}
	return nil
}
