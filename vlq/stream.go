package vlq

import (
	"fmt"
	"io"

	"github.com/pi/bitvlq/bits"
)

// Stream decodes byte-aligned encodings from bytes pushed into it in
// chunks of any size. Next never blocks; it returns ErrInsufficient until
// enough bytes have been written to finish the next value.
type Stream struct {
	buf *bits.Buf
	rd  Reader
}

func NewStream() *Stream {
	return &Stream{buf: bits.NewBuf(nil)}
}

// Write queues p for decoding. It always accepts all of p.
func (s *Stream) Write(p []byte) (int, error) {
	s.buf.Append(p)
	return len(p), nil
}

// Next returns the next value, or an error matching ErrInsufficient if it
// has not fully arrived yet. Bits already taken are kept across calls.
func (s *Stream) Next() (uint64, error) {
	v, err := s.rd.Poll(s.buf)
	if err != nil {
		return 0, err
	}
	s.rd = Reader{}
	// skip padding; the last byte of the value is always fully buffered
	s.buf.SetPos((s.buf.Pos() + 7) &^ 7)
	s.buf.Compact()
	return v, nil
}

// Pending returns the number of buffered bits not yet handed to a value.
func (s *Stream) Pending() uint {
	return s.buf.Remaining()
}

// Partial reports whether a value has been started but not finished.
func (s *Stream) Partial() bool {
	return s.rd.Buffered() > 0
}

// Writer writes byte-aligned encodings to an io.Writer. The first error
// sticks and is returned by every later call.
type Writer struct {
	w   io.Writer
	err error
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (w *Writer) WriteUint64(v uint64) error {
	if w.err != nil {
		return w.err
	}
	e := Encode(v)
	data := e.Bytes()
	n, err := w.w.Write(data)
	if err != nil {
		w.err = err
		return err
	}
	if n != len(data) {
		w.err = io.ErrShortWrite
	}
	return w.err
}

func (w *Writer) Error() error {
	return w.err
}

// Scanner reads byte-aligned encodings from a blocking io.Reader.
type Scanner struct {
	r   io.Reader
	tmp [MaxEncodedLen]byte
}

func NewScanner(r io.Reader) *Scanner {
	return &Scanner{r: r}
}

// ReadUint64 reads one value. At a clean end of input it returns io.EOF;
// input that ends inside a value gives an error matching both
// ErrInsufficient and io.ErrUnexpectedEOF.
func (s *Scanner) ReadUint64() (uint64, error) {
	if _, err := io.ReadFull(s.r, s.tmp[:1]); err != nil {
		return 0, err
	}
	n := LengthOf(s.tmp[0])
	if _, err := io.ReadFull(s.r, s.tmp[1:n]); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return 0, fmt.Errorf("vlq: reading %d-byte value: %w: %w", n, ErrInsufficient, err)
	}
	return Decode(bits.NewBuf(s.tmp[:n]))
}
