package command

import (
	"io"

	"github.com/designmakeandteach/tinysorter"
)

// Source provides the most recent command digit received from the detector
type Source interface {
	// Poll returns the last digit received since the previous call. ok is false when nothing
	// arrived or nothing that arrived was a digit.
	Poll() (digit byte, ok bool)
}

// ByteBuffer is a byte input that can report how many bytes are ready. TinyGo's machine.Serial
// satisfies this.
type ByteBuffer interface {
	Buffered() int
	ReadByte() (byte, error)
}

// Poller is a non-blocking Source. Every Poll drains all buffered bytes and keeps only the last
// digit, so older commands that were never acted on are dropped.
type Poller struct {
	buf ByteBuffer
}

var _ Source = &Poller{}

func NewPoller(buf ByteBuffer) *Poller {
	return &Poller{buf: buf}
}

// Poll implements Source. It never waits for input.
func (p *Poller) Poll() (byte, bool) {
	var digit byte
	var ok bool

	for n := p.buf.Buffered(); n > 0; n = p.buf.Buffered() {
		for i := 0; i < n; i++ {
			b, err := p.buf.ReadByte()
			if err != nil {
				return digit, ok
			}
			if tinysorter.IsDigit(b) {
				digit, ok = b, true
			}
		}
	}

	return digit, ok
}

// LineReader is a blocking Source for boards without a buffered-count primitive. Poll waits
// for a full newline-terminated line and then applies the same last-digit rule as Poller.
type LineReader struct {
	r io.ByteReader
}

var _ Source = &LineReader{}

func NewLineReader(r io.ByteReader) *LineReader {
	return &LineReader{r: r}
}

// Poll implements Source. Read errors other than io.EOF are retried because the TinyGo serial
// driver returns an error while its buffer is empty. io.EOF ends the line early.
func (l *LineReader) Poll() (byte, bool) {
	var digit byte
	var ok bool

	for {
		c, err := l.r.ReadByte()
		if err == io.EOF {
			return digit, ok
		}
		if err != nil {
			continue
		}
		if c == '\n' {
			return digit, ok
		}
		if tinysorter.IsDigit(c) {
			digit, ok = c, true
		}
	}
}
