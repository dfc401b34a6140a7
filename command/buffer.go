package command

import (
	"errors"
	"io"
	"sync"
)

// ErrEmpty is returned by Buffer.ReadByte when no bytes are ready but more may arrive
var ErrEmpty = errors.New("buffer empty")

// Buffer is a ByteBuffer filled by writes. It lets the non-blocking Poller read from host-side
// streams like stdin or a serial port that only offer blocking reads.
type Buffer struct {
	mtx    sync.Mutex
	data   []byte
	closed bool
}

var _ ByteBuffer = &Buffer{}

// Feed starts copying r into a new Buffer in the background. The Buffer is closed when r
// returns an error or io.EOF.
func Feed(r io.Reader) *Buffer {
	b := &Buffer{}
	go func() {
		_, _ = io.Copy(b, r)
		_ = b.Close()
	}()
	return b
}

func (b *Buffer) Write(p []byte) (int, error) {
	b.mtx.Lock()
	defer b.mtx.Unlock()

	if b.closed {
		return 0, io.ErrClosedPipe
	}
	b.data = append(b.data, p...)
	return len(p), nil
}

// Buffered returns the number of bytes ready to read
func (b *Buffer) Buffered() int {
	b.mtx.Lock()
	defer b.mtx.Unlock()
	return len(b.data)
}

func (b *Buffer) ReadByte() (byte, error) {
	b.mtx.Lock()
	defer b.mtx.Unlock()

	if len(b.data) == 0 {
		if b.closed {
			return 0, io.EOF
		}
		return 0, ErrEmpty
	}

	c := b.data[0]
	b.data = b.data[1:]
	return c, nil
}

// Close stops accepting writes. Bytes already buffered can still be read.
func (b *Buffer) Close() error {
	b.mtx.Lock()
	b.closed = true
	b.mtx.Unlock()
	return nil
}

// Drained reports whether the Buffer is closed and every byte has been read
func (b *Buffer) Drained() bool {
	b.mtx.Lock()
	defer b.mtx.Unlock()
	return b.closed && len(b.data) == 0
}
