package mac

// Stream buffers writes to an already-Init'd Engine and exposes them
// through io.Writer, computing the tag on demand via Sum. Grounded on the
// original library's MacStream convenience wrapper, which accepts an
// already-initialized Mac instance and buffers input in fixed-size chunks
// before feeding it to Update.
type Stream struct {
	engine Engine
	buf    []byte
}

// streamBufferSize mirrors MacStream's 64 KiB internal buffer.
const streamBufferSize = 64 * 1024

// NewStream wraps an already-initialized Engine (Init must have been
// called) in a buffered io.Writer.
func NewStream(engine Engine) *Stream {
	return &Stream{engine: engine, buf: make([]byte, 0, streamBufferSize)}
}

// Write buffers p, flushing to the underlying Engine's Update in
// streamBufferSize chunks.
func (s *Stream) Write(p []byte) (int, error) {
	total := len(p)
	for len(p) > 0 {
		n := copy(s.buf[len(s.buf):cap(s.buf)], p)
		s.buf = s.buf[:len(s.buf)+n]
		p = p[n:]
		if len(s.buf) == cap(s.buf) {
			if err := s.flush(); err != nil {
				return total - len(p), err
			}
		}
	}
	return total, nil
}

func (s *Stream) flush() error {
	if len(s.buf) == 0 {
		return nil
	}
	if err := s.engine.Update(s.buf); err != nil {
		return err
	}
	s.buf = s.buf[:0]
	return nil
}

// Sum flushes any buffered bytes and finalizes the underlying Engine,
// returning the authentication tag.
func (s *Stream) Sum() ([]byte, error) {
	if err := s.flush(); err != nil {
		return nil, err
	}
	return s.engine.Finalize()
}
