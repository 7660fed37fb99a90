package ini

import (
	"bufio"
	"bytes"
	"errors"
	"io"
)

const defaultBufferSize = 2048

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// =========================
// Line Buffer
// =========================

// lineBuffer accumulates one line. Its capacity starts at a fixed size and
// doubles whenever a write would overflow it, so no line is ever truncated.
type lineBuffer struct {
	buf []byte
	n   int
}

func newLineBuffer(size int) *lineBuffer {
	if size <= 0 {
		size = defaultBufferSize
	}
	return &lineBuffer{buf: make([]byte, size)}
}

func (b *lineBuffer) grow(need int) {
	size := len(b.buf)
	if size >= need {
		return
	}
	for size < need {
		size *= 2
	}
	next := make([]byte, size)
	copy(next, b.buf[:b.n])
	b.buf = next
}

func (b *lineBuffer) writeByte(c byte) {
	b.grow(b.n + 1)
	b.buf[b.n] = c
	b.n++
}

func (b *lineBuffer) write(p []byte) {
	b.grow(b.n + len(p))
	b.n += copy(b.buf[b.n:], p)
}

func (b *lineBuffer) truncate(n int) {
	if n >= 0 && n < b.n {
		b.n = n
	}
}

func (b *lineBuffer) reset() { b.n = 0 }

func (b *lineBuffer) bytes() []byte { return b.buf[:b.n] }

func (b *lineBuffer) capacity() int { return len(b.buf) }

// =========================
// Line Reader
// =========================

// lineReader turns a byte stream into logical lines. It consumes the
// stream once, forward only.
type lineReader struct {
	r    *bufio.Reader
	line *lineBuffer
	next *lineBuffer

	// physical line number of the last line read, and of the first
	// physical line of the current logical line
	lineNo  int
	startNo int

	done bool
	err  error
}

func newLineReader(r io.Reader, size int) *lineReader {
	br := bufio.NewReader(r)
	skipBOM(br)
	return &lineReader{
		r:    br,
		line: newLineBuffer(size),
		next: newLineBuffer(size),
	}
}

// skipBOM drops a leading UTF-8 byte order mark. Peeking leaves the stream
// untouched when there is none.
func skipBOM(br *bufio.Reader) {
	head, _ := br.Peek(len(utf8BOM))
	if bytes.Equal(head, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}
}

// readPhysical reads one physical line into dst. '\r' bytes are dropped and
// '\n' ends the line. It reports false when the stream ended before any byte
// of a new line was read.
func (lr *lineReader) readPhysical(dst *lineBuffer) bool {
	dst.reset()
	if lr.done {
		return false
	}
	for {
		chunk, err := lr.r.ReadSlice('\n')
		for _, c := range chunk {
			if c == '\r' || c == '\n' {
				continue
			}
			dst.writeByte(c)
		}

		switch {
		case err == nil:
			lr.lineNo++
			return true
		case errors.Is(err, bufio.ErrBufferFull):
			continue
		default:
			lr.done = true
			if !errors.Is(err, io.EOF) {
				lr.err = err
			}
			if dst.n == 0 {
				return false
			}
			lr.lineNo++
			return true
		}
	}
}

// Next returns the next logical line. Physical lines ending in a backslash
// are joined with the following one, whose leading whitespace is dropped.
// ok is false once the stream holds no more lines.
func (lr *lineReader) Next() (line string, ok bool) {
	if !lr.readPhysical(lr.line) {
		return "", false
	}
	lr.startNo = lr.lineNo

	for endsWithBackslash(lr.line.bytes()) {
		if !lr.readPhysical(lr.next) {
			lr.join(nil)
			break
		}
		lr.join(bytes.TrimLeft(lr.next.bytes(), spaceChars))
	}
	return string(lr.line.bytes()), true
}

// join replaces the trailing backslash of the current line with exactly one
// separating space and appends next.
func (lr *lineReader) join(next []byte) {
	cur := lr.line.bytes()
	n := len(cur) - 1
	lr.line.truncate(n)
	if n > 0 && !isSpace(cur[n-1]) {
		lr.line.writeByte(' ')
	}
	lr.line.write(next)
}

// Err returns the first read error other than io.EOF.
func (lr *lineReader) Err() error { return lr.err }

func endsWithBackslash(b []byte) bool {
	return len(b) > 0 && b[len(b)-1] == '\\'
}

const spaceChars = " \t\n\v\f\r"

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
