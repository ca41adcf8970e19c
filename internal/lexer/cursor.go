package lexer

import (
	"bytes"
	"fmt"

	"fortio.org/safecast"

	"cglogic/internal/source"
)

// Cursor walks the bytes of one CGIF or CL source. Everything the two
// notations treat specially is ASCII, so byte steps are enough here;
// identifiers consume whole runes through Lexer.bumpRune.
type Cursor struct {
	File *source.File
	Off  uint32
	end  uint32
}

func NewCursor(f *source.File) Cursor {
	end, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return Cursor{File: f, end: end}
}

func (c *Cursor) EOF() bool {
	return c.Off >= c.end
}

// Peek: текущий байт или 0 на конце
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.File.Content[c.Off]
}

// HasPrefix reports whether the unread input starts with s ("/*", "*/", "@every").
func (c *Cursor) HasPrefix(s string) bool {
	return bytes.HasPrefix(c.File.Content[c.Off:c.end], []byte(s))
}

// Bump съедает один байт и возвращает его
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.File.Content[c.Off]
	c.Off++
	return b
}

// Skip consumes n bytes, stopping at the end of input.
func (c *Cursor) Skip(n int) {
	for ; n > 0 && !c.EOF(); n-- {
		c.Off++
	}
}

// Mark: сохранённое смещение начала токена или trivia
type Mark uint32

func (c *Cursor) Mark() Mark {
	return Mark(c.Off)
}

// SpanFrom returns the span read since m.
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{File: c.File.ID, Start: uint32(m), End: c.Off}
}

// Reset откатывает курсор к метке (неудачный @every)
func (c *Cursor) Reset(m Mark) {
	c.Off = uint32(m)
}
