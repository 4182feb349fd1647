package lexer

import "github.com/vovakirdan/lc/internal/source"

// cursor walks source bytes while tracking a 1-based (row, column)
// position. Column resets to 0 on a newline and is re-incremented to
// 1 on the first byte of the following line, matching the original
// lexer's bookkeeping (column += 1 before consuming a byte; reset to
// 0 immediately after a newline).
type cursor struct {
	src []byte
	idx int
	row uint32
	col uint32
}

func newCursor(src []byte) *cursor {
	return &cursor{src: src, row: 1, col: 0}
}

func (c *cursor) atEnd() bool {
	return c.idx >= len(c.src)
}

// peek returns the byte at offset n from the current position, or 0
// past the end of input.
func (c *cursor) peek(n int) byte {
	i := c.idx + n
	if i < 0 || i >= len(c.src) {
		return 0
	}
	return c.src[i]
}

// pos is the position that will be assigned to the next byte returned
// by advance.
func (c *cursor) pos() source.Position {
	return source.Position{Row: c.row, Col: c.col + 1}
}

// advance consumes and returns the current byte, updating row/col.
func (c *cursor) advance() byte {
	b := c.src[c.idx]
	c.idx++
	if b == '\n' {
		c.row++
		c.col = 0
	} else {
		c.col++
	}
	return b
}
