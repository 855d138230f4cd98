/*
 * Jacobin VM - A Java virtual machine
 * Copyright (c) 2023 by  the Jacobin authors. Consult jacobin.org.
 * Licensed under Mozilla Public License 2.0 (MPL 2.0) All rights reserved.
 */

package classfile

import (
	"encoding/binary"
	"io"
	"math"
)

// cursor is the big-endian byte reader every decoder in this package reads
// through. It keeps a sticky error the way dhamidi-sai's reader does, so
// callers can chain several reads and check err once, and tracks the byte
// offset so decode errors can be annotated with a position.
type cursor struct {
	r      io.Reader
	off    int64
	err    error
	errOff int64
}

func newCursor(r io.Reader) *cursor {
	return &cursor{r: r}
}

func (c *cursor) fail(kind DecodeErrorKind, detail string) {
	if c.err != nil {
		return
	}
	c.err = cde(kind, c.off, detail)
	c.errOff = c.off
}

func (c *cursor) readN(n int) []byte {
	if c.err != nil {
		return make([]byte, n)
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(c.r, buf); err != nil {
		c.fail(Truncated, err.Error())
		return make([]byte, n)
	}
	c.off += int64(n)
	return buf
}

func (c *cursor) u1() uint8 {
	return c.readN(1)[0]
}

func (c *cursor) u2() uint16 {
	return binary.BigEndian.Uint16(c.readN(2))
}

func (c *cursor) u4() uint32 {
	return binary.BigEndian.Uint32(c.readN(4))
}

func (c *cursor) u8() uint64 {
	return binary.BigEndian.Uint64(c.readN(8))
}

func (c *cursor) i32() int32 {
	return int32(c.u4())
}

func (c *cursor) i64() int64 {
	return int64(c.u8())
}

func (c *cursor) f32() float32 {
	return math.Float32frombits(c.u4())
}

func (c *cursor) f64() float64 {
	return math.Float64frombits(c.u8())
}

func (c *cursor) bytes(n int) []byte {
	return c.readN(n)
}
