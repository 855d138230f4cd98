/*
 * Jacobin VM - A Java virtual machine
 * Copyright (c) 2023 by  the Jacobin authors. Consult jacobin.org.
 * Licensed under Mozilla Public License 2.0 (MPL 2.0) All rights reserved.
 */

package classfile

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestDoubleSlotPool exercises spec §8 concrete scenario 2: a pool of
// {Integer(42), Long(...), Utf8("x")} declares a count of 5 and decodes to
// an effective length of 4, with index 4 resolving to the Utf8 entry.
func TestDoubleSlotPool(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteByte(byte(TagInteger))
	buf.Write([]byte{0x00, 0x00, 0x00, 0x2a}) // 42
	buf.WriteByte(byte(TagLong))
	buf.Write([]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08})
	buf.WriteByte(byte(TagUtf8))
	buf.Write([]byte{0x00, 0x01, 'x'})

	c := newCursor(&buf)
	pool := readConstantPool(c, 5)
	require.NoError(t, c.err)
	require.Len(t, pool, 4)

	require.IsType(t, &IntegerInfo{}, pool[0])
	require.Equal(t, int32(42), pool[0].(*IntegerInfo).Value)

	require.IsType(t, &LongInfo{}, pool[1])
	require.Equal(t, int64(0x0102030405060708), pool[1].(*LongInfo).Value)

	require.Nil(t, pool[2])

	s, ok := pool.GetUtf8String(4)
	require.True(t, ok)
	require.Equal(t, "x", s)
}

func TestOutOfRangeLookupIsAbsentNotFault(t *testing.T) {
	pool := ConstantPool{&Utf8Info{Value: "a", Valid: true}}
	require.Nil(t, pool.Entry(0))
	require.Nil(t, pool.Entry(5))
	_, ok := pool.GetUtf8String(99)
	require.False(t, ok)
}

func TestUnknownTagFails(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteByte(0xEE)
	c := newCursor(&buf)
	_, _ = readConstantPoolEntry(c)
	require.Error(t, c.err)
	de, ok := c.err.(*DecodeError)
	require.True(t, ok)
	require.Equal(t, UnknownTag, de.Kind)
}

func TestModifiedUtf8RoundTrip(t *testing.T) {
	for _, s := range []string{"hello", "", "Héllo", "\U0001F600smile"} {
		encoded := encodeModifiedUtf8(s)
		decoded, ok := decodeModifiedUtf8(encoded)
		require.True(t, ok)
		require.Equal(t, s, decoded)
	}
}
