/*
 * Jacobin VM - A Java virtual machine
 * Copyright (c) 2023 by  the Jacobin authors. Consult jacobin.org.
 * Licensed under Mozilla Public License 2.0 (MPL 2.0) All rights reserved.
 */

package opcode

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestTableIsTotal exercises spec §8 invariant 5: every byte 0..=255 has a
// populated table entry (a non-empty mnemonic alongside its length).
func TestTableIsTotal(t *testing.T) {
	for i := 0; i < 256; i++ {
		info := Lookup(byte(i))
		require.NotEmpty(t, info.Mnemonic)
	}
}

func TestKnownLengths(t *testing.T) {
	cases := map[byte]int{
		0x00: 0, // nop
		0xb2: 2, // getstatic
		0x10: 1, // bipush
		0x11: 2, // sipush
		0x84: 2, // iinc
		0xc5: 3, // multianewarray
		0xb9: 4, // invokeinterface
		0xba: 4, // invokedynamic
		0xc8: 4, // goto_w
	}
	for b, want := range cases {
		require.Equal(t, want, Lookup(b).Length, "opcode 0x%02X", b)
	}
}

func TestVariableLengthOpcodesMarked(t *testing.T) {
	require.Equal(t, Variable, Lookup(0xaa).Length) // tableswitch
	require.Equal(t, Variable, Lookup(0xab).Length) // lookupswitch
	require.Equal(t, Variable, Lookup(0xc4).Length) // wide
}
