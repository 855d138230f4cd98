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

// buildMinimalClass constructs the smallest well-formed class file this
// decoder accepts: magic/version, an empty constant pool (count=1), this=0
// (tolerated per spec §8 scenario 1), no super/interfaces/fields/methods/
// attributes.
func buildMinimalClass() []byte {
	var buf bytes.Buffer
	buf.Write([]byte{0xCA, 0xFE, 0xBA, 0xBE})
	buf.Write([]byte{0x00, 0x00}) // minor
	buf.Write([]byte{0x00, 0x34}) // major
	buf.Write([]byte{0x00, 0x01}) // cp count = 1 -> 0 entries
	buf.Write([]byte{0x00, 0x00}) // access flags
	buf.Write([]byte{0x00, 0x00}) // this_class
	buf.Write([]byte{0x00, 0x00}) // super_class
	buf.Write([]byte{0x00, 0x00}) // interfaces count
	buf.Write([]byte{0x00, 0x00}) // fields count
	buf.Write([]byte{0x00, 0x00}) // methods count
	buf.Write([]byte{0x00, 0x00}) // attributes count
	return buf.Bytes()
}

func TestParseMinimalClass(t *testing.T) {
	cf, err := Parse(bytes.NewReader(buildMinimalClass()))
	require.NoError(t, err)
	require.Equal(t, uint16(0x34), cf.MajorVersion)
	require.Empty(t, cf.ConstantPool)
	require.Empty(t, cf.Fields)
	require.Empty(t, cf.Methods)

	mod := NewModule(cf)
	require.Empty(t, mod.Fields)
	require.Empty(t, mod.Methods)
}

func TestParseRejectsBadMagic(t *testing.T) {
	data := buildMinimalClass()
	data[0] = 0x00
	_, err := Parse(bytes.NewReader(data))
	require.Error(t, err)
	de, ok := err.(*DecodeError)
	require.True(t, ok)
	require.Equal(t, BadMagic, de.Kind)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	original := buildMinimalClass()
	cf, err := Parse(bytes.NewReader(original))
	require.NoError(t, err)

	encoded := Encode(cf)
	cf2, err := Parse(bytes.NewReader(encoded))
	require.NoError(t, err)

	require.Equal(t, cf.MinorVersion, cf2.MinorVersion)
	require.Equal(t, cf.MajorVersion, cf2.MajorVersion)
	require.Equal(t, cf.ThisClass, cf2.ThisClass)
	require.Equal(t, len(cf.ConstantPool), len(cf2.ConstantPool))
}

func TestZeroFieldsMethodsAttributesLoadsEmpty(t *testing.T) {
	cf, err := Parse(bytes.NewReader(buildMinimalClass()))
	require.NoError(t, err)
	mod := NewModule(cf)
	require.NotNil(t, mod.Fields)
	require.NotNil(t, mod.Methods)
	require.Len(t, mod.Fields, 0)
	require.Len(t, mod.Methods, 0)
}
