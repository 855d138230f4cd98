/*
 * Jacobin VM - A Java virtual machine
 * Copyright (c) 2023 by  the Jacobin authors. Consult jacobin.org.
 * Licensed under Mozilla Public License 2.0 (MPL 2.0) All rights reserved.
 */

package classfile

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func utf8Pool(names ...string) ConstantPool {
	pool := make(ConstantPool, len(names))
	for i, n := range names {
		pool[i] = &Utf8Info{Value: n, Valid: true}
	}
	return pool
}

func TestUnknownAttributeNameIsPreservedButNotParsed(t *testing.T) {
	cp := utf8Pool("Synthetic")
	a := &AttributeInfo{NameIndex: 1, Info: []byte{}}
	decodeAttribute(cp, a)
	require.Nil(t, a.Parsed)
	require.Equal(t, "Synthetic", a.Name(cp))
}

func TestDeprecatedZeroLengthParses(t *testing.T) {
	cp := utf8Pool("Deprecated")
	a := &AttributeInfo{NameIndex: 1, Info: []byte{}}
	decodeAttribute(cp, a)
	require.IsType(t, &DeprecatedAttribute{}, a.Parsed)
}

func TestMalformedRecognizedAttributeIsDroppedNotFatal(t *testing.T) {
	cp := utf8Pool("ConstantValue")
	// ConstantValue needs 2 bytes; give it none.
	a := &AttributeInfo{NameIndex: 1, Info: []byte{}}
	decodeAttribute(cp, a)
	require.Nil(t, a.Parsed)
}

func TestNestedAnnotationRecursion(t *testing.T) {
	cp := utf8Pool("RuntimeVisibleAnnotations")
	// 1 annotation, type-index=1, 1 element pair: name-index=1, tag '@'
	// nested annotation: type-index=1, 0 elements.
	info := []byte{
		0x00, 0x01, // num annotations
		0x00, 0x01, // type_index
		0x00, 0x01, // num_element_value_pairs
		0x00, 0x01, // element_name_index
		'@',        // tag
		0x00, 0x01, // nested type_index
		0x00, 0x00, // nested num pairs
	}
	a := &AttributeInfo{NameIndex: 1, Info: info}
	decodeAttribute(cp, a)
	parsed, ok := a.Parsed.(*RuntimeAnnotationsAttribute)
	require.True(t, ok)
	require.Len(t, parsed.Annotations, 1)
	require.Equal(t, byte('@'), parsed.Annotations[0].Elements[0].Value.Tag)
	require.NotNil(t, parsed.Annotations[0].Elements[0].Value.Annotation)
}
