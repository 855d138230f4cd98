/*
 * Jacobin VM - A Java virtual machine
 * Copyright (c) 2023 by  the Jacobin authors. Consult jacobin.org.
 * Licensed under Mozilla Public License 2.0 (MPL 2.0) All rights reserved.
 */

package vm

import (
	"testing"

	"github.com/stretchr/testify/require"

	"jacobin/internal/classfile"
)

// buildHelloWorldClass reproduces spec §8 concrete scenario 3: a method
// named main whose Code attribute holds `B2 00 02 B1` (getstatic #2,
// return).
func buildHelloWorldClass() *classfile.ClassModule {
	cp := classfile.ConstantPool{
		&classfile.Utf8Info{Value: "SomeClass", Valid: true},              // 1
		&classfile.FieldRefInfo{ClassIndex: 3, NameAndTypeIndex: 5},       // 2
		&classfile.ClassRefInfo{NameIndex: 1},                             // 3
		&classfile.Utf8Info{Value: "out", Valid: true},                   // 4
		&classfile.NameAndTypeInfo{NameIndex: 4, DescriptorIndex: 6},      // 5
		&classfile.Utf8Info{Value: "Ljava/io/PrintStream;", Valid: true}, // 6
	}

	cf := &classfile.ClassFile{ConstantPool: cp}

	method := &classfile.Method{
		Name: "main",
		Attributes: []classfile.AttributeInfo{
			{
				Parsed: &classfile.CodeAttribute{
					MaxStack:  1,
					MaxLocals: 1,
					Code:      []byte{0xB2, 0x00, 0x02, 0xB1},
				},
			},
		},
	}

	mod := classfile.NewModule(cf)
	mod.Name = "SomeClass"
	mod.Methods[classfile.MethodKey{Name: "main"}] = method
	return mod
}

func TestHelloWorldGetstaticThenReturn(t *testing.T) {
	mod := buildHelloWorldClass()
	method, ok := mod.FindMethod("main")
	require.True(t, ok)

	err := ExecuteMethod(mod, method)
	require.NoError(t, err)
}

func TestMissingCodeAttributeIsRuntimeFault(t *testing.T) {
	method := &classfile.Method{Name: "abstractMethod"}
	err := ExecuteMethod(classfile.NewModule(&classfile.ClassFile{}), method)
	require.Error(t, err)
	rf, ok := err.(*RuntimeFault)
	require.True(t, ok)
	require.Equal(t, NoCodeAttribute, rf.Kind)
}

func TestInvalidOpcodeFaults(t *testing.T) {
	method := &classfile.Method{
		Name: "bad",
		Attributes: []classfile.AttributeInfo{
			{Parsed: &classfile.CodeAttribute{MaxStack: 1, MaxLocals: 1, Code: []byte{0xCB}}},
		},
	}
	err := ExecuteMethod(classfile.NewModule(&classfile.ClassFile{}), method)
	require.Error(t, err)
	rf, ok := err.(*RuntimeFault)
	require.True(t, ok)
	require.Equal(t, InvalidOpcode, rf.Kind)
}

func TestStackOverflowFault(t *testing.T) {
	f := NewFrame("C", &classfile.Method{Name: "m"}, &classfile.CodeAttribute{MaxStack: 0, MaxLocals: 0})
	err := f.Push(IntSlot(1))
	require.Error(t, err)
	rf, ok := err.(*RuntimeFault)
	require.True(t, ok)
	require.Equal(t, StackOverflow, rf.Kind)
}

func TestStackUnderflowFault(t *testing.T) {
	f := NewFrame("C", &classfile.Method{Name: "m"}, &classfile.CodeAttribute{MaxStack: 1, MaxLocals: 0})
	_, err := f.Pop()
	require.Error(t, err)
	rf, ok := err.(*RuntimeFault)
	require.True(t, ok)
	require.Equal(t, StackUnderflow, rf.Kind)
}
