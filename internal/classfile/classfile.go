/*
 * Jacobin VM - A Java virtual machine
 * Copyright (c) 2023 by  the Jacobin authors. Consult jacobin.org.
 * Licensed under Mozilla Public License 2.0 (MPL 2.0) All rights reserved.
 */

package classfile

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
)

// Magic is the four-byte class-file signature (spec §3/§6).
const Magic uint32 = 0xCAFEBABE

// FieldInfo and MethodInfo are the raw decoded records before name/descriptor
// resolution into ClassModule's maps (spec §4.D).
type FieldInfo struct {
	AccessFlags     uint16
	NameIndex       uint16
	DescriptorIndex uint16
	Attributes      []AttributeInfo
}

type MethodInfo struct {
	AccessFlags     uint16
	NameIndex       uint16
	DescriptorIndex uint16
	Attributes      []AttributeInfo
}

// ClassFile is the full decoded class-file data model (spec §3).
type ClassFile struct {
	MinorVersion uint16
	MajorVersion uint16
	ConstantPool ConstantPool
	AccessFlags  uint16
	ThisClass    uint16
	SuperClass   uint16
	Interfaces   []uint16
	Fields       []FieldInfo
	Methods      []MethodInfo
	Attributes   []AttributeInfo
}

// Parse decodes a ClassFile from a raw byte stream (spec §4.D steps 1-7).
func Parse(r io.Reader) (*ClassFile, error) {
	c := newCursor(r)

	magic := c.u4()
	if c.err != nil {
		return nil, c.err
	}
	if magic != Magic {
		return nil, cde(BadMagic, 0, "")
	}

	cf := &ClassFile{
		MinorVersion: c.u2(),
		MajorVersion: c.u2(),
	}

	cpCount := c.u2()
	cf.ConstantPool = readConstantPool(c, cpCount)
	if c.err != nil {
		return nil, c.err
	}

	cf.AccessFlags = c.u2()
	cf.ThisClass = c.u2()
	cf.SuperClass = c.u2()

	ifaceCount := c.u2()
	cf.Interfaces = make([]uint16, ifaceCount)
	for i := range cf.Interfaces {
		cf.Interfaces[i] = c.u2()
	}
	if c.err != nil {
		return nil, c.err
	}

	fieldCount := c.u2()
	cf.Fields = make([]FieldInfo, fieldCount)
	for i := range cf.Fields {
		cf.Fields[i] = readMemberInfo(c, cf.ConstantPool)
	}
	if c.err != nil {
		return nil, c.err
	}

	methodCount := c.u2()
	cf.Methods = make([]MethodInfo, methodCount)
	for i := range cf.Methods {
		cf.Methods[i] = MethodInfo(readMemberInfo(c, cf.ConstantPool))
	}
	if c.err != nil {
		return nil, c.err
	}

	attrCount := c.u2()
	cf.Attributes = make([]AttributeInfo, attrCount)
	for i := range cf.Attributes {
		cf.Attributes[i] = readRawAttribute(c)
		decodeAttribute(cf.ConstantPool, &cf.Attributes[i])
	}
	if c.err != nil {
		return nil, c.err
	}

	return cf, nil
}

func readMemberInfo(c *cursor, cp ConstantPool) FieldInfo {
	m := FieldInfo{
		AccessFlags:     c.u2(),
		NameIndex:       c.u2(),
		DescriptorIndex: c.u2(),
	}
	attrCount := c.u2()
	m.Attributes = make([]AttributeInfo, attrCount)
	for i := range m.Attributes {
		m.Attributes[i] = readRawAttribute(c)
		decodeAttribute(cp, &m.Attributes[i])
	}
	return m
}

// Encode serializes a ClassFile back to its wire format. It is the mechanical
// dual of Parse, kept only to exercise the round-trip invariant (spec §8.1);
// it re-emits each AttributeInfo's raw Info bytes verbatim rather than
// re-serializing Parsed, since Info is always the authoritative payload.
func Encode(cf *ClassFile) []byte {
	var buf bytes.Buffer
	w4 := func(v uint32) { var b [4]byte; binary.BigEndian.PutUint32(b[:], v); buf.Write(b[:]) }
	w2 := func(v uint16) { var b [2]byte; binary.BigEndian.PutUint16(b[:], v); buf.Write(b[:]) }

	w4(Magic)
	w2(cf.MinorVersion)
	w2(cf.MajorVersion)

	w2(uint16(len(cf.ConstantPool)) + 1)
	for i := 0; i < len(cf.ConstantPool); i++ {
		e := cf.ConstantPool[i]
		if e == nil {
			continue
		}
		encodeConstantPoolEntry(&buf, e)
	}

	w2(cf.AccessFlags)
	w2(cf.ThisClass)
	w2(cf.SuperClass)

	w2(uint16(len(cf.Interfaces)))
	for _, idx := range cf.Interfaces {
		w2(idx)
	}

	w2(uint16(len(cf.Fields)))
	for _, f := range cf.Fields {
		w2(f.AccessFlags)
		w2(f.NameIndex)
		w2(f.DescriptorIndex)
		w2(uint16(len(f.Attributes)))
		for _, a := range f.Attributes {
			w2(a.NameIndex)
			w4(uint32(len(a.Info)))
			buf.Write(a.Info)
		}
	}

	w2(uint16(len(cf.Methods)))
	for _, m := range cf.Methods {
		w2(m.AccessFlags)
		w2(m.NameIndex)
		w2(m.DescriptorIndex)
		w2(uint16(len(m.Attributes)))
		for _, a := range m.Attributes {
			w2(a.NameIndex)
			w4(uint32(len(a.Info)))
			buf.Write(a.Info)
		}
	}

	w2(uint16(len(cf.Attributes)))
	for _, a := range cf.Attributes {
		w2(a.NameIndex)
		w4(uint32(len(a.Info)))
		buf.Write(a.Info)
	}

	return buf.Bytes()
}

func encodeConstantPoolEntry(buf *bytes.Buffer, e ConstantPoolEntry) {
	w2 := func(v uint16) { var b [2]byte; binary.BigEndian.PutUint16(b[:], v); buf.Write(b[:]) }
	w4 := func(v uint32) { var b [4]byte; binary.BigEndian.PutUint32(b[:], v); buf.Write(b[:]) }

	buf.WriteByte(byte(e.Tag()))
	switch v := e.(type) {
	case *Utf8Info:
		raw := encodeModifiedUtf8(v.Value)
		w2(uint16(len(raw)))
		buf.Write(raw)
	case *IntegerInfo:
		w4(uint32(v.Value))
	case *FloatInfo:
		w4(math.Float32bits(v.Value))
	case *LongInfo:
		w4(uint32(v.Value >> 32))
		w4(uint32(v.Value))
	case *DoubleInfo:
		bits := math.Float64bits(v.Value)
		w4(uint32(bits >> 32))
		w4(uint32(bits))
	case *ClassRefInfo:
		w2(v.NameIndex)
	case *StringRefInfo:
		w2(v.StringIndex)
	case *FieldRefInfo:
		w2(v.ClassIndex)
		w2(v.NameAndTypeIndex)
	case *MethodRefInfo:
		w2(v.ClassIndex)
		w2(v.NameAndTypeIndex)
	case *InterfaceMethodRefInfo:
		w2(v.ClassIndex)
		w2(v.NameAndTypeIndex)
	case *NameAndTypeInfo:
		w2(v.NameIndex)
		w2(v.DescriptorIndex)
	case *MethodHandleInfo:
		buf.WriteByte(v.ReferenceKind)
		w2(v.ReferenceIndex)
	case *MethodTypeInfo:
		w2(v.DescriptorIndex)
	case *DynamicInfo:
		w2(v.BootstrapMethodAttrIndex)
		w2(v.NameAndTypeIndex)
	case *InvokeDynamicInfo:
		w2(v.BootstrapMethodAttrIndex)
		w2(v.NameAndTypeIndex)
	case *ModuleInfo:
		w2(v.NameIndex)
	case *PackageInfo:
		w2(v.NameIndex)
	}
}
