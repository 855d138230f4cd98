/*
 * Jacobin VM - A Java virtual machine
 * Copyright (c) 2023 by  the Jacobin authors. Consult jacobin.org.
 * Licensed under Mozilla Public License 2.0 (MPL 2.0) All rights reserved.
 */

package classfile

import (
	"bytes"

	"jacobin/internal/trace"
)

// AttributeInfo is the raw, always-present form of an attribute record
// (spec §3): name-index, declared length, and the raw payload bytes. Typed
// decoding runs once, eagerly, while the enclosing record is parsed, and its
// result is stored in Parsed; it is not deferred until first use.
type AttributeInfo struct {
	NameIndex uint16
	Info      []byte
	Parsed    any
}

// Name resolves the attribute's name through the owning pool; "" if it does
// not resolve to a valid Utf8 entry.
func (a *AttributeInfo) Name(cp ConstantPool) string {
	s, _ := cp.GetUtf8String(a.NameIndex)
	return s
}

// Recognized attribute payload types (spec §3/§4.C).
type ConstantValueAttribute struct{ ConstantValueIndex uint16 }

type ExceptionsAttribute struct{ ExceptionIndexTable []uint16 }

type RuntimeAnnotationsAttribute struct{ Annotations []Annotation }

type SignatureAttribute struct{ SignatureIndex uint16 }

type DeprecatedAttribute struct{}

type AnnotationDefaultAttribute struct{ Value ElementValue }

type MethodParameter struct {
	NameIndex   uint16
	AccessFlags uint16
}

type MethodParametersAttribute struct{ Parameters []MethodParameter }

type LineNumberEntry struct {
	StartPC    uint16
	LineNumber uint16
}

type LineNumberTableAttribute struct{ Entries []LineNumberEntry }

// ExceptionTableEntry is one row of a Code attribute's exception table.
type ExceptionTableEntry struct {
	StartPC   uint16
	EndPC     uint16
	HandlerPC uint16
	CatchType uint16
}

// CodeAttribute is the substructure carrying a method's bytecode (spec §3).
type CodeAttribute struct {
	MaxStack       uint16
	MaxLocals      uint16
	Code           []byte
	ExceptionTable []ExceptionTableEntry
	Attributes     []AttributeInfo
}

// Annotation is one element of an annotation tree (spec §3).
type Annotation struct {
	TypeIndex uint16
	Elements  []AnnotationElementPair
}

type AnnotationElementPair struct {
	NameIndex uint16
	Value     ElementValue
}

// ElementValue is the recursive, tagged annotation element-value union.
// Tag is one of B C D F I J S Z s e c @ [ (spec §3).
type ElementValue struct {
	Tag byte

	ConstValueIndex uint16 // B C D F I J S Z s c

	TypeNameIndex  uint16 // e
	ConstNameIndex uint16 // e

	Annotation *Annotation // @

	Values []ElementValue // [
}

// decodeAttribute dispatches on the attribute's resolved name and parses its
// raw payload into a typed form stored in a.Parsed (spec §4.C). Unrecognized
// names leave a.Parsed nil. A malformed recognized attribute is logged and
// dropped (a.Parsed stays nil), never propagated as an error.
func decodeAttribute(cp ConstantPool, a *AttributeInfo) {
	name := a.Name(cp)
	c := newCursor(bytes.NewReader(a.Info))
	var parsed any
	switch name {
	case "ConstantValue":
		parsed = &ConstantValueAttribute{ConstantValueIndex: c.u2()}
	case "Code":
		parsed = decodeCodeAttribute(c, cp)
	case "Exceptions":
		n := c.u2()
		idx := make([]uint16, n)
		for i := range idx {
			idx[i] = c.u2()
		}
		parsed = &ExceptionsAttribute{ExceptionIndexTable: idx}
	case "RuntimeVisibleAnnotations", "RuntimeInvisibleAnnotations":
		parsed = &RuntimeAnnotationsAttribute{Annotations: decodeAnnotations(c)}
	case "Signature":
		parsed = &SignatureAttribute{SignatureIndex: c.u2()}
	case "Deprecated":
		parsed = &DeprecatedAttribute{}
	case "AnnotationDefault":
		v := decodeElementValue(c)
		parsed = &AnnotationDefaultAttribute{Value: v}
	case "MethodParameters":
		n := c.u1()
		params := make([]MethodParameter, n)
		for i := range params {
			params[i] = MethodParameter{NameIndex: c.u2(), AccessFlags: c.u2()}
		}
		parsed = &MethodParametersAttribute{Parameters: params}
	case "LineNumberTable":
		n := c.u2()
		entries := make([]LineNumberEntry, n)
		for i := range entries {
			entries[i] = LineNumberEntry{StartPC: c.u2(), LineNumber: c.u2()}
		}
		parsed = &LineNumberTableAttribute{Entries: entries}
	default:
		return
	}
	if c.err != nil {
		trace.Error("dropping malformed attribute " + name + ": " + c.err.Error())
		a.Parsed = nil
		return
	}
	a.Parsed = parsed
}

func decodeCodeAttribute(c *cursor, cp ConstantPool) *CodeAttribute {
	code := &CodeAttribute{
		MaxStack:  c.u2(),
		MaxLocals: c.u2(),
	}
	codeLen := c.u4()
	code.Code = c.bytes(int(codeLen))

	excCount := c.u2()
	code.ExceptionTable = make([]ExceptionTableEntry, excCount)
	for i := range code.ExceptionTable {
		code.ExceptionTable[i] = ExceptionTableEntry{
			StartPC:   c.u2(),
			EndPC:     c.u2(),
			HandlerPC: c.u2(),
			CatchType: c.u2(),
		}
	}

	attrCount := c.u2()
	code.Attributes = make([]AttributeInfo, attrCount)
	for i := range code.Attributes {
		code.Attributes[i] = readRawAttribute(c)
		if c.err != nil {
			return code
		}
		decodeAttribute(cp, &code.Attributes[i])
	}
	return code
}

func decodeAnnotations(c *cursor) []Annotation {
	n := c.u2()
	out := make([]Annotation, n)
	for i := range out {
		out[i] = decodeAnnotation(c)
	}
	return out
}

func decodeAnnotation(c *cursor) Annotation {
	a := Annotation{TypeIndex: c.u2()}
	n := c.u2()
	a.Elements = make([]AnnotationElementPair, n)
	for i := range a.Elements {
		nameIdx := c.u2()
		a.Elements[i] = AnnotationElementPair{NameIndex: nameIdx, Value: decodeElementValue(c)}
	}
	return a
}

// decodeElementValue recurses through '@' and '[' without a depth bound, as
// required by §3 ("the recursion... is unbounded in format").
func decodeElementValue(c *cursor) ElementValue {
	tag := c.u1()
	ev := ElementValue{Tag: tag}
	switch tag {
	case 'B', 'C', 'D', 'F', 'I', 'J', 'S', 'Z', 's', 'c':
		ev.ConstValueIndex = c.u2()
	case 'e':
		ev.TypeNameIndex = c.u2()
		ev.ConstNameIndex = c.u2()
	case '@':
		nested := decodeAnnotation(c)
		ev.Annotation = &nested
	case '[':
		n := c.u2()
		ev.Values = make([]ElementValue, n)
		for i := range ev.Values {
			ev.Values[i] = decodeElementValue(c)
		}
	default:
		c.fail(UnknownTag, "unknown element-value tag")
	}
	return ev
}

// readRawAttribute reads the always-present (name-index, length, bytes)
// triple (spec §6), without attempting typed decode.
func readRawAttribute(c *cursor) AttributeInfo {
	nameIdx := c.u2()
	length := c.u4()
	info := c.bytes(int(length))
	return AttributeInfo{NameIndex: nameIdx, Info: info}
}
