/*
 * Jacobin VM - A Java virtual machine
 * Copyright (c) 2023 by  the Jacobin authors. Consult jacobin.org.
 * Licensed under Mozilla Public License 2.0 (MPL 2.0) All rights reserved.
 */

package classfile

import (
	"io"
	"sync"
)

// MethodKey identifies a method by the platform-correct (name, descriptor)
// tuple (see SPEC_FULL.md Open Question decision #2 — jacobin's own
// classloader keys by bare name and silently drops overloads; this module
// keeps the tuple so overloaded methods are not discarded).
type MethodKey struct {
	Name       string
	Descriptor string
}

// Field is a resolved field record: decoded name/descriptor plus its
// attribute list (spec §3).
type Field struct {
	AccessFlags uint16
	Name        string
	Descriptor  string
	Attributes  []AttributeInfo
}

// Method is a resolved method record.
type Method struct {
	AccessFlags uint16
	Name        string
	Descriptor  string
	Attributes  []AttributeInfo
}

// Code returns the method's Code attribute, or nil if it has none (e.g. an
// abstract or native method).
func (m *Method) Code() *CodeAttribute {
	for _, a := range m.Attributes {
		if code, ok := a.Parsed.(*CodeAttribute); ok {
			return code
		}
	}
	return nil
}

// ClassModule owns a decoded ClassFile plus the field map (keyed by name)
// and method map (keyed by MethodKey) the interpreter resolves against
// (spec §3 "Class module").
type ClassModule struct {
	File    *ClassFile
	Name    string
	Fields  map[string]*Field
	Methods map[MethodKey]*Method

	mu          sync.Mutex
	initialized bool
}

// Load assembles a ClassModule from raw class-file bytes (spec §4.D).
func Load(r io.Reader) (*ClassModule, error) {
	cf, err := Parse(r)
	if err != nil {
		return nil, err
	}
	return NewModule(cf), nil
}

// NewModule builds field/method maps from an already-parsed ClassFile (spec
// §4.D step 8): only entries whose name and descriptor both resolve to
// valid UTF-8 strings are retained.
func NewModule(cf *ClassFile) *ClassModule {
	m := &ClassModule{
		File:    cf,
		Fields:  make(map[string]*Field),
		Methods: make(map[MethodKey]*Method),
	}
	if name, ok := cf.ConstantPool.GetUtf8String(classNameIndex(cf, cf.ThisClass)); ok {
		m.Name = name
	}

	for _, f := range cf.Fields {
		name, ok1 := cf.ConstantPool.GetUtf8String(f.NameIndex)
		desc, ok2 := cf.ConstantPool.GetUtf8String(f.DescriptorIndex)
		if !ok1 || !ok2 {
			continue
		}
		m.Fields[name] = &Field{
			AccessFlags: f.AccessFlags,
			Name:        name,
			Descriptor:  desc,
			Attributes:  f.Attributes,
		}
	}

	for _, meth := range cf.Methods {
		name, ok1 := cf.ConstantPool.GetUtf8String(meth.NameIndex)
		desc, ok2 := cf.ConstantPool.GetUtf8String(meth.DescriptorIndex)
		if !ok1 || !ok2 {
			continue
		}
		key := MethodKey{Name: name, Descriptor: desc}
		m.Methods[key] = &Method{
			AccessFlags: meth.AccessFlags,
			Name:        name,
			Descriptor:  desc,
			Attributes:  meth.Attributes,
		}
	}

	return m
}

// classNameIndex resolves this_class's ClassRefInfo to its name-index,
// returning 0 (which GetUtf8String reports as absent) when the pool entry
// is missing or of the wrong kind.
func classNameIndex(cf *ClassFile, thisClass uint16) uint16 {
	e := cf.ConstantPool.entry(thisClass)
	cr, ok := e.(*ClassRefInfo)
	if !ok {
		return 0
	}
	return cr.NameIndex
}

// FindMethod returns a method matching name regardless of descriptor, used
// by callers (like the interpreter's "main" lookup) that only care about the
// name. When several overloads share the name, which one is returned is not
// defined (Methods is a map and is searched in map order).
func (m *ClassModule) FindMethod(name string) (*Method, bool) {
	for key, meth := range m.Methods {
		if key.Name == name {
			return meth, true
		}
	}
	return nil, false
}

// MarkInitialized flips the initialized flag exactly once and reports
// whether THIS call performed the transition, following the
// "initialized transitions False -> True exactly once" invariant (spec §8)
// and adapted from jacobin's instantiateClass recheck idiom that guards
// against re-running a class's initializer.
func (m *ClassModule) MarkInitialized() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.initialized {
		return false
	}
	m.initialized = true
	return true
}

// Initialized reports whether the class's <init> has already run.
func (m *ClassModule) Initialized() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.initialized
}
