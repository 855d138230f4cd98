/*
 * Jacobin VM - A Java virtual machine
 * Copyright (c) 2023 by  the Jacobin authors. Consult jacobin.org.
 * Licensed under Mozilla Public License 2.0 (MPL 2.0) All rights reserved.
 */

// Package vm is the bytecode interpreter: stack-machine state, opcode
// dispatch, and symbolic resolution via the constant pool (spec §4.F),
// grounded on the teacher's jvm/errors_test.go (frames/thread/run shape)
// and original_source/src/java/vm.rs (the Rust VirtualMachine this
// component is distilled from).
package vm

import (
	"jacobin/internal/archive"
	"jacobin/internal/trace"
)

// VM owns the entry archive, a list of library archives for future symbolic
// resolution of standard-library classes, and the name of the class
// currently executing (spec §3 "A VM owns the entry archive...").
type VM struct {
	Entry        *archive.Archive
	Libraries    []*archive.Archive
	CurrentClass string
}

// New constructs a VM from an already-opened entry archive.
func New(entry *archive.Archive) *VM {
	return &VM{Entry: entry}
}

// AddLibraryJar registers an additional archive for symbolic resolution.
// Library-archive lists are append-only after construction (spec §5).
func (v *VM) AddLibraryJar(a *archive.Archive) {
	v.Libraries = append(v.Libraries, a)
}

// Run executes the entry archive's Main-Class.main method to completion
// (spec §4.F "run()"). Runtime faults abort execution and are returned to
// the caller, which reports them to stderr and exits non-zero (spec §7).
func (v *VM) Run() error {
	class, ok := v.Entry.MainClass()
	if !ok {
		return &RuntimeFault{Kind: NoMainClass}
	}
	v.CurrentClass = class.Name

	if err := initializeClass(class); err != nil {
		return err
	}

	main, ok := class.FindMethod("main")
	if !ok {
		trace.Error("no main method found in " + class.Name)
		return &RuntimeFault{Kind: NoMainMethod}
	}

	return ExecuteMethod(class, main)
}
