/*
 * Jacobin VM - A Java virtual machine
 * Copyright (c) 2023 by  the Jacobin authors. Consult jacobin.org.
 * Licensed under Mozilla Public License 2.0 (MPL 2.0) All rights reserved.
 */

package vm

import "jacobin/internal/classfile"

// initializeClass runs a class's <init> method exactly once (spec §4.F
// step 2). Its absence is tolerated, not an error (SPEC_FULL.md Open
// Question decision #1). This is adapted from jacobin's instantiateClass,
// which re-checks a class's loaded/initializing status before running its
// constructor; here the check-and-set collapses to ClassModule's
// MarkInitialized, since this revision has no concurrent class loading to
// race against.
func initializeClass(class *classfile.ClassModule) error {
	if class.Initialized() {
		return nil
	}
	init, ok := class.FindMethod("<init>")
	if !ok {
		class.MarkInitialized()
		return nil
	}
	if !class.MarkInitialized() {
		return nil // another call already won the race
	}
	return ExecuteMethod(class, init)
}
