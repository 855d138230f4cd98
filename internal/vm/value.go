/*
 * Jacobin VM - A Java virtual machine
 * Copyright (c) 2023 by  the Jacobin authors. Consult jacobin.org.
 * Licensed under Mozilla Public License 2.0 (MPL 2.0) All rights reserved.
 */

package vm

// SlotKind tags the operand-stack/locals value union (spec §3 "Interpreter
// state"). Modeled as a closed Go enumeration over a tagged struct rather
// than jacobin's unsafe.Pointer-based CpType reinterpretation, per the
// spec's explicit design note against undefined-behavior casts.
type SlotKind int

const (
	None SlotKind = iota
	Reference
	Integer
	Float
	Long
	Double
)

// Slot is one operand-stack or locals-array cell. Long and Double logically
// occupy two adjacent slots; callers push/pop a placeholder None alongside
// the real value to keep max_stack/max_locals accounting consistent with
// the format's double-slot rule (spec §9).
type Slot struct {
	Kind SlotKind
	Ref  uint32
	I    int32
	F    float32
	L    int64
	D    float64
}

func NoneSlot() Slot              { return Slot{Kind: None} }
func RefSlot(v uint32) Slot       { return Slot{Kind: Reference, Ref: v} }
func IntSlot(v int32) Slot        { return Slot{Kind: Integer, I: v} }
func FloatSlot(v float32) Slot    { return Slot{Kind: Float, F: v} }
func LongSlot(v int64) Slot       { return Slot{Kind: Long, L: v} }
func DoubleSlot(v float64) Slot   { return Slot{Kind: Double, D: v} }
