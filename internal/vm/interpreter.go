/*
 * Jacobin VM - A Java virtual machine
 * Copyright (c) 2023 by  the Jacobin authors. Consult jacobin.org.
 * Licensed under Mozilla Public License 2.0 (MPL 2.0) All rights reserved.
 */

package vm

import (
	"fmt"

	"jacobin/internal/classfile"
	"jacobin/internal/opcode"
	"jacobin/internal/trace"
)

// resolveFieldRef follows a FieldRef pool entry to its symbolic
// (class-name, field-name, descriptor) triple, the getstatic resolution
// §4.F names explicitly.
func resolveFieldRef(cp classfile.ConstantPool, idx uint16) (className, fieldName, descriptor string, ok bool) {
	fr, isFieldRef := cp.Entry(idx).(*classfile.FieldRefInfo)
	if !isFieldRef {
		return "", "", "", false
	}
	cr, isClassRef := cp.Entry(fr.ClassIndex).(*classfile.ClassRefInfo)
	if !isClassRef {
		return "", "", "", false
	}
	nt, isNT := cp.Entry(fr.NameAndTypeIndex).(*classfile.NameAndTypeInfo)
	if !isNT {
		return "", "", "", false
	}
	className, ok1 := cp.GetUtf8String(cr.NameIndex)
	fieldName, ok2 := cp.GetUtf8String(nt.NameIndex)
	descriptor, ok3 := cp.GetUtf8String(nt.DescriptorIndex)
	if !ok1 || !ok2 || !ok3 {
		return "", "", "", false
	}
	return className, fieldName, descriptor, true
}

// ExecuteMethod runs one method's Code attribute to completion (spec §4.F
// "execute_method"/"Dispatcher"). It returns a *RuntimeFault on any
// execution error; a missing Code attribute is itself a RuntimeFault.
func ExecuteMethod(class *classfile.ClassModule, method *classfile.Method) error {
	code := method.Code()
	if code == nil {
		return &RuntimeFault{Kind: NoCodeAttribute}
	}

	frame := NewFrame(class.Name, method, code)
	return dispatch(class, frame)
}

func dispatch(class *classfile.ClassModule, f *Frame) error {
	code := f.Code.Code
	for f.PC < len(code) {
		opByte := code[f.PC]
		info := opcode.Lookup(opByte)

		switch opByte {
		case 0x00: // nop
			trace.Instruction(fmt.Sprintf("%s#%s pc=%d nop", class.Name, f.Method.Name, f.PC))
			f.PC += 1 + info.Length

		case 0xb2: // getstatic
			if f.PC+2 >= len(code) {
				return &RuntimeFault{Kind: InvalidOpcode, PC: f.PC, Byte: opByte}
			}
			idx := uint16(code[f.PC+1])<<8 | uint16(code[f.PC+2])
			cn, fn, desc, ok := resolveFieldRef(f.effectivePool(class), idx)
			if !ok {
				return &RuntimeFault{Kind: ConstantPoolMismatch, PC: f.PC}
			}
			trace.Instruction(fmt.Sprintf("%s#%s pc=%d getstatic %s.%s:%s",
				class.Name, f.Method.Name, f.PC, cn, fn, desc))
			f.PC += 1 + info.Length

		case 0xaa, 0xab: // tableswitch, lookupswitch: variable-length padding + operands
			n, err := switchLength(code, f.PC)
			if err != nil {
				return err
			}
			trace.Instruction(fmt.Sprintf("%s#%s pc=%d %s", class.Name, f.Method.Name, f.PC, info.Mnemonic))
			f.PC += n

		case 0xc4: // wide
			n, err := wideLength(code, f.PC)
			if err != nil {
				return err
			}
			trace.Instruction(fmt.Sprintf("%s#%s pc=%d wide", class.Name, f.Method.Name, f.PC))
			f.PC += n

		default:
			if info.Mnemonic == "unused" {
				return &RuntimeFault{Kind: InvalidOpcode, PC: f.PC, Byte: opByte}
			}
			// All other opcodes are tolerated as no-ops in this revision
			// (spec §4.F/§9.3): they still advance pc by their declared
			// fixed operand length.
			trace.Instruction(fmt.Sprintf("%s#%s pc=%d %s", class.Name, f.Method.Name, f.PC, info.Mnemonic))
			f.PC += 1 + info.Length
		}
	}
	return nil
}

// effectivePool exposes the owning class's constant pool to opcode
// handlers without threading it through every call.
func (f *Frame) effectivePool(class *classfile.ClassModule) classfile.ConstantPool {
	return class.File.ConstantPool
}

// switchLength computes the total instruction length (including the
// opcode byte) of a tableswitch/lookupswitch at code[pc], the one case
// spec §4.G calls out as needing "per-opcode logic" rather than a table
// entry.
func switchLength(code []byte, pc int) (int, error) {
	pad := (4 - ((pc + 1) % 4)) % 4
	p := pc + 1 + pad
	if p+4 > len(code) {
		return 0, &RuntimeFault{Kind: InvalidOpcode, PC: pc, Byte: code[pc]}
	}
	opByte := code[pc]
	if opByte == 0xaa { // tableswitch: default(4) low(4) high(4) then (high-low+1) offsets
		if p+12 > len(code) {
			return 0, &RuntimeFault{Kind: InvalidOpcode, PC: pc, Byte: opByte}
		}
		low := int32(be32(code[p+4:]))
		high := int32(be32(code[p+8:]))
		count := int(high-low) + 1
		if count < 0 {
			return 0, &RuntimeFault{Kind: InvalidOpcode, PC: pc, Byte: opByte}
		}
		total := (p - pc) + 12 + count*4
		return total, nil
	}
	// lookupswitch: default(4) npairs(4) then npairs*(match(4) offset(4))
	if p+8 > len(code) {
		return 0, &RuntimeFault{Kind: InvalidOpcode, PC: pc, Byte: opByte}
	}
	npairs := int(be32(code[p+4:]))
	if npairs < 0 {
		return 0, &RuntimeFault{Kind: InvalidOpcode, PC: pc, Byte: opByte}
	}
	total := (p - pc) + 8 + npairs*8
	return total, nil
}

// wideLength computes the instruction length of a wide-prefixed opcode: 4
// bytes normally (wide, opcode, indexbyte1, indexbyte2), 6 when the wrapped
// opcode is iinc (which carries an extra signed 16-bit constant).
func wideLength(code []byte, pc int) (int, error) {
	if pc+1 >= len(code) {
		return 0, &RuntimeFault{Kind: InvalidOpcode, PC: pc, Byte: code[pc]}
	}
	wrapped := code[pc+1]
	if wrapped == 0x84 { // iinc
		return 6, nil
	}
	return 4, nil
}

func be32(b []byte) uint32 {
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}
