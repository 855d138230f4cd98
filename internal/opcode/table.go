/*
 * Jacobin VM - A Java virtual machine
 * Copyright (c) 2023 by  the Jacobin authors. Consult jacobin.org.
 * Licensed under Mozilla Public License 2.0 (MPL 2.0) All rights reserved.
 */

// Package opcode is the compile-time-constant opcode table: a total
// function from byte value to mnemonic and fixed operand-byte length
// (spec §4.G). It is adapted from the disassembler switch in
// modten-pkg-inspector's wasm class-parser, which enumerates the same 256
// mnemonics and operand groupings, here reshaped from a disassembler into a
// declarative lookup table.
package opcode

// Variable marks an opcode whose operand length cannot be expressed as a
// fixed byte count (tableswitch, lookupswitch, wide) — the dispatcher must
// compute it from the instruction stream itself (spec §4.G).
const Variable = -1

// Info is one opcode table entry.
type Info struct {
	Mnemonic string
	Length   int // operand bytes following the opcode byte; Variable if not fixed
}

// Table is the total byte->Info mapping. Every index 0..255 is populated
// (spec §8 invariant 5: "for every byte 0..=255 a length is defined").
var Table [256]Info

func def(b byte, mnemonic string, length int) {
	Table[b] = Info{Mnemonic: mnemonic, Length: length}
}

func init() {
	for i := range Table {
		Table[i] = Info{Mnemonic: "unused", Length: 0}
	}

	def(0x00, "nop", 0)
	def(0x01, "aconst_null", 0)
	def(0x02, "iconst_m1", 0)
	def(0x03, "iconst_0", 0)
	def(0x04, "iconst_1", 0)
	def(0x05, "iconst_2", 0)
	def(0x06, "iconst_3", 0)
	def(0x07, "iconst_4", 0)
	def(0x08, "iconst_5", 0)
	def(0x09, "lconst_0", 0)
	def(0x0a, "lconst_1", 0)
	def(0x0b, "fconst_0", 0)
	def(0x0c, "fconst_1", 0)
	def(0x0d, "fconst_2", 0)
	def(0x0e, "dconst_0", 0)
	def(0x0f, "dconst_1", 0)
	def(0x10, "bipush", 1)
	def(0x11, "sipush", 2)
	def(0x12, "ldc", 1)
	def(0x13, "ldc_w", 2)
	def(0x14, "ldc2_w", 2)
	def(0x15, "iload", 1)
	def(0x16, "lload", 1)
	def(0x17, "fload", 1)
	def(0x18, "dload", 1)
	def(0x19, "aload", 1)
	def(0x1a, "iload_0", 0)
	def(0x1b, "iload_1", 0)
	def(0x1c, "iload_2", 0)
	def(0x1d, "iload_3", 0)
	def(0x1e, "lload_0", 0)
	def(0x1f, "lload_1", 0)
	def(0x20, "lload_2", 0)
	def(0x21, "lload_3", 0)
	def(0x22, "fload_0", 0)
	def(0x23, "fload_1", 0)
	def(0x24, "fload_2", 0)
	def(0x25, "fload_3", 0)
	def(0x26, "dload_0", 0)
	def(0x27, "dload_1", 0)
	def(0x28, "dload_2", 0)
	def(0x29, "dload_3", 0)
	def(0x2a, "aload_0", 0)
	def(0x2b, "aload_1", 0)
	def(0x2c, "aload_2", 0)
	def(0x2d, "aload_3", 0)
	def(0x2e, "iaload", 0)
	def(0x2f, "laload", 0)
	def(0x30, "faload", 0)
	def(0x31, "daload", 0)
	def(0x32, "aaload", 0)
	def(0x33, "baload", 0)
	def(0x34, "caload", 0)
	def(0x35, "saload", 0)
	def(0x36, "istore", 1)
	def(0x37, "lstore", 1)
	def(0x38, "fstore", 1)
	def(0x39, "dstore", 1)
	def(0x3a, "astore", 1)
	def(0x3b, "istore_0", 0)
	def(0x3c, "istore_1", 0)
	def(0x3d, "istore_2", 0)
	def(0x3e, "istore_3", 0)
	def(0x3f, "lstore_0", 0)
	def(0x40, "lstore_1", 0)
	def(0x41, "lstore_2", 0)
	def(0x42, "lstore_3", 0)
	def(0x43, "fstore_0", 0)
	def(0x44, "fstore_1", 0)
	def(0x45, "fstore_2", 0)
	def(0x46, "fstore_3", 0)
	def(0x47, "dstore_0", 0)
	def(0x48, "dstore_1", 0)
	def(0x49, "dstore_2", 0)
	def(0x4a, "dstore_3", 0)
	def(0x4b, "astore_0", 0)
	def(0x4c, "astore_1", 0)
	def(0x4d, "astore_2", 0)
	def(0x4e, "astore_3", 0)
	def(0x4f, "iastore", 0)
	def(0x50, "lastore", 0)
	def(0x51, "fastore", 0)
	def(0x52, "dastore", 0)
	def(0x53, "aastore", 0)
	def(0x54, "bastore", 0)
	def(0x55, "castore", 0)
	def(0x56, "sastore", 0)
	def(0x57, "pop", 0)
	def(0x58, "pop2", 0)
	def(0x59, "dup", 0)
	def(0x5a, "dup_x1", 0)
	def(0x5b, "dup_x2", 0)
	def(0x5c, "dup2", 0)
	def(0x5d, "dup2_x1", 0)
	def(0x5e, "dup2_x2", 0)
	def(0x5f, "swap", 0)
	def(0x60, "iadd", 0)
	def(0x61, "ladd", 0)
	def(0x62, "fadd", 0)
	def(0x63, "dadd", 0)
	def(0x64, "isub", 0)
	def(0x65, "lsub", 0)
	def(0x66, "fsub", 0)
	def(0x67, "dsub", 0)
	def(0x68, "imul", 0)
	def(0x69, "lmul", 0)
	def(0x6a, "fmul", 0)
	def(0x6b, "dmul", 0)
	def(0x6c, "idiv", 0)
	def(0x6d, "ldiv", 0)
	def(0x6e, "fdiv", 0)
	def(0x6f, "ddiv", 0)
	def(0x70, "irem", 0)
	def(0x71, "lrem", 0)
	def(0x72, "frem", 0)
	def(0x73, "drem", 0)
	def(0x74, "ineg", 0)
	def(0x75, "lneg", 0)
	def(0x76, "fneg", 0)
	def(0x77, "dneg", 0)
	def(0x78, "ishl", 0)
	def(0x79, "lshl", 0)
	def(0x7a, "ishr", 0)
	def(0x7b, "lshr", 0)
	def(0x7c, "iushr", 0)
	def(0x7d, "lushr", 0)
	def(0x7e, "iand", 0)
	def(0x7f, "land", 0)
	def(0x80, "ior", 0)
	def(0x81, "lor", 0)
	def(0x82, "ixor", 0)
	def(0x83, "lxor", 0)
	def(0x84, "iinc", 2)
	def(0x85, "i2l", 0)
	def(0x86, "i2f", 0)
	def(0x87, "i2d", 0)
	def(0x88, "l2i", 0)
	def(0x89, "l2f", 0)
	def(0x8a, "l2d", 0)
	def(0x8b, "f2i", 0)
	def(0x8c, "f2l", 0)
	def(0x8d, "f2d", 0)
	def(0x8e, "d2i", 0)
	def(0x8f, "d2l", 0)
	def(0x90, "d2f", 0)
	def(0x91, "i2b", 0)
	def(0x92, "i2c", 0)
	def(0x93, "i2s", 0)
	def(0x94, "lcmp", 0)
	def(0x95, "fcmpl", 0)
	def(0x96, "fcmpg", 0)
	def(0x97, "dcmpl", 0)
	def(0x98, "dcmpg", 0)
	def(0x99, "ifeq", 2)
	def(0x9a, "ifne", 2)
	def(0x9b, "iflt", 2)
	def(0x9c, "ifge", 2)
	def(0x9d, "ifgt", 2)
	def(0x9e, "ifle", 2)
	def(0x9f, "if_icmpeq", 2)
	def(0xa0, "if_icmpne", 2)
	def(0xa1, "if_icmplt", 2)
	def(0xa2, "if_icmpge", 2)
	def(0xa3, "if_icmpgt", 2)
	def(0xa4, "if_icmple", 2)
	def(0xa5, "if_acmpeq", 2)
	def(0xa6, "if_acmpne", 2)
	def(0xa7, "goto", 2)
	def(0xa8, "jsr", 2)
	def(0xa9, "ret", 1)
	def(0xaa, "tableswitch", Variable)
	def(0xab, "lookupswitch", Variable)
	def(0xac, "ireturn", 0)
	def(0xad, "lreturn", 0)
	def(0xae, "freturn", 0)
	def(0xaf, "dreturn", 0)
	def(0xb0, "areturn", 0)
	def(0xb1, "return", 0)
	def(0xb2, "getstatic", 2)
	def(0xb3, "putstatic", 2)
	def(0xb4, "getfield", 2)
	def(0xb5, "putfield", 2)
	def(0xb6, "invokevirtual", 2)
	def(0xb7, "invokespecial", 2)
	def(0xb8, "invokestatic", 2)
	def(0xb9, "invokeinterface", 4)
	def(0xba, "invokedynamic", 4)
	def(0xbb, "new", 2)
	def(0xbc, "newarray", 1)
	def(0xbd, "anewarray", 2)
	def(0xbe, "arraylength", 0)
	def(0xbf, "athrow", 0)
	def(0xc0, "checkcast", 2)
	def(0xc1, "instanceof", 2)
	def(0xc2, "monitorenter", 0)
	def(0xc3, "monitorexit", 0)
	def(0xc4, "wide", Variable)
	def(0xc5, "multianewarray", 3)
	def(0xc6, "ifnull", 2)
	def(0xc7, "ifnonnull", 2)
	def(0xc8, "goto_w", 4)
	def(0xc9, "jsr_w", 4)
	def(0xca, "breakpoint", 0)
	def(0xfe, "impdep1", 0)
	def(0xff, "impdep2", 0)
}

// Lookup returns the table entry for an opcode byte. The table is total, so
// this never fails; bytes in the 0xcb-0xfd reserved range map to "unused"
// with length 0.
func Lookup(b byte) Info {
	return Table[b]
}
