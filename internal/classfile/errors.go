/*
 * Jacobin VM - A Java virtual machine
 * Copyright (c) 2023 by  the Jacobin authors. Consult jacobin.org.
 * Licensed under Mozilla Public License 2.0 (MPL 2.0) All rights reserved.
 */

package classfile

import (
	"fmt"
	"runtime"

	"jacobin/internal/trace"
)

// DecodeErrorKind enumerates the class-file decode error taxonomy (spec §7).
type DecodeErrorKind int

const (
	BadMagic DecodeErrorKind = iota
	UnknownTag
	Truncated
	IndexOutOfRange
	InvalidUtf8
)

func (k DecodeErrorKind) String() string {
	switch k {
	case BadMagic:
		return "BadMagic"
	case UnknownTag:
		return "UnknownTag"
	case Truncated:
		return "Truncated"
	case IndexOutOfRange:
		return "IndexOutOfRange"
	case InvalidUtf8:
		return "InvalidUtf8"
	default:
		return "UnknownDecodeError"
	}
}

// DecodeError is raised while decoding a single class file. It carries the
// byte offset at which the failure was detected and, like the call-site
// annotation jacobin's cfe() helper adds to class-format errors, the
// file/line of the Go call site that raised it.
type DecodeError struct {
	Kind   DecodeErrorKind
	Offset int64
	Detail string
	file   string
	line   int
}

func (e *DecodeError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s at offset %d (%s:%d): %s", e.Kind, e.Offset, e.file, e.line, e.Detail)
	}
	return fmt.Sprintf("%s at offset %d (%s:%d)", e.Kind, e.Offset, e.file, e.line)
}

// cde constructs a *DecodeError annotated with the caller's file/line, the
// same idiom jacobin's classloader uses for its cfe()/CFE() pair.
func cde(kind DecodeErrorKind, offset int64, detail string) *DecodeError {
	_, file, line, ok := runtime.Caller(1)
	if !ok {
		file, line = "unknown", 0
	}
	e := &DecodeError{Kind: kind, Offset: offset, Detail: detail, file: file, line: line}
	trace.Error(e.Error())
	return e
}
