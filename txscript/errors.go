// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import "github.com/pkg/errors"

// Verdict is the outcome of a completed evaluation. It is distinct from a
// RuntimeError: a Verdict means the scripts ran to a conclusion, a
// RuntimeError means evaluation was aborted.
type Verdict string

const (
	Unlocked Verdict = "unlocked"
	Burnt    Verdict = "burnt"
	Failed   Verdict = "fail"
)

func (v Verdict) String() string { return string(v) }

// RuntimeErrorKind enumerates the distinct abort causes a caller needs to
// tell apart from an ordinary Failed verdict.
type RuntimeErrorKind int

const (
	ErrStackUnderflow RuntimeErrorKind = iota
	ErrOutOfMemory
	ErrTypeMismatch
	ErrIndexOutOfBounds
	ErrInstructionLimitExceeded
)

func (k RuntimeErrorKind) String() string {
	switch k {
	case ErrStackUnderflow:
		return "StackUnderflow"
	case ErrOutOfMemory:
		return "OutOfMemory"
	case ErrTypeMismatch:
		return "TypeMismatch"
	case ErrIndexOutOfBounds:
		return "IndexOutOfBounds"
	case ErrInstructionLimitExceeded:
		return "InstructionLimitExceeded"
	default:
		return "Unknown"
	}
}

// RuntimeError aborts an evaluation with a named, consensus-significant
// cause. Callers distinguish it from a Failed verdict with errors.As.
type RuntimeError struct {
	Kind RuntimeErrorKind
	Err  error
}

func (e *RuntimeError) Error() string {
	if e.Err != nil {
		return e.Kind.String() + ": " + e.Err.Error()
	}
	return e.Kind.String()
}

func (e *RuntimeError) Unwrap() error { return e.Err }

func newRuntimeError(kind RuntimeErrorKind, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Kind: kind, Err: errors.Errorf(format, args...)}
}

var (
	// errStackUnderflow and errOperandTooWide are package-level
	// sentinels for the common, argument-less cases; handlers that need
	// to attach extra context construct a *RuntimeError directly with
	// newRuntimeError.
	errStackUnderflow = &RuntimeError{Kind: ErrStackUnderflow, Err: errors.New("stack underflow")}
	errOperandTooWide = errors.New("operand wider than 64 bits")
)
