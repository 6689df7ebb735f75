// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import "fmt"

// Instruction is a single tagged-variant record in a Script. Only the
// fields relevant to Op are meaningful; the zero value of the others is
// ignored by the decoder and the executor.
type Instruction struct {
	Op Opcode

	// Imm carries the single-byte operand of Push, and the stack depth
	// operand of Copy and Drop.
	Imm byte

	// Data carries the literal blob operand of PushB.
	Data []byte

	// Skip carries the forward-skip-count operand of Jnz: on a truthy
	// condition, execution advances past this many additional
	// instructions beyond the next one.
	Skip uint16

	// Timelock selects the comparison ChkTimelock performs.
	Timelock TimelockType
}

// Script is a finite, ordered sequence of instructions.
type Script []Instruction

func (i Instruction) String() string {
	switch i.Op {
	case OpPush:
		return fmt.Sprintf("%s(%d)", i.Op, i.Imm)
	case OpPushB:
		return fmt.Sprintf("%s(%x)", i.Op, i.Data)
	case OpCopy, OpDrop:
		return fmt.Sprintf("%s(%d)", i.Op, i.Imm)
	case OpJnz:
		return fmt.Sprintf("%s(%d)", i.Op, i.Skip)
	case OpChkTimelock:
		return fmt.Sprintf("%s(%s)", i.Op, i.Timelock)
	default:
		return i.Op.String()
	}
}

// Constructor helpers give call sites a literal, test-friendly way to
// spell out instruction sequences without naming every struct field.

// Push returns an instruction that pushes Integer(n).
func Push(n byte) Instruction { return Instruction{Op: OpPush, Imm: n} }

// PushB returns an instruction that pushes a Bytes literal.
func PushB(data []byte) Instruction { return Instruction{Op: OpPushB, Data: data} }

// Copy returns an instruction that duplicates the item at the given depth.
func Copy(depth byte) Instruction { return Instruction{Op: OpCopy, Imm: depth} }

// Drop returns an instruction that removes the item at the given depth.
func Drop(depth byte) Instruction { return Instruction{Op: OpDrop, Imm: depth} }

// Jnz returns a conditional forward-skip instruction.
func Jnz(skip uint16) Instruction { return Instruction{Op: OpJnz, Skip: skip} }

// ChkTimelockOp returns an instruction checking the named timelock kind.
func ChkTimelockOp(kind TimelockType) Instruction {
	return Instruction{Op: OpChkTimelock, Timelock: kind}
}

var (
	Nop         = Instruction{Op: OpNop}
	Pop         = Instruction{Op: OpPop}
	Dup         = Instruction{Op: OpDup}
	Swap        = Instruction{Op: OpSwap}
	Eq          = Instruction{Op: OpEq}
	Blake256Op  = Instruction{Op: OpBlake256}
	Sha256Op    = Instruction{Op: OpSha256}
	Keccak256Op = Instruction{Op: OpKeccak256}
	Ripemd160Op = Instruction{Op: OpRipemd160}
	ChkSigOp    = Instruction{Op: OpChkSig}
	ChkMultiSig = Instruction{Op: OpChkMultiSig}
	Burn        = Instruction{Op: OpBurn}
	Success     = Instruction{Op: OpSuccess}
	Fail        = Instruction{Op: OpFail}
)
