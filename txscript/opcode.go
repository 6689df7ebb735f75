// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

// Opcode identifies a single instruction in the VM's instruction set. The
// set is fixed at compile time; there is no mechanism to register new
// opcodes at runtime.
type Opcode byte

const (
	OpNop Opcode = iota
	OpPush
	OpPushB
	OpPop
	OpDup
	OpSwap
	OpCopy
	OpDrop
	OpEq
	OpJnz
	OpBlake256
	OpSha256
	OpKeccak256
	OpRipemd160
	OpChkSig
	OpChkMultiSig
	OpChkTimelock
	OpBurn
	OpSuccess
	OpFail

	numOpcodes
)

var opcodeNames = map[Opcode]string{
	OpNop:         "OP_NOP",
	OpPush:        "OP_PUSH",
	OpPushB:       "OP_PUSHB",
	OpPop:         "OP_POP",
	OpDup:         "OP_DUP",
	OpSwap:        "OP_SWAP",
	OpCopy:        "OP_COPY",
	OpDrop:        "OP_DROP",
	OpEq:          "OP_EQ",
	OpJnz:         "OP_JNZ",
	OpBlake256:    "OP_BLAKE256",
	OpSha256:      "OP_SHA256",
	OpKeccak256:   "OP_KECCAK256",
	OpRipemd160:   "OP_RIPEMD160",
	OpChkSig:      "OP_CHKSIG",
	OpChkMultiSig: "OP_CHKMULTISIG",
	OpChkTimelock: "OP_CHKTIMELOCK",
	OpBurn:        "OP_BURN",
	OpSuccess:     "OP_SUCCESS",
	OpFail:        "OP_FAIL",
}

func (op Opcode) String() string {
	if name, ok := opcodeNames[op]; ok {
		return name
	}
	return "OP_UNKNOWN"
}

func (op Opcode) valid() bool {
	return op < numOpcodes
}

// pushOnly reports whether op belongs to the subset of instructions
// permitted in an unlock script: Push, PushB, Pop, Nop. Any other opcode
// appearing in phase 1 makes the unlock script unlock nothing.
func (op Opcode) pushOnly() bool {
	switch op {
	case OpPush, OpPushB, OpPop, OpNop:
		return true
	default:
		return false
	}
}

// TimelockType selects which chain fact ChkTimelock compares the popped
// operand against.
type TimelockType byte

const (
	TimelockBlock TimelockType = iota
	TimelockTime
	TimelockBlockAge
	TimelockTimeAge
)

func (t TimelockType) valid() bool {
	switch t {
	case TimelockBlock, TimelockTime, TimelockBlockAge, TimelockTimeAge:
		return true
	default:
		return false
	}
}

func (t TimelockType) String() string {
	switch t {
	case TimelockBlock:
		return "Block"
	case TimelockTime:
		return "Time"
	case TimelockBlockAge:
		return "BlockAge"
	case TimelockTimeAge:
		return "TimeAge"
	default:
		return "Unknown"
	}
}
