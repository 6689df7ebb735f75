// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// EncodeScript serializes script to its on-wire byte form: each
// instruction is one opcode byte followed by whatever operand bytes that
// opcode carries. There is no length prefix on the script itself; callers
// that need to frame multiple scripts in one stream do that themselves.
func EncodeScript(script Script) []byte {
	var out []byte
	for _, ins := range script {
		out = append(out, byte(ins.Op))
		switch ins.Op {
		case OpPush:
			out = append(out, ins.Imm)
		case OpPushB:
			var length [2]byte
			binary.BigEndian.PutUint16(length[:], uint16(len(ins.Data)))
			out = append(out, length[:]...)
			out = append(out, ins.Data...)
		case OpCopy, OpDrop:
			out = append(out, ins.Imm)
		case OpJnz:
			var skip [2]byte
			binary.BigEndian.PutUint16(skip[:], ins.Skip)
			out = append(out, skip[:]...)
		case OpChkTimelock:
			out = append(out, byte(ins.Timelock))
		}
	}
	return out
}

// ParseScript is the inverse of EncodeScript. It does not validate opcode
// legality beyond what's needed to know each instruction's operand width;
// full validation is decodeScript's job at execution time.
func ParseScript(data []byte) (Script, error) {
	var script Script
	for len(data) > 0 {
		op := Opcode(data[0])
		data = data[1:]

		ins := Instruction{Op: op}
		switch op {
		case OpPush:
			if len(data) < 1 {
				return nil, errors.Errorf("%s: missing immediate operand", op)
			}
			ins.Imm = data[0]
			data = data[1:]
		case OpPushB:
			if len(data) < 2 {
				return nil, errors.Errorf("%s: missing length prefix", op)
			}
			n := binary.BigEndian.Uint16(data[:2])
			data = data[2:]
			if len(data) < int(n) {
				return nil, errors.Errorf("%s: data shorter than declared length %d", op, n)
			}
			ins.Data = append(make([]byte, 0, n), data[:n]...)
			data = data[n:]
		case OpCopy, OpDrop:
			if len(data) < 1 {
				return nil, errors.Errorf("%s: missing depth operand", op)
			}
			ins.Imm = data[0]
			data = data[1:]
		case OpJnz:
			if len(data) < 2 {
				return nil, errors.Errorf("%s: missing skip operand", op)
			}
			ins.Skip = binary.BigEndian.Uint16(data[:2])
			data = data[2:]
		case OpChkTimelock:
			if len(data) < 1 {
				return nil, errors.Errorf("%s: missing timelock kind operand", op)
			}
			ins.Timelock = TimelockType(data[0])
			data = data[1:]
		}
		script = append(script, ins)
	}
	return script, nil
}
