// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"github.com/wangxinyu2018/scriptvm/internal/logging"
	"github.com/wangxinyu2018/scriptvm/txscript/host"
)

// VMConfig bounds the resources one evaluation may consume.
type VMConfig struct {
	// MaxMemory caps the aggregate byte length of every item resident
	// on the stack at once.
	MaxMemory uint64
}

// DefaultVMConfig is a small implementation-defined default.
var DefaultVMConfig = VMConfig{MaxMemory: 1024}

// instructionLimitFactor bounds the number of steps a single phase may
// run: ten times script length.
const instructionLimitFactor = 10

// engine is the per-call VM frame. It is never reused across Execute
// calls: no state here outlives a single evaluation.
type engine struct {
	stack *Stack
	ctx   *EvalContext
}

// Execute evaluates an unlock script against a lock or burn script on one
// shared stack and returns the resulting Verdict, or a *RuntimeError if
// evaluation had to be aborted. This is the sole entry point into the VM.
func Execute(
	unlock Script,
	params [][]byte,
	lockOrBurn Script,
	tx Transaction,
	cfg VMConfig,
	inputIndex int,
	isBurn bool,
	outpoint host.Outpoint,
	client host.Client,
	curBlockNumber uint64,
	curTimestamp uint64,
) (Verdict, error) {
	ctx := &EvalContext{
		Tx:             tx,
		InputIndex:     inputIndex,
		Outpoint:       outpoint,
		Client:         client,
		CurBlockNumber: curBlockNumber,
		CurTimestamp:   curTimestamp,
		IsBurn:         isBurn,
	}
	e := &engine{stack: NewStack(cfg.MaxMemory), ctx: ctx}
	return e.run(unlock, params, lockOrBurn)
}

func (e *engine) run(unlock Script, params [][]byte, lockOrBurn Script) (Verdict, error) {
	// Phase 1: unlock. A decode error or a non-push instruction both
	// collapse to Failed: a non-push unlock script unlocks nothing.
	if err := decodeScript(unlock); err != nil {
		logging.CPrint(logging.DEBUG, "unlock script failed to decode", logging.LogFormat{"error": err})
		return Failed, nil
	}
	for _, ins := range unlock {
		if !ins.Op.pushOnly() {
			logging.CPrint(logging.DEBUG, "unlock script contains non-push opcode", logging.LogFormat{"opcode": ins.Op})
			return Failed, nil
		}
	}

	verdict, terminated, err := e.runScript(unlock)
	if err != nil {
		return "", err
	}
	if terminated {
		return verdict, nil
	}

	// Phase boundary: seed the shared stack with the auxiliary params,
	// each as a Bytes item, before the lock/burn script runs. Pushed
	// back to front so params[0] lands nearest the top: a hash-lock
	// script's preimage is always params[0], and a hash opcode always
	// consumes whatever is nearest the top first.
	for i := len(params) - 1; i >= 0; i-- {
		if err := e.stack.Push(BytesItem(params[i])); err != nil {
			return "", err
		}
	}

	// Phase 2: lock or burn, full instruction set.
	if err := decodeScript(lockOrBurn); err != nil {
		logging.CPrint(logging.DEBUG, "lock script failed to decode", logging.LogFormat{"error": err})
		return Failed, nil
	}

	verdict, terminated, err = e.runScript(lockOrBurn)
	if err != nil {
		return "", err
	}
	if terminated {
		return verdict, nil
	}

	return e.finalVerdict()
}

// finalVerdict derives the verdict from the stack's final top: empty,
// Integer(0), or any falsey top is Failed; any truthy top is Unlocked,
// or Burnt in burn mode.
func (e *engine) finalVerdict() (Verdict, error) {
	top, err := e.stack.Top()
	if err != nil {
		return Failed, nil
	}
	if !top.Truthy() {
		return Failed, nil
	}
	if e.ctx.IsBurn {
		return Burnt, nil
	}
	return Unlocked, nil
}

// runScript drives the program counter across one script. It returns
// (verdict, true, nil) if a terminating opcode fired, (_, false, nil) if
// the script ran off its own end normally, or (_, _, err) on a runtime
// error.
func (e *engine) runScript(script Script) (Verdict, bool, error) {
	limit := len(script) * instructionLimitFactor
	executed := 0
	pc := 0

	for pc < len(script) {
		if limit > 0 && executed >= limit {
			return "", false, newRuntimeError(ErrInstructionLimitExceeded,
				"exceeded %d instructions for a %d-instruction script", limit, len(script))
		}
		executed++

		ins := script[pc]
		logging.CPrint(logging.TRACE, "stepping", logging.LogFormat{"pc": pc, "instruction": ins.String()})

		verdict, terminated, nextPC, err := e.step(ins, pc)
		if err != nil {
			return "", false, err
		}
		if terminated {
			return verdict, true, nil
		}
		pc = nextPC
	}
	return "", false, nil
}

// step executes a single instruction and reports where the program
// counter goes next. Every opcode but Jnz advances to pc+1.
func (e *engine) step(ins Instruction, pc int) (verdict Verdict, terminated bool, nextPC int, err error) {
	nextPC = pc + 1

	switch ins.Op {
	case OpNop:
		// no-op
	case OpPush:
		err = e.stack.Push(IntegerItem(ins.Imm))
	case OpPushB:
		err = e.stack.Push(BytesItem(ins.Data))
	case OpPop:
		_, err = e.stack.Pop()
	case OpDup:
		err = e.stack.Dup()
	case OpSwap:
		err = e.stack.Swap()
	case OpCopy:
		err = e.stack.Copy(int(ins.Imm))
	case OpDrop:
		err = e.stack.Drop(int(ins.Imm))
	case OpEq:
		err = execEq(e.stack)
	case OpJnz:
		nextPC, err = e.execJnz(ins, nextPC)
	case OpBlake256, OpSha256, OpKeccak256, OpRipemd160:
		err = execHash(ins.Op, e.stack)
	case OpChkSig:
		err = execChkSig(e.stack, e.ctx.Tx, e.ctx.InputIndex)
	case OpChkMultiSig:
		err = execChkMultiSig(e.stack, e.ctx.Tx, e.ctx.InputIndex)
	case OpChkTimelock:
		err = execChkTimelock(ins.Timelock, e.stack, e.ctx)
	case OpBurn:
		return Burnt, true, pc, nil
	case OpSuccess:
		return Unlocked, true, pc, nil
	case OpFail:
		return Failed, true, pc, nil
	}
	return "", false, nextPC, err
}

// execJnz implements the conditional forward skip: on a truthy
// condition, pc advances past ins.Skip additional instructions beyond
// the next one; on falsey, pc advances normally. Landing past the end
// of the script is ordinary termination, not an error.
func (e *engine) execJnz(ins Instruction, nextPC int) (int, error) {
	cond, err := e.stack.Pop()
	if err != nil {
		return nextPC, err
	}
	if cond.Truthy() {
		return nextPC + int(ins.Skip), nil
	}
	return nextPC, nil
}
