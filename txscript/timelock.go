// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import "github.com/wangxinyu2018/scriptvm/txscript/host"

// execChkTimelock implements OP_CHKTIMELOCK. It pops one operand,
// interprets it as a big-endian unsigned integer no wider
// than 64 bits (wider is a TypeMismatch), and compares it against the
// chain fact named by kind, pushing 1 on success and 0 on failure.
func execChkTimelock(kind TimelockType, stack *Stack, ctx *EvalContext) error {
	item, err := stack.Pop()
	if err != nil {
		return err
	}
	v, err := bytesToUint64(item.Bytes)
	if err != nil {
		return newRuntimeError(ErrTypeMismatch, "ChkTimelock(%s) operand %d bytes wider than 64 bits", kind, len(item.Bytes))
	}

	var ok bool
	switch kind {
	case TimelockBlock:
		ok = ctx.CurBlockNumber >= v
	case TimelockTime:
		ok = ctx.CurTimestamp >= v
	case TimelockBlockAge:
		age, known := ctx.Client.BlockAge(ctx.Outpoint)
		ok = known && age >= v
	case TimelockTimeAge:
		age, known := ctx.Client.TimeAge(ctx.Outpoint)
		ok = known && age >= v
	}

	return stack.Push(boolItem(ok))
}

// EvalContext is immutable for the duration of one Execute call.
type EvalContext struct {
	Tx             Transaction
	InputIndex     int
	Outpoint       host.Outpoint
	Client         host.Client
	CurBlockNumber uint64
	CurTimestamp   uint64
	IsBurn         bool
}
