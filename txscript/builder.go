// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

// ScriptBuilder assembles a Script one instruction at a time, in the
// fluent builder style the host repo's own script-construction helpers
// use. A non-nil err short-circuits every further method call, so a
// caller can chain freely and check Script() once at the end.
type ScriptBuilder struct {
	script Script
	err    error
}

// NewScriptBuilder returns an empty builder.
func NewScriptBuilder() *ScriptBuilder {
	return &ScriptBuilder{}
}

// AddOp appends a zero-operand instruction.
func (b *ScriptBuilder) AddOp(ins Instruction) *ScriptBuilder {
	if b.err != nil {
		return b
	}
	b.script = append(b.script, ins)
	return b
}

// AddPush appends an OP_PUSH of the given small integer.
func (b *ScriptBuilder) AddPush(n byte) *ScriptBuilder {
	return b.AddOp(Push(n))
}

// AddData appends an OP_PUSHB of the given byte string.
func (b *ScriptBuilder) AddData(data []byte) *ScriptBuilder {
	return b.AddOp(PushB(data))
}

// AddJnz appends a conditional forward skip of skip instructions.
func (b *ScriptBuilder) AddJnz(skip uint16) *ScriptBuilder {
	return b.AddOp(Jnz(skip))
}

// AddChkTimelock appends an OP_CHKTIMELOCK comparing against kind.
func (b *ScriptBuilder) AddChkTimelock(kind TimelockType) *ScriptBuilder {
	return b.AddOp(ChkTimelockOp(kind))
}

// Script returns the assembled script, or the first error encountered
// while building it.
func (b *ScriptBuilder) Script() (Script, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.script, nil
}
