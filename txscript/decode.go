// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import "github.com/pkg/errors"

// errDecodeUnknownOpcode is wrapped into the error decodeScript returns
// for an opcode outside the instruction set. No decode error is ever
// surfaced to a caller of Execute as a Go error: a decode failure on
// either script collapses into the Failed verdict.
var errDecodeUnknownOpcode = errors.New("unknown opcode")

// decodeScript validates operand presence and opcode legality for every
// instruction in script. It does not bounds-check Jnz skip counts, and
// neither does the executor: a skip that lands past the end of the
// script ends that script normally.
func decodeScript(script Script) error {
	for _, ins := range script {
		if !ins.Op.valid() {
			return errors.Wrapf(errDecodeUnknownOpcode, "opcode %d", ins.Op)
		}
		if ins.Op == OpPushB && ins.Data == nil {
			return errors.New("PushB missing data operand")
		}
		if ins.Op == OpChkTimelock && !ins.Timelock.valid() {
			return errors.Errorf("ChkTimelock: unknown timelock kind %d", ins.Timelock)
		}
	}
	return nil
}
