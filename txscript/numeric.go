// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

// bytesToUint64 interprets b as a big-endian unsigned integer, leading
// zero bytes permitted. Operands wider than 64 bits are a TypeMismatch,
// reported by the caller.
func bytesToUint64(b []byte) (uint64, error) {
	if len(b) > 8 {
		return 0, errOperandTooWide
	}
	var v uint64
	for _, c := range b {
		v = v<<8 | uint64(c)
	}
	return v, nil
}

// execEq implements OP_EQ: pop two items, push 1 if their bytes are
// identical, 0 otherwise. Kind is ignored.
func execEq(stack *Stack) error {
	a, err := stack.Pop()
	if err != nil {
		return err
	}
	b, err := stack.Pop()
	if err != nil {
		return err
	}
	return stack.Push(boolItem(a.equal(b)))
}
