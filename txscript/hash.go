// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // matches the hash the lock scripts of this chain were written against
	"golang.org/x/crypto/sha3"
)

// blake256Sum computes the digest named "Blake256" by this instruction
// set: Blake2b truncated to a 256-bit digest, not the unrelated original
// BLAKE SHA-3 candidate, so this wraps golang.org/x/crypto/blake2b
// rather than hand-rolling a compression function.
func blake256Sum(data []byte) [32]byte {
	return blake2b.Sum256(data)
}

func sha256Sum(data []byte) [32]byte {
	return sha256.Sum256(data)
}

func keccak256Sum(data []byte) [32]byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

func ripemd160Sum(data []byte) [20]byte {
	h := ripemd160.New()
	h.Write(data)
	var out [20]byte
	copy(out[:], h.Sum(nil))
	return out
}

// execHash pops one item (Bytes or Integer, both are interpreted as raw
// bytes), hashes it with the algorithm named by op, and pushes the
// digest as Bytes. This implements the four hash opcodes.
func execHash(op Opcode, stack *Stack) error {
	item, err := stack.Pop()
	if err != nil {
		return err
	}
	var digest []byte
	switch op {
	case OpBlake256:
		d := blake256Sum(item.Bytes)
		digest = d[:]
	case OpSha256:
		d := sha256Sum(item.Bytes)
		digest = d[:]
	case OpKeccak256:
		d := keccak256Sum(item.Bytes)
		digest = d[:]
	case OpRipemd160:
		d := ripemd160Sum(item.Bytes)
		digest = d[:]
	default:
		panic(fmt.Sprintf("execHash: not a hash opcode: %s", op))
	}
	return stack.Push(BytesItem(digest))
}
