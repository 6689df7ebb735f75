// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"github.com/btcsuite/btcd/btcec"
	set "gopkg.in/fatih/set.v0"
)

// maxMultiSigCount is the ceiling on both the key count and the signature
// count ChkMultiSig accepts.
const maxMultiSigCount = 8

// Transaction is the opaque boundary the VM depends on for signature
// verification. Transaction structures themselves are out of scope;
// this is the entire surface the VM needs from one.
type Transaction interface {
	// SigningHash returns the canonical BLAKE-256 hash of the
	// transaction with the unlock_script field of the input at
	// inputIndex replaced by an empty blob. All other inputs and
	// fields are hashed unchanged.
	SigningHash(inputIndex int) [32]byte
}

// execChkSig implements OP_CHKSIG: pop a signature then a public key,
// verify the signature against the transaction's signing hash for the
// input under evaluation, and push 1 or 0. Malformed key or signature
// bytes push 0 rather than aborting evaluation.
func execChkSig(stack *Stack, tx Transaction, inputIndex int) error {
	sigItem, err := stack.Pop()
	if err != nil {
		return err
	}
	pubKeyItem, err := stack.Pop()
	if err != nil {
		return err
	}

	ok := verifySignature(tx, inputIndex, sigItem.Bytes, pubKeyItem.Bytes)
	return stack.Push(boolItem(ok))
}

func verifySignature(tx Transaction, inputIndex int, sigBytes, pubKeyBytes []byte) bool {
	pubKey, err := btcec.ParsePubKey(pubKeyBytes, btcec.S256())
	if err != nil {
		return false
	}
	sig, err := btcec.ParseDERSignature(sigBytes, btcec.S256())
	if err != nil {
		return false
	}
	hash := tx.SigningHash(inputIndex)
	return sig.Verify(hash[:], pubKey)
}

func boolItem(v bool) StackItem {
	if v {
		return IntegerItem(1)
	}
	return IntegerItem(0)
}

// execChkMultiSig implements OP_CHKMULTISIG: pop n, then n key blobs
// (nearest-the-top first), then m, then m signature blobs, and checks
// that the m signatures are, in order, a subsequence of valid signatures
// from the n keys — each key usable by at most one signature. fatih/set
// tracks which key indices have already been consumed so a single key
// cannot satisfy two signature slots.
func execChkMultiSig(stack *Stack, tx Transaction, inputIndex int) error {
	n, err := popCount(stack)
	if err != nil {
		return err
	}
	keys := make([][]byte, n)
	for i := 0; i < n; i++ {
		item, err := stack.Pop()
		if err != nil {
			return err
		}
		keys[i] = item.Bytes
	}

	m, err := popCount(stack)
	if err != nil {
		return err
	}
	sigs := make([][]byte, m)
	for i := 0; i < m; i++ {
		item, err := stack.Pop()
		if err != nil {
			return err
		}
		sigs[i] = item.Bytes
	}

	hash := tx.SigningHash(inputIndex)
	used := set.New(set.NonTS)

	nextKey := 0
	allMatched := true
	for _, sigBytes := range sigs {
		matched := false
		for nextKey < len(keys) {
			idx := nextKey
			nextKey++
			if used.Has(idx) {
				continue
			}
			pubKey, err := btcec.ParsePubKey(keys[idx], btcec.S256())
			if err != nil {
				continue
			}
			sig, err := btcec.ParseDERSignature(sigBytes, btcec.S256())
			if err != nil {
				continue
			}
			if sig.Verify(hash[:], pubKey) {
				used.Add(idx)
				matched = true
				break
			}
		}
		if !matched {
			allMatched = false
			break
		}
	}

	return stack.Push(boolItem(allMatched))
}

// popCount pops an Integer-shaped count and enforces the multisig ceiling.
func popCount(stack *Stack) (int, error) {
	item, err := stack.Pop()
	if err != nil {
		return 0, err
	}
	v, err := bytesToUint64(item.Bytes)
	if err != nil {
		return 0, newRuntimeError(ErrTypeMismatch, "multisig count operand malformed")
	}
	if v > maxMultiSigCount {
		return 0, newRuntimeError(ErrTypeMismatch, "multisig count %d exceeds ceiling %d", v, maxMultiSigCount)
	}
	return int(v), nil
}
