package txscript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wangxinyu2018/scriptvm/txscript/host"
)

func mustExecute(t *testing.T, unlock Script, params [][]byte, lockOrBurn Script, isBurn bool) (Verdict, error) {
	t.Helper()
	return Execute(unlock, params, lockOrBurn, fakeTx{}, DefaultVMConfig, 0, isBurn,
		host.Outpoint{}, host.NewStaticClient(nil, nil), 0, 0)
}

func TestExecuteSimpleSuccess(t *testing.T) {
	v, err := mustExecute(t, nil, nil, Script{Push(1)}, false)
	require.NoError(t, err)
	assert.Equal(t, Unlocked, v)

	v, err = mustExecute(t, nil, nil, Script{Success}, false)
	require.NoError(t, err)
	assert.Equal(t, Unlocked, v)
}

func TestExecuteSimpleFailure(t *testing.T) {
	v, err := mustExecute(t, Script{Push(0)}, nil, nil, false)
	require.NoError(t, err)
	assert.Equal(t, Failed, v)

	v, err = mustExecute(t, nil, nil, Script{Fail}, false)
	require.NoError(t, err)
	assert.Equal(t, Failed, v)
}

func TestExecuteSimpleBurn(t *testing.T) {
	v, err := mustExecute(t, nil, nil, Script{Burn}, false)
	require.NoError(t, err)
	assert.Equal(t, Burnt, v)
}

func TestExecuteUnderflow(t *testing.T) {
	_, err := mustExecute(t, nil, nil, Script{Pop}, false)
	var rerr *RuntimeError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, ErrStackUnderflow, rerr.Kind)
}

func TestExecuteOutOfMemory(t *testing.T) {
	cfg := VMConfig{MaxMemory: 2}
	_, err := Execute(
		Script{Push(0), Push(1), Push(2)}, nil, nil,
		fakeTx{}, cfg, 0, false, host.Outpoint{}, host.NewStaticClient(nil, nil), 0, 0,
	)
	var rerr *RuntimeError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, ErrOutOfMemory, rerr.Kind)
}

func TestExecuteNopOnlyUnlockScriptFails(t *testing.T) {
	v, err := mustExecute(t, Script{Nop}, nil, nil, false)
	require.NoError(t, err)
	assert.Equal(t, Failed, v)
}

func TestExecuteConditionalBurn(t *testing.T) {
	lockScript := Script{Eq, Dup, Jnz(1), Burn}

	v, err := mustExecute(t, Script{Push(0)}, [][]byte{{0}}, lockScript, false)
	require.NoError(t, err)
	assert.Equal(t, Unlocked, v)

	v, err = mustExecute(t, Script{Push(0)}, [][]byte{{1}}, lockScript, false)
	require.NoError(t, err)
	assert.Equal(t, Burnt, v)
}

func TestExecuteHashLockBlake256(t *testing.T) {
	lockScript := Script{Blake256Op, Eq}
	preimage := []byte{0x80}
	digest := blake256Sum(preimage)

	v, err := mustExecute(t, nil, [][]byte{preimage, digest[:]}, lockScript, false)
	require.NoError(t, err)
	assert.Equal(t, Unlocked, v)

	wrong := digest
	wrong[0] ^= 0xFF
	v, err = mustExecute(t, nil, [][]byte{preimage, wrong[:]}, lockScript, false)
	require.NoError(t, err)
	assert.Equal(t, Failed, v)
}

func TestExecuteCopyStackUnderflow(t *testing.T) {
	_, err := mustExecute(t, nil, nil, Script{Copy(1)}, false)
	var rerr *RuntimeError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, ErrStackUnderflow, rerr.Kind)
}

func TestExecuteBurnModeWrapsUnlockedIntoBurnt(t *testing.T) {
	v, err := mustExecute(t, nil, nil, Script{Push(1)}, true)
	require.NoError(t, err)
	assert.Equal(t, Burnt, v)
}

func TestExecuteForwardOnlySkipsAlwaysTerminate(t *testing.T) {
	// Jnz only ever advances pc, never rewinds it, so a script can run
	// at most len(script) steps: the instruction-limit cap can never
	// actually trip for any script this VM can decode. This pins that
	// property down rather than asserting an unreachable error path.
	lockScript := Script{Push(1), Jnz(0), Push(1)}
	v, err := mustExecute(t, nil, nil, lockScript, false)
	require.NoError(t, err)
	assert.Equal(t, Unlocked, v)
}

func TestExecuteLockScriptDecodeFailureIsFailedNotError(t *testing.T) {
	v, err := mustExecute(t, nil, nil, Script{{Op: Opcode(200)}}, false)
	require.NoError(t, err)
	assert.Equal(t, Failed, v)
}

func TestExecuteParamsSeedStackWithFirstParamNearestTop(t *testing.T) {
	// params[0] lands nearest the top after the unlock phase, so a
	// single hash opcode consumes it first. OP_BURN terminates with
	// Burnt regardless of the script's own burn-context flag.
	burnScript := Script{Sha256Op, Eq, Jnz(1), Fail, Burn}
	preimage := []byte{1, 2, 3}
	digest := sha256Sum(preimage)

	v, err := mustExecute(t, nil, [][]byte{preimage, digest[:]}, burnScript, false)
	require.NoError(t, err)
	assert.Equal(t, Burnt, v)
}
