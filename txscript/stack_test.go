package txscript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStackPushPop(t *testing.T) {
	s := NewStack(100)
	require.NoError(t, s.Push(IntegerItem(1)))
	require.NoError(t, s.Push(BytesItem([]byte{0xAA, 0xBB})))
	assert.Equal(t, 2, s.Depth())

	top, err := s.Pop()
	require.NoError(t, err)
	assert.Equal(t, BytesItem([]byte{0xAA, 0xBB}), top)

	top, err = s.Pop()
	require.NoError(t, err)
	assert.Equal(t, IntegerItem(1), top)

	_, err = s.Pop()
	assert.ErrorIs(t, err, errStackUnderflow)
}

func TestStackOutOfMemory(t *testing.T) {
	s := NewStack(2)
	require.NoError(t, s.Push(BytesItem([]byte{1})))
	require.NoError(t, s.Push(BytesItem([]byte{2})))

	err := s.Push(BytesItem([]byte{3}))
	require.Error(t, err)
	var rerr *RuntimeError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, ErrOutOfMemory, rerr.Kind)
}

func TestStackDupSwapCopyDrop(t *testing.T) {
	s := NewStack(100)
	require.NoError(t, s.Push(IntegerItem(1)))
	require.NoError(t, s.Push(IntegerItem(2)))

	require.NoError(t, s.Dup())
	assert.Equal(t, 3, s.Depth())
	top, _ := s.Top()
	assert.Equal(t, IntegerItem(2), top)

	require.NoError(t, s.Swap())
	top, _ = s.Top()
	assert.Equal(t, IntegerItem(2), top)

	require.NoError(t, s.Copy(2))
	top, _ = s.Top()
	assert.Equal(t, IntegerItem(1), top)

	require.NoError(t, s.Drop(1))
	assert.Equal(t, 3, s.Depth())
}

func TestStackItemTruthy(t *testing.T) {
	assert.False(t, IntegerItem(0).Truthy())
	assert.True(t, IntegerItem(1).Truthy())
	assert.False(t, BytesItem(nil).Truthy())
	assert.False(t, BytesItem([]byte{0, 0}).Truthy())
	assert.True(t, BytesItem([]byte{0, 1}).Truthy())
}

func TestStackItemEqualIgnoresKind(t *testing.T) {
	assert.True(t, IntegerItem(5).equal(BytesItem([]byte{5})))
	assert.False(t, IntegerItem(5).equal(BytesItem([]byte{6})))
}
