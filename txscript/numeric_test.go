package txscript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBytesToUint64(t *testing.T) {
	cases := []struct {
		name string
		in   []byte
		want uint64
	}{
		{"empty", nil, 0},
		{"single byte", []byte{10}, 10},
		{"leading zeros", []byte{0, 0, 5}, 5},
		{"eight bytes", []byte{0, 0x27, 0x8D, 0, 0, 0, 0, 0}, 0x00278D0000000000},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := bytesToUint64(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, v)
		})
	}
}

func TestBytesToUint64TooWide(t *testing.T) {
	_, err := bytesToUint64(make([]byte, 9))
	assert.ErrorIs(t, err, errOperandTooWide)
}

func TestExecEqIgnoresKind(t *testing.T) {
	s := NewStack(1024)
	require.NoError(t, s.Push(IntegerItem(5)))
	require.NoError(t, s.Push(BytesItem([]byte{5})))
	require.NoError(t, execEq(s))

	top, err := s.Top()
	require.NoError(t, err)
	assert.True(t, top.Truthy())
}

func TestExecEqMismatch(t *testing.T) {
	s := NewStack(1024)
	require.NoError(t, s.Push(IntegerItem(5)))
	require.NoError(t, s.Push(IntegerItem(6)))
	require.NoError(t, execEq(s))

	top, err := s.Top()
	require.NoError(t, err)
	assert.False(t, top.Truthy())
}
