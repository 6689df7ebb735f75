package host

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/util"
)

func openTestClient(t *testing.T) *LevelDBClient {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "scriptvm-host")
	c, err := OpenLevelDBClient(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

// countPrefix counts the keys stored under prefix, to sanity-check the
// key layout.
func countPrefix(db *leveldb.DB, prefix []byte) int {
	iter := db.NewIterator(util.BytesPrefix(prefix), nil)
	defer iter.Release()
	n := 0
	for iter.Next() {
		n++
	}
	return n
}

func TestLevelDBClientRecordAndQuery(t *testing.T) {
	c := openTestClient(t)
	op := Outpoint{Index: 1, ShardID: 2, Quantity: 100}

	_, ok := c.BlockAge(op)
	assert.False(t, ok)

	require.NoError(t, c.RecordBlockAge(op, 7))
	age, ok := c.BlockAge(op)
	require.True(t, ok)
	assert.Equal(t, uint64(7), age)

	require.NoError(t, c.RecordTimeAge(op, 2592000))
	age, ok = c.TimeAge(op)
	require.True(t, ok)
	assert.Equal(t, uint64(2592000), age)
}

func TestLevelDBClientKeysAreSeparatedByPrefix(t *testing.T) {
	c := openTestClient(t)
	op1 := Outpoint{Index: 1}
	op2 := Outpoint{Index: 2}

	require.NoError(t, c.RecordBlockAge(op1, 1))
	require.NoError(t, c.RecordBlockAge(op2, 2))
	require.NoError(t, c.RecordTimeAge(op1, 3))

	assert.Equal(t, 2, countPrefix(c.db, blockAgePrefix))
	assert.Equal(t, 1, countPrefix(c.db, timeAgePrefix))
}
