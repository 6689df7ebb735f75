package host

import (
	"encoding/binary"

	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
)

// Key layout: a short ASCII prefix identifying the record kind, followed
// by the binary key. Two tables share one database: block-age records and
// time-age records, each keyed by the serialized Outpoint.
var (
	blockAgePrefix = []byte("BLKAGE")
	timeAgePrefix  = []byte("TIMAGE")
)

// LevelDBClient is a persistent host.Client backed by goleveldb, for
// deployments that record outpoint ages as they confirm rather than
// recomputing them from a live chain index on every query. Persistent
// storage is out of scope for the VM core itself, but nothing stops one
// implementation of the host query boundary from being disk-backed.
type LevelDBClient struct {
	db *leveldb.DB
}

// OpenLevelDBClient opens (creating if absent) a goleveldb database at path.
func OpenLevelDBClient(path string) (*LevelDBClient, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "open leveldb at %s", path)
	}
	return &LevelDBClient{db: db}, nil
}

// Close releases the underlying database handle.
func (c *LevelDBClient) Close() error { return c.db.Close() }

func outpointKey(prefix []byte, op Outpoint) []byte {
	key := make([]byte, len(prefix)+32+4+4+20+8)
	n := copy(key, prefix)
	n += copy(key[n:], op.Tracker[:])
	binary.BigEndian.PutUint32(key[n:], op.Index)
	n += 4
	binary.BigEndian.PutUint32(key[n:], op.ShardID)
	n += 4
	n += copy(key[n:], op.AssetType[:])
	binary.BigEndian.PutUint64(key[n:], op.Quantity)
	return key
}

// RecordBlockAge stores the block-age value a confirmed spend observed for
// op, for later BlockAge queries.
func (c *LevelDBClient) RecordBlockAge(op Outpoint, age uint64) error {
	return c.put(blockAgePrefix, op, age)
}

// RecordTimeAge stores the time-age value a confirmed spend observed for
// op, for later TimeAge queries.
func (c *LevelDBClient) RecordTimeAge(op Outpoint, age uint64) error {
	return c.put(timeAgePrefix, op, age)
}

func (c *LevelDBClient) put(prefix []byte, op Outpoint, age uint64) error {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], age)
	return c.db.Put(outpointKey(prefix, op), buf[:], nil)
}

// BlockAge implements Client.
func (c *LevelDBClient) BlockAge(op Outpoint) (uint64, bool) { return c.get(blockAgePrefix, op) }

// TimeAge implements Client.
func (c *LevelDBClient) TimeAge(op Outpoint) (uint64, bool) { return c.get(timeAgePrefix, op) }

func (c *LevelDBClient) get(prefix []byte, op Outpoint) (uint64, bool) {
	data, err := c.db.Get(outpointKey(prefix, op), nil)
	if err != nil {
		return 0, false
	}
	if len(data) != 8 {
		return 0, false
	}
	return binary.BigEndian.Uint64(data), true
}

var _ Client = (*LevelDBClient)(nil)
