// Package host defines the small query boundary the VM uses to read
// external chain facts: the block-age and time-age of the output being
// spent. The VM never mutates through this interface; implementations
// must be safe to share across concurrently executing evaluations.
package host

// Outpoint references a prior asset output being consumed: a tracker,
// index, shard, asset type, and quantity.
type Outpoint struct {
	Tracker   [32]byte
	Index     uint32
	ShardID   uint32
	AssetType [20]byte
	Quantity  uint64
}

// Client is the host blockchain client boundary. Both queries return
// "unknown" (ok=false) when the outpoint's creation context cannot be
// determined, which ChkTimelock treats as a plain comparison failure
// rather than a runtime error.
type Client interface {
	// BlockAge returns the number of blocks since the given outpoint's
	// output was created.
	BlockAge(op Outpoint) (age uint64, ok bool)

	// TimeAge returns the number of seconds since the given outpoint's
	// output was created.
	TimeAge(op Outpoint) (age uint64, ok bool)
}
