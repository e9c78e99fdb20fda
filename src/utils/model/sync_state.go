package model

import (
	"github.com/jackc/pgtype"
)

const (
	TableBlockchainSyncState = "blockchain_sync_state"

	// Id of the only row in the blockchain_sync_state table
	SyncStateId = 1
)

// Columns of the blockchain_sync_state table
const (
	ColumnSyncStateId                       = "id"
	ColumnSyncStateLastLowerSyncedSlot      = "last_lower_synced_slot"
	ColumnSyncStateLastUpperSyncedSlot      = "last_upper_synced_slot"
	ColumnSyncStateLastFinalizedBlock       = "last_finalized_block"
	ColumnSyncStateLastUpperSyncedBlockRoot = "last_upper_synced_block_root"
	ColumnSyncStateLastUpperSyncedBlockSlot = "last_upper_synced_block_slot"
)

// Progress of the blob indexer. There's always at most one row.
type BlockchainSyncState struct {
	// Id always equals one
	Id int `gorm:"primaryKey;autoIncrement:false"`

	// Lowest slot the indexer synced down to
	LastLowerSyncedSlot pgtype.Int8

	// Highest slot the indexer synced up to
	LastUpperSyncedSlot pgtype.Int8

	// Last finalized execution layer block number
	LastFinalizedBlock pgtype.Int8

	// Root of the block at the upper sync point, 0x-prefixed hex
	LastUpperSyncedBlockRoot pgtype.Varchar

	// Slot of the block with the root above
	LastUpperSyncedBlockSlot pgtype.Int8
}

func (BlockchainSyncState) TableName() string {
	return TableBlockchainSyncState
}

func Int8(v *uint64) pgtype.Int8 {
	if v == nil {
		return pgtype.Int8{Status: pgtype.Null}
	}
	return pgtype.Int8{Int: int64(*v), Status: pgtype.Present}
}

func Varchar(v *string) pgtype.Varchar {
	if v == nil {
		return pgtype.Varchar{Status: pgtype.Null}
	}
	return pgtype.Varchar{String: *v, Status: pgtype.Present}
}
