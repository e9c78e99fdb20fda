package syncstate

import (
	"context"
	"sync"

	"github.com/warp-contracts/syncstate/src/utils/model"
)

// In-memory repository with the semantics of INSERT ... ON CONFLICT DO UPDATE
type memoryRepository struct {
	mtx   sync.Mutex
	state *model.BlockchainSyncState
	err   error
	calls int
}

func (self *memoryRepository) Upsert(ctx context.Context, state *model.BlockchainSyncState, columns []string) error {
	self.mtx.Lock()
	defer self.mtx.Unlock()

	self.calls++
	if self.err != nil {
		return self.err
	}

	if self.state == nil {
		created := *state
		self.state = &created
		return nil
	}

	for _, column := range columns {
		switch column {
		case model.ColumnSyncStateLastLowerSyncedSlot:
			self.state.LastLowerSyncedSlot = state.LastLowerSyncedSlot
		case model.ColumnSyncStateLastUpperSyncedSlot:
			self.state.LastUpperSyncedSlot = state.LastUpperSyncedSlot
		case model.ColumnSyncStateLastFinalizedBlock:
			self.state.LastFinalizedBlock = state.LastFinalizedBlock
		case model.ColumnSyncStateLastUpperSyncedBlockRoot:
			self.state.LastUpperSyncedBlockRoot = state.LastUpperSyncedBlockRoot
		case model.ColumnSyncStateLastUpperSyncedBlockSlot:
			self.state.LastUpperSyncedBlockSlot = state.LastUpperSyncedBlockSlot
		}
	}
	return nil
}

func (self *memoryRepository) get() *model.BlockchainSyncState {
	self.mtx.Lock()
	defer self.mtx.Unlock()
	if self.state == nil {
		return nil
	}
	out := *self.state
	return &out
}

func u64(v uint64) *uint64 { return &v }
func str(v string) *string { return &v }

const blockRoot = "0x6dcda1a3357f0d2b1f4c4d6dfd4e7bc2e0d92d12a1e8a5b2d7b9b0cc0d20c5a1"
