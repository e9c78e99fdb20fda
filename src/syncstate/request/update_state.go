package request

import (
	"errors"
	"regexp"

	"github.com/warp-contracts/syncstate/src/utils/model"
)

var ErrLowerAboveUpper = errors.New("Last lower synced slot must be less than or equal to last upper synced slot")

var blockRootRegexp = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)

// Input of the PUT /blockchain-sync-state endpoint. Nil fields are left unchanged.
// Numbers are capped at the max value of a BIGINT column.
type UpdateState struct {
	LastLowerSyncedSlot      *uint64 `json:"lastLowerSyncedSlot" binding:"omitempty,max=9223372036854775807"`
	LastUpperSyncedSlot      *uint64 `json:"lastUpperSyncedSlot" binding:"omitempty,max=9223372036854775807"`
	LastFinalizedBlock       *uint64 `json:"lastFinalizedBlock" binding:"omitempty,max=9223372036854775807"`
	LastUpperSyncedBlockRoot *string `json:"lastUpperSyncedBlockRoot" binding:"omitempty,blockroot"`
	LastUpperSyncedBlockSlot *uint64 `json:"lastUpperSyncedBlockSlot" binding:"omitempty,max=9223372036854775807"`
}

// Relation between fields that isn't expressed by the binding tags
func (self *UpdateState) Validate() error {
	if self.LastLowerSyncedSlot != nil &&
		self.LastUpperSyncedSlot != nil &&
		*self.LastLowerSyncedSlot > *self.LastUpperSyncedSlot {
		return NewValidationError(ErrLowerAboveUpper).
			WithField("lastLowerSyncedSlot", *self.LastLowerSyncedSlot).
			WithField("lastUpperSyncedSlot", *self.LastUpperSyncedSlot)
	}
	return nil
}

func (self *UpdateState) IsEmpty() bool {
	return len(self.Columns()) == 0
}

// Names of columns that are set in this update
func (self *UpdateState) Columns() (out []string) {
	if self.LastLowerSyncedSlot != nil {
		out = append(out, model.ColumnSyncStateLastLowerSyncedSlot)
	}
	if self.LastUpperSyncedSlot != nil {
		out = append(out, model.ColumnSyncStateLastUpperSyncedSlot)
	}
	if self.LastFinalizedBlock != nil {
		out = append(out, model.ColumnSyncStateLastFinalizedBlock)
	}
	if self.LastUpperSyncedBlockRoot != nil {
		out = append(out, model.ColumnSyncStateLastUpperSyncedBlockRoot)
	}
	if self.LastUpperSyncedBlockSlot != nil {
		out = append(out, model.ColumnSyncStateLastUpperSyncedBlockSlot)
	}
	return
}

// Row inserted when there's no sync state yet, omitted fields are NULL
func (self *UpdateState) ToModel() *model.BlockchainSyncState {
	return &model.BlockchainSyncState{
		Id:                       model.SyncStateId,
		LastLowerSyncedSlot:      model.Int8(self.LastLowerSyncedSlot),
		LastUpperSyncedSlot:      model.Int8(self.LastUpperSyncedSlot),
		LastFinalizedBlock:       model.Int8(self.LastFinalizedBlock),
		LastUpperSyncedBlockRoot: model.Varchar(self.LastUpperSyncedBlockRoot),
		LastUpperSyncedBlockSlot: model.Int8(self.LastUpperSyncedBlockSlot),
	}
}

func IsBlockRoot(s string) bool {
	return blockRootRegexp.MatchString(s)
}
