package syncstate

import (
	"context"

	"github.com/warp-contracts/syncstate/src/utils/logger"
	"github.com/warp-contracts/syncstate/src/utils/model"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Postgres repository of the sync state
type Store struct {
	log *logrus.Entry
	db  *gorm.DB
}

func NewStore() (self *Store) {
	self = new(Store)
	self.log = logger.NewSublogger("store")
	return
}

func (self *Store) WithDB(db *gorm.DB) *Store {
	self.db = db
	return self
}

// Single INSERT ... ON CONFLICT statement, atomic without an explicit transaction
func (self *Store) Upsert(ctx context.Context, state *model.BlockchainSyncState, columns []string) (err error) {
	err = self.upsertQuery(ctx, state, columns).Error
	if err != nil {
		self.log.WithError(err).Error("Failed to upsert sync state")
		return
	}
	return
}

func (self *Store) upsertQuery(ctx context.Context, state *model.BlockchainSyncState, columns []string) *gorm.DB {
	onConflict := clause.OnConflict{
		Columns: []clause.Column{{Name: model.ColumnSyncStateId}},
	}
	if len(columns) == 0 {
		// Nothing to update, only make sure the row exists
		onConflict.DoNothing = true
	} else {
		onConflict.DoUpdates = clause.AssignmentColumns(columns)
	}

	return self.db.WithContext(ctx).
		Clauses(onConflict).
		Create(state)
}
