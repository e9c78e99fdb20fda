package syncstate

import (
	"context"
	"errors"
	"time"

	"github.com/warp-contracts/syncstate/src/syncstate/request"
	"github.com/warp-contracts/syncstate/src/utils/logger"
	monitor_api "github.com/warp-contracts/syncstate/src/utils/monitoring/api"
	"github.com/warp-contracts/syncstate/src/utils/model"

	"github.com/sirupsen/logrus"
)

// Persists the sync state row
type Repository interface {
	// Creates the row if it's absent, otherwise sets only the given columns
	Upsert(ctx context.Context, state *model.BlockchainSyncState, columns []string) error
}

// Validates and saves indexer's progress
type Updater struct {
	log        *logrus.Entry
	repository Repository
	monitor    *monitor_api.Monitor
}

func NewUpdater() (self *Updater) {
	self = new(Updater)
	self.log = logger.NewSublogger("updater")
	return
}

func (self *Updater) WithRepository(repository Repository) *Updater {
	self.repository = repository
	return self
}

func (self *Updater) WithMonitor(monitor *monitor_api.Monitor) *Updater {
	self.monitor = monitor
	return self
}

// Fails with *request.ValidationError before touching the database if the input is inconsistent.
// Database errors are returned as they are.
func (self *Updater) Update(ctx context.Context, in *request.UpdateState) (err error) {
	self.report(func(r *monitor_api.Monitor) { r.Report.Api.State.SyncStateUpdatesReceived.Inc() })

	err = in.Validate()
	if err != nil {
		self.report(func(r *monitor_api.Monitor) { r.Report.Api.Errors.Validation.Inc() })
		return
	}

	columns := in.Columns()
	err = self.repository.Upsert(ctx, in.ToModel(), columns)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			self.report(func(r *monitor_api.Monitor) {
				r.Report.Api.Errors.DbError.Inc()
				r.Report.Api.Errors.LastDbErrorTimestamp.Store(time.Now().Unix())
			})
		}
		return
	}

	self.log.WithField("columns", columns).Debug("Sync state updated")
	self.report(func(r *monitor_api.Monitor) {
		r.Report.Api.State.SyncStateUpdatesSaved.Inc()
		r.Report.Api.State.LastSuccessfulUpdateTimestamp.Store(time.Now().Unix())
	})
	return nil
}

func (self *Updater) report(f func(*monitor_api.Monitor)) {
	if self.monitor != nil {
		f(self.monitor)
	}
}
