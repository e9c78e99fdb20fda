package syncstate

import (
	"context"

	"github.com/warp-contracts/syncstate/src/utils/config"
	"github.com/warp-contracts/syncstate/src/utils/model"
	"github.com/warp-contracts/syncstate/src/utils/monitoring"
	monitor_api "github.com/warp-contracts/syncstate/src/utils/monitoring/api"
	"github.com/warp-contracts/syncstate/src/utils/task"
)

type Controller struct {
	*task.Task
}

// Main class that orchestrates everything.
// Connecting to the database gives up once ctx is done.
func NewController(ctx context.Context, config *config.Config) (self *Controller, err error) {
	self = new(Controller)
	self.Task = task.NewTask(config, "syncstate-controller")

	// SQL database
	db, err := model.NewConnection(ctx, config, "syncstate")
	if err != nil {
		return nil, err
	}

	// Monitoring
	monitor := monitor_api.NewMonitor()

	monitoringServer := monitoring.NewServer(config).
		WithMonitor(monitor)

	store := NewStore().
		WithDB(db)

	updater := NewUpdater().
		WithRepository(store).
		WithMonitor(monitor)

	server := NewServer(config).
		WithMonitor(monitor).
		WithUpdater(updater).
		WithRoutes()

	// Setup everything, will start upon calling Controller.Start()
	self.Task.
		WithSubtask(monitor.Task).
		WithSubtask(monitoringServer.Task).
		WithSubtask(server.Task).
		WithOnAfterStop(func() {
			sqlDB, err := db.DB()
			if err != nil {
				return
			}
			err = sqlDB.Close()
			if err != nil {
				self.Log.WithError(err).Error("Failed to close database connection")
			}
		})
	return
}
