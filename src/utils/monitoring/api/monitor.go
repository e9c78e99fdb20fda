package monitor_api

import (
	"net/http"
	"time"

	"github.com/warp-contracts/syncstate/src/utils/monitoring/report"
	"github.com/warp-contracts/syncstate/src/utils/task"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// How long after a database error the API is reported unhealthy
const unhealthyAfterDbError = 60

// Stores and computes monitor counters
type Monitor struct {
	*task.Task

	Report    report.Report
	collector *Collector
}

func NewMonitor() (self *Monitor) {
	self = new(Monitor)

	self.Report = report.Report{
		Run: &report.RunReport{},
		Api: &report.ApiReport{},
	}

	// Initialization
	self.Report.Run.State.StartTimestamp.Store(time.Now().Unix())

	self.collector = NewCollector().WithMonitor(self)

	self.Task = task.NewTask(nil, "monitor").
		WithPeriodicSubtaskFunc(30*time.Second, self.monitor)

	return
}

func (self *Monitor) GetReport() *report.Report {
	return &self.Report
}

func (self *Monitor) GetPrometheusCollector() (collector prometheus.Collector) {
	return self.collector
}

// Unhealthy when the last write failed recently and nothing succeeded since
func (self *Monitor) IsOK() bool {
	lastError := self.Report.Api.Errors.LastDbErrorTimestamp.Load()
	if lastError == 0 {
		return true
	}

	if self.Report.Api.State.LastSuccessfulUpdateTimestamp.Load() >= lastError {
		return true
	}

	return time.Now().Unix()-lastError > unhealthyAfterDbError
}

func (self *Monitor) monitor() (err error) {
	self.updateUptime()
	return nil
}

func (self *Monitor) updateUptime() {
	self.Report.Run.State.UpForSeconds.Store(uint64(time.Now().Unix() - self.Report.Run.State.StartTimestamp.Load()))
}

func (self *Monitor) OnGetState(c *gin.Context) {
	self.updateUptime()
	c.JSON(http.StatusOK, &self.Report)
}

func (self *Monitor) OnGetHealth(c *gin.Context) {
	if self.IsOK() {
		c.Status(http.StatusOK)
	} else {
		c.Status(http.StatusServiceUnavailable)
	}
}
