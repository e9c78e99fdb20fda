package monitor_api

import (
	"github.com/prometheus/client_golang/prometheus"
)

type Collector struct {
	monitor *Monitor

	// Run
	UpForSeconds *prometheus.Desc

	// State
	SyncStateUpdatesReceived *prometheus.Desc
	SyncStateUpdatesSaved    *prometheus.Desc

	// Errors
	Unauthorized *prometheus.Desc
	Forbidden    *prometheus.Desc
	BadRequest   *prometheus.Desc
	Validation   *prometheus.Desc
	DbError      *prometheus.Desc
}

func NewCollector() *Collector {
	labels := prometheus.Labels{
		"app": "syncstate",
	}

	return &Collector{
		// Run
		UpForSeconds: prometheus.NewDesc("up_for_seconds", "", nil, labels),

		// State
		SyncStateUpdatesReceived: prometheus.NewDesc("sync_state_updates_received", "", nil, labels),
		SyncStateUpdatesSaved:    prometheus.NewDesc("sync_state_updates_saved", "", nil, labels),

		// Errors
		Unauthorized: prometheus.NewDesc("error_unauthorized", "", nil, labels),
		Forbidden:    prometheus.NewDesc("error_forbidden", "", nil, labels),
		BadRequest:   prometheus.NewDesc("error_bad_request", "", nil, labels),
		Validation:   prometheus.NewDesc("error_validation", "", nil, labels),
		DbError:      prometheus.NewDesc("error_db", "", nil, labels),
	}
}

func (self *Collector) WithMonitor(m *Monitor) *Collector {
	self.monitor = m
	return self
}

func (self *Collector) Describe(ch chan<- *prometheus.Desc) {
	// Run
	ch <- self.UpForSeconds

	// State
	ch <- self.SyncStateUpdatesReceived
	ch <- self.SyncStateUpdatesSaved

	// Errors
	ch <- self.Unauthorized
	ch <- self.Forbidden
	ch <- self.BadRequest
	ch <- self.Validation
	ch <- self.DbError
}

// Collect implements required collect function for all promehteus collectors
func (self *Collector) Collect(ch chan<- prometheus.Metric) {
	r := self.monitor.GetReport()

	// Run
	ch <- prometheus.MustNewConstMetric(self.UpForSeconds, prometheus.GaugeValue, float64(r.Run.State.UpForSeconds.Load()))

	// State
	ch <- prometheus.MustNewConstMetric(self.SyncStateUpdatesReceived, prometheus.CounterValue, float64(r.Api.State.SyncStateUpdatesReceived.Load()))
	ch <- prometheus.MustNewConstMetric(self.SyncStateUpdatesSaved, prometheus.CounterValue, float64(r.Api.State.SyncStateUpdatesSaved.Load()))

	// Errors
	ch <- prometheus.MustNewConstMetric(self.Unauthorized, prometheus.CounterValue, float64(r.Api.Errors.Unauthorized.Load()))
	ch <- prometheus.MustNewConstMetric(self.Forbidden, prometheus.CounterValue, float64(r.Api.Errors.Forbidden.Load()))
	ch <- prometheus.MustNewConstMetric(self.BadRequest, prometheus.CounterValue, float64(r.Api.Errors.BadRequest.Load()))
	ch <- prometheus.MustNewConstMetric(self.Validation, prometheus.CounterValue, float64(r.Api.Errors.Validation.Load()))
	ch <- prometheus.MustNewConstMetric(self.DbError, prometheus.CounterValue, float64(r.Api.Errors.DbError.Load()))
}
