package syncstate

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/warp-contracts/syncstate/src/syncstate/request"
	"github.com/warp-contracts/syncstate/src/utils/auth"
	"github.com/warp-contracts/syncstate/src/utils/config"
	. "github.com/warp-contracts/syncstate/src/utils/logger"
	monitor_api "github.com/warp-contracts/syncstate/src/utils/monitoring/api"
	"github.com/warp-contracts/syncstate/src/utils/task"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

const BasePath = "/blockchain-sync-state"

// Rest API used by the indexer to report its progress
type Server struct {
	*task.Task

	httpServer *http.Server
	Router     *gin.Engine

	updater *Updater
	monitor *monitor_api.Monitor
}

func NewServer(config *config.Config) (self *Server) {
	self = new(Server)

	self.Task = task.NewTask(config, "api-server").
		WithSubtaskFunc(self.run).
		WithOnStop(self.stop)

	if !config.IsDevelopment {
		gin.SetMode(gin.ReleaseMode)
	}

	self.Router = gin.New()
	self.Router.Use(gin.Recovery(), RequestId())

	self.httpServer = &http.Server{
		Addr:         self.Config.Api.ListenAddress,
		Handler:      self.Router,
		ReadTimeout:  self.Config.Api.ServerReadTimeout,
		WriteTimeout: self.Config.Api.ServerWriteTimeout,
	}

	return
}

func (self *Server) WithMonitor(monitor *monitor_api.Monitor) *Server {
	self.monitor = monitor
	return self
}

func (self *Server) WithUpdater(updater *Updater) *Server {
	self.updater = updater
	return self
}

// Registers routes, needs to be called after all With* setters
func (self *Server) WithRoutes() *Server {
	verifier := auth.NewVerifier(self.Config.Api.SecretKey).
		WithAcceptableSkew(self.Config.Api.TokenAcceptableSkew)
	if self.monitor != nil {
		verifier = verifier.WithOnReject(
			func() { self.monitor.Report.Api.Errors.Unauthorized.Inc() },
			func() { self.monitor.Report.Api.Errors.Forbidden.Inc() },
		)
	}

	indexer := self.Router.Group(BasePath, verifier.Require(auth.RoleIndexer))
	{
		indexer.PUT("", self.onPutSyncState())
	}

	return self
}

func (self *Server) onPutSyncState() gin.HandlerFunc {
	return func(c *gin.Context) {
		var in = new(request.UpdateState)
		err := c.ShouldBindWith(in, binding.JSON)
		if err != nil && !errors.Is(err, io.EOF) {
			self.badRequest()
			LOGE(c, err, http.StatusBadRequest).Info("Failed to parse request")
			return
		}

		err = self.updater.Update(c.Request.Context(), in)
		if err != nil {
			var validationErr *request.ValidationError
			if errors.As(err, &validationErr) {
				LOGE(c, err, http.StatusBadRequest).WithFields(validationErr.Fields).Info("Invalid sync state")
				return
			}

			LOGE(c, err, http.StatusInternalServerError).Error("Failed to update sync state")
			return
		}

		c.Status(http.StatusOK)
	}
}

func (self *Server) badRequest() {
	if self.monitor != nil {
		self.monitor.Report.Api.Errors.BadRequest.Inc()
	}
}

func (self *Server) run() (err error) {
	self.Log.WithField("address", self.httpServer.Addr).Info("Starting API server")
	err = self.httpServer.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		self.Log.WithError(err).Error("Failed to start REST server")
		return
	}
	return nil
}

func (self *Server) stop() {
	ctx, cancel := context.WithTimeout(context.Background(), self.Config.StopTimeout)
	defer cancel()

	err := self.httpServer.Shutdown(ctx)
	if err != nil {
		self.Log.WithError(err).Error("Failed to gracefully shutdown REST server")
		return
	}
}
