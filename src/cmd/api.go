package cmd

import (
	"github.com/warp-contracts/syncstate/src/syncstate"
	"github.com/warp-contracts/syncstate/src/utils/logger"

	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(apiCmd)
}

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Serves the endpoint the indexer uses to save its sync state",
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		controller, err := syncstate.NewController(applicationCtx, conf)
		if err != nil {
			return
		}

		err = controller.Start()
		if err != nil {
			return
		}

		select {
		case <-controller.CtxRunning.Done():
		case <-applicationCtx.Done():
		}

		controller.StopWait()

		return
	},
	PostRunE: func(cmd *cobra.Command, args []string) (err error) {
		log := logger.NewSublogger("root-cmd")
		log.Debug("Finished api command")
		return
	},
}
