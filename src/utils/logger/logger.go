package logger

import (
	"os"

	"github.com/warp-contracts/syncstate/src/utils/config"

	"github.com/sirupsen/logrus"
)

// Initialized before any package level sublogger is created
var logger = logrus.New()

func Init(config *config.Config) (err error) {
	level, err := logrus.ParseLevel(config.LogLevel)
	if err != nil {
		return
	}
	logger.SetLevel(level)
	logger.SetOutput(os.Stdout)

	formatter := &logrus.TextFormatter{
		FullTimestamp: true,
	}
	logger.SetFormatter(formatter)

	return nil
}

func NewSublogger(tag string) *logrus.Entry {
	return logger.WithFields(logrus.Fields{"module": "syncstate." + tag})
}
