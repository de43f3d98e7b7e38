package main

import (
	"os"
	"path/filepath"

	"github.com/kaspanet/kaspawallet/logger"
)

const logFileName = "kaspawallet.log"

var (
	backend = logger.NewBackend()
	log     = backend.Logger("KSWL")
)

func init() {
	backend.AddLogWriter(logger.NopWriteCloser(os.Stderr), logger.LevelWarn)
	log.SetLevel(logger.LevelDebug)

	homeDir, err := os.UserHomeDir()
	if err == nil {
		logFile := filepath.Join(homeDir, ".kaspawallet", logFileName)
		err := backend.AddLogFile(logFile, logger.LevelDebug)
		if err != nil {
			log.Warnf("Error adding log file %s as log rotator: %s", logFile, err)
		}
	}
}
