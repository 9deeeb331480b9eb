// Command tgt-stub serves the stub target as an external plugin for
// hdldump --plugin.
//
// Logs are written to stderr, HDLTARGET_LOG_LEVEL sets the level and
// HDLTARGET_LOG_FORMAT=json switches to JSON lines.
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/jumppad-labs/hdltarget/logger"
	"github.com/jumppad-labs/hdltarget/plugins"
	"github.com/jumppad-labs/hdltarget/stub"
)

func newLogger() logger.Logger {
	level := os.Getenv("HDLTARGET_LOG_LEVEL")

	if os.Getenv("HDLTARGET_LOG_FORMAT") == "json" {
		if l, err := logger.NewJSONLogger(os.Stderr, level); err == nil {
			return l.WithPrefix("tgt-stub")
		}
	}

	lvl, err := logger.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}

	return logger.NewStdErrLogger(lvl).WithPrefix("tgt-stub")
}

func main() {
	plugins.Serve(stub.New(newLogger()))
}
