package main

import (
	"os"

	"github.com/devknife/devknife/cmd"
	"github.com/devknife/devknife/internal/config"
	"github.com/devknife/devknife/internal/logging"
)

func main() {
	config.Load()
	if err := logging.InitGlobal(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
	}
	defer func() {
		_ = logging.ShutdownGlobal()
	}()

	if err := cmd.Execute(); err != nil {
		_ = logging.ShutdownGlobal()
		os.Exit(1)
	}
}
