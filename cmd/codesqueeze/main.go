package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/codesqueeze/codesqueeze/internal/cli"
	"github.com/codesqueeze/codesqueeze/internal/utils"
)

// main is the entry point for the codesqueeze command.
func main() {
	loggerInstance, loggerInitializationError := utils.NewApplicationLogger()
	if loggerInitializationError != nil {
		panic(fmt.Errorf(utils.LoggerInitializationFailedMessageFormat, loggerInitializationError))
	}
	defer func() { _ = loggerInstance.Sync() }()
	if applicationExecutionError := cli.Execute(loggerInstance); applicationExecutionError != nil {
		loggerInstance.Fatal(utils.ApplicationExecutionFailedMessage, zap.Error(applicationExecutionError))
	}
}
