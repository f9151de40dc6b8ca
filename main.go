package main

import (
	"os"

	"github.com/mdlint/mdlint/cmd"
	errUtils "github.com/mdlint/mdlint/errors"
	log "github.com/mdlint/mdlint/pkg/logger"
)

func main() {
	// Use errUtils.OsExit so tests can intercept the exit.
	errUtils.OsExit(run())
}

// run executes the CLI and returns the process exit code.
func run() int {
	err := cmd.Execute()
	if err == nil {
		return errUtils.ExitCodeSuccess
	}

	formatted := errUtils.Format(err, errUtils.DefaultFormatterConfig())
	os.Stderr.WriteString(formatted + "\n")

	exitCode := errUtils.GetExitCode(err)
	log.Debug("Exiting with exit code", "code", exitCode)
	return exitCode
}
