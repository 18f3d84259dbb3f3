// Package executor runs external commands for the platform adapters
// (chmod, registry writes). These calls are best-effort: the exit status
// is logged but callers do not act on it.
package executor

import (
	"os/exec"

	"github.com/arthur-debert/scriptinit/pkg/logging"
	"github.com/arthur-debert/scriptinit/pkg/types"
)

// osRunner implements types.Runner using os/exec.
type osRunner struct{}

// NewOS creates a Runner that executes real processes.
func NewOS() types.Runner {
	return &osRunner{}
}

// Run executes the program and blocks until it exits. There is no
// timeout; a hang in the external process hangs the run.
func (r *osRunner) Run(program string, args ...string) error {
	log := logging.GetLogger("executor")
	logging.LogCommand(program, args)

	err := exec.Command(program, args...).Run()
	if err != nil {
		log.Debug().Err(err).Str("program", program).Msg("External command failed")
	}
	return err
}
