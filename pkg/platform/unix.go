package platform

import (
	"github.com/arthur-debert/scriptinit/pkg/logging"
	"github.com/arthur-debert/scriptinit/pkg/types"
)

// Shebang is the interpreter marker line prepended to scripts on
// unix-like hosts so they can be executed directly.
const Shebang = "#!/usr/bin/env scriptinit\n"

// unixAdapter decorates scripts with a shebang and marks them executable
// through chmod.
type unixAdapter struct {
	runner types.Runner
}

func (a *unixAdapter) Family() types.OSFamily {
	return types.FamilyUnix
}

func (a *unixAdapter) DecorateScript(content string) string {
	return Shebang + content
}

func (a *unixAdapter) MarkExecutable(path string) {
	log := logging.GetLogger("platform.unix")
	if err := a.runner.Run("chmod", "+x", path); err != nil {
		log.Debug().Err(err).Str("path", path).Msg("chmod failed")
	}
}

// RegisterFileAssociation is a no-op on unix-like hosts; the shebang
// already makes scripts directly executable.
func (a *unixAdapter) RegisterFileAssociation() {}
