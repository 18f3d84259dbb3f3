package platform

import (
	"fmt"

	"github.com/arthur-debert/scriptinit/pkg/logging"
	"github.com/arthur-debert/scriptinit/pkg/types"
)

// handlerKey is the registry class name scripts are associated with.
const handlerKey = "scriptinit"

// windowsAdapter performs no script decoration; it associates the script
// extension with the tool through the registry instead.
type windowsAdapter struct {
	runner  types.Runner
	ext     string
	exePath string
}

func (a *windowsAdapter) Family() types.OSFamily {
	return types.FamilyWindows
}

func (a *windowsAdapter) DecorateScript(content string) string {
	return content
}

func (a *windowsAdapter) MarkExecutable(path string) {}

// RegisterFileAssociation issues the two registry commands: extension to
// handler class, handler class to invocation command. Exit statuses are
// not inspected.
func (a *windowsAdapter) RegisterFileAssociation() {
	log := logging.GetLogger("platform.windows")

	extKey := fmt.Sprintf(`HKCU\Software\Classes\%s`, a.ext)
	if err := a.runner.Run("reg", "add", extKey, "/f", "/ve", "/t", "REG_SZ", "/d", handlerKey); err != nil {
		log.Debug().Err(err).Str("key", extKey).Msg("registry write failed")
	}

	cmdKey := fmt.Sprintf(`HKCU\Software\Classes\%s\Shell\Open\Command`, handlerKey)
	command := fmt.Sprintf(`"%s" "%%1" --`, a.exePath)
	if err := a.runner.Run("reg", "add", cmdKey, "/f", "/ve", "/t", "REG_EXPAND_SZ", "/d", command); err != nil {
		log.Debug().Err(err).Str("key", cmdKey).Msg("registry write failed")
	}
}
