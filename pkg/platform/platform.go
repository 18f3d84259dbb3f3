// Package platform supplies OS-conditional behavior for provisioning:
// interpreter marker lines, executable bits, and file association. The
// adapter is selected once at startup and injected, so nothing else
// branches on OS identity.
package platform

import (
	"strings"

	"github.com/arthur-debert/scriptinit/pkg/types"
)

// Adapter is the per-platform capability set consumed by provisioning.
type Adapter interface {
	// Family returns the platform family this adapter serves.
	Family() types.OSFamily
	// DecorateScript prepares script content for direct execution on
	// this platform.
	DecorateScript(content string) string
	// MarkExecutable makes the file at path directly executable.
	// Best-effort: failures are logged, never propagated.
	MarkExecutable(path string)
	// RegisterFileAssociation associates the script extension with the
	// tool. Best-effort, independent of folder provisioning.
	RegisterFileAssociation()
}

// New selects the adapter for the given family.
func New(family types.OSFamily, runner types.Runner, scriptExtension, exePath string) Adapter {
	if family == types.FamilyWindows {
		return &windowsAdapter{
			runner:  runner,
			ext:     scriptExtension,
			exePath: exePath,
		}
	}
	return &unixAdapter{runner: runner}
}

// NormalizePath converts backslash separators to forward slashes.
// Generated content may be consumed by tools that expect POSIX-style
// paths regardless of host OS.
func NormalizePath(path string) string {
	return strings.ReplaceAll(path, `\`, "/")
}
