// Package manifest generates import manifests: one reference directive
// per loadable SDK assembly, so scripts can use platform SDKs without
// resolving packages.
package manifest

import (
	"bytes"
	"debug/pe"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/scriptinit/pkg/logging"
	"github.com/arthur-debert/scriptinit/pkg/platform"
	"github.com/arthur-debert/scriptinit/pkg/types"
)

// comDescriptorIndex is the optional-header data directory slot of the
// CLI header. A non-empty entry identifies a managed assembly.
const comDescriptorIndex = 14

// Generator emits reference directives for every valid assembly in an
// SDK's shared-framework directory.
type Generator struct {
	fs               types.FS
	env              types.Environment
	runtimeComponent string
}

// NewGenerator creates a Generator. runtimeComponent is the shared
// framework the running runtime's own assemblies belong to.
func NewGenerator(fs types.FS, env types.Environment, runtimeComponent string) *Generator {
	return &Generator{fs: fs, env: env, runtimeComponent: runtimeComponent}
}

// Generate builds the manifest for the given SDK component. The runtime's
// component name is substituted with the target's in the runtime assembly
// path; a missing directory or zero valid assemblies yields an empty
// manifest, not an error.
func (g *Generator) Generate(component string) (string, error) {
	log := logging.GetLogger("manifest")

	runtimeDir := g.env.RuntimeAssemblyDir()
	if runtimeDir == "" {
		log.Debug().Str("component", component).Msg("No runtime assembly directory, emitting empty manifest")
		return "", nil
	}

	sdkDir := strings.Replace(runtimeDir, g.runtimeComponent, component, 1)
	entries, err := g.fs.ReadDir(sdkDir)
	if err != nil {
		log.Debug().Str("dir", sdkDir).Msg("SDK directory not readable, emitting empty manifest")
		return "", nil
	}

	var sb strings.Builder
	count := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".dll") {
			continue
		}
		path := filepath.Join(sdkDir, entry.Name())
		if !g.isLoadableModule(path) {
			continue
		}
		fmt.Fprintf(&sb, "#r %q\n", platform.NormalizePath(path))
		count++
	}

	log.Debug().
		Str("component", component).
		Str("dir", sdkDir).
		Int("assemblies", count).
		Msg("Generated import manifest")

	return sb.String(), nil
}

// isLoadableModule reports whether the file's module identity can be
// read: a well-formed PE image carrying a CLI header. Files that fail
// the check are excluded silently.
func (g *Generator) isLoadableModule(path string) bool {
	data, err := g.fs.ReadFile(path)
	if err != nil {
		return false
	}
	f, err := pe.NewFile(bytes.NewReader(data))
	if err != nil {
		return false
	}
	defer f.Close()

	switch hdr := f.OptionalHeader.(type) {
	case *pe.OptionalHeader32:
		return hdr.DataDirectory[comDescriptorIndex].VirtualAddress != 0
	case *pe.OptionalHeader64:
		return hdr.DataDirectory[comDescriptorIndex].VirtualAddress != 0
	}
	return false
}
