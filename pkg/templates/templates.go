// Package templates is the embedded template store. Templates are
// compiled into the binary, so no external files are needed at run time.
package templates

import (
	"embed"

	"github.com/arthur-debert/scriptinit/pkg/errors"
	"github.com/arthur-debert/scriptinit/pkg/types"
)

// Template identifiers known to the store.
const (
	Launch        = "launch.json"
	LaunchManaged = "launch.managed.json"
	Omnisharp     = "omnisharp.json"
	MainScript    = "main.csx"
	HTTPServer    = "httpserver.csx"
)

// Tokens substituted into rendered templates.
const (
	// ToolPathToken marks where the absolute path to the tool's entry
	// module goes in the launch configuration.
	ToolPathToken = "%SCRIPTINIT_PATH%"
	// TargetFrameworkToken marks where the probed target framework
	// moniker goes in the editor configuration.
	TargetFrameworkToken = "%TARGET_FRAMEWORK%"
)

//go:embed templates/*
var templatesFS embed.FS

// store implements types.Resolver over the embedded filesystem.
type store struct{}

// NewStore returns the embedded template resolver.
func NewStore() types.Resolver {
	return &store{}
}

func (s *store) ReadTemplate(id string) (string, error) {
	content, err := templatesFS.ReadFile("templates/" + id)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrTemplateNotFound, "unknown template %q", id)
	}
	return string(content), nil
}
