// pkg/templates/templates_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test the embedded template store

package templates_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/scriptinit/pkg/errors"
	"github.com/arthur-debert/scriptinit/pkg/templates"
)

func TestReadTemplateKnownIdentifiers(t *testing.T) {
	store := templates.NewStore()

	tests := []struct {
		id   string
		want string
	}{
		{templates.Launch, templates.ToolPathToken},
		{templates.LaunchManaged, `"program": "scriptinit"`},
		{templates.Omnisharp, templates.TargetFrameworkToken},
		{templates.MainScript, "Hello world!"},
		{templates.HTTPServer, `#load "base/aspnet.csx"`},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			content, err := store.ReadTemplate(tt.id)
			require.NoError(t, err)
			assert.True(t, strings.Contains(content, tt.want), "template %s should contain %q", tt.id, tt.want)
		})
	}
}

func TestReadTemplateUnknownIdentifier(t *testing.T) {
	store := templates.NewStore()

	_, err := store.ReadTemplate("no-such-template")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrTemplateNotFound))
}
