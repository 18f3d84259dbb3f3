// Package provision implements the idempotent provisioning engine: the
// create-or-skip primitive every scaffolding step uses, and the patch
// engine for the one file whose content may drift.
package provision

import (
	"path/filepath"

	"github.com/arthur-debert/scriptinit/pkg/errors"
	"github.com/arthur-debert/scriptinit/pkg/logging"
	"github.com/arthur-debert/scriptinit/pkg/platform"
	"github.com/arthur-debert/scriptinit/pkg/types"
)

// Target describes one file to provision. Targets are transient; one is
// built per step per invocation.
type Target struct {
	// Path is the destination path.
	Path string
	// Content renders the desired content. It is only called when the
	// file will actually be written.
	Content func() (string, error)
	// Decorate applies the platform's script decoration to the content.
	Decorate bool
	// MarkExecutable marks the written file executable on platforms
	// that support it.
	MarkExecutable bool
}

// Provisioner applies the create-or-skip policy for provisioning targets.
type Provisioner struct {
	fs      types.FS
	adapter platform.Adapter
}

// New creates a Provisioner writing through fs with the given platform
// adapter.
func New(fs types.FS, adapter platform.Adapter) *Provisioner {
	return &Provisioner{fs: fs, adapter: adapter}
}

// Provision creates the target file if it does not exist. Existence alone
// gates re-creation: no content comparison is performed. Content is
// computed fully in memory and written in a single call, UTF-8 with no
// byte-order mark.
func (p *Provisioner) Provision(target Target) (types.Outcome, error) {
	log := logging.GetLogger("provision")

	if _, err := p.fs.Stat(target.Path); err == nil {
		log.Debug().Str("path", target.Path).Msg("Target exists, skipping")
		return types.OutcomeSkipped, nil
	}

	content, err := target.Content()
	if err != nil {
		return "", err
	}
	if target.Decorate {
		content = p.adapter.DecorateScript(content)
	}

	if err := p.fs.MkdirAll(filepath.Dir(target.Path), 0755); err != nil {
		return "", errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory for %s", target.Path)
	}
	if err := p.fs.WriteFile(target.Path, []byte(content), 0644); err != nil {
		return "", errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", target.Path)
	}

	if target.MarkExecutable {
		p.adapter.MarkExecutable(target.Path)
	}

	log.Debug().Str("path", target.Path).Msg("Target created")
	return types.OutcomeCreated, nil
}
