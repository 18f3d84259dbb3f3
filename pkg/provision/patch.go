package provision

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/arthur-debert/scriptinit/pkg/errors"
	"github.com/arthur-debert/scriptinit/pkg/logging"
	"github.com/arthur-debert/scriptinit/pkg/platform"
	"github.com/arthur-debert/scriptinit/pkg/templates"
	"github.com/arthur-debert/scriptinit/pkg/types"
)

// toolPathPatternFormat is the versioned contract between the launch
// template and the patch engine: a quoted string ending in the tool's
// entry file name, matched multiline inside the larger document. If the
// template's field format changes, this must change in lockstep.
const toolPathPatternFormat = `(?m)"[^"\s]*%s"`

// ToolPathPattern returns the patch pattern for the given entry file name.
func ToolPathPattern(entryFile string) string {
	return fmt.Sprintf(toolPathPatternFormat, regexp.QuoteMeta(entryFile))
}

// LaunchPatcher keeps the debugger launch configuration correct across
// install moves. It owns the whole file only in the managed-install case;
// otherwise it touches a single field and preserves everything else,
// because the user may have added custom configurations.
type LaunchPatcher struct {
	fs            types.FS
	resolver      types.Resolver
	env           types.Environment
	installMarker string
	entryFile     string
}

// NewLaunchPatcher creates a LaunchPatcher. installMarker is the
// substring of the install location that identifies a managed install;
// entryFile is the tool's entry module file name.
func NewLaunchPatcher(fs types.FS, resolver types.Resolver, env types.Environment, installMarker, entryFile string) *LaunchPatcher {
	return &LaunchPatcher{
		fs:            fs,
		resolver:      resolver,
		env:           env,
		installMarker: installMarker,
		entryFile:     entryFile,
	}
}

// Ensure brings the launch configuration at path to the correct state:
//   - absent: write the flavor-appropriate full template, Created
//   - present, managed install: byte-compare against the canonical
//     template, overwrite in full only when different
//   - present, path-dependent install: patch only the tool-path field;
//     a pattern miss leaves the file as authored and is not an error
func (lp *LaunchPatcher) Ensure(path string) (types.Outcome, error) {
	log := logging.GetLogger("provision.launch")

	managed := lp.isManagedInstall()
	desired, err := lp.renderTemplate(managed)
	if err != nil {
		return "", err
	}

	if _, err := lp.fs.Stat(path); err != nil {
		if err := lp.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return "", errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory for %s", path)
		}
		if err := lp.fs.WriteFile(path, []byte(desired), 0644); err != nil {
			return "", errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path)
		}
		log.Debug().Str("path", path).Bool("managed", managed).Msg("Launch configuration created")
		return types.OutcomeCreated, nil
	}

	data, err := lp.fs.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileRead, "failed to read %s", path)
	}
	current := string(data)

	if managed {
		if current == desired {
			return types.OutcomeUnchanged, nil
		}
		if err := lp.fs.WriteFile(path, []byte(desired), 0644); err != nil {
			return "", errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path)
		}
		log.Debug().Str("path", path).Msg("Launch configuration overwritten with managed template")
		return types.OutcomeUpdated, nil
	}

	re := regexp.MustCompile(ToolPathPattern(lp.entryFile))
	if !re.MatchString(current) {
		log.Debug().Str("path", path).Msg("Tool path field not found, leaving file as authored")
		return types.OutcomePatternMiss, nil
	}

	patched := re.ReplaceAllLiteralString(current, `"`+lp.toolPath()+`"`)
	if patched == current {
		return types.OutcomeUnchanged, nil
	}
	if err := lp.fs.WriteFile(path, []byte(patched), 0644); err != nil {
		return "", errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path)
	}
	log.Debug().Str("path", path).Str("toolPath", lp.toolPath()).Msg("Launch configuration tool path patched")
	return types.OutcomeUpdated, nil
}

// isManagedInstall reports whether the tool is installed in a way that
// makes its executable path environment-independent.
func (lp *LaunchPatcher) isManagedInstall() bool {
	install := platform.NormalizePath(lp.env.InstallLocation())
	return strings.Contains(install, lp.installMarker)
}

// toolPath computes the normalized absolute path to the tool's entry
// module from the current install location.
func (lp *LaunchPatcher) toolPath() string {
	return platform.NormalizePath(filepath.Join(lp.env.InstallLocation(), lp.entryFile))
}

func (lp *LaunchPatcher) renderTemplate(managed bool) (string, error) {
	if managed {
		return lp.resolver.ReadTemplate(templates.LaunchManaged)
	}
	content, err := lp.resolver.ReadTemplate(templates.Launch)
	if err != nil {
		return "", err
	}
	return strings.ReplaceAll(content, templates.ToolPathToken, lp.toolPath()), nil
}
