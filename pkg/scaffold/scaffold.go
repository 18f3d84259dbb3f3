// Package scaffold orchestrates folder initialization: it runs each
// provisioning step in order through the injected collaborators and
// reports one outcome line per step.
package scaffold

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/arthur-debert/scriptinit/pkg/config"
	"github.com/arthur-debert/scriptinit/pkg/logging"
	"github.com/arthur-debert/scriptinit/pkg/manifest"
	"github.com/arthur-debert/scriptinit/pkg/platform"
	"github.com/arthur-debert/scriptinit/pkg/provision"
	"github.com/arthur-debert/scriptinit/pkg/templates"
	"github.com/arthur-debert/scriptinit/pkg/types"
)

// InitOptions contains options for the InitFolder operation
type InitOptions struct {
	// Dir is the folder to initialize
	Dir string
	// ScriptName overrides the default entry script name (optional)
	ScriptName string
	// Settings provides every file and directory name used
	Settings *config.Settings
	// FileSystem is the filesystem to use
	FileSystem types.FS
	// Console receives one status line per step
	Console types.Console
	// Environment is the host probe
	Environment types.Environment
	// Adapter supplies platform-conditional behavior
	Adapter platform.Adapter
	// Resolver maps template identifiers to content
	Resolver types.Resolver
}

// InitFolder provisions a working directory with everything the script
// tool needs to run and be debugged. Steps run sequentially, each fully
// completing before the next; re-running on an already-correct directory
// changes no file content.
func InitFolder(opts InitOptions) (*types.ScaffoldResult, error) {
	log := logging.GetLogger("scaffold.init")
	log.Debug().Str("dir", opts.Dir).Msg("Starting folder initialization")

	s := opts.Settings.Scaffold
	provisioner := provision.New(opts.FileSystem, opts.Adapter)
	patcher := provision.NewLaunchPatcher(
		opts.FileSystem, opts.Resolver, opts.Environment,
		opts.Settings.Tool.InstallMarker, opts.Settings.Tool.EntryFile)
	generator := manifest.NewGenerator(opts.FileSystem, opts.Environment, opts.Settings.SDK.RuntimeComponent)

	result := &types.ScaffoldResult{Command: "init"}

	record := func(rel string, outcome types.Outcome) {
		result.Steps = append(result.Steps, types.StepResult{Path: rel, Outcome: outcome})
		reportOutcome(opts.Console, rel, outcome)
	}

	// 1. Debugger launch configuration (patched, not just created)
	launchRel := path.Join(s.LaunchDir, s.LaunchFile)
	outcome, err := patcher.Ensure(filepath.Join(opts.Dir, s.LaunchDir, s.LaunchFile))
	if err != nil {
		return nil, err
	}
	record(launchRel, outcome)

	// 2. Editor configuration; the target framework is baked in at
	// creation time and never touched on later runs
	outcome, err = provisioner.Provision(provision.Target{
		Path: filepath.Join(opts.Dir, s.OmnisharpFile),
		Content: func() (string, error) {
			content, err := opts.Resolver.ReadTemplate(templates.Omnisharp)
			if err != nil {
				return "", err
			}
			return strings.ReplaceAll(content, templates.TargetFrameworkToken, opts.Environment.TargetFramework()), nil
		},
	})
	if err != nil {
		return nil, err
	}
	record(s.OmnisharpFile, outcome)

	// 3. Default entry script, only when no script of the expected
	// extension exists anywhere in the folder
	scriptName := opts.ScriptName
	if scriptName == "" {
		scriptName = s.DefaultScript
	}
	if hasScriptFiles(opts.FileSystem, opts.Dir, s.ScriptExtension) {
		result.Steps = append(result.Steps, types.StepResult{Path: scriptName, Outcome: types.OutcomeSkipped})
		opts.Console.Highlight(fmt.Sprintf(MsgScriptsPresent, scriptName))
	} else {
		outcome, err = provisioner.Provision(provision.Target{
			Path: filepath.Join(opts.Dir, scriptName),
			Content: func() (string, error) {
				return opts.Resolver.ReadTemplate(templates.MainScript)
			},
			Decorate:       true,
			MarkExecutable: true,
		})
		if err != nil {
			return nil, err
		}
		record(scriptName, outcome)
	}

	// 4. Auxiliary web server script, gated on its exact name only
	outcome, err = provisioner.Provision(provision.Target{
		Path: filepath.Join(opts.Dir, s.HTTPScript),
		Content: func() (string, error) {
			return opts.Resolver.ReadTemplate(templates.HTTPServer)
		},
	})
	if err != nil {
		return nil, err
	}
	record(s.HTTPScript, outcome)

	// 5 & 6. Import manifests
	manifests := []struct {
		name      string
		component string
	}{
		{s.AspnetManifest, opts.Settings.SDK.AspnetComponent},
		{s.WinuiManifest, opts.Settings.SDK.WinuiComponent},
	}
	for _, m := range manifests {
		component := m.component
		outcome, err = provisioner.Provision(provision.Target{
			Path: filepath.Join(opts.Dir, s.ManifestDir, m.name),
			Content: func() (string, error) {
				return generator.Generate(component)
			},
		})
		if err != nil {
			return nil, err
		}
		record(path.Join(s.ManifestDir, m.name), outcome)
	}

	created := len(result.CreatedPaths())
	skipped := len(result.SkippedPaths())
	result.Timestamp = time.Now()
	result.Message = fmt.Sprintf(MsgSummary, opts.Dir, created, skipped)

	log.Debug().
		Str("dir", opts.Dir).
		Int("created", created).
		Int("skipped", skipped).
		Msg("Folder initialization completed")

	return result, nil
}

// Register associates the script extension with the tool on platforms
// that need it. Independent of folder provisioning, callable on demand.
func Register(adapter platform.Adapter, console types.Console, scriptExtension string) {
	if adapter.Family() != types.FamilyWindows {
		console.Highlight(MsgRegisterNoop)
		return
	}
	adapter.RegisterFileAssociation()
	console.Success(fmt.Sprintf(MsgRegistered, scriptExtension))
}

// hasScriptFiles reports whether any file with the script extension
// exists directly in dir, regardless of its name.
func hasScriptFiles(fs types.FS, dir, extension string) bool {
	entries, err := fs.ReadDir(dir)
	if err != nil {
		return false
	}
	for _, entry := range entries {
		if !entry.IsDir() && strings.EqualFold(filepath.Ext(entry.Name()), extension) {
			return true
		}
	}
	return false
}

// reportOutcome prints the step's one console line.
func reportOutcome(console types.Console, rel string, outcome types.Outcome) {
	switch outcome {
	case types.OutcomeCreated:
		console.Success(fmt.Sprintf(MsgCreated, rel))
	case types.OutcomeUpdated:
		console.Success(fmt.Sprintf(MsgUpdated, rel))
	case types.OutcomeSkipped:
		console.Highlight(fmt.Sprintf(MsgSkipped, rel))
	case types.OutcomeUnchanged:
		console.Highlight(fmt.Sprintf(MsgUnchanged, rel))
	case types.OutcomePatternMiss:
		console.Highlight(fmt.Sprintf(MsgPatternMiss, rel))
	}
}
