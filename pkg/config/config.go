// Package config provides the named scaffolding values (file names,
// directories, marker strings) used by the orchestration. Defaults are
// embedded and can be overridden through the environment, so commands
// never rely on hidden constants.
package config

import (
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/scriptinit/pkg/errors"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "SCRIPTINIT_"

// ScaffoldSettings names every file and directory the init operation
// touches.
type ScaffoldSettings struct {
	LaunchDir       string `koanf:"launch_dir"`
	LaunchFile      string `koanf:"launch_file"`
	OmnisharpFile   string `koanf:"omnisharp_file"`
	DefaultScript   string `koanf:"default_script"`
	HTTPScript      string `koanf:"http_script"`
	ScriptExtension string `koanf:"script_extension"`
	ManifestDir     string `koanf:"manifest_dir"`
	AspnetManifest  string `koanf:"aspnet_manifest"`
	WinuiManifest   string `koanf:"winui_manifest"`
}

// SDKSettings names the runtime and SDK components the manifest generator
// substitutes between.
type SDKSettings struct {
	RuntimeComponent string `koanf:"runtime_component"`
	AspnetComponent  string `koanf:"aspnet_component"`
	WinuiComponent   string `koanf:"winui_component"`
}

// ToolSettings describes the tool's own artifacts, used by the launch
// configuration and the Windows file association.
type ToolSettings struct {
	EntryFile     string `koanf:"entry_file"`
	ExeName       string `koanf:"exe_name"`
	InstallMarker string `koanf:"install_marker"`
	DefaultTFM    string `koanf:"default_tfm"`
}

// Settings is the full configuration injected into the orchestration.
type Settings struct {
	Scaffold ScaffoldSettings `koanf:"scaffold"`
	SDK      SDKSettings      `koanf:"sdk"`
	Tool     ToolSettings     `koanf:"tool"`
}

// Load builds Settings from the embedded defaults with environment
// overrides layered on top (SCRIPTINIT_SCAFFOLD__DEFAULT_SCRIPT and so on).
func Load() (*Settings, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(rawbytes.Provider(defaultConfig), toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load default config")
	}

	// 2. Environment overrides. Double underscore separates the section
	// from the key so snake_case keys survive the mapping.
	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.Replace(key, "__", ".", 1)
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load environment overrides")
	}

	var settings Settings
	if err := k.Unmarshal("", &settings); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to unmarshal config")
	}
	return &settings, nil
}

// Default returns the embedded defaults with no environment overrides.
// Tests use this to get a known-good baseline.
func Default() *Settings {
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(defaultConfig), toml.Parser()); err != nil {
		panic(err)
	}
	var settings Settings
	if err := k.Unmarshal("", &settings); err != nil {
		panic(err)
	}
	return &settings
}
