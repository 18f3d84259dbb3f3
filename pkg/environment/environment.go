// Package environment probes the host: platform family, target framework
// moniker, install location, and the runtime assembly directory. Values
// are resolved once at startup, environment variables first, so tests can
// substitute every path.
package environment

import (
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/arthur-debert/scriptinit/pkg/errors"
	"github.com/arthur-debert/scriptinit/pkg/types"
)

// Environment variable names
const (
	// EnvTFM overrides the probed target framework moniker
	EnvTFM = "SCRIPTINIT_TFM"

	// EnvInstallLocation overrides the probed install location
	EnvInstallLocation = "SCRIPTINIT_INSTALL_LOCATION"

	// EnvRuntimeDir overrides the probed runtime assembly directory
	EnvRuntimeDir = "SCRIPTINIT_RUNTIME_DIR"

	// EnvDotnetRoot is the standard dotnet install root variable
	EnvDotnetRoot = "DOTNET_ROOT"
)

// Default dotnet install roots when DOTNET_ROOT is unset.
const (
	defaultUnixDotnetRoot    = "/usr/share/dotnet"
	defaultWindowsDotnetRoot = `C:\Program Files\dotnet`
)

// OSEnvironment implements types.Environment by probing the host once.
type OSEnvironment struct {
	family          types.OSFamily
	targetFramework string
	installLocation string
	runtimeDir      string
}

// New probes the host environment. defaultTFM is used when no override is
// set; runtimeComponent is the shared-framework name whose assembly
// directory is located (e.g. "Microsoft.NETCore.App").
func New(defaultTFM, runtimeComponent string) (*OSEnvironment, error) {
	family := types.FamilyUnix
	if runtime.GOOS == "windows" {
		family = types.FamilyWindows
	}

	tfm := os.Getenv(EnvTFM)
	if tfm == "" {
		tfm = defaultTFM
	}

	install := os.Getenv(EnvInstallLocation)
	if install == "" {
		exe, err := os.Executable()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrEnvProbe, "cannot determine install location")
		}
		install = filepath.Dir(exe)
	}

	runtimeDir := os.Getenv(EnvRuntimeDir)
	if runtimeDir == "" {
		runtimeDir = probeRuntimeDir(family, runtimeComponent)
	}

	return &OSEnvironment{
		family:          family,
		targetFramework: tfm,
		installLocation: install,
		runtimeDir:      runtimeDir,
	}, nil
}

func (e *OSEnvironment) Family() types.OSFamily     { return e.family }
func (e *OSEnvironment) TargetFramework() string    { return e.targetFramework }
func (e *OSEnvironment) InstallLocation() string    { return e.installLocation }
func (e *OSEnvironment) RuntimeAssemblyDir() string { return e.runtimeDir }

// probeRuntimeDir locates the newest installed version of the runtime
// component under the dotnet shared-framework root. Returns "" when
// nothing is installed; callers treat that as an empty manifest source.
func probeRuntimeDir(family types.OSFamily, component string) string {
	root := os.Getenv(EnvDotnetRoot)
	if root == "" {
		if family == types.FamilyWindows {
			root = defaultWindowsDotnetRoot
		} else {
			root = defaultUnixDotnetRoot
		}
	}

	componentDir := filepath.Join(root, "shared", component)
	entries, err := os.ReadDir(componentDir)
	if err != nil {
		return ""
	}

	var best string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if best == "" || versionLess(best, entry.Name()) {
			best = entry.Name()
		}
	}
	if best == "" {
		return ""
	}
	return filepath.Join(componentDir, best)
}

// versionLess compares dotted version directory names numerically,
// falling back to string order for non-numeric segments.
func versionLess(a, b string) bool {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")
	for i := 0; i < len(as) && i < len(bs); i++ {
		ai, aerr := strconv.Atoi(as[i])
		bi, berr := strconv.Atoi(bs[i])
		if aerr != nil || berr != nil {
			if as[i] != bs[i] {
				return as[i] < bs[i]
			}
			continue
		}
		if ai != bi {
			return ai < bi
		}
	}
	return len(as) < len(bs)
}
