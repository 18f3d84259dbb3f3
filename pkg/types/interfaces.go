package types

// OSFamily identifies the broad platform family scaffolding branches on.
type OSFamily string

const (
	FamilyUnix    OSFamily = "unix"
	FamilyWindows OSFamily = "windows"
)

// Environment is the host environment probe: everything scaffolding needs
// to know about where and on what it is running.
type Environment interface {
	// Family returns the platform family of the host.
	Family() OSFamily
	// TargetFramework returns the target framework moniker scripts should
	// compile against, e.g. "net9.0".
	TargetFramework() string
	// InstallLocation returns the directory the tool is installed in.
	InstallLocation() string
	// RuntimeAssemblyDir returns the directory holding the running
	// runtime's own assemblies.
	RuntimeAssemblyDir() string
}

// Resolver maps a template identifier to its raw text content.
type Resolver interface {
	ReadTemplate(id string) (string, error)
}

// Runner executes external commands. Callers that treat a command as
// best-effort ignore the returned error after logging it.
type Runner interface {
	Run(program string, args ...string) error
}

// Console is the sink for user-facing status lines. All writers are
// observational only and must not affect control flow.
type Console interface {
	Info(msg string)
	Success(msg string)
	Highlight(msg string)
	Raw(msg string)
}
