package testutil

import "github.com/arthur-debert/scriptinit/pkg/types"

// FakeEnvironment implements types.Environment with fixed values.
type FakeEnvironment struct {
	FamilyValue types.OSFamily
	TFM         string
	Install     string
	RuntimeDir  string
}

func (e *FakeEnvironment) Family() types.OSFamily     { return e.FamilyValue }
func (e *FakeEnvironment) TargetFramework() string    { return e.TFM }
func (e *FakeEnvironment) InstallLocation() string    { return e.Install }
func (e *FakeEnvironment) RuntimeAssemblyDir() string { return e.RuntimeDir }

// RecordingRunner records external commands instead of executing them.
type RecordingRunner struct {
	Calls [][]string
	Err   error
}

func (r *RecordingRunner) Run(program string, args ...string) error {
	r.Calls = append(r.Calls, append([]string{program}, args...))
	return r.Err
}

// RecordingConsole captures console lines per severity.
type RecordingConsole struct {
	Infos      []string
	Successes  []string
	Highlights []string
	Raws       []string
}

func (c *RecordingConsole) Info(msg string)      { c.Infos = append(c.Infos, msg) }
func (c *RecordingConsole) Success(msg string)   { c.Successes = append(c.Successes, msg) }
func (c *RecordingConsole) Highlight(msg string) { c.Highlights = append(c.Highlights, msg) }
func (c *RecordingConsole) Raw(msg string)       { c.Raws = append(c.Raws, msg) }

// Lines returns every captured line in order of severity group.
func (c *RecordingConsole) Lines() []string {
	var lines []string
	lines = append(lines, c.Infos...)
	lines = append(lines, c.Successes...)
	lines = append(lines, c.Highlights...)
	lines = append(lines, c.Raws...)
	return lines
}
