// pkg/scaffold/scaffold_test.go
// TEST TYPE: Integration Test (in-memory filesystem)
// DEPENDENCIES: Memory filesystem, embedded templates, fake environment
// PURPOSE: Test folder initialization end to end, including idempotence

package scaffold_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/scriptinit/pkg/config"
	"github.com/arthur-debert/scriptinit/pkg/platform"
	"github.com/arthur-debert/scriptinit/pkg/scaffold"
	"github.com/arthur-debert/scriptinit/pkg/templates"
	"github.com/arthur-debert/scriptinit/pkg/testutil"
	"github.com/arthur-debert/scriptinit/pkg/types"
)

// expectedFiles is the canonical set produced by initializing an empty
// directory at /work.
var expectedFiles = []string{
	"/work/.vscode/launch.json",
	"/work/omnisharp.json",
	"/work/main.csx",
	"/work/httpserver.csx",
	"/work/base/aspnet.csx",
	"/work/base/winui.csx",
}

func newInitOptions(fs types.FS, console types.Console) scaffold.InitOptions {
	settings := config.Default()
	env := &testutil.FakeEnvironment{
		FamilyValue: types.FamilyUnix,
		TFM:         "net9.0",
		Install:     "/opt/scriptinit",
	}
	adapter := platform.New(env.Family(), &testutil.RecordingRunner{}, settings.Scaffold.ScriptExtension, "/opt/scriptinit/scriptinit.exe")

	return scaffold.InitOptions{
		Dir:         "/work",
		Settings:    settings,
		FileSystem:  fs,
		Console:     console,
		Environment: env,
		Adapter:     adapter,
		Resolver:    templates.NewStore(),
	}
}

func TestInitFolderCreatesAllFiles(t *testing.T) {
	fs := testutil.NewMemoryFS()
	console := &testutil.RecordingConsole{}

	result, err := scaffold.InitFolder(newInitOptions(fs, console))
	require.NoError(t, err)

	for _, path := range expectedFiles {
		testutil.AssertFileExists(t, fs, path)
	}
	assert.Len(t, result.CreatedPaths(), 6)
	assert.Empty(t, result.SkippedPaths())
	assert.Len(t, console.Successes, 6)
}

func TestInitFolderIsIdempotent(t *testing.T) {
	fs := testutil.NewMemoryFS()

	_, err := scaffold.InitFolder(newInitOptions(fs, &testutil.RecordingConsole{}))
	require.NoError(t, err)

	before := make(map[string]string)
	for _, path := range expectedFiles {
		before[path] = testutil.ReadFile(t, fs, path)
	}

	console := &testutil.RecordingConsole{}
	result, err := scaffold.InitFolder(newInitOptions(fs, console))
	require.NoError(t, err)

	assert.Empty(t, result.CreatedPaths())
	assert.Len(t, result.SkippedPaths(), 6)
	assert.Len(t, console.Highlights, 6, "second run reports six skip notifications")
	assert.Empty(t, console.Successes)

	for _, path := range expectedFiles {
		assert.Equal(t, before[path], testutil.ReadFile(t, fs, path), "second run must not change %s", path)
	}
}

func TestInitFolderBakesTargetFrameworkIntoOmnisharp(t *testing.T) {
	fs := testutil.NewMemoryFS()

	_, err := scaffold.InitFolder(newInitOptions(fs, &testutil.RecordingConsole{}))
	require.NoError(t, err)

	content := testutil.ReadFile(t, fs, "/work/omnisharp.json")
	assert.Contains(t, content, `"defaultTargetFramework": "net9.0"`)
}

func TestInitFolderSkipsDefaultScriptWhenAnyScriptExists(t *testing.T) {
	fs := testutil.NewMemoryFS()
	testutil.WriteFile(t, fs, "/work/build.csx", "// existing script")

	result, err := scaffold.InitFolder(newInitOptions(fs, &testutil.RecordingConsole{}))
	require.NoError(t, err)

	testutil.AssertFileNotExists(t, fs, "/work/main.csx")
	for _, step := range result.Steps {
		if step.Path == "main.csx" {
			assert.Equal(t, types.OutcomeSkipped, step.Outcome)
		}
	}
}

func TestInitFolderHonorsScriptNameOverride(t *testing.T) {
	fs := testutil.NewMemoryFS()
	opts := newInitOptions(fs, &testutil.RecordingConsole{})
	opts.ScriptName = "build.csx"

	_, err := scaffold.InitFolder(opts)
	require.NoError(t, err)

	testutil.AssertFileExists(t, fs, "/work/build.csx")
	testutil.AssertFileNotExists(t, fs, "/work/main.csx")
}

func TestInitFolderDecoratesDefaultScript(t *testing.T) {
	fs := testutil.NewMemoryFS()

	_, err := scaffold.InitFolder(newInitOptions(fs, &testutil.RecordingConsole{}))
	require.NoError(t, err)

	content := testutil.ReadFile(t, fs, "/work/main.csx")
	assert.True(t, len(content) > len(platform.Shebang))
	assert.Equal(t, platform.Shebang, content[:len(platform.Shebang)])
}

func TestInitFolderHTTPScriptGatedOnExactName(t *testing.T) {
	fs := testutil.NewMemoryFS()
	testutil.WriteFile(t, fs, "/work/httpserver.csx", "// my server")

	_, err := scaffold.InitFolder(newInitOptions(fs, &testutil.RecordingConsole{}))
	require.NoError(t, err)

	assert.Equal(t, "// my server", testutil.ReadFile(t, fs, "/work/httpserver.csx"))
}

func TestInitFolderEmptyManifestsWhenNoRuntimeDir(t *testing.T) {
	fs := testutil.NewMemoryFS()

	_, err := scaffold.InitFolder(newInitOptions(fs, &testutil.RecordingConsole{}))
	require.NoError(t, err)

	assert.Equal(t, "", testutil.ReadFile(t, fs, "/work/base/aspnet.csx"))
	assert.Equal(t, "", testutil.ReadFile(t, fs, "/work/base/winui.csx"))
}

func TestRegisterIsNoopOffWindows(t *testing.T) {
	runner := &testutil.RecordingRunner{}
	adapter := platform.New(types.FamilyUnix, runner, ".csx", "/opt/scriptinit/scriptinit.exe")
	console := &testutil.RecordingConsole{}

	scaffold.Register(adapter, console, ".csx")

	assert.Empty(t, runner.Calls)
	require.Len(t, console.Highlights, 1)
	assert.Equal(t, scaffold.MsgRegisterNoop, console.Highlights[0])
}

func TestRegisterIssuesRegistryCommandsOnWindows(t *testing.T) {
	runner := &testutil.RecordingRunner{}
	adapter := platform.New(types.FamilyWindows, runner, ".csx", `C:\tools\scriptinit.exe`)
	console := &testutil.RecordingConsole{}

	scaffold.Register(adapter, console, ".csx")

	require.Len(t, runner.Calls, 2)
	assert.Equal(t, "reg", runner.Calls[0][0])
	assert.Equal(t, "reg", runner.Calls[1][0])
	assert.Len(t, console.Successes, 1)
}
