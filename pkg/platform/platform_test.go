// pkg/platform/platform_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test platform adapters and path normalization

package platform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/scriptinit/pkg/platform"
	"github.com/arthur-debert/scriptinit/pkg/testutil"
	"github.com/arthur-debert/scriptinit/pkg/types"
)

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"windows_path", `C:\Users\user\scripts`, "C:/Users/user/scripts"},
		{"posix_path", "/opt/scriptinit", "/opt/scriptinit"},
		{"mixed", `C:\tools/scriptinit\scriptinit.dll`, "C:/tools/scriptinit/scriptinit.dll"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, platform.NormalizePath(tt.in))
		})
	}
}

func TestUnixAdapterDecoratesWithShebang(t *testing.T) {
	adapter := platform.New(types.FamilyUnix, &testutil.RecordingRunner{}, ".csx", "")

	decorated := adapter.DecorateScript("Console.WriteLine();\n")
	assert.Equal(t, platform.Shebang+"Console.WriteLine();\n", decorated)
}

func TestUnixAdapterMarksExecutableViaChmod(t *testing.T) {
	runner := &testutil.RecordingRunner{}
	adapter := platform.New(types.FamilyUnix, runner, ".csx", "")

	adapter.MarkExecutable("/work/main.csx")

	require.Len(t, runner.Calls, 1)
	assert.Equal(t, []string{"chmod", "+x", "/work/main.csx"}, runner.Calls[0])
}

func TestWindowsAdapterDoesNotDecorate(t *testing.T) {
	adapter := platform.New(types.FamilyWindows, &testutil.RecordingRunner{}, ".csx", `C:\tools\scriptinit.exe`)

	assert.Equal(t, "content", adapter.DecorateScript("content"))
}

func TestWindowsAdapterRegistersAssociation(t *testing.T) {
	runner := &testutil.RecordingRunner{}
	adapter := platform.New(types.FamilyWindows, runner, ".csx", `C:\tools\scriptinit.exe`)

	adapter.RegisterFileAssociation()

	require.Len(t, runner.Calls, 2)
	assert.Equal(t, "reg", runner.Calls[0][0])
	assert.Contains(t, runner.Calls[0], `HKCU\Software\Classes\.csx`)
	assert.Contains(t, runner.Calls[1], `HKCU\Software\Classes\scriptinit\Shell\Open\Command`)
	assert.Contains(t, runner.Calls[1], `"C:\tools\scriptinit.exe" "%1" --`)
}

func TestWindowsAdapterMarkExecutableIsNoop(t *testing.T) {
	runner := &testutil.RecordingRunner{}
	adapter := platform.New(types.FamilyWindows, runner, ".csx", "")

	adapter.MarkExecutable(`C:\work\main.csx`)
	assert.Empty(t, runner.Calls)
}
