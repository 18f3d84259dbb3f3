// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/scriptinit/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "template_not_found_error",
			code:    errors.ErrTemplateNotFound,
			message: "unknown template",
			wantStr: "[TEMPLATE_NOT_FOUND] unknown template",
		},
		{
			name:    "file_write_error",
			code:    errors.ErrFileWrite,
			message: "cannot write launch.json",
			wantStr: "[FILE_WRITE] cannot write launch.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("disk full")
	err := errors.Wrap(cause, errors.ErrFileWrite, "failed to write omnisharp.json")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match its cause with errors.Is")
	}

	want := "[FILE_WRITE] failed to write omnisharp.json: disk full"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestWrapNilReturnsNil(t *testing.T) {
	if err := errors.Wrap(nil, errors.ErrFileWrite, "ignored"); err != nil {
		t.Errorf("Wrap(nil) = %v, want nil", err)
	}
}

func TestIsErrorCode(t *testing.T) {
	err := errors.Newf(errors.ErrDirCreate, "cannot create %s", ".vscode")

	if !errors.IsErrorCode(err, errors.ErrDirCreate) {
		t.Error("IsErrorCode should match the error's own code")
	}
	if errors.IsErrorCode(err, errors.ErrFileWrite) {
		t.Error("IsErrorCode should not match a different code")
	}
	if errors.IsErrorCode(stderrors.New("plain"), errors.ErrDirCreate) {
		t.Error("IsErrorCode should not match a plain error")
	}
}

func TestGetErrorCode(t *testing.T) {
	if got := errors.GetErrorCode(errors.New(errors.ErrEnvProbe, "probe failed")); got != errors.ErrEnvProbe {
		t.Errorf("GetErrorCode() = %v, want %v", got, errors.ErrEnvProbe)
	}
	if got := errors.GetErrorCode(stderrors.New("plain")); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode() = %v, want %v", got, errors.ErrUnknown)
	}
}
