// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, kinds and utility functions

package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/arthur-debert/npmstage/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "tool_not_found_error",
			code:    errors.ErrToolNotFound,
			message: "npm not found",
			wantStr: "[TOOL_NOT_FOUND] npm not found",
		},
		{
			name:    "no_copy_policy_error",
			code:    errors.ErrNoCopyPolicy,
			message: "nothing to copy",
			wantStr: "[NO_COPY_POLICY] nothing to copy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrAbsolutePath, "item %q is absolute", "/etc/passwd")
	if err.Message != `item "/etc/passwd" is absolute` {
		t.Errorf("Newf() message = %q", err.Message)
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrDirCreate, "cannot create target")

		if err.Code != errors.ErrDirCreate {
			t.Errorf("Wrap() code = %v, want %v", err.Code, errors.ErrDirCreate)
		}

		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}

		wantStr := "[DIR_CREATE] cannot create target: base error"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		if err := errors.Wrap(nil, errors.ErrInternal, "internal error"); err != nil {
			t.Error("Wrap(nil) should return nil")
		}
		if err := errors.Wrapf(nil, errors.ErrInternal, "internal %s", "error"); err != nil {
			t.Error("Wrapf(nil) should return nil")
		}
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrProcessExit, "npm failed").
		WithDetail("exitCode", 2).
		WithDetail("args", []string{"run", "build"})

	if err.Details["exitCode"] != 2 {
		t.Errorf("WithDetail() exitCode = %v, want %v", err.Details["exitCode"], 2)
	}

	details := errors.GetErrorDetails(fmt.Errorf("outer: %w", err))
	if details["exitCode"] != 2 {
		t.Errorf("GetErrorDetails() exitCode = %v, want 2", details["exitCode"])
	}
	if errors.GetErrorDetails(stderrors.New("plain")) != nil {
		t.Error("GetErrorDetails() should be nil for plain errors")
	}
}

func TestWithDetails(t *testing.T) {
	details := map[string]interface{}{
		"item":   "src",
		"target": "/tmp/out",
	}

	err := errors.New(errors.ErrItemCopy, "cannot copy").WithDetails(details)

	for k, v := range details {
		if err.Details[k] != v {
			t.Errorf("WithDetails() %s = %v, want %v", k, err.Details[k], v)
		}
	}
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrItemRemove, "error 1")
	err2 := errors.New(errors.ErrItemRemove, "error 2")
	err3 := errors.New(errors.ErrItemCopy, "error 3")

	t.Run("same_code_is_equal", func(t *testing.T) {
		if !err1.Is(err2) {
			t.Error("Is() should return true for same code")
		}
	})

	t.Run("different_code_not_equal", func(t *testing.T) {
		if err1.Is(err3) {
			t.Error("Is() should return false for different codes")
		}
	})

	t.Run("works_with_errors_Is", func(t *testing.T) {
		if !stderrors.Is(err1, err2) {
			t.Error("errors.Is() should work with Error")
		}
	})
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{
			name:     "matching_code",
			err:      errors.New(errors.ErrToolNotFound, "not found"),
			code:     errors.ErrToolNotFound,
			expected: true,
		},
		{
			name:     "different_code",
			err:      errors.New(errors.ErrToolNotFound, "not found"),
			code:     errors.ErrInternal,
			expected: false,
		},
		{
			name:     "wrapped_error",
			err:      fmt.Errorf("stage: %w", errors.Wrap(stderrors.New("base"), errors.ErrItemCopy, "denied")),
			code:     errors.ErrItemCopy,
			expected: true,
		},
		{
			name:     "standard_error",
			err:      stderrors.New("standard error"),
			code:     errors.ErrToolNotFound,
			expected: false,
		},
		{
			name:     "nil_error",
			err:      nil,
			code:     errors.ErrToolNotFound,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.IsErrorCode(tt.err, tt.code); got != tt.expected {
				t.Errorf("IsErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected errors.ErrorCode
	}{
		{
			name:     "structured_error",
			err:      errors.New(errors.ErrProcessStart, "cannot start"),
			expected: errors.ErrProcessStart,
		},
		{
			name:     "standard_error",
			err:      stderrors.New("standard error"),
			expected: errors.ErrUnknown,
		},
		{
			name:     "nil_error",
			err:      nil,
			expected: errors.ErrUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.GetErrorCode(tt.err); got != tt.expected {
				t.Errorf("GetErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		code errors.ErrorCode
		want errors.Kind
	}{
		{errors.ErrNoCopyPolicy, errors.KindConfiguration},
		{errors.ErrAbsolutePath, errors.KindConfiguration},
		{errors.ErrConfigInvalid, errors.KindConfiguration},
		{errors.ErrToolNotFound, errors.KindEnvironment},
		{errors.ErrDirCreate, errors.KindEnvironment},
		{errors.ErrReadDir, errors.KindFilesystem},
		{errors.ErrItemRemove, errors.KindFilesystem},
		{errors.ErrItemCopy, errors.KindFilesystem},
		{errors.ErrProcessStart, errors.KindSubprocess},
		{errors.ErrProcessExit, errors.KindSubprocess},
		{errors.ErrInternal, errors.KindUnknown},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := errors.KindOf(errors.New(tt.code, "x")); got != tt.want {
				t.Errorf("KindOf(%s) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}

	if got := errors.KindOf(nil); got != errors.KindUnknown {
		t.Errorf("KindOf(nil) = %v, want %v", got, errors.KindUnknown)
	}
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("permission denied")
	copyErr := errors.Wrap(rootCause, errors.ErrItemCopy, "cannot copy src")
	outer := fmt.Errorf("install: %w", copyErr)

	t.Run("outer_has_item_copy_code", func(t *testing.T) {
		if !errors.IsErrorCode(outer, errors.ErrItemCopy) {
			t.Error("chain should carry ErrItemCopy")
		}
	})

	t.Run("can_find_root_cause", func(t *testing.T) {
		if !stderrors.Is(outer, rootCause) {
			t.Error("Should find root cause with errors.Is")
		}
	})
}
