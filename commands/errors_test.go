package commands

import (
	"context"
	"errors"
	"strings"
	"testing"

	goerrors "github.com/goliatone/go-errors"
)

func TestWrapHelpersPassNilThrough(t *testing.T) {
	if err := wrapValidationError(nil); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if err := wrapContextError(nil); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if err := wrapExecuteError(nil); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestWrapValidationErrorTagsCategory(t *testing.T) {
	err := wrapValidationError(errors.New("title is required"))
	if err == nil {
		t.Fatal("expected wrapped error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
}

func TestWrapContextErrorDistinguishesCancelAndTimeout(t *testing.T) {
	canceled := wrapContextError(context.Canceled)
	if !goerrors.IsCategory(canceled, goerrors.CategoryCommand) {
		t.Fatalf("expected command category for cancellation, got %v", canceled)
	}

	timedOut := wrapContextError(context.DeadlineExceeded)
	if !goerrors.IsCategory(timedOut, goerrors.CategoryCommand) {
		t.Fatalf("expected command category for deadline, got %v", timedOut)
	}
}

func TestWrapPreservesAlreadyWrappedErrors(t *testing.T) {
	inner := wrapValidationError(errors.New("title is required"))

	rewrapped := wrapExecuteError(inner)
	if rewrapped != inner {
		t.Fatalf("expected already-wrapped error to pass through unchanged, got %v", rewrapped)
	}
	if !goerrors.IsCategory(rewrapped, goerrors.CategoryValidation) {
		t.Fatalf("expected original validation category to survive, got %v", rewrapped)
	}
}

func TestTextCodesAreEngineScoped(t *testing.T) {
	codes := []string{
		CodeValidationFailed,
		CodeCanceled,
		CodeTimeout,
		CodeContextError,
		CodeExecutionFailed,
	}

	seen := map[string]bool{}
	for _, code := range codes {
		if !strings.HasPrefix(code, "EXPERIENCES_COMMAND_") {
			t.Fatalf("expected EXPERIENCES_COMMAND_ prefix, got %q", code)
		}
		if seen[code] {
			t.Fatalf("duplicate text code %q", code)
		}
		seen[code] = true
	}
}
