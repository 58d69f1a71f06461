package commands

import (
	"context"
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

// Text codes attached to command failures so callers can branch on the
// failure class without parsing messages.
const (
	CodeValidationFailed = "EXPERIENCES_COMMAND_VALIDATION_FAILED"
	CodeCanceled         = "EXPERIENCES_COMMAND_CANCELED"
	CodeTimeout          = "EXPERIENCES_COMMAND_TIMEOUT"
	CodeContextError     = "EXPERIENCES_COMMAND_CONTEXT_ERROR"
	CodeExecutionFailed  = "EXPERIENCES_COMMAND_EXECUTION_FAILED"
)

func wrapValidationError(err error) error {
	return tag(err, goerrors.CategoryValidation, CodeValidationFailed, "experience command rejected by validation")
}

func wrapContextError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.Canceled):
		return tag(err, goerrors.CategoryCommand, CodeCanceled, "experience command canceled")
	case errors.Is(err, context.DeadlineExceeded):
		return tag(err, goerrors.CategoryCommand, CodeTimeout, "experience command timed out")
	default:
		return tag(err, goerrors.CategoryCommand, CodeContextError, "experience command context error")
	}
}

func wrapExecuteError(err error) error {
	return tag(err, goerrors.CategoryCommand, CodeExecutionFailed, "experience command failed")
}

// tag wraps err with a category, text code, and message. Errors already
// carrying go-errors metadata pass through untouched so the innermost
// classification wins.
func tag(err error, category goerrors.Category, code, msg string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, category, msg).WithTextCode(code)
}
