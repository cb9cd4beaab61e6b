package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/roach88/albwlogic/internal/engine"
	"github.com/roach88/albwlogic/internal/harness"
	"github.com/roach88/albwlogic/internal/item"
	"github.com/roach88/albwlogic/internal/pool"
	"github.com/roach88/albwlogic/internal/settings"
	"github.com/roach88/albwlogic/internal/store"
	"github.com/roach88/albwlogic/internal/tracker"
	"github.com/roach88/albwlogic/internal/world"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Check failure (scenarios failed, world not completable)
	ExitCommandError = 2 // Command error (invalid settings, unknown item, missing session)
)

// Error code constants, unified across all commands.
const (
	ErrCodeGeneric         = "E001" // Generic/unknown error
	ErrCodeNotFound        = "E005" // Path not found
	ErrCodeInvalidSettings = "E201" // Settings document rejected
	ErrCodeUnknownItem     = "E202" // Token not in the item catalog
	ErrCodeWorldInvalid    = "E203" // World data failed to build
	ErrCodePoolCapacity    = "E204" // Too few item slots
	ErrCodeSessionNotFound = "E301" // No tracker session with that id
	ErrCodeNotCollected    = "E302" // Drop of an item never collected
	ErrCodeCheckFailed     = "E401" // Scenario or completion check failed
)

// ExitError represents an error with a specific exit code.
// Use this to return errors with meaningful exit codes from CLI commands.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// ErrorCode maps an error from the lower layers to a CLI error code.
func ErrorCode(err error) string {
	var (
		verr    *settings.ValidationError
		cerr    *world.CompileError
		capErr  *pool.CapacityError
		nfErr   *harness.ScenarioNotFoundError
		tokErr  *item.UnknownTokenError
		exitErr *ExitError
	)
	switch {
	case errors.As(err, &verr):
		return ErrCodeInvalidSettings
	case engine.IsUnknownItem(err), errors.As(err, &tokErr):
		return ErrCodeUnknownItem
	case engine.IsWorldError(err), errors.As(err, &cerr):
		return ErrCodeWorldInvalid
	case errors.As(err, &capErr):
		return ErrCodePoolCapacity
	case errors.Is(err, store.ErrNotFound):
		return ErrCodeSessionNotFound
	case errors.Is(err, tracker.ErrNotCollected):
		return ErrCodeNotCollected
	case errors.As(err, &nfErr):
		return ErrCodeNotFound
	case errors.As(err, &exitErr) && exitErr.Code == ExitFailure:
		return ErrCodeCheckFailed
	default:
		return ErrCodeGeneric
	}
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // Separate writer for verbose/diagnostic output (defaults to Writer)
	Verbose   bool
}

// CLIResponse is the standard JSON response format for CLI output.
type CLIResponse struct {
	Status string      `json:"status"`          // "ok" or "error"
	Data   interface{} `json:"data,omitempty"`  // success payload
	Error  *CLIError   `json:"error,omitempty"` // error details
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string      `json:"code"`              // "E001", "E202", etc.
	Message string      `json:"message"`           // human-readable message
	Details interface{} `json:"details,omitempty"` // additional context
}

// TextWriter is implemented by payloads with a custom text rendering.
type TextWriter interface {
	WriteText(w io.Writer)
}

// Success outputs a successful result in the configured format.
func (f *OutputFormatter) Success(data interface{}) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "ok",
			Data:   data,
		})
	}

	if tw, ok := data.(TextWriter); ok {
		tw.WriteText(f.Writer)
		return nil
	}
	fmt.Fprintln(f.Writer, data)
	return nil
}

// Error outputs an error in the configured format.
func (f *OutputFormatter) Error(code, message string, details interface{}) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "error",
			Error: &CLIError{
				Code:    code,
				Message: message,
				Details: details,
			},
		})
	}

	fmt.Fprintf(f.Writer, "Error [%s]: %s\n", code, message)
	if f.Verbose && details != nil {
		fmt.Fprintf(f.Writer, "Details: %v\n", details)
	}
	return nil
}

// Fail reports err through the formatter and returns the ExitError the
// command should return. Check failures exit 1; everything else exits 2.
func (f *OutputFormatter) Fail(err error) error {
	code := ErrorCode(err)
	if outErr := f.Error(code, err.Error(), nil); outErr != nil {
		return outErr
	}
	exit := ExitCommandError
	if code == ErrCodeCheckFailed {
		exit = ExitFailure
	}
	return WrapExitError(exit, code, err)
}

// VerboseLog outputs a message only if verbose mode is enabled.
// Uses ErrWriter if set, otherwise falls back to Writer.
// When format is JSON, verbose logs go to ErrWriter to avoid corrupting JSON output.
func (f *OutputFormatter) VerboseLog(format string, args ...interface{}) {
	if !f.Verbose {
		return
	}
	fmt.Fprintf(f.GetErrWriter(), format+"\n", args...)
}

// GetErrWriter returns the appropriate writer for diagnostic output.
// Returns ErrWriter if set, otherwise Writer.
func (f *OutputFormatter) GetErrWriter() io.Writer {
	if f.ErrWriter != nil {
		return f.ErrWriter
	}
	return f.Writer
}
