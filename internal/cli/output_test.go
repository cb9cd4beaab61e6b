package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/albwlogic/internal/harness"
	"github.com/roach88/albwlogic/internal/item"
	"github.com/roach88/albwlogic/internal/pool"
	"github.com/roach88/albwlogic/internal/settings"
	"github.com/roach88/albwlogic/internal/store"
	"github.com/roach88/albwlogic/internal/tracker"
	"github.com/roach88/albwlogic/internal/world"
)

func TestOutputFormatter_JSONSuccess(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{Format: "json", Writer: buf}

	err := formatter.Success(PoolsResult{Seed: 3, Progression: []string{"Bow01"}, Trash: []string{}})
	require.NoError(t, err)

	var resp struct {
		Status string      `json:"status"`
		Data   PoolsResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, uint64(3), resp.Data.Seed)
	assert.Equal(t, []string{"Bow01"}, resp.Data.Progression)
}

func TestOutputFormatter_TextWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{Format: "text", Writer: buf}

	err := formatter.Success(ReachableResult{Checks: []string{"Ravio (1)", "Woman"}})
	require.NoError(t, err)
	assert.Equal(t, "Ravio (1)\nWoman\n\n2 reachable checks\n", buf.String())
}

func TestOutputFormatter_TextPlain(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{Format: "text", Writer: buf}

	require.NoError(t, formatter.Success("Deleted session s1"))
	assert.Equal(t, "Deleted session s1\n", buf.String())
}

func TestOutputFormatter_Error(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		buf := &bytes.Buffer{}
		formatter := &OutputFormatter{Format: "json", Writer: buf}
		require.NoError(t, formatter.Error(ErrCodeUnknownItem, "bad token", map[string]string{"token": "X"}))

		var resp CLIResponse
		require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
		assert.Equal(t, "error", resp.Status)
		require.NotNil(t, resp.Error)
		assert.Equal(t, ErrCodeUnknownItem, resp.Error.Code)
		assert.Equal(t, "bad token", resp.Error.Message)
		assert.NotNil(t, resp.Error.Details)
	})

	t.Run("text hides details", func(t *testing.T) {
		buf := &bytes.Buffer{}
		formatter := &OutputFormatter{Format: "text", Writer: buf}
		require.NoError(t, formatter.Error("E001", "boom", "extra"))
		assert.Equal(t, "Error [E001]: boom\n", buf.String())
	})

	t.Run("text verbose shows details", func(t *testing.T) {
		buf := &bytes.Buffer{}
		formatter := &OutputFormatter{Format: "text", Writer: buf, Verbose: true}
		require.NoError(t, formatter.Error("E001", "boom", "extra"))
		assert.Contains(t, buf.String(), "Details: extra")
	})
}

func TestErrorCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"settings", &settings.ValidationError{Field: "logic.mode", Message: "x"}, ErrCodeInvalidSettings},
		{"unknown item", &item.UnknownTokenError{Token: "X"}, ErrCodeUnknownItem},
		{"wrapped unknown item", fmt.Errorf("collect: %w", &item.UnknownTokenError{Token: "X"}), ErrCodeUnknownItem},
		{"world", &world.CompileError{Field: "start", Message: "x"}, ErrCodeWorldInvalid},
		{"capacity", &pool.CapacityError{Slots: 1, Progression: 2}, ErrCodePoolCapacity},
		{"session", fmt.Errorf("read: %w", store.ErrNotFound), ErrCodeSessionNotFound},
		{"not collected", tracker.ErrNotCollected, ErrCodeNotCollected},
		{"scenario path", &harness.ScenarioNotFoundError{Path: "x"}, ErrCodeNotFound},
		{"check failure", NewExitError(ExitFailure, "failed"), ErrCodeCheckFailed},
		{"other", errors.New("boom"), ErrCodeGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ErrorCode(tt.err))
		})
	}
}

func TestOutputFormatter_Fail(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{Format: "text", Writer: buf}

	err := formatter.Fail(&item.UnknownTokenError{Token: "Nope"})
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, buf.String(), "Error [E202]")
	assert.Contains(t, err.Error(), "E202")

	var tokErr *item.UnknownTokenError
	assert.True(t, errors.As(err, &tokErr))
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitCommandError, GetExitCode(NewExitError(ExitCommandError, "x")))
	assert.Equal(t, ExitFailure, GetExitCode(fmt.Errorf("wrap: %w", NewExitError(ExitFailure, "x"))))
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("plain")))
}

func TestOutputFormatter_VerboseLog(t *testing.T) {
	out, diag := &bytes.Buffer{}, &bytes.Buffer{}

	quiet := &OutputFormatter{Writer: out, ErrWriter: diag}
	quiet.VerboseLog("loading %s", "world")
	assert.Empty(t, diag.String())

	loud := &OutputFormatter{Writer: out, ErrWriter: diag, Verbose: true}
	loud.VerboseLog("loading %s", "world")
	assert.Equal(t, "loading world\n", diag.String())
	assert.Empty(t, out.String())

	fallback := &OutputFormatter{Writer: out, Verbose: true}
	fallback.VerboseLog("x")
	assert.Equal(t, "x\n", out.String())
}
