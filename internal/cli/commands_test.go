package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns stdout and the
// command error.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// decodeData unmarshals the data field of a JSON response into v.
func decodeData(t *testing.T, out string, v any) {
	t.Helper()
	var resp struct {
		Status string          `json:"status"`
		Data   json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp), out)
	require.Equal(t, "ok", resp.Status, out)
	require.NoError(t, json.Unmarshal(resp.Data, v))
}

func TestRoot_InvalidFormat(t *testing.T) {
	_, err := execute(t, "graph", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid format "xml"`)
}

func TestPools(t *testing.T) {
	out, err := execute(t, "pools", "--seed", "7", "--format", "json")
	require.NoError(t, err)

	var first PoolsResult
	decodeData(t, out, &first)
	assert.Len(t, first.Progression, 83)
	assert.Len(t, first.Trash, 57)
	assert.Contains(t, first.Progression, "Sword01")

	out, err = execute(t, "pools", "--seed", "7", "--format", "json")
	require.NoError(t, err)
	var second PoolsResult
	decodeData(t, out, &second)
	assert.Equal(t, first, second)
}

func TestPools_Swordless(t *testing.T) {
	out, err := execute(t, "pools", "--flag", "swordless_mode", "--format", "json")
	require.NoError(t, err)

	var res PoolsResult
	decodeData(t, out, &res)
	assert.Len(t, res.Progression, 79)
	assert.NotContains(t, res.Progression, "Sword01")
	assert.Len(t, res.Trash, 61)
}

func TestPools_Text(t *testing.T) {
	out, err := execute(t, "pools")
	require.NoError(t, err)
	assert.Contains(t, out, "Progression (83):\n")
	assert.Contains(t, out, "Trash (57):\n")
}

func TestReachable(t *testing.T) {
	out, err := execute(t, "reachable")
	require.NoError(t, err)
	assert.Contains(t, out, "Ravio (1)\n")
	assert.NotContains(t, out, "Kakariko Jail\n")

	out, err = execute(t, "reachable", "Bombs01", "--format", "json")
	require.NoError(t, err)
	var res ReachableResult
	decodeData(t, out, &res)
	assert.Equal(t, []string{"Bombs01"}, res.Inventory)
	assert.Contains(t, res.Checks, "Kakariko Jail")
}

func TestReachable_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code string
	}{
		{"unknown item", []string{"reachable", "MasterSword"}, ErrCodeUnknownItem},
		{"bad mode", []string{"reachable", "--mode", "expert"}, ErrCodeInvalidSettings},
		{"bad flag", []string{"reachable", "--flag", "turbo"}, ErrCodeInvalidSettings},
		{"missing settings file", []string{"reachable", "--settings", "/nonexistent/run.yaml"}, ErrCodeInvalidSettings},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, ExitCommandError, GetExitCode(err))
			assert.Contains(t, out, "Error ["+tt.code+"]")
		})
	}
}

func TestReachable_SettingsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	doc := "logic:\n  mode: normal\n  minigames_excluded: true\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	out, err := execute(t, "reachable", "--settings", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Woman\n")
	assert.NotContains(t, out, "Dodge the Cuccos")
}

func TestGraph(t *testing.T) {
	out, err := execute(t, "graph")
	require.NoError(t, err)
	assert.Contains(t, out, "Start:      Ravio's Shop\n")
	assert.Contains(t, out, "Checks:     160 (20 events, 140 item slots)\n")

	out, err = execute(t, "graph", "--region", "Hyrule Field", "--format", "json")
	require.NoError(t, err)
	var summary GraphSummary
	decodeData(t, out, &summary)
	require.NotNil(t, summary.Region)
	assert.Equal(t, "Hyrule", summary.Region.Area)

	var deathMountain *EdgeSummary
	for i := range summary.Region.Edges {
		if summary.Region.Edges[i].To == "Death Mountain" {
			deathMountain = &summary.Region.Edges[i]
		}
	}
	require.NotNil(t, deathMountain)
	assert.Contains(t, deathMountain.Requirements, "normal")
	assert.Contains(t, deathMountain.Requirements["glitch_basic"], "PegasusBoots")
	assert.Equal(t, "true", deathMountain.Requirements["no_logic"])
}

func TestGraph_UnknownRegion(t *testing.T) {
	out, err := execute(t, "graph", "--region", "Atlantis")
	require.Error(t, err)
	assert.Contains(t, out, `unknown region "Atlantis"`)
}

const brokenWorld = `
start: "Home"
regions: {
	"Home": {
		area: "Field"
		checks: [{name: "Pot"}, {name: "Zelda", event: "Triforce"}]
		paths: [{to: "Vault", normal: "Hookshot01 && Flippers"}]
	}
	"Vault": {
		area: "Field"
		checks: [{name: "Vault Chest"}]
		paths: [{to: "Secret", normal: "StylishWomansHouseOpen"}]
	}
	"Secret": {
		area: "Field"
		checks: [{name: "Secret Chest"}]
	}
}
`

func TestValidate(t *testing.T) {
	out, err := execute(t, "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "World is completable in every mode")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "world.cue"), []byte(brokenWorld), 0o644))

	out, err = execute(t, "validate", "--world", dir, "--format", "json")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	var res ValidationResult
	decodeData(t, out, &res)
	assert.False(t, res.Valid)
	require.Len(t, res.Modes, 6)
	assert.Equal(t, []string{"Secret Chest"}, res.Modes[0].Unreachable)
	assert.Empty(t, res.Modes[5].Unreachable, "no_logic opens every edge")
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, "missing_event", res.Warnings[0].Kind)
	assert.Equal(t, "StylishWomansHouseOpen", res.Warnings[0].Subject)
}

func TestValidate_WorldError(t *testing.T) {
	dir := t.TempDir()
	doc := "start: \"Nowhere\"\nregions: {\"Home\": {area: \"Field\"}}\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "world.cue"), []byte(doc), 0o644))

	out, err := execute(t, "validate", "--world", dir)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "Error ["+ErrCodeWorldInvalid+"]")
}

func TestTracker(t *testing.T) {
	db := filepath.Join(t.TempDir(), "tracker.db")
	run := func(args ...string) (string, error) {
		return execute(t, append(args, "--db", db)...)
	}

	out, err := run("tracker", "new", "--seed", "5", "--label", "weekly", "--format", "json")
	require.NoError(t, err)
	var sess SessionInfo
	decodeData(t, out, &sess)
	require.NotEmpty(t, sess.ID)
	assert.Equal(t, "normal", sess.Mode)
	assert.Equal(t, uint64(5), sess.Seed)
	assert.Empty(t, sess.Items)

	out, err = run("tracker", "collect", sess.ID, "Bombs01", "Lamp01", "--format", "json")
	require.NoError(t, err)
	decodeData(t, out, &sess)
	assert.Equal(t, []string{"Bombs01", "Lamp01"}, sess.Items)

	out, err = run("tracker", "checks", sess.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "Kakariko Jail\n")

	_, err = run("tracker", "drop", sess.ID, "Bombs01")
	require.NoError(t, err)

	out, err = run("tracker", "checks", sess.ID)
	require.NoError(t, err)
	assert.NotContains(t, out, "Kakariko Jail\n")

	out, err = run("tracker", "drop", sess.ID, "Bombs01")
	require.Error(t, err)
	assert.Contains(t, out, "Error ["+ErrCodeNotCollected+"]")

	out, err = run("tracker", "collect", sess.ID, "MasterSword")
	require.Error(t, err)
	assert.Contains(t, out, "Error ["+ErrCodeUnknownItem+"]")

	out, err = run("tracker", "list")
	require.NoError(t, err)
	assert.Contains(t, out, sess.ID)
	assert.Contains(t, out, `"weekly"`)

	_, err = run("tracker", "delete", sess.ID)
	require.NoError(t, err)

	out, err = run("tracker", "checks", sess.ID)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "Error ["+ErrCodeSessionNotFound+"]")

	out, err = run("tracker", "list")
	require.NoError(t, err)
	assert.Equal(t, "No sessions\n", out)
}

func TestTestCommand(t *testing.T) {
	scenarios := filepath.Join("..", "harness", "testdata", "scenarios")

	out, err := execute(t, "test", scenarios)
	require.NoError(t, err, out)
	assert.Contains(t, out, "Test Summary: 4 passed, 0 failed, 4 total")

	out, err = execute(t, "test", scenarios, "--filter", "dark_*", "--format", "json")
	require.NoError(t, err)
	var res TestResult
	decodeData(t, out, &res)
	assert.Equal(t, 2, res.Total)
}

func TestTestCommand_Failure(t *testing.T) {
	dir := t.TempDir()
	doc := `name: wrong
description: "expects a gated check without the item"
settings: {logic: {mode: normal}}
assertions:
  - type: check_reachable
    checks: ["Kakariko Jail"]
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "wrong.yaml"), []byte(doc), 0o644))

	out, err := execute(t, "test", dir)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "FAIL  wrong")
	assert.Contains(t, out, "Test Summary: 0 passed, 1 failed, 1 total")
}

func TestTestCommand_MissingPath(t *testing.T) {
	out, err := execute(t, "test", "/nonexistent/scenarios")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "Error ["+ErrCodeNotFound+"]")
}
