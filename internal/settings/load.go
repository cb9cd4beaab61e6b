package settings

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"gopkg.in/yaml.v3"
)

//go:embed schema.cue
var schemaCUE string

// LoadFile reads a settings document, choosing the decoder by extension.
// Supported: .yaml, .yml, .json, .cue.
func LoadFile(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("read settings: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(data)
	case ".json":
		return LoadJSON(data)
	case ".cue":
		return LoadCUE(data, filepath.Base(path))
	default:
		return Settings{}, fmt.Errorf("read settings: unsupported extension %q", filepath.Ext(path))
	}
}

// LoadYAML decodes a YAML settings document. Unknown fields are rejected.
func LoadYAML(data []byte) (Settings, error) {
	var w Wire
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&w); err != nil {
		return Settings{}, fmt.Errorf("parse settings YAML: %w", err)
	}
	return FromWire(w)
}

// LoadJSON decodes a JSON settings document. Unknown fields are rejected.
func LoadJSON(data []byte) (Settings, error) {
	var w Wire
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&w); err != nil {
		return Settings{}, fmt.Errorf("parse settings JSON: %w", err)
	}
	return FromWire(w)
}

// LoadCUE unifies a CUE settings document with the #Settings schema and
// decodes the result. Omitted toggles take the schema defaults.
func LoadCUE(data []byte, filename string) (Settings, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE, cue.Filename("settings_schema.cue"))
	if err := schema.Err(); err != nil {
		return Settings{}, fmt.Errorf("compile settings schema: %w", err)
	}

	doc := ctx.CompileBytes(data, cue.Filename(filename))
	if err := doc.Err(); err != nil {
		return Settings{}, &ValidationError{Field: filename, Message: formatCUEError(err)}
	}

	v := schema.LookupPath(cue.ParsePath("#Settings")).Unify(doc)
	if err := v.Validate(); err != nil {
		return Settings{}, &ValidationError{Field: filename, Message: formatCUEError(err)}
	}

	var w Wire
	if err := v.Decode(&w); err != nil {
		return Settings{}, &ValidationError{Field: filename, Message: formatCUEError(err)}
	}
	return FromWire(w)
}

func formatCUEError(err error) string {
	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return err.Error()
	}
	first := errs[0]
	msg := first.Error()
	if positions := cueerrors.Positions(first); len(positions) > 0 && positions[0].IsValid() {
		pos := positions[0]
		msg = fmt.Sprintf("%s (line %d, column %d)", msg, pos.Line(), pos.Column())
	}
	return msg
}
