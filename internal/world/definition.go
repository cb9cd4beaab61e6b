package world

import (
	_ "embed"
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/load"
	"cuelang.org/go/cue/token"

	"github.com/roach88/albwlogic/internal/item"
	"github.com/roach88/albwlogic/internal/logic"
	"github.com/roach88/albwlogic/internal/settings"
)

//go:embed schema.cue
var schemaCUE string

//go:embed data/world.cue
var embeddedWorld []byte

// Definition is a compiled, not yet validated, world description.
type Definition struct {
	Start   string
	Regions []RegionDef
}

// RegionDef describes one region in declaration order.
type RegionDef struct {
	Name   string
	Area   string
	Checks []CheckDef
	Paths  []PathDef
	Pos    token.Pos
}

// CheckDef describes one check. Event is item.None for ordinary checks.
type CheckDef struct {
	Name     string
	Event    item.Item
	Minigame bool
	Pos      token.Pos
}

// PathDef is a directed connection with its per-tier requirements. A path
// without alternatives is always open.
type PathDef struct {
	To           string
	Alternatives []Alternative
	Pos          token.Pos
}

// Alternative is a requirement introduced at a logic tier. It applies to
// that tier and every tier above it.
type Alternative struct {
	Mode        settings.Mode
	Requirement logic.Expr
}

// CompileError reports malformed or inconsistent world data.
type CompileError struct {
	Field   string
	Message string
	Pos     token.Pos
}

func (e *CompileError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s",
			e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(),
			e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// tierModes are the modes that may appear as path fields, in tier order.
var tierModes = []settings.Mode{
	settings.Normal,
	settings.Hard,
	settings.GlitchBasic,
	settings.GlitchAdvanced,
	settings.GlitchHell,
}

// Embedded compiles the world data shipped with the binary.
func Embedded() (*Definition, error) {
	return CompileBytes(embeddedWorld, "world.cue")
}

// CompileBytes compiles a single CUE document.
func CompileBytes(data []byte, filename string) (*Definition, error) {
	ctx := cuecontext.New()
	v := ctx.CompileBytes(data, cue.Filename(filename))
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}
	return Compile(v)
}

// LoadDir loads every CUE file of the package in dir and compiles the
// result.
func LoadDir(dir string) (*Definition, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("world directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("world directory: not a directory: %s", dir)
	}

	instances := load.Instances([]string{"."}, &load.Config{Dir: dir})
	if len(instances) == 0 {
		return nil, fmt.Errorf("world directory: no CUE instances in %s", dir)
	}
	inst := instances[0]
	if inst.Err != nil {
		return nil, fmt.Errorf("loading world: %w", inst.Err)
	}

	v := cuecontext.New().BuildInstance(inst)
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}
	return Compile(v)
}

// Compile unifies v with the #World schema and extracts a Definition.
// Requirement strings are parsed here so that errors carry positions.
func Compile(v cue.Value) (*Definition, error) {
	schema := v.Context().CompileString(schemaCUE, cue.Filename("world_schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("compile world schema: %w", err)
	}
	v = schema.LookupPath(cue.ParsePath("#World")).Unify(v)
	if err := v.Validate(); err != nil {
		return nil, formatCUEError(err)
	}

	def := &Definition{}

	start, err := v.LookupPath(cue.ParsePath("start")).String()
	if err != nil {
		return nil, formatCUEError(err)
	}
	def.Start = start

	iter, err := v.LookupPath(cue.ParsePath("regions")).Fields()
	if err != nil {
		return nil, formatCUEError(err)
	}
	for iter.Next() {
		rd, err := compileRegion(iter.Selector().Unquoted(), iter.Value())
		if err != nil {
			return nil, err
		}
		def.Regions = append(def.Regions, rd)
	}

	return def, nil
}

func compileRegion(name string, v cue.Value) (RegionDef, error) {
	rd := RegionDef{Name: name, Pos: v.Pos()}

	area, err := v.LookupPath(cue.ParsePath("area")).String()
	if err != nil {
		return rd, formatCUEError(err)
	}
	rd.Area = area

	if checks := v.LookupPath(cue.ParsePath("checks")); checks.Exists() {
		list, err := checks.List()
		if err != nil {
			return rd, formatCUEError(err)
		}
		for list.Next() {
			cd, err := compileCheck(list.Value())
			if err != nil {
				return rd, err
			}
			rd.Checks = append(rd.Checks, cd)
		}
	}

	if paths := v.LookupPath(cue.ParsePath("paths")); paths.Exists() {
		list, err := paths.List()
		if err != nil {
			return rd, formatCUEError(err)
		}
		for list.Next() {
			pd, err := compilePath(name, list.Value())
			if err != nil {
				return rd, err
			}
			rd.Paths = append(rd.Paths, pd)
		}
	}

	return rd, nil
}

func compileCheck(v cue.Value) (CheckDef, error) {
	cd := CheckDef{Pos: v.Pos()}

	name, err := v.LookupPath(cue.ParsePath("name")).String()
	if err != nil {
		return cd, formatCUEError(err)
	}
	cd.Name = name

	if ev := v.LookupPath(cue.ParsePath("event")); ev.Exists() {
		tok, err := ev.String()
		if err != nil {
			return cd, formatCUEError(err)
		}
		it, err := item.Parse(tok)
		if err != nil {
			return cd, &CompileError{Field: "checks." + name + ".event", Message: err.Error(), Pos: ev.Pos()}
		}
		cd.Event = it
	}

	if mg := v.LookupPath(cue.ParsePath("minigame")); mg.Exists() {
		b, err := mg.Bool()
		if err != nil {
			return cd, formatCUEError(err)
		}
		cd.Minigame = b
	}

	return cd, nil
}

func compilePath(from string, v cue.Value) (PathDef, error) {
	pd := PathDef{Pos: v.Pos()}

	to, err := v.LookupPath(cue.ParsePath("to")).String()
	if err != nil {
		return pd, formatCUEError(err)
	}
	pd.To = to

	for _, mode := range tierModes {
		field := v.LookupPath(cue.ParsePath(mode.String()))
		if !field.Exists() {
			continue
		}
		src, err := field.String()
		if err != nil {
			return pd, formatCUEError(err)
		}
		req, err := logic.Parse(src)
		if err != nil {
			return pd, &CompileError{
				Field:   fmt.Sprintf("regions.%q.paths[%s].%s", from, to, mode),
				Message: err.Error(),
				Pos:     field.Pos(),
			}
		}
		pd.Alternatives = append(pd.Alternatives, Alternative{Mode: mode, Requirement: req})
	}

	return pd, nil
}

// formatCUEError extracts position info from CUE errors.
func formatCUEError(err error) error {
	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return err
	}
	first := errs[0]
	if positions := cueerrors.Positions(first); len(positions) > 0 {
		return &CompileError{Field: "cue", Message: first.Error(), Pos: positions[0]}
	}
	return err
}
