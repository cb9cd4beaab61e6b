package logic

import (
	"fmt"
	"sort"
	"strings"

	"github.com/roach88/albwlogic/internal/item"
	"github.com/roach88/albwlogic/internal/settings"
)

// Kind tags an expression node.
type Kind uint8

const (
	KindTrue Kind = iota
	KindFalse
	KindAnd
	KindOr
	KindHas
	KindLevel
	KindFlag
	KindNotFlag
)

func (k Kind) String() string {
	switch k {
	case KindTrue:
		return "true"
	case KindFalse:
		return "false"
	case KindAnd:
		return "and"
	case KindOr:
		return "or"
	case KindHas:
		return "has"
	case KindLevel:
		return "level"
	case KindFlag:
		return "flag"
	case KindNotFlag:
		return "not_flag"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Expr is a requirement expression node. Only the fields relevant to Kind
// are set. Build values with the constructors below.
type Expr struct {
	Kind   Kind
	Item   item.Item
	Family item.Family
	Count  int
	Flag   settings.Flag
	Args   []Expr
}

// True is satisfied by any inventory.
func True() Expr { return Expr{Kind: KindTrue} }

// False is never satisfied.
func False() Expr { return Expr{Kind: KindFalse} }

// Has requires at least n copies of it. A single tiered item is also
// satisfied by any higher tier of its family.
func Has(it item.Item, n int) Expr {
	if n <= 0 {
		return True()
	}
	return Expr{Kind: KindHas, Item: it, Count: n}
}

// Level requires the family level to be at least n.
func Level(f item.Family, n int) Expr {
	if n <= 0 {
		return True()
	}
	return Expr{Kind: KindLevel, Family: f, Count: n}
}

// FlagSet requires the settings toggle to be on.
func FlagSet(f settings.Flag) Expr { return Expr{Kind: KindFlag, Flag: f} }

// NotFlag requires the settings toggle to be off.
func NotFlag(f settings.Flag) Expr { return Expr{Kind: KindNotFlag, Flag: f} }

// And is the conjunction of args. Nested conjunctions are flattened, True
// operands dropped, and any False operand collapses the result.
func And(args ...Expr) Expr {
	out := make([]Expr, 0, len(args))
	for _, a := range args {
		switch a.Kind {
		case KindTrue:
			continue
		case KindFalse:
			return False()
		case KindAnd:
			out = append(out, a.Args...)
		default:
			out = append(out, a)
		}
	}
	switch len(out) {
	case 0:
		return True()
	case 1:
		return out[0]
	}
	return Expr{Kind: KindAnd, Args: out}
}

// Or is the disjunction of args, simplified like And.
func Or(args ...Expr) Expr {
	out := make([]Expr, 0, len(args))
	for _, a := range args {
		switch a.Kind {
		case KindFalse:
			continue
		case KindTrue:
			return True()
		case KindOr:
			out = append(out, a.Args...)
		default:
			out = append(out, a)
		}
	}
	switch len(out) {
	case 0:
		return False()
	case 1:
		return out[0]
	}
	return Expr{Kind: KindOr, Args: out}
}

// String renders e in the syntax Parse accepts.
func (e Expr) String() string {
	var b strings.Builder
	e.write(&b, false)
	return b.String()
}

func (e Expr) write(b *strings.Builder, nested bool) {
	switch e.Kind {
	case KindTrue:
		b.WriteString("true")
	case KindFalse:
		b.WriteString("false")
	case KindHas:
		b.WriteString(e.Item.String())
		if e.Count > 1 {
			fmt.Fprintf(b, " >= %d", e.Count)
		}
	case KindLevel:
		fmt.Fprintf(b, "%s >= %d", e.Family, e.Count)
	case KindFlag:
		b.WriteString(e.Flag.String())
	case KindNotFlag:
		b.WriteString("!")
		b.WriteString(e.Flag.String())
	case KindAnd, KindOr:
		op := " && "
		if e.Kind == KindOr {
			op = " || "
		}
		if nested {
			b.WriteByte('(')
		}
		for i, a := range e.Args {
			if i > 0 {
				b.WriteString(op)
			}
			a.write(b, true)
		}
		if nested {
			b.WriteByte(')')
		}
	}
}

// Items returns the distinct items tested by Has leaves, sorted.
func (e Expr) Items() []item.Item {
	seen := map[item.Item]struct{}{}
	e.walk(func(n Expr) {
		if n.Kind == KindHas {
			seen[n.Item] = struct{}{}
		}
	})
	out := make([]item.Item, 0, len(seen))
	for it := range seen {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Families returns the distinct families tested by Level leaves, sorted.
func (e Expr) Families() []item.Family {
	seen := map[item.Family]struct{}{}
	e.walk(func(n Expr) {
		if n.Kind == KindLevel {
			seen[n.Family] = struct{}{}
		}
	})
	out := make([]item.Family, 0, len(seen))
	for f := range seen {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Flags returns the distinct settings flags consulted, sorted.
func (e Expr) Flags() []settings.Flag {
	seen := map[settings.Flag]struct{}{}
	e.walk(func(n Expr) {
		if n.Kind == KindFlag || n.Kind == KindNotFlag {
			seen[n.Flag] = struct{}{}
		}
	})
	out := make([]settings.Flag, 0, len(seen))
	for f := range seen {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (e Expr) walk(fn func(Expr)) {
	fn(e)
	for _, a := range e.Args {
		a.walk(fn)
	}
}
