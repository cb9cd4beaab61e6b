package logic

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr/ast"
	"github.com/expr-lang/expr/parser"

	"github.com/roach88/albwlogic/internal/item"
	"github.com/roach88/albwlogic/internal/settings"
)

// ParseError reports a requirement string that does not convert.
type ParseError struct {
	Source  string
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("requirement %q: %s", e.Source, e.Message)
}

// Parse converts requirement text into an expression tree. An empty or
// all-whitespace source is True.
func Parse(src string) (Expr, error) {
	if strings.TrimSpace(src) == "" {
		return True(), nil
	}

	tree, err := parser.Parse(src)
	if err != nil {
		return Expr{}, &ParseError{Source: src, Message: firstLine(err.Error())}
	}

	e, err := convert(tree.Node)
	if err != nil {
		return Expr{}, &ParseError{Source: src, Message: err.Error()}
	}
	return e, nil
}

// MustParse is Parse for compiled-in requirements; it panics on error.
func MustParse(src string) Expr {
	e, err := Parse(src)
	if err != nil {
		panic(err)
	}
	return e
}

func convert(node ast.Node) (Expr, error) {
	switch n := node.(type) {
	case *ast.BoolNode:
		if n.Value {
			return True(), nil
		}
		return False(), nil

	case *ast.IdentifierNode:
		return resolveIdent(n.Value)

	case *ast.UnaryNode:
		if n.Operator != "!" && n.Operator != "not" {
			return Expr{}, fmt.Errorf("unsupported unary operator %q", n.Operator)
		}
		ident, ok := n.Node.(*ast.IdentifierNode)
		if !ok {
			return Expr{}, fmt.Errorf("negation applies only to settings flags")
		}
		f, ok := settings.ParseFlag(ident.Value)
		if !ok {
			return Expr{}, fmt.Errorf("cannot negate %q: negation applies only to settings flags", ident.Value)
		}
		return NotFlag(f), nil

	case *ast.BinaryNode:
		switch n.Operator {
		case "&&", "and":
			left, right, err := convertPair(n.Left, n.Right)
			if err != nil {
				return Expr{}, err
			}
			return And(left, right), nil
		case "||", "or":
			left, right, err := convertPair(n.Left, n.Right)
			if err != nil {
				return Expr{}, err
			}
			return Or(left, right), nil
		case ">=", ">":
			return convertThreshold(n)
		default:
			return Expr{}, fmt.Errorf("unsupported operator %q", n.Operator)
		}

	case *ast.IntegerNode:
		return Expr{}, fmt.Errorf("bare integer %d is not a requirement", n.Value)

	default:
		return Expr{}, fmt.Errorf("unsupported construct %T", node)
	}
}

func convertPair(l, r ast.Node) (Expr, Expr, error) {
	left, err := convert(l)
	if err != nil {
		return Expr{}, Expr{}, err
	}
	right, err := convert(r)
	if err != nil {
		return Expr{}, Expr{}, err
	}
	return left, right, nil
}

// convertThreshold handles "X >= n" and "X > n" where X is an item token
// or a family name.
func convertThreshold(n *ast.BinaryNode) (Expr, error) {
	ident, ok := n.Left.(*ast.IdentifierNode)
	if !ok {
		return Expr{}, fmt.Errorf("left side of %q must be an item or family", n.Operator)
	}
	num, ok := n.Right.(*ast.IntegerNode)
	if !ok {
		return Expr{}, fmt.Errorf("right side of %q must be an integer", n.Operator)
	}
	count := num.Value
	if n.Operator == ">" {
		count++
	}

	if it, err := item.Parse(ident.Value); err == nil {
		return Has(it, count), nil
	}
	if f := item.Family(ident.Value); item.KnownFamily(f) {
		return Level(f, count), nil
	}
	return Expr{}, fmt.Errorf("unknown item or family %q", ident.Value)
}

func resolveIdent(name string) (Expr, error) {
	if it, err := item.Parse(name); err == nil {
		return Has(it, 1), nil
	}
	if f := item.Family(name); item.KnownFamily(f) {
		return Level(f, 1), nil
	}
	if f, ok := settings.ParseFlag(name); ok {
		return FlagSet(f), nil
	}
	return Expr{}, fmt.Errorf("unknown identifier %q", name)
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
