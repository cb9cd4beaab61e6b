package logic

import (
	"github.com/roach88/albwlogic/internal/item"
	"github.com/roach88/albwlogic/internal/settings"
)

// Eval reports whether inv satisfies e under s. It has no side effects.
// A nil inventory is treated as empty.
func Eval(e Expr, inv *item.Inventory, s settings.Settings) bool {
	switch e.Kind {
	case KindTrue:
		return true
	case KindFalse:
		return false
	case KindAnd:
		for _, a := range e.Args {
			if !Eval(a, inv, s) {
				return false
			}
		}
		return true
	case KindOr:
		for _, a := range e.Args {
			if Eval(a, inv, s) {
				return true
			}
		}
		return false
	case KindHas:
		if e.Count == 1 && e.Item.Tier() > 0 {
			return inv.Level(e.Item.Family()) >= e.Item.Tier()
		}
		return inv.Count(e.Item) >= e.Count
	case KindLevel:
		return inv.Level(e.Family) >= e.Count
	case KindFlag:
		return s.Flag(e.Flag)
	case KindNotFlag:
		return !s.Flag(e.Flag)
	default:
		return false
	}
}
