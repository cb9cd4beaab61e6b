// Package logic implements requirement predicates for world graph edges.
//
// A requirement is a tagged expression tree whose leaves test item counts,
// family levels and settings flags. Eval is the only interpreter. Every
// expression the package can build is monotone in the inventory: holding
// more items never turns a satisfied requirement into an unsatisfied one.
// Negation is therefore only permitted on settings flags, which are fixed
// for the lifetime of a search.
//
// Requirements are authored as text and converted by Parse:
//
//	Sword >= 2 && (Lamp || lampless)
//	HyruleSanctuaryKey || glitch_only_flag
//
// Identifiers resolve to an item token first, then an item family, then a
// settings flag.
package logic
