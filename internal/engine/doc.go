// Package engine implements the assumed-fill reachability search and the
// query surface built on it.
//
// ARCHITECTURE:
//
// The world graph and its prefilled check map are built once per Engine
// and shared read-only by every query. Concurrent first queries coalesce
// on a single build. Each query brings its own inventory; the search clones
// it into a private working inventory, so queries never observe each
// other.
//
// Search:
//  1. The start region is reachable and its event pseudo-items are
//     collected into the working inventory.
//  2. A pass walks every reachable region's outgoing edges, in reach order,
//     including regions reached earlier in the same pass. An edge whose
//     requirement holds marks its target reachable and collects the
//     target's events at once.
//  3. Passes repeat until one reaches nothing new.
//
// Requirements are monotone in the inventory, so the fixpoint does not
// depend on visitation order. At most one pass per region is needed.
//
// Display ordering (case-insensitive, then byte order) is applied by the
// query functions only. Result and pool order are not sorted.
package engine
