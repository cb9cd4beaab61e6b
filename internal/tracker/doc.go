// Package tracker persists live tracker sessions and answers reachability
// queries for them.
//
// A tracker session is a settings document and seed plus the items the
// player has found so far. The engine stays stateless: every Available
// call rebuilds the inventory from the stored tokens and runs a fresh
// assumed search against the shared world.
package tracker
