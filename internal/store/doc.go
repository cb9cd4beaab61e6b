// Package store provides SQLite-backed persistence for live tracker
// sessions.
//
// A session records the settings document, the seed and the world hash it
// was created against, plus the item tokens the player has collected in
// collection order. The reachability engine never reads the store: every
// tracker query rebuilds an inventory from the collected tokens and runs a
// fresh search.
//
// # Ordering
//
//   - Sessions and collected items carry a seq INTEGER assigned at insert.
//   - All list queries use ORDER BY seq ASC, id ASC COLLATE BINARY.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
package store
