// Package domain defines the core business entities for finsync.
//
// This package is part of the hexagonal architecture's innermost layer.
// It defines the fundamental types:
//
//   - Account: A bank account, optionally linked to an aggregation provider
//   - Transaction: A cached transaction record for an account
//   - SyncOutcome, SyncSummary: Per-account and per-run sync results
//   - SyncRunState, SyncProgress: Observable state of a running batch
//   - Notice: The single user-facing report of a run
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. All other packages depend on
// domain, never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library, value-type libraries (shopspring/decimal)
//   - Cannot Import: Any internal/ package
package domain
