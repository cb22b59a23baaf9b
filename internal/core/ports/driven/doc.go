// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - AccountStore: Account persistence
//   - SyncProvider: Triggers a remote sync at the aggregation provider
//   - TransactionCache: Locally cached transaction records
//   - Notifier: Presentation sink for run notices
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
//   - TransactionProvider: Fetches transactions on a cache miss. Without it,
//     only cached transactions can be listed.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or connector package
package driven
