// Package connectors holds clients for the external systems finsync talks to.
// Each subpackage implements one or more driven ports against a remote API.
//
//   - aggregator: the bank aggregation provider (SyncProvider, TransactionProvider)
package connectors
