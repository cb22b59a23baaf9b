// Package aggregator is the HTTP client for the bank-data aggregation
// provider. It implements driven.SyncProvider and driven.TransactionProvider.
//
// Endpoints, relative to the configured base URL:
//
//	POST {base}/accounts/{linked-id}/sync          trigger a remote refresh
//	GET  {base}/accounts/{linked-id}/transactions  list booked transactions
//
// The provider knows accounts only by the link identifier stored on
// domain.Account.LinkedID; local account IDs never leave finsync.
//
// Requests carry the configured token as an OAuth2 bearer token.
package aggregator
