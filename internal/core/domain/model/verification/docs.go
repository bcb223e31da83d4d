// Package verification contains the value objects of the invoice
// reconciliation subsystem: the match classification returned by the external
// ledger and the cache entry that lets deliveries sharing an invoice reference
// reuse one verification result per store.
package verification
