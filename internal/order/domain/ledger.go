package domain

// Ledger is the sole owner of order identity and storage. Append assigns
// the next sequence identity atomically; Snapshot returns the full history
// most-recent-first with no torn reads relative to any append.
type Ledger interface {
	Append(items []LineItem, totalAmount int64) Order
	Snapshot() []Order
	Len() int
}
