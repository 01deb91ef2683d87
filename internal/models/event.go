package models

// Ledger event kinds.
const (
	EventTransfer = "transfer"
	EventClaim    = "claim"
	EventBillPaid = "bill_paid"
	EventRestore  = "restore"
)

// LedgerEvent is published after a balance-affecting unit commits.
type LedgerEvent struct {
	TransactionID string `json:"transaction_id"`
	Timestamp     string `json:"timestamp"`
	FromID        string `json:"from_id"`
	ToID          string `json:"to_id"`
	Amount        int64  `json:"amount"`
	Kind          string `json:"kind"`
}
