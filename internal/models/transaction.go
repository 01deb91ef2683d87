package models

import "time"

// MintID is the sender of reward transactions. It never belongs to a user.
const MintID = "000000000000"

// TimestampLayout is the ISO-8601 layout used for transaction dates.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// Transaction represents an immutable transaction record.
type Transaction struct {
	ID     string `json:"id" db:"id"`           // Unique transaction identifier
	Date   string `json:"date" db:"date"`       // ISO-8601 UTC timestamp
	FromID string `json:"from_id" db:"from_id"` // Payer, or MintID for rewards
	ToID   string `json:"to_id" db:"to_id"`     // Payee
	Amount int64  `json:"amount" db:"amount"`   // Amount in sats
}

// Receipt is returned by every balance-affecting operation.
type Receipt struct {
	TxID      string `json:"tx_id"`
	Timestamp string `json:"timestamp"`
}

// FormatTimestamp renders t as a transaction date.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
