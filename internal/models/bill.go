package models

// Bill represents a pending payment request.
type Bill struct {
	ID        string `json:"id" db:"id"`                 // Unique bill identifier, reused as the settling transaction id
	FromID    string `json:"from_id" db:"from_id"`       // Expected payer; empty means anyone may pay
	ToID      string `json:"to_id" db:"to_id"`           // Payee
	Amount    int64  `json:"amount" db:"amount"`         // Amount in sats
	Expiry    int64  `json:"expiry" db:"expiry"`         // Epoch ms after which the bill is swept
	CreatedAt int64  `json:"created_at" db:"created_at"` // Epoch ms
}

// BillRole selects which side of a bill a listing filters on.
type BillRole string

const (
	BillRolePayer BillRole = "payer"
	BillRolePayee BillRole = "payee"
)
