package models

// Account represents a user row in the ledger store.
type Account struct {
	ID           string  `json:"id" db:"id"`                       // Platform user identifier
	Balance      int64   `json:"balance" db:"balance"`             // Balance in sats, never negative
	Cooldown     int64   `json:"cooldown" db:"cooldown"`           // Epoch ms of the last reward claim
	Notified     bool    `json:"notified" db:"notified"`           // Whether the "claim ready" DM was sent
	Username     *string `json:"username,omitempty" db:"username"` // Set only for HTTP API users
	PasswordHash *string `json:"-" db:"password_hash"`             // bcrypt of the client-side password hash
}
