package models

// Card represents a bearer credential bound to its owner.
type Card struct {
	Code    string `json:"code" db:"code"`
	Hash    string `json:"hash" db:"hash"` // Hex SHA-256 of Code
	OwnerID string `json:"owner_id" db:"owner_id"`
}
