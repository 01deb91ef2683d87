package models

// MaxBackupCodes is the number of outstanding backup codes a user can hold.
const MaxBackupCodes = 12

// BackupCode represents a single-use wallet restore code.
type BackupCode struct {
	Code      string `json:"code" db:"code"`
	UserID    string `json:"user_id" db:"user_id"`
	CreatedAt int64  `json:"created_at" db:"created_at"` // Epoch ms
}
