package models

// DMJob is a queued direct message.
type DMJob struct {
	Seq        int64  `db:"seq"`
	UserID     string `db:"user_id"`
	Payload    string `db:"payload"`     // JSON encoded DMMessage
	EnqueuedAt int64  `db:"enqueued_at"` // Epoch ms
}

// DMMessage is the notification delivered to a user.
type DMMessage struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}
