package entities

import "time"

// User is the member side of the association. Rows are persisted by the users
// collaborator; this module resolves them by id or by unique email.
type User struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
