package entities

import "time"

// Event is the owning side of the membership association. Rows are persisted
// by the events collaborator; this module resolves them read-only.
type Event struct {
	EventID   string    `json:"event_id"`
	TenantID  string    `json:"tenant_id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}
