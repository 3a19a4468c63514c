package entities

import "time"

// Membership is one event_users pivot row: user UserID holds Role for event
// EventID. The (EventID, UserID) pair is the identity and never changes;
// Role is the only mutable attribute.
type Membership struct {
	EventID   string    `json:"event_id"`
	UserID    string    `json:"user_id"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Member is one entry of an event's members view: the user projection joined
// with the role carried on the pivot.
type Member struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
}
