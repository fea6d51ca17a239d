package models

import "time"

// ContactMessage starts unread; MarkRead is its only transition.
type ContactMessage struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

type NewContactMessage struct {
	Name    string
	Email   string
	Message string
}
