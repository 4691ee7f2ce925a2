package model

import "time"

// Notice is a public announcement published by an administrator.
// Notices are immutable once created.
type Notice struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}
