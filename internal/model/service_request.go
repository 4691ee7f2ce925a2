package model

import "time"

// Status of a service request. The API accepts exactly two values; the
// database enforces the same set with a CHECK constraint.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusCompleted Status = "Completed"
)

// Valid reports whether s is one of the accepted status values.
func (s Status) Valid() bool {
	return s == StatusPending || s == StatusCompleted
}

// ServiceRequest is an intake record submitted by an anonymous visitor.
// Message and DocumentFile are optional; DocumentFile holds the generated
// filename of an uploaded document, not the original name.
type ServiceRequest struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	ServiceType  string    `json:"serviceType"`
	Message      *string   `json:"message"`
	DocumentFile *string   `json:"documentFile"`
	Status       Status    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}
