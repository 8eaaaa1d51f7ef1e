package model

import "time"

type Status string

const (
	StatusActive   Status = "active"
	StatusFinished Status = "finished"
)

// Statuses returns the board partitions in display order.
func Statuses() []Status {
	return []Status{StatusActive, StatusFinished}
}

func (s Status) Label() string {
	switch s {
	case StatusActive:
		return "Active"
	case StatusFinished:
		return "Finished"
	default:
		return string(s)
	}
}

type Project struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	People      int       `json:"people"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}
