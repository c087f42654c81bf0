package models

import "time"

// Report is one filed incident for a room.
type Report struct {
	ID          string
	RoomID      string
	ProblemType string
	Description string
	Author      string
	CreatedAt   time.Time
}

// DateLabel formats the filing time the way the detail page shows it.
func (r Report) DateLabel() string {
	return r.CreatedAt.Format("02/01 à 15:04")
}
