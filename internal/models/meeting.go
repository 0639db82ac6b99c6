package models

import "time"

type Meeting struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	Date            string    `json:"date"`
	Time            string    `json:"time"`
	StartAt         time.Time `json:"start_at"`
	DurationMinutes int       `json:"duration_minutes"`
	Location        string    `json:"location,omitempty"`
	MinAttendees    *int      `json:"min_attendees,omitempty"`
	MaxAttendees    *int      `json:"max_attendees,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
