package models

import "time"

type Booking struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	MeetingID    string    `json:"meeting_id"`
	MeetingTitle string    `json:"meeting_title"`
	BookedAt     time.Time `json:"booked_at"`
}
