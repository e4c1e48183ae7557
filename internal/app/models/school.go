package models

import "time"

// School represents a school offering courses
type School struct {
	ID        int64     `json:"school_id" db:"school_id"`
	Name      string    `json:"school_name" db:"school_name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
