package models

import "time"

// Course represents a course belonging to a school.
type Course struct {
	ID                   int64     `json:"course_id" db:"course_id"`
	Name                 string    `json:"course_name" db:"course_name"`
	Number               string    `json:"course_number" db:"course_number"`
	Major                string    `json:"major" db:"major"`
	SchoolID             int64     `json:"school_id" db:"school_id"`
	DialoguesRequirement *string   `json:"dialogues_requirement,omitempty" db:"dialogues_requirement"` // Nullable
	DeliveryMode         string    `json:"delivery_mode" db:"delivery_mode"`
	CreatedAt            time.Time `json:"created_at" db:"created_at"`
	UpdatedAt            time.Time `json:"updated_at" db:"updated_at"`

	// Relation (populated when needed)
	School *School `json:"school,omitempty"`
}

// CourseAggregate is a course enriched with its school name and computed
// rating statistics. AverageRating is nil when the course has no ratings.
type CourseAggregate struct {
	Course
	SchoolName    string   `json:"school_name"`
	AverageRating *float64 `json:"average_rating"`
	RatingCount   int64    `json:"rating_count"`
}

// CourseDetail is an aggregate plus the full rating list, newest first.
type CourseDetail struct {
	CourseAggregate
	Ratings []*Rating `json:"ratings"`
}
