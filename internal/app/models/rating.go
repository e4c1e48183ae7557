package models

import "time"

// Rating bounds, enforced both before insert and by a store constraint.
const (
	MinRating = 1
	MaxRating = 5
)

// Rating represents a single course rating with its review text.
type Rating struct {
	ID          int64     `json:"rating_id" db:"rating_id"`
	CourseID    int64     `json:"course_id" db:"course_id"`
	ProfessorID int64     `json:"-" db:"professor_id"`
	BookID      *int64    `json:"-" db:"book_id"` // Nullable, nulled on book deletion
	Rating      int       `json:"rating" db:"rating"`
	Review      string    `json:"review" db:"review"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"-" db:"updated_at"`
}
