package models

import "time"

// Default professor sentinel. All ratings that do not name a professor
// reference this single row, created once at seed time.
const (
	DefaultProfessorFirstName = "Unknown"
	DefaultProfessorLastName  = "Professor"
)

// Professor represents a course professor
type Professor struct {
	ID        int64     `json:"professor_id" db:"professor_id"`
	FirstName string    `json:"first_name" db:"first_name"`
	LastName  string    `json:"last_name" db:"last_name"`
	Email     *string   `json:"email,omitempty" db:"email"` // Nullable, unique when set
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
