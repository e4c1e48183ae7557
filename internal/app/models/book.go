package models

import "time"

// Book represents a textbook referenced by ratings. A book has a title or
// an ISBN depending on how the free-text textbook input classified.
type Book struct {
	ID        int64     `json:"book_id" db:"book_id"`
	Title     *string   `json:"title,omitempty" db:"title"`
	ISBN      *string   `json:"isbn,omitempty" db:"isbn"` // Nullable, unique when set
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
