package dto

import (
	"time"

	"github.com/jdelaney/ratemyclass/internal/app/models"
)

// CreateRatingRequest represents the public rating submission payload
type CreateRatingRequest struct {
	CourseID int64   `json:"course_id" binding:"required,min=1"`
	Rating   int     `json:"rating" binding:"required,min=1,max=5"`
	Review   string  `json:"review" binding:"required"`
	Textbook *string `json:"textbook"`
}

// RatingResponse represents a stored rating
type RatingResponse struct {
	RatingID  int64     `json:"rating_id"`
	CourseID  int64     `json:"course_id"`
	Rating    int       `json:"rating"`
	Review    string    `json:"review"`
	CreatedAt time.Time `json:"created_at"`
}

// NewRatingResponse maps a rating model to its response shape
func NewRatingResponse(r *models.Rating) RatingResponse {
	return RatingResponse{
		RatingID:  r.ID,
		CourseID:  r.CourseID,
		Rating:    r.Rating,
		Review:    r.Review,
		CreatedAt: r.CreatedAt,
	}
}
