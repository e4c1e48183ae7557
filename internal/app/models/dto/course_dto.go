package dto

import (
	"time"

	"github.com/jdelaney/ratemyclass/internal/app/models"
)

// CreateCourseRequest represents the admin course creation payload. A
// rating is attached only when both Rating and Review are supplied.
type CreateCourseRequest struct {
	CourseName           string  `json:"course_name" binding:"required"`
	CourseNumber         string  `json:"course_number" binding:"required"`
	Major                string  `json:"major" binding:"required"`
	SchoolName           string  `json:"school_name" binding:"required"`
	DialoguesRequirement *string `json:"dialogues_requirement"`
	DeliveryMode         string  `json:"delivery_mode" binding:"required"`
	Rating               int     `json:"rating" binding:"required,min=1,max=5"`
	Review               string  `json:"review"`
	Textbook             *string `json:"textbook"`
}

// CourseResponse represents a created or fetched course
type CourseResponse struct {
	CourseID             int64     `json:"course_id"`
	CourseName           string    `json:"course_name"`
	CourseNumber         string    `json:"course_number"`
	Major                string    `json:"major"`
	SchoolID             int64     `json:"school_id"`
	DialoguesRequirement *string   `json:"dialogues_requirement"`
	DeliveryMode         string    `json:"delivery_mode"`
	CreatedAt            time.Time `json:"created_at"`
}

// CourseListItem is the compact shape used by the per-school course list
type CourseListItem struct {
	CourseID     int64  `json:"course_id"`
	CourseName   string `json:"course_name"`
	CourseNumber string `json:"course_number"`
	Major        string `json:"major"`
}

// CourseWithRatings is a course enriched with its aggregate rating stats
type CourseWithRatings struct {
	CourseID             int64     `json:"course_id"`
	CourseName           string    `json:"course_name"`
	CourseNumber         string    `json:"course_number"`
	Major                string    `json:"major"`
	SchoolName           string    `json:"school_name"`
	DialoguesRequirement *string   `json:"dialogues_requirement"`
	DeliveryMode         string    `json:"delivery_mode"`
	AverageRating        *float64  `json:"average_rating"`
	RatingCount          int64     `json:"rating_count"`
	CreatedAt            time.Time `json:"created_at"`
}

// CourseDetailResponse is an aggregate plus the full rating list
type CourseDetailResponse struct {
	CourseWithRatings
	Ratings []RatingResponse `json:"ratings"`
}

// CourseFilter carries the optional list filters, combined with AND
type CourseFilter struct {
	Search       string `form:"search"`
	Major        string `form:"major"`
	DeliveryMode string `form:"delivery_mode"`
	SchoolID     int64  `form:"school_id"`
}

// NewCourseResponse maps a course model to its response shape
func NewCourseResponse(c *models.Course) CourseResponse {
	return CourseResponse{
		CourseID:             c.ID,
		CourseName:           c.Name,
		CourseNumber:         c.Number,
		Major:                c.Major,
		SchoolID:             c.SchoolID,
		DialoguesRequirement: c.DialoguesRequirement,
		DeliveryMode:         c.DeliveryMode,
		CreatedAt:            c.CreatedAt,
	}
}

// NewCourseListItem maps a course model to the compact list shape
func NewCourseListItem(c *models.Course) CourseListItem {
	return CourseListItem{
		CourseID:     c.ID,
		CourseName:   c.Name,
		CourseNumber: c.Number,
		Major:        c.Major,
	}
}

// NewCourseWithRatings maps a course aggregate to its response shape
func NewCourseWithRatings(a *models.CourseAggregate) CourseWithRatings {
	return CourseWithRatings{
		CourseID:             a.ID,
		CourseName:           a.Name,
		CourseNumber:         a.Number,
		Major:                a.Major,
		SchoolName:           a.SchoolName,
		DialoguesRequirement: a.DialoguesRequirement,
		DeliveryMode:         a.DeliveryMode,
		AverageRating:        a.AverageRating,
		RatingCount:          a.RatingCount,
		CreatedAt:            a.CreatedAt,
	}
}

// NewCourseDetailResponse maps a course detail to its response shape
func NewCourseDetailResponse(d *models.CourseDetail) CourseDetailResponse {
	ratings := make([]RatingResponse, 0, len(d.Ratings))
	for _, r := range d.Ratings {
		ratings = append(ratings, NewRatingResponse(r))
	}
	return CourseDetailResponse{
		CourseWithRatings: NewCourseWithRatings(&d.CourseAggregate),
		Ratings:           ratings,
	}
}
