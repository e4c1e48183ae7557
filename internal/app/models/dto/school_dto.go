package dto

import "github.com/jdelaney/ratemyclass/internal/app/models"

// SchoolResponse represents a school in list responses
type SchoolResponse struct {
	SchoolID   int64  `json:"school_id"`
	SchoolName string `json:"school_name"`
}

// NewSchoolResponse maps a school model to its response shape
func NewSchoolResponse(s *models.School) SchoolResponse {
	return SchoolResponse{
		SchoolID:   s.ID,
		SchoolName: s.Name,
	}
}

// NewSchoolListResponse maps a school slice to response shapes
func NewSchoolListResponse(schools []*models.School) []SchoolResponse {
	out := make([]SchoolResponse, 0, len(schools))
	for _, s := range schools {
		out = append(out, NewSchoolResponse(s))
	}
	return out
}
