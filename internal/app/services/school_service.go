package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/jdelaney/ratemyclass/internal/app/models"
	"github.com/jdelaney/ratemyclass/internal/app/repositories"
	"github.com/jdelaney/ratemyclass/internal/pkg/apperrors"
)

// SchoolService handles school-related operations
type SchoolService interface {
	GetAllSchools(ctx context.Context) ([]*models.School, error)
	GetSchoolCourses(ctx context.Context, schoolID int64) ([]*models.Course, error)
}

type schoolService struct {
	stores Stores
}

// NewSchoolService creates a new school service instance
func NewSchoolService(stores Stores) SchoolService {
	return &schoolService{stores: stores}
}

// GetAllSchools retrieves all schools
func (s *schoolService) GetAllSchools(ctx context.Context) ([]*models.School, error) {
	schools, err := s.stores.Schools().GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving schools: %w", err)
	}
	return schools, nil
}

// GetSchoolCourses retrieves all courses of one school
func (s *schoolService) GetSchoolCourses(ctx context.Context, schoolID int64) ([]*models.Course, error) {
	if schoolID <= 0 {
		return nil, fmt.Errorf("%w: invalid school ID", apperrors.ErrValidationFailed)
	}

	if _, err := s.stores.Schools().GetByID(ctx, schoolID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrSchoolNotFound
		}
		return nil, fmt.Errorf("error checking school: %w", err)
	}

	courses, err := s.stores.Courses().GetBySchoolID(ctx, schoolID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving school courses: %w", err)
	}
	return courses, nil
}
