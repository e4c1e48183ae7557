package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jdelaney/ratemyclass/internal/app/models"
	"github.com/jdelaney/ratemyclass/internal/app/models/dto"
	"github.com/jdelaney/ratemyclass/internal/app/repositories"
	"github.com/jdelaney/ratemyclass/internal/pkg/apperrors"
)

// CourseService handles course-related operations
type CourseService interface {
	CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error)
	ListCourses(ctx context.Context, filter repositories.CourseFilter) ([]*models.CourseAggregate, error)
	GetCourse(ctx context.Context, id int64) (*models.CourseAggregate, error)
	GetCourseDetail(ctx context.Context, id int64) (*models.CourseDetail, error)
}

type courseService struct {
	stores Stores
	logger zerolog.Logger
}

// NewCourseService creates a new course service instance
func NewCourseService(stores Stores, logger zerolog.Logger) CourseService {
	return &courseService{
		stores: stores,
		logger: logger,
	}
}

// CreateCourse resolves the school by name (creating it when absent),
// returns the existing course for the (school, number) pair or creates a
// new one, and attaches a rating when both rating and review are supplied.
// All rows are written in one transaction; any failure rolls back the
// whole operation.
func (s *courseService) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	if !models.IsValidDeliveryMode(req.DeliveryMode) {
		return nil, fmt.Errorf("%w: delivery mode must be In-Person, Online or Hybrid", apperrors.ErrValidationFailed)
	}
	if req.Rating < models.MinRating || req.Rating > models.MaxRating {
		return nil, apperrors.ErrRatingOutOfRange
	}

	var course *models.Course

	err := s.stores.InTransaction(ctx, func(ctx context.Context, tx Stores) error {
		school, err := tx.Schools().GetOrCreate(ctx, req.SchoolName)
		if err != nil {
			return fmt.Errorf("error resolving school: %w", err)
		}

		course, err = tx.Courses().GetOrCreate(ctx, &models.Course{
			Name:                 req.CourseName,
			Number:               req.CourseNumber,
			Major:                req.Major,
			SchoolID:             school.ID,
			DialoguesRequirement: req.DialoguesRequirement,
			DeliveryMode:         req.DeliveryMode,
		})
		if err != nil {
			return fmt.Errorf("error resolving course: %w", err)
		}

		// A rating rides along only when a review was written
		if strings.TrimSpace(req.Review) == "" {
			return nil
		}

		textbook := ""
		if req.Textbook != nil {
			textbook = *req.Textbook
		}
		return s.attachRating(ctx, tx, course.ID, req.Rating, req.Review, textbook)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("courseID", course.ID).
		Str("courseNumber", course.Number).
		Msg("Course create handled")

	return course, nil
}

// attachRating resolves the optional book and the sentinel professor, then
// inserts a rating row. Runs inside the caller's transaction.
func (s *courseService) attachRating(ctx context.Context, tx Stores, courseID int64, rating int, review, textbook string) error {
	book, err := tx.Books().GetOrCreate(ctx, textbook)
	if err != nil {
		return fmt.Errorf("error resolving textbook: %w", err)
	}

	professor, err := tx.Professors().GetOrCreateDefault(ctx)
	if err != nil {
		return fmt.Errorf("error resolving default professor: %w", err)
	}

	row := &models.Rating{
		CourseID:    courseID,
		ProfessorID: professor.ID,
		Rating:      rating,
		Review:      review,
	}
	if book != nil {
		row.BookID = &book.ID
	}

	if err := tx.Ratings().Create(ctx, row); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrCourseNotFound
		}
		return fmt.Errorf("error creating rating: %w", err)
	}
	return nil
}

// ListCourses retrieves courses with their rating aggregates
func (s *courseService) ListCourses(ctx context.Context, filter repositories.CourseFilter) ([]*models.CourseAggregate, error) {
	aggregates, err := s.stores.Courses().ListAggregates(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing courses: %w", err)
	}
	return aggregates, nil
}

// GetCourse retrieves one course with its rating aggregate
func (s *courseService) GetCourse(ctx context.Context, id int64) (*models.CourseAggregate, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid course ID", apperrors.ErrValidationFailed)
	}

	aggregate, err := s.stores.Courses().GetAggregate(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error getting course: %w", err)
	}
	return aggregate, nil
}

// GetCourseDetail retrieves one course aggregate plus all its ratings,
// newest first.
func (s *courseService) GetCourseDetail(ctx context.Context, id int64) (*models.CourseDetail, error) {
	aggregate, err := s.GetCourse(ctx, id)
	if err != nil {
		return nil, err
	}

	ratings, err := s.stores.Ratings().GetByCourseID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error getting course ratings: %w", err)
	}

	return &models.CourseDetail{
		CourseAggregate: *aggregate,
		Ratings:         ratings,
	}, nil
}
